//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2025 Aaron Mathis aaron.mathis@gmail.com
//
// This file is part of GoSeq.
//
// GoSeq is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoSeq is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoSeq. If not, see https://www.gnu.org/licenses/.

package goseq

import (
	"github.com/aaronlmathis/goseq/core"
)

// Package goseq re-exports the core types so that most programs need only
// import the root package alongside the operator packages.

// Predicate reports whether an element should be selected.
type Predicate[T any] = core.Predicate[T]

// Number is any built-in integer or floating-point type.
type Number = core.Number

// DataSource loads a complete, ordered snapshot of records.
type DataSource[T any] = core.DataSource[T]

// RecordParser converts the positional fields of one line into a record.
type RecordParser[T any] = core.RecordParser[T]

// LoadError reports a failed, all-or-nothing dataset load.
type LoadError = core.LoadError

// EmptyResultError reports a selection or aggregate over an empty sequence.
type EmptyResultError = core.EmptyResultError

// ErrEmptyResult is matched by errors.Is for every EmptyResultError.
var ErrEmptyResult = core.ErrEmptyResult
