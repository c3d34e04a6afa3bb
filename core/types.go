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

package core

import "golang.org/x/exp/constraints"

// Package core defines the core types for the GoSeq library.
//
// GoSeq is a small, functional-style query library for Go: filter, map,
// reduce, sort, group, and set operations over immutable in-memory slices.
//
// This file contains the primary types and function adapters.

// Predicate reports whether an element should be selected.
type Predicate[T any] func(item T) bool

// Selector projects an element onto a derived value.
type Selector[T, K any] func(item T) K

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ParserFunc is a function adapter for the RecordParser interface.
// Allows ordinary functions to be used as RecordParsers.
type ParserFunc[T any] func(fields []string) (T, error)

// Parse implements the RecordParser interface for ParserFunc.
func (f ParserFunc[T]) Parse(fields []string) (T, error) {
	return f(fields)
}
