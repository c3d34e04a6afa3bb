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

import (
	"context"
)

// Package core defines the core interfaces for the GoSeq library.
//
// This file contains the interfaces that connect a flat-file source to the
// typed records the query operators work on.

// RecordParser converts the positional fields of one data line into a record.
// Implementations must not retain fields.
type RecordParser[T any] interface {
	// Parse builds a record from the split fields of a line.
	Parse(fields []string) (T, error)
}

// DataSource defines the interface for dataset extraction.
// Implementations load a complete, ordered snapshot of records.
type DataSource[T any] interface {
	// Load returns every record in source order, or an error and no records.
	Load(ctx context.Context) ([]T, error)
}
