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
	"errors"
	"fmt"
)

// Package core defines the error types for the GoSeq library.
//
// This file contains the load, parse, and empty-result errors shared by the
// readers, records, and operator packages.

// ErrEmptyResult is matched by errors.Is for every EmptyResultError.
var ErrEmptyResult = errors.New("sequence contains no matching elements")

// LoadError reports a failed dataset load. Loads are all-or-nothing: when a
// LoadError is returned no records are returned with it.
type LoadError struct {
	Path       string // File that was being loaded
	LineNumber int    // 1-based line number including the header; 0 if no line was read
	Line       string // Raw text of the offending line
	Err        error  // Underlying cause
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.LineNumber == 0 {
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %s: line %d %q: %v", e.Path, e.LineNumber, e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ParseError reports a single field that could not be converted to its
// column's type.
type ParseError struct {
	Column string
	Value  string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Value == "" && e.Err != nil {
		return fmt.Sprintf("column %s: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("column %s: cannot parse %q: %v", e.Column, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// EmptyResultError is returned by single-element selections and by
// aggregates that are undefined over an empty sequence.
type EmptyResultError struct {
	Op string
}

// Error implements the error interface.
func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, ErrEmptyResult)
}

// Is reports whether target is ErrEmptyResult.
func (e *EmptyResultError) Is(target error) bool {
	return target == ErrEmptyResult
}

// NewEmptyResultError is a convenience constructor used by the operator packages.
func NewEmptyResultError(op string) error {
	return &EmptyResultError{Op: op}
}
