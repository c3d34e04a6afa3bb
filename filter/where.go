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

package filter

import (
	"fmt"

	"github.com/aaronlmathis/goseq/core"
)

// Where returns the elements matching predicate, in their original order.
// The result never aliases items.
func Where[T any](items []T, predicate core.Predicate[T]) []T {
	result := make([]T, 0)
	for _, item := range items {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Any reports whether at least one element matches. It is false for an
// empty sequence.
func Any[T any](items []T, predicate core.Predicate[T]) bool {
	for _, item := range items {
		if predicate(item) {
			return true
		}
	}
	return false
}

// All reports whether every element matches. It is true for an empty
// sequence.
func All[T any](items []T, predicate core.Predicate[T]) bool {
	for _, item := range items {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// Count returns how many items satisfy predicate.
func Count[T any](items []T, predicate core.Predicate[T]) int {
	n := 0
	for _, item := range items {
		if predicate(item) {
			n++
		}
	}
	return n
}

// First returns the first item, or an ErrEmptyResult error.
func First[T any](items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, core.NewEmptyResultError("first")
	}
	return items[0], nil
}

// Last returns the last item, or an ErrEmptyResult error.
func Last[T any](items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, core.NewEmptyResultError("last")
	}
	return items[len(items)-1], nil
}

// FirstWhere returns the first item that satisfies predicate.
func FirstWhere[T any](items []T, predicate core.Predicate[T]) (T, error) {
	for _, item := range items {
		if predicate(item) {
			return item, nil
		}
	}
	var zero T
	return zero, core.NewEmptyResultError("first")
}

// LastWhere returns the last item that satisfies predicate.
func LastWhere[T any](items []T, predicate core.Predicate[T]) (T, error) {
	for i := len(items) - 1; i >= 0; i-- {
		if predicate(items[i]) {
			return items[i], nil
		}
	}
	var zero T
	return zero, core.NewEmptyResultError("last")
}

// Single returns the only element matching predicate. It fails when there
// are none or more than one.
func Single[T any](items []T, predicate core.Predicate[T]) (T, error) {
	var (
		found T
		n     int
	)
	for _, item := range items {
		if predicate(item) {
			found = item
			n++
		}
	}
	switch {
	case n == 0:
		return found, core.NewEmptyResultError("single")
	case n > 1:
		var zero T
		return zero, fmt.Errorf("single: sequence contains %d matching elements", n)
	}
	return found, nil
}

// ElementAt returns items[index], failing with an EmptyResultError when
// index is out of range.
func ElementAt[T any](items []T, index int) (T, error) {
	if index < 0 || index >= len(items) {
		var zero T
		return zero, core.NewEmptyResultError(fmt.Sprintf("element at %d", index))
	}
	return items[index], nil
}
