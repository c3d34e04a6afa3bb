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

package transform

import (
	"cmp"
	"slices"

	"github.com/aaronlmathis/goseq/core"
)

// Comparison orders two elements: negative if a sorts first, positive if b
// does, zero if they tie.
type Comparison[T any] func(a, b T) int

// Ascending compares elements by key, smallest first.
func Ascending[T any, K cmp.Ordered](key core.Selector[T, K]) Comparison[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Descending compares elements by key, largest first.
func Descending[T any, K cmp.Ordered](key core.Selector[T, K]) Comparison[T] {
	return func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	}
}

// SortStable returns a copy of items ordered by the comparisons in priority
// order; later comparisons break ties of earlier ones. Elements that tie on
// every comparison keep their original relative order.
func SortStable[T any](items []T, comparisons ...Comparison[T]) []T {
	result := clone(items)
	slices.SortStableFunc(result, func(a, b T) int {
		for _, c := range comparisons {
			if r := c(a, b); r != 0 {
				return r
			}
		}
		return 0
	})
	return result
}

// OrderBy is a stable ascending sort by key.
func OrderBy[T any, K cmp.Ordered](items []T, key core.Selector[T, K]) []T {
	return SortStable(items, Ascending(key))
}

// OrderByDescending is a stable descending sort by key.
func OrderByDescending[T any, K cmp.Ordered](items []T, key core.Selector[T, K]) []T {
	return SortStable(items, Descending(key))
}

// Identity is the key selector for ordering plain values.
func Identity[T any](v T) T { return v }
