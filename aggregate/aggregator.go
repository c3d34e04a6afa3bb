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

package aggregate

import (
	"cmp"

	"github.com/aaronlmathis/goseq/core"
)

// Package aggregate reduces sequences to scalars and partitions them into
// groups.
//
// Aggregates that have no meaningful value over an empty sequence (average,
// min, max) return a *core.EmptyResultError instead of a zero sentinel.

// Aggregate folds items left to right, starting from seed.
func Aggregate[T, A any](items []T, seed A, fn func(acc A, item T) A) A {
	acc := seed
	for _, item := range items {
		acc = fn(acc, item)
	}
	return acc
}

// Sum returns the total of items; the sum of an empty sequence is 0.
func Sum[T core.Number](items []T) T {
	var total T
	for _, v := range items {
		total += v
	}
	return total
}

// SumBy sums a projected field.
func SumBy[T any, N core.Number](items []T, field core.Selector[T, N]) N {
	var total N
	for _, item := range items {
		total += field(item)
	}
	return total
}

// Min returns the smallest element of items.
func Min[T cmp.Ordered](items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, core.NewEmptyResultError("min")
	}
	m := items[0]
	for _, v := range items[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}

// Max returns the largest element of items.
func Max[T cmp.Ordered](items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, core.NewEmptyResultError("max")
	}
	m := items[0]
	for _, v := range items[1:] {
		if v > m {
			m = v
		}
	}
	return m, nil
}

// MinBy returns the first element with the smallest key.
func MinBy[T any, K cmp.Ordered](items []T, key core.Selector[T, K]) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, core.NewEmptyResultError("min")
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); k < bestKey {
			best, bestKey = item, k
		}
	}
	return best, nil
}

// MaxBy returns the first element with the largest key.
func MaxBy[T any, K cmp.Ordered](items []T, key core.Selector[T, K]) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, core.NewEmptyResultError("max")
	}
	best, bestKey := items[0], key(items[0])
	for _, item := range items[1:] {
		if k := key(item); k > bestKey {
			best, bestKey = item, k
		}
	}
	return best, nil
}
