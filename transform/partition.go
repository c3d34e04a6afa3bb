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

import "github.com/aaronlmathis/goseq/core"

// clamp bounds n to [0, size].
func clamp(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

func clone[T any](items []T) []T {
	return append(make([]T, 0, len(items)), items...)
}

// Take returns the first n elements.
func Take[T any](items []T, n int) []T {
	return clone(items[:clamp(n, len(items))])
}

// Skip returns everything after the first n elements.
func Skip[T any](items []T, n int) []T {
	return clone(items[clamp(n, len(items)):])
}

// TakeLast returns the last n elements.
func TakeLast[T any](items []T, n int) []T {
	return clone(items[len(items)-clamp(n, len(items)):])
}

// SkipLast returns everything except the last n elements.
func SkipLast[T any](items []T, n int) []T {
	return clone(items[:len(items)-clamp(n, len(items))])
}

// TakeWhile returns elements up to, not including, the first one that fails
// predicate.
func TakeWhile[T any](items []T, predicate core.Predicate[T]) []T {
	i := 0
	for i < len(items) && predicate(items[i]) {
		i++
	}
	return clone(items[:i])
}

// SkipWhile drops elements until the first one that fails predicate and
// returns the rest, including later elements that would match.
func SkipWhile[T any](items []T, predicate core.Predicate[T]) []T {
	i := 0
	for i < len(items) && predicate(items[i]) {
		i++
	}
	return clone(items[i:])
}
