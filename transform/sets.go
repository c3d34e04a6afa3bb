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

// Contains reports whether value occurs in items.
func Contains[T comparable](items []T, value T) bool {
	return IndexOf(items, value) >= 0
}

// IndexOf returns the index of the first occurrence of value, or -1.
func IndexOf[T comparable](items []T, value T) int {
	for i, item := range items {
		if item == value {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of value, or -1.
func LastIndexOf[T comparable](items []T, value T) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == value {
			return i
		}
	}
	return -1
}

// Except returns the distinct elements of items that are not in exclude,
// in first-occurrence order.
func Except[T comparable](items, exclude []T) []T {
	drop := ToSet(exclude)
	result := make([]T, 0)
	for _, item := range items {
		if _, ok := drop[item]; ok {
			continue
		}
		drop[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// Intersect returns the distinct elements of a that also occur in b.
func Intersect[T comparable](a, b []T) []T {
	keep := ToSet(b)
	result := make([]T, 0)
	for _, item := range a {
		if _, ok := keep[item]; ok {
			delete(keep, item)
			result = append(result, item)
		}
	}
	return result
}

// Union returns the distinct elements of a followed by those of b.
func Union[T comparable](a, b []T) []T {
	return Distinct(Concat(a, b))
}

// Range returns count consecutive integers starting at start.
func Range(start, count int) []int {
	if count < 0 {
		count = 0
	}
	result := make([]int, count)
	for i := range result {
		result[i] = start + i
	}
	return result
}

// Repeat returns value n times.
func Repeat[T any](value T, n int) []T {
	if n < 0 {
		n = 0
	}
	result := make([]T, n)
	for i := range result {
		result[i] = value
	}
	return result
}
