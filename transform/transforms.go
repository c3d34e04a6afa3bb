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
	"strings"

	"github.com/aaronlmathis/goseq/core"
)

// Package transform provides projection, deduplication, ordering,
// partitioning, and sequence utilities for GoSeq.
//
// Every function returns a new slice; inputs are never modified.

// Select projects every element, preserving order and duplicates.
func Select[T, U any](items []T, fn core.Selector[T, U]) []U {
	result := make([]U, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}

// SelectMany projects every element to a slice and flattens the results.
func SelectMany[T, U any](items []T, fn core.Selector[T, []U]) []U {
	result := make([]U, 0, len(items))
	for _, item := range items {
		result = append(result, fn(item)...)
	}
	return result
}

// FirstToken returns the first whitespace-separated token of s, or "" if s
// is blank.
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Distinct removes duplicates, keeping the first occurrence of each value.
func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	result := make([]T, 0)
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		result = append(result, item)
	}
	return result
}

// DistinctBy removes elements whose key was already seen.
func DistinctBy[T any, K comparable](items []T, key core.Selector[T, K]) []T {
	seen := make(map[K]struct{}, len(items))
	result := make([]T, 0)
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, item)
	}
	return result
}

// ToSet returns the distinct elements of items as a set.
func ToSet[T comparable](items []T) map[T]struct{} {
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	result := make([]T, len(items))
	for i, item := range items {
		result[len(items)-1-i] = item
	}
	return result
}

// Prepend returns values followed by items.
func Prepend[T any](items []T, values ...T) []T {
	return Concat(values, items)
}

// Append returns items followed by values.
func Append[T any](items []T, values ...T) []T {
	return Concat(items, values)
}

// Concat joins seqs into one new slice.
func Concat[T any](seqs ...[]T) []T {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}
	result := make([]T, 0, n)
	for _, s := range seqs {
		result = append(result, s...)
	}
	return result
}
