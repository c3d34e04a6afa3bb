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
	"github.com/aaronlmathis/goseq/core"
)

// Group is a bucket of elements sharing a key. Items keep their original
// relative order.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Count returns the number of items in the group.
func (g Group[K, T]) Count() int {
	return len(g.Items)
}

// KeyCount is a group key with the size of its group.
type KeyCount[K comparable] struct {
	Key   K
	Count int
}

// GroupBy partitions items by key. Groups are returned in the order their
// keys are first encountered; every element lands in exactly one group.
func GroupBy[T any, K comparable](items []T, key core.Selector[T, K]) []Group[K, T] {
	index := make(map[K]int)
	var groups []Group[K, T]

	for _, item := range items {
		k := key(item)
		i, exists := index[k]
		if !exists {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}

// CountByKey returns the size of each group in first-encounter order.
func CountByKey[T any, K comparable](items []T, key core.Selector[T, K]) []KeyCount[K] {
	groups := GroupBy(items, key)
	counts := make([]KeyCount[K], len(groups))
	for i, g := range groups {
		counts[i] = KeyCount[K]{Key: g.Key, Count: g.Count()}
	}
	return counts
}

// ToLookup indexes the groups by key.
func ToLookup[T any, K comparable](items []T, key core.Selector[T, K]) map[K][]T {
	lookup := make(map[K][]T)
	for _, g := range GroupBy(items, key) {
		lookup[g.Key] = g.Items
	}
	return lookup
}
