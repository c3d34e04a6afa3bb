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
	"testing"

	"github.com/stretchr/testify/assert"
)

var nums = []int{3, 4, 2, 4, 5, 6, 32, 9, 4, 6, 76, 8, 432, 4, 2, 5}

func TestSelect(t *testing.T) {
	doubled := Select(nums[:4], func(n int) int { return n * 2 })
	assert.Equal(t, []int{6, 8, 4, 8}, doubled)

	assert.Equal(t, []string{}, Select([]int{}, func(n int) string { return "" }))

	words := SelectMany([]string{"a b", "c"}, strings.Fields)
	assert.Equal(t, []string{"a", "b", "c"}, words)
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "Mrs", FirstToken("Mrs Rhoda Mary 'Rosa'"))
	assert.Equal(t, "Capt", FirstToken("  Capt   Edward"))
	assert.Equal(t, "", FirstToken("   "))
}

func TestDistinct(t *testing.T) {
	got := Distinct(nums)
	assert.ElementsMatch(t, []int{2, 3, 4, 5, 6, 8, 9, 32, 76, 432}, got)
	assert.Equal(t, []int{3, 4, 2, 5, 6, 32, 9, 76, 8, 432}, got, "first occurrence order")
	assert.Len(t, ToSet(nums), len(got))

	byLen := DistinctBy([]string{"aa", "b", "cc", "d", "eee"}, func(s string) int { return len(s) })
	assert.Equal(t, []string{"aa", "b", "eee"}, byLen)
}

func TestConcatReverse(t *testing.T) {
	assert.Equal(t, []int{5, 4, 3}, Reverse([]int{3, 4, 5}))
	assert.Equal(t, []int{-1, 3, 4}, Prepend([]int{3, 4}, -1))
	assert.Equal(t, []int{3, 4, 9}, Append([]int{3, 4}, 9))
	assert.Equal(t, []int{1, 2, 3}, Concat([]int{1}, nil, []int{2, 3}))

	in := []int{1, 2, 3}
	out := Reverse(in)
	out[0] = 99
	assert.Equal(t, []int{1, 2, 3}, in)
}

func TestPartition(t *testing.T) {
	tests := []struct {
		name string
		got  []int
		want []int
	}{
		{"Take", Take(nums, 5), []int{3, 4, 2, 4, 5}},
		{"Take more than length", Take([]int{1, 2}, 5), []int{1, 2}},
		{"Take negative", Take(nums, -1), []int{}},
		{"Skip", Skip(nums, 12), []int{432, 4, 2, 5}},
		{"Skip everything", Skip(nums, 100), []int{}},
		{"TakeLast", TakeLast(nums, 5), []int{8, 432, 4, 2, 5}},
		{"SkipLast", SkipLast(nums, 12), []int{3, 4, 2, 4}},
		{"TakeWhile", TakeWhile(nums, func(n int) bool { return n < 32 }), []int{3, 4, 2, 4, 5, 6}},
		{"SkipWhile", SkipWhile(nums, func(n int) bool { return n != 9 }), []int{9, 4, 6, 76, 8, 432, 4, 2, 5}},
		{"SkipWhile keeps later matches", SkipWhile([]int{1, 5, 1}, func(n int) bool { return n < 3 }), []int{5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestPartitionDoesNotAlias(t *testing.T) {
	in := []int{1, 2, 3}
	head := Take(in, 2)
	head = append(head, 42)
	assert.Equal(t, []int{1, 2, 3}, in)
	assert.Equal(t, []int{1, 2, 42}, head)
}

type entry struct {
	Key   string
	Value int
	Seq   int
}

func TestSortStable(t *testing.T) {
	entries := []entry{
		{"b", 2, 0},
		{"a", 2, 1},
		{"c", 1, 2},
		{"a", 1, 3},
		{"b", 2, 4},
	}
	key := func(e entry) string { return e.Key }
	value := func(e entry) int { return e.Value }

	byKey := OrderBy(entries, key)
	assert.Equal(t, []int{1, 3, 0, 4, 2}, seqs(byKey), "ties keep input order")

	byValueDesc := OrderByDescending(entries, value)
	assert.Equal(t, []int{0, 1, 4, 2, 3}, seqs(byValueDesc))

	multi := SortStable(entries, Descending(value), Ascending(key))
	assert.Equal(t, []int{1, 0, 4, 3, 2}, seqs(multi))

	assert.Equal(t, []int{0, 1, 2, 3, 4}, seqs(entries), "input is not reordered")

	sorted := OrderBy(nums, Identity[int])
	assert.Equal(t, []int{2, 2, 3, 4, 4, 4, 4, 5, 5, 6, 6, 8, 9, 32, 76, 432}, sorted)
}

func seqs(es []entry) []int {
	return Select(es, func(e entry) int { return e.Seq })
}

func TestSets(t *testing.T) {
	assert.True(t, Contains(nums, 9))
	assert.False(t, Contains(nums, 10))
	assert.Equal(t, 1, IndexOf(nums, 4))
	assert.Equal(t, 13, LastIndexOf(nums, 4))
	assert.Equal(t, -1, IndexOf(nums, 10))
	assert.Equal(t, -1, LastIndexOf([]int{}, 10))

	assert.Equal(t, []int{3, 4, 9, 76, 8, 432}, Except(nums, []int{32, 5, 6, 2}))
	assert.Equal(t, []int{4, 2, 5}, Intersect(nums, []int{5, 2, 4, 100}))
	assert.Equal(t, []int{1, 2, 3, 4}, Union([]int{1, 2, 2}, []int{3, 2, 4}))
}

func TestGenerators(t *testing.T) {
	assert.Equal(t, []int{-5, -4, -3, -2, -1}, Range(-5, 5))
	assert.Equal(t, []int{}, Range(0, -1))
	assert.Equal(t, []string{"Beetlejuice", "Beetlejuice", "Beetlejuice"}, Repeat("Beetlejuice", 3))
	assert.Equal(t, []string{}, Repeat("x", 0))
}
