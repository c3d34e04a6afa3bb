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

package goseq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronlmathis/goseq/transform"
)

var nums = []int{3, 4, 2, 4, 5, 6, 32, 9, 4, 6, 76, 8, 432, 4, 2, 5}

func isOdd(n int) bool { return n%2 == 1 }

func TestQuery_Chain(t *testing.T) {
	got := From(nums).
		Where(func(n int) bool { return n > 3 }).
		OrderBy(transform.Descending(transform.Identity[int])).
		Skip(1).
		Take(3).
		Slice()
	assert.Equal(t, []int{76, 32, 9}, got)
}

func TestQuery_IsImmutable(t *testing.T) {
	input := []int{3, 1, 2}
	base := From(input)
	input[0] = 99

	sorted := OrderByKey(base, transform.Identity[int])
	reversed := base.Reverse()
	appended := base.Append(4)

	assert.Equal(t, []int{3, 1, 2}, base.Slice())
	assert.Equal(t, []int{1, 2, 3}, sorted.Slice())
	assert.Equal(t, []int{2, 1, 3}, reversed.Slice())
	assert.Equal(t, []int{3, 1, 2, 4}, appended.Slice())

	out := base.Slice()
	out[0] = 42
	assert.Equal(t, []int{3, 1, 2}, base.Slice())
}

func TestQuery_Partitions(t *testing.T) {
	q := From(nums)
	assert.Equal(t, []int{3, 4, 2, 4, 5}, q.Take(5).Slice())
	assert.Equal(t, []int{8, 432, 4, 2, 5}, q.TakeLast(5).Slice())
	assert.Equal(t, []int{3, 4, 2, 4, 5, 6, 32, 9, 4, 6, 76}, q.SkipLast(5).Slice())
	assert.Equal(t, []int{9, 4, 6, 76, 8, 432, 4, 2, 5}, q.SkipWhile(func(n int) bool { return n != 9 }).Slice())
	assert.Equal(t, []int{3, 4, 2, 4, 5, 6}, q.TakeWhile(func(n int) bool { return n < 32 }).Slice())
	assert.Equal(t, []int{-1, 3}, q.Prepend(-1).Take(2).Slice())
}

func TestQuery_Terminals(t *testing.T) {
	q := From(nums)
	assert.Equal(t, 16, q.Count())
	assert.True(t, q.Any(func(n int) bool { return n > 5 }))
	assert.True(t, q.All(func(n int) bool { return n > 0 }))
	assert.Equal(t, []int{3, 5, 9, 5}, q.Where(isOdd).Slice())

	v, err := q.ElementAt(6)
	require.NoError(t, err)
	assert.Equal(t, 32, v)

	sum := 0
	q.ForEach(func(n int) { sum += n })
	assert.Equal(t, 602, sum)
}

func TestQuery_FirstLast(t *testing.T) {
	one := From([]string{"only"})
	first, err := one.First()
	require.NoError(t, err)
	last, err := one.Last()
	require.NoError(t, err)
	assert.Equal(t, first, last)

	empty := From([]string{})
	_, err = empty.First()
	assert.True(t, errors.Is(err, ErrEmptyResult))

	_, err = From(nums).Where(func(n int) bool { return n > 1000 }).Last()
	var emptyErr *EmptyResultError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "last", emptyErr.Op)

	assert.False(t, empty.Any(func(string) bool { return true }))
	assert.True(t, empty.All(func(string) bool { return false }))
}

type player struct {
	Name   string
	Team   string
	Points float64
}

func TestQuery_KeyedOperators(t *testing.T) {
	players := []player{
		{"Lillard", "POR", 26.9},
		{"Harden", "HOU", 36.1},
		{"McCollum", "POR", 21.0},
		{"Capela", "HOU", 16.6},
		{"Nurkic", "POR", 15.6},
	}
	team := func(p player) string { return p.Team }
	points := func(p player) float64 { return p.Points }

	top := OrderByKeyDescending(From(players), points).Take(2)
	assert.Equal(t, []string{"Harden", "Lillard"}, Select(top, func(p player) string { return p.Name }).Slice())

	teams := Distinct(Select(From(players), team)).Slice()
	assert.Equal(t, []string{"POR", "HOU"}, teams)

	groups := GroupBy(From(players), team)
	require.Len(t, groups, 2)
	assert.Equal(t, "POR", groups[0].Key)
	assert.Equal(t, 3, groups[0].Count())
	assert.Equal(t, 2, groups[1].Count())

	byTeamThenPoints := From(players).OrderBy(
		transform.Ascending(team),
		transform.Descending(points),
	)
	got := Select(byTeamThenPoints, func(p player) string { return p.Name }).Slice()
	assert.Equal(t, []string{"Harden", "Capela", "Lillard", "McCollum", "Nurkic"}, got)
}
