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

package demo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aaronlmathis/goseq"
	"github.com/aaronlmathis/goseq/aggregate"
	"github.com/aaronlmathis/goseq/filter"
	"github.com/aaronlmathis/goseq/transform"
	"github.com/aaronlmathis/goseq/writers"
)

// Nums and Sub are the sequences used by Numbers.
var (
	Nums = []int{3, 4, 2, 4, 5, 6, 32, 9, 4, 6, 76, 8, 432, 4, 2, 5}
	Sub  = []int{32, 5, 6, 2}
)

// Numbers runs the sequence operators over Nums.
func Numbers(w *writers.TextWriter) error {
	w.Section("Numbers")
	nums := goseq.From(Nums)
	isOdd := func(n int) bool { return n%2 == 1 }

	w.Linef("above10   %d", aggregate.Sum(filter.Where(Nums, func(n int) bool { return n > 10 })))
	w.Linef("any       %t", nums.Any(func(n int) bool { return n > 5 }))
	w.Linef("all       %t", nums.All(func(n int) bool { return n > 0 }))

	average, err := aggregate.Average(Nums)
	if err != nil {
		return fmt.Errorf("average: %w", err)
	}
	w.Linef("average   %s", strconv.FormatFloat(average, 'f', 4, 64))
	w.Linef("contains  %t", transform.Contains(Nums, 9))
	w.Linef("count     %d", nums.Count())
	w.Linef("distinct  %s", join(transform.Distinct(Nums)))

	elementAt, err := nums.ElementAt(6)
	if err != nil {
		return err
	}
	w.Linef("elementAt %d", elementAt)
	w.Linef("except    %s", join(transform.Except(Nums, Sub)))

	first, err := nums.First()
	if err != nil {
		return err
	}
	last, err := nums.Last()
	if err != nil {
		return err
	}
	maxN, err := aggregate.Max(Nums)
	if err != nil {
		return err
	}
	minN, err := aggregate.Min(Nums)
	if err != nil {
		return err
	}
	w.Linef("first     %d", first)
	w.Linef("last      %d", last)
	w.Linef("max       %d", maxN)
	w.Linef("min       %d", minN)

	w.Linef("orderBy   %s", join(goseq.OrderByKey(nums, transform.Identity[int]).Slice()))
	w.Linef("prepend   %s", join(nums.Prepend(-1).Slice()))
	w.Linef("range     %s", join(transform.Range(-5, 5)))
	w.Linef("repeat    %s", strings.Join(transform.Repeat("Beetlejuice", 3), ","))
	w.Linef("reverse   %s", join(nums.Reverse().Slice()))
	w.Linef("skip      %s", join(nums.Skip(5).Slice()))
	w.Linef("skipLast  %s", join(nums.SkipLast(5).Slice()))
	w.Linef("skipWhile %s", join(nums.SkipWhile(func(n int) bool { return n != 9 }).Slice()))
	w.Linef("sum       %d", aggregate.Sum(Nums))
	w.Linef("take      %s", join(nums.Take(5).Slice()))
	w.Linef("takeLast  %s", join(nums.TakeLast(5).Slice()))
	w.Linef("takeWhile %s", join(nums.TakeWhile(func(n int) bool { return n < 32 }).Slice()))
	w.Linef("where     %s", join(nums.Where(isOdd).Slice()))

	sorted := transform.OrderBy(Nums, transform.Identity[int])
	w.Linef("toArray   %s", join(sorted))
	w.Linef("toSet     %d unique", len(transform.ToSet(sorted)))
	w.Linef("toList    %s", join(transform.OrderBy(filter.Where(Nums, isOdd), transform.Identity[int])))

	median, err := aggregate.Median(Nums)
	if err != nil {
		return err
	}
	stdDev, err := aggregate.StdDev(Nums)
	if err != nil {
		return err
	}
	w.Linef("median    %s", strconv.FormatFloat(median, 'f', 1, 64))
	w.Linef("stdDev    %s", strconv.FormatFloat(stdDev, 'f', 4, 64))
	return nil
}

func join[T any](items []T) string {
	parts := transform.Select(items, func(v T) string { return fmt.Sprint(v) })
	return "[" + strings.Join(parts, ",") + "]"
}
