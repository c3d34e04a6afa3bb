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
	"strconv"
	"strings"

	"github.com/aaronlmathis/goseq"
	"github.com/aaronlmathis/goseq/aggregate"
	"github.com/aaronlmathis/goseq/filter"
	"github.com/aaronlmathis/goseq/transform"
	"github.com/aaronlmathis/goseq/writers"
)

// Inputs for Words.
var (
	WordNumbers = []int{7, 6, 3, 3, 6, 76, 3, 6, 8, 6, 3, 243, 5, 7}
	Sentence    = "Convert this string into an array of words"
	Repeated    = []int{3, 4, 2, 4, 5, 6, 432, 9, 4, 6, 76, 8, 432, 4, 2, 5}
)

// Words answers small exercises over a slice of numbers and the words of a
// sentence.
func Words(w *writers.TextWriter) error {
	w.Section("Words")
	words := strings.Split(Sentence, " ")

	maxNumber, err := aggregate.Max(WordNumbers)
	if err != nil {
		return err
	}
	maxWord, err := aggregate.Max(words)
	if err != nil {
		return err
	}
	w.Linef("Largest number: %d", maxNumber)
	w.Linef("Largest word: %s", maxWord)
	w.Linef("Any words end with g? %t", filter.Any(words, filter.EndsWith(transform.Identity[string], "g")))
	w.Linef("Any numbers bigger than 20? %t", filter.Any(WordNumbers, func(n int) bool { return n > 20 }))
	w.Linef("Sum of all numbers: %d", aggregate.Sum(WordNumbers))
	w.Linef("Sum of numbers over 50: %d", aggregate.Sum(filter.Where(WordNumbers, func(n int) bool { return n > 50 })))

	middle, err := filter.ElementAt(WordNumbers, len(WordNumbers)/2)
	if err != nil {
		return err
	}
	middleWord, err := filter.ElementAt(words, len(words)/2)
	if err != nil {
		return err
	}
	w.Linef("Middle number: %d", middle)
	w.Linef("Middle word: %s", middleWord)
	w.Linef("First 4 numbers: %s", join(transform.Take(WordNumbers, 4)))
	w.Linef("Words 4-6: %s", strings.Join(goseq.From(words).Skip(3).Take(3).Slice(), " "))

	avg, err := aggregate.Average(WordNumbers)
	if err != nil {
		return err
	}
	w.Linef("Average: %s", strconv.FormatFloat(avg, 'f', 4, 64))

	// the largest value repeats, so the top two sorted values are equal
	secondLargest, err := goseq.OrderByKey(goseq.From(Repeated), transform.Identity[int]).TakeLast(2).First()
	if err != nil {
		return err
	}
	w.Linef("Second of the top two: %d", secondLargest)

	largest, err := aggregate.Max(Repeated)
	if err != nil {
		return err
	}
	exceptLargest, err := aggregate.Max(transform.Except(Repeated, []int{largest}))
	if err != nil {
		return err
	}
	w.Linef("Largest after removing the largest: %d", exceptLargest)

	below16 := filter.Where(Repeated, func(n int) bool { return n < 16 })
	if avgBelow16, err := aggregate.Average(below16); err == nil {
		w.Linef("Average below 16: %s", strconv.FormatFloat(avgBelow16, 'f', 4, 64))
	}
	w.Linef("Any odd below 16? %t", filter.Any(below16, func(n int) bool { return n%2 == 1 }))
	return nil
}
