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
	"errors"

	"github.com/montanaflynn/stats"

	"github.com/aaronlmathis/goseq/core"
)

func toFloat64Data[T core.Number](items []T) stats.Float64Data {
	data := make(stats.Float64Data, len(items))
	for i, v := range items {
		data[i] = float64(v)
	}
	return data
}

// statsResult maps the stats package's empty-input error to EmptyResultError.
func statsResult(op string, v float64, err error) (float64, error) {
	if errors.Is(err, stats.EmptyInputErr) {
		return 0, core.NewEmptyResultError(op)
	}
	return v, err
}

// Average returns the arithmetic mean of items.
func Average[T core.Number](items []T) (float64, error) {
	v, err := stats.Mean(toFloat64Data(items))
	return statsResult("average", v, err)
}

// AverageBy averages a projected field.
func AverageBy[T any, N core.Number](items []T, field core.Selector[T, N]) (float64, error) {
	data := make(stats.Float64Data, len(items))
	for i, item := range items {
		data[i] = float64(field(item))
	}
	v, err := stats.Mean(data)
	return statsResult("average", v, err)
}

// Median returns the middle value of items, or the mean of the two middle
// values when the count is even.
func Median[T core.Number](items []T) (float64, error) {
	v, err := stats.Median(toFloat64Data(items))
	return statsResult("median", v, err)
}

// StdDev returns the population standard deviation of items.
func StdDev[T core.Number](items []T) (float64, error) {
	v, err := stats.StandardDeviationPopulation(toFloat64Data(items))
	return statsResult("standard deviation", v, err)
}
