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
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/aaronlmathis/goseq/core"
)

// decimalCtx is used for currency arithmetic. Sums of currency values stay
// exact well within 34 digits.
var decimalCtx = apd.BaseContext.WithPrecision(34)

// SumDecimal returns the exact total of a decimal field. The sum of an empty
// sequence is 0.
func SumDecimal[T any](items []T, field core.Selector[T, *apd.Decimal]) (*apd.Decimal, error) {
	total := apd.New(0, 0)
	for _, item := range items {
		if _, err := decimalCtx.Add(total, total, field(item)); err != nil {
			return nil, fmt.Errorf("sum: %w", err)
		}
	}
	return total, nil
}

// AverageDecimal returns the mean of a decimal field rounded to two places.
func AverageDecimal[T any](items []T, field core.Selector[T, *apd.Decimal]) (*apd.Decimal, error) {
	if len(items) == 0 {
		return nil, core.NewEmptyResultError("average")
	}
	total, err := SumDecimal(items, field)
	if err != nil {
		return nil, err
	}
	avg := new(apd.Decimal)
	if _, err := decimalCtx.Quo(avg, total, apd.New(int64(len(items)), 0)); err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}
	if _, err := decimalCtx.Quantize(avg, avg, -2); err != nil {
		return nil, fmt.Errorf("average: %w", err)
	}
	return avg, nil
}

// MaxDecimalBy returns the first element with the largest decimal field.
func MaxDecimalBy[T any](items []T, field core.Selector[T, *apd.Decimal]) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, core.NewEmptyResultError("max")
	}
	best := items[0]
	bestKey := field(best)
	for _, item := range items[1:] {
		if k := field(item); k.Cmp(bestKey) > 0 {
			best, bestKey = item, k
		}
	}
	return best, nil
}
