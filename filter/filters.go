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

package filter

import (
	"cmp"
	"regexp"
	"strings"

	"github.com/aaronlmathis/goseq/core"
)

// Package filter provides predicate builders and the selection operators
// (where, any, all, first, last) of GoSeq.
//
// Builders take a field accessor so one predicate can target any field of
// any record type:
//
//	survivingCrew := filter.And(records.IsSurvivor, records.IsCrew)
//	captains := filter.StartsWith(records.FirstName, "Capt")

// Equals matches elements whose field equals expected.
func Equals[T any, V comparable](field core.Selector[T, V], expected V) core.Predicate[T] {
	return func(item T) bool {
		return field(item) == expected
	}
}

// Contains matches items whose field contains substring.
func Contains[T any](field core.Selector[T, string], substring string) core.Predicate[T] {
	return func(item T) bool {
		return strings.Contains(field(item), substring)
	}
}

// StartsWith matches items whose field begins with prefix.
func StartsWith[T any](field core.Selector[T, string], prefix string) core.Predicate[T] {
	return func(item T) bool {
		return strings.HasPrefix(field(item), prefix)
	}
}

// EndsWith matches items whose field ends with suffix.
func EndsWith[T any](field core.Selector[T, string], suffix string) core.Predicate[T] {
	return func(item T) bool {
		return strings.HasSuffix(field(item), suffix)
	}
}

// MatchesRegex panics if pattern does not compile.
func MatchesRegex[T any](field core.Selector[T, string], pattern string) core.Predicate[T] {
	regex := regexp.MustCompile(pattern)
	return func(item T) bool {
		return regex.MatchString(field(item))
	}
}

// GreaterThan matches items whose field is strictly above threshold.
func GreaterThan[T any, V cmp.Ordered](field core.Selector[T, V], threshold V) core.Predicate[T] {
	return func(item T) bool {
		return field(item) > threshold
	}
}

// LessThan matches items whose field is strictly below threshold.
func LessThan[T any, V cmp.Ordered](field core.Selector[T, V], threshold V) core.Predicate[T] {
	return func(item T) bool {
		return field(item) < threshold
	}
}

// Between is inclusive on both ends.
func Between[T any, V cmp.Ordered](field core.Selector[T, V], min, max V) core.Predicate[T] {
	return func(item T) bool {
		v := field(item)
		return v >= min && v <= max
	}
}

// In matches items whose field equals one of values.
func In[T any, V comparable](field core.Selector[T, V], values ...V) core.Predicate[T] {
	valueSet := make(map[V]struct{}, len(values))
	for _, v := range values {
		valueSet[v] = struct{}{}
	}
	return func(item T) bool {
		_, ok := valueSet[field(item)]
		return ok
	}
}

// And matches when every predicate matches. And() matches everything.
func And[T any](predicates ...core.Predicate[T]) core.Predicate[T] {
	return func(item T) bool {
		for _, p := range predicates {
			if !p(item) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches. Or() matches nothing.
func Or[T any](predicates ...core.Predicate[T]) core.Predicate[T] {
	return func(item T) bool {
		for _, p := range predicates {
			if p(item) {
				return true
			}
		}
		return false
	}
}

// Not negates predicate.
func Not[T any](predicate core.Predicate[T]) core.Predicate[T] {
	return func(item T) bool {
		return !predicate(item)
	}
}

// Custom converts a plain function to a Predicate.
func Custom[T any](fn func(T) bool) core.Predicate[T] {
	return core.Predicate[T](fn)
}
