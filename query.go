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
	"cmp"

	"github.com/aaronlmathis/goseq/aggregate"
	"github.com/aaronlmathis/goseq/filter"
	"github.com/aaronlmathis/goseq/transform"
)

// Package goseq provides functional-style collection queries for Go.
//
// The library applies filter, map, reduce, sort, group, and set operators to
// small in-memory datasets, such as records loaded from a flat CSV file.
//
// Core Concepts:
//   - DataSource: loads a complete, ordered snapshot of typed records (see readers.CSVSource).
//   - Predicate: selects elements (see the filter package for builders).
//   - Query: an immutable, reusable chain of operators over a snapshot.
//   - LoadError / EmptyResultError: the two failure kinds.
//
// Example usage:
//
//   passengers, err := records.LoadPassengers(ctx, "data/Titanic.csv")
//   if err != nil { log.Fatal(err) }
//
//   youngest, err := goseq.OrderByKey(goseq.From(passengers), records.Age).
//       Where(records.HasKnownAge).
//       First()
//
// A Query never changes after it is built, so the same Query can be the
// starting point for any number of further queries.

// Query is an immutable query over a snapshot of elements.
// Use From to create one, then chain Where, OrderBy, Take, and terminal
// methods such as Count, First, and Slice.
type Query[T any] struct {
	items []T
}

// From creates a Query over a copy of items.
func From[T any](items []T) Query[T] {
	return Query[T]{items: append(make([]T, 0, len(items)), items...)}
}

// Where keeps the elements matching predicate.
func (q Query[T]) Where(predicate Predicate[T]) Query[T] {
	return Query[T]{items: filter.Where(q.items, predicate)}
}

// OrderBy stably sorts by the comparisons in priority order.
func (q Query[T]) OrderBy(comparisons ...transform.Comparison[T]) Query[T] {
	return Query[T]{items: transform.SortStable(q.items, comparisons...)}
}

// Take keeps the first n elements.
func (q Query[T]) Take(n int) Query[T] {
	return Query[T]{items: transform.Take(q.items, n)}
}

// Skip drops the first n elements.
func (q Query[T]) Skip(n int) Query[T] {
	return Query[T]{items: transform.Skip(q.items, n)}
}

// TakeLast keeps the last n elements.
func (q Query[T]) TakeLast(n int) Query[T] {
	return Query[T]{items: transform.TakeLast(q.items, n)}
}

// SkipLast drops the last n elements.
func (q Query[T]) SkipLast(n int) Query[T] {
	return Query[T]{items: transform.SkipLast(q.items, n)}
}

// TakeWhile keeps elements up to the first one that fails predicate.
func (q Query[T]) TakeWhile(predicate Predicate[T]) Query[T] {
	return Query[T]{items: transform.TakeWhile(q.items, predicate)}
}

// SkipWhile drops elements up to the first one that fails predicate.
func (q Query[T]) SkipWhile(predicate Predicate[T]) Query[T] {
	return Query[T]{items: transform.SkipWhile(q.items, predicate)}
}

// Reverse returns the elements in reverse order.
func (q Query[T]) Reverse() Query[T] {
	return Query[T]{items: transform.Reverse(q.items)}
}

// Prepend adds values before the first element.
func (q Query[T]) Prepend(values ...T) Query[T] {
	return Query[T]{items: transform.Prepend(q.items, values...)}
}

// Append adds values after the last element.
func (q Query[T]) Append(values ...T) Query[T] {
	return Query[T]{items: transform.Append(q.items, values...)}
}

// Slice returns a copy of the query's elements.
func (q Query[T]) Slice() []T {
	return append(make([]T, 0, len(q.items)), q.items...)
}

// Count returns the number of elements.
func (q Query[T]) Count() int {
	return len(q.items)
}

// Any reports whether some element satisfies predicate.
func (q Query[T]) Any(predicate Predicate[T]) bool {
	return filter.Any(q.items, predicate)
}

// All reports whether every element satisfies predicate. It is true for an
// empty query.
func (q Query[T]) All(predicate Predicate[T]) bool {
	return filter.All(q.items, predicate)
}

// First returns the first element, or an ErrEmptyResult error.
func (q Query[T]) First() (T, error) {
	return filter.First(q.items)
}

// Last returns the last element, or an ErrEmptyResult error.
func (q Query[T]) Last() (T, error) {
	return filter.Last(q.items)
}

// ElementAt returns the element at index, or an ErrEmptyResult error when
// index is out of range.
func (q Query[T]) ElementAt(index int) (T, error) {
	return filter.ElementAt(q.items, index)
}

// ForEach calls fn for each element in order.
func (q Query[T]) ForEach(fn func(T)) {
	for _, item := range q.items {
		fn(item)
	}
}

// Select projects each element of q.
func Select[T, U any](q Query[T], fn func(T) U) Query[U] {
	return Query[U]{items: transform.Select(q.items, fn)}
}

// OrderByKey stably sorts q ascending by key.
func OrderByKey[T any, K cmp.Ordered](q Query[T], key func(T) K) Query[T] {
	return Query[T]{items: transform.OrderBy(q.items, key)}
}

// OrderByKeyDescending stably sorts q descending by key.
func OrderByKeyDescending[T any, K cmp.Ordered](q Query[T], key func(T) K) Query[T] {
	return Query[T]{items: transform.OrderByDescending(q.items, key)}
}

// Distinct removes duplicate elements, keeping first occurrences.
func Distinct[T comparable](q Query[T]) Query[T] {
	return Query[T]{items: transform.Distinct(q.items)}
}

// GroupBy partitions q by key in first-encounter order.
func GroupBy[T any, K comparable](q Query[T], key func(T) K) []aggregate.Group[K, T] {
	return aggregate.GroupBy(q.items, key)
}
