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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aaronlmathis/goseq"
	"github.com/aaronlmathis/goseq/aggregate"
	"github.com/aaronlmathis/goseq/core"
	"github.com/aaronlmathis/goseq/filter"
	"github.com/aaronlmathis/goseq/records"
	"github.com/aaronlmathis/goseq/transform"
	"github.com/aaronlmathis/goseq/writers"
)

// Package demo runs the query demonstrations over the loaded datasets and
// writes the results as text.

// Titanic runs the passenger queries. Selections with no result, such as the
// youngest passenger of a file with no known ages, are reported as unknown.
func Titanic(w *writers.TextWriter, passengers []records.Passenger) error {
	w.Section("Titanic")
	w.Linef("Titanic passenger/crew count: %d", len(passengers))

	// find all
	survivors := filter.Where(passengers, records.IsSurvivor)
	w.Linef("Titanic survivors count: %d", len(survivors))

	crew := filter.Where(passengers, records.IsCrew)
	w.Linef("Titanic crew count: %d", len(crew))

	survivingCrew := filter.Where(passengers, filter.And(records.IsSurvivor, records.IsCrew))
	w.Linef("Number of the crew that survived: %d", len(survivingCrew))

	youngSurvivors := filter.Where(passengers, filter.And(
		records.HasKnownAge,
		filter.LessThan(records.Age, 18),
		filter.Equals(records.PassengerClass, "1st Class"),
		records.IsSurvivor,
	))
	for _, p := range youngSurvivors {
		w.Line(p)
	}
	w.Linef("1st class survivors under 18: %d", len(youngSurvivors))

	// map
	firstNames := transform.Select(passengers, records.FirstName)
	w.Linef("We have a list of %d first names", len(firstNames))

	titles := transform.Distinct(transform.Select(firstNames, transform.FirstToken))
	w.Linef("What are the titles of the people on the Titanic? %s", strings.Join(titles, ","))

	// reduce
	totalAges := aggregate.SumBy(passengers, records.Age)
	if len(passengers) > 0 {
		w.Linef("Total of all ages %s and the average %s", formatFloat(totalAges), formatFloat(totalAges/float64(len(passengers))))
	}

	if avg, err := aggregate.AverageBy(survivors, records.Age); err == nil {
		w.Linef("Average age of survivors %s", formatFloat(avg))
	} else {
		w.Linef("Average age of survivors: %v", err)
	}

	oldThirdClass := filter.Count(passengers, filter.And(
		records.IsSurvivor,
		filter.GreaterThan(records.Age, 60),
		filter.Equals(records.PassengerClass, "3rd Class"),
	))
	w.Linef("3rd class passengers over 60 that survived: %d", oldThirdClass)

	// two captains were aboard; one travelled as a passenger
	for _, c := range filter.Where(passengers, filter.StartsWith(records.FirstName, "Capt")) {
		w.Line(c)
	}

	musicians := filter.Where(passengers, filter.Equals(records.Role, "Musician"))
	for _, m := range musicians {
		w.Line(m)
	}

	ladies := filter.Count(passengers, filter.StartsWith(records.FirstName, "Mrs"))
	w.Linef("Number of Mrs's on board %d", ladies)

	// any, all, find
	oldSurvivors := filter.Any(passengers, filter.And(records.IsSurvivor, filter.GreaterThan(records.Age, 80)))
	w.Linef("Did any octogenarians survive? %t", oldSurvivors)

	allMusiciansDied := filter.All(musicians, filter.Not(records.IsSurvivor))
	w.Linef("Did every musician die? %t", allMusiciansDied)

	if first30Plus, err := filter.FirstWhere(passengers, filter.And(filter.GreaterThan(records.Age, 30), records.IsSurvivor)); err == nil {
		w.Linef("First survivor over 30: %s", first30Plus)
	}

	youngest, err := records.Youngest(passengers)
	switch {
	case errors.Is(err, core.ErrEmptyResult):
		w.Line("The youngest passenger on the Titanic is unknown")
	case err != nil:
		return fmt.Errorf("youngest passenger: %w", err)
	default:
		w.Linef("The youngest passenger on the Titanic was %s %s age: %s", youngest.FirstName, youngest.LastName, formatFloat(youngest.Age))
	}
	oldest, err := records.Oldest(passengers)
	switch {
	case errors.Is(err, core.ErrEmptyResult):
		w.Line("The oldest   passenger on the Titanic is unknown")
	case err != nil:
		return fmt.Errorf("oldest passenger: %w", err)
	default:
		w.Linef("The oldest   passenger on the Titanic was %s %s age: %s", oldest.FirstName, oldest.LastName, formatFloat(oldest.Age))
	}

	// sort
	for _, m := range transform.OrderBy(musicians, records.LastName) {
		w.Line(m)
	}

	byNameLength := goseq.OrderByKey(goseq.From(passengers), func(p records.Passenger) int {
		return len(p.LastName)
	})
	if byNameLength.Count() == 0 {
		w.Line("The shortest last name is unknown")
		w.Line("The longest  last name is unknown")
	} else {
		shortest, err := byNameLength.First()
		if err != nil {
			return fmt.Errorf("shortest last name: %w", err)
		}
		longest, err := byNameLength.Last()
		if err != nil {
			return fmt.Errorf("longest last name: %w", err)
		}
		w.Linef("The shortest last name is: %s", shortest.LastName)
		w.Linef("The longest  last name is: %s", longest.LastName)
	}

	roles := transform.Distinct(transform.Select(passengers, records.Role))
	w.Linef("Roles aboard: %d distinct", len(roles))

	// group
	w.Table([]string{"Class", "#"}, keyCountRows(aggregate.CountByKey(passengers, records.PassengerClass), func(k string) string { return k }))
	w.Table([]string{"Age", "#"}, keyCountRows(aggregate.CountByKey(passengers, records.Age), formatFloat))

	return arrayFunctions(w)
}

// arrayFunctions demonstrates the operators on a plain slice of ages.
func arrayFunctions(w *writers.TextWriter) error {
	ages := []int{14, 17, 11, 32, 33, 16, 40, 15, 4, 18, 912, 543, 33}
	adult := func(age int) bool { return age >= 18 }

	w.Linef("reduce -    %d", aggregate.Aggregate(ages, 0, func(tot, n int) int { return tot - n }))
	w.Linef("reduce +    %d", aggregate.Aggregate(ages, 0, func(tot, n int) int { return tot + n }))
	w.Linef("every       %t", filter.All(ages, adult))
	w.Linef("some        %t", filter.Any(ages, adult))
	w.Linef("filter      %d", filter.Count(ages, func(age int) bool { return age >= 100 }))

	find, err := filter.FirstWhere(ages, adult)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}
	w.Linef("find        %d", find)
	w.Linef("includes    %t", transform.Contains(ages, 16))
	w.Linef("indexOf     %d", transform.IndexOf(ages, 33))
	w.Linef("lastIndexOf %d", transform.LastIndexOf(ages, 33))
	return nil
}

func keyCountRows[K comparable](counts []aggregate.KeyCount[K], format func(K) string) [][]string {
	rows := make([][]string, len(counts))
	for i, kc := range counts {
		rows[i] = []string{format(kc.Key), strconv.Itoa(kc.Count)}
	}
	return rows
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
