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

	"github.com/aaronlmathis/goseq"
	"github.com/aaronlmathis/goseq/aggregate"
	"github.com/aaronlmathis/goseq/filter"
	"github.com/aaronlmathis/goseq/records"
	"github.com/aaronlmathis/goseq/writers"
)

// TopScorers is the number of rows in the scoring table.
const TopScorers = 10

// NBA runs the player queries.
func NBA(w *writers.TextWriter, players []records.NBAPlayer) error {
	w.Section("NBA")
	w.Linef("Player count: %d", len(players))

	for _, p := range filter.Where(players, filter.Equals(records.Team, "POR")) {
		w.Line(p)
	}

	top := goseq.OrderByKeyDescending(goseq.From(players), records.Points).Take(TopScorers)
	rows := make([][]string, 0, top.Count())
	top.ForEach(func(p records.NBAPlayer) {
		rows = append(rows, []string{p.Name, p.Team, p.Position, strconv.FormatFloat(p.Points, 'f', 1, 64)})
	})
	w.Table([]string{"Player", "Team", "Position", "Points"}, rows)

	payroll, err := aggregate.SumDecimal(players, records.Salary)
	if err != nil {
		return fmt.Errorf("payroll: %w", err)
	}
	w.Linef("Total payroll: %s", records.FormatSalary(payroll))

	if avg, err := aggregate.AverageDecimal(players, records.Salary); err == nil {
		w.Linef("Average salary: %s", records.FormatSalary(avg))
	}
	if best, err := aggregate.MaxDecimalBy(players, records.Salary); err == nil {
		w.Linef("Highest paid: %s", best)
	}

	teamRows := make([][]string, 0)
	for _, g := range aggregate.GroupBy(players, records.Team) {
		total, err := aggregate.SumDecimal(g.Items, records.Salary)
		if err != nil {
			return fmt.Errorf("payroll for %s: %w", g.Key, err)
		}
		teamRows = append(teamRows, []string{g.Key, strconv.Itoa(g.Count()), records.FormatSalary(total)})
	}
	w.Table([]string{"Team", "#", "Payroll"}, teamRows)

	w.Table([]string{"Position", "#"}, keyCountRows(aggregate.CountByKey(players, records.Position), func(k string) string { return k }))

	w.Linef("Anyone play all 82 games? %t", filter.Any(players, filter.GreaterThan(records.GamesPlayed, 81)))
	w.Linef("Everyone played at least one game? %t", filter.All(players, filter.GreaterThan(records.GamesPlayed, 0)))

	if avg, err := aggregate.AverageBy(players, records.Points); err == nil {
		w.Linef("Average points: %s", strconv.FormatFloat(avg, 'f', 2, 64))
	}
	return nil
}
