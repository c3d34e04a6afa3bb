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

package records

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/dustin/go-humanize"

	"github.com/aaronlmathis/goseq/core"
	"github.com/aaronlmathis/goseq/readers"
)

// Player file columns, in file order. Column 0 is a row index and is ignored.
const (
	PlayerColIndex = iota
	PlayerColName
	PlayerColTeam
	PlayerColSalary
	PlayerColPosition
	PlayerColGamesPlayed
	PlayerColMinutes
	PlayerColFieldGoalsMade
	PlayerColFieldGoalsAttempted
	PlayerColThreePtsMade
	PlayerColThreePtsAttempted
	PlayerColFreeThrowsMade
	PlayerColFreeThrowsAttempted
	PlayerColTurnovers
	PlayerColPersonalFouls
	PlayerColOffensiveRebounds
	PlayerColDefensiveRebounds
	PlayerColRebounds
	PlayerColAssists
	PlayerColSteals
	PlayerColBlocks
	PlayerColPoints

	PlayerColumns
)

// PlayerHeader is the documented header layout of the player file.
var PlayerHeader = []string{
	"index", "name", "team", "salary", "position",
	"gamesPlayed", "minutes", "fieldGoalsMade", "fieldGoalsAttempted",
	"threePtsMade", "threePtsAttempted", "freeThrowsMade", "freeThrowsAttempted",
	"turnovers", "personalFouls", "offensiveRebounds", "defensiveRebounds",
	"rebounds", "assists", "steals", "blocks", "points",
}

// NBAPlayer is one season line for a basketball player. Salary is an exact
// decimal.
type NBAPlayer struct {
	Name     string
	Team     string
	Salary   apd.Decimal
	Position string

	GamesPlayed         float64
	Minutes             float64
	FieldGoalsMade      float64
	FieldGoalsAttempted float64
	ThreePtsMade        float64
	ThreePtsAttempted   float64
	FreeThrowsMade      float64
	FreeThrowsAttempted float64
	Turnovers           float64
	PersonalFouls       float64
	OffensiveRebounds   float64
	DefensiveRebounds   float64
	Rebounds            float64
	Assists             float64
	Steals              float64
	Blocks              float64
	Points              float64
}

// String renders the player as "<name> plays for <team> at <position> for <salary>".
func (p NBAPlayer) String() string {
	return fmt.Sprintf("%s plays for %s at %s for %s", p.Name, p.Team, p.Position, FormatSalary(&p.Salary))
}

// salaryCtx rounds half-cents up, as a ledger would.
var salaryCtx = apd.BaseContext.WithPrecision(34)

// FormatSalary renders d as US currency rounded to the cent, e.g.
// "$1,234,567.00". The value never passes through a float.
func FormatSalary(d *apd.Decimal) string {
	var cents apd.Decimal
	if _, err := salaryCtx.Quantize(&cents, d, -2); err != nil {
		return "$" + d.Text('f')
	}
	sign := ""
	if cents.Negative && !cents.IsZero() {
		sign = "-"
	}
	cents.Negative = false

	whole, frac, _ := strings.Cut(cents.Text('f'), ".")
	n, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return "$" + d.Text('f')
	}
	return sign + "$" + humanize.BigComma(n) + "." + frac
}

// ParsePlayer builds an NBAPlayer from the fields of one line.
func ParsePlayer(fields []string) (NBAPlayer, error) {
	if len(fields) < PlayerColumns {
		return NBAPlayer{}, &core.ParseError{
			Column: "row",
			Err:    fmt.Errorf("expected %d fields, got %d", PlayerColumns, len(fields)),
		}
	}

	p := NBAPlayer{
		Name:     fields[PlayerColName],
		Team:     fields[PlayerColTeam],
		Position: fields[PlayerColPosition],
	}

	salary := strings.TrimSpace(fields[PlayerColSalary])
	if _, _, err := p.Salary.SetString(salary); err != nil {
		return NBAPlayer{}, &core.ParseError{Column: PlayerHeader[PlayerColSalary], Value: salary, Err: err}
	}

	stats := []*float64{
		&p.GamesPlayed, &p.Minutes, &p.FieldGoalsMade, &p.FieldGoalsAttempted,
		&p.ThreePtsMade, &p.ThreePtsAttempted, &p.FreeThrowsMade, &p.FreeThrowsAttempted,
		&p.Turnovers, &p.PersonalFouls, &p.OffensiveRebounds, &p.DefensiveRebounds,
		&p.Rebounds, &p.Assists, &p.Steals, &p.Blocks, &p.Points,
	}
	for i, dst := range stats {
		col := PlayerColGamesPlayed + i
		text := strings.TrimSpace(fields[col])
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return NBAPlayer{}, &core.ParseError{Column: PlayerHeader[col], Value: text, Err: err}
		}
		*dst = v
	}

	return p, nil
}

// PlayerParser is ParsePlayer as a core.RecordParser.
var PlayerParser core.RecordParser[NBAPlayer] = core.ParserFunc[NBAPlayer](ParsePlayer)

// LoadPlayers loads the player file at path.
func LoadPlayers(ctx context.Context, path string, opts ...readers.ReaderOptionCSV) ([]NBAPlayer, error) {
	return readers.LoadCSV(ctx, path, PlayerParser, opts...)
}

// Team selects the player's team abbreviation.
func Team(p NBAPlayer) string { return p.Team }

// Position selects the player's position.
func Position(p NBAPlayer) string { return p.Position }

// Points selects the player's points per game.
func Points(p NBAPlayer) float64 { return p.Points }

// GamesPlayed selects the number of games the player appeared in.
func GamesPlayed(p NBAPlayer) float64 { return p.GamesPlayed }

// Salary returns a pointer to the player's salary. Callers must not modify it.
func Salary(p NBAPlayer) *apd.Decimal { return &p.Salary }
