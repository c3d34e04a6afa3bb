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

package cli

import (
	"strings"

	"github.com/kr/text"

	"github.com/aaronlmathis/goseq/config"
)

var flagUsage = map[string]string{
	config.KeyPassengersFile: wrapText(`
Path to the Titanic passenger file. The first line is a header; each
following line holds lastName, firstName, age, passengerClass,
passengerFlag, role, and isSurvivor. Overrides GOSEQ_PASSENGERS_FILE.`),
	config.KeyPlayersFile: wrapText(`
Path to the NBA player file. The first line is a header; each following
line holds a row index, name, team, salary, position, and seventeen
per-game statistics ending with points. Overrides GOSEQ_PLAYERS_FILE.`),
	config.KeyQuoted: wrapText(`
Parse input files as quoted CSV so fields may contain commas. By default
lines are split on every comma, matching the files' native layout.
Overrides GOSEQ_QUOTED.`),
	config.KeyLogLevel: wrapText(`
Diagnostic log level written to stderr: panic, fatal, error, warn, info,
debug, or trace. Overrides GOSEQ_LOG_LEVEL.`),
}

const wrapWidth = 79 - 15

// wrapText wraps the text in a way appropriate for flag usage messages.
func wrapText(s string) string {
	return text.Wrap(strings.TrimSpace(s), wrapWidth)
}
