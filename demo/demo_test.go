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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronlmathis/goseq/records"
	"github.com/aaronlmathis/goseq/writers"
)

func render(t *testing.T, fn func(w *writers.TextWriter) error) string {
	t.Helper()
	var buf strings.Builder
	w := writers.NewTextWriter(&buf)
	require.NoError(t, fn(w))
	require.NoError(t, w.Flush())
	return buf.String()
}

func passengers(t *testing.T) []records.Passenger {
	t.Helper()
	lines := []string{
		"SMITH,Capt Edward John,62,Deck Crew,Crew,Captain,false",
		"HARTLEY,Mr Wallace Henry,33,Victualling Crew,Crew,Musician,false",
		"BRICOUX,Mr Roger Marie,20,Victualling Crew,Crew,Musician,false",
		"ALLISON,Master Hudson Trevor,0.92,1st Class,Passenger,,true",
		"ABBOTT,Mrs Rhoda Mary 'Rosa',39,3rd Class,Passenger,,true",
		"JONES,Mr Charles,,Engineering Crew,Crew,Fireman,false",
		"LIGHTOLLER,Mr Charles Herbert,38,Deck Crew,Crew,Officer,true",
	}
	out := make([]records.Passenger, 0, len(lines))
	for _, line := range lines {
		p, err := records.ParsePassenger(strings.Split(line, ","))
		require.NoError(t, err)
		out = append(out, p)
	}
	return out
}

func TestTitanic(t *testing.T) {
	ps := passengers(t)
	out := render(t, func(w *writers.TextWriter) error { return Titanic(w, ps) })

	assert.Contains(t, out, "Titanic passenger/crew count: 7")
	assert.Contains(t, out, "Titanic survivors count: 3")
	assert.Contains(t, out, "Titanic crew count: 5")
	assert.Contains(t, out, "Number of the crew that survived: 1")
	assert.Contains(t, out, "Master Hudson Trevor ALLISON was a 1st Class and survived")
	assert.Contains(t, out, "1st class survivors under 18: 1")
	assert.Contains(t, out, "titles of the people on the Titanic? Capt,Mr,Master,Mrs")
	assert.Contains(t, out, "Number of Mrs's on board 1")
	assert.Contains(t, out, "Did every musician die? true")
	assert.Contains(t, out, "First survivor over 30: Mrs Rhoda Mary 'Rosa' ABBOTT")
	assert.Contains(t, out, "The youngest passenger on the Titanic was Master Hudson Trevor ALLISON age: 0.92")
	assert.Contains(t, out, "The oldest   passenger on the Titanic was Capt Edward John SMITH age: 62")
	assert.Contains(t, out, "The shortest last name is: SMITH")
	assert.Contains(t, out, "The longest  last name is: LIGHTOLLER")
	assert.Contains(t, out, "Victualling Crew")

	assert.Contains(t, out, "reduce +    1688")
	assert.Contains(t, out, "find        32")
	assert.Contains(t, out, "indexOf     4")
	assert.Contains(t, out, "lastIndexOf 12")

	// musicians sorted by last name
	assert.Less(t, strings.LastIndex(out, "Roger Marie BRICOUX"), strings.LastIndex(out, "Wallace Henry HARTLEY"))
}

func TestTitanic_NoKnownAges(t *testing.T) {
	out := render(t, func(w *writers.TextWriter) error {
		return Titanic(w, []records.Passenger{{FirstName: "Mr Nobody", LastName: "NOBODY"}})
	})

	assert.Contains(t, out, "The youngest passenger on the Titanic is unknown")
	assert.Contains(t, out, "The oldest   passenger on the Titanic is unknown")
	assert.Contains(t, out, "The shortest last name is: NOBODY")
	assert.Contains(t, out, "lastIndexOf 12", "later queries still run")
}

func TestTitanic_Empty(t *testing.T) {
	out := render(t, func(w *writers.TextWriter) error { return Titanic(w, nil) })

	assert.Contains(t, out, "Titanic passenger/crew count: 0")
	assert.Contains(t, out, "The youngest passenger on the Titanic is unknown")
	assert.Contains(t, out, "The shortest last name is unknown")
	assert.Contains(t, out, "The longest  last name is unknown")
}

func TestTitanic_OldestTieGoesToLastListed(t *testing.T) {
	ps := []records.Passenger{
		{FirstName: "Mr First", LastName: "ELDER", Age: 70},
		{FirstName: "Mr Second", LastName: "ELDER", Age: 70},
		{FirstName: "Miss Young", LastName: "CHILD", Age: 5},
	}
	out := render(t, func(w *writers.TextWriter) error { return Titanic(w, ps) })

	assert.Contains(t, out, "The oldest   passenger on the Titanic was Mr Second ELDER age: 70")
	assert.Contains(t, out, "The youngest passenger on the Titanic was Miss Young CHILD age: 5")
}

func TestNBA(t *testing.T) {
	lines := []string{
		"0,Damian Lillard,POR,29802321,PG,80,35.5,8.5,19.5,3.0,8.0,6.8,7.4,2.6,1.9,0.9,3.7,4.6,6.9,1.1,0.4,26.9",
		"1,James Harden,HOU,30431854,PG,78,36.8,10.8,24.5,4.8,13.2,9.7,11.0,5.0,3.1,0.8,5.8,6.6,7.5,2.0,0.7,36.1",
		"2,Jusuf Nurkic,POR,12000000,C,72,27.4,5.8,11.8,0.0,0.3,3.2,4.6,2.3,3.5,3.4,7.0,10.4,3.2,1.0,1.4,15.6",
	}
	players := make([]records.NBAPlayer, 0, len(lines))
	for _, line := range lines {
		p, err := records.ParsePlayer(strings.Split(line, ","))
		require.NoError(t, err)
		players = append(players, p)
	}

	out := render(t, func(w *writers.TextWriter) error { return NBA(w, players) })

	assert.Contains(t, out, "Player count: 3")
	assert.Contains(t, out, "Damian Lillard plays for POR at PG for $29,802,321.00")
	assert.Contains(t, out, "Jusuf Nurkic plays for POR at C")
	assert.Contains(t, out, "Total payroll: $72,234,175.00")
	assert.Contains(t, out, "Average salary: $24,078,058.33")
	assert.Contains(t, out, "Highest paid: James Harden plays for HOU at PG for $30,431,854.00")
	assert.Contains(t, out, "Anyone play all 82 games? false")
	assert.Contains(t, out, "Everyone played at least one game? true")
	assert.Contains(t, out, "Average points: 26.20")

	// top scorers are listed highest first
	assert.Less(t, strings.Index(out, "| James Harden"), strings.Index(out, "| Damian Lillard"))
}

func TestNumbers(t *testing.T) {
	out := render(t, Numbers)

	assert.Contains(t, out, "sum       602")
	assert.Contains(t, out, "count     16")
	assert.Contains(t, out, "distinct  [3,4,2,5,6,32,9,76,8,432]")
	assert.Contains(t, out, "skipWhile [9,4,6,76,8,432,4,2,5]")
	assert.Contains(t, out, "except    [3,4,9,76,8,432]")
	assert.Contains(t, out, "elementAt 32")
	assert.Contains(t, out, "range     [-5,-4,-3,-2,-1]")
	assert.Contains(t, out, "repeat    Beetlejuice,Beetlejuice,Beetlejuice")
	assert.Contains(t, out, "where     [3,5,9,5]")
	assert.Contains(t, out, "toSet     10 unique")
	assert.Contains(t, out, "median    5.0")
}

func TestWords(t *testing.T) {
	out := render(t, Words)

	assert.Contains(t, out, "Largest number: 243")
	assert.Contains(t, out, "Largest word: words")
	assert.Contains(t, out, "Any words end with g? true")
	assert.Contains(t, out, "Sum of all numbers: 382")
	assert.Contains(t, out, "Sum of numbers over 50: 319")
	assert.Contains(t, out, "Middle number: 6")
	assert.Contains(t, out, "Middle word: an")
	assert.Contains(t, out, "Words 4-6: into an array")
	assert.Contains(t, out, "Second of the top two: 432")
	assert.Contains(t, out, "Largest after removing the largest: 76")
	assert.Contains(t, out, "Any odd below 16? true")
}
