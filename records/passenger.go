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
	"strconv"
	"strings"

	"github.com/aaronlmathis/goseq/aggregate"
	"github.com/aaronlmathis/goseq/core"
	"github.com/aaronlmathis/goseq/filter"
	"github.com/aaronlmathis/goseq/readers"
	"github.com/aaronlmathis/goseq/transform"
)

// Passenger file columns, in file order.
const (
	PassengerColLastName = iota
	PassengerColFirstName
	PassengerColAge
	PassengerColClass
	PassengerColFlag
	PassengerColRole
	PassengerColSurvivor

	PassengerColumns
)

// PassengerHeader is the documented header layout of the passenger file.
var PassengerHeader = []string{
	"lastName", "firstName", "age", "passengerClass", "passengerFlag", "role", "isSurvivor",
}

// Passenger is one person aboard the Titanic. An Age of 0 means the age is
// unknown.
type Passenger struct {
	LastName       string
	FirstName      string
	Age            float64
	PassengerClass string
	IsPassenger    bool
	Role           string
	IsSurvivor     bool
}

// String renders the passenger as "<first> <last> was a <class> and survived"
// or "did not survive".
func (p Passenger) String() string {
	outcome := "did not survive"
	if p.IsSurvivor {
		outcome = "survived"
	}
	return fmt.Sprintf("%s %s was a %s and %s", p.FirstName, p.LastName, p.PassengerClass, outcome)
}

// ParsePassenger builds a Passenger from the fields of one line. An empty
// age becomes 0; fields beyond the seventh are ignored.
func ParsePassenger(fields []string) (Passenger, error) {
	if len(fields) < PassengerColumns {
		return Passenger{}, &core.ParseError{
			Column: "row",
			Err:    fmt.Errorf("expected %d fields, got %d", PassengerColumns, len(fields)),
		}
	}

	ageText := strings.TrimSpace(fields[PassengerColAge])
	if ageText == "" {
		ageText = "0"
	}
	age, err := strconv.ParseFloat(ageText, 64)
	if err != nil {
		return Passenger{}, &core.ParseError{Column: PassengerHeader[PassengerColAge], Value: ageText, Err: err}
	}

	return Passenger{
		LastName:       fields[PassengerColLastName],
		FirstName:      fields[PassengerColFirstName],
		Age:            age,
		PassengerClass: fields[PassengerColClass],
		IsPassenger:    fields[PassengerColFlag] == "Passenger",
		Role:           fields[PassengerColRole],
		IsSurvivor:     fields[PassengerColSurvivor] == "true",
	}, nil
}

// PassengerParser is ParsePassenger as a core.RecordParser.
var PassengerParser core.RecordParser[Passenger] = core.ParserFunc[Passenger](ParsePassenger)

// LoadPassengers loads the passenger file at path.
func LoadPassengers(ctx context.Context, path string, opts ...readers.ReaderOptionCSV) ([]Passenger, error) {
	return readers.LoadCSV(ctx, path, PassengerParser, opts...)
}

// HasKnownAge excludes the age-0 "unknown" sentinel.
func HasKnownAge(p Passenger) bool { return p.Age > 0 }

// IsCrew reports whether p was a member of the crew.
func IsCrew(p Passenger) bool { return !p.IsPassenger }

// IsSurvivor reports whether p survived.
func IsSurvivor(p Passenger) bool { return p.IsSurvivor }

// Age selects the passenger's age; 0 means unknown.
func Age(p Passenger) float64 { return p.Age }

// LastName selects the passenger's last name.
func LastName(p Passenger) string { return p.LastName }

// FirstName selects the passenger's first name, title included.
func FirstName(p Passenger) string { return p.FirstName }

// PassengerClass selects the class or crew department.
func PassengerClass(p Passenger) string { return p.PassengerClass }

// Role selects the crew role; passengers have none.
func Role(p Passenger) string { return p.Role }

// Title is the first whitespace-separated token of the first name, e.g. "Mrs"
// for "Mrs Rhoda Mary 'Rosa'".
func Title(p Passenger) string {
	return transform.FirstToken(p.FirstName)
}

// Youngest returns the first passenger with the lowest known age.
func Youngest(passengers []Passenger) (Passenger, error) {
	return aggregate.MinBy(filter.Where(passengers, HasKnownAge), Age)
}

// Oldest returns the last passenger with the highest known age, so a tie goes
// to whoever is listed later in the file.
func Oldest(passengers []Passenger) (Passenger, error) {
	return filter.Last(transform.OrderBy(filter.Where(passengers, HasKnownAge), Age))
}
