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

// Package config resolves GoSeq's settings from command-line flags,
// GOSEQ_* environment variables, and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GOSEQ"

// Setting keys. Each key is also the flag name; the environment variable is
// GOSEQ_ followed by the key upper-cased with dashes replaced by underscores.
const (
	KeyPassengersFile = "passengers-file"
	KeyPlayersFile    = "players-file"
	KeyQuoted         = "quoted"
	KeyLogLevel       = "log-level"
)

// Defaults.
const (
	DefaultPassengersFile = "data/Titanic.csv"
	DefaultPlayersFile    = "data/Players.csv"
	DefaultLogLevel       = "info"
)

// Config holds the resolved settings.
type Config struct {
	PassengersFile string
	PlayersFile    string
	Quoted         bool // parse input with CSV quoting instead of a plain comma split
	LogLevel       string
}

// RegisterFlags adds GoSeq's flags to fs. usage supplies help text per key.
func RegisterFlags(fs *pflag.FlagSet, usage map[string]string) {
	fs.String(KeyPassengersFile, DefaultPassengersFile, usage[KeyPassengersFile])
	fs.String(KeyPlayersFile, DefaultPlayersFile, usage[KeyPlayersFile])
	fs.Bool(KeyQuoted, false, usage[KeyQuoted])
	fs.String(KeyLogLevel, DefaultLogLevel, usage[KeyLogLevel])
}

// Load resolves a Config from fs and the environment. fs must have been
// populated by RegisterFlags.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	cfg := Config{
		PassengersFile: v.GetString(KeyPassengersFile),
		PlayersFile:    v.GetString(KeyPlayersFile),
		Quoted:         v.GetBool(KeyQuoted),
		LogLevel:       v.GetString(KeyLogLevel),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects empty paths and unknown log levels.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.PassengersFile) == "" {
		errs = append(errs, errors.New("passengers file path is required"))
	}
	if strings.TrimSpace(c.PlayersFile) == "" {
		errs = append(errs, errors.New("players file path is required"))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns the parsed log level. Call Validate first.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
