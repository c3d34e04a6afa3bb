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

// Package cli implements the goseq command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/aaronlmathis/goseq/config"
	"github.com/aaronlmathis/goseq/demo"
	"github.com/aaronlmathis/goseq/readers"
	"github.com/aaronlmathis/goseq/records"
	"github.com/aaronlmathis/goseq/writers"
)

// ErrDatasetFailed is returned when at least one demonstration could not run.
var ErrDatasetFailed = errors.New("one or more datasets failed to load")

// Env carries the process-level dependencies of a command run.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Fs     afero.Fs
}

// DefaultEnv uses the process's standard streams and the OS file system.
func DefaultEnv() Env {
	return Env{Stdout: os.Stdout, Stderr: os.Stderr, Fs: afero.NewOsFs()}
}

type step func(ctx context.Context, r *runner) error

type runner struct {
	cfg    config.Config
	log    *logrus.Logger
	out    *writers.TextWriter
	fs     afero.Fs
	failed bool
}

func (r *runner) readerOptions() []readers.ReaderOptionCSV {
	return []readers.ReaderOptionCSV{
		readers.WithCSVFs(r.fs),
		readers.WithCSVLogger(r.log),
		readers.WithCSVQuoting(r.cfg.Quoted),
	}
}

func runTitanic(ctx context.Context, r *runner) error {
	passengers, err := records.LoadPassengers(ctx, r.cfg.PassengersFile, r.readerOptions()...)
	if err != nil {
		r.log.WithError(err).Warn("skipping Titanic queries")
		r.failed = true
		return nil
	}
	return demo.Titanic(r.out, passengers)
}

func runNBA(ctx context.Context, r *runner) error {
	players, err := records.LoadPlayers(ctx, r.cfg.PlayersFile, r.readerOptions()...)
	if err != nil {
		r.log.WithError(err).Warn("skipping NBA queries")
		r.failed = true
		return nil
	}
	return demo.NBA(r.out, players)
}

func runNumbers(_ context.Context, r *runner) error {
	return demo.Numbers(r.out)
}

func runWords(_ context.Context, r *runner) error {
	return demo.Words(r.out)
}

// run executes steps in order. A dataset that fails to load or a
// demonstration that fails is logged and skipped; the remaining steps still
// run and ErrDatasetFailed is returned.
func run(cmd *cobra.Command, env Env, steps ...step) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(env.Stderr)
	log.SetLevel(cfg.Level())
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	r := &runner{
		cfg: cfg,
		log: log,
		out: writers.NewTextWriter(env.Stdout),
		fs:  env.Fs,
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	for _, s := range steps {
		if err := s(ctx, r); err != nil {
			log.WithError(err).Warn("demonstration failed")
			r.failed = true
		}
	}
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	stats := r.out.Stats()
	log.WithFields(logrus.Fields{
		"lines":  stats.LinesWritten,
		"tables": stats.TablesWritten,
	}).Debug("done")

	if r.failed {
		return ErrDatasetFailed
	}
	return nil
}

// NewRootCmd builds the goseq command tree.
func NewRootCmd(env Env) *cobra.Command {
	all := []step{runNumbers, runWords, runTitanic, runNBA}

	root := &cobra.Command{
		Use:   "goseq",
		Short: "run functional-style queries over the Titanic and NBA datasets",
		Long: `
Loads the Titanic passenger file and the NBA player file and prints the
results of filter, map, reduce, sort, group, and set queries over them.
Without a subcommand every demonstration runs.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, env, all...)
		},
	}
	config.RegisterFlags(root.PersistentFlags(), flagUsage)
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	subcommand := func(use, short string, steps ...step) *cobra.Command {
		return &cobra.Command{
			Use:          use,
			Short:        short,
			Args:         cobra.NoArgs,
			SilenceUsage: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd, env, steps...)
			},
		}
	}

	root.AddCommand(
		subcommand("all", "run every demonstration", all...),
		subcommand("titanic", "run the Titanic passenger queries", runTitanic),
		subcommand("nba", "run the NBA player queries", runNBA),
		subcommand("numbers", "run the sequence operators over a slice of integers", runNumbers),
		subcommand("words", "run the number and word exercises", runWords),
	)
	return root
}

// Main runs the command line and returns the process exit code.
func Main(ctx context.Context, args []string, env Env) int {
	if args == nil {
		args = []string{}
	}
	cmd := NewRootCmd(env)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
		return 1
	}
	return 0
}
