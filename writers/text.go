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

package writers

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
)

// TextWriterError wraps text output errors with context.
type TextWriterError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TextWriterError) Error() string {
	return fmt.Sprintf("text writer %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TextWriterError) Unwrap() error {
	return e.Err
}

// TextWriterStats holds text output statistics.
type TextWriterStats struct {
	LinesWritten  int64
	TablesWritten int64
}

// TextWriter writes line-oriented, human-readable query results. The first
// write error is kept and returned by Flush; later writes are dropped.
type TextWriter struct {
	w     *bufio.Writer
	err   error
	stats TextWriterStats
	mu    sync.Mutex
}

// NewTextWriter creates a buffered TextWriter over w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

func (t *TextWriter) writeUnsafe(op, s string) {
	if t.err != nil {
		return
	}
	if _, err := t.w.WriteString(s); err != nil {
		t.err = &TextWriterError{Op: op, Err: err}
	}
}

// Section writes a blank line and an underlined title.
func (t *TextWriter) Section(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.writeUnsafe("section", "\n"+title+"\n"+strings.Repeat("-", len(title))+"\n")
	t.stats.LinesWritten += 3
}

// Line writes its operands separated by spaces, like fmt.Println.
func (t *TextWriter) Line(args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.writeUnsafe("line", fmt.Sprintln(args...))
	t.stats.LinesWritten++
}

// Linef writes a formatted line; a trailing newline is added.
func (t *TextWriter) Linef(format string, args ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.writeUnsafe("line", fmt.Sprintf(format, args...)+"\n")
	t.stats.LinesWritten++
}

// Table renders rows under headers as an aligned text table.
func (t *TextWriter) Table(headers []string, rows [][]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return
	}

	var buf strings.Builder
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(headers)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	t.writeUnsafe("table", buf.String())
	t.stats.LinesWritten += int64(strings.Count(buf.String(), "\n"))
	t.stats.TablesWritten++
}

// Flush writes any buffered output and returns the first error seen.
func (t *TextWriter) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return t.err
	}
	if err := t.w.Flush(); err != nil {
		t.err = &TextWriterError{Op: "flush", Err: err}
	}
	return t.err
}

// Stats returns write statistics.
func (t *TextWriter) Stats() TextWriterStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}
