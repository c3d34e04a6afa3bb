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

package readers

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/aaronlmathis/goseq/core"
)

// CSVReaderError wraps structured error information for the CSV reader.
type CSVReaderError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *CSVReaderError) Error() string {
	return fmt.Sprintf("csv reader %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CSVReaderError) Unwrap() error {
	return e.Err
}

// CSVReaderStats holds statistics about the CSV reader's performance.
type CSVReaderStats struct {
	RecordsRead      int64
	ReadDuration     time.Duration
	LastReadTime     time.Time
	EmptyFieldCounts map[int]int64 // keyed by column index
}

// CSVReaderOptions configures the CSV reader.
type CSVReaderOptions struct {
	Comma      rune
	HasHeaders bool
	Quoted     bool // use encoding/csv instead of plain comma splitting
	Fs         afero.Fs
	Logger     *logrus.Logger
}

// ReaderOptionCSV allows functional customization of CSVReader.
type ReaderOptionCSV func(*CSVReaderOptions)

// WithCSVComma sets the field separator. The default is ','.
func WithCSVComma(r rune) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.Comma = r }
}

// WithCSVHasHeaders controls whether the first line is a header. The default
// is true.
func WithCSVHasHeaders(hasHeaders bool) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.HasHeaders = hasHeaders }
}

// WithCSVQuoting enables RFC 4180 quoting. The default is a literal split on
// the separator, with no support for embedded separators.
func WithCSVQuoting(quoted bool) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.Quoted = quoted }
}

// WithCSVFs sets the file system files are opened on. The default is the OS
// file system.
func WithCSVFs(fs afero.Fs) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.Fs = fs }
}

// WithCSVLogger sets the logger for load diagnostics. The default is the
// logrus standard logger.
func WithCSVLogger(logger *logrus.Logger) ReaderOptionCSV {
	return func(o *CSVReaderOptions) { o.Logger = logger }
}

func defaultCSVOptions(options []ReaderOptionCSV) CSVReaderOptions {
	opts := CSVReaderOptions{
		Comma:      ',',
		HasHeaders: true,
	}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	return opts
}

// Row is one data line of a CSV file.
type Row struct {
	Number int      // 1-based line number in the file
	Text   string   // raw line text; in quoted mode the whole record, quotes included
	Fields []string // split fields
}

// CSVReader reads data lines from a delimited text file.
type CSVReader struct {
	path    string
	scanner *bufio.Scanner
	csv     *csv.Reader
	raw     *bytes.Buffer // quoted mode: bytes read but not yet returned
	rawBase int64         // input offset of raw's first byte
	closer  io.Closer
	header  []string
	line    int
	stats   CSVReaderStats
	opts    CSVReaderOptions
}

// NewCSVReader opens path on the configured file system and, if headers are
// enabled, consumes the header line.
func NewCSVReader(path string, options ...ReaderOptionCSV) (*CSVReader, error) {
	opts := defaultCSVOptions(options)

	f, err := opts.Fs.Open(path)
	if err != nil {
		return nil, &CSVReaderError{Op: "open", Err: err}
	}

	reader := &CSVReader{
		path:   path,
		closer: f,
		opts:   opts,
		stats:  CSVReaderStats{EmptyFieldCounts: make(map[int]int64)},
	}

	if opts.Quoted {
		reader.raw = &bytes.Buffer{}
		r := csv.NewReader(io.TeeReader(f, reader.raw))
		r.Comma = opts.Comma
		r.FieldsPerRecord = -1
		r.LazyQuotes = true
		reader.csv = r
	} else {
		reader.scanner = bufio.NewScanner(f)
		reader.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	}

	if opts.HasHeaders {
		header, err := reader.next()
		switch {
		case errors.Is(err, io.EOF):
			// empty file: no header, no records
		case err != nil:
			f.Close()
			return nil, &CSVReaderError{Op: "read_headers", Err: err}
		default:
			reader.header = header.Fields
		}
	}

	return reader, nil
}

// Read returns the next data row, or io.EOF when the file is exhausted.
func (c *CSVReader) Read(ctx context.Context) (Row, error) {
	start := time.Now()

	select {
	case <-ctx.Done():
		return Row{}, &CSVReaderError{Op: "read", Err: ctx.Err()}
	default:
	}

	row, err := c.next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Row{}, io.EOF
		}
		return row, &CSVReaderError{Op: "read_record", Err: err}
	}

	for i, val := range row.Fields {
		if strings.TrimSpace(val) == "" {
			c.stats.EmptyFieldCounts[i]++
		}
	}

	c.stats.RecordsRead++
	c.stats.LastReadTime = time.Now()
	c.stats.ReadDuration += time.Since(start)

	return row, nil
}

func (c *CSVReader) next() (Row, error) {
	if c.csv != nil {
		fields, err := c.csv.Read()
		text := c.consumeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Row{}, io.EOF
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				c.line = perr.Line
			} else {
				c.line++
			}
			return Row{Number: c.line, Text: text}, err
		}
		c.line, _ = c.csv.FieldPos(0)
		return Row{
			Number: c.line,
			Text:   text,
			Fields: fields,
		}, nil
	}

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return Row{Number: c.line + 1}, err
		}
		return Row{}, io.EOF
	}
	c.line++
	text := strings.TrimSuffix(c.scanner.Text(), "\r")
	return Row{
		Number: c.line,
		Text:   text,
		Fields: strings.Split(text, string(c.opts.Comma)),
	}, nil
}

// consumeRaw returns the input consumed by the last csv.Read, without the
// blank lines the csv reader skips or the trailing line break.
func (c *CSVReader) consumeRaw() string {
	end := c.csv.InputOffset()
	n := int(end - c.rawBase)
	if n > c.raw.Len() {
		n = c.raw.Len()
	}
	text := string(c.raw.Next(n))
	c.rawBase = end
	return strings.TrimRight(strings.TrimLeft(text, "\r\n"), "\r\n")
}

// Header returns the header fields, or nil when headers are disabled or the
// file was empty.
func (c *CSVReader) Header() []string {
	return c.header
}

// Close releases the underlying file.
func (c *CSVReader) Close() error {
	if c.closer != nil {
		err := c.closer.Close()
		c.closer = nil
		return err
	}
	return nil
}

// Stats returns CSV reader performance stats.
func (c *CSVReader) Stats() CSVReaderStats {
	return c.stats
}

// LoadCSV reads every data line of path and converts it with parser. The load
// is all-or-nothing: the first failure is logged and returned as a
// *core.LoadError with a nil slice.
func LoadCSV[T any](ctx context.Context, path string, parser core.RecordParser[T], options ...ReaderOptionCSV) ([]T, error) {
	opts := defaultCSVOptions(options)
	log := opts.Logger.WithField("path", path)

	reader, err := NewCSVReader(path, func(o *CSVReaderOptions) { *o = opts })
	if err != nil {
		log.WithError(err).Error("error reading file")
		return nil, &core.LoadError{Path: path, Err: err}
	}
	defer reader.Close()

	records := make([]T, 0)
	for {
		row, err := reader.Read(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err == nil {
			var rec T
			rec, err = parser.Parse(row.Fields)
			if err == nil {
				records = append(records, rec)
				continue
			}
		}

		log.WithFields(logrus.Fields{
			"line_number": row.Number,
			"line":        row.Text,
		}).WithError(err).Error("error reading file")
		return nil, &core.LoadError{Path: path, LineNumber: row.Number, Line: row.Text, Err: err}
	}

	log.WithField("records", len(records)).Debug("loaded file")
	return records, nil
}

// CSVSource adapts a file and a parser to core.DataSource.
type CSVSource[T any] struct {
	Path    string
	Parser  core.RecordParser[T]
	Options []ReaderOptionCSV
}

// NewCSVSource creates a CSVSource.
func NewCSVSource[T any](path string, parser core.RecordParser[T], options ...ReaderOptionCSV) *CSVSource[T] {
	return &CSVSource[T]{Path: path, Parser: parser, Options: options}
}

// Load implements core.DataSource.
func (s *CSVSource[T]) Load(ctx context.Context) ([]T, error) {
	return LoadCSV(ctx, s.Path, s.Parser, s.Options...)
}
