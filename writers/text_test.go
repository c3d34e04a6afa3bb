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
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock writer for text output testing
type mockTextWriter struct {
	*strings.Builder
	failWrite bool
	mu        sync.Mutex
}

func (m *mockTextWriter) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite {
		return 0, io.ErrUnexpectedEOF
	}
	return m.Builder.Write(p)
}

func (m *mockTextWriter) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Builder.String()
}

func newMockTextWriter() *mockTextWriter {
	return &mockTextWriter{Builder: &strings.Builder{}}
}

func TestTextWriter_Lines(t *testing.T) {
	mock := newMockTextWriter()
	w := NewTextWriter(mock)

	w.Section("Titanic")
	w.Line("Number of passengers:", 20)
	w.Linef("Any survivors? %t", true)

	assert.Empty(t, mock.String(), "output is buffered until Flush")
	require.NoError(t, w.Flush())

	assert.Equal(t, "\nTitanic\n-------\nNumber of passengers: 20\nAny survivors? true\n", mock.String())

	stats := w.Stats()
	assert.Equal(t, int64(5), stats.LinesWritten)
	assert.Equal(t, int64(0), stats.TablesWritten)
}

func TestTextWriter_Table(t *testing.T) {
	mock := newMockTextWriter()
	w := NewTextWriter(mock)

	w.Table([]string{"passengerClass", "#"}, [][]string{
		{"1st Class", "8"},
		{"Deck Crew", "3"},
	})
	require.NoError(t, w.Flush())

	out := mock.String()
	assert.Contains(t, out, "passengerClass", "headers are not upper-cased")
	assert.Contains(t, out, "1st Class")
	assert.Contains(t, out, "Deck Crew")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6)

	stats := w.Stats()
	assert.Equal(t, int64(1), stats.TablesWritten)
	assert.Equal(t, int64(6), stats.LinesWritten)
}

func TestTextWriter_WriteError(t *testing.T) {
	mock := newMockTextWriter()
	mock.failWrite = true
	w := NewTextWriter(mock)

	w.Linef("lost")
	err := w.Flush()
	require.Error(t, err)

	var twErr *TextWriterError
	require.True(t, errors.As(err, &twErr))
	assert.Equal(t, "flush", twErr.Op)
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))

	mock.failWrite = false
	w.Linef("also lost")
	assert.Equal(t, err, w.Flush(), "the first error sticks")
	assert.Empty(t, mock.String())
}

func TestTextWriter_Concurrent(t *testing.T) {
	mock := newMockTextWriter()
	w := NewTextWriter(mock)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.Linef("line")
		}()
	}
	wg.Wait()
	require.NoError(t, w.Flush())

	assert.Equal(t, 10, strings.Count(mock.String(), "line\n"))
	assert.Equal(t, int64(10), w.Stats().LinesWritten)
}
