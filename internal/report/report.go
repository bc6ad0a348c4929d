// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package report collects per-pair alignment statistics and writes them as TSV,
// one row per pair, in the order submitted regardless of the order alignments
// actually complete in.
package report

import (
	"bufio"
	"fmt"
	"io"
)

// Row is one pair's result.
type Row struct {
	Name     string
	ALen     int
	BLen     int
	Cost     int
	Domain   string
	ErrNote  string
}

// Writer buffers rows and flushes them as TSV.
type Writer struct {
	w       *bufio.Writer
	wrote   bool
}

// NewWriter creates a Writer over w. The header line is written on the first Row.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (rw *Writer) Write(r Row) error {
	if !rw.wrote {
		if _, err := fmt.Fprintln(rw.w, "name\talen\tblen\tcost\tdomain\terror"); err != nil {
			return err
		}
		rw.wrote = true
	}
	_, err := fmt.Fprintf(rw.w, "%s\t%d\t%d\t%d\t%s\t%s\n", r.Name, r.ALen, r.BLen, r.Cost, r.Domain, r.ErrNote)
	return err
}

// Flush flushes buffered output to the underlying writer.
func (rw *Writer) Flush() error {
	return rw.w.Flush()
}
