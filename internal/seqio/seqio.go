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

// Package seqio reads FASTA-like sequence records from a plain text stream: a
// ">"-prefixed header line followed by one or more sequence lines, concatenated
// until the next header or end of input.
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one named sequence.
type Record struct {
	Name string
	Seq  []byte
}

// ReadAll reads every record from r.
func ReadAll(r io.Reader) ([]Record, error) {
	var records []Record
	var cur *Record
	var seq strings.Builder

	flush := func() {
		if cur != nil {
			cur.Seq = []byte(seq.String())
			records = append(records, *cur)
			seq.Reset()
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			cur = &Record{Name: strings.TrimSpace(line[1:])}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("seqio: line %d: sequence data before any header", lineNo)
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seqio: %w", err)
	}
	flush()
	return records, nil
}

// ReadPair reads exactly two records from r: the two sequences to align.
func ReadPair(r io.Reader) (a, b Record, err error) {
	records, err := ReadAll(r)
	if err != nil {
		return Record{}, Record{}, err
	}
	if len(records) != 2 {
		return Record{}, Record{}, fmt.Errorf("seqio: expected exactly 2 records, got %d", len(records))
	}
	return records[0], records[1], nil
}
