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

// Command align reads a pair of FASTA-like sequences from a file (or stdin) and
// prints their edit distance, and optionally a CIGAR.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"znkr.io/seqalign"
	"znkr.io/seqalign/internal/seqio"
)

var (
	domainFlag = flag.String("domain", "astar", "band domain: full, gapstart, gapgap, astar")
	cigarFlag  = flag.Bool("cigar", false, "print a CIGAR in addition to the cost")
	blockWidth = flag.Int("block-width", 256, "block engine sweep width")
)

func parseDomain(s string) (seqalign.Domain, error) {
	switch s {
	case "full":
		return seqalign.Full, nil
	case "gapstart":
		return seqalign.GapStart, nil
	case "gapgap":
		return seqalign.GapGap, nil
	case "astar":
		return seqalign.Astar, nil
	}
	return 0, fmt.Errorf("unknown domain %q", s)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("align: ")
	flag.Parse()

	domain, err := parseDomain(*domainFlag)
	if err != nil {
		log.Fatal(err)
	}

	var f *os.File = os.Stdin
	if flag.NArg() > 0 {
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	a, b, err := seqio.ReadPair(f)
	if err != nil {
		log.Fatal(err)
	}

	opts := []seqalign.Option{seqalign.WithDomain(domain), seqalign.BlockWidth(*blockWidth)}
	if *cigarFlag {
		cost, cigar, err := seqalign.Align(a.Seq, b.Seq, opts...)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s\t%s\t%d\t%s\n", a.Name, b.Name, cost, cigar)
		return
	}

	cost, err := seqalign.Distance(a.Seq, b.Seq, opts...)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s\t%s\t%d\n", a.Name, b.Name, cost)
}
