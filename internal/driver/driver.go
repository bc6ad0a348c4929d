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

// Package driver runs the outer search: it grows a cost bound s by exponential
// doubling, and for each bound, sweeps the block engine across A in block_width
// chunks, asking the range controller for the rows that matter and the heuristic
// for pruning, until a block covering all of B is reached or the bound is proven
// too small. It's the part of the engine that ties block, rangectl and heuristic
// together into an actual alignment.
package driver

import (
	"znkr.io/seqalign/internal/block"
	"znkr.io/seqalign/internal/config"
	"znkr.io/seqalign/internal/heuristic"
	"znkr.io/seqalign/internal/profile"
	"znkr.io/seqalign/internal/rangectl"
)

// Op is one CIGAR operation kind.
type Op int

const (
	OpMatch Op = iota
	OpMismatch
	OpInsert
	OpDelete
)

// Run is a run-length encoded CIGAR operation.
type Run struct {
	Op  Op
	Len int
}

// Visualizer observes block expansion during the search, purely for diagnostics.
type Visualizer = block.Visualizer

// Result is the outcome of one alignment.
type Result struct {
	Cost  int
	Cigar []Run // nil unless tracing was requested
}

func matcher(a, b []byte, cfg config.Config) (block.Profile, func(i, j int) bool, error) {
	switch cfg.Profile {
	case config.Bit:
		padded := b
		if r := len(b) % profile.W; r != 0 {
			padded = append(append([]byte(nil), b...), make([]byte, profile.W-r)...)
			for i := len(b); i < len(padded); i++ {
				padded[i] = 'A' // arbitrary real base; never read past len(b) by IsMatch callers
			}
		}
		p, err := profile.BuildBit(a, padded)
		if err != nil {
			return nil, nil, err
		}
		return p, p.IsMatch, nil
	default:
		p, err := profile.BuildScatter(a, b)
		if err != nil {
			return nil, nil, err
		}
		return p, p.IsMatch, nil
	}
}

// Align computes the edit distance (and, if cfg.Trace, a CIGAR) between a and b
// according to cfg.
func Align(a, b []byte, cfg config.Config, vis Visualizer) (Result, error) {
	prof, _, err := matcher(a, b, cfg)
	if err != nil {
		return Result{}, err
	}

	var h heuristic.Heuristic = heuristic.None{}
	if cfg.Domain == config.Astar {
		h = heuristic.NewSeedChain(a, b, cfg.SeedLen)
	}

	store := block.NewStore(prof, len(b), cfg.Trace)
	rc := rangectl.New(cfg.Domain, len(a), len(b), h, cfg.SparseH, cfg.BlockWidth)

	if cfg.Doubling == config.None {
		res, ok := alignBounded(a, b, cfg, store, rc, h, vis, 0, false)
		if !ok {
			return Result{}, errNoAlignment
		}
		return res, nil
	}

	s := gapCost(len(a), len(b))
	if s == 0 {
		s = 1
	}
	for {
		res, ok := alignBounded(a, b, cfg, store, rc, h, vis, s, true)
		if ok && res.Cost <= s {
			return res, nil
		}
		s *= 2
	}
}

func gapCost(alen, blen int) int {
	d := alen - blen
	if d < 0 {
		d = -d
	}
	return d
}

type noAlignmentError struct{}

func (noAlignmentError) Error() string { return "driver: no alignment found within bound" }

var errNoAlignment error = noAlignmentError{}

func intersect(r, o block.JRange) block.JRange {
	lo, hi := r.Lo, r.Hi
	if o.Lo > lo {
		lo = o.Lo
	}
	if o.Hi < hi {
		hi = o.Hi
	}
	if hi < lo {
		hi = lo
	}
	return block.JRange{Lo: lo, Hi: hi}
}

func alignBounded(
	a, b []byte,
	cfg config.Config,
	store *block.Store,
	rc *rangectl.Controller,
	h heuristic.Heuristic,
	vis Visualizer,
	fMax int,
	hasBound bool,
) (Result, bool) {
	if cfg.Prune {
		h.UpdateContours()
	}
	store.BeginIteration()

	initSentinel := &block.Block{Fixed: block.JRange{Lo: -1, Hi: -1}}
	oldRange, _ := store.NextBlockJRange()
	initRange := rc.JRange(block.IRange{Lo: -1, Hi: 0}, fMax, hasBound, initSentinel, oldRange)
	if initRange.Empty() || initRange.Lo > 0 {
		return Result{}, false
	}
	store.Init(initRange)
	store.SetLastFixedJRange(initRange)

	allReused := true
	for i := 0; i < len(a); i += cfg.BlockWidth {
		iRange := block.IRange{Lo: i, Hi: min(i+cfg.BlockWidth, len(a))}
		oldRange, hasOld := store.NextBlockJRange()
		jRange := rc.JRange(iRange, fMax, hasBound, store.Last(), oldRange)
		if jRange.Empty() {
			return Result{}, false
		}

		reuse := hasOld && oldRange == jRange && allReused
		allReused = allReused && reuse

		prevFixed := store.Last().Fixed

		var blk *block.Block
		if reuse {
			blk = store.ReuseNext(iRange, jRange)
		} else {
			blk = store.ComputeNext(iRange, jRange, vis)
		}

		nextFixed := rc.FixedJRange(iRange.Hi, fMax, hasBound, blk)
		if hasBound && nextFixed.Empty() {
			return Result{}, false
		}
		store.SetLastFixedJRange(nextFixed)

		if cfg.Prune && cfg.Domain == config.Astar && !prevFixed.Empty() && !nextFixed.Empty() {
			inter := intersect(prevFixed, nextFixed)
			if !inter.Empty() {
				h.PruneBlock(iRange.Lo, iRange.Hi, inter.Lo, inter.Hi)
			}
		}
	}

	dist := store.Last().Get(len(b))
	res := Result{Cost: dist}
	if cfg.Trace && (!hasBound || dist <= fMax) {
		res.Cigar = traceback(store, len(a), len(b), isMatcher(a, b, cfg))
	}
	return res, true
}

// isMatcher rebuilds a standalone equality check independent of the profile used
// during the sweep, so traceback doesn't need to route back through block.Profile.
func isMatcher(a, b []byte, cfg config.Config) func(i, j int) bool {
	_, isMatch, err := matcher(a, b, cfg)
	if err != nil {
		// Already validated successfully once in Align; cannot fail here.
		panic(err)
	}
	return isMatch
}

// traceback walks the final block store's D-values from (alen,blen) back to
// (0,0), greedily preferring a diagonal step, and run-length encodes the result.
func traceback(store *block.Store, alen, blen int, isMatch func(i, j int) bool) []Run {
	i, j := alen, blen
	var runs []Run
	push := func(op Op) {
		if n := len(runs); n > 0 && runs[n-1].Op == op {
			runs[n-1].Len++
			return
		}
		runs = append(runs, Run{Op: op, Len: 1})
	}

	for i > 0 || j > 0 {
		cur := store.GetAt(i, j)
		switch {
		case i > 0 && j > 0 && store.GetAt(i-1, j-1) == cur && isMatch(i-1, j-1):
			push(OpMatch)
			i, j = i-1, j-1
		case i > 0 && j > 0 && store.GetAt(i-1, j-1)+1 == cur:
			push(OpMismatch)
			i, j = i-1, j-1
		case i > 0 && store.GetAt(i-1, j)+1 == cur:
			push(OpDelete)
			i--
		case j > 0 && store.GetAt(i, j-1)+1 == cur:
			push(OpInsert)
			j--
		default:
			panic("driver: inconsistent D-values during traceback")
		}
	}
	// Reverse in place: built from the end backward.
	for l, r := 0, len(runs)-1; l < r; l, r = l+1, r-1 {
		runs[l], runs[r] = runs[r], runs[l]
	}
	return runs
}
