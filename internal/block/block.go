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

// Package block holds the blocks computed along the way to an alignment: for a
// range of A-columns, the bit-packed D-column at the rightmost of those columns
// (plus, when tracing is requested, every interior column too), together with the
// j-range it covers and the j-range the range controller has certified as fixed.
//
// A Store owns the growing sequence of blocks for one alignment attempt. Ranges
// are tracked in true (unrounded) row coordinates, but storage is always rounded
// down to a word boundary on the low end and up on the high end: per-block state
// lives at kernel.W granularity, and rounding down the low end is always sound
// because it only ever widens the window a block pretends to own.
package block

import (
	"math/bits"

	"znkr.io/seqalign/internal/kernel"
	"znkr.io/seqalign/internal/profile"
)

// W is the number of rows packed into one storage word.
const W = kernel.W

// JRange is a half-open range of B-rows, [Lo, Hi).
type JRange struct {
	Lo, Hi int
}

// Empty reports whether the range contains no rows.
func (r JRange) Empty() bool { return r.Hi <= r.Lo }

// Len returns the number of rows in the range.
func (r JRange) Len() int { return r.Hi - r.Lo }

// Contains reports whether j falls within the range.
func (r JRange) Contains(j int) bool { return j >= r.Lo && j < r.Hi }

// Union returns the smallest range containing both r and o. An empty operand is
// ignored so that unioning with a zero-value JRange is a no-op.
func (r JRange) Union(o JRange) JRange {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	lo, hi := r.Lo, r.Hi
	if o.Lo < lo {
		lo = o.Lo
	}
	if o.Hi > hi {
		hi = o.Hi
	}
	return JRange{lo, hi}
}

// IRange is a half-open range of A-columns, [Lo, Hi). A block's IRange describes
// the columns it was computed across: Lo is the column it started from (already
// represented by an earlier block), Hi is the column it ends at. The block Init
// creates holds column 0, the state before A[0], and uses Lo = -1 as a placeholder.
type IRange struct {
	Lo, Hi int
}

// column is one column's full D-state within a block: the word-packed vertical
// P/M vectors and the absolute D-value anchoring the block's first stored row.
type column struct {
	p, m   []uint64
	topVal int
}

// Block is the bit-packed D-column at column I.Hi (and, if the owning Store traces,
// every column back to I.Lo too), covering rows J.
type Block struct {
	I IRange
	J JRange

	// wordLo is the index of the first stored word: wordLo*W <= J.Lo.
	wordLo int

	// cols holds, when the store traces, one entry per column from I.Lo through
	// I.Hi, the first being a copy of the previous block's last column (the Init
	// block holds only column 0). When the store isn't tracing, only the last
	// column (I.Hi) is kept, so len(cols) == 1.
	cols []column

	// prefix[w] is the cumulative D-delta of words [0,w) of the last column,
	// used to answer Get in O(1). Rebuilt whenever the last column changes.
	prefix []int

	// Fixed is the subrange of J that the range controller has certified
	// stable: D(j)+h(j) > fmax outside of it for the current search bound.
	// A zero-value Fixed (both fields 0) means "not yet set"; Init leaves it
	// unset, and callers set it through SetLastFixedJRange.
	Fixed JRange
}

func (b *Block) last() column { return b.cols[len(b.cols)-1] }

// rebuildPrefix recomputes the cumulative-delta prefix for the block's last column.
// Must be called whenever b.cols[len-1] changes.
func (b *Block) rebuildPrefix() {
	last := b.last()
	b.prefix = make([]int, len(last.p)+1)
	for w, pw := range last.p {
		d := bits.OnesCount64(pw) - bits.OnesCount64(last.m[w])
		b.prefix[w+1] = b.prefix[w] + d
	}
}

// Get returns D(I.Hi, j) for j in J. It's O(1): words fully before j are answered
// from the cumulative prefix, the partial word containing j is popcounted directly.
func (b *Block) Get(j int) int {
	last := b.last()
	rel := j - b.wordLo*W
	w, k := rel/W, rel%W
	d := last.topVal + b.prefix[w]
	if k > 0 {
		lowMask := uint64(1)<<uint(k) - 1
		d += bits.OnesCount64(last.p[w]&lowMask) - bits.OnesCount64(last.m[w]&lowMask)
	}
	return d
}

// Profile is the subset of profile.Scatter/profile.Bit the block engine needs: an
// equality mask for A's i-th character against B's w-th word-chunk.
type Profile interface {
	Eq(i, w int) uint64
}

var (
	_ Profile = (*profile.Scatter)(nil)
	_ Profile = (*profile.Bit)(nil)
)

// Visualizer observes blocks as they're computed, purely for diagnostics; nil is a
// valid, no-op visualizer.
type Visualizer interface {
	ExpandBlock(i IRange, j JRange)
}

func floorW(j int) int { return (j / W) * W }
func ceilW(j int) int  { return ((j + W - 1) / W) * W }

// Store owns the sequence of blocks built for one alignment attempt, plus the
// previous attempt's blocks (if any), kept around so the range controller can ask
// what j-range was used for the block at the same position last time, and so
// ReuseNext can reattach an unchanged block.
type Store struct {
	prof  Profile
	blen  int
	trace bool

	prevIter []*Block
	cur      []*Block
}

// NewStore creates an empty block store over a profile built for an A of unknown
// length and a B of length blen. trace selects whether every interior column of a
// block is retained (needed to reconstruct a CIGAR) or only the rightmost one
// (sufficient to report a cost).
func NewStore(prof Profile, blen int, trace bool) *Store {
	return &Store{prof: prof, blen: blen, trace: trace}
}

// BeginIteration starts a fresh doubling iteration: the blocks built during the
// previous call become the reference the range controller can compare against (via
// NextBlockJRange), and a new, empty block list starts accumulating.
func (s *Store) BeginIteration() {
	if len(s.cur) > 0 {
		s.prevIter = s.cur
	}
	s.cur = nil
}

// NextBlockJRange returns the j-range used, in the previous iteration, for the
// block at the position the caller is about to compute next (i.e. len(s.cur)), and
// whether such a block exists.
func (s *Store) NextBlockJRange() (JRange, bool) {
	idx := len(s.cur)
	if idx < len(s.prevIter) {
		return s.prevIter[idx].J, true
	}
	return JRange{}, false
}

// Blocks returns the blocks computed so far this iteration, in order.
func (s *Store) Blocks() []*Block { return s.cur }

// ReuseNext reattaches the previous iteration's block at the position the caller is
// about to compute (i.e. len(s.cur)) instead of recomputing it, when the range
// controller determines the j-range at this position hasn't changed. i and j are the
// range the caller asked for, used only to sanity-check that the reused block's own
// ranges actually match.
func (s *Store) ReuseNext(i IRange, j JRange) *Block {
	idx := len(s.cur)
	blk := s.prevIter[idx]
	if blk.I != i || blk.J != j {
		panic("block: ReuseNext called with a range that doesn't match the reused block")
	}
	s.cur = append(s.cur, blk)
	return blk
}

// Last returns the most recently computed block.
func (s *Store) Last() *Block { return s.cur[len(s.cur)-1] }

// Init starts the block chain at column -1..0 (the state before any character of A
// has been consumed): D(0,j) = j for j in the given range, the classic boundary
// condition of the edit-distance table's first column.
func (s *Store) Init(j JRange) {
	wlo := floorW(j.Lo) / W
	whi := ceilW(j.Hi) / W
	nwords := whi - wlo
	if nwords == 0 {
		nwords = 1
		whi = wlo + 1
	}
	p := make([]uint64, nwords)
	for w := range p {
		p[w] = ^uint64(0)
	}
	m := make([]uint64, nwords)
	blk := &Block{
		I:      IRange{-1, 0},
		J:      j,
		wordLo: wlo,
		cols:   []column{{p: p, m: m, topVal: wlo * W}},
	}
	blk.rebuildPrefix()
	s.cur = append(s.cur, blk)
}

// SetLastFixedJRange records the fixed range the range controller computed for the
// most recently added block.
func (s *Store) SetLastFixedJRange(r JRange) {
	s.Last().Fixed = r
}

// widen extends prev's stored word range downward (to larger j) so that it covers
// want, filling the new rows by assuming the off-the-end D-values keep increasing
// by 1 per row — the same "treat the unknown as maximally costly" assumption Init
// uses for the boundary at j=0.
func widen(prev *Block, want JRange) {
	whi := ceilW(want.Hi) / W
	last := &prev.cols[len(prev.cols)-1]
	if whi <= prev.wordLo+len(last.p) {
		return
	}
	extra := whi - (prev.wordLo + len(last.p))
	// Every retained column (all of them, if tracing) must grow together so
	// indices stay aligned across cols.
	for i := range prev.cols {
		c := &prev.cols[i]
		for k := 0; k < extra; k++ {
			c.p = append(c.p, ^uint64(0))
			c.m = append(c.m, 0)
		}
	}
	prev.J.Hi = want.Hi
	prev.rebuildPrefix()
}

// ComputeNext advances the block chain across i, computing (or widening into) j. i.Lo
// must equal the previous block's I.Hi. The new block's stored range always starts
// at the same word as the previous block: only the bottom can grow within a chain.
func (s *Store) ComputeNext(i IRange, j JRange, vis Visualizer) *Block {
	prev := s.Last()
	if i.Lo != prev.I.Hi {
		panic("block: ComputeNext i-range must start where the previous block ended")
	}
	widen(prev, j)

	wlo := prev.wordLo
	nwords := len(prev.last().p)

	var cols []column
	if s.trace {
		cols = make([]column, 0, i.Hi-i.Lo+1)
		first := prev.last()
		cols = append(cols, column{p: append([]uint64(nil), first.p...), m: append([]uint64(nil), first.m...), topVal: first.topVal})
	}

	curP := append([]uint64(nil), prev.last().p...)
	curM := append([]uint64(nil), prev.last().m...)
	topVal := prev.last().topVal

	for col := i.Lo; col < i.Hi; col++ {
		carry := kernel.InitialCarry
		var h0 int
		for w := 0; w < nwords; w++ {
			eq := s.prof.Eq(col, wlo+w)
			p2, m2, c2, hh := kernel.Advance(curP[w], curM[w], eq, carry)
			curP[w], curM[w] = p2, m2
			carry = c2
			if w == 0 {
				h0 = hh
			}
		}
		topVal += h0
		if s.trace {
			cols = append(cols, column{p: append([]uint64(nil), curP...), m: append([]uint64(nil), curM...), topVal: topVal})
		}
	}

	if !s.trace {
		cols = []column{{p: curP, m: curM, topVal: topVal}}
	}

	blk := &Block{
		I:      i,
		J:      JRange{wlo * W, wlo*W + nwords*W},
		wordLo: wlo,
		cols:   cols,
	}
	// Expose the true requested range to callers, even though storage is
	// word-aligned and may be wider.
	blk.J.Lo = j.Lo
	blk.J.Hi = j.Hi
	blk.rebuildPrefix()
	s.cur = append(s.cur, blk)
	if vis != nil {
		vis.ExpandBlock(i, blk.J)
	}
	return blk
}

// At returns the block covering column i, searching from the most recently added
// block backward. When the store is tracing, every column is individually
// addressable; otherwise only the very last column is available and At panics for
// any other i.
func (s *Store) At(i int) *Block {
	if !s.trace {
		last := s.Last()
		if i != last.I.Hi {
			panic("block: At(i) for i other than the last computed column requires tracing")
		}
		return last
	}
	for bi := len(s.cur) - 1; bi >= 0; bi-- {
		b := s.cur[bi]
		if i > b.I.Lo && i <= b.I.Hi {
			return b
		}
	}
	panic("block: no block covers column")
}

// GetAt returns D(i,j), requiring tracing unless i is the last computed column.
func (s *Store) GetAt(i, j int) int {
	b := s.At(i)
	if !s.trace || i == b.I.Hi {
		return b.Get(j)
	}
	idx := i - b.I.Lo
	c := b.cols[idx]
	rel := j - b.wordLo*W
	w, k := rel/W, rel%W
	d := c.topVal
	for ww := 0; ww < w; ww++ {
		d += bits.OnesCount64(c.p[ww]) - bits.OnesCount64(c.m[ww])
	}
	if k > 0 {
		lowMask := uint64(1)<<uint(k) - 1
		d += bits.OnesCount64(c.p[w]&lowMask) - bits.OnesCount64(c.m[w]&lowMask)
	}
	return d
}
