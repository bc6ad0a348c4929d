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

// Package rangectl decides, for a range of A-columns and a cost bound f_max, which
// rows of B the block engine actually needs to fill: the j_range. Domain picks the
// shape of the band: Full computes everything, GapStart/GapGap bound it
// analytically from the unit-cost gap distance, and Astar narrows it using a
// heuristic's lower bound on remaining cost, re-deriving the classic A* bound
// f(v) = g(u) + extend_cost(u,v) + h(v) one column at a time.
package rangectl

import (
	"znkr.io/seqalign/internal/block"
	"znkr.io/seqalign/internal/config"
	"znkr.io/seqalign/internal/heuristic"
)

// Controller computes j-ranges for one alignment of a (length alen) against b
// (length blen).
type Controller struct {
	domain     config.Domain
	alen, blen int
	h          heuristic.Heuristic
	sparseH    bool
	blockWidth int
	hint       int
}

// New creates a range controller. h is ignored unless domain is config.Astar.
func New(domain config.Domain, alen, blen int, h heuristic.Heuristic, sparseH bool, blockWidth int) *Controller {
	if h == nil {
		h = heuristic.None{}
	}
	return &Controller{domain: domain, alen: alen, blen: blen, h: h, sparseH: sparseH, blockWidth: blockWidth}
}

func intersect(r, bound block.JRange) block.JRange {
	lo, hi := r.Lo, r.Hi
	if lo < bound.Lo {
		lo = bound.Lo
	}
	if hi > bound.Hi {
		hi = bound.Hi
	}
	if hi < lo {
		hi = lo
	}
	return block.JRange{Lo: lo, Hi: hi}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// JRange computes the rows to fill for columns i, given the block computed for the
// previous column boundary (prev, used to query g(u) for the Astar domain) and
// oldRange, the j_range already computed for this same column boundary in an
// earlier doubling iteration (so the band never shrinks as f_max grows).
//
// hasBound false means unbounded search: every row is in range.
func (c *Controller) JRange(i block.IRange, fMax int, hasBound bool, prev *block.Block, oldRange block.JRange) block.JRange {
	if !hasBound {
		return block.JRange{Lo: 0, Hi: c.blen}
	}

	is, ie := i.Lo, i.Hi
	var r block.JRange
	switch c.domain {
	case config.Full:
		r = block.JRange{Lo: 0, Hi: c.blen}
	case config.GapStart:
		// Unit cost: a budget of fMax can buy at most fMax deletions above the
		// start, or fMax insertions below the end.
		r = block.JRange{Lo: is + 1 - fMax, Hi: ie + fMax}
	case config.GapGap:
		d := c.blen - c.alen
		gapCost := abs(d)
		s := fMax - gapCost
		extra := 0
		if s > 0 {
			extra = s / 2 // each extra diagonal costs one insertion and one deletion
		}
		r = block.JRange{
			Lo: is + 1 + minInt(d, 0) - extra,
			Hi: ie + maxInt(d, 0) + extra,
		}
	case config.Astar:
		r = c.astarJRange(is, ie, fMax, prev)
	}
	r = r.Union(oldRange)
	return intersect(r, block.JRange{Lo: 0, Hi: c.blen})
}

// astarJRange re-derives the A* band for columns [is,ie), extending diagonally
// from u, the bottom of prev's fixed (certified-stable) range, column by column.
func (c *Controller) astarJRange(is, ie, fMax int, prev *block.Block) block.JRange {
	fixed := prev.Fixed
	fixedStart, fixedEnd := fixed.Lo, fixed.Hi

	uI, uJ := is, fixedEnd
	var gu int
	if is >= 0 {
		gu = prev.Get(fixedEnd)
	}

	extendCost := func(vI, vJ int) int { return (vJ - uJ) - (vI - uI) }
	f := func(vI, vJ int) int {
		hv, newHint := c.h.HWithHint(vI, vJ, c.hint)
		c.hint = newHint
		return gu + extendCost(vI, vJ) + hv
	}

	vI, vJ := uI, uJ
	if !c.sparseH {
		for vI < ie {
			vI, vJ = vI+1, vJ+1
			vJ++
			for vJ <= c.blen && f(vI, vJ) <= fMax {
				vJ++
			}
			vJ--
		}
	} else {
		vI, vJ = vI+1, vJ+1
		vJ += c.blockWidth + 8
		if vJ > c.blen {
			vJ = c.blen
		}
		for vI <= ie && vJ < c.blen {
			fv := f(vI, vJ)
			if fv <= fMax {
				vJ += 8
			} else {
				vI += ceilDiv(fv-fMax, 2)
			}
		}
		vI = ie
		for {
			if vJ < 0 || vJ == c.blen {
				break
			}
			fv := f(vI, vJ)
			if fv <= fMax {
				break
			}
			vJ -= ceilDiv(fv-fMax, 2)
			if diag := vI - uI + uJ; vJ < diag {
				vJ = diag
				break
			}
		}
	}
	return block.JRange{Lo: fixedStart, Hi: vJ}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// FixedJRange computes the subrange of blk's j_range that's certified stable under
// f_max: rows where block.Get(j) + h(i,j) <= f_max. Only meaningful for the Astar
// domain; other domains don't track a fixed range and this always returns the
// block's full j-range.
func (c *Controller) FixedJRange(i int, fMax int, hasBound bool, blk *block.Block) block.JRange {
	if c.domain != config.Astar || !hasBound {
		return blk.J
	}
	start, end := blk.J.Lo, blk.J.Hi

	f := func(j int) int {
		hv, newHint := c.h.HWithHint(i, j, c.hint)
		c.hint = newHint
		return blk.Get(j) + hv
	}

	for start <= end {
		fv := f(start)
		if fv <= fMax {
			break
		}
		if c.sparseH {
			start += ceilDiv(fv-fMax, 2)
		} else {
			start++
		}
	}
	for end >= start {
		fv := f(end)
		if fv <= fMax {
			break
		}
		if c.sparseH {
			end -= ceilDiv(fv-fMax, 2)
		} else {
			end--
		}
	}
	return block.JRange{Lo: start, Hi: end}
}
