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

// Package heuristic provides lower-bound estimators for the remaining edit
// distance from a position (i,j) to the end of the alignment, used by the range
// controller to shrink the band the block engine needs to fill.
//
// None is the trivial zero estimator. SeedChain is a simplified chaining seed
// heuristic: A is cut into disjoint seeds, each seed's exact occurrences in B are
// indexed, and h(i,j) counts seeds ahead of (i,j) that have no occurrence reachable
// on (i,j)'s diagonal. Every such seed certifies at least one edit is needed to
// "skip" it, so the count is an admissible (never overestimating) lower bound; it
// omits the full contour-graph precision of a production chaining heuristic (see
// doc comment on SeedChain), which is well beyond what this port attempts.
package heuristic

// Heuristic estimates remaining edit distance and reacts to pruning as the search
// commits to a prefix of the alignment.
type Heuristic interface {
	// H returns a lower bound on the edit distance from (i,j) to (alen,blen).
	H(i, j int) int
	// HWithHint is H, plus an opaque hint the caller threads through consecutive
	// calls along a roughly monotone path, letting an implementation resume a
	// search instead of starting from scratch. SeedChain's hint is unused (0
	// in, 0 out); the interface exists so callers don't need to special-case
	// heuristics that do exploit it.
	HWithHint(i, j, hint int) (h, newHint int)
	// PruneBlock tells the heuristic that the optimal alignment is now known to
	// cross rows [jLo,jHi) somewhere within columns [iLo,iHi): any remaining
	// seed entirely inside that rectangle can never help a path that hasn't
	// already used it, and may be dropped from future estimates.
	PruneBlock(iLo, iHi, jLo, jHi int)
	// UpdateContours recomputes any cached potential after a batch of pruning.
	// SeedChain has no cache to refresh (H recomputes from the live seed set
	// each call), so this is a no-op; it's part of the interface because a
	// contour-based heuristic needs the hook.
	UpdateContours()
}

// None is the zero heuristic: admissible for any alignment, consistent, and
// uninformative. Used for the Full, GapStart and GapGap domains, which bound the
// search band analytically instead of through A* guidance.
type None struct{}

func (None) H(i, j int) int                    { return 0 }
func (None) HWithHint(i, j, hint int) (int, int) { return 0, 0 }
func (None) PruneBlock(iLo, iHi, jLo, jHi int)  {}
func (None) UpdateContours()                   {}

var (
	_ Heuristic = None{}
	_ Heuristic = (*SeedChain)(nil)
)
