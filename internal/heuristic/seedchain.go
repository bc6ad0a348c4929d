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

package heuristic

// seed is one disjoint slice of A, together with the start rows in B where it
// occurs exactly.
type seed struct {
	iStart int
	iLen   int
	occ    []int // B start positions where A[iStart:iStart+iLen] occurs verbatim
	pruned bool
}

// SeedChain is a simplified chaining seed heuristic: A is partitioned into
// non-overlapping seeds of length seedLen, each indexed against every exact
// occurrence in B. A seed counts against h(i,j) only if none of its occurrences
// lie on (i,j)'s diagonal ahead of (i,j); once a seed is pruned (the search has
// moved past it) it stops counting for good, in later doubling iterations too.
// Since h counts seeds, pruning never raises h.
type SeedChain struct {
	seeds []seed
}

// NewSeedChain builds a seed-chaining heuristic over a against b, cutting a into
// seeds of length seedLen (the final, possibly shorter, remainder is dropped: a
// partial seed can never certify a full-length mismatch).
func NewSeedChain(a, b []byte, seedLen int) *SeedChain {
	if seedLen <= 0 {
		seedLen = 1
	}
	index := make(map[string][]int)
	for j := 0; j+seedLen <= len(b); j++ {
		index[string(b[j:j+seedLen])] = append(index[string(b[j:j+seedLen])], j)
	}

	var seeds []seed
	for i := 0; i+seedLen <= len(a); i += seedLen {
		occ := index[string(a[i:i+seedLen])]
		seeds = append(seeds, seed{iStart: i, iLen: seedLen, occ: occ})
	}
	return &SeedChain{seeds: seeds}
}

func (s *SeedChain) H(i, j int) int {
	h, _ := s.HWithHint(i, j, 0)
	return h
}

func (s *SeedChain) HWithHint(i, j, hint int) (int, int) {
	var h int
	for k := range s.seeds {
		sd := &s.seeds[k]
		if sd.pruned || sd.iStart < i {
			continue
		}
		if !sd.onDiagonalAhead(i, j) {
			h++
		}
	}
	return h, 0
}

// onDiagonalAhead reports whether the seed has an occurrence reachable for free
// from (i,j): one on (i,j)'s diagonal, at or past the current position.
func (sd *seed) onDiagonalAhead(i, j int) bool {
	want := sd.iStart - i + j
	for _, o := range sd.occ {
		if o == want && o >= j {
			return true
		}
	}
	return false
}

// PruneBlock prunes every seed whose start column lies in [iLo,iHi). The row range
// is not consulted, and a seed that extends past iHi is pruned too.
func (s *SeedChain) PruneBlock(iLo, iHi, jLo, jHi int) {
	for k := range s.seeds {
		sd := &s.seeds[k]
		if sd.iStart >= iLo && sd.iStart < iHi {
			sd.pruned = true
		}
	}
}

func (s *SeedChain) UpdateContours() {}
