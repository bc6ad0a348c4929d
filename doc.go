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

// Package seqalign computes edit distance and CIGAR alignments between DNA
// sequences using a bit-packed, blockwise DP engine guided by a band around the
// likely optimal path.
//
// By default, the package uses an A*-guided band driven by a simplified
// chaining-seed heuristic and grows the band by exponential doubling until it's
// wide enough to contain the optimal alignment; use [Domain], [Doubling] and the
// other options to choose a simpler, analytically-bounded band instead. Cost is
// always exact; [Align] additionally returns the edit script.
//
// Performance: with default options, expected time is roughly linear in
// len(a)+len(b) for sequences that are mostly similar, degrading towards
// O(len(a)*len(b)/64) for sequences with little similarity. See [Domain] for the
// available tradeoffs.
package seqalign
