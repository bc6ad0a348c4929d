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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// seqalign.Option.
package config

import "fmt"

// Domain selects the shape of the live row range the range controller computes for each block.
type Domain int

const (
	// Full considers every row in every block; no heuristic is used.
	Full Domain = iota
	// GapStart bounds the range to a band around the main diagonal.
	GapStart
	// GapGap additionally accounts for the overall length difference between the two sequences.
	GapGap
	// Astar uses a seed-chaining heuristic to compute a tight, pruned range.
	Astar
)

// ProfileKind selects the bit layout used to precompute character-equality masks.
type ProfileKind int

const (
	// Scatter stores one word per possible character per 64-row chunk of B. Scalar friendly.
	Scatter ProfileKind = iota
	// Bit stores two exploded bit-planes per 64-row chunk of B. SIMD friendly.
	Bit
)

// Doubling selects how the outer driver grows f_max between iterations.
type Doubling int

const (
	// None disables exponential doubling; a single pass at the given bound is run.
	None Doubling = iota
	// Exponential doubles f_max after every failed pass (factor 2).
	Exponential
	// LocalDoubling names growing f_max for a suffix of columns within a single pass.
	// internal/driver does not do that: it runs LocalDoubling exactly like Exponential,
	// restarting from column 0 after every failed pass.
	LocalDoubling
)

// PruneStrategy selects how far pruning recomputes seed-match contours. SeedChain keeps
// no contours (its UpdateContours does nothing) and the engine never reads this
// setting, so both values behave the same.
type PruneStrategy int

const (
	// PruneHighestModifiedContour only recomputes contours at or above the highest contour
	// touched by a prune. This is the default: the source material this algorithm is derived
	// from notes unexplained divergence when pruning all the way to the maximum layer, so we
	// default to the narrower, verified-safe strategy.
	PruneHighestModifiedContour PruneStrategy = iota
	// PruneMaxLayer recomputes contours all the way up to the maximum observed layer number.
	// Kept as an opt-in alternative per the open question.
	PruneMaxLayer
)

// Config collects all configurable parameters for the aligner in this module.
type Config struct {
	// Domain selects the heuristic family used to bound j_range.
	Domain Domain

	// BlockWidth is the number of DP columns computed per block. Must be a power of two and
	// >= 128: block_width == 64 has a known bug in fixed_j_range, so it's rejected outright.
	BlockWidth int

	// SparseH enables the sparse h-sampling fast path in the range controller, jumping by
	// (f-f_max)/2 instead of stepping one row/column at a time.
	SparseH bool

	// Doubling selects the outer-driver growth strategy.
	Doubling Doubling

	// Trace requests that a CIGAR be reconstructed in addition to the cost.
	Trace bool

	// Profile selects the bit layout of the equality masks.
	Profile ProfileKind

	// SimdLanes is the lane count for the striped kernel (kernel.AdvanceLanes). The block
	// engine always advances one column at a time through kernel.Advance, so values above 1
	// do not change the sweep.
	SimdLanes int

	// SeedLen is the seed length k used by the Astar domain's seed index.
	SeedLen int

	// MaxMatchCost is the maximum number of mismatches r allowed for a seed occurrence to still
	// count as a match (0 or 1). The Astar seed index records exact occurrences only, so 1
	// behaves like 0.
	MaxMatchCost int

	// Prune enables pruning of seed matches dominated by the frontier.
	Prune bool

	// PruneStrategy selects how contours are recomputed after a prune.
	PruneStrategy PruneStrategy
}

// Default is the default configuration.
var Default = Config{
	Domain:        Astar,
	BlockWidth:    256,
	SparseH:       false,
	Doubling:      Exponential,
	Trace:         false,
	Profile:       Scatter,
	SimdLanes:     1,
	SeedLen:       15,
	MaxMatchCost:  0,
	Prune:         true,
	PruneStrategy: PruneHighestModifiedContour,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not allowed in the calling context.
type Flag int

const (
	FlagDomain Flag = 1 << iota
	FlagBlockWidth
	FlagSparseH
	FlagDoubling
	FlagTrace
	FlagProfile
	FlagSimdLanes
	FlagSeedLen
	FlagMaxMatchCost
	FlagPrune
	FlagPruneStrategy
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic(fmt.Sprintf("seqalign: option %v not allowed here", flag))
		}
	}
	if cfg.BlockWidth < 128 {
		panic("seqalign: BlockWidth must be >= 128")
	}
	if cfg.BlockWidth&(cfg.BlockWidth-1) != 0 {
		panic("seqalign: BlockWidth must be a power of two")
	}
	if cfg.MaxMatchCost != 0 && cfg.MaxMatchCost != 1 {
		panic("seqalign: MaxMatchCost must be 0 or 1")
	}
	return cfg
}
