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

package seqalign

import "znkr.io/seqalign/internal/config"

// Option configures the behavior of [Distance] and [Align].
type Option = config.Option

// Domain selects how the row-range to search is bounded.
type Domain = config.Domain

const (
	// Full searches the entire DP table: no band, no heuristic, exact and
	// slow. Useful as a correctness reference.
	Full = config.Full
	// GapStart bounds the band analytically from the gap cost to the start of
	// the sequences. Simple, no heuristic overhead, wider than it needs to be.
	GapStart = config.GapStart
	// GapGap further tightens GapStart's bound using the gap cost to the end
	// of the sequences too.
	GapGap = config.GapGap
	// Astar (the default) narrows the band using a chaining seed heuristic,
	// typically the fastest domain for sequences that are mostly similar.
	Astar = config.Astar
)

// WithDomain selects the band-bounding domain. The default is [Astar].
func WithDomain(d Domain) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Domain = d
		return config.FlagDomain
	}
}

// BlockWidth sets the number of A-columns the block engine advances in a single
// sweep before re-querying the range controller. Must be a power of two, at least
// 128. The default is 256.
func BlockWidth(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.BlockWidth = n
		return config.FlagBlockWidth
	}
}

// SparseH enables the coarser-stepping range-controller search, which reduces the
// number of heuristic evaluations at the cost of a looser (wider) band.
func SparseH() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.SparseH = true
		return config.FlagSparseH
	}
}

// Doubling selects how the search bound grows across attempts.
type Doubling = config.Doubling

const (
	// NoDoubling runs a single, unbounded search. Only useful with [Full].
	NoDoubling = config.None
	// ExponentialDoubling (the default) doubles the bound after every failed
	// attempt.
	ExponentialDoubling = config.Exponential
	// LocalDoublingMode grows the bound per-block instead of globally. Treated
	// identically to [ExponentialDoubling] in this implementation; see
	// DESIGN.md.
	LocalDoublingMode = config.LocalDoubling
)

// WithDoubling selects the doubling strategy. The default is
// [ExponentialDoubling].
func WithDoubling(d Doubling) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Doubling = d
		return config.FlagDoubling
	}
}

// Prune enables or disables A* pruning of certified-stable heuristic states. On
// by default; turning it off is mostly useful for benchmarking its effect.
func Prune(enabled bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Prune = enabled
		return config.FlagPrune
	}
}

// SeedLen sets the seed length used by the Astar domain's chaining heuristic. The
// default is 15.
func SeedLen(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.SeedLen = n
		return config.FlagSeedLen
	}
}
