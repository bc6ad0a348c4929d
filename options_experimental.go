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

//go:build experimental

package seqalign

import "znkr.io/seqalign/internal/config"

// ProfileKind selects the equality-mask encoding used to build the B-profile.
type ProfileKind = config.ProfileKind

const (
	// ScatterProfile (the default) supports ambiguity codes (N, Y, R, ...) on
	// B and is the scalar-friendly encoding.
	ScatterProfile = config.Scatter
	// BitProfile trades ambiguity support for an equality test that's four
	// XOR/ANDs, friendlier to the striped kernel. B must not contain
	// ambiguity codes.
	BitProfile = config.Bit
)

// WithProfile selects the profile encoding. It's experimental because Bit's
// ambiguity restriction makes it a strict subset of Scatter's capability, and the
// performance win depends on SimdLanes actually exercising striping.
func WithProfile(p ProfileKind) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Profile = p
		return config.FlagProfile
	}
}

// SimdLanes sets the number of adjacent columns advanced in lock-step by the
// striped kernel (see internal/kernel's AdvanceLanes). The default is 1 (no
// striping). It's experimental because Go has no portable SIMD intrinsics outside
// assembly, so striping here is a lane loop, not real vector hardware use. Distance
// and Align accept any value but always sweep one column at a time through the
// scalar kernel, so values above 1 do not change how they run; see DESIGN.md.
func SimdLanes(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.SimdLanes = n
		return config.FlagSimdLanes
	}
}

// MaxMatchCost sets the cost of an inexact ("fuzzy") seed match the Astar domain's
// chaining heuristic will still credit as free: 0 requires an exact k-mer match, 1
// is meant to additionally accept seeds with a single substitution. It's
// experimental because only MaxMatchCost(1) is validated, not implemented: the
// seed index built by the heuristic is exact-match only, so setting this to 1
// currently has no effect on alignment behavior; see DESIGN.md.
func MaxMatchCost(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxMatchCost = n
		return config.FlagMaxMatchCost
	}
}

// PruneStrategy selects which contour layer is used as the ceiling for A*
// pruning. The Astar domain's seed heuristic keeps no contours, so Distance and
// Align behave the same under either strategy.
type PruneStrategy = config.PruneStrategy

const (
	// PruneHighestModifiedContour (the default) only re-derives contours up to
	// the highest layer touched by the most recent match, which is what
	// upstream settled on after PruneMaxLayer was found to occasionally
	// mis-prune; see DESIGN.md.
	PruneHighestModifiedContour = config.PruneHighestModifiedContour
	// PruneMaxLayer prunes up to the maximum layer unconditionally.
	PruneMaxLayer = config.PruneMaxLayer
)

// WithPruneStrategy selects the pruning ceiling strategy.
func WithPruneStrategy(s PruneStrategy) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.PruneStrategy = s
		return config.FlagPruneStrategy
	}
}
