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

import (
	"fmt"

	"znkr.io/seqalign/internal/config"
	"znkr.io/seqalign/internal/driver"
)

// allowedFlags is every flag Distance and Align allow: the full set of options
// defined in this package.
const allowedFlags = config.FlagDomain | config.FlagBlockWidth | config.FlagSparseH |
	config.FlagDoubling | config.FlagProfile | config.FlagSimdLanes |
	config.FlagSeedLen | config.FlagMaxMatchCost | config.FlagPrune | config.FlagPruneStrategy

// Distance returns the edit distance between a and b.
func Distance(a, b []byte, opts ...Option) (int, error) {
	cfg := config.FromOptions(opts, allowedFlags)
	res, err := driver.Align(a, b, cfg, nil)
	if err != nil {
		return 0, fmt.Errorf("seqalign: %w", err)
	}
	return res.Cost, nil
}

// Align returns the edit distance between a and b, together with the CIGAR
// describing one optimal alignment.
func Align(a, b []byte, opts ...Option) (int, Cigar, error) {
	cfg := config.FromOptions(opts, allowedFlags|config.FlagTrace)
	cfg.Trace = true
	res, err := driver.Align(a, b, cfg, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("seqalign: %w", err)
	}
	return res.Cost, cigarFromRuns(res.Cigar), nil
}
