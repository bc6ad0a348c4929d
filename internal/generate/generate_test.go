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

package generate_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"znkr.io/seqalign/internal/generate"
	"znkr.io/seqalign/internal/reference"
)

func TestPair_OnlyEmitsValidBases(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	a, b := generate.Pair(generate.Options{Length: 200, ErrorRate: 0.1}, r)
	require.Len(t, a, 200)
	for _, seqs := range [][]byte{a, b} {
		for _, c := range seqs {
			require.Contains(t, "ACGT", string(c))
		}
	}
}

func TestPair_DistanceRoughlyTracksErrorRate(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 2))
	a, b := generate.Pair(generate.Options{Length: 500, ErrorRate: 0.05}, r)
	d := reference.Distance(a, b)
	require.Greater(t, d, 0)
	require.LessOrEqual(t, d, 25) // ceil(0.05*500) = 25 mutations, each adding at most one edit
}
