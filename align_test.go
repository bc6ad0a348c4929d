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

package seqalign_test

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"znkr.io/seqalign"
)

func naiveDistance(a, b []byte) int {
	d := make([][]int, len(a)+1)
	for i := range d {
		d[i] = make([]int, len(b)+1)
		d[i][0] = i
	}
	for j := range d[0] {
		d[0][j] = j
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, min(d[i][j-1]+1, d[i-1][j-1]+cost))
		}
	}
	return d[len(a)][len(b)]
}

func TestDistance_Identical(t *testing.T) {
	got, err := seqalign.Distance([]byte("ACGTACGT"), []byte("ACGTACGT"))
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestDistance_MatchesNaive(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	alphabet := []byte("ACGT")
	for trial := 0; trial < 20; trial++ {
		n := 1 + r.IntN(60)
		m := 1 + r.IntN(60)
		a := make([]byte, n)
		for i := range a {
			a[i] = alphabet[r.IntN(len(alphabet))]
		}
		b := make([]byte, m)
		for i := range b {
			b[i] = alphabet[r.IntN(len(alphabet))]
		}
		want := naiveDistance(a, b)

		for _, domain := range []seqalign.Domain{seqalign.Full, seqalign.GapStart, seqalign.GapGap, seqalign.Astar} {
			got, err := seqalign.Distance(a, b, seqalign.WithDomain(domain))
			require.NoError(t, err)
			require.Equal(t, want, got, "trial %d domain %v: a=%q b=%q", trial, domain, a, b)
		}
	}
}

func TestAlign_CigarValidates(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 2))
	alphabet := []byte("ACGT")
	for trial := 0; trial < 20; trial++ {
		n := 1 + r.IntN(60)
		m := 1 + r.IntN(60)
		a := make([]byte, n)
		for i := range a {
			a[i] = alphabet[r.IntN(len(alphabet))]
		}
		b := make([]byte, m)
		for i := range b {
			b[i] = alphabet[r.IntN(len(alphabet))]
		}

		cost, cigar, err := seqalign.Align(a, b)
		require.NoError(t, err)
		require.Equal(t, cost, cigar.Cost(), "trial %d", trial)
		require.NoError(t, cigar.Validate(a, b), "trial %d: a=%q b=%q cigar=%v", trial, a, b, cigar)

		consumedA, consumedB := cigar.Lens()
		require.Equal(t, len(a), consumedA)
		require.Equal(t, len(b), consumedB)
	}
}

func TestCigar_ApplyReproducesB(t *testing.T) {
	r := rand.New(rand.NewPCG(4, 4))
	alphabet := []byte("ACGT")
	for trial := 0; trial < 20; trial++ {
		n := 1 + r.IntN(60)
		m := 1 + r.IntN(60)
		a := make([]byte, n)
		for i := range a {
			a[i] = alphabet[r.IntN(len(alphabet))]
		}
		b := make([]byte, m)
		for i := range b {
			b[i] = alphabet[r.IntN(len(alphabet))]
		}

		_, cigar, err := seqalign.Align(a, b)
		require.NoError(t, err)

		got, err := cigar.Apply(a, b)
		require.NoError(t, err)
		if diff := cmp.Diff(b, got); diff != "" {
			t.Errorf("trial %d: Apply(a, b) mismatch (-want +got):\n%s", trial, diff)
		}
	}
}

func TestBlockWidth_RejectsTooSmall(t *testing.T) {
	require.Panics(t, func() {
		seqalign.Distance([]byte("ACGT"), []byte("ACGT"), seqalign.BlockWidth(32))
	})
}
