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

package profile_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"znkr.io/seqalign/internal/profile"
)

func randSeq(r *rand.Rand, n int, alphabet string) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.IntN(len(alphabet))]
	}
	return b
}

func TestScatter_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for trial := 0; trial < 50; trial++ {
		a := randSeq(r, 1+r.IntN(50), "ACGT")
		b := randSeq(r, 1+r.IntN(150), "ACGT")
		p, err := profile.BuildScatter(a, b)
		require.NoError(t, err)
		for i := range a {
			for j := range b {
				require.Equal(t, a[i] == b[j], p.IsMatch(i, j), "i=%d j=%d", i, j)
			}
		}
	}
}

func TestScatter_Ambiguity(t *testing.T) {
	a := []byte("ACGT")
	b := []byte("NNNN")
	p, err := profile.BuildScatter(a, b)
	require.NoError(t, err)
	for i := range a {
		require.True(t, p.IsMatch(i, 0), "N must match every base")
	}

	b2 := []byte("YYYY") // C or T
	p2, err := profile.BuildScatter(a, b2)
	require.NoError(t, err)
	require.False(t, p2.IsMatch(0, 0)) // A
	require.True(t, p2.IsMatch(1, 0))  // C
	require.False(t, p2.IsMatch(2, 0)) // G
	require.True(t, p2.IsMatch(3, 0))  // T
}

func TestScatter_RejectsInvalidBase(t *testing.T) {
	_, err := profile.BuildScatter([]byte("ACGTZ"), []byte("ACGT"))
	require.Error(t, err)
}

func TestScatter_TailMatchesEverything(t *testing.T) {
	b := []byte("ACGT") // length 4, well short of one word (64)
	p, err := profile.BuildScatter([]byte("A"), b)
	require.NoError(t, err)
	for j := len(b); j < profile.W; j++ {
		require.True(t, p.IsMatch(0, j), "tail row %d must match", j)
	}
}

func TestBit_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(2, 2))
	for trial := 0; trial < 50; trial++ {
		a := randSeq(r, 1+r.IntN(50), "ACGT")
		b := randSeq(r, 1+r.IntN(3), "ACGT")
		for len(b)%profile.W != 0 {
			b = append(b, randSeq(r, 1, "ACGT")...)
		}
		p, err := profile.BuildBit(a, b)
		require.NoError(t, err)
		for i := range a {
			for j := range b {
				require.Equal(t, a[i] == b[j], p.IsMatch(i, j), "i=%d j=%d", i, j)
			}
		}
	}
}

func TestBit_RejectsUnalignedLength(t *testing.T) {
	_, err := profile.BuildBit([]byte("A"), []byte("ACGT"))
	require.Error(t, err)
}

func TestBit_RejectsAmbiguity(t *testing.T) {
	_, err := profile.BuildBit([]byte("A"), append([]byte("N"), make([]byte, profile.W-1)...))
	require.Error(t, err)
}
