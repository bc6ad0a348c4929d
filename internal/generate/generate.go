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

// Package generate creates synthetic sequence pairs with a target induced error
// rate, for benchmarking and fuzzing the aligner without needing real genomic
// data on hand.
package generate

import "math/rand/v2"

var alphabet = [4]byte{'A', 'C', 'G', 'T'}

// Options controls synthetic pair generation.
type Options struct {
	// Length of the generated sequence A.
	Length int
	// ErrorRate is the fraction of Length mutations applied to derive B from A.
	ErrorRate float64
}

// Pair generates a random A of Options.Length characters and a B derived from A by
// applying ceil(ErrorRate*Length) uniformly-random substitutions, insertions and
// deletions, mirroring the "Uniform" error model.
func Pair(opt Options, r *rand.Rand) (a, b []byte) {
	a = make([]byte, opt.Length)
	for i := range a {
		a[i] = randBase(r)
	}

	b = append([]byte(nil), a...)
	n := int(opt.ErrorRate*float64(opt.Length) + 0.999999)
	for k := 0; k < n; k++ {
		b = mutate(b, r)
	}
	return a, b
}

func randBase(r *rand.Rand) byte {
	return alphabet[r.IntN(len(alphabet))]
}

// mutate applies one random substitution, insertion or deletion to b. Sequences
// of length 0 can only grow, never shrink.
func mutate(b []byte, r *rand.Rand) []byte {
	kind := 1
	if len(b) > 0 {
		kind = r.IntN(3)
	}
	switch kind {
	case 0: // substitution
		pos := r.IntN(len(b))
		b[pos] = randBase(r)
		return b
	case 1: // insertion
		pos := r.IntN(len(b) + 1)
		out := make([]byte, 0, len(b)+1)
		out = append(out, b[:pos]...)
		out = append(out, randBase(r))
		out = append(out, b[pos:]...)
		return out
	default: // deletion
		pos := r.IntN(len(b))
		out := make([]byte, 0, len(b)-1)
		out = append(out, b[:pos]...)
		out = append(out, b[pos+1:]...)
		return out
	}
}
