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

package kernel

// AdvanceLanes advances L adjacent columns in lock-step, one word at a time. Go
// has no portable SIMD intrinsics outside of assembly, so the "vectorization" here
// is a lane loop over plain uint64s; the compiler is free to autovectorize it, and
// the lane-parallel structure is what a real SIMD backend would operate on. Each
// lane keeps its own carry, since a lane is simply one more adjacent column, not a
// subdivision of a single column's words.
//
// p, m, eq, carryP, carryM are all len(lanes); results are written back in place.
func AdvanceLanes(p, m, eq []uint64, carryP, carryM []uint64) {
	n := len(p)
	for l := 0; l < n; l++ {
		carry := Carry{P: carryP[l], M: carryM[l]}
		pOut, mOut, carryOut, _ := Advance(p[l], m[l], eq[l], carry)
		p[l] = pOut
		m[l] = mOut
		carryP[l] = carryOut.P
		carryM[l] = carryOut.M
	}
}

// PaddingWords returns the number of sentinel words to pad a profile with on both
// sides so that a lanes-wide striped sweep of blockWords-word columns never reads
// out of bounds: L*N - 1, per spec section 4.1/9(c).
func PaddingWords(lanes, blockWords int) int {
	return lanes*blockWords - 1
}
