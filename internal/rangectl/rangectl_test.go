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

package rangectl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"znkr.io/seqalign/internal/block"
	"znkr.io/seqalign/internal/config"
	"znkr.io/seqalign/internal/rangectl"
)

func TestJRange_Full_IgnoresBound(t *testing.T) {
	c := rangectl.New(config.Full, 100, 50, nil, false, 256)
	r := c.JRange(block.IRange{Lo: 10, Hi: 20}, 2, true, nil, block.JRange{})
	require.Equal(t, block.JRange{Lo: 0, Hi: 50}, r)
}

func TestJRange_Unbounded_IsFullRange(t *testing.T) {
	c := rangectl.New(config.GapStart, 100, 50, nil, false, 256)
	r := c.JRange(block.IRange{Lo: 10, Hi: 20}, 0, false, nil, block.JRange{})
	require.Equal(t, block.JRange{Lo: 0, Hi: 50}, r)
}

func TestJRange_GapStart_GrowsWithBudget(t *testing.T) {
	c := rangectl.New(config.GapStart, 100, 100, nil, false, 256)
	narrow := c.JRange(block.IRange{Lo: 10, Hi: 20}, 1, true, nil, block.JRange{})
	wide := c.JRange(block.IRange{Lo: 10, Hi: 20}, 5, true, nil, block.JRange{})
	require.Less(t, narrow.Lo, 20)
	require.GreaterOrEqual(t, wide.Hi-wide.Lo, narrow.Hi-narrow.Lo)
}

func TestJRange_Union_NeverShrinksAcrossIterations(t *testing.T) {
	c := rangectl.New(config.GapStart, 100, 100, nil, false, 256)
	old := block.JRange{Lo: 0, Hi: 40}
	r := c.JRange(block.IRange{Lo: 10, Hi: 20}, 1, true, nil, old)
	require.LessOrEqual(t, r.Lo, old.Lo)
	require.GreaterOrEqual(t, r.Hi, old.Hi)
}
