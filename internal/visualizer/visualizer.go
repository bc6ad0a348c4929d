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

// Package visualizer defines the hook the driver calls as it expands blocks,
// mirroring the VisualizerT trait: a pluggable observer with a no-op default, kept
// separate from the driver so tooling can watch a search without the hot path
// paying for it unless something is actually listening.
package visualizer

import (
	"fmt"
	"io"

	"znkr.io/seqalign/internal/block"
)

// None is a no-op visualizer; the zero value is ready to use.
type None struct{}

func (None) ExpandBlock(i block.IRange, j block.JRange) {}

// Log writes one line per expanded block to W, for ad-hoc debugging.
type Log struct {
	W io.Writer
}

func (l Log) ExpandBlock(i block.IRange, j block.JRange) {
	fmt.Fprintf(l.W, "expand i=[%d,%d) j=[%d,%d)\n", i.Lo, i.Hi, j.Lo, j.Hi)
}

var (
	_ block.Visualizer = None{}
	_ block.Visualizer = Log{}
)
