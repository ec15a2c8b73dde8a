// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package schedule

import "fmt"

// Assigner places the real matches of a round on the resources. Assigners
// hold no per-round state and may be used by several goroutines at once.
type Assigner interface {
	// Mode returns the strategy implemented by the Assigner.
	Mode() Mode

	// Assign returns, for every resource in input order, the match played
	// on it during the given round (nil if the resource is idle), and the
	// matches which could not be placed on any resource.
	Assign(round int, matches []Match) ([]*Match, []Match)
}

// NewAssigner returns the Assigner for the given mode. Auto is resolved
// using the layout.
func NewAssigner(mode Mode, layout Layout) (Assigner, error) {
	if mode == Auto {
		mode = layout.Mode()
	}

	switch mode {
	case Sliding:
		return &SlidingAssigner{Resources: layout.Resources}, nil
	case Batch:
		return NewBatchAssigner(layout), nil
	default:
		return nil, fmt.Errorf("new assigner: invalid mode %s", mode)
	}
}

// SlidingAssigner rotates a window of resources over the matches of each
// round. Resource k shows match (k - round) mod max(matches, resources),
// so the same match surfaces on a different resource every round.
type SlidingAssigner struct {
	Resources int
}

func (*SlidingAssigner) Mode() Mode {
	return Sliding
}

func (sliding *SlidingAssigner) Assign(round int, matches []Match) ([]*Match, []Match) {
	cells := make([]*Match, sliding.Resources)
	grid := max(len(matches), sliding.Resources)
	if grid == 0 {
		return cells, nil
	}

	placed := make([]bool, len(matches))
	for k := range cells {
		source := mod(k-round, grid)
		if source < len(matches) {
			cells[k] = &matches[source]
			placed[source] = true
		}
	}

	return cells, unplaced(matches, placed)
}

// BatchAssigner splits the resources into contiguous blocks of one full
// set of matches each. The rounds are split evenly between the blocks, and
// within its share of rounds a block rotates the matches left by one.
type BatchAssigner struct {
	Resources      int
	BlockSize      int // matches per round
	Batches        int
	RoundsPerBatch int
}

// NewBatchAssigner derives the batch geometry from the layout. A layout
// without room for a single full batch is treated as one batch.
func NewBatchAssigner(layout Layout) *BatchAssigner {
	batches := max(layout.BatchCount(), 1)
	rounds := layout.Rounds()

	return &BatchAssigner{
		Resources:      layout.Resources,
		BlockSize:      layout.MatchesPerRound(),
		Batches:        batches,
		RoundsPerBatch: max((rounds+batches-1)/batches, 1),
	}
}

func (*BatchAssigner) Mode() Mode {
	return Batch
}

func (batch *BatchAssigner) Assign(round int, matches []Match) ([]*Match, []Match) {
	cells := make([]*Match, batch.Resources)

	// No matches means nothing to rotate: every resource stays idle.
	if len(matches) == 0 {
		return cells, nil
	}

	index := min(round/batch.RoundsPerBatch, batch.Batches-1)
	offset := index * batch.BlockSize

	shift := round % len(matches)
	ordered := make([]Match, 0, len(matches))
	ordered = append(ordered, matches[shift:]...)
	ordered = append(ordered, matches[:shift]...)

	placed := make([]bool, len(ordered))
	for k := range cells {
		relative := k - offset
		if relative >= 0 && relative < len(ordered) {
			cells[k] = &ordered[relative]
			placed[relative] = true
		}
	}

	return cells, unplaced(ordered, placed)
}

func unplaced(matches []Match, placed []bool) []Match {
	var rest []Match
	for i, ok := range placed {
		if !ok {
			rest = append(rest, matches[i])
		}
	}

	return rest
}

// mod is the euclidean modulus, which unlike % is never negative.
func mod(a, b int) int {
	return ((a % b) + b) % b
}
