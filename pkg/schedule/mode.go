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

import (
	"fmt"
	"strings"
)

// Mode is the strategy used to place the matches of a round on resources.
type Mode int

const (
	// Auto asks Build to pick between Sliding and Batch from the number of
	// teams and resources. It is never the Mode of a built Schedule.
	Auto Mode = iota

	// Sliding treats the resources as a window sliding over the matches
	// of a round, so every resource is used whenever possible.
	Sliding

	// Batch splits the resources into contiguous blocks, one per batch of
	// simultaneous matches, each rotating its matches independently.
	Batch
)

// ParseMode parses the textual name of a Mode. The empty string is Auto.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto", "":
		return Auto, nil
	case "sliding":
		return Sliding, nil
	case "batch":
		return Batch, nil
	default:
		return Auto, fmt.Errorf("parse mode: invalid mode %s", name)
	}
}

func (mode Mode) String() string {
	switch mode {
	case Auto:
		return "auto"
	case Sliding:
		return "sliding"
	case Batch:
		return "batch"
	default:
		return fmt.Sprintf("mode(%d)", int(mode))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (mode Mode) MarshalText() ([]byte, error) {
	return []byte(mode.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (mode *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}

	*mode = parsed
	return nil
}

// Layout holds the cardinalities a schedule is built from. They are fixed
// for the whole schedule, which is what lets each round be computed on its
// own.
type Layout struct {
	Slots     int  // size of the rotation, including the bye
	Resources int  // number of resources
	Padded    bool // whether a bye was added to the rotation
}

// MatchesPerRound is the number of encounters in every round, and so the
// most matches that can ever be played simultaneously.
func (layout Layout) MatchesPerRound() int {
	return layout.Slots / 2
}

// BatchCount is the number of full sets of simultaneous matches which fit
// on the resources.
func (layout Layout) BatchCount() int {
	matches := layout.MatchesPerRound()
	if matches == 0 {
		return 1
	}

	return layout.Resources / matches
}

// Rounds is the number of rounds of the schedule: enough to complete one
// round-robin cycle and to let every match visit every resource.
func (layout Layout) Rounds() int {
	return max(CycleLength(layout.Slots), layout.MatchesPerRound(), layout.Resources)
}

// Mode decides which placement strategy suits the layout. Batch is only
// used if there is room for more than one batch and no bye was added,
// since a bye leaves a permanent hole in every batch.
func (layout Layout) Mode() Mode {
	batches := layout.BatchCount()
	if batches <= 1 || layout.Padded {
		return Sliding
	}

	return Batch
}
