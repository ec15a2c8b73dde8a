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
	"runtime"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Schedule is a complete round-robin schedule of teams over resources. It
// is built once by Build and never modified afterwards.
type Schedule struct {
	Teams     []Team
	Resources []Resource

	// Mode is the placement strategy which was used. Never Auto.
	Mode Mode

	// Padded reports whether a bye was added to even out the teams.
	Padded bool

	Rounds []Round
}

// Round is one round of a Schedule.
type Round struct {
	// Number is the 1-indexed ordinal of the Round.
	Number int

	// Placements has one entry per resource, in resource order.
	Placements []Placement

	// Resting lists the teams not playing this round, in natural order of
	// their names.
	Resting []Team
}

// Placement is the match played on a resource during a round.
type Placement struct {
	Resource Resource
	Match    *Match // nil if the resource is idle
}

// Idle reports whether no match is played on the resource.
func (placement Placement) Idle() bool {
	return placement.Match == nil
}

// Matches returns the matches played during the round in resource order.
func (round *Round) Matches() []Match {
	var matches []Match
	for _, placement := range round.Placements {
		if !placement.Idle() {
			matches = append(matches, *placement.Match)
		}
	}

	return matches
}

// Option configures Build.
type Option func(*options)

type options struct {
	mode        Mode
	concurrency int
}

// WithMode forces the placement strategy instead of deciding it from the
// number of teams and resources.
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithConcurrency limits the number of rounds computed at the same time.
// Values below 1 use GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// Build computes the schedule of the given teams over the given resources.
// Every team meets every other team once per cycle of rounds, using the
// circle method, and the matches of each round are placed on the resources
// by the strategy chosen for the whole schedule.
//
// Build is deterministic: the same inputs always yield the same Schedule.
// It fails with ErrInvalidInput if either list is empty or has an empty
// name.
func Build(resources, teams []string, opts ...Option) (*Schedule, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}

	if err := validate("team", teams); err != nil {
		return nil, err
	}

	if err := validate("resource", resources); err != nil {
		return nil, err
	}

	var schedule Schedule

	schedule.Teams = make([]Team, len(teams))
	for i, name := range teams {
		schedule.Teams[i] = Team{Name: name, Index: i}
	}

	schedule.Resources = make([]Resource, len(resources))
	for i, name := range resources {
		schedule.Resources[i] = Resource{Name: name, Index: i}
	}

	slots, padded := slotsFor(schedule.Teams)
	layout := Layout{
		Slots:     len(slots),
		Resources: len(resources),
		Padded:    padded,
	}

	assigner, err := NewAssigner(o.mode, layout)
	if err != nil {
		return nil, err
	}

	schedule.Mode = assigner.Mode()
	schedule.Padded = padded
	schedule.Rounds = make([]Round, layout.Rounds())

	logrus.WithFields(logrus.Fields{
		"teams":     len(teams),
		"resources": len(resources),
		"bye":       padded,
		"mode":      schedule.Mode,
		"rounds":    len(schedule.Rounds),
	}).Debug("Building schedule")

	// Rounds only depend on the round index and the shared, read-only
	// layout, so they are computed independently and stored in place.
	var g errgroup.Group
	g.SetLimit(o.concurrency)

	for i := range schedule.Rounds {
		i := i
		g.Go(func() error {
			schedule.Rounds[i] = buildRound(i, slots, schedule.Resources, assigner)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &schedule, nil
}

func buildRound(index int, slots []Slot, resources []Resource, assigner Assigner) Round {
	round := Round{Number: index + 1}

	var matches []Match
	for _, pairing := range Pairings(slots, index) {
		if match, ok := pairing.Match(); ok {
			matches = append(matches, match)
			continue
		}

		// Exactly one side is the bye, the other side rests.
		if team, ok := pairing.Home.Team(); ok {
			round.Resting = append(round.Resting, team)
		} else if team, ok := pairing.Away.Team(); ok {
			round.Resting = append(round.Resting, team)
		}
	}

	cells, unplaced := assigner.Assign(index, matches)

	round.Placements = make([]Placement, len(resources))
	for k, resource := range resources {
		round.Placements[k] = Placement{Resource: resource, Match: cells[k]}
	}

	for _, match := range unplaced {
		round.Resting = append(round.Resting, match.Home, match.Away)
	}

	slices.SortFunc(round.Resting, func(a, b Team) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}

		return a.Index - b.Index
	})

	logrus.WithFields(logrus.Fields{
		"round":    round.Number,
		"matches":  len(matches),
		"unplaced": len(unplaced),
		"resting":  len(round.Resting),
	}).Trace("Built round")

	return round
}
