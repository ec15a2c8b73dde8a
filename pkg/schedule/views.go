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

import "slices"

// Fixture is one entry in the schedule of a single team.
type Fixture struct {
	Round    int
	Resource Resource
	Opponent Team
}

// TeamView is the schedule as seen by a single team.
type TeamView struct {
	Team     Team
	Fixtures []Fixture // ordered by round
}

// Views projects the schedule onto each of its teams, in team input order.
// Every team gets a view, even if it never plays; the bye never does.
// Use TeamViews for only the teams which play.
func (schedule *Schedule) Views() []TeamView {
	views := make([]TeamView, len(schedule.Teams))
	for i, team := range schedule.Teams {
		views[i].Team = team
	}

	for _, round := range schedule.Rounds {
		for _, placement := range round.Placements {
			if placement.Idle() {
				continue
			}

			match := placement.Match
			views[match.Home.Index].Fixtures = append(views[match.Home.Index].Fixtures, Fixture{
				Round:    round.Number,
				Resource: placement.Resource,
				Opponent: match.Away,
			})
			views[match.Away.Index].Fixtures = append(views[match.Away.Index].Fixtures, Fixture{
				Round:    round.Number,
				Resource: placement.Resource,
				Opponent: match.Home,
			})
		}
	}

	return views
}

// TeamViews returns the fixtures of every team of the schedule keyed by the
// team's name. Teams sharing a name have their fixtures merged. A team which
// is never placed on a resource has no entry.
func TeamViews(schedule *Schedule) map[string][]Fixture {
	result := make(map[string][]Fixture, len(schedule.Teams))
	for _, view := range schedule.Views() {
		if len(view.Fixtures) == 0 {
			continue
		}

		result[view.Team.Name] = append(result[view.Team.Name], view.Fixtures...)
	}

	for name, fixtures := range result {
		slices.SortStableFunc(fixtures, func(a, b Fixture) int {
			return a.Round - b.Round
		})
		result[name] = fixtures
	}

	return result
}
