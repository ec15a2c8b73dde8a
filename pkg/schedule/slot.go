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

// ByeLabel is how the bye is shown when it has to be printed at all, such
// as in debug logs. It is never compared against team names.
const ByeLabel = "BYE"

// Team is one of the real participants of a tournament. Teams are identified
// by their name and ordered by their position in the input list.
type Team struct {
	Name  string
	Index int
}

func (team Team) String() string {
	return team.Name
}

// Resource is a named station on which matches are played. It is only a
// label for a column of the schedule and carries no state.
type Resource struct {
	Name  string
	Index int
}

func (resource Resource) String() string {
	return resource.Name
}

// Slot is a position in the round-robin rotation. It either holds a real
// Team or is the Bye, which pads an odd number of teams to an even count.
type Slot struct {
	team *Team
}

// Bye is the synthetic opponent of whichever team rests in a round.
var Bye = Slot{}

// RealTeam returns a Slot holding the given Team.
func RealTeam(team Team) Slot {
	return Slot{team: &team}
}

// IsBye reports whether the Slot is the Bye.
func (slot Slot) IsBye() bool {
	return slot.team == nil
}

// Team returns the Team held by the Slot. The boolean is false for the Bye.
func (slot Slot) Team() (Team, bool) {
	if slot.team == nil {
		return Team{}, false
	}

	return *slot.team, true
}

func (slot Slot) String() string {
	if slot.team == nil {
		return ByeLabel
	}

	return slot.team.Name
}

// slotsFor builds the rotation for the given teams, appending the Bye if
// the number of teams is odd. The boolean reports whether it was added.
func slotsFor(teams []Team) ([]Slot, bool) {
	slots := make([]Slot, 0, len(teams)+1)
	for _, team := range teams {
		slots = append(slots, RealTeam(team))
	}

	if len(slots)%2 != 0 {
		slots = append(slots, Bye)
		return slots, true
	}

	return slots, false
}
