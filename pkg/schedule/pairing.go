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

// Separator joins the two sides of an encounter when it is rendered as text.
const Separator = " vs "

// Pairing is an encounter between two Slots produced by the round-robin
// rotation for a single round. A Pairing with one Bye side is a rest turn
// for the real team on the other side.
type Pairing struct {
	Home, Away Slot
}

// IsBye reports whether either side of the Pairing is the Bye.
func (pairing Pairing) IsBye() bool {
	return pairing.Home.IsBye() || pairing.Away.IsBye()
}

// Match returns the Pairing as a Match between two real teams. The boolean
// is false if the Pairing is a bye.
func (pairing Pairing) Match() (Match, bool) {
	home, ok1 := pairing.Home.Team()
	away, ok2 := pairing.Away.Team()
	return Match{Home: home, Away: away}, ok1 && ok2
}

func (pairing Pairing) String() string {
	return pairing.Home.String() + Separator + pairing.Away.String()
}

// Match is a Pairing between two real teams.
type Match struct {
	Home, Away Team
}

// Opponent returns the team playing against the given one, and false if
// the given team is not part of the Match.
func (match Match) Opponent(team Team) (Team, bool) {
	switch team {
	case match.Home:
		return match.Away, true
	case match.Away:
		return match.Home, true
	default:
		return Team{}, false
	}
}

func (match Match) String() string {
	return match.Home.Name + Separator + match.Away.Name
}

// CycleLength returns the number of rounds after which the circle method
// starts repeating encounters for a rotation of n slots.
func CycleLength(n int) int {
	return n - 1
}

// Pairings returns the encounters of the given round (0-indexed) according
// to the circle method. The first slot stays fixed while the rest rotate
// left by one position every round, and the rotated list is folded in half
// to pair its i-th element with its (n-1-i)-th element.
//
// Encounters between two byes are dropped. Rounds past the first cycle of
// n-1 rounds repeat the cycle from its start.
func Pairings(slots []Slot, round int) []Pairing {
	n := len(slots)
	cycle := CycleLength(n)
	if cycle < 1 {
		return nil
	}

	step := round % cycle

	rotated := make([]Slot, 0, n)
	rotated = append(rotated, slots[0])
	rotated = append(rotated, slots[1+step:]...)
	rotated = append(rotated, slots[1:1+step]...)

	pairings := make([]Pairing, 0, n/2)
	for i := 0; i < n/2; i++ {
		home, away := rotated[i], rotated[n-1-i]
		if home.IsBye() && away.IsBye() {
			continue
		}

		pairings = append(pairings, Pairing{Home: home, Away: away})
	}

	return pairings
}
