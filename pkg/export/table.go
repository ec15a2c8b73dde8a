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

package export

import (
	"strconv"
	"strings"

	"laptudirm.com/x/ateliers/pkg/schedule"
)

const (
	RoundColumn   = "Round"
	RestingColumn = "Resting"

	// IdleCell marks a resource without a match in a round.
	IdleCell = "-"
)

// Table is the schedule laid out as a grid: one row per round, one column
// per resource, between the round number and the resting teams.
type Table struct {
	Header []string
	Rows   [][]string
}

// NewTable lays out the given schedule as a Table.
func NewTable(s *schedule.Schedule) Table {
	var table Table

	table.Header = make([]string, 0, len(s.Resources)+2)
	table.Header = append(table.Header, RoundColumn)
	for _, resource := range s.Resources {
		table.Header = append(table.Header, resource.Name)
	}
	table.Header = append(table.Header, RestingColumn)

	table.Rows = make([][]string, len(s.Rounds))
	for i, round := range s.Rounds {
		row := make([]string, 0, len(table.Header))
		row = append(row, strconv.Itoa(round.Number))

		for _, placement := range round.Placements {
			if placement.Idle() {
				row = append(row, IdleCell)
			} else {
				row = append(row, placement.Match.String())
			}
		}

		resting := make([]string, len(round.Resting))
		for j, team := range round.Resting {
			resting[j] = team.Name
		}
		row = append(row, strings.Join(resting, ", "))

		table.Rows[i] = row
	}

	return table
}

// Records returns the rows of the Table as records keyed by the header.
// A resource named like one of the fixed columns shadows that column.
func (table Table) Records() []map[string]string {
	records := make([]map[string]string, len(table.Rows))
	for i, row := range table.Rows {
		record := make(map[string]string, len(table.Header))
		for j, column := range table.Header {
			record[column] = row[j]
		}
		records[i] = record
	}

	return records
}

// Fixture is the serialized form of a schedule.Fixture.
type Fixture struct {
	Round    int    `json:"round"`
	Atelier  string `json:"atelier"`
	Opponent string `json:"opponent"`
}

// TeamView is the serialized form of a schedule.TeamView.
type TeamView struct {
	Team     string    `json:"team"`
	Fixtures []Fixture `json:"fixtures"`
}

// TeamViews converts the views of a schedule to their serialized form.
func TeamViews(views []schedule.TeamView) []TeamView {
	out := make([]TeamView, len(views))
	for i, view := range views {
		out[i] = TeamView{Team: view.Team.Name, Fixtures: make([]Fixture, len(view.Fixtures))}
		for j, fixture := range view.Fixtures {
			out[i].Fixtures[j] = Fixture{
				Round:    fixture.Round,
				Atelier:  fixture.Resource.Name,
				Opponent: fixture.Opponent.Name,
			}
		}
	}

	return out
}
