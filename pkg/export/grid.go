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
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"laptudirm.com/x/ateliers/pkg/schedule"
)

// WriteGrid writes the schedule to w as a boxed grid for terminals.
func WriteGrid(w io.Writer, s *schedule.Schedule) error {
	table := NewTable(s)

	widths := make([]int, len(table.Header))
	for i, column := range table.Header {
		widths[i] = utf8.RuneCountInString(column)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	line := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		return "║ " + strings.Join(padded, " │ ") + " ║\n"
	}

	inner := len(widths)*3 - 1
	for _, width := range widths {
		inner += width
	}
	bar := strings.Repeat("═", inner)

	var sb strings.Builder
	sb.WriteString("╔" + bar + "╗\n")
	sb.WriteString(line(table.Header))
	sb.WriteString("╠" + bar + "╣\n")
	for _, row := range table.Rows {
		sb.WriteString(line(row))
	}
	sb.WriteString("╚" + bar + "╝\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteFixtures writes the fixtures of every given team to w.
func WriteFixtures(w io.Writer, views []schedule.TeamView) error {
	var sb strings.Builder
	for i, view := range views {
		if i > 0 {
			sb.WriteString("\n")
		}

		fmt.Fprintf(&sb, "\x1b[34m%s\x1b[0m:\n", view.Team.Name)
		if len(view.Fixtures) == 0 {
			sb.WriteString("  no matches\n")
			continue
		}

		for _, fixture := range view.Fixtures {
			fmt.Fprintf(&sb, "  Round %-3d %-15s vs %s\n", fixture.Round, fixture.Resource.Name, fixture.Opponent.Name)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
