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

	"github.com/xuri/excelize/v2"

	"laptudirm.com/x/ateliers/pkg/schedule"
)

// MaxSheetName is the number of characters sheet names are cut down to.
// Excel refuses names longer than 31 characters.
const MaxSheetName = 30

var sheetHeader = []any{"Round", "Atelier", "Opponent"}

// WriteWorkbook writes a spreadsheet with one sheet per team, listing the
// team's fixtures, to w.
func WriteWorkbook(w io.Writer, views []schedule.TeamView) error {
	file := excelize.NewFile()
	defer file.Close()

	// A new file comes with a default sheet, reuse it for the first team.
	current := file.GetSheetName(0)

	for i, name := range SheetNames(views) {
		if i == 0 {
			if err := file.SetSheetName(current, name); err != nil {
				return fmt.Errorf("workbook: sheet %s: %w", name, err)
			}
		} else if _, err := file.NewSheet(name); err != nil {
			return fmt.Errorf("workbook: sheet %s: %w", name, err)
		}

		if err := file.SetSheetRow(name, "A1", &sheetHeader); err != nil {
			return err
		}

		for j, fixture := range views[i].Fixtures {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}

			row := []any{fixture.Round, fixture.Resource.Name, fixture.Opponent.Name}
			if err := file.SetSheetRow(name, cell, &row); err != nil {
				return err
			}
		}
	}

	_, err := file.WriteTo(w)
	return err
}

// SheetNames returns a valid and unique sheet name for every view. Names
// are stripped of the characters Excel forbids and cut to MaxSheetName.
func SheetNames(views []schedule.TeamView) []string {
	names := make([]string, len(views))
	taken := make(map[string]bool, len(views))

	for i, view := range views {
		base := sanitizeSheetName(view.Team.Name)
		if base == "" {
			base = fmt.Sprintf("Team %d", view.Team.Index+1)
		}

		name := base
		for n := 2; taken[strings.ToLower(name)]; n++ {
			suffix := fmt.Sprintf(" (%d)", n)
			name = truncate(base, MaxSheetName-len(suffix)) + suffix
		}

		taken[strings.ToLower(name)] = true
		names[i] = name
	}

	return names
}

var sheetNameReplacer = strings.NewReplacer(
	":", "", "/", "", "\\", "", "?", "", "*", "", "[", "", "]", "",
)

func sanitizeSheetName(name string) string {
	name = sheetNameReplacer.Replace(name)
	name = strings.Trim(name, "' ")
	return strings.TrimSpace(truncate(name, MaxSheetName))
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
