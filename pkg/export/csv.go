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
	"encoding/csv"
	"io"

	"laptudirm.com/x/ateliers/pkg/schedule"
)

// ByteOrderMark is written before the CSV data so that spreadsheet
// software detects the file as UTF-8.
const ByteOrderMark = "\ufeff"

// Separator of the CSV fields. Semicolons are what spreadsheet software
// expects in locales using the comma as decimal separator.
const Separator = ';'

// WriteCSV writes the schedule's Table to w as CSV.
func WriteCSV(w io.Writer, s *schedule.Schedule) error {
	if _, err := io.WriteString(w, ByteOrderMark); err != nil {
		return err
	}

	table := NewTable(s)

	writer := csv.NewWriter(w)
	writer.Comma = Separator

	if err := writer.Write(table.Header); err != nil {
		return err
	}

	return writer.WriteAll(table.Rows)
}
