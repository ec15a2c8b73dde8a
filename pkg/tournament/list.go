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

package tournament

import (
	"os"
	"strings"

	"github.com/go-andiamo/splitter"
)

// listSplitter splits a line of names on commas. Names which contain a
// comma need to be enclosed in double quotes, e.g. "Red, White", Blue.
var listSplitter, _ = splitter.NewSplitter(',', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)

// ReadList reads a list of names from a text file. Every line holds one or
// more comma separated names. Blank lines and lines starting with '#' are
// skipped.
func ReadList(path string) ([]string, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(string(file), "\n") {
		line = strings.Trim(line, "\n\r\t ")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		split, err := SplitNames(line)
		if err != nil {
			return nil, err
		}

		names = append(names, split...)
	}

	return names, nil
}

// SplitNames splits a comma separated line of names, removing the quotes
// around names and empty entries.
func SplitNames(line string) ([]string, error) {
	parts, err := listSplitter.Split(line)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		part = strings.TrimSpace(strings.NewReplacer("\"", "", "“", "", "”", "").Replace(part))
		if part != "" {
			names = append(names, part)
		}
	}

	return names, nil
}
