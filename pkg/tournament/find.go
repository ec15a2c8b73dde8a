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
	"slices"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindTeams returns the names matching the given query, best match first.
// A name equal to the query, ignoring case, is the only match when present.
// Otherwise every name containing the query's characters in order matches.
func FindTeams(names []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	var exact []string
	for _, name := range names {
		if strings.EqualFold(name, query) && !slices.Contains(exact, name) {
			exact = append(exact, name)
		}
	}

	if len(exact) > 0 {
		return exact
	}

	ranks := fuzzy.RankFindFold(query, names)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return a.OriginalIndex - b.OriginalIndex
	})

	var found []string
	for _, rank := range ranks {
		if !slices.Contains(found, rank.Target) {
			found = append(found, rank.Target)
		}
	}

	return found
}
