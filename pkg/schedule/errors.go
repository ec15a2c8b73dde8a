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
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned by Build when the team or resource list is
// structurally unusable: empty, or containing an empty name.
var ErrInvalidInput = errors.New("schedule: invalid input")

// ErrAmbiguousName is wrapped by every NameError reported by Lint.
var ErrAmbiguousName = errors.New("schedule: ambiguous team name")

// NameError describes a team name which makes the textual rendering of a
// schedule ambiguous. It is advisory: Build works on structured values
// and is not affected by it.
type NameError struct {
	Name   string
	Index  int
	Reason string
}

func (err *NameError) Error() string {
	return fmt.Sprintf("team #%d %q: %s", err.Index+1, err.Name, err.Reason)
}

func (err *NameError) Unwrap() error {
	return ErrAmbiguousName
}

// Lint checks the given team names for collisions with the rendering of a
// schedule: a name which reads like the bye, a name containing the match
// separator, or a name used by more than one team.
func Lint(teams []string) []*NameError {
	var problems []*NameError
	seen := make(map[string]int, len(teams))

	for i, name := range teams {
		if strings.EqualFold(strings.TrimSpace(name), ByeLabel) {
			problems = append(problems, &NameError{
				Name: name, Index: i,
				Reason: "looks like the bye placeholder",
			})
		}

		if strings.Contains(name, Separator) {
			problems = append(problems, &NameError{
				Name: name, Index: i,
				Reason: fmt.Sprintf("contains the match separator %q", Separator),
			})
		}

		if first, found := seen[name]; found {
			problems = append(problems, &NameError{
				Name: name, Index: i,
				Reason: fmt.Sprintf("duplicates the name of team #%d", first+1),
			})
			continue
		}

		seen[name] = i
	}

	return problems
}

func validate(kind string, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: no %ss given", ErrInvalidInput, kind)
	}

	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: %s #%d has an empty name", ErrInvalidInput, kind, i+1)
		}
	}

	return nil
}
