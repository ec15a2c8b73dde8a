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

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ateliers/pkg/export"
	"laptudirm.com/x/ateliers/pkg/schedule"
	"laptudirm.com/x/ateliers/pkg/tournament"
)

func Teams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams [team...]",
		Short: "Print the fixtures of every team",
		Long: heredoc.Doc(`teams prints, for every team, the rounds it plays in, the
			atelier of the match and its opponent.

			Teams can be picked by name. Names are matched ignoring case,
			and partially if there is no exact match, so "eq10" finds
			"Equipe 10".`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, err := tournament.Generate(config)
			if err != nil {
				return err
			}

			views := s.Views()
			if len(args) > 0 {
				views = pickViews(views, args)
				if len(views) == 0 {
					return fmt.Errorf("teams: no team matches %q", args)
				}
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(export.TeamViews(views))
			}

			return export.WriteFixtures(out, views)
		},
	}

	cmd.Flags().Bool("json", false, "Print the fixtures as JSON")
	return cmd
}

// pickViews returns the views of the teams matching any of the queries,
// in team order.
func pickViews(views []schedule.TeamView, queries []string) []schedule.TeamView {
	names := make([]string, len(views))
	for i, view := range views {
		names[i] = view.Team.Name
	}

	picked := make(map[string]bool)
	for _, query := range queries {
		found := tournament.FindTeams(names, query)
		if len(found) == 0 {
			logrus.Warnf("No team matches %q", query)
		}

		for _, name := range found {
			picked[name] = true
		}
	}

	var out []schedule.TeamView
	for _, view := range views {
		if picked[view.Team.Name] {
			out = append(out, view)
		}
	}

	return out
}
