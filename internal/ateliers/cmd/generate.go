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
	"github.com/spf13/cobra"

	"laptudirm.com/x/ateliers/pkg/export"
	"laptudirm.com/x/ateliers/pkg/tournament"
)

func Generate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate and print the tournament's schedule",
		Long: heredoc.Doc(`generate builds the schedule of the tournament and prints it
			as a grid with one row per round and one column per atelier.
			The teams which do not play in a round are listed in the
			last column.

			With --json the rounds are printed as a list of records,
			one per round, keyed by the grid's column names.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			s, err := tournament.Generate(config)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(export.NewTable(s).Records())
			}

			if config.Name != "" {
				fmt.Fprintf(out, "\x1b[32m%s\x1b[0m\n", config.Name)
			}
			fmt.Fprintf(out, "%d teams, %d ateliers, %d rounds (%s)\n",
				len(s.Teams), len(s.Resources), len(s.Rounds), s.Mode)

			return export.WriteGrid(out, s)
		},
	}

	cmd.Flags().Bool("json", false, "Print the schedule as JSON records")
	return cmd
}
