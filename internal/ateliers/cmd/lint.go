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
	"fmt"

	"github.com/spf13/cobra"

	"laptudirm.com/x/ateliers/pkg/schedule"
)

func Lint() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Check the team names for ambiguities",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			problems := schedule.Lint(config.Teams)
			if len(problems) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "\x1b[32mNo problems found.\x1b[0m")
				return nil
			}

			for _, problem := range problems {
				fmt.Fprintf(cmd.OutOrStdout(), "- \x1b[33m%s\x1b[0m\n", problem)
			}

			return fmt.Errorf("lint: %d ambiguous team names: %w", len(problems), schedule.ErrAmbiguousName)
		},
	}
}
