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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version of ateliers, set at build time with -ldflags.
var Version = "v0.1.0"

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "ateliers",
		Short: "Round-robin tournament scheduling across ateliers",
		Long: heredoc.Doc(`ateliers schedules round-robin tournaments where every match
			is played on one of a limited number of ateliers (stations).

			Every team meets every other team once. When there are more
			matches than ateliers per round, matches slide across the
			ateliers from round to round. When there are plenty of
			ateliers, they are split into batches and the matches rotate
			within them, so that every team visits as many as possible.

			The teams and ateliers are read from a tournament file, by
			default ~/.config/ateliers/tournament.yaml, and can be given
			or overridden with the --team and --atelier flags.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			} else if cmd.Flag("debug").Changed {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Ateliers's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().BoolP("debug", "d", false, "Show Debug Information")

	// tournament flags
	root.PersistentFlags().StringP("config", "c", "", "Tournament file to read")
	root.PersistentFlags().StringArrayP("team", "T", nil, "Team taking part, repeat for every team")
	root.PersistentFlags().StringArrayP("atelier", "a", nil, "Atelier to play on, repeat for every atelier")
	root.PersistentFlags().String("teams-file", "", "File listing the teams")
	root.PersistentFlags().String("ateliers-file", "", "File listing the ateliers")
	root.PersistentFlags().StringP("mode", "m", "", "Placement mode: auto, sliding or batch")

	root.SetVersionTemplate(Version + "\n")
	root.Version = Version

	// Register the various commands.
	root.AddCommand(Generate())
	root.AddCommand(Teams())
	root.AddCommand(Export())
	root.AddCommand(Serve())
	root.AddCommand(Lint())
	root.AddCommand(Init())

	return root
}
