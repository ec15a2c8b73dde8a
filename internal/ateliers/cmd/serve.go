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
	"errors"
	"io/fs"
	"os"
	"os/signal"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ateliers/internal/ateliers/web"
)

// AddrEnv names the environment variable holding the address to serve on.
const AddrEnv = "ATELIERS_ADDR"

// DefaultAddr is served on when neither --addr nor ATELIERS_ADDR is set.
const DefaultAddr = ":8000"

func Serve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schedule generator over HTTP",
		Long: heredoc.Doc(`serve runs an HTTP server generating schedules on request.
			Every endpoint takes a JSON body {"teams": [...], "ateliers": [...]}:

			  POST /api/generate      the schedule as a list of row records
			  POST /api/teams         the fixtures of every team
			  POST /api/export/csv    the schedule as a CSV file
			  POST /api/export/xlsx   a spreadsheet with a sheet per team

			Environment variables are read from a .env file in the current
			directory if one is present.`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			cfg := web.Config{Addr: os.Getenv(AddrEnv)}
			if cmd.Flag("addr").Changed || cfg.Addr == "" {
				cfg.Addr, _ = cmd.Flags().GetString("addr")
			}

			cfg.Rate, _ = cmd.Flags().GetFloat64("rate")
			cfg.Burst, _ = cmd.Flags().GetInt("burst")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			err := web.Start(ctx, cfg)
			logrus.Info("HTTP server stopped")
			return err
		},
	}

	cmd.Flags().String("addr", DefaultAddr, "Address to listen on")
	cmd.Flags().Float64("rate", 10, "Requests allowed per second, 0 for no limit")
	cmd.Flags().Int("burst", 20, "Requests allowed in a burst above the rate")
	return cmd
}
