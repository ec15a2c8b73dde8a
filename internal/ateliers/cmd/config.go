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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ateliers/pkg/common"
	"laptudirm.com/x/ateliers/pkg/schedule"
	"laptudirm.com/x/ateliers/pkg/tournament"
)

// loadConfig builds the tournament configuration for cmd. The tournament
// file is read first, then the list files and finally the --team and
// --atelier flags, each replacing the lists given before it.
func loadConfig(cmd *cobra.Command) (tournament.Config, error) {
	var config tournament.Config

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = common.ConfigFile()
	}

	if path != "" {
		var err error
		if config, err = tournament.Load(path); err != nil {
			return config, err
		}
	}

	if file, _ := cmd.Flags().GetString("teams-file"); file != "" {
		teams, err := tournament.ReadList(file)
		if err != nil {
			return config, err
		}
		config.Teams = teams
	}

	if file, _ := cmd.Flags().GetString("ateliers-file"); file != "" {
		ateliers, err := tournament.ReadList(file)
		if err != nil {
			return config, err
		}
		config.Ateliers = ateliers
	}

	if cmd.Flag("team").Changed {
		config.Teams, _ = cmd.Flags().GetStringArray("team")
	}

	if cmd.Flag("atelier").Changed {
		config.Ateliers, _ = cmd.Flags().GetStringArray("atelier")
	}

	if cmd.Flag("mode").Changed {
		name, _ := cmd.Flags().GetString("mode")
		mode, err := schedule.ParseMode(name)
		if err != nil {
			return config, err
		}
		config.Mode = mode
	}

	config = config.Clean()
	logrus.WithFields(logrus.Fields{
		"file":     path,
		"teams":    len(config.Teams),
		"ateliers": len(config.Ateliers),
		"mode":     config.Mode,
	}).Debug("Loaded tournament")

	return config, nil
}
