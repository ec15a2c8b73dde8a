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
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ateliers/pkg/common"
)

func Init() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a tournament file",
		Long: heredoc.Doc(`init writes the tournament given by the flags to a file, so
			that it does not need to be given again. Without a file name,
			the default tournament file in the configuration directory
			is written, which is used when --config is not given.`),
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if name, _ := cmd.Flags().GetString("name"); name != "" {
				config.Name = name
			}

			path := filepath.Join(common.Directory, common.ConfigName)
			if len(args) > 0 {
				path = args[0]
			}

			if force, _ := cmd.Flags().GetBool("force"); !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("init: %s already exists, use --force to overwrite", path)
				}
			}

			if err := common.TryMkdir(filepath.Dir(path)); err != nil {
				return err
			}

			if err := config.Dump(path); err != nil {
				return err
			}

			logrus.Infof("Wrote the tournament to %s", path)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Name of the tournament")
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing file")
	return cmd
}
