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
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"laptudirm.com/x/ateliers/pkg/common"
	"laptudirm.com/x/ateliers/pkg/export"
	"laptudirm.com/x/ateliers/pkg/publish"
	"laptudirm.com/x/ateliers/pkg/schedule"
	"laptudirm.com/x/ateliers/pkg/tournament"
)

// SPIN is the spinner character set shown while exporting.
const SPIN = 14

// BucketEnv names the environment variable holding the default bucket to
// upload exports to.
const BucketEnv = "ATELIERS_S3_BUCKET"

// file is an exported file, ready to be written out.
type file struct {
	name        string
	contentType string
	data        []byte
}

func Export() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as CSV and as a spreadsheet",
		Long: heredoc.Doc(`export writes the schedule to the given directory as
			schedule.csv, the grid of rounds and ateliers, and as
			team_schedules.xlsx, a spreadsheet with one sheet per team.

			If an S3 bucket is given, with --s3-bucket or through the
			ATELIERS_S3_BUCKET environment variable, the files are also
			uploaded to it. AWS credentials are read from the environment
			and the shared configuration files.`),
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

			files, err := render(s)
			if err != nil {
				return err
			}

			spin := spinner.New(spinner.CharSets[SPIN], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
			defer spin.Stop()

			dir, _ := cmd.Flags().GetString("dir")
			if err := common.TryMkdir(dir); err != nil {
				return err
			}

			spin.Start()
			for _, f := range files {
				path := filepath.Join(dir, f.name)
				if err := os.WriteFile(path, f.data, 0644); err != nil {
					return err
				}

				logrus.WithField("path", path).Debug("Wrote export")
			}
			spin.Stop()
			logrus.Infof("Exported the schedule to %s", dir)

			bucketName, _ := cmd.Flags().GetString("s3-bucket")
			if bucketName == "" {
				bucketName = os.Getenv(BucketEnv)
			}

			if bucketName == "" {
				return nil
			}

			prefix, _ := cmd.Flags().GetString("s3-prefix")
			bucket := publish.New(cmd.Context(), bucketName, prefix)

			spin.Start()
			if err := bucket.Init(); err != nil {
				return err
			}

			for _, f := range files {
				if err := bucket.Put(f.name, f.contentType, f.data); err != nil {
					return err
				}
			}
			spin.Stop()

			logrus.Infof("Uploaded the schedule to %s", bucket.URI(""))
			return nil
		},
	}

	cmd.Flags().String("dir", ".", "Directory to write the files to")
	cmd.Flags().String("s3-bucket", "", "S3 bucket to upload the files to")
	cmd.Flags().String("s3-prefix", "", "Key prefix of the uploaded files")
	return cmd
}

// render renders the exported files of the given schedule.
func render(s *schedule.Schedule) ([]file, error) {
	var csv, workbook bytes.Buffer

	if err := export.WriteCSV(&csv, s); err != nil {
		return nil, err
	}

	if err := export.WriteWorkbook(&workbook, s.Views()); err != nil {
		return nil, err
	}

	return []file{
		{name: "schedule.csv", contentType: publish.ContentTypeCSV, data: csv.Bytes()},
		{name: "team_schedules.xlsx", contentType: publish.ContentTypeXLSX, data: workbook.Bytes()},
	}, nil
}
