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

package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const FilePermissions = 0755

// AppName is the name of the directories ateliers keeps its files in.
const AppName = "ateliers"

// ConfigName is the name of the default tournament file.
const ConfigName = "tournament.yaml"

// Directory is where ateliers looks for its default tournament file.
var Directory = filepath.Join(xdg.ConfigHome, AppName)

// ConfigFile searches the XDG configuration directories for the default
// tournament file and returns its path, or the empty string if none of
// them has one.
func ConfigFile() string {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, ConfigName))
	if err != nil {
		return ""
	}

	return path
}

// TryMkdir creates the given directory, along with any missing parents, if
// it does not exist yet.
func TryMkdir(dir string) error {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return os.MkdirAll(dir, FilePermissions)
	}

	return nil
}
