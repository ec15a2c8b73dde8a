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

package tournament

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/ateliers/pkg/schedule"
)

// Config describes a tournament: who plays, and where.
type Config struct {
	// Name of the tournament, used for naming exports.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Placement strategy, "auto" to decide from the team and atelier counts.
	Mode schedule.Mode `yaml:"mode,omitempty" json:"mode,omitempty"`

	// The teams participating in the tournament, in seeding order.
	Teams []string `yaml:"teams" json:"teams"`

	// The ateliers (stations) the matches are played on.
	Ateliers []string `yaml:"ateliers" json:"ateliers"`
}

// Load reads a tournament Config from the given YAML file.
func Load(path string) (Config, error) {
	var config Config

	file, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"teams":    len(config.Teams),
		"ateliers": len(config.Ateliers),
	}).Debug("Loaded tournament configuration")

	return config, nil
}

// Dump writes the Config to the given YAML file.
func (config Config) Dump(path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Clean returns a copy of the Config with surrounding whitespace trimmed
// from every name and blank names dropped.
func (config Config) Clean() Config {
	config.Name = strings.TrimSpace(config.Name)
	config.Teams = Clean(config.Teams)
	config.Ateliers = Clean(config.Ateliers)
	return config
}

// Clean trims every name in the list and drops the blank ones.
func Clean(names []string) []string {
	cleaned := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}

	return cleaned
}

// Generate cleans the Config and builds its schedule. Ambiguous team names
// are reported as warnings but do not stop the schedule from being built.
func Generate(config Config) (*schedule.Schedule, error) {
	config = config.Clean()

	for _, problem := range schedule.Lint(config.Teams) {
		logrus.Warn(problem)
	}

	s, err := schedule.Build(config.Ateliers, config.Teams, schedule.WithMode(config.Mode))
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tournament": config.Name,
		"mode":       s.Mode,
		"rounds":     len(s.Rounds),
	}).Debug("Generated schedule")

	return s, nil
}
