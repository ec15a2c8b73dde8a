package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ateliers/pkg/schedule"
	"laptudirm.com/x/ateliers/pkg/tournament"
)

// writeTournament writes a tournament file for the tests to use, so that
// no tournament file of the user is picked up.
func writeTournament(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heredoc.Doc(content)), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	path := writeTournament(t, `
		name: Spring cup
		teams: [A, B, C, D]
		ateliers: [R1]
	`)

	out, err := run(t, "generate", "--config", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Spring cup")
	assert.Contains(t, out, "4 teams, 1 ateliers, 3 rounds (sliding)")
	assert.Contains(t, out, "║ 1     │ A vs D │ B, C    ║")
}

func TestGenerateCommandJSON(t *testing.T) {
	path := writeTournament(t, `
		teams: [A, B, C]
		ateliers: [R1]
	`)

	out, err := run(t, "generate", "--config", path, "--json")
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 3)
	assert.Equal(t, map[string]string{"Round": "1", "R1": "B vs C", "Resting": "A"}, records[0])
}

func TestGenerateCommandFlags(t *testing.T) {
	path := writeTournament(t, `
		teams: [A, B, C]
		ateliers: [R1]
	`)

	out, err := run(t, "generate", "--config", path, "--json",
		"-T", "X", "-T", "Y", "-a", "Hall", "-a", "Yard", "--mode", "sliding")
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "X vs Y", records[0]["Hall"])
	assert.Equal(t, "-", records[0]["Yard"])
	assert.Equal(t, "X vs Y", records[1]["Yard"])
}

func TestGenerateCommandListFiles(t *testing.T) {
	dir := t.TempDir()
	teams := filepath.Join(dir, "teams.txt")
	ateliers := filepath.Join(dir, "ateliers.txt")
	require.NoError(t, os.WriteFile(teams, []byte("# teams\nA, B\nC\n"), 0644))
	require.NoError(t, os.WriteFile(ateliers, []byte("R1\n"), 0644))

	path := writeTournament(t, `
		teams: [X, Y]
		ateliers: [Z]
	`)

	out, err := run(t, "generate", "--config", path, "--json",
		"--teams-file", teams, "--ateliers-file", ateliers)
	require.NoError(t, err)

	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	assert.Len(t, records, 3)
}

func TestGenerateCommandErrors(t *testing.T) {
	path := writeTournament(t, `
		teams: []
		ateliers: [R1]
	`)

	_, err := run(t, "generate", "--config", path)
	assert.ErrorIs(t, err, schedule.ErrInvalidInput)

	_, err = run(t, "generate", "--config", path, "-T", "A", "--mode", "zigzag")
	assert.Error(t, err)

	_, err = run(t, "generate", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTeamsCommand(t *testing.T) {
	path := writeTournament(t, `
		teams: [A, B, C, D]
		ateliers: [R1]
	`)

	out, err := run(t, "teams", "--config", path, "d")
	require.NoError(t, err)

	assert.Contains(t, out, "Round 1   R1              vs A")
	assert.Contains(t, out, "Round 2   R1              vs C")
	assert.NotContains(t, out, "vs D")

	_, err = run(t, "teams", "--config", path, "zzz")
	assert.Error(t, err)
}

func TestTeamsCommandJSON(t *testing.T) {
	path := writeTournament(t, `
		teams: [A, B, C, D]
		ateliers: [R1]
	`)

	out, err := run(t, "teams", "--config", path, "--json")
	require.NoError(t, err)

	var views []struct {
		Team     string `json:"team"`
		Fixtures []struct {
			Round int `json:"round"`
		} `json:"fixtures"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 4)
	assert.Equal(t, "B", views[1].Team)
	assert.Empty(t, views[1].Fixtures)
}

func TestLintCommand(t *testing.T) {
	path := writeTournament(t, `
		teams: [A, bye, "C vs D", A]
		ateliers: [R1]
	`)

	out, err := run(t, "lint", "--config", path)
	assert.ErrorIs(t, err, schedule.ErrAmbiguousName)
	assert.Equal(t, 3, strings.Count(out, "- "))

	out, err = run(t, "lint", "--config", path, "-T", "A", "-T", "B")
	require.NoError(t, err)
	assert.Contains(t, out, "No problems found.")
}

func TestExportCommand(t *testing.T) {
	t.Setenv(BucketEnv, "")

	path := writeTournament(t, `
		teams: [A, B, C]
		ateliers: [R1]
	`)

	dir := filepath.Join(t.TempDir(), "out")
	_, err := run(t, "export", "--config", path, "--dir", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "schedule.csv"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "\ufeffRound;R1;Resting\n"))

	assert.FileExists(t, filepath.Join(dir, "team_schedules.xlsx"))
}

func TestInitCommand(t *testing.T) {
	path := writeTournament(t, `
		teams: [A, B]
		ateliers: [R1]
	`)

	target := filepath.Join(t.TempDir(), "nested", "cup.yaml")
	_, err := run(t, "init", target, "--config", path, "--name", "Cup", "-T", "X", "-T", "Y")
	require.NoError(t, err)

	config, err := tournament.Load(target)
	require.NoError(t, err)
	assert.Equal(t, tournament.Config{
		Name:     "Cup",
		Teams:    []string{"X", "Y"},
		Ateliers: []string{"R1"},
	}, config)

	_, err = run(t, "init", target, "--config", path)
	assert.Error(t, err)

	_, err = run(t, "init", target, "--config", path, "--force")
	assert.NoError(t, err)
}
