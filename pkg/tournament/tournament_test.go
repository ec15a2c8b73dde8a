package tournament

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/ateliers/pkg/schedule"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.yaml")
	require.NoError(t, os.WriteFile(path, []byte(heredoc.Doc(`
		name: Spring cup
		mode: batch
		teams:
		  - Red
		  - Blue
		ateliers: [R1, R2]
	`)), 0644))

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, Config{
		Name:     "Spring cup",
		Mode:     schedule.Batch,
		Teams:    []string{"Red", "Blue"},
		Ateliers: []string{"R1", "R2"},
	}, config)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: swiss\n"), 0644))

	_, err = Load(path)
	assert.Error(t, err)
}

func TestDumpRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tournament.yaml")
	config := Config{Name: "Cup", Mode: schedule.Sliding, Teams: []string{"A", "B", "C"}, Ateliers: []string{"X"}}

	require.NoError(t, config.Dump(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestClean(t *testing.T) {
	config := Config{
		Name:     "  Cup ",
		Teams:    []string{" A", "", "B  ", "\t"},
		Ateliers: []string{"  ", "R1"},
	}.Clean()

	assert.Equal(t, "Cup", config.Name)
	assert.Equal(t, []string{"A", "B"}, config.Teams)
	assert.Equal(t, []string{"R1"}, config.Ateliers)

	assert.Empty(t, Clean(nil))
}

func TestGenerate(t *testing.T) {
	s, err := Generate(Config{Teams: []string{"A ", "B", "C", "D"}, Ateliers: []string{" R1"}})
	require.NoError(t, err)

	assert.Equal(t, "A", s.Teams[0].Name)
	assert.Equal(t, "R1", s.Resources[0].Name)
	assert.Len(t, s.Rounds, 3)

	_, err = Generate(Config{Teams: []string{"A", "B"}, Ateliers: []string{" ", ""}})
	assert.True(t, errors.Is(err, schedule.ErrInvalidInput))
}

func TestReadList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.txt")
	require.NoError(t, os.WriteFile(path, []byte("# teams\nRed\r\n\n  Blue \nGreen"), 0644))

	names, err := ReadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Blue", "Green"}, names)
}

func TestReadListQuoted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.txt")
	require.NoError(t, os.WriteFile(path, []byte("Red, Blue\n\"Black, White\", Green,\n"), 0644))

	names, err := ReadList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Blue", "Black, White", "Green"}, names)
}

func TestSplitNames(t *testing.T) {
	names, err := SplitNames(`  "Faze, Clan" , NaVi,, `)
	require.NoError(t, err)
	assert.Equal(t, []string{"Faze, Clan", "NaVi"}, names)
}

func TestFindTeams(t *testing.T) {
	teams := []string{"Equipe 1", "Equipe 10", "Atelier", "equipe 1"}

	assert.Equal(t, []string{"Equipe 1", "equipe 1"}, FindTeams(teams, "EQUIPE 1"))
	assert.Equal(t, []string{"Equipe 10"}, FindTeams(teams, "e10"))
	assert.Equal(t, []string{"Atelier"}, FindTeams(teams, "atl"))
	assert.Empty(t, FindTeams(teams, "zzz"))
	assert.Empty(t, FindTeams(teams, " "))
}
