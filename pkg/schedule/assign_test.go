package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutMode(t *testing.T) {
	cases := []struct {
		name   string
		layout Layout
		want   Mode
	}{
		{"fewer resources than matches", Layout{Slots: 4, Resources: 1}, Sliding},
		{"exactly one batch", Layout{Slots: 4, Resources: 2}, Sliding},
		{"one batch with spare resources", Layout{Slots: 4, Resources: 3}, Sliding},
		{"two batches", Layout{Slots: 4, Resources: 4}, Batch},
		{"two batches with a bye", Layout{Slots: 4, Resources: 4, Padded: true}, Sliding},
		{"three batches", Layout{Slots: 6, Resources: 9}, Batch},
		{"one batch with a bye", Layout{Slots: 6, Resources: 3, Padded: true}, Sliding},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.layout.Mode())
		})
	}
}

func TestLayoutRounds(t *testing.T) {
	assert.Equal(t, 3, Layout{Slots: 4, Resources: 1}.Rounds())
	assert.Equal(t, 2, Layout{Slots: 2, Resources: 2}.Rounds())
	assert.Equal(t, 10, Layout{Slots: 4, Resources: 10}.Rounds())
	assert.Equal(t, 9, Layout{Slots: 10, Resources: 3}.Rounds())
	assert.Equal(t, 1, Layout{Slots: 0, Resources: 1}.BatchCount())
}

func TestParseMode(t *testing.T) {
	for _, mode := range []Mode{Auto, Sliding, Batch} {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}

	mode, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Auto, mode)

	mode, err = ParseMode(" Sliding ")
	require.NoError(t, err)
	assert.Equal(t, Sliding, mode)

	_, err = ParseMode("swiss")
	assert.Error(t, err)

	var text Mode
	require.NoError(t, text.UnmarshalText([]byte("batch")))
	assert.Equal(t, Batch, text)
	assert.Error(t, text.UnmarshalText([]byte("gauntlet")))
}

func TestNewAssigner(t *testing.T) {
	layout := Layout{Slots: 4, Resources: 4}

	assigner, err := NewAssigner(Auto, layout)
	require.NoError(t, err)
	assert.Equal(t, Batch, assigner.Mode())

	assigner, err = NewAssigner(Sliding, layout)
	require.NoError(t, err)
	assert.Equal(t, Sliding, assigner.Mode())

	_, err = NewAssigner(Mode(42), layout)
	assert.Error(t, err)
}

func matchesOf(names ...string) []Match {
	matches := make([]Match, 0, len(names)/2)
	for i := 0; i+1 < len(names); i += 2 {
		matches = append(matches, Match{
			Home: Team{Name: names[i], Index: i},
			Away: Team{Name: names[i+1], Index: i + 1},
		})
	}

	return matches
}

func cellStrings(cells []*Match) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		if cell == nil {
			out[i] = "-"
			continue
		}
		out[i] = cell.String()
	}

	return out
}

func TestSlidingAssigner(t *testing.T) {
	matches := matchesOf("A", "B", "C", "D", "E", "F")

	t.Run("scarce resources", func(t *testing.T) {
		sliding := &SlidingAssigner{Resources: 2}

		cells, rest := sliding.Assign(0, matches)
		assert.Equal(t, []string{"A vs B", "C vs D"}, cellStrings(cells))
		assert.Equal(t, []Match{matches[2]}, rest)

		cells, rest = sliding.Assign(1, matches)
		assert.Equal(t, []string{"E vs F", "A vs B"}, cellStrings(cells))
		assert.Equal(t, []Match{matches[1]}, rest)
	})

	t.Run("abundant resources", func(t *testing.T) {
		sliding := &SlidingAssigner{Resources: 5}

		cells, rest := sliding.Assign(0, matches)
		assert.Equal(t, []string{"A vs B", "C vs D", "E vs F", "-", "-"}, cellStrings(cells))
		assert.Empty(t, rest)

		cells, rest = sliding.Assign(2, matches)
		assert.Equal(t, []string{"-", "-", "A vs B", "C vs D", "E vs F"}, cellStrings(cells))
		assert.Empty(t, rest)

		cells, _ = sliding.Assign(4, matches)
		assert.Equal(t, []string{"C vs D", "E vs F", "-", "-", "A vs B"}, cellStrings(cells))
	})

	t.Run("no matches", func(t *testing.T) {
		sliding := &SlidingAssigner{Resources: 3}

		cells, rest := sliding.Assign(7, nil)
		assert.Equal(t, []string{"-", "-", "-"}, cellStrings(cells))
		assert.Empty(t, rest)
	})
}

func TestBatchAssigner(t *testing.T) {
	// 4 teams, 4 resources: two blocks of two, four rounds.
	batch := NewBatchAssigner(Layout{Slots: 4, Resources: 4})
	assert.Equal(t, &BatchAssigner{Resources: 4, BlockSize: 2, Batches: 2, RoundsPerBatch: 2}, batch)

	matches := matchesOf("A", "B", "C", "D")

	cells, rest := batch.Assign(0, matches)
	assert.Equal(t, []string{"A vs B", "C vs D", "-", "-"}, cellStrings(cells))
	assert.Empty(t, rest)

	cells, _ = batch.Assign(1, matches)
	assert.Equal(t, []string{"C vs D", "A vs B", "-", "-"}, cellStrings(cells))

	cells, _ = batch.Assign(2, matches)
	assert.Equal(t, []string{"-", "-", "A vs B", "C vs D"}, cellStrings(cells))

	// rounds past the last block stay on the last block
	cells, _ = batch.Assign(9, matches)
	assert.Equal(t, []string{"-", "-", "C vs D", "A vs B"}, cellStrings(cells))
}

func TestBatchAssignerWithoutMatches(t *testing.T) {
	batch := NewBatchAssigner(Layout{Slots: 4, Resources: 4})

	cells, rest := batch.Assign(3, nil)
	assert.Equal(t, []string{"-", "-", "-", "-"}, cellStrings(cells))
	assert.Empty(t, rest)
}

func TestBatchAssignerSmallerThanOneBatch(t *testing.T) {
	batch := NewBatchAssigner(Layout{Slots: 6, Resources: 2})
	assert.Equal(t, 1, batch.Batches)

	matches := matchesOf("A", "B", "C", "D", "E", "F")
	cells, rest := batch.Assign(1, matches)
	assert.Equal(t, []string{"C vs D", "E vs F"}, cellStrings(cells))
	assert.Equal(t, []Match{matches[0]}, rest)
}
