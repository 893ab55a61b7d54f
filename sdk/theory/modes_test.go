package theory

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModesSorted(t *testing.T) {
	names := Modes()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "ionian")
	assert.Contains(t, names, "blues")
	assert.Contains(t, names, "major")
}

func TestModeIntervals(t *testing.T) {
	iv, err := ModeIntervals("ionian")
	require.NoError(t, err)
	assert.Equal(t, Intervals{2, 2, 1, 2, 2, 2, 1}, iv)

	iv, err = ModeIntervals("blues")
	require.NoError(t, err)
	assert.Equal(t, Intervals{3, 2, 1, 1, 3, 2}, iv)

	_, err = ModeIntervals("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestBuiltinStepsPositive(t *testing.T) {
	for name, steps := range builtinModes {
		require.NotEmpty(t, steps, "mode %q", name)
		for _, step := range steps {
			assert.Greater(t, step, 0, "mode %q", name)
		}
	}
}

func TestHeptatonicModesSpanOctave(t *testing.T) {
	// the seven classical modes cover exactly one octave
	for _, name := range []string{"ionian", "dorian", "phrygian", "lydian", "mixolydian", "aeolian", "locrian"} {
		steps, err := ModeIntervals(name)
		require.NoError(t, err)
		sum := 0
		for _, step := range steps {
			sum += step
		}
		assert.Equal(t, 12, sum, "mode %q", name)
	}
}

func TestLoadModes(t *testing.T) {
	doc := `
overtone: [2, 2, 2, 1, 1, 2, 2]
messiaen third: [2, 1, 1, 2, 1, 1, 2, 1, 1]
blues: [1, 1, 1]
`
	table, err := LoadModes(strings.NewReader(doc))
	require.NoError(t, err)

	iv, err := table.Lookup("overtone")
	require.NoError(t, err)
	assert.Equal(t, Intervals{2, 2, 2, 1, 1, 2, 2}, iv)

	// custom entries win on collision
	iv, err = table.Lookup("blues")
	require.NoError(t, err)
	assert.Equal(t, Intervals{1, 1, 1}, iv)

	// built-ins remain available and untouched
	iv, err = table.Lookup("ionian")
	require.NoError(t, err)
	assert.Equal(t, Intervals{2, 2, 1, 2, 2, 2, 1}, iv)
	iv, err = ModeIntervals("blues")
	require.NoError(t, err)
	assert.Equal(t, Intervals{3, 2, 1, 1, 3, 2}, iv)

	// and the merged table plugs into scale generation
	notes, err := Scale(NewNote(0), WithMode("Messiaen-Third"), WithModeTable(table))
	require.NoError(t, err)
	assert.Len(t, notes, 10)
}

func TestLoadModesRejectsBadSteps(t *testing.T) {
	_, err := LoadModes(strings.NewReader("descending: [2, -1, 2]"))
	assert.Error(t, err)

	_, err = LoadModes(strings.NewReader("empty: []"))
	assert.Error(t, err)

	_, err = LoadModes(strings.NewReader("not yaml at all: ["))
	assert.Error(t, err)
}
