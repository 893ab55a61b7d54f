package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func midiNames(notes []Note) []string {
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.MIDI()
	}
	return names
}

func TestScaleIonianDefault(t *testing.T) {
	notes, err := ScaleFrom("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"D3", "E3", "F#3", "G3", "A3", "B3", "C#4", "D4"}, midiNames(notes))
}

func TestScaleStartingOctave(t *testing.T) {
	notes, err := ScaleFrom("D5")
	require.NoError(t, err)
	assert.Equal(t, []string{"D5", "E5", "F#5", "G5", "A5", "B5", "C#6", "D6"}, midiNames(notes))
}

func TestScaleBlues(t *testing.T) {
	notes, err := ScaleFrom("F#", WithMode("blues"))
	require.NoError(t, err)
	assert.Equal(t, []string{"F#3", "A3", "B3", "C4", "C#4", "E4", "F#4"}, midiNames(notes))

	notes, err = ScaleFrom("C", WithMode("blues"))
	require.NoError(t, err)
	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.Name()
	}
	assert.Equal(t, []string{"C", "D#", "F", "F#", "G", "A#", "C"}, names)
}

func TestScaleTwoOctaves(t *testing.T) {
	notes, err := ScaleFrom("D", WithOctaves(2))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"D3", "E3", "F#3", "G3", "A3", "B3", "C#4",
		"D4", "E4", "F#4", "G4", "A4", "B4", "C#5", "D5",
	}, midiNames(notes))

	notes, err = ScaleFrom("F#", WithMode("blues"), WithOctaves(2))
	require.NoError(t, err)
	assert.Len(t, notes, 13)
	for i := 1; i < len(notes); i++ {
		assert.True(t, notes[i-1].Less(notes[i]), "scale must ascend at index %d", i)
	}
	// the 7th note starts the second repetition, one octave up
	assert.Equal(t, notes[0].Add(12), notes[6])
	assert.Equal(t, "F#4", notes[6].MIDI())
}

func TestScaleMajorAlias(t *testing.T) {
	ionian, err := ScaleFrom("D")
	require.NoError(t, err)
	major, err := ScaleFrom("D", WithMode("major"))
	require.NoError(t, err)
	assert.Equal(t, ionian, major)
}

func TestScaleStartCoercion(t *testing.T) {
	fromNote, err := Scale(NewNote(4), WithMode("harmonic minor"))
	require.NoError(t, err)
	fromName, err := ScaleFrom("E", WithMode("harmonic minor"))
	require.NoError(t, err)
	assert.Equal(t, fromNote, fromName)
}

func TestScaleLength(t *testing.T) {
	for _, name := range Modes() {
		steps, err := ModeIntervals(name)
		require.NoError(t, err)
		for octaves := 1; octaves <= 3; octaves++ {
			notes, err := Scale(NewNote(0), WithMode(name), WithOctaves(octaves))
			require.NoError(t, err)
			assert.Len(t, notes, len(steps)*octaves+1, "mode %q octaves %d", name, octaves)
		}
	}
}

func TestScaleUnknownMode(t *testing.T) {
	_, err := ScaleFrom("C", WithMode("bogus-mode"))
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestScaleInvalidStart(t *testing.T) {
	_, err := ScaleFrom("H")
	assert.ErrorIs(t, err, ErrInvalidNoteName)
}

func TestScaleInvalidOctaves(t *testing.T) {
	_, err := ScaleFrom("C", WithOctaves(0))
	assert.Error(t, err)
	_, err = ScaleFrom("C", WithOctaves(-1))
	assert.Error(t, err)
}

func TestScaleModeNormalization(t *testing.T) {
	reference, err := ScaleFrom("C", WithMode("super locrian"))
	require.NoError(t, err)
	for _, spelling := range []string{"Super Locrian", "super-locrian", "SUPER_LOCRIAN", "  super   locrian "} {
		notes, err := ScaleFrom("C", WithMode(spelling))
		require.NoError(t, err, "spelling %q", spelling)
		assert.Equal(t, reference, notes, "spelling %q", spelling)
	}

	// hyphenated catalogue names match space-separated queries too
	_, err = ScaleFrom("C", WithMode("whole tone scale"))
	assert.NoError(t, err)
	_, err = ScaleFrom("C", WithMode("Half Diminished"))
	assert.NoError(t, err)
}
