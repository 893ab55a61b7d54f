package smf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/reader"

	"github.com/leandrodaf/scales/sdk/theory"
)

func TestExportRoundTrip(t *testing.T) {
	notes, err := theory.ScaleFrom("D")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "d-ionian.mid")
	require.NoError(t, Export(path, notes, WithChannel(3), WithVelocity(100)))

	var keys []uint8
	var channels []uint8
	rd := reader.New(reader.NoLogger(),
		reader.NoteOn(func(p *reader.Position, channel, key, velocity uint8) {
			keys = append(keys, key)
			channels = append(channels, channel)
			assert.Equal(t, uint8(100), velocity)
		}),
	)
	require.NoError(t, reader.ReadSMFFile(rd, path))

	want := make([]uint8, len(notes))
	for i, n := range notes {
		want[i] = n.Number()
	}
	assert.Equal(t, want, keys)
	for _, ch := range channels {
		assert.Equal(t, uint8(3), ch)
	}
}

func TestExportNoNotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.mid")
	assert.Error(t, Export(path, nil))
}

func TestExportBadChannel(t *testing.T) {
	notes, err := theory.ScaleFrom("C")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "bad.mid")
	assert.Error(t, Export(path, notes, WithChannel(16)))
}
