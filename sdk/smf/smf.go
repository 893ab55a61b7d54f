// Package smf exports note sequences as standard MIDI files.
package smf

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/scales/sdk/theory"
	"gitlab.com/gomidi/midi/writer"
)

// Default resolution of the written files, in ticks per quarter note.
const defaultNoteTicks = 960

// config holds the resolved options for one Export call.
type config struct {
	channel  uint8
	velocity uint8
	ticks    uint32
}

// Option customizes SMF export.
type Option func(*config)

// WithChannel sets the MIDI channel (0-15) for the written notes. Defaults to 0.
func WithChannel(ch uint8) Option {
	return func(cfg *config) {
		cfg.channel = ch
	}
}

// WithVelocity sets the note velocity (0-127). Defaults to 96.
func WithVelocity(v uint8) Option {
	return func(cfg *config) {
		cfg.velocity = v
	}
}

// WithNoteTicks sets the duration of each note in ticks. At the default
// resolution 960 ticks is one quarter note.
func WithNoteTicks(ticks uint32) Option {
	return func(cfg *config) {
		cfg.ticks = ticks
	}
}

// Export writes the notes as a single-track standard MIDI file at path, one
// note after another with equal durations.
func Export(path string, notes []theory.Note, opts ...Option) error {
	if len(notes) == 0 {
		return errors.New("no notes to export")
	}
	cfg := config{velocity: 96, ticks: defaultNoteTicks}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.channel > 15 {
		return fmt.Errorf("MIDI channel must be in 0..15, got %d", cfg.channel)
	}

	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		wr.SetChannel(cfg.channel)
		for _, n := range notes {
			key := n.Number()
			if err := writer.NoteOn(wr, key, cfg.velocity); err != nil {
				return err
			}
			wr.SetDelta(cfg.ticks)
			if err := writer.NoteOff(wr, key); err != nil {
				return err
			}
		}
		// EndOfTrack reports ErrFinished for the file's last track, so its
		// return is not a failure here.
		writer.EndOfTrack(wr)
		return nil
	})
}
