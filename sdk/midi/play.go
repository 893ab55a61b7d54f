package midi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leandrodaf/scales/sdk/contracts"
	"github.com/leandrodaf/scales/sdk/theory"
)

// playConfig holds the resolved options for one Play call.
type playConfig struct {
	channel  uint8
	velocity uint8
	bpm      int
}

// PlayOption customizes scale playback.
type PlayOption func(*playConfig)

// WithChannel sets the MIDI channel (0-15) for playback. Defaults to 0.
func WithChannel(ch uint8) PlayOption {
	return func(cfg *playConfig) {
		cfg.channel = ch
	}
}

// WithVelocity sets the note velocity (0-127). Defaults to 96.
func WithVelocity(v uint8) PlayOption {
	return func(cfg *playConfig) {
		cfg.velocity = v
	}
}

// WithTempo sets the playback tempo in beats per minute. Defaults to 120.
func WithTempo(bpm int) PlayOption {
	return func(cfg *playConfig) {
		cfg.bpm = bpm
	}
}

// Play sends the notes to the client in order, one quarter note each at the
// configured tempo. Playback stops early if the context is cancelled; in
// that case a best-effort Note Off is sent for the sounding note before the
// context error is returned.
func Play(ctx context.Context, client contracts.ClientMIDI, notes []theory.Note, opts ...PlayOption) error {
	cfg := playConfig{velocity: 96, bpm: 120}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.channel > 15 {
		return fmt.Errorf("MIDI channel must be in 0..15, got %d", cfg.channel)
	}
	if cfg.bpm < 1 {
		return fmt.Errorf("tempo must be positive, got %d", cfg.bpm)
	}
	if client == nil {
		return errors.New("nil MIDI client")
	}

	beat := time.Minute / time.Duration(cfg.bpm)
	for _, n := range notes {
		key := n.Number()
		on := contracts.MIDI{
			Timestamp: uint64(time.Now().UTC().UnixNano()),
			Command:   byte(contracts.NoteOn) | cfg.channel,
			Note:      key,
			Velocity:  cfg.velocity,
		}
		if err := client.Send(on); err != nil {
			return fmt.Errorf("note on %s: %w", n, err)
		}

		timer := time.NewTimer(beat)
		select {
		case <-ctx.Done():
			timer.Stop()
			client.Send(noteOff(key, cfg.channel)) // best effort before bailing
			return ctx.Err()
		case <-timer.C:
		}

		if err := client.Send(noteOff(key, cfg.channel)); err != nil {
			return fmt.Errorf("note off %s: %w", n, err)
		}
	}
	return nil
}

func noteOff(key, channel uint8) contracts.MIDI {
	return contracts.MIDI{
		Timestamp: uint64(time.Now().UTC().UnixNano()),
		Command:   byte(contracts.NoteOff) | channel,
		Note:      key,
	}
}
