package theory

import (
	"fmt"
)

// scaleConfig holds the resolved options for one Scale call.
type scaleConfig struct {
	mode    string
	octaves int
	modes   ModeTable
}

// ScaleOption customizes scale generation.
type ScaleOption func(*scaleConfig)

// WithMode selects the mode or scale to generate. Defaults to "ionian".
func WithMode(name string) ScaleOption {
	return func(cfg *scaleConfig) {
		cfg.mode = name
	}
}

// WithOctaves sets how many times the mode's interval pattern is repeated.
// Defaults to 1.
func WithOctaves(n int) ScaleOption {
	return func(cfg *scaleConfig) {
		cfg.octaves = n
	}
}

// WithModeTable resolves the mode name against the given table instead of
// the built-in one. Useful together with LoadModes.
func WithModeTable(t ModeTable) ScaleOption {
	return func(cfg *scaleConfig) {
		cfg.modes = t
	}
}

// Scale returns the ordered notes of a scale beginning on start. The result
// always begins with start, contains len(pattern)*octaves + 1 notes, and is
// strictly ascending; the note closing each octave repetition doubles as the
// first note of the next.
//
// Example:
//
//	notes, err := theory.Scale(theory.MustNote("F#"), theory.WithMode("blues"))
func Scale(start Note, opts ...ScaleOption) ([]Note, error) {
	cfg := scaleConfig{mode: "ionian", octaves: 1, modes: builtinModes}
	for _, opt := range opts {
		opt(&cfg)
	}
	steps, err := cfg.modes.Lookup(cfg.mode)
	if err != nil {
		return nil, err
	}
	if cfg.octaves < 1 {
		return nil, fmt.Errorf("octave count must be positive, got %d", cfg.octaves)
	}
	notes := make([]Note, 0, len(steps)*cfg.octaves+1)
	notes = append(notes, start)
	cur := start
	for i := 0; i < cfg.octaves; i++ {
		for _, step := range steps {
			cur = cur.Add(step)
			notes = append(notes, cur)
		}
	}
	return notes, nil
}

// ScaleFrom is like Scale but parses the starting note from a compound name
// such as "D" or "F#4".
func ScaleFrom(start string, opts ...ScaleOption) ([]Note, error) {
	n, err := ParseNote(start)
	if err != nil {
		return nil, err
	}
	return Scale(n, opts...)
}
