package theory

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadModes reads user-defined interval patterns from YAML and returns a new
// table containing the built-in modes plus the custom entries, with custom
// entries winning on name collision. The built-in table is never modified.
//
// The expected document is a mapping of mode name to semitone steps:
//
//	overtone: [2, 2, 2, 1, 1, 2, 2]
//	messiaen third: [2, 1, 1, 2, 1, 1, 2, 1, 1]
//
// Every step must be a positive integer so that generated scales stay
// strictly ascending.
func LoadModes(r io.Reader) (ModeTable, error) {
	var custom map[string]Intervals
	if err := yaml.NewDecoder(r).Decode(&custom); err != nil {
		return nil, fmt.Errorf("decoding mode definitions: %w", err)
	}
	merged := make(ModeTable, len(builtinModes)+len(custom))
	for name, steps := range builtinModes {
		merged[name] = steps
	}
	for name, steps := range custom {
		if len(steps) == 0 {
			return nil, fmt.Errorf("mode %q: no interval steps", name)
		}
		for _, step := range steps {
			if step < 1 {
				return nil, fmt.Errorf("mode %q: interval steps must be positive, got %d", name, step)
			}
		}
		merged[name] = steps
	}
	return merged, nil
}
