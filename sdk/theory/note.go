// Package theory models notes, modes, and scale generation over the
// 12-tone equal-tempered system.
package theory

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidNoteName is returned when a note name cannot be parsed or does
// not refer to a known pitch class.
var ErrInvalidNoteName = errors.New("invalid note name")

const (
	semitonesPerOctave = 12
	// Middle C sits at semitone offset 0 and is written C3, matching the
	// octave numbering used by most MIDI software.
	referenceOctave = 3
	// MIDI key number of middle C.
	middleCKey = 60
)

// Compound note names look like "C", "F#", "Bb4" or "C-1".
var noteNameRegexp = regexp.MustCompile(`^([A-G])([#b]?)(-?\d*)$`)

// Pitch-class spellings per semitone within an octave.
var (
	sharpNames = [semitonesPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [semitonesPerOctave]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// pitchClasses maps every accepted spelling, including the degenerate ones
// (E#, Fb, B#, Cb), to its semitone index above C.
var pitchClasses = map[string]int{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"E#": 5, "F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11, "Cb": 11, "B#": 0,
}

// Note is a single pitch, identified by its semitone distance from middle C.
// The zero value is middle C. Notes are immutable values; arithmetic returns
// new Notes and never mutates the receiver, so they are safe to share and to
// compare with ==.
type Note struct {
	semitones int
}

// NewNote returns the Note at the given semitone offset from middle C. The
// offset may be negative or span multiple octaves.
func NewNote(semitones int) Note {
	return Note{semitones: semitones}
}

// ParseNote parses a compound note name such as "D", "F#4", "Eb" or "C-1".
// The pitch letter may be lowercase, accidentals may be written # / b or
// ♯ / ♭, and the octave suffix defaults to 3 when absent. Flat spellings are
// accepted on input even though Name always favours sharps.
func ParseNote(name string) (Note, error) {
	s := strings.TrimSpace(name)
	s = strings.NewReplacer("♯", "#", "♭", "b").Replace(s)
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty string", ErrInvalidNoteName)
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	m := noteNameRegexp.FindStringSubmatch(s)
	if m == nil {
		return Note{}, fmt.Errorf("%w: %q (expected forms like \"C#\" or \"C#4\")", ErrInvalidNoteName, name)
	}
	class, ok := pitchClasses[m[1]+m[2]]
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
	}
	octave := referenceOctave
	if m[3] != "" {
		n, err := strconv.Atoi(m[3])
		if err != nil {
			return Note{}, fmt.Errorf("%w: %q: bad octave", ErrInvalidNoteName, name)
		}
		octave = n
	}
	return Note{semitones: class + (octave-referenceOctave)*semitonesPerOctave}, nil
}

// MustNote is like ParseNote but panics on error. Intended for literals.
func MustNote(name string) Note {
	n, err := ParseNote(name)
	if err != nil {
		panic(err.Error())
	}
	return n
}

// Semitones returns the offset from middle C.
func (n Note) Semitones() int {
	return n.semitones
}

// Add returns the Note the given number of semitones above n. Negative steps
// move downwards.
func (n Note) Add(steps int) Note {
	return Note{semitones: n.semitones + steps}
}

// Sub returns the Note the given number of semitones below n.
func (n Note) Sub(steps int) Note {
	return n.Add(-steps)
}

// Name returns the pitch-class spelling, favouring sharps ("C#", never "Db").
func (n Note) Name() string {
	return sharpNames[pitchClass(n.semitones)]
}

// Enharmonic returns the flat spelling of the pitch class ("Db" for "C#").
func (n Note) Enharmonic() string {
	return flatNames[pitchClass(n.semitones)]
}

// Octave returns the MIDI-style octave number. Middle C is octave 3 and the
// boundary divides evenly below zero, so offset -1 is B2.
func (n Note) Octave() int {
	return floorDiv(n.semitones, semitonesPerOctave) + referenceOctave
}

// MIDI returns the name and octave as a single string, e.g. "F#4".
func (n Note) MIDI() string {
	return n.Name() + strconv.Itoa(n.Octave())
}

// String implements fmt.Stringer using the MIDI representation.
func (n Note) String() string {
	return n.MIDI()
}

// Less reports whether n is lower in pitch than other.
func (n Note) Less(other Note) bool {
	return n.semitones < other.semitones
}

// Number returns the MIDI key number, mapping middle C to 60 and clamping to
// the valid 0..127 range.
func (n Note) Number() uint8 {
	key := n.semitones + middleCKey
	if key < 0 {
		key = 0
	} else if key > 127 {
		key = 127
	}
	return uint8(key)
}

// modulo where the result is always in the range [0, 12)
func pitchClass(semitones int) int {
	c := semitones % semitonesPerOctave
	if c < 0 {
		c += semitonesPerOctave
	}
	return c
}

// integer division rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
