package theory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownMode is returned when a mode name is not present in the table
// being consulted.
var ErrUnknownMode = errors.New("unknown mode")

// Intervals is the ordered sequence of semitone steps between consecutive
// degrees of a scale within one repetition of its pattern.
type Intervals []int

// ModeTable maps mode names to their interval patterns. Tables are treated
// as read-only once built; the built-in table is never mutated, so it is safe
// for any number of concurrent readers.
type ModeTable map[string]Intervals

// Catalogue from https://en.wikipedia.org/wiki/List_of_musical_scales_and_modes,
// restricted to scales representable as semitone intervals. "major" is an
// alias for ionian.
var builtinModes = ModeTable{
	"acoustic":                 {2, 2, 2, 1, 2, 1, 2},
	"aeolian":                  {2, 1, 2, 2, 1, 2, 2},
	"algerian":                 {2, 1, 3, 1, 1, 3, 1, 2, 1, 2},
	"super locrian":            {1, 2, 1, 2, 2, 2, 2},
	"augmented":                {3, 1, 3, 1, 3, 1},
	"bebop dominant":           {2, 2, 1, 2, 2, 1, 1, 1},
	"blues":                    {3, 2, 1, 1, 3, 2},
	"chromatic":                {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	"dorian":                   {2, 1, 2, 2, 2, 1, 2},
	"double harmonic":          {1, 3, 1, 2, 1, 3, 1},
	"enigmatic":                {1, 3, 2, 2, 2, 1, 1},
	"flamenco":                 {1, 3, 1, 2, 1, 3, 1},
	"romani":                   {2, 1, 3, 1, 1, 2, 2},
	"half-diminished":          {2, 1, 2, 1, 2, 2, 2},
	"harmonic major":           {2, 2, 1, 2, 1, 3, 1},
	"harmonic minor":           {2, 1, 2, 2, 1, 3, 1},
	"hijaroshi":                {4, 2, 1, 4, 1},
	"hungarian minor":          {2, 1, 3, 1, 1, 3, 1},
	"hungarian major":          {3, 1, 2, 1, 2, 1, 2},
	"in":                       {1, 4, 2, 1, 4},
	"insen":                    {1, 4, 2, 3, 2},
	"ionian":                   {2, 2, 1, 2, 2, 2, 1},
	"iwato":                    {1, 4, 1, 4, 2},
	"locrian":                  {1, 2, 2, 1, 2, 2, 2},
	"lydian augmented":         {2, 2, 2, 2, 1, 2, 1},
	"lydian":                   {2, 2, 2, 1, 2, 2, 1},
	"locrian major":            {2, 2, 1, 1, 2, 2, 2},
	"major":                    {2, 2, 1, 2, 2, 2, 1},
	"pentatonic major":         {2, 2, 3, 2, 3},
	"melodic minor ascending":  {2, 1, 2, 2, 2, 2, 1},
	"melodic minor descending": {2, 1, 2, 2, 2, 2, 1},
	"pentatonic minor":         {3, 2, 2, 3, 2},
	"mixolydian":               {2, 2, 1, 2, 2, 1, 2},
	"neapolitan major":         {1, 2, 2, 2, 2, 2, 1},
	"neapolitan minor":         {1, 2, 2, 2, 1, 3, 1},
	"octatonic c-d":            {2, 1, 2, 1, 2, 1, 2, 1},
	"octatonic c-c#":           {1, 2, 1, 2, 1, 2, 1},
	"persian":                  {1, 3, 1, 1, 2, 3, 1},
	"phrygian dominant":        {1, 3, 1, 2, 1, 2, 2},
	"phrygian":                 {1, 2, 2, 2, 1, 2, 2},
	"prometheus":               {2, 2, 2, 3, 1, 2},
	"harmonics":                {3, 1, 1, 2, 2, 3},
	"tritone":                  {1, 3, 2, 1, 3, 2},
	"two-semitone tritone":     {1, 1, 4, 1, 1, 4},
	"ukranian dorian":          {2, 1, 3, 1, 2, 1, 2},
	"whole-tone scale":         {2, 2, 2, 2, 2, 2},
	"yo":                       {3, 2, 2, 3, 2},
}

// Modes returns the names of the built-in modes in sorted order.
func Modes() []string {
	return builtinModes.Names()
}

// ModeIntervals looks up a built-in mode by name. The match is
// case-insensitive and tolerant of hyphen/whitespace variations.
func ModeIntervals(name string) (Intervals, error) {
	return builtinModes.Lookup(name)
}

// Names returns the table's mode names in sorted order.
func (t ModeTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds the interval pattern for a mode name. Names are normalized
// before matching, so "Super-Locrian" and "super locrian" refer to the same
// entry. Returns an error wrapping ErrUnknownMode when no entry matches.
func (t ModeTable) Lookup(name string) (Intervals, error) {
	if iv, ok := t[name]; ok {
		return iv, nil
	}
	want := normalizeMode(name)
	for k, iv := range t {
		if normalizeMode(k) == want {
			return iv, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// normalizeMode lowercases a mode name, maps hyphens and underscores to
// spaces, and collapses whitespace runs, so that the spellings used in the
// catalogue ("half-diminished", "super locrian") match user input loosely.
func normalizeMode(name string) string {
	mapped := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, strings.ToLower(name))
	return strings.Join(strings.Fields(mapped), " ")
}
