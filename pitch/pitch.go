package pitch

import (
	"unicode"

	"github.com/jsphweid/seedtrack/constants"
)

// the twelve pitch classes around middle C; sharp and flat spellings
// collapse to the same code
var baseNotes = map[string]uint8{
	"C": 60, "C#": 61, "Db": 61, "D": 62, "D#": 63, "Eb": 63,
	"E": 64, "F": 65, "F#": 66, "Gb": 66, "G": 67, "G#": 68,
	"Ab": 68, "A": 69, "A#": 70, "Bb": 70, "B": 71,
}

// Resolve converts a note token like "F4" or "Bb1" to a MIDI note number.
// Resolution always succeeds: rests and anything unrecognized come back as
// middle C.
func Resolve(token string) uint8 {
	if token == "" || token == "rest" {
		return constants.DefaultPitch
	}

	if len(token) < 2 {
		if base, ok := baseNotes[token]; ok {
			return base
		}
		return constants.DefaultPitch
	}

	name := token
	octave := 4
	last := rune(token[len(token)-1])
	if unicode.IsDigit(last) {
		name = token[:len(token)-1]
		octave = int(last - '0')
	}

	base, ok := baseNotes[name]
	if !ok {
		base = constants.DefaultPitch
	}

	// octave 4 is the middle C area
	note := int(base) + (octave-4)*12

	if note < 0 {
		note = 0
	}
	if note > 127 {
		note = 127
	}
	return uint8(note)
}
