package chord

import (
	"github.com/jsphweid/seedtrack/model"
)

// chord voicings for the D minor key
var chords = map[string]model.Notes{
	"Dm": {62, 65, 69},     // D F A
	"Bb": {70, 62, 65},     // Bb D F
	"F":  {65, 69, 60},     // F A C
	"C":  {60, 64, 67},     // C E G
	"Gm": {67, 70, 62},     // G Bb D
	"A7": {69, 61, 64, 67}, // A C# E G
}

// Lookup returns the voicing for a chord name. The caller decides what an
// unknown name means (the chord renderer skips the bar).
func Lookup(name string) (model.Notes, bool) {
	notes, ok := chords[name]
	return notes, ok
}
