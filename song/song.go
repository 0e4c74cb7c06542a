package song

import (
	"sort"

	"github.com/jsphweid/seedtrack/model"
	"github.com/jsphweid/seedtrack/util"
)

// Structure is the composition timeline in (section, bars) order.
var Structure = []model.StructureEntry{
	{Name: "intro", Bars: 8},
	{Name: "verse1", Bars: 16},
	{Name: "pre_chorus1", Bars: 8},
	{Name: "chorus1", Bars: 16},
	{Name: "verse2", Bars: 16},
	{Name: "pre_chorus2", Bars: 8},
	{Name: "chorus2", Bars: 16},
	{Name: "bridge", Bars: 12},
	{Name: "final_chorus", Bars: 24},
	{Name: "outro", Bars: 8},
}

var sections = map[string]model.Section{
	"intro": {
		Chords:   util.Repeat([]string{"Dm", "Bb", "F", "C"}, 2),
		Melody:   util.Repeat([]string{"D4", "F4", "G4", "F4", "D4", "C4", "D4", "D4"}, 2),
		Bass:     util.Repeat([]string{"D2", "Bb1", "F1", "C2"}, 2),
		Velocity: 60,
		Rhythm:   []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 1.0, 1.0},
	},
	"verse1": {
		Chords: util.Repeat([]string{"Dm", "Bb", "F", "C", "Dm", "Bb", "F", "A7"}, 2),
		Melody: []string{
			"D4", "F4", "G4", "F4", "D4", "C4", "D4", "D4",
			"F4", "G4", "A4", "G4", "F4", "D4", "F4", "F4",
		},
		Bass:     util.Repeat([]string{"D2", "Bb1", "F1", "C2", "D2", "Bb1", "F1", "A1"}, 2),
		Velocity: 65,
		Rhythm:   []float64{1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 0.5, 2.0},
	},
	"pre_chorus1": {
		Chords: []string{"Bb", "C", "Dm", "Dm", "Bb", "C", "F", "A7"},
		Melody: []string{
			"Bb4", "A4", "G4", "F4", "G4", "A4", "Bb4", "C5",
			"D5", "C5", "Bb4", "A4", "G4", "F4", "G4", "A4",
		},
		Bass:     []string{"Bb1", "C2", "D2", "D2", "Bb1", "C2", "F1", "A1"},
		Velocity: 75,
		Rhythm:   []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 1.0, 1.0},
	},
	"chorus1": {
		Chords: util.Repeat([]string{"Dm", "Bb", "F", "C", "Gm", "Bb", "F", "A7"}, 2),
		Melody: []string{
			"D5", "F5", "G5", "F5", "D5", "C5", "D5", "D5",
			"Bb4", "C5", "D5", "F5", "G5", "A5", "F5", "D5",
		},
		Bass:     util.Repeat([]string{"D2", "Bb1", "F1", "C2", "G1", "Bb1", "F1", "A1"}, 2),
		Velocity: 100,
		Rhythm:   []float64{1.0, 1.0, 0.5, 0.5, 1.0, 1.0, 1.0, 1.0},
	},
	"verse2": {
		Chords: util.Repeat([]string{"Dm", "Bb", "F", "C", "Dm", "Bb", "F", "A7"}, 2),
		Melody: []string{
			"D4", "F4", "G4", "F4", "D4", "C4", "D4", "D4",
			"F4", "G4", "A4", "G4", "F4", "D4", "F4", "F4",
		},
		Bass:     util.Repeat([]string{"D2", "Bb1", "F1", "C2", "D2", "Bb1", "F1", "A1"}, 2),
		Velocity: 70,
		Rhythm:   []float64{1.0, 0.5, 0.5, 1.0, 1.0, 0.5, 0.5, 2.0},
	},
	"pre_chorus2": {
		Chords: []string{"Bb", "C", "Dm", "Dm", "Bb", "C", "F", "A7"},
		Melody: []string{
			"Bb4", "A4", "G4", "F4", "G4", "A4", "Bb4", "C5",
			"D5", "C5", "Bb4", "A4", "G4", "F4", "G4", "A4",
		},
		Bass:     []string{"Bb1", "C2", "D2", "D2", "Bb1", "C2", "F1", "A1"},
		Velocity: 85,
		Rhythm:   []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 1.0, 1.0},
	},
	"chorus2": {
		Chords: util.Repeat([]string{"Dm", "Bb", "F", "C", "Gm", "Bb", "F", "A7"}, 2),
		Melody: []string{
			"D5", "F5", "G5", "F5", "D5", "C5", "D5", "D5",
			"Bb4", "C5", "D5", "F5", "G5", "A5", "F5", "D5",
		},
		Bass:     util.Repeat([]string{"D2", "Bb1", "F1", "C2", "G1", "Bb1", "F1", "A1"}, 2),
		Velocity: 110,
		Rhythm:   []float64{1.0, 1.0, 0.5, 0.5, 1.0, 1.0, 1.0, 1.0},
	},
	"bridge": {
		Chords: []string{"Bb", "F", "C", "Dm", "Bb", "F", "A7", "A7", "Gm", "Bb", "C", "Dm"},
		Melody: []string{
			"F5", "G5", "A5", "Bb5", "A5", "G5", "F5", "F5",
			"A5", "G5", "F5", "D5", "F5", "G5", "A5", "Bb5",
		},
		Bass:     []string{"Bb1", "F1", "C2", "D2", "Bb1", "F1", "A1", "A1", "G1", "Bb1", "C2", "D2"},
		Velocity: 95,
		Rhythm:   []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 1.0, 1.0},
	},
	"final_chorus": {
		Chords: util.Repeat([]string{"Dm", "Bb", "F", "C", "Gm", "Bb", "F", "A7"}, 3),
		Melody: util.Repeat([]string{
			"D5", "F5", "G5", "F5", "D5", "C5", "D5", "D5",
			"Bb4", "C5", "D5", "F5", "G5", "A5", "F5", "D5",
		}, 3),
		Bass:     util.Repeat([]string{"D2", "Bb1", "F1", "C2", "G1", "Bb1", "F1", "A1"}, 3),
		Velocity: 127,
		Rhythm:   []float64{1.0, 1.0, 0.5, 0.5, 1.0, 1.0, 1.0, 1.0},
	},
	"outro": {
		Chords:   []string{"Dm", "Bb", "F", "C", "Dm", "Dm"},
		Melody:   []string{"D5", "F5", "G5", "F5", "D5", "D5"},
		Bass:     []string{"D2", "Bb1", "F1", "C2", "D2", "D2"},
		Velocity: 60,
		Rhythm:   []float64{2.0, 2.0, 2.0, 2.0, 4.0, 4.0},
	},
}

// lead guitar hook layered over the choruses
var LeadHook = []string{
	"A5", "F5", "D5", "F5", "G5", "A5", "Bb5", "A5",
	"F5", "D5", "C5", "D5", "F5", "G5", "F5", "D5",
}

var LeadRhythm = []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 1.0, 1.0}

const LeadVelocity uint8 = 100

// Get returns the data for a named section. Unknown names substitute the
// intro so a bad structure entry still renders something.
func Get(name string) model.Section {
	if sec, ok := sections[name]; ok {
		return sec
	}
	return sections["intro"]
}

// Names returns every defined section name, sorted.
func Names() []string {
	names := util.GetKeys(sections)
	sort.Strings(names)
	return names
}
