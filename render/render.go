package render

import (
	"github.com/jsphweid/seedtrack/chord"
	"github.com/jsphweid/seedtrack/constants"
	"github.com/jsphweid/seedtrack/model"
	"github.com/jsphweid/seedtrack/pitch"
	"github.com/jsphweid/seedtrack/util"
)

// chords and bass notes hold for a whole bar
const beatsPerChord = 4.0
const beatsPerBassNote = 4.0

// BeatsToTicks converts beats to MIDI ticks.
func BeatsToTicks(beats float64) uint32 {
	return uint32(beats * constants.TicksPerBeat)
}

// Chords renders a chord-name cycle over the given number of bars. Only the
// first note of a voicing carries a nonzero delta so the chord sounds
// simultaneously. Unknown chord names emit nothing and any pending offset
// carries to the next known chord. Returns the events and whatever offset
// was left unconsumed.
func Chords(names []string, bars int, channel uint8, velocity uint8, offset uint32) (model.Stream, uint32) {
	var events model.Stream
	current := offset

	for _, name := range util.Cycle(names, bars) {
		notes, ok := chord.Lookup(name)
		if !ok {
			continue
		}

		for _, note := range notes {
			events = append(events, model.Event{
				Channel:  channel,
				Note:     note,
				Velocity: velocity,
				NoteOn:   true,
				Delta:    current,
			})
			current = 0
		}

		hold := BeatsToTicks(beatsPerChord)
		for _, note := range notes {
			events = append(events, model.Event{
				Channel: channel,
				Note:    note,
				NoteOn:  false,
				Delta:   hold,
			})
			hold = 0
		}
	}

	return events, current
}

// Melody renders note tokens against a wrapping rhythm pattern. A "rest"
// advances the pending offset and emits nothing. The hold between a note's
// begin and end is itself the next delta, so the pending offset resets as
// soon as the begin is placed.
func Melody(tokens []string, rhythm []float64, channel uint8, velocity uint8, offset uint32) (model.Stream, uint32) {
	if len(rhythm) == 0 {
		return nil, offset
	}

	var events model.Stream
	current := offset

	for i, token := range tokens {
		duration := BeatsToTicks(rhythm[i%len(rhythm)])
		if token == "rest" {
			current += duration
			continue
		}

		note := pitch.Resolve(token)
		events = append(events, model.Event{
			Channel:  channel,
			Note:     note,
			Velocity: velocity,
			NoteOn:   true,
			Delta:    current,
		})
		events = append(events, model.Event{
			Channel: channel,
			Note:    note,
			NoteOn:  false,
			Delta:   duration,
		})
		current = 0
	}

	return events, current
}

// Bass is the melody shape with whole-bar notes and no rest handling: every
// token is treated as pitched.
func Bass(tokens []string, channel uint8, velocity uint8, offset uint32) (model.Stream, uint32) {
	var events model.Stream
	current := offset

	for _, token := range tokens {
		note := pitch.Resolve(token)
		events = append(events, model.Event{
			Channel:  channel,
			Note:     note,
			Velocity: velocity,
			NoteOn:   true,
			Delta:    current,
		})
		events = append(events, model.Event{
			Channel: channel,
			Note:    note,
			NoteOn:  false,
			Delta:   BeatsToTicks(beatsPerBassNote),
		})
		current = 0
	}

	return events, current
}
