package arrange

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/seedtrack/constants"
	"github.com/jsphweid/seedtrack/model"
	"github.com/jsphweid/seedtrack/render"
	"github.com/jsphweid/seedtrack/song"
	"github.com/jsphweid/seedtrack/util"
)

// Arrangement holds the four rendered streams, in track order.
type Arrangement struct {
	Chords model.Stream
	Melody model.Stream
	Bass   model.Stream
	Lead   model.Stream

	RenderId string
}

// Build walks the structure timeline, renders every section onto the three
// main streams and lays the lead hook over the first chorus.
func Build() *Arrangement {
	var a Arrangement
	a.RenderId = uuid.New().String()

	var chordOffset, melodyOffset, bassOffset uint32
	for _, entry := range song.Structure {
		sec := song.Get(entry.Name)

		var events model.Stream
		events, chordOffset = render.Chords(sec.Chords, entry.Bars,
			constants.ChordChannel, sec.Velocity, chordOffset)
		a.Chords = append(a.Chords, events...)

		events, melodyOffset = render.Melody(sec.Melody, sec.Rhythm,
			constants.MelodyChannel, util.Min(sec.Velocity+10, 127), melodyOffset)
		a.Melody = append(a.Melody, events...)

		events, bassOffset = render.Bass(sec.Bass,
			constants.BassChannel, util.Max(sec.Velocity-15, 50), bassOffset)
		a.Bass = append(a.Bass, events...)
	}

	a.Lead, _ = render.Melody(song.LeadHook, song.LeadRhythm,
		constants.LeadChannel, song.LeadVelocity, LeadStartTicks())
	return &a
}

// LeadStartTicks is the absolute tick of the first chorus, computed from the
// structure table. The song was first sketched with a hand-waved 32-beat
// constant here, which put the hook in the middle of verse1.
func LeadStartTicks() uint32 {
	var beats float64
	for _, entry := range song.Structure {
		if strings.HasPrefix(entry.Name, "chorus") {
			break
		}
		beats += float64(entry.Bars * constants.BeatsPerBar)
	}
	return render.BeatsToTicks(beats)
}

// Summarize reports build-level stats for the CLI printout and the dev
// server.
func Summarize(a *Arrangement) model.TrackSummary {
	streams := []model.Stream{a.Chords, a.Melody, a.Bass, a.Lead}

	var numEvents int
	var total uint64
	for _, s := range streams {
		numEvents += len(s)
		deltas := make([]uint32, 0, len(s))
		for _, e := range s {
			deltas = append(deltas, e.Delta)
		}
		if ticks := util.Sum(deltas); ticks > total {
			total = ticks
		}
	}

	return model.TrackSummary{
		RenderId:    a.RenderId,
		Tempo:       constants.Tempo,
		Key:         constants.KeyName,
		NumSections: len(song.Structure),
		NumEvents:   numEvents,
		TotalTicks:  total,
	}
}
