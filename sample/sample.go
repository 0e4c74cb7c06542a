package sample

import (
	"github.com/jsphweid/seedtrack/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const maxNoteEventsPerTrack = 32

// Create cuts a short preview out of a rendered file: per track, the first
// few note events at or after ticksOffset. Meta and program events are kept
// (with their deltas collapsed) so the excerpt still sounds right.
func Create(mf *smf.SMF, ticksOffset uint64) *smf.SMF {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			switch {
			case evt.Message.Is(midi.NoteOnMsg),
				evt.Message.Is(midi.NoteOffMsg):
				if absTicks >= ticksOffset {
					newTrack = append(newTrack, evt)
					numNoteOnOff += 1
					if numNoteOnOff >= maxNoteEventsPerTrack {
						newTrack.Close(0)
						break TrackEventLoop
					}
				}
			default:
				evt.Delta = util.Min(evt.Delta, 1)
				newTrack = append(newTrack, evt)
			}
		}

		res.Add(newTrack)
	}

	return res
}
