package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/seedtrack/arrange"
	"github.com/jsphweid/seedtrack/constants"
	"github.com/jsphweid/seedtrack/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func makeTrack(channel uint8, program uint8, stream model.Stream, tempo float64) smf.Track {
	var track smf.Track
	if tempo > 0 {
		track.Add(0, smf.MetaTempo(tempo))
	}
	track.Add(0, midi.ProgramChange(channel, program))

	for _, e := range stream {
		if e.NoteOn {
			track.Add(e.Delta, midi.NoteOn(e.Channel, e.Note, e.Velocity))
		} else {
			track.Add(e.Delta, midi.NoteOff(e.Channel, e.Note))
		}
	}

	track.Close(0)
	return track
}

// BuildSMF lays the four streams out as parallel tracks: tempo meta on the
// first track, one program change per track at time zero.
func BuildSMF(a *arrange.Arrangement) *smf.SMF {
	res := smf.New()
	res.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)

	res.Add(makeTrack(constants.ChordChannel, constants.ChordProgram, a.Chords, constants.Tempo))
	res.Add(makeTrack(constants.MelodyChannel, constants.MelodyProgram, a.Melody, 0))
	res.Add(makeTrack(constants.BassChannel, constants.BassProgram, a.Bass, 0))
	res.Add(makeTrack(constants.LeadChannel, constants.LeadProgram, a.Lead, 0))

	return res
}

func WriteMidiFile(filepath string, s *smf.SMF) error {
	buf := new(bytes.Buffer)
	if _, err := s.WriteTo(buf); err != nil {
		errText := fmt.Sprintf("Error rendering midi file... %s", err.Error())
		return errors.New(errText)
	}

	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		errText := fmt.Sprintf("Error writing midi file... %s", err.Error())
		return errors.New(errText)
	}

	return nil
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}
