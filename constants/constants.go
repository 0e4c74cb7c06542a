package constants

import "os"

const Tempo = 85

const KeyName = "D minor"

const TicksPerBeat = 480

const BeatsPerBar = 4

// middle C, the fallback pitch for anything we can't resolve
const DefaultPitch uint8 = 60

const (
	ChordChannel  uint8 = 0
	MelodyChannel uint8 = 1
	BassChannel   uint8 = 2
	LeadChannel   uint8 = 3
)

// General MIDI programs: steel guitar, voice oohs, electric bass,
// overdriven guitar
const (
	ChordProgram  uint8 = 25
	MelodyProgram uint8 = 53
	BassProgram   uint8 = 33
	LeadProgram   uint8 = 29
)

func GetOutputPath() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "alternative_rock_track.mid"
}
