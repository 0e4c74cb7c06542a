package model

type Notes = []uint8

// Event is one note boundary on a stream. Delta is measured in ticks
// relative to the previous event on the same stream.
type Event struct {
	Channel  uint8
	Note     uint8
	Velocity uint8
	NoteOn   bool
	Delta    uint32
}

type Stream = []Event
