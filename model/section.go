package model

// Section is one named unit of the composition. Rhythm durations are in
// beats and wrap modulo their length against the melody.
type Section struct {
	Chords   []string
	Melody   []string
	Bass     []string
	Velocity uint8
	Rhythm   []float64
}

type StructureEntry struct {
	Name string
	Bars int
}
