package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksUpKnownChords(t *testing.T) {
	cases := map[string][]uint8{
		"Dm": {62, 65, 69},
		"Bb": {70, 62, 65},
		"F":  {65, 69, 60},
		"C":  {60, 64, 67},
		"Gm": {67, 70, 62},
		"A7": {69, 61, 64, 67},
	}

	for name, want := range cases {
		t.Run(fmt.Sprintf("lookup %v", name), func(t *testing.T) {
			got, ok := Lookup(name)
			assert := assert.New(t)
			assert.True(ok)
			assert.Equal(want, got)
		})
	}
}

func TestUnknownChordReportsMiss(t *testing.T) {
	notes, ok := Lookup("Em")
	assert := assert.New(t)
	assert.False(ok)
	assert.Empty(notes)
}

func TestVoicingsHaveThreeOrFourNotes(t *testing.T) {
	assert := assert.New(t)
	for name, notes := range chords {
		assert.GreaterOrEqual(len(notes), 3, "chord %v", name)
		assert.LessOrEqual(len(notes), 4, "chord %v", name)
	}
}
