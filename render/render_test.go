package render

import (
	"testing"

	"github.com/jsphweid/seedtrack/model"
	"github.com/jsphweid/seedtrack/song"
	"github.com/stretchr/testify/assert"
)

func deltaSum(s model.Stream) uint64 {
	var total uint64
	for _, e := range s {
		total += uint64(e.Delta)
	}
	return total
}

func countOns(s model.Stream) (ons int, offs int) {
	for _, e := range s {
		if e.NoteOn {
			ons++
		} else {
			offs++
		}
	}
	return
}

func TestChordsEmitsOneChordPerBar(t *testing.T) {
	events, next := Chords([]string{"Dm", "Bb"}, 5, 0, 80, 0)

	// cycle is Dm Bb Dm Bb Dm, three notes each
	ons, offs := countOns(events)
	assert := assert.New(t)
	assert.Equal(15, ons)
	assert.Equal(15, offs)
	assert.Equal(uint32(0), next)
}

func TestChordsHoldForAWholeBar(t *testing.T) {
	events, _ := Chords([]string{"A7"}, 1, 0, 80, 0)

	assert := assert.New(t)
	assert.Equal(8, len(events))
	// only the first note of the voicing carries a delta, on either side
	assert.Equal(uint32(0), events[0].Delta)
	assert.Equal(uint32(0), events[1].Delta)
	assert.Equal(uint32(0), events[2].Delta)
	assert.Equal(uint32(0), events[3].Delta)
	assert.Equal(uint32(1920), events[4].Delta)
	assert.Equal(uint32(0), events[5].Delta)
	assert.Equal(uint64(1920), deltaSum(events))
}

func TestChordsSkipUnknownNames(t *testing.T) {
	events, next := Chords([]string{"Xx"}, 4, 0, 80, 960)

	assert := assert.New(t)
	assert.Empty(events)
	// pending offset survives when nothing consumed it
	assert.Equal(uint32(960), next)
}

func TestChordsCarryOffsetPastUnknownNames(t *testing.T) {
	events, _ := Chords([]string{"Xx", "Dm"}, 2, 0, 80, 960)

	assert := assert.New(t)
	assert.Equal(6, len(events))
	assert.Equal(uint32(960), events[0].Delta)
}

func TestMelodyRestAdvancesTime(t *testing.T) {
	events, next := Melody([]string{"D4", "rest", "F4"}, []float64{1.0}, 1, 90, 0)

	assert := assert.New(t)
	assert.Equal(4, len(events))
	// the rest beat lands on the following note's begin delta
	assert.Equal(uint32(480), events[2].Delta)
	assert.Equal(uint64(3*480), deltaSum(events))
	assert.Equal(uint32(0), next)
}

func TestMelodyReturnsTrailingRestOffset(t *testing.T) {
	events, next := Melody([]string{"D4", "rest"}, []float64{1.0, 2.0}, 1, 90, 0)

	assert := assert.New(t)
	assert.Equal(2, len(events))
	assert.Equal(uint32(960), next)
}

func TestMelodyRhythmWrapsAgainstLongerLines(t *testing.T) {
	events, _ := Melody([]string{"C4", "D4", "E4"}, []float64{1.0, 2.0}, 1, 90, 0)

	assert := assert.New(t)
	assert.Equal(6, len(events))
	assert.Equal(uint32(480), events[1].Delta)
	assert.Equal(uint32(960), events[3].Delta)
	assert.Equal(uint32(480), events[5].Delta)
}

func TestMelodyPairsBeginsAndEnds(t *testing.T) {
	sec := song.Get("verse1")
	events, _ := Melody(sec.Melody, sec.Rhythm, 1, 75, 0)

	assert := assert.New(t)
	for i := 0; i < len(events); i += 2 {
		assert.True(events[i].NoteOn)
		assert.False(events[i+1].NoteOn)
		assert.Equal(events[i].Note, events[i+1].Note)
	}
}

func TestOutroMelodyDurationMatchesRhythm(t *testing.T) {
	sec := song.Get("outro")
	events, _ := Melody(sec.Melody, sec.Rhythm, 1, 70, 0)

	// 2+2+2+2+4+4 beats at 480 ticks per beat
	assert := assert.New(t)
	assert.Equal(uint64(16*480), deltaSum(events))
}

func TestUnknownSectionRendersExactlyLikeIntro(t *testing.T) {
	intro := song.Get("intro")
	other := song.Get("no_such_section")

	wantChords, _ := Chords(intro.Chords, 8, 0, intro.Velocity, 0)
	gotChords, _ := Chords(other.Chords, 8, 0, other.Velocity, 0)
	wantMelody, _ := Melody(intro.Melody, intro.Rhythm, 1, intro.Velocity, 0)
	gotMelody, _ := Melody(other.Melody, other.Rhythm, 1, other.Velocity, 0)

	assert := assert.New(t)
	assert.Equal(wantChords, gotChords)
	assert.Equal(wantMelody, gotMelody)
}

func TestBassUsesWholeNotes(t *testing.T) {
	events, next := Bass([]string{"D2", "Bb1"}, 2, 70, 0)

	assert := assert.New(t)
	assert.Equal(4, len(events))
	assert.Equal(uint8(38), events[0].Note)
	assert.Equal(uint32(1920), events[1].Delta)
	assert.Equal(uint8(34), events[2].Note)
	assert.Equal(uint32(1920), events[3].Delta)
	assert.Equal(uint32(0), next)
}
