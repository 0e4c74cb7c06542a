package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvesKnownTokens(t *testing.T) {
	cases := map[string]uint8{
		"D4":   62,
		"D5":   74,
		"Bb1":  34,
		"Bb3":  58,
		"A5":   81,
		"C#4":  61,
		"Gb2":  42,
		"C":    60,
		"G":    67,
		"rest": 60,
		"":     60,
	}

	assert := assert.New(t)
	for token, want := range cases {
		assert.Equal(want, Resolve(token), "token %v", token)
	}
}

func TestUnknownNamesFallBackToDefault(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(60), Resolve("H"))
	assert.Equal(uint8(60), Resolve("zz"))
	// unknown prefix still gets the octave adjustment from the default
	assert.Equal(uint8(72), Resolve("H5"))
}

func TestClampsToMidiRange(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(127), Resolve("B9"))
	assert.Equal(uint8(12), Resolve("C0"))
}

func TestResolutionIsTotal(t *testing.T) {
	tokens := []string{"?", "Dbb37", "9", "Bb-1", "###", "rest4"}
	assert := assert.New(t)
	for _, token := range tokens {
		got := Resolve(token)
		assert.True(got <= 127, "token %v resolved to %v", token, got)
	}
}
