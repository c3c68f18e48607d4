package theme

import (
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSetActive(t *testing.T) {
	defer SetActive(All[0].Name)

	assert.True(t, SetActive("glacier"))
	assert.Equal(t, "glacier", Active.Name)

	assert.False(t, SetActive("no-such-theme"))
	assert.Equal(t, All[0].Name, Active.Name)
}

func TestNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range Names() {
		assert.False(t, seen[n], "duplicate theme %q", n)
		seen[n] = true
		_, ok := Lookup(n)
		assert.True(t, ok)
	}
}

func TestForProfile(t *testing.T) {
	assert.Equal(t, "terminal", ForProfile("tide", termenv.ANSI).Name)
	assert.Equal(t, "terminal", ForProfile("tide", termenv.Ascii).Name)
	assert.Equal(t, "glacier", ForProfile("glacier", termenv.TrueColor).Name)
	assert.Equal(t, "tide", ForProfile("bogus", termenv.ANSI256).Name)
}
