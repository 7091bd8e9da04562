package language

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	textlang "golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert.Equal(t, German, From("german"))
	assert.Equal(t, German, From("de"))
	assert.Equal(t, Swedish, From("sv"))

	// lookups are exact
	assert.Equal(t, Fallback, From("German"))
	assert.Equal(t, Fallback, From(""))
	assert.Equal(t, Fallback, From("klingon"))
	assert.Equal(t, English, Fallback)
}

func TestAccessors(t *testing.T) {
	assert.True(t, German.IsGerman())
	assert.False(t, English.IsGerman())
	assert.Equal(t, "de", German.Abbr())
	assert.Equal(t, textlang.German, German.Tag())
	assert.Equal(t, 30, utf8.RuneCountInString(German.Alphabet()))
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz", English.Alphabet())
}

func TestAllLanguages(t *testing.T) {
	abbrs := map[string]bool{}
	for k, l := range All {
		assert.Equal(t, k, l.Name)
		assert.NotEmpty(t, l.Alphabet())
		assert.False(t, abbrs[l.Abbr()], "duplicate abbreviation %s", l.Abbr())
		abbrs[l.Abbr()] = true
	}
	assert.Equal(t, len(All), len(byAbbr))
}
