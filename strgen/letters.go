package strgen

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/synacor/strgen/language"
	"github.com/synacor/strgen/rng"
)

// ErrEmptyAlphabet is returned when letters would be drawn from an empty alphabet.
var ErrEmptyAlphabet = errors.New("strgen: alphabet is empty")

// LetterSequence builds strings of a fixed length from an alphabet.
type LetterSequence struct {
	alphabet []rune
	length   int
}

// NewLetterSequence returns a generator for strings of length characters,
// drawing from the English alphabet until Setup says otherwise.
func NewLetterSequence(length int) *LetterSequence {
	return &LetterSequence{
		alphabet: []rune(language.Fallback.Alphabet()),
		length:   length,
	}
}

// SetAlphabet replaces the characters drawn from.
func (l *LetterSequence) SetAlphabet(s string) {
	l.alphabet = []rune(s)
}

// Alphabet returns the characters drawn from.
func (l *LetterSequence) Alphabet() string {
	return string(l.alphabet)
}

// Setup picks the alphabet for conf.Mode.
func (l *LetterSequence) Setup(conf Config) error {
	l.length = conf.Length

	switch conf.Mode {
	case RandomLettersFromCustomAlphabet:
		l.SetAlphabet(conf.Next)
	case RandomLettersFromAlphabetFile:
		contents, err := ioutil.ReadFile(conf.Next)
		if err != nil {
			return fmt.Errorf("strgen: could not read alphabet file: %w", err)
		}
		l.SetAlphabet(string(contents))
	default:
		l.SetAlphabet(language.From(conf.Next).Alphabet())
	}

	if len(l.alphabet) == 0 {
		return ErrEmptyAlphabet
	}
	return nil
}

// Get returns a new random string.
func (l *LetterSequence) Get() (string, error) {
	if len(l.alphabet) == 0 {
		return "", ErrEmptyAlphabet
	}

	var b strings.Builder
	w := rng.NewWheel(l.length)
	for w.Next() {
		b.WriteRune(l.alphabet[w.Value()%len(l.alphabet)])
	}
	return b.String(), nil
}
