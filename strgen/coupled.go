package strgen

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/synacor/strgen/grammar"
	"github.com/synacor/strgen/language"
)

// ErrListFilesParam is returned when the list files parameter is not "adjectives:second".
var ErrListFilesParam = errors.New(`strgen: list files must be given as "adjectives:second"`)

// CoupledWords joins a random adjective with a random noun or name.
type CoupledWords struct {
	adjectives *WordList
	second     *WordList
	language   *language.Language
	nouns      *grammar.NounTable
}

// NewCoupledWords returns a generator pairing adjectives with words of secondType.
func NewCoupledWords(secondType ListType, lang *language.Language) *CoupledWords {
	return &CoupledWords{
		adjectives: NewWordList(Adjectives, lang),
		second:     NewWordList(secondType, lang),
		language:   lang,
	}
}

// Adjectives returns the adjective list.
func (c *CoupledWords) Adjectives() *WordList {
	return c.adjectives
}

// Second returns the list of nouns or names.
func (c *CoupledWords) Second() *WordList {
	return c.second
}

// Setup fills both lists for conf.Mode.
func (c *CoupledWords) Setup(conf Config) error {
	switch conf.Mode {
	case CoupledWordsListFiles:
		parts := strings.SplitN(conf.Next, ":", 2)
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			return ErrListFilesParam
		}
		c.adjectives.Fill(parts[0])
		c.second.Fill(parts[1])
	default:
		c.adjectives.Fill("")
		c.second.Fill("")
	}

	if c.adapts() {
		c.nouns = grammar.NewNounTable(c.language.Tag())
		c.nouns.Fill(filepath.Join(ListsDir, grammar.GenderFile))
	}
	return nil
}

func (c *CoupledWords) adapts() bool {
	return c.language.IsGerman() && c.second.ListType().IsNoun()
}

// Get returns "adjective_word", or the adapted German pair for German nouns.
func (c *CoupledWords) Get() (string, error) {
	adj, err := c.adjectives.Get()
	if err != nil {
		return "", err
	}
	word, err := c.second.Get()
	if err != nil {
		return "", err
	}

	if c.adapts() {
		if c.nouns == nil {
			c.nouns = grammar.NewNounTable(c.language.Tag())
		}
		return c.nouns.Adapt(adj, word), nil
	}
	return adj + "_" + word, nil
}
