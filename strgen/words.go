package strgen

import (
	"errors"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/synacor/strgen/language"
	"github.com/synacor/strgen/listfile"
	"github.com/synacor/strgen/rng"
)

// ErrEmptyList is returned when drawing from a list without words, usually
// because its file was missing.
var ErrEmptyList = errors.New("strgen: word list is empty")

// WordList picks random words from a list file.
type WordList struct {
	words    []string
	listType ListType
	language *language.Language
}

// NewWordList returns an empty list. Call Fill or Setup to load words.
func NewWordList(listType ListType, lang *language.Language) *WordList {
	return &WordList{
		listType: listType,
		language: lang,
	}
}

// Language returns the language of the list.
func (w *WordList) Language() *language.Language {
	return w.language
}

// ListType returns the kind of words in the list.
func (w *WordList) ListType() ListType {
	return w.listType
}

// Len returns the number of words loaded.
func (w *WordList) Len() int {
	return len(w.words)
}

// Words returns the loaded words in file order.
func (w *WordList) Words() []string {
	return w.words
}

// AddWord appends a word to the list.
func (w *WordList) AddWord(s string) {
	w.words = append(w.words, s)
}

// FileName returns the default list file, e.g. "lists/nouns.de.list".
func (w *WordList) FileName() string {
	return filepath.Join(ListsDir, fmt.Sprintf("%s.%s.list", w.listType, w.language.Abbr()))
}

// Fill loads the words of the file at source, or of FileName if source is
// empty. A file that cannot be read leaves the list unchanged.
func (w *WordList) Fill(source string) {
	if source == "" {
		source = w.FileName()
	}

	tokens, err := listfile.Tokens(source)
	if err != nil {
		log.WithFields(log.Fields{"file": source, "type": w.listType}).Debugf("could not read word list: %v", err)
		return
	}
	for _, tok := range tokens {
		w.AddWord(tok)
	}
}

// Setup fills the list for conf.Mode.
func (w *WordList) Setup(conf Config) error {
	switch conf.Mode {
	case RandomWordFromListFile:
		w.Fill(conf.Next)
	default:
		w.Fill("")
	}
	return nil
}

// Get returns a random word of the list.
func (w *WordList) Get() (string, error) {
	i, err := rng.Index(len(w.words))
	if err != nil {
		return "", fmt.Errorf("%w: %s %s", ErrEmptyList, w.language.Name, w.listType)
	}
	return w.words[i], nil
}
