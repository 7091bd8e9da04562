// Package strgen generates random strings from letters and word lists.
package strgen

import "github.com/synacor/strgen/language"

// ListsDir is the directory default list files are read from.
var ListsDir = "./lists"

// Generator produces one string per call to Get. Setup must be called once
// before the first Get.
//
// The set of generators is closed: LetterSequence, WordList and CoupledWords.
type Generator interface {
	Setup(conf Config) error
	Get() (string, error)

	generator()
}

func (*LetterSequence) generator() {}
func (*WordList) generator()       {}
func (*CoupledWords) generator()   {}

// New returns the generator for conf.Mode. Setup is not called.
func New(conf Config) Generator {
	switch conf.Mode {
	case RandomWord, RandomWordFromListFile:
		return NewWordList(Nouns, language.From(conf.Next))
	case CoupledWordsNouns:
		return NewCoupledWords(Nouns, language.From(conf.Next))
	case CoupledWordsNames, CoupledWordsListFiles:
		// Next holds file paths for list files, so this resolves to the fallback language
		return NewCoupledWords(Names, language.From(conf.Next))
	default:
		return NewLetterSequence(conf.Length)
	}
}
