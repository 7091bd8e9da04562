// Package language contains the registry of languages strings can be generated in.
package language

import (
	textlang "golang.org/x/text/language"
)

// Language describes a supported language.
type Language struct {
	// Name is the full identifier, e.g. "german"
	Name string

	abbr     string
	alphabet string
	german   bool
	tag      textlang.Tag
}

// Alphabet returns the canonical letters of the language, in order.
func (l *Language) Alphabet() string {
	return l.alphabet
}

// Abbr returns the short code used in list file names.
func (l *Language) Abbr() string {
	return l.abbr
}

// IsGerman reports whether German grammar rules apply.
func (l *Language) IsGerman() bool {
	return l.german
}

// Tag returns the BCP 47 tag of the language.
func (l *Language) Tag() textlang.Tag {
	return l.tag
}

const latin = "abcdefghijklmnopqrstuvwxyz"

// English is the fallback language.
var English = &Language{"english", "en", latin, false, textlang.English}

// German enables noun adaptation for coupled words.
var German = &Language{"german", "de", latin + "äöüß", true, textlang.German}

var French = &Language{"french", "fr", latin + "àâæçéèêëîïôœùûüÿ", false, textlang.French}

var Spanish = &Language{"spanish", "es", latin + "áéíñóúü", false, textlang.Spanish}

var Italian = &Language{"italian", "it", latin + "àèéìòù", false, textlang.Italian}

var Dutch = &Language{"dutch", "nl", latin, false, textlang.Dutch}

var Swedish = &Language{"swedish", "sv", latin + "åäö", false, textlang.Swedish}

// Fallback is returned by From for identifiers that are not registered.
var Fallback = English

// All contains every registered language, keyed by name.
var All = map[string]*Language{
	English.Name: English,
	German.Name:  German,
	French.Name:  French,
	Spanish.Name: Spanish,
	Italian.Name: Italian,
	Dutch.Name:   Dutch,
	Swedish.Name: Swedish,
}

var byAbbr = func() map[string]*Language {
	m := make(map[string]*Language, len(All))
	for _, l := range All {
		m[l.abbr] = l
	}
	return m
}()

// From looks up a language by its exact name or abbreviation. Unknown
// identifiers resolve to Fallback.
func From(id string) *Language {
	if l, found := All[id]; found {
		return l
	}
	if l, found := byAbbr[id]; found {
		return l
	}
	return Fallback
}
