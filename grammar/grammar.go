// Package grammar adapts German adjectives to the noun they precede.
//
// German adjectives without an article take the strong declension, so the
// ending depends on the grammatical gender of the noun: "großer Hund",
// "große Katze", "großes Haus". Adapted pairs are rendered as
// "{adjective}{JoinSeparator}{Noun}", e.g. "großer-Hund".
package grammar

import (
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/synacor/strgen/listfile"
)

// Class is the grammatical gender of a noun.
type Class int

// Class constants
const (
	Masculine Class = iota
	Feminine
	Neuter
)

// DefaultClass is used for nouns that are neither in the table nor match a known suffix.
const DefaultClass = Feminine

// JoinSeparator joins the inflected adjective and the noun.
const JoinSeparator = "-"

// GenderFile is the name of the noun gender list inside the lists directory.
const GenderFile = "genders.de.list"

func (c Class) String() string {
	switch c {
	case Masculine:
		return "masculine"
	case Neuter:
		return "neuter"
	default:
		return "feminine"
	}
}

// Ending returns the strong nominative singular adjective ending for the class.
func (c Class) Ending() string {
	switch c {
	case Masculine:
		return "er"
	case Neuter:
		return "es"
	default:
		return "e"
	}
}

// ParseClass parses the short class codes used in gender files.
func ParseClass(s string) (Class, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "der":
		return Masculine, true
	case "f", "die":
		return Feminine, true
	case "n", "das":
		return Neuter, true
	}
	return DefaultClass, false
}

// Casers are stateful, so every call gets its own.
func key(noun string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(noun)))
}

func capitalize(tag language.Tag, noun string) string {
	return cases.Title(tag, cases.NoLower).String(strings.TrimSpace(noun))
}

// suffixes are checked in order, against folded nouns.
var suffixes = []struct {
	suffix string
	class  Class
}{
	{"ung", Feminine},
	{"heit", Feminine},
	{"keit", Feminine},
	{"schaft", Feminine},
	{"ion", Feminine},
	{"tät", Feminine},
	{"enz", Feminine},
	{"anz", Feminine},
	{"ik", Feminine},
	{"ur", Feminine},
	{"ei", Feminine},
	{"chen", Neuter},
	{"lein", Neuter},
	{"ment", Neuter},
	{"um", Neuter},
	{"ling", Masculine},
	{"ismus", Masculine},
	{"ig", Masculine},
	{"ich", Masculine},
}

var builtin = map[string]Class{
	"Hund": Masculine, "Baum": Masculine, "Berg": Masculine, "Fluss": Masculine,
	"Vogel": Masculine, "Wald": Masculine, "Stein": Masculine, "Mond": Masculine,
	"Tisch": Masculine, "Fuchs": Masculine, "Bär": Masculine, "Wolf": Masculine,
	"Himmel": Masculine, "Apfel": Masculine, "Stern": Masculine, "Käse": Masculine,
	"Katze": Feminine, "Blume": Feminine, "Sonne": Feminine, "Maus": Feminine,
	"Stadt": Feminine, "Nacht": Feminine, "Brücke": Feminine, "Straße": Feminine,
	"Wolke": Feminine, "Eule": Feminine, "Insel": Feminine, "Tür": Feminine,
	"Haus": Neuter, "Pferd": Neuter, "Boot": Neuter, "Schiff": Neuter,
	"Buch": Neuter, "Feuer": Neuter, "Wasser": Neuter, "Licht": Neuter,
	"Schaf": Neuter, "Ei": Neuter, "Meer": Neuter, "Dorf": Neuter,
}

// NounTable maps nouns to their grammatical class. Lookups ignore case.
type NounTable struct {
	classes map[string]Class
	tag     language.Tag
}

// NewNounTable returns a table seeded with common nouns. Nouns are
// capitalized following the casing rules of tag.
func NewNounTable(tag language.Tag) *NounTable {
	t := &NounTable{
		classes: make(map[string]Class, len(builtin)),
		tag:     tag,
	}
	for noun, c := range builtin {
		t.Set(noun, c)
	}
	return t
}

// Set records the class of a noun.
func (t *NounTable) Set(noun string, c Class) {
	t.classes[key(noun)] = c
}

// Len returns the number of nouns with a known class.
func (t *NounTable) Len() int {
	return len(t.classes)
}

// Fill merges the "noun:class" tokens of the file at path into the table and
// returns how many were added. A missing file adds nothing.
func (t *NounTable) Fill(path string) int {
	tokens, err := listfile.Tokens(path)
	if err != nil {
		log.WithFields(log.Fields{"file": path}).Debugf("no gender list loaded: %v", err)
		return 0
	}

	n := 0
	for _, tok := range tokens {
		i := strings.LastIndex(tok, ":")
		if i <= 0 {
			log.WithFields(log.Fields{"file": path, "entry": tok}).Warn("ignoring gender entry without class")
			continue
		}
		c, ok := ParseClass(tok[i+1:])
		if !ok {
			log.WithFields(log.Fields{"file": path, "entry": tok}).Warn("ignoring gender entry with unknown class")
			continue
		}
		t.Set(tok[:i], c)
		n++
	}
	return n
}

// Lookup returns the class recorded for noun, if any.
func (t *NounTable) Lookup(noun string) (Class, bool) {
	c, found := t.classes[key(noun)]
	return c, found
}

// Class returns the class of noun: the recorded one, else one guessed from
// its suffix, else DefaultClass.
func (t *NounTable) Class(noun string) Class {
	if c, found := t.Lookup(noun); found {
		return c
	}
	k := key(noun)
	for _, s := range suffixes {
		if len(k) > len(s.suffix) && strings.HasSuffix(k, s.suffix) {
			return s.class
		}
	}
	return DefaultClass
}

// Adapt renders adjective and noun with the adjective inflected for the noun's class.
func (t *NounTable) Adapt(adjective, noun string) string {
	return Inflect(adjective, t.Class(noun)) + JoinSeparator + capitalize(t.tag, noun)
}

// Inflect appends the ending for class to adjective.
func Inflect(adjective string, c Class) string {
	stem := strings.TrimSpace(adjective)
	ending := c.Ending()

	lower := strings.ToLower(stem)
	switch {
	case lower == "hoch":
		stem = stem[:len(stem)-2] + "h"
	case strings.HasSuffix(lower, "e"):
		ending = ending[1:]
	case strings.HasSuffix(lower, "euer"), strings.HasSuffix(lower, "auer"):
		stem = stem[:len(stem)-2] + "r"
	case unstressedEl(lower):
		stem = stem[:len(stem)-2] + "l"
	}
	return stem + ending
}

// stressedEl lists adjectives whose final "-el" keeps its e.
var stressedEl = map[string]bool{
	"fidel":    true,
	"parallel": true,
}

// unstressedEl reports whether adjective ends in an "-el" that loses its e
// when inflected, as in "dunkel" -> "dunkles".
func unstressedEl(adjective string) bool {
	if !strings.HasSuffix(adjective, "el") || stressedEl[adjective] {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(adjective[:len(adjective)-2])
	return r != utf8.RuneError && r != 'l' && !strings.ContainsRune("aeiouäöüy", r)
}

// Render joins the inflected adjective and the capitalized noun.
func Render(adjective, noun string, c Class) string {
	return Inflect(adjective, c) + JoinSeparator + capitalize(language.German, noun)
}
