package strgen

// Mode selects the generator and how Config.Next is interpreted.
type Mode int

// Mode constants
const (
	// RandomLetters draws letters from the alphabet of the language named by Next.
	RandomLetters Mode = iota
	// RandomLettersFromCustomAlphabet draws letters from Next itself.
	RandomLettersFromCustomAlphabet
	// RandomLettersFromAlphabetFile draws letters from the contents of the file Next.
	RandomLettersFromAlphabetFile
	// RandomWord picks nouns from the default list of the language named by Next.
	RandomWord
	// RandomWordFromListFile picks words from the list file Next.
	RandomWordFromListFile
	// CoupledWordsNouns pairs adjectives with nouns of the language named by Next.
	CoupledWordsNouns
	// CoupledWordsNames pairs adjectives with names of the language named by Next.
	CoupledWordsNames
	// CoupledWordsListFiles pairs words from the two list files in Next, "adjectives:second".
	CoupledWordsListFiles
)

// DefaultMode is used when no mode or an unknown one is given.
const DefaultMode = RandomLetters

var modeNames = map[Mode]string{
	RandomLetters:                   "letters",
	RandomLettersFromCustomAlphabet: "alphabet",
	RandomLettersFromAlphabetFile:   "alphabetfile",
	RandomWord:                      "word",
	RandomWordFromListFile:          "wordfile",
	CoupledWordsNouns:               "nouns",
	CoupledWordsNames:               "names",
	CoupledWordsListFiles:           "listfiles",
}

// ParseMode returns the mode with the given identifier, or DefaultMode.
func ParseMode(id string) Mode {
	for m, name := range modeNames {
		if name == id {
			return m
		}
	}
	return DefaultMode
}

func (m Mode) String() string {
	if name, found := modeNames[m]; found {
		return name
	}
	return modeNames[DefaultMode]
}

// ReadsFiles reports whether Next names files to read in this mode.
func (m Mode) ReadsFiles() bool {
	switch m {
	case RandomLettersFromAlphabetFile, RandomWordFromListFile, CoupledWordsListFiles:
		return true
	}
	return false
}

// ListType classifies a word list.
type ListType int

// ListType constants
const (
	Nouns ListType = iota
	Adjectives
	Names
)

func (t ListType) String() string {
	switch t {
	case Adjectives:
		return "adjectives"
	case Names:
		return "names"
	default:
		return "nouns"
	}
}

// IsNoun reports whether the list holds nouns.
func (t ListType) IsNoun() bool {
	return t == Nouns
}
