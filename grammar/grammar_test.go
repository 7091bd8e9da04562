package grammar

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestInflect(t *testing.T) {
	cases := []struct {
		adjective string
		class     Class
		want      string
	}{
		{"groß", Masculine, "großer"},
		{"groß", Feminine, "große"},
		{"groß", Neuter, "großes"},
		{"müde", Masculine, "müder"},
		{"müde", Feminine, "müde"},
		{"müde", Neuter, "müdes"},
		{"dunkel", Neuter, "dunkles"},
		{"edel", Masculine, "edler"},
		{"parallel", Neuter, "paralleles"},
		{"fidel", Neuter, "fideles"},
		{"steil", Feminine, "steile"},
		{"kriminell", Masculine, "krimineller"},
		{"teuer", Feminine, "teure"},
		{"sauer", Masculine, "saurer"},
		{"hoch", Neuter, "hohes"},
		{" klein ", Masculine, "kleiner"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Inflect(c.adjective, c.class), "%s (%s)", c.adjective, c.class)
	}
}

func TestClassLookup(t *testing.T) {
	table := NewNounTable(language.German)

	c, found := table.Lookup("Hund")
	assert.True(t, found)
	assert.Equal(t, Masculine, c)

	// case insensitive, also for umlauts
	c, found = table.Lookup("BRÜCKE")
	assert.True(t, found)
	assert.Equal(t, Feminine, c)

	_, found = table.Lookup("Zeitung")
	assert.False(t, found)

	assert.Equal(t, Feminine, table.Class("Zeitung"))
	assert.Equal(t, Neuter, table.Class("Mädchen"))
	assert.Equal(t, Masculine, table.Class("Schmetterling"))
	assert.Equal(t, DefaultClass, table.Class("Xyz"))
	assert.Equal(t, Neuter, table.Class("Ei"))
}

func TestRender(t *testing.T) {
	assert.Equal(t, "großer-Hund", Render("groß", "Hund", Masculine))
	assert.Equal(t, "kleine-Katze", Render("klein", "katze", Feminine))
	assert.Equal(t, "altes-Haus", Render("alt", "Haus", Neuter))
}

func TestAdapt(t *testing.T) {
	table := NewNounTable(language.German)

	assert.Equal(t, "großer-Hund", table.Adapt("groß", "Hund"))
	assert.Equal(t, "große-Katze", table.Adapt("groß", "Katze"))
	assert.Equal(t, "kleines-Haus", table.Adapt("klein", "Haus"))
	assert.Equal(t, "dunkle-Zeitung", table.Adapt("dunkel", "Zeitung"))

	for _, noun := range []string{"Hund", "Katze", "Haus", "Unbekannt"} {
		assert.False(t, strings.Contains(table.Adapt("rot", noun), "_"))
	}
}

func TestAdaptUsesTableLanguage(t *testing.T) {
	assert.Equal(t, "rote-Insel", NewNounTable(language.German).Adapt("rot", "insel"))
	assert.Equal(t, "rote-İnsel", NewNounTable(language.Turkish).Adapt("rot", "insel"))
}

func TestFill(t *testing.T) {
	path := filepath.Join(t.TempDir(), GenderFile)
	assert.NoError(t, ioutil.WriteFile(path, []byte("Löffel:m, Gabel:f\nMesser:n,Hund:f\nkaputt, Teller:x"), 0644))

	table := NewNounTable(language.German)
	before := table.Len()
	assert.Equal(t, 4, table.Fill(path))
	assert.Equal(t, before+3, table.Len())

	assert.Equal(t, "silberner-Löffel", table.Adapt("silbern", "Löffel"))
	assert.Equal(t, "spitzes-Messer", table.Adapt("spitz", "Messer"))

	// file entries override built-in ones
	assert.Equal(t, Feminine, table.Class("Hund"))

	assert.Equal(t, 0, table.Fill(filepath.Join(t.TempDir(), "missing.list")))
}

func TestParseClass(t *testing.T) {
	c, ok := ParseClass(" M ")
	assert.True(t, ok)
	assert.Equal(t, Masculine, c)

	c, ok = ParseClass("das")
	assert.True(t, ok)
	assert.Equal(t, Neuter, c)

	c, ok = ParseClass("q")
	assert.False(t, ok)
	assert.Equal(t, DefaultClass, c)
}
