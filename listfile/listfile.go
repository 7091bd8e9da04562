// Package listfile reads the comma separated list files words are loaded from.
package listfile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Lines returns every line of the file at path.
func Lines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// lines are not length limited, a whole list may sit on one line
	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

// Split splits a line on commas, trims each token and drops empty ones.
func Split(line string) []string {
	var tokens []string
	for _, tok := range strings.Split(line, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Tokens reads the file at path and returns all tokens in file order.
func Tokens(path string) ([]string, error) {
	lines, err := Lines(path)
	if err != nil {
		return nil, err
	}

	var tokens []string
	for _, line := range lines {
		tokens = append(tokens, Split(line)...)
	}
	return tokens, nil
}
