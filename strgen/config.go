package strgen

import (
	"errors"
	"fmt"
	"strconv"
)

// Config defaults
const (
	DefaultAmount = 16
	DefaultLength = 12
)

// ErrInvalidNumber is returned when amount or length is not a non-negative integer.
var ErrInvalidNumber = errors.New("strgen: number must be a non-negative integer")

// Config describes a single run. It is not modified after construction.
type Config struct {
	Mode   Mode
	Length int
	Amount int

	// WriteToFile sends results to the output file instead of the console
	WriteToFile bool

	// Next is the mode dependent parameter: a language, an alphabet or file paths
	Next string
}

// NewConfig returns a Config with the default values.
func NewConfig() Config {
	return Config{
		Mode:   DefaultMode,
		Length: DefaultLength,
		Amount: DefaultAmount,
	}
}

// ParseArgs builds a Config from positional arguments:
// amount, length, mode, next, writeToFile ("1" means true).
// Missing arguments keep their defaults.
func ParseArgs(args []string) (Config, error) {
	conf := NewConfig()

	var err error
	if len(args) > 0 {
		if conf.Amount, err = parseNumber("amount", args[0]); err != nil {
			return conf, err
		}
	}
	if len(args) > 1 {
		if conf.Length, err = parseNumber("length", args[1]); err != nil {
			return conf, err
		}
	}
	if len(args) > 2 {
		conf.Mode = ParseMode(args[2])
	}
	if len(args) > 3 {
		conf.Next = args[3]
	}
	if len(args) > 4 {
		conf.WriteToFile = args[4] == "1"
	}

	return conf, nil
}

func parseNumber(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s %q: %w", name, s, ErrInvalidNumber)
	}
	return n, nil
}
