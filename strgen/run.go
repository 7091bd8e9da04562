package strgen

import (
	"bufio"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// DefaultOutput is the file results are written to when Config.WriteToFile is set.
const DefaultOutput = "strings.textout"

// Runner drives a generator for a whole run.
type Runner struct {
	// Output is the file written when Config.WriteToFile is set. It is truncated on every run.
	Output string

	// Console receives "{string}:{index}" lines otherwise
	Console io.Writer
}

// NewRunner returns a Runner writing to DefaultOutput or stdout.
func NewRunner() *Runner {
	return &Runner{
		Output:  DefaultOutput,
		Console: os.Stdout,
	}
}

// Generate builds and sets up the generator for conf, then returns conf.Amount strings.
func Generate(conf Config) ([]string, error) {
	g, err := setup(conf)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, conf.Amount)
	for i := 0; i < conf.Amount; i++ {
		s, err := g.Get()
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Run generates conf.Amount strings and writes them out as they are produced.
// The first error aborts the run; lines already written are kept.
func (r *Runner) Run(conf Config) (err error) {
	g, err := setup(conf)
	if err != nil {
		return err
	}

	var w io.Writer = r.Console
	if conf.WriteToFile {
		f, ferr := os.Create(r.Output)
		if ferr != nil {
			return ferr
		}
		buf := bufio.NewWriter(f)
		defer func() {
			if ferr := buf.Flush(); err == nil {
				err = ferr
			}
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = buf
	}

	for i := 0; i < conf.Amount; i++ {
		s, err := g.Get()
		if err != nil {
			return err
		}

		if conf.WriteToFile {
			_, err = fmt.Fprintln(w, s)
		} else {
			_, err = fmt.Fprintf(w, "%s:%d\n", s, i)
		}
		if err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{"mode": conf.Mode, "amount": conf.Amount, "file": conf.WriteToFile}).Debug("run complete")
	return nil
}

func setup(conf Config) (Generator, error) {
	g := New(conf)
	if err := g.Setup(conf); err != nil {
		return nil, err
	}
	return g, nil
}
