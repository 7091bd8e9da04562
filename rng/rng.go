// Package rng produces the pseudo-random values generators draw from.
package rng

import (
	"errors"
	"math/rand"
	"sync/atomic"
	"time"
)

// ErrNonPositiveBound is returned by Index when asked to reduce into an empty range.
var ErrNonPositiveBound = errors.New("rng: bound must be positive")

var seedCounter int64

// no need for crypto/rand. seedFunc is a variable so tests can pin it
var seedFunc = func() int64 {
	return time.Now().UnixNano() + atomic.AddInt64(&seedCounter, 1)*0x9e3779b9
}

// Wheel yields a fixed number of values. It cannot be rewound; create a new
// Wheel for every sequence.
type Wheel struct {
	rnd       *rand.Rand
	remaining int
	value     int
}

// NewWheel returns a freshly seeded Wheel that yields length values.
func NewWheel(length int) *Wheel {
	if length < 0 {
		length = 0
	}
	return &Wheel{
		rnd:       rand.New(rand.NewSource(seedFunc())),
		remaining: length,
	}
}

// Next advances the wheel. It returns false once all values were produced.
func (w *Wheel) Next() bool {
	if w.remaining <= 0 {
		return false
	}
	w.remaining--
	w.value = w.rnd.Int()
	return true
}

// Value returns the value produced by the last call to Next.
func (w *Wheel) Value() int {
	return w.value
}

// Scalar produces single values. Call Seed before every Value so successive
// picks are not correlated.
type Scalar struct {
	rnd *rand.Rand
}

// Seed reseeds the generator.
func (s *Scalar) Seed() {
	s.rnd = rand.New(rand.NewSource(seedFunc()))
}

// Value returns a non-negative pseudo-random value.
func (s *Scalar) Value() int {
	if s.rnd == nil {
		s.Seed()
	}
	return s.rnd.Int()
}

// Index returns a freshly seeded value reduced into [0, n).
func Index(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNonPositiveBound
	}
	var s Scalar
	s.Seed()
	return s.Value() % n, nil
}
