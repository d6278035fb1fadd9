package core

import "math/rand"

// RandSource is the randomness the simulation consumes: AI imperfection and
// brick layout. Inject a seeded source for deterministic runs.
type RandSource interface {
	Float64() float64
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// FixedRand always returns the same value. Useful in tests that need every
// probability roll to pass (0) or fail (a value close to 1).
type FixedRand float64

// Float64 implements RandSource.
func (f FixedRand) Float64() float64 {
	return float64(f)
}

// SequenceRand replays a fixed sequence of values, cycling when exhausted.
type SequenceRand struct {
	Values []float64
	next   int
}

// Float64 implements RandSource.
func (s *SequenceRand) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}
