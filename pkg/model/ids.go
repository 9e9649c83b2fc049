package model

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

// Id prefixes used by constructors and duplicators.
const (
	PrefixField  = "field"
	PrefixGroup  = "group"
	PrefixOption = "opt"
)

// IDGenerator mints ids for new fields and options. Implementations must never
// return an id twice.
type IDGenerator interface {
	NewID(prefix string) string
}

// IDFunc adapts a function into an IDGenerator.
type IDFunc func(prefix string) string

// NewID calls the underlying function.
func (fn IDFunc) NewID(prefix string) string {
	return fn(prefix)
}

// UUIDGenerator returns "<prefix>_<uuid>" ids.
func UUIDGenerator() IDGenerator {
	return IDFunc(func(prefix string) string {
		if prefix == "" {
			return uuid.NewString()
		}
		return prefix + "_" + uuid.NewString()
	})
}

// Sequence is a deterministic generator returning "<prefix>-<n>", with one
// counter shared across prefixes. Useful in tests and fixtures.
type Sequence struct {
	mu   sync.Mutex
	next int
}

// NewSequence returns a Sequence starting at 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// NewID returns the next id.
func (s *Sequence) NewID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	if prefix == "" {
		return strconv.Itoa(s.next)
	}
	return prefix + "-" + strconv.Itoa(s.next)
}
