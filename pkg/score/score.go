// Package score rates how English-like a byte sequence is.
//
// Each distinct byte (ASCII letters folded to lowercase) contributes
// weight * count, and contributions are combined by the configured Policy.
// Higher scores are more English-like.
package score

import (
	"fmt"
	"strings"
)

// Policy selects how per-character contributions are combined.
type Policy int

const (
	// Additive sums contributions. Empty input scores 0.
	Additive Policy = iota
	// Multiplicative multiplies contributions. Empty input scores 1.
	// Long inputs can overflow to +Inf.
	Multiplicative
)

func (p Policy) String() string {
	switch p {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses "additive" or "multiplicative", case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "additive", "add", "sum":
		return Additive, nil
	case "multiplicative", "mul", "product":
		return Multiplicative, nil
	}
	return Additive, fmt.Errorf("unknown score policy %q", s)
}

// Scorer scores text against a fixed weight table.
type Scorer struct {
	table  Table
	policy Policy
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithPolicy sets the aggregation policy. Default: Additive.
func WithPolicy(p Policy) Option {
	return func(s *Scorer) {
		s.policy = p
	}
}

// WithSpaceWeight sets the weight of ' '. Default: DefaultSpaceWeight.
func WithSpaceWeight(w float64) Option {
	return func(s *Scorer) {
		s.table = NewTable(w)
	}
}

// New creates a Scorer.
func New(opts ...Option) *Scorer {
	s := &Scorer{table: baseTable, policy: Additive}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy returns the scorer's aggregation policy.
func (s *Scorer) Policy() Policy { return s.policy }

// Score returns the English-likeness of text.
func (s *Scorer) Score(text []byte) float64 {
	var counts [256]int
	for _, c := range text {
		counts[fold(c)]++
	}

	// Fixed iteration order keeps results bit-identical for inputs that
	// differ only in letter case.
	acc := 0.0
	if s.policy == Multiplicative {
		acc = 1.0
	}
	for c, n := range counts {
		if n == 0 {
			continue
		}
		contribution := s.table[c] * float64(n)
		if s.policy == Multiplicative {
			acc *= contribution
		} else {
			acc += contribution
		}
	}
	return acc
}
