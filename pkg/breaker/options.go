package breaker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// KeyRange is an inclusive range of candidate keys. Lo > Hi is empty.
type KeyRange struct {
	Lo, Hi byte
}

var (
	// PrintableKeys covers space through tilde.
	PrintableKeys = KeyRange{Lo: ' ', Hi: '~'}
	// LetterKeys covers 'A' through 'z'. Faster, but misses keys outside it.
	LetterKeys = KeyRange{Lo: 'A', Hi: 'z'}
	// AllKeys covers every byte value.
	AllKeys = KeyRange{Lo: 0x00, Hi: 0xff}
)

// Empty reports whether the range holds no keys.
func (r KeyRange) Empty() bool { return r.Lo > r.Hi }

// Len returns the number of keys in the range.
func (r KeyRange) Len() int {
	if r.Empty() {
		return 0
	}
	return int(r.Hi) - int(r.Lo) + 1
}

func (r KeyRange) String() string {
	switch r {
	case PrintableKeys:
		return "printable"
	case LetterKeys:
		return "letters"
	case AllKeys:
		return "all"
	}
	return fmt.Sprintf("%02x-%02x", r.Lo, r.Hi)
}

// ParseKeyRange parses "printable", "letters", "all", or a hex range "lo-hi"
// such as "20-7e".
func ParseKeyRange(s string) (KeyRange, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "printable":
		return PrintableKeys, nil
	case "letters":
		return LetterKeys, nil
	case "all":
		return AllKeys, nil
	}

	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return KeyRange{}, fmt.Errorf("invalid key range %q: want printable, letters, all, or lo-hi", s)
	}
	l, err := strconv.ParseUint(strings.TrimPrefix(lo, "0x"), 16, 8)
	if err != nil {
		return KeyRange{}, fmt.Errorf("invalid key range %q: %w", s, err)
	}
	h, err := strconv.ParseUint(strings.TrimPrefix(hi, "0x"), 16, 8)
	if err != nil {
		return KeyRange{}, fmt.Errorf("invalid key range %q: %w", s, err)
	}
	return KeyRange{Lo: byte(l), Hi: byte(h)}, nil
}

// TextPolicy decides what happens to candidates that are not valid UTF-8.
type TextPolicy int

const (
	// Permissive keeps invalid candidates as empty text scored as such.
	Permissive TextPolicy = iota
	// Strict skips invalid candidates.
	Strict
)

func (p TextPolicy) String() string {
	if p == Strict {
		return "strict"
	}
	return "permissive"
}

// Option configures a Breaker.
type Option func(*Breaker)

// WithKeyRange sets the candidate keys. Default: PrintableKeys.
func WithKeyRange(r KeyRange) Option {
	return func(b *Breaker) {
		b.keys = r
	}
}

// WithScorer sets the text scorer. Default: score.New().
func WithScorer(s Scorer) Option {
	return func(b *Breaker) {
		b.scorer = s
	}
}

// WithTextPolicy sets the invalid-text policy. Default: Permissive.
func WithTextPolicy(p TextPolicy) Option {
	return func(b *Breaker) {
		b.text = p
	}
}

// WithLogger sets the logger. Default: a null logger.
func WithLogger(l hclog.Logger) Option {
	return func(b *Breaker) {
		b.logger = l
	}
}
