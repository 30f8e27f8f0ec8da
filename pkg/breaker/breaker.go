// Package breaker recovers single-byte XOR keys by brute force and
// frequency scoring.
package breaker

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"

	bkerrors "github.com/provide-io/bytekit/go/bytekit/pkg/errors"
	"github.com/provide-io/bytekit/go/bytekit/pkg/score"
	"github.com/provide-io/bytekit/go/bytekit/pkg/xor"
)

// Scorer rates candidate plaintext; higher is better.
type Scorer interface {
	Score(text []byte) float64
}

// Guess is the best candidate found for one ciphertext.
type Guess struct {
	Key       byte
	Plaintext []byte
	Score     float64
}

// String formats the guess as "<plaintext>:<score>" on a single line.
// The plaintext goes through EscapeLine.
func (g Guess) String() string {
	return EscapeLine(g.Plaintext) + ":" + FormatScore(g.Score)
}

var lineEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// EscapeLine renders text for line-oriented output. Backslash, '\n' and
// '\r' become `\\`, `\n` and `\r`; every other byte is written as is.
func EscapeLine(text []byte) string {
	return lineEscaper.Replace(string(text))
}

// FormatScore prints a score with the fewest digits that round-trip.
func FormatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// Breaker searches a key range for the highest scoring plaintext.
type Breaker struct {
	keys   KeyRange
	scorer Scorer
	text   TextPolicy
	logger hclog.Logger
}

// New creates a Breaker.
func New(opts ...Option) *Breaker {
	b := &Breaker{
		keys:   PrintableKeys,
		scorer: score.New(),
		text:   Permissive,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Break tries every key in range against cipher and returns the best guess.
//
// Keys are scanned in ascending order and the best is replaced only on a
// strictly greater score, so ties go to the lowest key. An empty key range
// returns ErrInvalidKey; under the Strict policy, a search where no key
// yields valid UTF-8 returns ErrNoCandidate.
func (b *Breaker) Break(cipher []byte) (Guess, error) {
	if b.keys.Empty() {
		return Guess{}, bkerrors.ErrInvalidKey
	}

	var (
		best  Guess
		found bool
	)
	tmp := make([]byte, len(cipher))
	// Use an int loop variable so Hi == 0xff does not overflow.
	for k := int(b.keys.Lo); k <= int(b.keys.Hi); k++ {
		key := byte(k)
		xor.SingleByte(tmp, cipher, key)

		candidate := tmp
		if !utf8.Valid(tmp) {
			if b.text == Strict {
				b.logger.Trace("skipping key, candidate is not valid text", "key", key, "error", bkerrors.ErrTextDecode)
				continue
			}
			candidate = nil
		}

		s := b.scorer.Score(candidate)
		if !found || s > best.Score {
			best = Guess{Key: key, Plaintext: append([]byte{}, candidate...), Score: s}
			found = true
			b.logger.Trace("new best candidate", "key", key, "score", s)
		}
	}

	if !found {
		return Guess{}, bkerrors.ErrNoCandidate
	}
	b.logger.Debug("key search complete", "keys", b.keys.String(), "key", best.Key, "score", best.Score)
	return best, nil
}
