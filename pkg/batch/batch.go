// Package batch runs the single-byte XOR breaker over many hex lines.
//
// Results keep input order. A line that fails to decode or break carries
// its error in Result.Err and does not stop the rest of the batch.
package batch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/bytekit/go/bytekit/pkg/breaker"
	"github.com/provide-io/bytekit/go/bytekit/pkg/hexcodec"
)

// maxLineLength bounds a single input line.
const maxLineLength = 1024 * 1024

// KeyBreaker recovers the best single-byte key for a ciphertext.
type KeyBreaker interface {
	Break(cipher []byte) (breaker.Guess, error)
}

// Result is the outcome for one input line.
type Result struct {
	Index int    // Zero-based line index
	Input string // Hex text as read
	Guess breaker.Guess
	Err   error
}

// String formats a successful result as "<score>,<plaintext>" on a single
// line, escaping the plaintext with breaker.EscapeLine.
func (r Result) String() string {
	return breaker.FormatScore(r.Guess.Score) + "," + breaker.EscapeLine(r.Guess.Plaintext)
}

// Batch breaks a sequence of hex ciphertexts.
type Batch struct {
	breaker KeyBreaker
	logger  hclog.Logger
}

// Option configures a Batch.
type Option func(*Batch)

// WithLogger sets the logger. Default: a null logger.
func WithLogger(l hclog.Logger) Option {
	return func(b *Batch) {
		b.logger = l
	}
}

// New creates a Batch around kb. A nil kb uses breaker.New().
func New(kb KeyBreaker, opts ...Option) *Batch {
	if kb == nil {
		kb = breaker.New()
	}
	b := &Batch{breaker: kb, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BreakAll returns exactly one Result per line, in input order.
func (b *Batch) BreakAll(lines []string) []Result {
	results := make([]Result, len(lines))
	failed := 0
	for i, line := range lines {
		results[i] = b.breakLine(i, line)
		if results[i].Err != nil {
			failed++
		}
	}
	b.logger.Debug("batch complete", "lines", len(lines), "failed", failed)
	return results
}

// BreakReader reads newline-separated hex from r and breaks each line.
// Only a read failure is returned as an error; per-line failures are in
// the results.
func (b *Batch) BreakReader(r io.Reader) ([]Result, error) {
	var lines []string
	input := bufio.NewScanner(r)
	input.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for input.Scan() {
		lines = append(lines, input.Text())
	}
	if err := input.Err(); err != nil {
		return nil, fmt.Errorf("reading ciphertext lines: %w", err)
	}
	return b.BreakAll(lines), nil
}

func (b *Batch) breakLine(i int, line string) Result {
	res := Result{Index: i, Input: line}

	cipher, err := hexcodec.DecodeString(line)
	if err != nil {
		res.Err = fmt.Errorf("line %d: %w", i+1, err)
		b.logger.Warn("failed to decode line", "line", i+1, "error", err)
		return res
	}

	guess, err := b.breaker.Break(cipher)
	if err != nil {
		res.Err = fmt.Errorf("line %d: %w", i+1, err)
		b.logger.Warn("failed to break line", "line", i+1, "error", err)
		return res
	}

	res.Guess = guess
	b.logger.Trace("line broken", "line", i+1, "key", guess.Key, "score", guess.Score)
	return res
}
