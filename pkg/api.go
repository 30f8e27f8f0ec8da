package pkg

import (
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/provide-io/bytekit/go/bytekit/pkg/batch"
	"github.com/provide-io/bytekit/go/bytekit/pkg/breaker"
	"github.com/provide-io/bytekit/go/bytekit/pkg/hexcodec"
	"github.com/provide-io/bytekit/go/bytekit/pkg/operations"
	"github.com/provide-io/bytekit/go/bytekit/pkg/xor"
)

// HexToBase64 converts hex text to standard padded base64.
func HexToBase64(hexText string) (string, error) {
	out, err := operations.Transcode([]byte(hexText), []uint8{operations.OP_HEX}, []uint8{operations.OP_BASE64})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Crack decodes hex ciphertext and recovers its single-byte XOR key.
func Crack(hexText string, opts ...breaker.Option) (breaker.Guess, error) {
	cipher, err := hexcodec.DecodeString(hexText)
	if err != nil {
		return breaker.Guess{}, err
	}
	return breaker.New(opts...).Break(cipher)
}

// Detect breaks every hex line read from r, keeping input order.
func Detect(r io.Reader, logger hclog.Logger, opts ...breaker.Option) ([]batch.Result, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return batch.New(breaker.New(opts...), batch.WithLogger(logger)).BreakReader(r)
}

// EncryptRepeatingHex XORs plaintext with a cycled key and hex-encodes it.
func EncryptRepeatingHex(plaintext, key []byte) (string, error) {
	out, err := xor.Repeating(plaintext, key)
	if err != nil {
		return "", err
	}
	return hexcodec.EncodeToString(out), nil
}

// JoinHexLines rejoins hex wrapped across lines. Only "\n" and "\r\n"
// breaks are removed; other whitespace is left for the decoder to reject.
func JoinHexLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return strings.Join(lines, "")
}
