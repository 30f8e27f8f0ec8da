package operations

import (
	"encoding/base64"
	"fmt"
	"io"
)

func init() {
	Register(NewBase64Operation())
}

// Base64Operation implements standard padded base64
type Base64Operation struct {
	BaseOperation
}

// NewBase64Operation creates a new BASE64 operation
func NewBase64Operation() *Base64Operation {
	return &Base64Operation{
		BaseOperation: BaseOperation{
			OpID:   OP_BASE64,
			OpName: "BASE64",
		},
	}
}

// Apply base64-encodes data
func (o *Base64Operation) Apply(input []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.EncodedLen(len(input)))
	base64.StdEncoding.Encode(out, input)
	return out, nil
}

// ApplyStream base64-encodes a stream
func (o *Base64Operation) ApplyStream(input io.Reader, output io.Writer) error {
	enc := base64.NewEncoder(base64.StdEncoding, output)
	if _, err := io.Copy(enc, input); err != nil {
		enc.Close()
		return fmt.Errorf("encoding base64 stream: %w", err)
	}
	// Close flushes the final partial group and its padding.
	return enc.Close()
}

// Reverse decodes base64 data
func (o *Base64Operation) Reverse(input []byte) ([]byte, error) {
	out := make([]byte, base64.StdEncoding.DecodedLen(len(input)))
	n, err := base64.StdEncoding.Decode(out, input)
	if err != nil {
		return nil, fmt.Errorf("decoding base64: %w", err)
	}
	return out[:n], nil
}

// ReverseStream decodes a base64 stream
func (o *Base64Operation) ReverseStream(input io.Reader, output io.Writer) error {
	if _, err := io.Copy(output, base64.NewDecoder(base64.StdEncoding, input)); err != nil {
		return fmt.Errorf("decoding base64 stream: %w", err)
	}
	return nil
}

// EstimateSize returns the exact padded base64 length
func (o *Base64Operation) EstimateSize(inputSize int64) int64 {
	return (inputSize + 2) / 3 * 4
}
