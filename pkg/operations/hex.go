package operations

import (
	"fmt"
	"io"

	"github.com/provide-io/bytekit/go/bytekit/pkg/hexcodec"
)

func init() {
	Register(NewHexOperation())
}

// HexOperation encodes bytes as lowercase hex
type HexOperation struct {
	BaseOperation
}

// NewHexOperation creates a new HEX operation
func NewHexOperation() *HexOperation {
	return &HexOperation{
		BaseOperation: BaseOperation{
			OpID:   OP_HEX,
			OpName: "HEX",
		},
	}
}

// Apply hex-encodes data
func (o *HexOperation) Apply(input []byte) ([]byte, error) {
	return hexcodec.Encode(input), nil
}

// ApplyStream hex-encodes a stream
func (o *HexOperation) ApplyStream(input io.Reader, output io.Writer) error {
	buf := make([]byte, 4096)
	for {
		n, err := input.Read(buf)
		if n > 0 {
			if _, werr := output.Write(hexcodec.Encode(buf[:n])); werr != nil {
				return fmt.Errorf("writing hex stream: %w", werr)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading stream: %w", err)
		}
	}
}

// Reverse decodes hex data
func (o *HexOperation) Reverse(input []byte) ([]byte, error) {
	return hexcodec.Decode(input)
}

// ReverseStream decodes a hex stream
func (o *HexOperation) ReverseStream(input io.Reader, output io.Writer) error {
	if _, err := io.Copy(output, hexcodec.NewDecoder(input)); err != nil {
		return fmt.Errorf("decoding hex stream: %w", err)
	}
	return nil
}

// EstimateSize returns the exact hex length
func (o *HexOperation) EstimateSize(inputSize int64) int64 {
	return inputSize * 2
}
