// Package operations registers reversible byte encodings and runs chains of them.
package operations

import (
	"fmt"
	"io"
	"strings"
)

// Operation constants
const (
	// No operation - raw bytes
	OP_NONE = 0x00

	// Text encodings (0x01-0x0F)
	OP_HEX    = 0x01 // Lowercase hexadecimal
	OP_BASE64 = 0x02 // Standard base64 with padding
)

// Operation is a reversible byte transformation. Apply encodes, Reverse decodes.
type Operation interface {
	// ID returns the operation identifier (e.g., OP_HEX)
	ID() uint8

	// Name returns the human-readable name
	Name() string

	// Apply encodes input data
	Apply(input []byte) ([]byte, error)

	// ApplyStream encodes a stream
	ApplyStream(input io.Reader, output io.Writer) error

	// Reverse decodes input data
	Reverse(input []byte) ([]byte, error)

	// ReverseStream decodes a stream
	ReverseStream(input io.Reader, output io.Writer) error

	// EstimateSize estimates the encoded size given input size
	EstimateSize(inputSize int64) int64
}

// BaseOperation provides common functionality for operations
type BaseOperation struct {
	OpID   uint8
	OpName string
}

func (o *BaseOperation) ID() uint8 {
	return o.OpID
}

func (o *BaseOperation) Name() string {
	return o.OpName
}

func (o *BaseOperation) EstimateSize(inputSize int64) int64 {
	return inputSize
}

// Registry maps operation IDs to implementations
var Registry = make(map[uint8]Operation)

// Register registers an operation implementation
func Register(op Operation) {
	Registry[op.ID()] = op
}

// Get retrieves an operation by ID
func Get(id uint8) (Operation, error) {
	op, ok := Registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown operation: 0x%02x", id)
	}
	return op, nil
}

// Lookup retrieves an operation by case-insensitive name
func Lookup(name string) (Operation, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, op := range Registry {
		if op.Name() == want {
			return op, nil
		}
	}
	return nil, fmt.Errorf("unknown operation: %s", name)
}

// GetName returns the name of an operation by ID
func GetName(id uint8) string {
	switch id {
	case OP_NONE:
		return "NONE"
	case OP_HEX:
		return "HEX"
	case OP_BASE64:
		return "BASE64"
	default:
		return fmt.Sprintf("UNKNOWN_%02x", id)
	}
}
