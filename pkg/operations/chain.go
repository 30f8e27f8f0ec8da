package operations

import (
	"fmt"
	"strings"
)

// ParseChain parses a pipe-separated operation string such as "hex|base64".
// An empty string or "raw" is the empty chain.
func ParseChain(opString string) ([]uint8, error) {
	opString = strings.TrimSpace(opString)
	if opString == "" || strings.ToLower(opString) == "raw" {
		return nil, nil
	}

	var operations []uint8
	for _, part := range strings.Split(opString, "|") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		op, err := Lookup(part)
		if err != nil {
			return nil, fmt.Errorf("parsing chain %q: %w", opString, err)
		}
		operations = append(operations, op.ID())
	}
	return operations, nil
}

// ChainToString converts an operation chain to its pipe-separated form.
func ChainToString(operations []uint8) string {
	if len(operations) == 0 {
		return "raw"
	}
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = strings.ToLower(GetName(op))
	}
	return strings.Join(names, "|")
}

// ApplyChain applies a chain of operations to data
func ApplyChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	for _, opID := range operations {
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("applying %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// ReverseChain reverses a chain of operations on data
func ReverseChain(data []byte, operations []uint8) ([]byte, error) {
	current := data

	// Apply operations in reverse order
	for i := len(operations) - 1; i >= 0; i-- {
		opID := operations[i]
		op, err := Get(opID)
		if err != nil {
			return nil, fmt.Errorf("operation 0x%02x: %w", opID, err)
		}

		result, err := op.Reverse(current)
		if err != nil {
			return nil, fmt.Errorf("reversing %s: %w", op.Name(), err)
		}

		current = result
	}

	return current, nil
}

// Transcode decodes data with the from chain, then encodes it with the to chain.
func Transcode(data []byte, from, to []uint8) ([]byte, error) {
	raw, err := ReverseChain(data, from)
	if err != nil {
		return nil, err
	}
	return ApplyChain(raw, to)
}
