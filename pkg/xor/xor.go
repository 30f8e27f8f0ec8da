// Package xor implements single-byte and repeating-key XOR.
package xor

import (
	bkerrors "github.com/provide-io/bytekit/go/bytekit/pkg/errors"
)

// SingleByte writes src XOR key into dst.
// dst must be at least len(src) bytes; dst and src may be the same slice.
func SingleByte(dst, src []byte, key byte) {
	for i := range src {
		dst[i] = src[i] ^ key
	}
}

// Byte returns a new buffer holding data XOR key.
func Byte(data []byte, key byte) []byte {
	result := make([]byte, len(data))
	SingleByte(result, data, key)
	return result
}

// Repeating XORs data with key, cycling the key across the data length.
// An empty key is rejected with ErrInvalidKey.
func Repeating(data, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, bkerrors.ErrInvalidKey
	}
	result := make([]byte, len(data))
	for i := range data {
		result[i] = data[i] ^ key[i%len(key)]
	}
	return result, nil
}
