// Package errors holds the sentinel errors shared across bytekit packages.
package errors

import "errors"

var (
	// Hex decoding errors 🔢
	ErrInvalidCharacter = errors.New("❌ invalid hex character")
	ErrInvalidLength    = errors.New("❌ odd number of hex digits")

	// Key errors 🔑
	ErrInvalidKey = errors.New("❌ invalid key")

	// Cryptanalysis errors 🔍
	ErrTextDecode  = errors.New("❌ candidate is not valid text")
	ErrNoCandidate = errors.New("❌ no candidate key produced text")
)
