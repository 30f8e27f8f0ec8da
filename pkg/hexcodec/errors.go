package hexcodec

import (
	"fmt"

	bkerrors "github.com/provide-io/bytekit/go/bytekit/pkg/errors"
)

// ErrInvalidLength is returned when the input holds an odd number of digits.
var ErrInvalidLength = bkerrors.ErrInvalidLength

// InvalidCharacterError reports a byte that is not a hex digit.
type InvalidCharacterError struct {
	Char  byte // Offending input byte
	Index int  // Zero-based position in the input
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("hexcodec: invalid character %q at index %d", rune(e.Char), e.Index)
}

func (e *InvalidCharacterError) Unwrap() error {
	return bkerrors.ErrInvalidCharacter
}
