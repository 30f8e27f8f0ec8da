package hexcodec

const lowerDigits = "0123456789abcdef"

// nibble maps a hex digit to its value.
func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Decode decodes hex digits from src.
//
// The length check is deferred until every byte has been validated.
func Decode(src []byte) ([]byte, error) {
	dst := make([]byte, 0, len(src)/2)
	var (
		buf  byte
		half bool
	)
	for i, c := range src {
		v, ok := nibble(c)
		if !ok {
			return nil, &InvalidCharacterError{Char: c, Index: i}
		}
		if !half {
			buf = v << 4
			half = true
			continue
		}
		dst = append(dst, buf|v)
		half = false
	}
	if half {
		return nil, ErrInvalidLength
	}
	return dst, nil
}

// DecodeString decodes the hex string s.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int { return n * 2 }

// Encode encodes src as lowercase hex.
func Encode(src []byte) []byte {
	dst := make([]byte, EncodedLen(len(src)))
	for i, b := range src {
		dst[i*2] = lowerDigits[b>>4]
		dst[i*2+1] = lowerDigits[b&0x0f]
	}
	return dst
}

// EncodeToString returns the lowercase hex encoding of src.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}
