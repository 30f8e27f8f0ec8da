package xor

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bkerrors "github.com/provide-io/bytekit/go/bytekit/pkg/errors"
	"github.com/provide-io/bytekit/go/bytekit/pkg/hexcodec"
)

func TestSingleByte(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		key      byte
		expected []byte
	}{
		{name: "zero key", src: []byte("hello world"), key: 0, expected: []byte("hello world")},
		{name: "zeros", src: []byte{0, 0, 0, 0}, key: 1, expected: []byte{1, 1, 1, 1}},
		{name: "mixed", src: []byte{12, 34, 56, 78}, key: 90, expected: []byte{12 ^ 90, 34 ^ 90, 56 ^ 90, 78 ^ 90}},
		{name: "empty", src: []byte{}, key: 0xff, expected: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]byte, len(tt.src))
			SingleByte(got, tt.src, tt.key)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSingleByte_InPlace(t *testing.T) {
	buf := []byte("abc")
	SingleByte(buf, buf, 0x20)
	assert.Equal(t, []byte("ABC"), buf)
}

// Property: xor(xor(b, k), k) == b
func TestProperty_Involution(t *testing.T) {
	property := func(data []byte, key byte) bool {
		return bytes.Equal(Byte(Byte(data, key), key), data)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestRepeating_ICE(t *testing.T) {
	plaintext := "Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal"
	want := "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"

	got, err := Repeating([]byte(plaintext), []byte("ICE"))
	require.NoError(t, err)
	assert.Equal(t, want, hexcodec.EncodeToString(got))
}

func TestRepeating_EmptyKey(t *testing.T) {
	_, err := Repeating([]byte("data"), nil)
	assert.ErrorIs(t, err, bkerrors.ErrInvalidKey)

	_, err = Repeating([]byte("data"), []byte{})
	assert.ErrorIs(t, err, bkerrors.ErrInvalidKey)
}

func TestRepeating_EmptyData(t *testing.T) {
	got, err := Repeating(nil, []byte("key"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// Property: repeating XOR is its own inverse for any non-empty key
func TestProperty_RepeatingInvolution(t *testing.T) {
	property := func(data, key []byte) bool {
		if len(key) == 0 {
			return true
		}
		once, err := Repeating(data, key)
		if err != nil {
			return false
		}
		twice, err := Repeating(once, key)
		if err != nil {
			return false
		}
		return bytes.Equal(twice, data)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
