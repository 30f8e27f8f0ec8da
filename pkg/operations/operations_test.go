package operations

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provide-io/bytekit/go/bytekit/pkg/hexcodec"
)

func TestRegistry(t *testing.T) {
	for _, id := range []uint8{OP_HEX, OP_BASE64} {
		op, err := Get(id)
		require.NoError(t, err)
		assert.Equal(t, id, op.ID())
		assert.Equal(t, GetName(id), op.Name())
	}

	_, err := Get(0x7f)
	assert.Error(t, err)
	assert.Equal(t, "UNKNOWN_7f", GetName(0x7f))
}

func TestParseChain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []uint8
		wantErr  bool
	}{
		{name: "empty", input: "", expected: nil},
		{name: "raw", input: "RAW", expected: nil},
		{name: "single", input: "hex", expected: []uint8{OP_HEX}},
		{name: "pair", input: "hex|base64", expected: []uint8{OP_HEX, OP_BASE64}},
		{name: "spaces", input: " Base64 | HEX ", expected: []uint8{OP_BASE64, OP_HEX}},
		{name: "unknown", input: "hex|gzip", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChain(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	assert.Equal(t, "raw", ChainToString(nil))
	assert.Equal(t, "hex|base64", ChainToString([]uint8{OP_HEX, OP_BASE64}))
}

// Base64 cases from hex input, including both padding lengths.
func TestTranscode_HexToBase64(t *testing.T) {
	tests := []struct {
		name     string
		hex      string
		expected string
	}{
		{name: "no padding", hex: "68656C6C6F6D", expected: "aGVsbG9t"},
		{name: "one pad", hex: "68656C6C6F6DA3D2", expected: "aGVsbG9to9I="},
		{name: "two pads", hex: "68656C6C6F6DA3", expected: "aGVsbG9tow=="},
		{
			name:     "cryptopals",
			hex:      "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d",
			expected: "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transcode([]byte(tt.hex), []uint8{OP_HEX}, []uint8{OP_BASE64})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestTranscode_DecodeError(t *testing.T) {
	_, err := Transcode([]byte("6865 6C"), []uint8{OP_HEX}, []uint8{OP_BASE64})
	var charErr *hexcodec.InvalidCharacterError
	require.True(t, errors.As(err, &charErr))
	assert.Contains(t, err.Error(), "reversing HEX")
}

func TestChain_RoundTrip(t *testing.T) {
	chain := []uint8{OP_HEX, OP_BASE64, OP_HEX}
	data := []byte("Burning 'em, if you ain't quick and nimble")

	encoded, err := ApplyChain(data, chain)
	require.NoError(t, err)
	decoded, err := ReverseChain(encoded, chain)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestStreams(t *testing.T) {
	data := []byte("I go crazy when I hear a cymbal")

	for _, id := range []uint8{OP_HEX, OP_BASE64} {
		op, err := Get(id)
		require.NoError(t, err)

		t.Run(op.Name(), func(t *testing.T) {
			var encoded bytes.Buffer
			require.NoError(t, op.ApplyStream(bytes.NewReader(data), &encoded))

			want, err := op.Apply(data)
			require.NoError(t, err)
			assert.Equal(t, string(want), encoded.String())
			assert.Equal(t, int64(len(want)), op.EstimateSize(int64(len(data))))

			var decoded bytes.Buffer
			require.NoError(t, op.ReverseStream(&encoded, &decoded))
			assert.Equal(t, data, decoded.Bytes())
		})
	}
}

func TestHexReverseStream_InvalidLength(t *testing.T) {
	var out bytes.Buffer
	err := NewHexOperation().ReverseStream(strings.NewReader("abc"), &out)
	assert.ErrorIs(t, err, hexcodec.ErrInvalidLength)
}
