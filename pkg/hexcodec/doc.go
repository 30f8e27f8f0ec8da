// Package hexcodec decodes and encodes hexadecimal text.
//
// Two hex digits encode one byte, high nibble first. Digits are
// case-insensitive on input; Encode always emits lowercase.
//
// # Errors
//
// Decoding fails on the first byte outside [0-9a-fA-F] with an
// *InvalidCharacterError carrying the byte and its zero-based index. An
// odd digit count is only reported once all input has been consumed, so a
// bad character anywhere in the input wins over a bad length:
//
//	hexcodec.DecodeString("68656C6C6F")  // "hello", nil
//	hexcodec.DecodeString("6656C6C6F")   // nil, ErrInvalidLength
//	hexcodec.DecodeString("6865 6C6C6F") // nil, &InvalidCharacterError{Char: ' ', Index: 4}
//
// The streaming Decoder applies the same rules across Read calls, with
// indices counted from the start of the stream.
package hexcodec
