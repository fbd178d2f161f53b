// Package radix64 implements the non-standard radix-64 encoding OpenBSD uses
// for bcrypt salts and digests.
//
// The alphabet is "./A-Za-z0-9" — distinct from RFC 4648 base64, which puts
// 'A'-'Z' first and uses '+'/'/' for its final two symbols. No padding
// character is ever emitted; partial trailing groups of one or two bytes
// encode to two or three characters respectively.
package radix64

import (
	"errors"
	"fmt"
)

const alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrInvalidCharacter is returned when decoding encounters a byte outside
// the radix-64 alphabet (including anything beyond ASCII ordinal 127).
var ErrInvalidCharacter = errors.New("radix64: invalid character")

// ErrShortInput is returned when decoding is given fewer than two
// characters.
var ErrShortInput = errors.New("radix64: input too short")

var decodeTable [256]int8

func init() {
	for i := range decodeTable {
		decodeTable[i] = -1
	}

	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = int8(i)
	}
}

// EncodedLen returns the number of radix-64 characters needed to encode n
// bytes.
func EncodedLen(n int) int {
	switch n % 3 {
	case 1:
		return (n/3)*4 + 2
	case 2:
		return (n/3)*4 + 3
	default:
		return (n / 3) * 4
	}
}

// Encode encodes the first n bytes of src using the OpenBSD radix-64
// alphabet, three input bytes to four output characters, with a shortened
// final group and no padding.
func Encode(src []byte, n int) string {
	out := make([]byte, 0, EncodedLen(n))

	i := 0
	for ; i+3 <= n; i += 3 {
		c0, c1, c2, c3 := encodeGroup(src[i], src[i+1], src[i+2])
		out = append(out, alphabet[c0], alphabet[c1], alphabet[c2], alphabet[c3])
	}

	switch n - i {
	case 1:
		c0, c1, _, _ := encodeGroup(src[i], 0, 0)
		out = append(out, alphabet[c0], alphabet[c1])
	case 2:
		c0, c1, c2, _ := encodeGroup(src[i], src[i+1], 0)
		out = append(out, alphabet[c0], alphabet[c1], alphabet[c2])
	}

	return string(out)
}

func encodeGroup(b0, b1, b2 byte) (c0, c1, c2, c3 byte) {
	c0 = b0 >> 2
	c1 = (b0<<4 | b1>>4) & 0x3f
	c2 = (b1<<2 | b2>>6) & 0x3f
	c3 = b2 & 0x3f

	return
}

// DecodedLen returns the number of bytes decoding n radix-64 characters
// produces. It does not validate n; callers should reject lengths less than
// two before relying on the result.
func DecodedLen(n int) int {
	return (n * 3) / 4
}

// Decode decodes a radix-64 string produced by Encode (or a compatible
// OpenBSD bcrypt encoder). It requires at least two characters and decodes
// each group of four characters to three bytes; a trailing group of two or
// three characters yields one or two bytes, and a lone trailing character
// is ignored. It rejects any character outside the alphabet or above ASCII
// ordinal 127.
func Decode(s string) ([]byte, error) {
	if len(s) < 2 {
		return nil, fmt.Errorf("%w: got %d characters", ErrShortInput, len(s))
	}

	vals := make([]byte, len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c > 127 || decodeTable[c] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
		}

		vals[i] = byte(decodeTable[c])
	}

	out := make([]byte, 0, DecodedLen(len(s)))

	i := 0
	for ; i+4 <= len(vals); i += 4 {
		g := decodeGroup(vals[i], vals[i+1], vals[i+2], vals[i+3])
		out = append(out, g[:]...)
	}

	switch len(vals) - i {
	case 2:
		b := decodeGroup(vals[i], vals[i+1], 0, 0)
		out = append(out, b[0])
	case 3:
		b := decodeGroup(vals[i], vals[i+1], vals[i+2], 0)
		out = append(out, b[0], b[1])
	}

	return out, nil
}

func decodeGroup(v0, v1, v2, v3 byte) [3]byte {
	return [3]byte{
		v0<<2 | v1>>4,
		v1<<4 | v2>>2,
		v2<<6 | v3,
	}
}
