package radix64

import (
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 32; n++ {
		src := make([]byte, n)
		for i := range src {
			src[i] = byte(i*37 + n)
		}

		enc := Encode(src, n)

		got, err := Decode(enc)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}

		assert.Equal(t, "round trip", src, got[:n])
	}
}

func TestEncodedLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "16 bytes", 22, EncodedLen(16))
	assert.Equal(t, "23 bytes", 31, EncodedLen(23))
	assert.Equal(t, "3 bytes", 4, EncodedLen(3))
	assert.Equal(t, "1 byte", 2, EncodedLen(1))
	assert.Equal(t, "2 bytes", 3, EncodedLen(2))
}

func TestDecodedLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "22 chars", 16, DecodedLen(22))
	assert.Equal(t, "31 chars", 23, DecodedLen(31))
}

func TestDecode22CharsYields16Bytes(t *testing.T) {
	t.Parallel()

	got, err := Decode("DCq7YPn5Rq63x1Lad4cll.")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded length", 16, len(got))
}

func TestDecode31CharsYields23Bytes(t *testing.T) {
	t.Parallel()

	got, err := Decode("TV4S6ytwfsfvkgY8jIucDrjc8deX1s.")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "decoded length", 23, len(got))
}

func TestAlphabetOnlyCharactersEmitted(t *testing.T) {
	t.Parallel()

	const alphabet = "./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	src := make([]byte, 48)
	for i := range src {
		src[i] = byte(i * 53)
	}

	enc := Encode(src, len(src))

	for _, c := range enc {
		if !containsRune(alphabet, c) {
			t.Fatalf("character %q outside alphabet", c)
		}
	}
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}

	return false
}

func TestDecodeRejectsInvalidCharacter(t *testing.T) {
	t.Parallel()

	_, err := Decode("++invalidchars++")

	assert.Equal(t, "error", ErrInvalidCharacter, err, cmpopts.EquateErrors())
}

func TestDecodeRejectsHighByte(t *testing.T) {
	t.Parallel()

	_, err := Decode("ab\x80c")

	assert.Equal(t, "error", ErrInvalidCharacter, err, cmpopts.EquateErrors())
}

func TestDecodeRejectsShortInput(t *testing.T) {
	t.Parallel()

	_, err := Decode("a")

	assert.Equal(t, "error", ErrShortInput, err, cmpopts.EquateErrors())
}
