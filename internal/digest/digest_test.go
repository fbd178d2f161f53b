package digest

import (
	"testing"

	"github.com/codahale/gubbins/assert"
	"github.com/eksblowfish/bcrypt/internal/eks"
	"github.com/eksblowfish/bcrypt/internal/radix64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func mustDecodeSalt(t *testing.T, s string) []byte {
	t.Helper()

	b, err := radix64.Decode(s)
	if err != nil {
		t.Fatal(err)
	}

	return b
}

func TestCryptKnownVector(t *testing.T) {
	t.Parallel()

	salt := mustDecodeSalt(t, "DCq7YPn5Rq63x1Lad4cll.")

	got, err := Crypt(6, salt, []byte{0})
	if err != nil {
		t.Fatal(err)
	}

	want, err := radix64.Decode("TV4S6ytwfsfvkgY8jIucDrjc8deX1s.")
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "raw digest (truncated)", want, got[:len(want)])
}

func TestCryptDeterministic(t *testing.T) {
	t.Parallel()

	salt := make([]byte, eks.SaltSize)

	a, err := Crypt(4, salt, []byte("password\x00"))
	if err != nil {
		t.Fatal(err)
	}

	b, err := Crypt(4, salt, []byte("password\x00"))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "digest", a, b)
}

func TestCryptDiffersBySalt(t *testing.T) {
	t.Parallel()

	key := []byte("password\x00")

	saltA := make([]byte, eks.SaltSize)

	saltB := make([]byte, eks.SaltSize)
	saltB[0] = 1

	a, err := Crypt(4, saltA, key)
	if err != nil {
		t.Fatal(err)
	}

	b, err := Crypt(4, saltB, key)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "digests differ", false, a == b)
}

func TestCryptRejectsBadCost(t *testing.T) {
	t.Parallel()

	salt := make([]byte, eks.SaltSize)

	_, err := Crypt(eks.MaxCost+1, salt, []byte{0})

	assert.Equal(t, "error", eks.ErrCostOutOfRange, err, cmpopts.EquateErrors())
}
