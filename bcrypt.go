// Package bcrypt implements the bcrypt password-hashing algorithm
// (Provos & Mazières, 1999): a fixed 24-byte digest derived from 64 rounds
// of ECB encryption under an EksBlowfish ("expensive key schedule")
// key setup, framed in OpenBSD's composite "$2a$cc$salt22hash31" hash
// string.
//
// The package is split into five internal layers that mirror the
// algorithm's own structure: internal/blowfish (the cipher primitive),
// internal/eks (the cost-gated key schedule), internal/digest (the
// 64-round hash function proper), internal/radix64 (the non-standard
// base64 variant bcrypt's hash strings use), and internal/hashfmt (the
// composite string's parser and formatter). This file is the only
// exported surface: it normalizes passwords into key bytes, wires the
// layers together, and exposes the hash/check/generate-salt contract
// applications actually call.
package bcrypt

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/eksblowfish/bcrypt/internal/digest"
	"github.com/eksblowfish/bcrypt/internal/eks"
	"github.com/eksblowfish/bcrypt/internal/hashfmt"
)

// DefaultCost is used by HashPassword when no cost is given. It is a fixed
// value, not an adaptive benchmark: picking a wall-clock target for the
// calling machine is a concern this package leaves to its caller.
const DefaultCost = 12

// MinCost and MaxCost bound the accepted cost factor, re-exported from
// internal/eks so callers never need to import it directly.
const (
	MinCost = eks.MinCost
	MaxCost = eks.MaxCost
)

// maxPasswordLen is the number of UTF-8 bytes of a password that are
// actually absorbed into the key; bytes beyond this are silently ignored,
// matching the historical $2a$ convention.
const maxPasswordLen = 71

// ErrCostOutOfRange is returned when a requested cost falls outside
// [MinCost, MaxCost]. HashStringMalformed parse failures and invalid
// radix-64 characters surface as the wrapped errors from internal/hashfmt
// and internal/radix64 respectively; this one is re-exported from
// internal/eks so callers can compare against a single stable value
// regardless of which layer detected the bad cost. A non-matching password
// is never an error — CheckPassword and CheckRawDigest report it as a plain
// false return, per spec.
var ErrCostOutOfRange = eks.ErrCostOutOfRange

// GenerateSalt returns 16 cryptographically random bytes suitable for use
// as a bcrypt salt.
func GenerateSalt() ([eks.SaltSize]byte, error) {
	var salt [eks.SaltSize]byte

	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return salt, fmt.Errorf("bcrypt: reading salt: %w", err)
	}

	return salt, nil
}

// HashPassword hashes password at DefaultCost using a freshly generated
// salt, returning the composite "$2a$cc$..." hash string.
func HashPassword(password []byte) (string, error) {
	return HashPasswordCost(password, DefaultCost)
}

// HashPasswordCost hashes password at the given cost using a freshly
// generated salt, returning the composite "$2a$cc$..." hash string.
func HashPasswordCost(password []byte, cost int) (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}

	return HashPasswordSalt(password, salt[:], cost)
}

// HashPasswordSalt deterministically hashes password under the given salt
// and cost, returning the composite "$2a$cc$..." hash string. salt must be
// exactly 16 bytes and cost must be in [MinCost, MaxCost].
func HashPasswordSalt(password, salt []byte, cost int) (string, error) {
	var saltArr [eks.SaltSize]byte
	if len(salt) != eks.SaltSize {
		return "", fmt.Errorf("%w: got %d bytes", eks.ErrSaltLength, len(salt))
	}

	copy(saltArr[:], salt)

	key := passwordKey(password)

	raw, err := digest.Crypt(cost, saltArr[:], key)
	if err != nil {
		return "", err
	}

	var truncated [hashfmt.TruncatedDigestSize]byte
	copy(truncated[:], raw[:hashfmt.TruncatedDigestSize])

	return hashfmt.Format(cost, saltArr, truncated)
}

// RawDigest computes the deterministic 24-byte raw bcrypt digest for
// password under the given salt and cost, without any hash-string framing.
// salt must be exactly 16 bytes and cost must be in [MinCost, MaxCost].
func RawDigest(password, salt []byte, cost int) ([digest.Size]byte, error) {
	var raw [digest.Size]byte

	if len(salt) != eks.SaltSize {
		return raw, fmt.Errorf("%w: got %d bytes", eks.ErrSaltLength, len(salt))
	}

	return digest.Crypt(cost, salt, passwordKey(password))
}

// CheckPassword reports whether password matches the composite hash string
// expectedHash. It parses expectedHash, recomputes the digest under the
// parsed (cost, salt) pair, and compares the resulting (salt, digest) pair
// against the parsed one in constant time — not the reformatted strings;
// cost is not compared, as both sides use the parsed cost — so that a legacy "$2$" hash verifies correctly even though this
// package always emits "$2a$" (see the package's design notes on why a
// string comparison would silently break legacy hashes).
//
// A parse failure on expectedHash is returned as an error. A well-formed
// but non-matching hash returns (false, nil).
func CheckPassword(password []byte, expectedHash string) (bool, error) {
	parsed, err := hashfmt.Parse(expectedHash)
	if err != nil {
		return false, err
	}

	raw, err := digest.Crypt(parsed.Cost, parsed.Salt[:], passwordKey(password))
	if err != nil {
		return false, err
	}

	var gotDigest [hashfmt.TruncatedDigestSize]byte
	copy(gotDigest[:], raw[:hashfmt.TruncatedDigestSize])

	return tupleEqual(parsed.Salt, parsed.Digest, parsed.Salt, gotDigest), nil
}

// CheckRawDigest reports, in constant time, whether the 24-byte digest
// produced by hashing password under salt and cost equals expected. This is
// the raw-digest counterpart to CheckPassword, for callers that store
// (salt, cost, digest) separately rather than as a composite string.
func CheckRawDigest(password, salt []byte, cost int, expected [digest.Size]byte) (bool, error) {
	got, err := RawDigest(password, salt, cost)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(got[:], expected[:]) == 1, nil
}

// tupleEqual compares two (salt, digest) tuples in constant time. Cost is
// deliberately excluded: both sides of the comparison are derived from the
// same parsed cost, so comparing it again would be redundant, not safer.
func tupleEqual(saltA [eks.SaltSize]byte, digestA [hashfmt.TruncatedDigestSize]byte,
	saltB [eks.SaltSize]byte, digestB [hashfmt.TruncatedDigestSize]byte,
) bool {
	var bufA, bufB [eks.SaltSize + hashfmt.TruncatedDigestSize]byte

	copy(bufA[:], saltA[:])
	copy(bufA[eks.SaltSize:], digestA[:])
	copy(bufB[:], saltB[:])
	copy(bufB[eks.SaltSize:], digestB[:])

	return subtle.ConstantTimeCompare(bufA[:], bufB[:]) == 1
}

// passwordKey normalizes a UTF-8 password into bcrypt key bytes: truncate
// to maxPasswordLen bytes, then append a trailing zero byte. An empty
// password yields the single-byte key []byte{0}.
func passwordKey(password []byte) []byte {
	n := len(password)
	if n > maxPasswordLen {
		n = maxPasswordLen
	}

	key := make([]byte, n+1)
	copy(key, password[:n])

	return key
}
