// Package hashfmt parses and formats bcrypt's composite hash-string
// encoding: "$2a$cc$" followed by 22 radix-64 characters of salt and 31
// radix-64 characters of (truncated) digest.
package hashfmt

import (
	"errors"
	"fmt"

	"github.com/eksblowfish/bcrypt/internal/eks"
	"github.com/eksblowfish/bcrypt/internal/radix64"
)

const (
	// EncodedSaltLen is the number of radix-64 characters a 16-byte salt
	// encodes to.
	EncodedSaltLen = 22

	// EncodedHashLen is the number of radix-64 characters the 23
	// (of 24) digest bytes bcrypt keeps encode to.
	EncodedHashLen = 31

	// TruncatedDigestSize is the number of raw digest bytes that are
	// actually encoded into a hash string; the 24th byte is discarded by
	// historical convention.
	TruncatedDigestSize = 23

	minLength = 3 + 2 + 1 + EncodedSaltLen // "$2$" + cc + "$" + salt, no hash
)

// ErrMalformed is returned when a hash string fails to match the
// "$2$cc$..." or "$2a$cc$..." shape.
var ErrMalformed = errors.New("hashfmt: malformed hash string")

// Parsed holds the three fields of a bcrypt composite hash string.
type Parsed struct {
	Cost   int
	Salt   [eks.SaltSize]byte
	Digest [TruncatedDigestSize]byte
}

// Format renders cost, salt, and a truncated (23-byte) digest as
// "$2a$cc$salt22hash31". cost must be in [eks.MinCost, eks.MaxCost].
func Format(cost int, salt [eks.SaltSize]byte, digest [TruncatedDigestSize]byte) (string, error) {
	if cost < eks.MinCost || cost > eks.MaxCost {
		return "", fmt.Errorf("%w: cost %d out of range", eks.ErrCostOutOfRange, cost)
	}

	return fmt.Sprintf("$2a$%02d$%s%s",
		cost,
		radix64.Encode(salt[:], len(salt)),
		radix64.Encode(digest[:], len(digest)),
	), nil
}

// Parse parses a bcrypt composite hash string, accepting either the "$2$" or
// "$2a$" version prefix (both decode identically; the core always emits
// "$2a$" — see Format).
func Parse(s string) (*Parsed, error) {
	if len(s) < minLength {
		return nil, fmt.Errorf("%w: too short (%d bytes)", ErrMalformed, len(s))
	}

	if s[0] != '$' {
		return nil, fmt.Errorf("%w: missing leading '$'", ErrMalformed)
	}

	rest := s[1:]

	var version string

	switch {
	case len(rest) >= 2 && rest[0] == '2' && rest[1] == 'a':
		version = "2a"
		rest = rest[2:]
	case len(rest) >= 1 && rest[0] == '2':
		version = "2"
		rest = rest[1:]
	default:
		return nil, fmt.Errorf("%w: unrecognized version tag", ErrMalformed)
	}

	if len(rest) < 1 || rest[0] != '$' {
		return nil, fmt.Errorf("%w: missing separator after version %q", ErrMalformed, version)
	}

	rest = rest[1:]

	if len(rest) < 3 || rest[2] != '$' {
		return nil, fmt.Errorf("%w: missing separator after cost", ErrMalformed)
	}

	cost := 0

	for i := 0; i < 2; i++ {
		c := rest[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: non-numeric cost %q", ErrMalformed, rest[:2])
		}

		cost = cost*10 + int(c-'0')
	}

	if cost < eks.MinCost || cost > eks.MaxCost {
		return nil, fmt.Errorf("%w: cost %d out of range", eks.ErrCostOutOfRange, cost)
	}

	rest = rest[3:]

	if len(rest) < EncodedSaltLen {
		return nil, fmt.Errorf("%w: salt field too short", ErrMalformed)
	}

	saltBytes, err := radix64.Decode(rest[:EncodedSaltLen])
	if err != nil {
		return nil, err
	}

	if len(saltBytes) != eks.SaltSize {
		return nil, fmt.Errorf("%w: decoded salt is %d bytes", ErrMalformed, len(saltBytes))
	}

	p := &Parsed{Cost: cost}
	copy(p.Salt[:], saltBytes)

	hashField := rest[EncodedSaltLen:]
	if len(hashField) > EncodedHashLen {
		hashField = hashField[:EncodedHashLen]
	}

	if len(hashField) > 0 {
		digestBytes, err := radix64.Decode(hashField)
		if err != nil {
			return nil, err
		}

		n := len(digestBytes)
		if n > TruncatedDigestSize {
			n = TruncatedDigestSize
		}

		copy(p.Digest[:], digestBytes[:n])
	}

	return p, nil
}
