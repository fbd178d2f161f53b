// Package eks implements EksBlowfish, the "expensive key schedule" variant of
// Blowfish's key setup that bcrypt builds on.
//
// ExpandKey absorbs a key and a 16-byte (or empty) salt into a Blowfish
// state by XORing key bytes into the P-array and then re-encrypting the
// P-array and S-boxes block by block, folding in the salt as it goes. Setup
// repeats that process 2^cost+1 times, alternating (salt, key) with
// (zero, key) and (zero, salt), which is what makes bcrypt's key schedule
// deliberately slow.
package eks

import (
	"errors"
	"fmt"

	"github.com/eksblowfish/bcrypt/internal/blowfish"
)

// MinCost and MaxCost bound the cost factor: the number of ExpandKey
// rekeyings performed during Setup is 2^cost.
const (
	MinCost = 4
	MaxCost = 31

	// SaltSize is the only valid non-zero salt length.
	SaltSize = 16

	minKeySize = 1
	maxKeySize = 72
)

// ErrCostOutOfRange is returned when a cost factor falls outside [MinCost,
// MaxCost].
var ErrCostOutOfRange = errors.New("eks: cost factor out of range")

// ErrSaltLength is returned when a salt has the wrong length: ExpandKey
// accepts an empty or SaltSize-byte salt, Setup only a SaltSize-byte one.
var ErrSaltLength = errors.New("eks: salt must be 16 bytes")

// ErrKeyLength is returned when a key is empty or longer than 72 bytes.
var ErrKeyLength = errors.New("eks: key must be 1 to 72 bytes")

var zero16 [SaltSize]byte

// ExpandKey absorbs key and salt into s's P-array and S-boxes. salt must be
// either empty or exactly SaltSize bytes; key must be 1 to 72 bytes. The key
// is treated as cyclic at byte granularity; the salt, if non-empty, toggles
// between its two 8-byte halves once per encrypted block, i.e. once for each
// pair of the 18 P-array words and 1024 S-box words produced.
func ExpandKey(s *blowfish.State, salt, key []byte) error {
	if len(key) < minKeySize || len(key) > maxKeySize {
		return fmt.Errorf("%w: got %d bytes", ErrKeyLength, len(key))
	}

	if len(salt) != 0 && len(salt) != SaltSize {
		return fmt.Errorf("%w: got %d bytes", ErrSaltLength, len(salt))
	}

	foldKey(s, key)

	var block [blowfish.BlockSize]byte

	saltOff := 0

	next := func() {
		if len(salt) != 0 {
			for i := 0; i < blowfish.BlockSize; i++ {
				block[i] ^= salt[saltOff+i]
			}

			saltOff = (saltOff + blowfish.BlockSize) % SaltSize
		}

		s.Encrypt(block[:], block[:])
	}

	for i := 0; i < 18; i += 2 {
		next()
		s.P[i] = beWord(block[0:4])
		s.P[i+1] = beWord(block[4:8])
	}

	for j := 0; j < 4; j++ {
		for i := 0; i < 256; i += 2 {
			next()
			s.S[j][i] = beWord(block[0:4])
			s.S[j][i+1] = beWord(block[4:8])
		}
	}

	return nil
}

// foldKey XORs 32-bit, big-endian, cyclically-repeating chunks of key into
// each of the 18 P-array words.
func foldKey(s *blowfish.State, key []byte) {
	pos := 0

	for i := 0; i < 18; i++ {
		var word uint32
		for k := 0; k < 4; k++ {
			word = word<<8 | uint32(key[pos])
			pos++

			if pos >= len(key) {
				pos = 0
			}
		}

		s.P[i] ^= word
	}
}

func beWord(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Setup performs bcrypt's EksBlowfishSetup: a canonically-seeded state is
// absorbed with (salt, key) once, then rekeyed 2^cost times alternating
// (zero, key) and (zero, salt). The loop counter is uint64 so that cost up
// to MaxCost (2^31 iterations) never wraps — a signed 32-bit counter bound
// by 1<<31 overflows and silently skips the loop entirely.
func Setup(cost int, salt, key []byte) (*blowfish.State, error) {
	if cost < MinCost || cost > MaxCost {
		return nil, fmt.Errorf("%w: got %d", ErrCostOutOfRange, cost)
	}

	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrSaltLength, len(salt))
	}

	s := blowfish.New()

	if err := ExpandKey(s, salt, key); err != nil {
		return nil, err
	}

	var rounds uint64 = 1 << uint(cost)

	for r := uint64(0); r < rounds; r++ {
		if err := ExpandKey(s, zero16[:], key); err != nil {
			return nil, err
		}

		if err := ExpandKey(s, zero16[:], salt); err != nil {
			return nil, err
		}
	}

	return s, nil
}
