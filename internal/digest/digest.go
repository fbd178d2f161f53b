// Package digest implements the bcrypt hash function proper: 64 rounds of
// ECB encryption of a fixed 24-byte constant under an EksBlowfish key
// schedule.
package digest

import (
	"github.com/eksblowfish/bcrypt/internal/blowfish"
	"github.com/eksblowfish/bcrypt/internal/eks"
)

// Size is the length, in bytes, of a raw bcrypt digest.
const Size = 24

// magic is the 24 ASCII bytes "OrpheanBeholderScryDoubt", encrypted 64 times
// in ECB under the derived key schedule to produce the raw digest.
var magic = [Size]byte{
	'O', 'r', 'p', 'h', 'e', 'a', 'n', 'B',
	'e', 'h', 'o', 'l', 'd', 'e', 'r', 'S',
	'c', 'r', 'y', 'D', 'o', 'u', 'b', 't',
}

// Crypt derives an EksBlowfish key schedule from cost, salt, and key, then
// encrypts the magic constant 64 times in ECB under that schedule, returning
// the 24-byte raw digest. cost must be in [eks.MinCost, eks.MaxCost], salt
// must be exactly eks.SaltSize bytes, and key must be 1 to 72 bytes.
func Crypt(cost int, salt, key []byte) ([Size]byte, error) {
	var ct [Size]byte

	state, err := eks.Setup(cost, salt, key)
	if err != nil {
		return ct, err
	}

	ct = magic

	for round := 0; round < 64; round++ {
		for block := 0; block < Size; block += blowfish.BlockSize {
			state.Encrypt(ct[block:block+blowfish.BlockSize], ct[block:block+blowfish.BlockSize])
		}
	}

	return ct, nil
}
