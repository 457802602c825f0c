package wyhash

import (
	"fmt"
	"math/bits"
)

// Secret is the four-word constant schedule that parameterizes the hash.
type Secret [4]uint64

// Default secret words.
const (
	k0 = 0xa0761d6478bd642f
	k1 = 0xe7037ed1a0b428db
	k2 = 0x8ebc6af09c88c6e3
	k3 = 0x589965cc75374cc3
)

var defaultSecret = Secret{k0, k1, k2, k3}

// DefaultSecret returns the schedule used when none is given.
func DefaultSecret() Secret { return defaultSecret }

// maxSecretAttempts bounds the candidates tried for a single slot. Observed
// worst cases are a few thousand.
const maxSecretAttempts = 1 << 20

// secretBytes lists every byte with exactly four bits set, so any word built
// from them has a population count of 32.
var secretBytes = [...]byte{
	15, 23, 27, 29, 30, 39, 43, 45, 46, 51, 53, 54, 57, 58, 60, 71, 75,
	77, 78, 83, 85, 86, 89, 90, 92, 99, 101, 102, 105, 106, 108, 113,
	114, 116, 120, 135, 139, 141, 142, 147, 149, 150, 153, 154, 156, 163,
	165, 166, 169, 170, 172, 177, 178, 180, 184, 195, 197, 198, 201, 202,
	204, 209, 210, 212, 216, 225, 226, 228, 232, 240,
}

// MakeSecret derives a secret schedule from seed. The result is a pure
// function of seed.
func MakeSecret(seed uint64) (Secret, error) {
	return makeSecret(seed, maxSecretAttempts)
}

func makeSecret(seed uint64, limit int) (Secret, error) {
	var secret Secret
	state := seed

	for i := range secret {
		accepted := false

		for attempt := 0; attempt < limit; attempt++ {
			var c uint64
			c, state = secretCandidate(state)

			if validSecretWord(c, secret[:i]) {
				secret[i] = c
				accepted = true
				break
			}
		}

		if !accepted {
			return Secret{}, fmt.Errorf("%w: slot %d, seed %#x", ErrSecretExhausted, i, seed)
		}
	}

	return secret, nil
}

// MustMakeSecret is like [MakeSecret] but panics on error.
func MustMakeSecret(seed uint64) Secret {
	secret, err := MakeSecret(seed)
	if err != nil {
		panic(err)
	}

	return secret
}

// Validate reports whether s passes the checks applied to generated
// schedules: every word odd with 32 bits set, and every pair of words
// differing in exactly 32 bits.
func (s Secret) Validate() error {
	for i, w := range s {
		if bits.OnesCount64(w) != 32 {
			return fmt.Errorf("%w: word %d has %d bits set", ErrInvalidSecret, i, bits.OnesCount64(w))
		}
		if !validSecretWord(w, s[:i]) {
			return fmt.Errorf("%w: word %d", ErrInvalidSecret, i)
		}
	}

	return nil
}

// secretCandidate assembles one candidate word from eight wyrand draws.
func secretCandidate(state uint64) (uint64, uint64) {
	var c, r uint64

	for shift := 0; shift < 64; shift += 8 {
		r, state = Rand(state)
		c |= uint64(secretBytes[r%uint64(len(secretBytes))]) << shift
	}

	return c, state
}

func validSecretWord(c uint64, prev []uint64) bool {
	if c&1 == 0 {
		return false
	}

	for _, p := range prev {
		if bits.OnesCount64(p^c) != 32 {
			return false
		}
	}

	return true
}
