package wyhash

import "fmt"

// DefaultMaxKeySize is the key size bound used when none is configured.
const DefaultMaxKeySize = 64 << 10

// Hasher hashes keys with a fixed seed and secret, rejecting keys larger
// than its staging bound. The zero value hashes with seed 0, the default
// secret and [DefaultMaxKeySize].
//
// A Hasher holds no mutable state and is safe for concurrent use.
type Hasher struct {
	// Seed selects the hash instance.
	Seed uint64

	// Secret overrides [DefaultSecret] when non-nil.
	Secret *Secret

	// MaxKeySize bounds the key length in bytes. Zero selects
	// DefaultMaxKeySize; a negative value disables the bound.
	MaxKeySize int
}

// Sum64 returns the hash of key, or an error wrapping [ErrKeyTooLarge] if
// key is longer than the bound. A key of exactly the bound is accepted.
func (h *Hasher) Sum64(key []byte) (uint64, error) {
	if err := checkKeySize(len(key), h.maxKeySize()); err != nil {
		return 0, err
	}

	return sum64(key, h.Seed, h.secret()), nil
}

// SumString64 is [Hasher.Sum64] for a string key.
func (h *Hasher) SumString64(key string) (uint64, error) {
	return h.Sum64([]byte(key))
}

// CheckSize returns an error wrapping [ErrKeyTooLarge] if h would reject a
// key of n bytes.
func (h *Hasher) CheckSize(n int) error {
	return checkKeySize(n, h.maxKeySize())
}

// New64 returns a [Digest] configured like h.
func (h *Hasher) New64() *Digest {
	return &Digest{seed: h.Seed, secret: *h.secret(), max: h.maxKeySize()}
}

func (h *Hasher) maxKeySize() int {
	if h.MaxKeySize == 0 {
		return DefaultMaxKeySize
	}

	return h.MaxKeySize
}

func (h *Hasher) secret() *Secret {
	if h.Secret == nil {
		return &defaultSecret
	}

	return h.Secret
}

func checkKeySize(n, limit int) error {
	if limit >= 0 && n > limit {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrKeyTooLarge, n, limit)
	}

	return nil
}
