package wyhash

import (
	"encoding/binary"
	"hash"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Digest)(nil)
var _ hash.Hash64 = (*Digest)(nil)

// Digest implements [hash.Hash64] on top of a bounded staging buffer.
// Writes accumulate the key; Sum64 hashes everything written so far in one
// pass, so the result equals [Sum64WithSecret] over the concatenated writes.
type Digest struct {
	seed   uint64
	secret Secret
	max    int
	buf    []byte
}

// New64 returns a Digest with seed 0 and the default secret.
func New64() *Digest { return New64WithSecret(0, defaultSecret) }

// New64WithSeed returns a Digest seeded with seed.
func New64WithSeed(seed uint64) *Digest { return New64WithSecret(seed, defaultSecret) }

// New64WithSecret returns a Digest seeded with seed that uses secret.
func New64WithSecret(seed uint64, secret Secret) *Digest {
	return &Digest{seed: seed, secret: secret, max: DefaultMaxKeySize}
}

// SetMaxKeySize changes the staging bound. A negative n disables it. It
// does not discard data already written.
func (d *Digest) SetMaxKeySize(n int) { d.max = n }

// Write appends p to the staged key. If the key would outgrow the bound,
// nothing is written and the error wraps [ErrKeyTooLarge].
func (d *Digest) Write(p []byte) (int, error) {
	if err := checkKeySize(len(d.buf)+len(p), d.max); err != nil {
		return 0, err
	}

	d.buf = append(d.buf, p...)
	return len(p), nil
}

// WriteString is like Write for a string.
func (d *Digest) WriteString(s string) (int, error) {
	if err := checkKeySize(len(d.buf)+len(s), d.max); err != nil {
		return 0, err
	}

	d.buf = append(d.buf, s...)
	return len(s), nil
}

// Sum appends the big-endian hash to b.
func (d *Digest) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, d.Sum64())
}

// Sum64 computes the hash of the staged key.
func (d *Digest) Sum64() uint64 { return sum64(d.buf, d.seed, &d.secret) }

// Reset clears the staged key.
func (d *Digest) Reset() { d.buf = d.buf[:0] }

// Len returns the number of staged bytes.
func (d *Digest) Len() int { return len(d.buf) }

// Size returns the hash size in bytes.
func (d *Digest) Size() int { return 8 }

// BlockSize returns the write block size.
func (d *Digest) BlockSize() int { return 1 }
