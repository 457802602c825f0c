package wyhash

import (
	"encoding/binary"
	"math/rand/v2"

	"go.dw1.io/x/wyhash/internal/mum"
)

const (
	// randIncrement is odd, so the state walks all 2^64 values.
	randIncrement = 0xa0761d6478bd642f
	randXor       = 0xe7037ed1a0b428db
)

var _ rand.Source = (*Source)(nil)

// Rand advances the wyrand state by one step. It returns the generated
// value and the next state without mutating anything.
func Rand(state uint64) (value, next uint64) {
	next = state + randIncrement
	return mum.Mix(next, next^randXor), next
}

// Source is a wyrand stream. The zero value is a stream seeded with 0.
//
// A Source must not be used from multiple goroutines without external
// synchronization; give each goroutine its own Source instead.
type Source struct {
	State uint64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source { return &Source{State: seed} }

// Uint64 returns the next value and advances the state in place.
func (s *Source) Uint64() uint64 {
	var v uint64
	v, s.State = Rand(s.State)
	return v
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 { return U01(s.Uint64()) }

// NormFloat64 returns an approximately standard-normal value in [-3, 3).
func (s *Source) NormFloat64() float64 { return Gau(s.Uint64()) }

// Uint64n returns a value in [0, k). It returns 0 when k is 0.
func (s *Source) Uint64n(k uint64) uint64 { return U0K(s.Uint64(), k) }

// Read fills p with generated bytes, eight per step in little-endian order.
// It always returns len(p), nil.
func (s *Source) Read(p []byte) (int, error) {
	n := len(p)

	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.Uint64())
		p = p[8:]
	}

	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], s.Uint64())
		copy(p, tail[:])
	}

	return n, nil
}
