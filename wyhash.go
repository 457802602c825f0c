package wyhash

import (
	"encoding/binary"
	"unsafe"

	"go.dw1.io/x/wyhash/internal/mum"
)

// Sum64 returns the wyhash of data with seed 0 and the default secret.
func Sum64(data []byte) uint64 { return sum64(data, 0, &defaultSecret) }

// Sum64WithSeed returns the wyhash of data with the provided seed.
func Sum64WithSeed(data []byte, seed uint64) uint64 { return sum64(data, seed, &defaultSecret) }

// Sum64WithSecret returns the wyhash of data with the provided seed and
// secret schedule.
func Sum64WithSecret(data []byte, seed uint64, secret Secret) uint64 {
	return sum64(data, seed, &secret)
}

// String64 returns the wyhash of the bytes of s with the provided seed.
func String64(s string, seed uint64) uint64 {
	return sum64(unsafe.Slice(unsafe.StringData(s), len(s)), seed, &defaultSecret)
}

// Hash64 hashes the two words a and b with the default secret.
func Hash64(a, b uint64) uint64 {
	a, b = mum.Mum(a^k0, b^k1)
	return mum.Mix(a^k0, b^k1)
}

// sum64 is the variable-length core. Keys up to 16 bytes are packed into two
// words without reading past the end; longer keys are consumed in 48-byte
// stripes over three lanes, then 16-byte steps, and the final 16 bytes are
// always re-read as two (possibly overlapping) words.
func sum64(p []byte, seed uint64, s *Secret) uint64 {
	n := len(p)
	seed ^= mum.Mix(seed^s[0], s[1])

	var a, b uint64

	switch {
	case n == 0:
	case n < 4:
		a = uint64(p[0])<<16 | uint64(p[n>>1])<<8 | uint64(p[n-1])
	case n <= 16:
		off := (n >> 3) << 2
		a = r4(p)<<32 | r4(p[off:])
		b = r4(p[n-4:])<<32 | r4(p[n-4-off:])
	default:
		i, off := n, 0
		if i > 48 {
			see1, see2 := seed, seed
			for i > 48 {
				seed = mum.Mix(r8(p[off:])^s[1], r8(p[off+8:])^seed)
				see1 = mum.Mix(r8(p[off+16:])^s[2], r8(p[off+24:])^see1)
				see2 = mum.Mix(r8(p[off+32:])^s[3], r8(p[off+40:])^see2)
				off += 48
				i -= 48
			}
			seed ^= see1 ^ see2
		}
		for i > 16 {
			seed = mum.Mix(r8(p[off:])^s[1], r8(p[off+8:])^seed)
			off += 16
			i -= 16
		}
		a = r8(p[off+i-16:])
		b = r8(p[off+i-8:])
	}

	a, b = mum.Mum(a^s[1], b^seed)
	return mum.Mix(a^s[0]^uint64(n), b^s[1])
}

func r4(p []byte) uint64 { return uint64(binary.LittleEndian.Uint32(p)) }

func r8(p []byte) uint64 { return binary.LittleEndian.Uint64(p) }
