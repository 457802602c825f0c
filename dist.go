package wyhash

import (
	"fmt"

	"go.dw1.io/x/wyhash/cast"
	"go.dw1.io/x/wyhash/internal/mum"
)

const (
	u01Norm = 1.0 / (1 << 52)
	gauNorm = 1.0 / (1 << 20)
	gauMask = 1<<21 - 1
)

// U01 maps r to a double in [0, 1) using its top 52 bits.
func U01(r uint64) float64 {
	return float64(r>>12) * u01Norm
}

// Gau maps r to an approximately standard-normal double by summing three
// 21-bit fields of r. The result lies in [-3, 3).
func Gau(r uint64) float64 {
	return float64((r&gauMask)+((r>>21)&gauMask)+((r>>42)&gauMask))*gauNorm - 3.0
}

// U0K maps r to [0, k) by taking the high word of r*k. It returns 0 when k
// is 0.
func U0K(r, k uint64) uint64 {
	_, hi := mum.Mum(r, k)
	return hi
}

// U0KN is [U0K] for any integer type. The bound must be positive.
func U0KN[T cast.Integer](r uint64, k T) (T, error) {
	if k <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBound, k)
	}

	v, err := cast.Narrow[T](U0K(r, cast.Wrap(k)))
	if err != nil {
		return 0, fmt.Errorf("wyhash: narrowing bounded value: %w", err)
	}

	return v, nil
}
