package mum

import "math/bits"

// Mul128 returns the low and high halves of the full 128-bit product a*b.
func Mul128(a, b uint64) (lo, hi uint64) {
	hi, lo = bits.Mul64(a, b)
	return lo, hi
}

// Mum multiplies a by b and returns the product split into its low and high
// words, in that order. It is the in-place "_wymum" step of the reference
// design in value form.
func Mum(a, b uint64) (uint64, uint64) {
	return Mul128(a, b)
}

// Mix folds the 128-bit product of a and b into one word.
func Mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}
