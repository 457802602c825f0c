// Package cast normalizes integers crossing into the wyhash domain.
//
// Every value a caller hands over (a seed typed on a command line, a bound
// decoded from JSON, an arbitrary-precision [big.Int]) is reduced modulo 2^64
// and reinterpreted as unsigned, so -1 becomes 0xffffffffffffffff and
// 2^64+1 becomes 1. Out-of-range values are defined behaviour, not errors.
//
// The opposite direction, narrowing a 64-bit result back into a smaller
// caller type, is checked with [safemath]. Inputs that are not integers at
// all are coerced with [cast] before parsing.
package cast
