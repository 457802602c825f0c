// Package wyhash implements the final revision of the wyhash hash family and
// its companion wyrand generator.
//
// The package offers one-shot sums over byte slices ([Sum64WithSeed],
// [Sum64WithSecret]), a two-word hash ([Hash64]), a generator of custom
// secret schedules ([MakeSecret]), the wyrand counter generator in pure
// ([Rand]) and stateful ([Source]) form, and converters that reshape raw
// random words into doubles and bounded integers ([U01], [Gau], [U0K]).
//
// Keys that arrive through a bounded staging buffer, as they do when
// hashing is exposed to untrusted callers, go through [Hasher] or the
// [hash.Hash64] adapter [Digest]; both reject keys longer than their
// configured maximum with [ErrKeyTooLarge].
//
// Outputs are bit-exact with the reference design on every platform. The
// hash is not cryptographic and offers no protection against inputs or
// secrets chosen by an attacker.
package wyhash
