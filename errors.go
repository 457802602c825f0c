package wyhash

import "errors"

var (
	// ErrKeyTooLarge is returned when a key does not fit the staging buffer.
	ErrKeyTooLarge = errors.New("wyhash: key is too long")

	// ErrSecretExhausted is returned when the secret generator cannot find
	// a valid candidate within its retry budget.
	ErrSecretExhausted = errors.New("wyhash: secret candidates exhausted")

	// ErrInvalidSecret is returned by [Secret.Validate].
	ErrInvalidSecret = errors.New("wyhash: invalid secret")

	// ErrInvalidBound is returned by [U0KN] for a bound that is not positive.
	ErrInvalidBound = errors.New("wyhash: bound must be positive")
)
