package cast

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrNotInteger is returned by [ToUint64N] when v has no integral value.
var ErrNotInteger = errors.New("cast: value is not an integer")

var two64 = new(big.Int).Lsh(big.NewInt(1), 64)

// AsUint64N returns x modulo 2^64 as an unsigned word. Negative values wrap
// the two's-complement way. A nil x is treated as zero.
func AsUint64N(x *big.Int) uint64 {
	if x == nil {
		return 0
	}

	return new(big.Int).Mod(x, two64).Uint64()
}

// Wrap reinterprets a native integer as an unsigned 64-bit word.
func Wrap[T Integer](v T) uint64 {
	return uint64(v)
}

// ToUint64N converts v to a 64-bit word, wrapping modulo 2^64.
//
// Native integers and [big.Int] values are wrapped directly. Strings are
// parsed as signed integer literals with an optional 0x, 0o or 0b prefix.
// Floats must be integral. Anything else is first coerced to a string
// with [cast.ToE].
func ToUint64N(v any) (uint64, error) {
	switch x := v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: <nil>", ErrNotInteger)
	case int:
		return Wrap(x), nil
	case int8:
		return Wrap(x), nil
	case int16:
		return Wrap(x), nil
	case int32:
		return Wrap(x), nil
	case int64:
		return Wrap(x), nil
	case uint:
		return Wrap(x), nil
	case uint8:
		return Wrap(x), nil
	case uint16:
		return Wrap(x), nil
	case uint32:
		return Wrap(x), nil
	case uint64:
		return x, nil
	case uintptr:
		return Wrap(x), nil
	case *big.Int:
		if x == nil {
			return 0, fmt.Errorf("%w: nil *big.Int", ErrNotInteger)
		}
		return AsUint64N(x), nil
	case big.Int:
		return AsUint64N(&x), nil
	case float32:
		return floatToUint64N(float64(x))
	case float64:
		return floatToUint64N(x)
	case string:
		return parseUint64N(x)
	default:
		s, err := cast.ToE[string](v)
		if err != nil {
			return 0, fmt.Errorf("%w: %T", ErrNotInteger, v)
		}
		return parseUint64N(s)
	}
}

// Narrow converts a 64-bit word to the caller's integer type T, failing
// with [safemath.ErrTruncation] when the value does not fit.
func Narrow[T Integer](v uint64) (T, error) {
	return safemath.ConvertAny[T](v)
}

// parseUint64N parses a signed integer literal of any magnitude.
func parseUint64N(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)

	x, ok := new(big.Int).SetString(trimmed, 0)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotInteger, s)
	}

	return AsUint64N(x), nil
}

func floatToUint64N(f float64) (uint64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %v", ErrNotInteger, f)
	}

	x, _ := big.NewFloat(f).Int(nil)

	return AsUint64N(x), nil
}
