package wyhash_test

import (
	"errors"
	"math"
	"testing"

	"go.dw1.io/x/wyhash"
)

func TestU01(t *testing.T) {
	tests := []struct {
		r    uint64
		want float64
	}{
		{r: 0, want: 0},
		{r: 1 << 12, want: 1.0 / (1 << 52)},
		{r: 1 << 63, want: 0.5},
		{r: math.MaxUint64, want: 1 - 1.0/(1<<52)},
	}

	for _, tt := range tests {
		if got := wyhash.U01(tt.r); got != tt.want {
			t.Fatalf("U01(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}

	src := wyhash.NewSource(99)
	for i := 0; i < 100000; i++ {
		if v := wyhash.U01(src.Uint64()); v < 0 || v >= 1 {
			t.Fatalf("U01 out of [0, 1): %v", v)
		}
	}
}

func TestU01Monotonic(t *testing.T) {
	prev := -1.0
	for r := uint64(0); r < 1<<20; r += 1 << 12 {
		v := wyhash.U01(r << 32)
		if v <= prev {
			t.Fatalf("U01 not increasing at %#x: %v <= %v", r<<32, v, prev)
		}
		prev = v
	}
}

func TestGau(t *testing.T) {
	tests := []struct {
		r    uint64
		want float64
	}{
		{r: 0, want: -3},
		{r: 1, want: -3 + 1.0/(1<<20)},
		{r: math.MaxUint64, want: 3*float64(1<<21-1)/(1<<20) - 3},
	}

	for _, tt := range tests {
		if got := wyhash.Gau(tt.r); got != tt.want {
			t.Fatalf("Gau(%#x) = %v, want %v", tt.r, got, tt.want)
		}
	}

	src := wyhash.NewSource(7)
	const n = 200000
	var sum, sumSq float64
	for i := 0; i < n; i++ {
		v := wyhash.Gau(src.Uint64())
		if v < -3 || v >= 3 {
			t.Fatalf("Gau out of [-3, 3): %v", v)
		}
		sum += v
		sumSq += v * v
	}

	mean := sum / n
	variance := sumSq/n - mean*mean
	if math.Abs(mean) > 0.02 {
		t.Fatalf("Gau mean = %v, want ~0", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Fatalf("Gau variance = %v, want ~1", variance)
	}
}

func TestU0K(t *testing.T) {
	bounds := []uint64{1, 2, 3, 10, 1000, 1 << 32, 1<<63 + 1, math.MaxUint64}
	src := wyhash.NewSource(3)

	for _, k := range bounds {
		for i := 0; i < 10000; i++ {
			if v := wyhash.U0K(src.Uint64(), k); v >= k {
				t.Fatalf("U0K(_, %d) = %d, out of range", k, v)
			}
		}
		if v := wyhash.U0K(math.MaxUint64, k); v != k-1 {
			t.Fatalf("U0K(max, %d) = %d, want %d", k, v, k-1)
		}
		if v := wyhash.U0K(0, k); v != 0 {
			t.Fatalf("U0K(0, %d) = %d, want 0", k, v)
		}
	}

	if v := wyhash.U0K(math.MaxUint64, 0); v != 0 {
		t.Fatalf("U0K(_, 0) = %d, want 0", v)
	}
}

func TestU0KUniform(t *testing.T) {
	const (
		k = 10
		n = 100000
	)

	var counts [k]int
	src := wyhash.NewSource(11)
	for i := 0; i < n; i++ {
		counts[wyhash.U0K(src.Uint64(), k)]++
	}

	for bucket, c := range counts {
		if c < n/k*9/10 || c > n/k*11/10 {
			t.Fatalf("bucket %d has %d hits, expected about %d", bucket, c, n/k)
		}
	}
}

func TestU0KN(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		got, err := wyhash.U0KN(math.MaxUint64, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 9 {
			t.Fatalf("got %d want 9", got)
		}
	})

	t.Run("uint8", func(t *testing.T) {
		src := wyhash.NewSource(5)
		for i := 0; i < 1000; i++ {
			got, err := wyhash.U0KN(src.Uint64(), uint8(200))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got >= 200 {
				t.Fatalf("got %d, out of range", got)
			}
		}
	})

	t.Run("matchesU0K", func(t *testing.T) {
		r := uint64(0x111cb3a78f59a58e)
		got, err := wyhash.U0KN(r, int64(1_000_003))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if uint64(got) != wyhash.U0K(r, 1_000_003) {
			t.Fatalf("U0KN = %d, U0K = %d", got, wyhash.U0K(r, 1_000_003))
		}
	})

	t.Run("invalidBound", func(t *testing.T) {
		for _, k := range []int{0, -1, math.MinInt} {
			if _, err := wyhash.U0KN(1, k); !errors.Is(err, wyhash.ErrInvalidBound) {
				t.Fatalf("k=%d: expected ErrInvalidBound, got %v", k, err)
			}
		}
		if _, err := wyhash.U0KN(1, uint(0)); !errors.Is(err, wyhash.ErrInvalidBound) {
			t.Fatalf("k=uint(0): expected ErrInvalidBound, got %v", err)
		}
	})
}
