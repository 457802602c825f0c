package commands

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"go.dw1.io/x/wyhash"
	"go.dw1.io/x/wyhash/cast"
)

const benchBatch = 1024

type benchOptions struct {
	sizes    []string
	duration time.Duration
}

type benchResult struct {
	Size        int     `json:"size"`
	Ops         int     `json:"ops"`
	NsPerOp     float64 `json:"ns_per_op"`
	BytesPerSec float64 `json:"bytes_per_sec"`
}

func newBenchCommand(a *app) *cobra.Command {
	var opts benchOptions

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure hashing throughput",
		Long: `Hash keys of the given sizes repeatedly for the given duration each and
report the rate. Keys are hashed with the configured seed and secret.

Examples:
  wyhash bench
  wyhash bench --size 16B --size 1MiB --duration 2s`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runBench(a, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.sizes, "size", []string{"16B", "256B", "4KiB", "64KiB"}, "key sizes to measure")
	cmd.Flags().DurationVar(&opts.duration, "duration", time.Second, "time spent on each size")

	return cmd
}

func runBench(a *app, opts benchOptions) error {
	if opts.duration <= 0 {
		return fmt.Errorf("duration must be positive: %s", opts.duration)
	}

	seed, err := a.cfg.HashSeed()
	if err != nil {
		return err
	}

	secret, err := a.cfg.Secret()
	if err != nil {
		return err
	}
	if secret == nil {
		def := wyhash.DefaultSecret()
		secret = &def
	}

	results := make([]benchResult, 0, len(opts.sizes))
	for _, raw := range opts.sizes {
		size, err := parseBenchSize(raw)
		if err != nil {
			return err
		}

		res := measure(size, seed, *secret, opts.duration)
		a.logger.Debug("bench size done", "size", size, "ops", res.Ops)
		results = append(results, res)
	}

	p := a.printer()
	switch {
	case p.isJSON():
		return p.json(results)
	case p.isTable():
		rows := make([]table.Row, len(results))
		for i, r := range results {
			rows[i] = table.Row{humanize.IBytes(uint64(r.Size)), humanize.Comma(int64(r.Ops)), fmt.Sprintf("%.2f", r.NsPerOp), rate(r.BytesPerSec)}
		}
		p.table(table.Row{"Size", "Ops", "ns/op", "Throughput"}, rows, nil)
	default:
		for _, r := range results {
			p.linef("%-8s %12s ops %10.2f ns/op %12s", humanize.IBytes(uint64(r.Size)), humanize.Comma(int64(r.Ops)), r.NsPerOp, rate(r.BytesPerSec))
		}
	}

	return nil
}

func parseBenchSize(raw string) (int, error) {
	size, err := humanize.ParseBytes(raw)
	if err != nil {
		return 0, fmt.Errorf("size %q: %w", raw, err)
	}

	n, err := cast.Narrow[int](size)
	if err != nil {
		return 0, fmt.Errorf("size %q: %w", raw, err)
	}

	return n, nil
}

var benchSink uint64

func measure(size int, seed uint64, secret wyhash.Secret, d time.Duration) benchResult {
	key := make([]byte, size)
	// Source.Read never fails.
	_, _ = wyhash.NewSource(seed).Read(key)

	var ops int
	start := time.Now()
	for time.Since(start) < d {
		for i := 0; i < benchBatch; i++ {
			benchSink ^= wyhash.Sum64WithSecret(key, seed, secret)
		}
		ops += benchBatch
	}
	elapsed := time.Since(start)

	return benchResult{
		Size:        size,
		Ops:         ops,
		NsPerOp:     float64(elapsed.Nanoseconds()) / float64(ops),
		BytesPerSec: float64(size) * float64(ops) / elapsed.Seconds(),
	}
}

func rate(bytesPerSec float64) string {
	return humanize.IBytes(uint64(bytesPerSec)) + "/s"
}
