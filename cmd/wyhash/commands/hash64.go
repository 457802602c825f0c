package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"go.dw1.io/x/wyhash"
	"go.dw1.io/x/wyhash/cast"
)

func newHash64Command(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hash64 A B",
		Short: "Hash two 64-bit words",
		Long: `Hash two words with the fixed two-word hash. Words are integer literals
of any size and sign, reduced modulo 2^64.

Examples:
  wyhash hash64 -- 1 -1
  wyhash hash64 0xffffffffffffffff 18446744073709551617`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runHash64(a, args[0], args[1])
		},
	}
}

func runHash64(a *app, rawA, rawB string) error {
	x, err := cast.ToUint64N(rawA)
	if err != nil {
		return fmt.Errorf("A: %w", err)
	}

	y, err := cast.ToUint64N(rawB)
	if err != nil {
		return fmt.Errorf("B: %w", err)
	}

	digest := wyhash.Hash64(x, y)

	p := a.printer()
	switch {
	case p.isJSON():
		return p.json(map[string]string{"a": hex64(x), "b": hex64(y), "digest": hex64(digest)})
	case p.isTable():
		p.table(table.Row{"A", "B", "Digest"}, []table.Row{{hex64(x), hex64(y), hex64(digest)}}, nil)
	default:
		p.linef("%s", hex64(digest))
	}

	return nil
}
