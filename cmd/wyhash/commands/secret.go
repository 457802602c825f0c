package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"go.dw1.io/x/wyhash"
	"go.dw1.io/x/wyhash/cast"
)

type secretRecord struct {
	Seed   string    `json:"seed"`
	Secret [4]string `json:"secret"`
}

func newSecretCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "secret SEED...",
		Short: "Derive hash secrets from seeds",
		Long: `Derive a four-word secret for each seed. Every word is odd with 32 set
bits and every pair of words differs in exactly 32 bits.

Examples:
  wyhash secret -- 0 1 -1
  wyhash --format table secret 123`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSecret(a, args)
		},
	}
}

func runSecret(a *app, args []string) error {
	records := make([]secretRecord, 0, len(args))

	for _, arg := range args {
		seed, err := cast.ToUint64N(arg)
		if err != nil {
			return fmt.Errorf("seed %q: %w", arg, err)
		}

		secret, err := wyhash.MakeSecret(seed)
		if err != nil {
			return err
		}

		rec := secretRecord{Seed: hex64(seed)}
		for i, w := range secret {
			rec.Secret[i] = hex64(w)
		}
		records = append(records, rec)
	}

	p := a.printer()
	switch {
	case p.isJSON():
		return p.json(records)
	case p.isTable():
		rows := make([]table.Row, len(records))
		for i, rec := range records {
			rows[i] = table.Row{rec.Seed, rec.Secret[0], rec.Secret[1], rec.Secret[2], rec.Secret[3]}
		}
		p.table(table.Row{"Seed", "S0", "S1", "S2", "S3"}, rows, nil)
	default:
		for _, rec := range records {
			p.linef("%s => %s, %s, %s, %s", rec.Seed, rec.Secret[0], rec.Secret[1], rec.Secret[2], rec.Secret[3])
		}
	}

	return nil
}
