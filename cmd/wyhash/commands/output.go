package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"go.dw1.io/x/wyhash/internal/config"
	"go.dw1.io/x/wyhash/internal/json"
)

// printer renders command results in the configured output format.
type printer struct {
	format string
	w      io.Writer
}

func (p printer) isJSON() bool  { return p.format == config.FormatJSON }
func (p printer) isTable() bool { return p.format == config.FormatTable }

func (p printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return nil
}

func (p printer) table(header table.Row, rows []table.Row, footer table.Row) {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(header)

	for _, row := range rows {
		tbl.AppendRow(row)
	}

	if footer != nil {
		tbl.AppendFooter(footer)
	}

	fmt.Fprintln(p.w, tbl.Render())
}

func (p printer) linef(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func hex64(v uint64) string {
	return fmt.Sprintf("0x%016x", v)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
