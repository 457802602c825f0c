package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"go.dw1.io/x/wyhash/internal/file"
	"go.dw1.io/x/wyhash/internal/vectors"
)

var errVerifyFailed = errors.New("verification failed")

type verifyFailure struct {
	Kind  string `json:"kind"`
	Input string `json:"input"`
	Want  string `json:"want"`
	Got   string `json:"got"`
	Error string `json:"error,omitempty"`
}

type verifySummary struct {
	Source   string          `json:"source"`
	Passed   int             `json:"passed"`
	Total    int             `json:"total"`
	Failures []verifyFailure `json:"failures"`
}

func newVerifyCommand(a *app) *cobra.Command {
	var dumpPath, corpusPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the implementation against the conformance corpus",
		Long: `Run every conformance vector through the library and report mismatches.
By default the embedded corpus is used. --corpus reads a JSON corpus in the
same layout, and --dump reads the text printed by the reference C
test-vector program. Both accept "-" for stdin.

Examples:
  wyhash verify
  wyhash verify --corpus vectors.json
  ./test_vectors | wyhash verify --dump -`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVerify(a, dumpPath, corpusPath)
		},
	}

	cmd.Flags().StringVar(&dumpPath, "dump", "", "reference dump to verify instead of the embedded corpus")
	cmd.Flags().StringVar(&corpusPath, "corpus", "", "JSON corpus to verify instead of the embedded corpus")
	cmd.MarkFlagsMutuallyExclusive("dump", "corpus")

	return cmd
}

func runVerify(a *app, dumpPath, corpusPath string) error {
	set, source, err := loadVectors(a, dumpPath, corpusPath)
	if err != nil {
		return err
	}

	report := vectors.Verify(set)
	failures := report.Failures()

	for _, f := range failures {
		a.logger.Warn("vector mismatch", "kind", f.Kind, "input", f.Input, "want", f.Want, "got", f.Got, "error", f.Err)
	}

	summary := verifySummary{
		Source:   source,
		Passed:   report.Passed(),
		Total:    len(report.Results),
		Failures: make([]verifyFailure, len(failures)),
	}
	for i, f := range failures {
		vf := verifyFailure{Kind: string(f.Kind), Input: f.Input, Want: f.Want, Got: f.Got}
		if f.Err != nil {
			vf.Error = f.Err.Error()
		}
		summary.Failures[i] = vf
	}

	p := a.printer()
	if p.isJSON() {
		if err := p.json(summary); err != nil {
			return err
		}
	} else {
		printVerifyReport(p, report, summary)
	}

	if !report.OK() {
		return fmt.Errorf("%w: %d of %d cases", errVerifyFailed, len(failures), summary.Total)
	}

	return nil
}

func loadVectors(a *app, dumpPath, corpusPath string) (*vectors.Set, string, error) {
	path, decode := dumpPath, vectors.ParseDump
	switch {
	case corpusPath != "":
		path, decode = corpusPath, vectors.Decode
	case dumpPath == "":
		set, err := vectors.Load()
		return set, "embedded", err
	}

	var r io.Reader = a.in
	if path != stdinName {
		f, err := file.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		r = f
	}

	set, err := decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	return set, path, nil
}

func printVerifyReport(p printer, report *vectors.Report, summary verifySummary) {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	status := func(ok bool) string {
		if ok {
			return pass("PASS")
		}
		return fail("FAIL")
	}

	tallies := report.Tallies()

	if p.isTable() {
		rows := make([]table.Row, len(tallies))
		for i, t := range tallies {
			rows[i] = table.Row{t.Kind, t.Passed, t.Total, status(t.Passed == t.Total)}
		}
		p.table(table.Row{"Kind", "Passed", "Total", "Status"}, rows,
			table.Row{summary.Source, summary.Passed, summary.Total, status(report.OK())})
	} else {
		for _, t := range tallies {
			p.linef("%-12s %3d/%-3d %s", t.Kind, t.Passed, t.Total, status(t.Passed == t.Total))
		}
		p.linef("%-12s %3d/%-3d %s", summary.Source, summary.Passed, summary.Total, status(report.OK()))
	}

	for _, f := range summary.Failures {
		p.linef("%s %s: want %s, got %s %s", fail(f.Kind), f.Input, f.Want, f.Got, f.Error)
	}
}
