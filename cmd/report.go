package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/avrile/payments/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	inputFile string
	currency  string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "process a transaction stream and render a human-readable report"
}
func (*reportCmd) Usage() string {
	return `txp report [-f <file>] [-currency <code>]

  Processes the transaction stream like 'process', but renders the final
  accounts as a markdown report for the terminal instead of machine-readable
  CSV. Warnings appear in the report rather than on stderr.

Usage Examples:
# Report on the default transactions.csv, balances in dollars.
$ txp report -currency USD

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "f", defaultInput, "Transactions file to report on.")
	f.StringVar(&c.currency, "currency", "", "Optional ISO 4217 display currency for balances, e.g. USD.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// Warnings end up in the report body, so the live diagnostics are muted.
	ledger, stats, err := processFile(c.inputFile, log.New(io.Discard, "", 0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := renderer.NewReport(c.inputFile, c.currency, ledger, stats)
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
