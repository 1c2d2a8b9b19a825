package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avrile/payments"
	"github.com/avrile/payments/renderer"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	inputFile string
}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "validate the structure of a transaction file without processing it"
}
func (*checkCmd) Usage() string {
	return `txp check [-f <file>]

  Decodes every row of the transaction file and reports per-kind counts and
  the first structural error, if any. No account state is computed, so a
  check never warns about business conditions like overdrafts.

Usage Examples:
# Check the default transactions.csv.
$ txp check

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "f", defaultInput, "Transactions file to check.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := os.Open(c.inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	check := &renderer.Check{Source: c.inputFile}
	for rec, err := range payments.DecodeRecords(in) {
		if err != nil {
			check.Err = err.Error()
			break
		}
		check.Count(rec)
	}

	printMarkdown(renderer.RenderCheck(check))
	if !check.OK() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
