package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/avrile/payments"
	"github.com/google/subcommands"
)

// processCmd holds the flags for the 'process' subcommand.
type processCmd struct {
	inputFile string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "process a transaction stream and print the final account states"
}
func (*processCmd) Usage() string {
	return `txp process [-f <file>]

  Reads the transaction stream front to back, applies every record, and
  writes the final state of each client account to stdout as CSV. Records
  that cannot be applied (overdrafts, disputes on unknown transactions,
  anything on a frozen account) are skipped with a warning on stderr.

  A reused transaction id or an out-of-range balance aborts the run.

Usage Examples:
# Process the default transactions.csv.
$ txp process > accounts.csv

# Process a specific file.
$ txp process -f january.csv

`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFile, "f", defaultInput, "Transactions file to process.")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, _, err := processFile(c.inputFile, stderrLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := payments.EncodeSnapshots(os.Stdout, ledger.Snapshots()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
