// Package cmd implements the txp CLI application.
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/avrile/payments"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "transactions")
	c.Register(&checkCmd{}, "transactions")
	c.Register(&reportCmd{}, "reports")
	c.Register(&topicCmd{}, "documentation")
}

// defaultInput is the transactions file used when -f is not given.
const defaultInput = "transactions.csv"

// processFile runs the whole transaction stream from filename through a
// fresh ledger. Ignored-record warnings go to diag, one line each.
func processFile(filename string, diag *log.Logger) (*payments.Ledger, payments.RunStats, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, payments.RunStats{}, err
	}
	defer f.Close()

	ledger := payments.NewLedger()
	router := payments.NewRouter(ledger, diag)
	stats, err := router.Process(payments.DecodeRecords(f))
	if err != nil {
		return nil, stats, fmt.Errorf("processing %q: %w", filename, err)
	}
	return ledger, stats, nil
}

// stderrLogger is the diagnostic logger shared by the commands: bare lines
// on stderr, so stdout stays clean for the snapshot output.
func stderrLogger() *log.Logger {
	return log.New(os.Stderr, "", 0)
}
