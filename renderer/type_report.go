package renderer

import (
	"slices"

	"github.com/avrile/payments"
)

// Report is the render model for one processed run: the final account
// snapshots plus the run statistics that produced them.
type Report struct {
	Source   string // input the run was read from, for the title
	Currency string // optional ISO 4217 display currency, e.g. "USD"
	Applied  int
	Ignored  int
	Accounts []payments.Snapshot
	Warnings []string
}

// NewReport captures the state of a processed ledger into a render model.
func NewReport(source, currency string, ledger *payments.Ledger, stats payments.RunStats) *Report {
	return &Report{
		Source:   source,
		Currency: currency,
		Applied:  stats.Applied,
		Ignored:  stats.Ignored,
		Accounts: slices.Collect(ledger.Snapshots()),
		Warnings: stats.Warnings,
	}
}

// Check is the render model for a validation pass over an input file. It only
// looks at structure; no ledger semantics are involved.
type Check struct {
	Source      string
	Records     int
	Deposits    int
	Withdrawals int
	Disputes    int
	Resolves    int
	Chargebacks int
	Err         string // first structural error, empty when the file is clean
}

// Count adds one decoded record to the per-kind tallies.
func (c *Check) Count(rec payments.Record) {
	c.Records++
	switch rec.What() {
	case payments.KindDeposit:
		c.Deposits++
	case payments.KindWithdrawal:
		c.Withdrawals++
	case payments.KindDispute:
		c.Disputes++
	case payments.KindResolve:
		c.Resolves++
	case payments.KindChargeback:
		c.Chargebacks++
	}
}

// OK reports whether the checked file decoded without errors.
func (c *Check) OK() bool { return c.Err == "" }
