package payments

import (
	"fmt"
	"iter"
	"log"
)

// Router receives records one at a time, in strict arrival order, and
// dispatches each to the ledger operation matching its kind. Order matters:
// disputes, resolves and chargebacks only make sense relative to records
// already seen.
type Router struct {
	ledger *Ledger
	diag   *log.Logger
}

// NewRouter creates a router over the given ledger. diag receives a line per
// ignored record; nil means the process-wide default logger (stderr).
func NewRouter(ledger *Ledger, diag *log.Logger) *Router {
	if diag == nil {
		diag = log.Default()
	}
	return &Router{ledger: ledger, diag: diag}
}

// Apply validates one record and dispatches it to the ledger. The match over
// record kinds is exhaustive; a type outside the closed set is a programming
// error and fatal.
func (r *Router) Apply(rec Record) Outcome {
	if err := rec.Validate(); err != nil {
		return fatal(err)
	}
	switch v := rec.(type) {
	case Deposit:
		return r.ledger.Deposit(v.Client(), v.Tx(), v.Amount)
	case Withdrawal:
		return r.ledger.Withdraw(v.Client(), v.Tx(), v.Amount)
	case Dispute:
		return r.ledger.DisputeTx(v.Client(), v.Tx())
	case Resolve:
		return r.ledger.ResolveTx(v.Client(), v.Tx())
	case Chargeback:
		return r.ledger.ChargebackTx(v.Client(), v.Tx())
	default:
		return fatal(fmt.Errorf("unsupported record type %T", rec))
	}
}

// RunStats summarizes one processed stream.
type RunStats struct {
	Applied  int
	Ignored  int
	Warnings []string // one reason per ignored record, in arrival order
}

// Process consumes the record stream front to back. Ignored outcomes are
// logged and counted; a fatal outcome (or a decode error from the stream)
// aborts immediately and is returned along with the stats accumulated so
// far. Applied records produce no output by themselves; the final snapshots
// are read from the ledger after Process returns.
func (r *Router) Process(records iter.Seq2[Record, error]) (RunStats, error) {
	var stats RunStats
	for rec, err := range records {
		if err != nil {
			return stats, err
		}
		out := r.Apply(rec)
		switch out.Status {
		case Applied:
			stats.Applied++
		case Ignored:
			stats.Ignored++
			stats.Warnings = append(stats.Warnings, out.Reason)
			r.diag.Printf("warning: %s", out.Reason)
		case Fatal:
			return stats, out.Err
		}
	}
	return stats, nil
}
