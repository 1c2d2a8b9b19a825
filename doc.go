// Package payments implements an in-memory account-ledger engine for an
// ordered stream of financial transaction records.
//
// The engine consumes deposits, withdrawals, disputes, resolves and
// chargebacks, keyed by client and transaction id, and produces one final
// snapshot per client: available funds, held funds, total and a locked flag.
//
// The moving parts are:
//   - Amount: exact fixed-point arithmetic (shopspring/decimal) with
//     round-half-to-even applied only when values leave the engine.
//   - Ledger: the per-run owner of all mutable state, with one operation
//     per record kind.
//   - Tracker: the dispute lifecycle state machine over registered
//     transaction ids.
//   - Router: strict in-order dispatch, classifying every application as
//     applied, ignored-with-warning or fatal.
//
// Processing is single-threaded and synchronous: correctness of the dispute
// state machine depends on a record's referent existing, in the right state,
// at the time of reference. The package holds no global state; construct a
// Ledger and Router per run.
//
// This package is the foundation of the `txp` command-line tool, which adds
// the CSV ingestion and output collaborators around the core.
package payments
