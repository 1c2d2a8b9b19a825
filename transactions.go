package payments

import (
	"errors"
	"fmt"
)

// RecordType is a typed string identifying the kind of a transaction record.
type RecordType string

// Record types as they appear in the input stream.
const (
	KindDeposit    RecordType = "deposit"
	KindWithdrawal RecordType = "withdrawal"
	KindDispute    RecordType = "dispute"
	KindResolve    RecordType = "resolve"
	KindChargeback RecordType = "chargeback"
)

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a deposit or withdrawal. Dispute, resolve and chargeback
// records reference the TxID of a prior record instead of introducing one.
type TxID uint32

// ErrMalformedRecord reports a record that violates its own structural
// invariants, e.g. a deposit with a non-positive amount. Such records abort
// the run.
var ErrMalformedRecord = errors.New("malformed record")

// Record defines the common interface for the five kinds of transaction
// records the engine processes. The set is closed: the router matches
// exhaustively over the concrete types.
type Record interface {
	What() RecordType // What returns the kind of the record (e.g. "deposit").
	Client() ClientID // Client returns the client the record addresses.
	Tx() TxID         // Tx returns the transaction id the record carries or references.
	Equal(Record) bool
	Validate() error // Validate checks the record's structural invariants.
}

type baseRec struct {
	Kind     RecordType
	ClientID ClientID
	TxID     TxID
}

func (r baseRec) What() RecordType { return r.Kind }
func (r baseRec) Client() ClientID { return r.ClientID }
func (r baseRec) Tx() TxID         { return r.TxID }

// Deposit credits an amount to the client's available funds.
type Deposit struct {
	baseRec
	Amount Amount
}

// NewDeposit creates a new Deposit record.
func NewDeposit(client ClientID, tx TxID, amount Amount) Deposit {
	return Deposit{baseRec: baseRec{Kind: KindDeposit, ClientID: client, TxID: tx}, Amount: amount}
}

func (r Deposit) Equal(other Record) bool {
	o, ok := other.(Deposit)
	return ok && r.baseRec == o.baseRec && r.Amount.Equal(o.Amount)
}

// Validate requires a strictly positive amount.
func (r Deposit) Validate() error {
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: deposit tx %d amount must be positive, got %s", ErrMalformedRecord, r.TxID, r.Amount)
	}
	return nil
}

// Withdrawal debits an amount from the client's available funds.
type Withdrawal struct {
	baseRec
	Amount Amount
}

// NewWithdrawal creates a new Withdrawal record.
func NewWithdrawal(client ClientID, tx TxID, amount Amount) Withdrawal {
	return Withdrawal{baseRec: baseRec{Kind: KindWithdrawal, ClientID: client, TxID: tx}, Amount: amount}
}

func (r Withdrawal) Equal(other Record) bool {
	o, ok := other.(Withdrawal)
	return ok && r.baseRec == o.baseRec && r.Amount.Equal(o.Amount)
}

// Validate requires a strictly positive amount.
func (r Withdrawal) Validate() error {
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: withdrawal tx %d amount must be positive, got %s", ErrMalformedRecord, r.TxID, r.Amount)
	}
	return nil
}

// Dispute claims a prior deposit, freezing its amount pending resolution.
type Dispute struct {
	baseRec
}

// NewDispute creates a new Dispute record referencing a prior deposit.
func NewDispute(client ClientID, tx TxID) Dispute {
	return Dispute{baseRec: baseRec{Kind: KindDispute, ClientID: client, TxID: tx}}
}

func (r Dispute) Equal(other Record) bool {
	o, ok := other.(Dispute)
	return ok && r.baseRec == o.baseRec
}

func (r Dispute) Validate() error { return nil }

// Resolve reverses a dispute, releasing the held amount back to available.
type Resolve struct {
	baseRec
}

// NewResolve creates a new Resolve record referencing a disputed deposit.
func NewResolve(client ClientID, tx TxID) Resolve {
	return Resolve{baseRec: baseRec{Kind: KindResolve, ClientID: client, TxID: tx}}
}

func (r Resolve) Equal(other Record) bool {
	o, ok := other.(Resolve)
	return ok && r.baseRec == o.baseRec
}

func (r Resolve) Validate() error { return nil }

// Chargeback finalizes a dispute against the client, permanently removing
// the held amount and locking the account.
type Chargeback struct {
	baseRec
}

// NewChargeback creates a new Chargeback record referencing a disputed deposit.
func NewChargeback(client ClientID, tx TxID) Chargeback {
	return Chargeback{baseRec: baseRec{Kind: KindChargeback, ClientID: client, TxID: tx}}
}

func (r Chargeback) Equal(other Record) bool {
	o, ok := other.(Chargeback)
	return ok && r.baseRec == o.baseRec
}

func (r Chargeback) Validate() error { return nil }
