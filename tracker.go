package payments

import (
	"errors"
	"fmt"
)

// DisputeState is the dispute lifecycle state of a registered transaction.
//
// Only deposits ever leave Normal: Normal -> Disputed -> Normal (resolve)
// or Normal -> Disputed -> ChargedBack (terminal).
type DisputeState int

const (
	StateNormal DisputeState = iota
	StateDisputed
	StateChargedBack
)

func (s DisputeState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDisputed:
		return "disputed"
	case StateChargedBack:
		return "charged-back"
	default:
		return "unknown"
	}
}

// ErrDuplicateTx reports a transaction id reused for a new deposit or
// withdrawal. Ids are unique across the whole stream, so reuse is a
// data-integrity violation that aborts the run.
var ErrDuplicateTx = errors.New("duplicate transaction id")

// Reject reasons for dispute lifecycle operations. These are expected
// business conditions: the router reports them as warnings and continues.
var (
	errUnknownTx        = errors.New("transaction id is not a known deposit or withdrawal")
	errClientMismatch   = errors.New("transaction belongs to a different client")
	errNotDeposit       = errors.New("only deposits can be disputed")
	errAlreadyDisputed  = errors.New("transaction is already under dispute")
	errNotDisputed      = errors.New("transaction is not under dispute")
	errChargedBack      = errors.New("transaction was already charged back")
	errInsufficientHold = errors.New("available funds do not cover the disputed amount")
)

// trackedTx is the tracker's view of one deposit or withdrawal.
type trackedTx struct {
	client ClientID
	kind   RecordType
	amount Amount
	state  DisputeState
}

// Tracker registers every deposit and withdrawal seen in the stream and
// drives the dispute state machine over them. Withdrawals are registered
// too, so a dispute naming one is rejected as wrong-kind instead of
// unknown, and id reuse is always detectable.
type Tracker struct {
	txs map[TxID]*trackedTx
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{txs: make(map[TxID]*trackedTx)}
}

// Register records a new deposit or withdrawal under its transaction id.
// Reusing an id is fatal.
func (t *Tracker) Register(tx TxID, client ClientID, kind RecordType, amount Amount) error {
	if _, exists := t.txs[tx]; exists {
		return fmt.Errorf("%w: tx %d reused for a new %s", ErrDuplicateTx, tx, kind)
	}
	t.txs[tx] = &trackedTx{client: client, kind: kind, amount: amount, state: StateNormal}
	return nil
}

// lookup finds the entry for tx and checks it belongs to client.
func (t *Tracker) lookup(client ClientID, tx TxID) (*trackedTx, error) {
	entry, ok := t.txs[tx]
	if !ok {
		return nil, errUnknownTx
	}
	if entry.client != client {
		return nil, errClientMismatch
	}
	return entry, nil
}

// Dispute transitions tx from Normal to Disputed and returns the amount to
// move from available to held. available is the owning account's spendable
// balance; a hold larger than that is refused so available never goes
// negative.
func (t *Tracker) Dispute(client ClientID, tx TxID, available Amount) (Amount, error) {
	entry, err := t.lookup(client, tx)
	if err != nil {
		return Amount{}, err
	}
	if entry.kind != KindDeposit {
		return Amount{}, errNotDeposit
	}
	switch entry.state {
	case StateDisputed:
		return Amount{}, errAlreadyDisputed
	case StateChargedBack:
		return Amount{}, errChargedBack
	}
	if available.LessThan(entry.amount) {
		return Amount{}, errInsufficientHold
	}
	entry.state = StateDisputed
	return entry.amount, nil
}

// Resolve transitions tx from Disputed back to Normal and returns the amount
// to release from held back to available. A resolved deposit can be disputed
// again later.
func (t *Tracker) Resolve(client ClientID, tx TxID) (Amount, error) {
	entry, err := t.lookup(client, tx)
	if err != nil {
		return Amount{}, err
	}
	switch entry.state {
	case StateNormal:
		return Amount{}, errNotDisputed
	case StateChargedBack:
		return Amount{}, errChargedBack
	}
	entry.state = StateNormal
	return entry.amount, nil
}

// Chargeback transitions tx from Disputed to ChargedBack and returns the
// amount to remove from held. The transition is terminal: no further
// dispute, resolve or chargeback may reference tx.
func (t *Tracker) Chargeback(client ClientID, tx TxID) (Amount, error) {
	entry, err := t.lookup(client, tx)
	if err != nil {
		return Amount{}, err
	}
	switch entry.state {
	case StateNormal:
		return Amount{}, errNotDisputed
	case StateChargedBack:
		return Amount{}, errChargedBack
	}
	entry.state = StateChargedBack
	return entry.amount, nil
}

// State returns the dispute state of tx, if known.
func (t *Tracker) State(tx TxID) (DisputeState, bool) {
	entry, ok := t.txs[tx]
	if !ok {
		return StateNormal, false
	}
	return entry.state, true
}
