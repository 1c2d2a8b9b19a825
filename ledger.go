package payments

import "fmt"

// Ledger owns all mutable state of one run: the per-client accounts and the
// dispute tracker. A Ledger is constructed per run and passed explicitly to
// the router, so tests can build isolated instances. It is not safe for
// concurrent use; the whole engine is single-threaded by design.
type Ledger struct {
	accounts map[ClientID]*Account
	tracker  *Tracker
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[ClientID]*Account),
		tracker:  NewTracker(),
	}
}

// account returns the client's account, creating it on first reference with
// zero balances and unlocked.
func (l *Ledger) account(id ClientID) *Account {
	acct, ok := l.accounts[id]
	if !ok {
		acct = &Account{}
		l.accounts[id] = acct
	}
	return acct
}

// Account returns the client's account if it was ever referenced.
func (l *Ledger) Account(id ClientID) (*Account, bool) {
	acct, ok := l.accounts[id]
	return acct, ok
}

// Tracker exposes the dispute tracker, mainly for inspection in tests.
func (l *Ledger) Tracker() *Tracker { return l.tracker }

// Deposit credits amount to the client's available funds.
//
// The transaction id is registered before anything else: id reuse is a
// data-integrity violation and fatal even when the account is locked. A
// deposit to a locked account is ignored, its id still consumed.
func (l *Ledger) Deposit(client ClientID, tx TxID, amount Amount) Outcome {
	if err := l.tracker.Register(tx, client, KindDeposit, amount); err != nil {
		return fatal(err)
	}
	acct := l.account(client)
	if acct.locked {
		return ignored("deposit tx %d: account %d is locked", tx, client)
	}
	if acct.Total().Add(amount).Overflows() {
		return fatal(fmt.Errorf("deposit tx %d for client %d: %w", tx, client, ErrOverflow))
	}
	acct.available = acct.available.Add(amount)
	return applied()
}

// Withdraw debits amount from the client's available funds. Held funds are
// not spendable: a withdrawal exceeding available is ignored, not applied.
func (l *Ledger) Withdraw(client ClientID, tx TxID, amount Amount) Outcome {
	if err := l.tracker.Register(tx, client, KindWithdrawal, amount); err != nil {
		return fatal(err)
	}
	acct := l.account(client)
	if acct.locked {
		return ignored("withdrawal tx %d: account %d is locked", tx, client)
	}
	if acct.available.LessThan(amount) {
		return ignored("withdrawal tx %d: insufficient funds for client %d (available %s, requested %s)",
			tx, client, acct.available, amount)
	}
	acct.available = acct.available.Sub(amount)
	return applied()
}

// DisputeTx places a dispute on a prior deposit, moving its amount from
// available to held. Total is unchanged.
func (l *Ledger) DisputeTx(client ClientID, tx TxID) Outcome {
	acct := l.account(client)
	if acct.locked {
		return ignored("dispute of tx %d: account %d is locked", tx, client)
	}
	amount, err := l.tracker.Dispute(client, tx, acct.available)
	if err != nil {
		return ignored("dispute of tx %d for client %d: %v", tx, client, err)
	}
	acct.available = acct.available.Sub(amount)
	acct.held = acct.held.Add(amount)
	return applied()
}

// ResolveTx releases a disputed deposit's amount from held back to
// available. Total is unchanged.
func (l *Ledger) ResolveTx(client ClientID, tx TxID) Outcome {
	acct := l.account(client)
	if acct.locked {
		return ignored("resolve of tx %d: account %d is locked", tx, client)
	}
	amount, err := l.tracker.Resolve(client, tx)
	if err != nil {
		return ignored("resolve of tx %d for client %d: %v", tx, client, err)
	}
	acct.held = acct.held.Sub(amount)
	acct.available = acct.available.Add(amount)
	return applied()
}

// ChargebackTx finalizes a dispute: the held amount leaves the system
// entirely and the account is locked for good.
func (l *Ledger) ChargebackTx(client ClientID, tx TxID) Outcome {
	acct := l.account(client)
	if acct.locked {
		return ignored("chargeback of tx %d: account %d is locked", tx, client)
	}
	amount, err := l.tracker.Chargeback(client, tx)
	if err != nil {
		return ignored("chargeback of tx %d for client %d: %v", tx, client, err)
	}
	acct.held = acct.held.Sub(amount)
	acct.locked = true
	return applied()
}
