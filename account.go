package payments

// Account holds the running balances of one client.
//
// available and held never go negative: a withdrawal or a hold that would
// break that is rejected before it is applied. Once locked, the account is
// terminal and no operation mutates it again.
type Account struct {
	available Amount
	held      Amount
	locked    bool
}

// Available returns the funds the client may currently withdraw.
func (a *Account) Available() Amount { return a.available }

// Held returns the funds frozen pending dispute resolution.
func (a *Account) Held() Amount { return a.held }

// Total returns available + held.
func (a *Account) Total() Amount { return a.available.Add(a.held) }

// Locked reports whether a chargeback has permanently locked the account.
func (a *Account) Locked() bool { return a.locked }
