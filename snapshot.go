package payments

import (
	"iter"
	"maps"
	"slices"
)

// Snapshot is the final view of one client account, with every amount
// already rounded half-to-even to the output precision.
type Snapshot struct {
	Client    ClientID
	Available Amount
	Held      Amount
	Total     Amount
	Locked    bool
}

// snapshot builds the rounded view of one account. Available, held and the
// exact total are each rounded independently from the exact balances.
func snapshot(id ClientID, acct *Account) Snapshot {
	return Snapshot{
		Client:    id,
		Available: acct.available.Round(),
		Held:      acct.held.Round(),
		Total:     acct.Total().Round(),
		Locked:    acct.locked,
	}
}

// Snapshots iterates over the final per-client snapshots in ascending client
// id. The order carries no business meaning but is deterministic so runs can
// be compared.
func (l *Ledger) Snapshots() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		ids := slices.Collect(maps.Keys(l.accounts))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(snapshot(id, l.accounts[id])) {
				return
			}
		}
	}
}

// SnapshotOf returns the snapshot of a single client, if it was ever
// referenced by a record.
func (l *Ledger) SnapshotOf(id ClientID) (Snapshot, bool) {
	acct, ok := l.accounts[id]
	if !ok {
		return Snapshot{}, false
	}
	return snapshot(id, acct), true
}
