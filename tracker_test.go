package payments

import (
	"errors"
	"testing"
)

// newTrackerWithDeposit registers a single deposit of 20 for client 1 as tx 1.
func newTrackerWithDeposit(t *testing.T) *Tracker {
	t.Helper()
	tr := NewTracker()
	if err := tr.Register(1, 1, KindDeposit, A(20)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return tr
}

func TestTracker_RegisterDuplicate(t *testing.T) {
	tr := newTrackerWithDeposit(t)

	err := tr.Register(1, 1, KindDeposit, A(5))
	if !errors.Is(err, ErrDuplicateTx) {
		t.Errorf("reusing tx id = %v, want ErrDuplicateTx", err)
	}
	// Reuse across kinds and clients is just as fatal.
	err = tr.Register(1, 2, KindWithdrawal, A(5))
	if !errors.Is(err, ErrDuplicateTx) {
		t.Errorf("reusing tx id for a withdrawal = %v, want ErrDuplicateTx", err)
	}
}

func TestTracker_DisputeLifecycle(t *testing.T) {
	tr := newTrackerWithDeposit(t)

	amount, err := tr.Dispute(1, 1, A(100))
	if err != nil {
		t.Fatalf("Dispute failed: %v", err)
	}
	if !amount.Equal(A(20)) {
		t.Errorf("disputed amount = %s, want 20", amount)
	}
	if state, _ := tr.State(1); state != StateDisputed {
		t.Errorf("state = %v, want disputed", state)
	}

	// A second dispute on the same tx is rejected.
	if _, err := tr.Dispute(1, 1, A(100)); !errors.Is(err, errAlreadyDisputed) {
		t.Errorf("double dispute = %v, want errAlreadyDisputed", err)
	}

	// Resolve releases it back to normal; it can be disputed again.
	if _, err := tr.Resolve(1, 1); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if state, _ := tr.State(1); state != StateNormal {
		t.Errorf("state after resolve = %v, want normal", state)
	}
	if _, err := tr.Dispute(1, 1, A(100)); err != nil {
		t.Errorf("re-dispute after resolve failed: %v", err)
	}

	// Chargeback is terminal.
	if _, err := tr.Chargeback(1, 1); err != nil {
		t.Fatalf("Chargeback failed: %v", err)
	}
	if state, _ := tr.State(1); state != StateChargedBack {
		t.Errorf("state after chargeback = %v, want charged-back", state)
	}
	if _, err := tr.Dispute(1, 1, A(100)); !errors.Is(err, errChargedBack) {
		t.Errorf("dispute after chargeback = %v, want errChargedBack", err)
	}
	if _, err := tr.Resolve(1, 1); !errors.Is(err, errChargedBack) {
		t.Errorf("resolve after chargeback = %v, want errChargedBack", err)
	}
	if _, err := tr.Chargeback(1, 1); !errors.Is(err, errChargedBack) {
		t.Errorf("second chargeback = %v, want errChargedBack", err)
	}
}

func TestTracker_DisputeRejections(t *testing.T) {
	tr := newTrackerWithDeposit(t)
	if err := tr.Register(2, 1, KindWithdrawal, A(5)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	testCases := []struct {
		name      string
		client    ClientID
		tx        TxID
		available Amount
		want      error
	}{
		{"unknown tx", 1, 42, A(100), errUnknownTx},
		{"client mismatch", 2, 1, A(100), errClientMismatch},
		{"withdrawal tx", 1, 2, A(100), errNotDeposit},
		{"insufficient available", 1, 1, A(10), errInsufficientHold},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tr.Dispute(tc.client, tc.tx, tc.available); !errors.Is(err, tc.want) {
				t.Errorf("Dispute = %v, want %v", err, tc.want)
			}
			// Rejections leave the state machine untouched.
			if state, ok := tr.State(tc.tx); ok && state != StateNormal {
				t.Errorf("state after rejected dispute = %v, want normal", state)
			}
		})
	}
}

func TestTracker_ResolveAndChargebackRequireDispute(t *testing.T) {
	tr := newTrackerWithDeposit(t)

	if _, err := tr.Resolve(1, 1); !errors.Is(err, errNotDisputed) {
		t.Errorf("resolve of undisputed tx = %v, want errNotDisputed", err)
	}
	if _, err := tr.Chargeback(1, 1); !errors.Is(err, errNotDisputed) {
		t.Errorf("chargeback of undisputed tx = %v, want errNotDisputed", err)
	}
	if _, err := tr.Resolve(1, 42); !errors.Is(err, errUnknownTx) {
		t.Errorf("resolve of unknown tx = %v, want errUnknownTx", err)
	}
	if _, err := tr.Chargeback(2, 1); !errors.Is(err, errClientMismatch) {
		t.Errorf("chargeback with wrong client = %v, want errClientMismatch", err)
	}
}
