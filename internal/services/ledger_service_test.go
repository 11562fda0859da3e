package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger/memory"
)

type failingStore struct{}

func (failingStore) Append(context.Context, core.Transaction) (string, error) {
	return "", core.ErrStoreUnavailable
}
func (failingStore) ReadAll(context.Context) ([]core.Transaction, error) {
	return nil, core.ErrStoreUnavailable
}

func newTestService(t *testing.T) (*LedgerService, *memory.Store) {
	t.Helper()
	store := memory.New()
	svc := NewLedgerService(store, nil)
	svc.now = func() time.Time { return time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC) }
	return svc, store
}

func TestHandleCommandLogsIncome(t *testing.T) {
	svc, store := newTestService(t)
	reply := svc.HandleCommand(context.Background(), "jacob 2.8M salary", core.PersonNaomi)
	if !strings.Contains(reply, "✅") || !strings.Contains(reply, "Jacob") || !strings.Contains(reply, "₩2.8M") {
		t.Fatalf("unexpected reply: %q", reply)
	}

	all, _ := store.ReadAll(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(all))
	}
	tx := all[0]
	if tx.Person != core.PersonJacob || tx.Type != core.TypeIncome || tx.Amount.Units != 2800000 || tx.Memo != "salary" {
		t.Fatalf("unexpected record: %+v", tx)
	}
	if tx.Timestamp.IsZero() {
		t.Fatal("timestamp must be set at write time")
	}
}

func TestHandleCommandLogsJointExpense(t *testing.T) {
	svc, store := newTestService(t)
	reply := svc.HandleCommand(context.Background(), "joint 500K groceries", core.PersonJacob)
	if !strings.Contains(reply, "Expense") || !strings.Contains(reply, "Joint") {
		t.Fatalf("unexpected reply: %q", reply)
	}
	all, _ := store.ReadAll(context.Background())
	if len(all) != 1 || all[0].Type != core.TypeExpense {
		t.Fatalf("unexpected records: %+v", all)
	}
}

func TestHandleCommandStatus(t *testing.T) {
	svc, _ := newTestService(t)
	svc.HandleCommand(context.Background(), "naomi 5M commission", core.PersonJacob)
	svc.HandleCommand(context.Background(), "joint 1M rent", core.PersonJacob)

	reply := svc.HandleCommand(context.Background(), "status", core.PersonNaomi)
	for _, want := range []string{"Status Update", "Naomi", "₩5.0M", "Fund Balances", "2 records"} {
		if !strings.Contains(reply, want) {
			t.Fatalf("status reply missing %q:\n%s", want, reply)
		}
	}
}

func TestHandleCommandStatusOnEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)
	reply := svc.HandleCommand(context.Background(), "status", core.PersonJacob)
	if !strings.Contains(reply, "0 records") {
		t.Fatalf("empty store should still produce a summary: %q", reply)
	}
}

func TestHandleCommandHelp(t *testing.T) {
	svc, _ := newTestService(t)
	reply := svc.HandleCommand(context.Background(), "help", core.PersonUnknown)
	if !strings.Contains(reply, "Ledger Bot Commands") {
		t.Fatalf("unexpected help reply: %q", reply)
	}
}

func TestHandleCommandRecoversErrors(t *testing.T) {
	svc, store := newTestService(t)

	// Unrecognized input never errors out of the handler.
	reply := svc.HandleCommand(context.Background(), "what is this", core.PersonJacob)
	if !strings.Contains(reply, "couldn't understand") {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if all, _ := store.ReadAll(context.Background()); len(all) != 0 {
		t.Fatal("unrecognized input must not write records")
	}

	// Self-log from an unresolved sender.
	reply = svc.HandleCommand(context.Background(), "2.8M salary", core.PersonUnknown)
	if !strings.Contains(reply, "don't know who you are") {
		t.Fatalf("unexpected reply: %q", reply)
	}
}

func TestHandleCommandStoreFailure(t *testing.T) {
	svc := NewLedgerService(failingStore{}, nil)

	reply := svc.HandleCommand(context.Background(), "jacob 2.8M salary", core.PersonJacob)
	if !strings.Contains(reply, "try again") {
		t.Fatalf("store failure should suggest a retry: %q", reply)
	}

	reply = svc.HandleCommand(context.Background(), "status", core.PersonJacob)
	if !strings.Contains(reply, "try again") {
		t.Fatalf("status on failing store should suggest a retry: %q", reply)
	}
}

func TestStoreErrorIsDistinguishable(t *testing.T) {
	_, err := failingStore{}.Append(context.Background(), core.Transaction{})
	if !errors.Is(err, core.ErrStoreUnavailable) {
		t.Fatal("store errors must wrap core.ErrStoreUnavailable")
	}
}
