package memory

import (
	"context"
	"testing"
	"time"

	"ledgerbot/internal/core"
)

func TestMemoryStoreAppendAndReadAll(t *testing.T) {
	s := New()

	all, err := s.ReadAll(context.Background())
	if err != nil || len(all) != 0 {
		t.Fatalf("empty store: got %d items, err=%v", len(all), err)
	}

	txs := []core.Transaction{
		{Timestamp: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), Person: core.PersonJacob, Amount: core.Money{Units: 2800000}, Memo: "salary", Type: core.TypeIncome},
		{Timestamp: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC), Person: core.PersonJoint, Amount: core.Money{Units: 500000}, Memo: "groceries", Type: core.TypeExpense},
		{Timestamp: time.Date(2025, 1, 3, 9, 0, 0, 0, time.UTC), Person: core.PersonNaomi, Amount: core.Money{Units: 5000000}, Memo: "commission", Type: core.TypeIncome},
	}
	for i, tx := range txs {
		ref, err := s.Append(context.Background(), tx)
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
		if ref == "" {
			t.Fatalf("append %d: empty row ref", i)
		}
	}

	// Round-trip: N appends read back as exactly N records, same order.
	all, err = s.ReadAll(context.Background())
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(all) != len(txs) {
		t.Fatalf("got %d records, want %d", len(all), len(txs))
	}
	for i := range txs {
		if all[i] != txs[i] {
			t.Fatalf("record %d: got %+v, want %+v", i, all[i], txs[i])
		}
	}
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	s := New()
	_, err := s.Append(context.Background(), core.Transaction{
		Timestamp: time.Now(),
		Person:    "someone",
		Amount:    core.Money{Units: 100},
		Type:      core.TypeIncome,
	})
	if err == nil {
		t.Fatal("expected validation error for person outside the closed set")
	}

	_, err = s.Append(context.Background(), core.Transaction{
		Timestamp: time.Now(),
		Person:    core.PersonJacob,
		Amount:    core.Money{Units: -1},
		Type:      core.TypeIncome,
	})
	if err == nil {
		t.Fatal("expected validation error for negative amount")
	}
}
