package core

import (
	"strings"
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		units int64
		want  string
	}{
		{2_800_000, "₩2.8M"},
		{3_000_000, "₩3.0M"},
		{500_000, "₩500K"},
		{1_500, "₩2K"},
		{950, "₩950"},
		{0, "₩0"},
		{1_234_567, "₩1.2M"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.units); got != tc.want {
			t.Fatalf("FormatMoney(%d) = %q, want %q", tc.units, got, tc.want)
		}
	}
}

func TestFormatConfirmation(t *testing.T) {
	got := FormatConfirmation(Transaction{
		Timestamp: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		Person:    PersonJacob,
		Amount:    Money{Units: 2_800_000},
		Memo:      "salary",
		Type:      TypeIncome,
	})
	want := "✅ Logged: Income - Jacob - ₩2.8M - salary"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// No memo, no trailing separator.
	got = FormatConfirmation(Transaction{
		Timestamp: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
		Person:    PersonJoint,
		Amount:    Money{Units: 500},
		Type:      TypeExpense,
	})
	if strings.HasSuffix(got, "- ") || !strings.Contains(got, "₩500") {
		t.Fatalf("unexpected confirmation: %q", got)
	}
}

func TestFormatSummaryDeterministic(t *testing.T) {
	s := Summarize([]Transaction{
		tx(PersonJacob, 2_800_000, TypeIncome),
		tx(PersonJoint, 500_000, TypeExpense),
	})
	first := FormatSummary(s)
	second := FormatSummary(s)
	if first != second {
		t.Fatalf("formatter must be deterministic:\n%s\n---\n%s", first, second)
	}
	for _, want := range []string{"Jacob", "Naomi", "₩2.8M", "Fund Balances", "2 records"} {
		if !strings.Contains(first, want) {
			t.Fatalf("summary missing %q:\n%s", want, first)
		}
	}
}

func TestReplyForError(t *testing.T) {
	if r := ReplyForError(ErrStoreUnavailable); !strings.Contains(r, "try again") {
		t.Fatalf("store errors should suggest a retry: %q", r)
	}
	if r := ReplyForError(ErrUnrecognized); strings.Contains(r, "try again") {
		t.Fatalf("unrecognized input must not suggest a retry: %q", r)
	}
}
