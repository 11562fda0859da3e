package google

import (
	"strconv"
	"strings"
	"time"

	"ledgerbot/internal/core"
)

// Sheet rows use a fixed five-column layout matching the transaction record.
const timestampLayout = time.RFC3339

func encodeRow(tx core.Transaction) []any {
	return []any{
		tx.Timestamp.UTC().Format(timestampLayout),
		string(tx.Person),
		tx.Amount.Units,
		tx.Memo,
		string(tx.Type),
	}
}

// decodeRow turns one sheet row back into a transaction. Cell values arrive
// as strings or numbers depending on how the sheet formatted them, so
// decoding is lenient about types but strict about the closed sets.
func decodeRow(row []any) (core.Transaction, bool) {
	if len(row) < 5 {
		return core.Transaction{}, false
	}
	cols := make([]string, 5)
	for i := 0; i < 5; i++ {
		cols[i] = strings.TrimSpace(cellString(row[i]))
	}

	ts, err := time.Parse(timestampLayout, cols[0])
	if err != nil {
		return core.Transaction{}, false
	}
	person, ok := core.ParsePerson(cols[1])
	if !ok {
		return core.Transaction{}, false
	}
	units, ok := cellAmount(cols[2])
	if !ok || units < 0 {
		return core.Transaction{}, false
	}
	txType := core.TxType(strings.ToLower(cols[4]))
	if !txType.Valid() {
		return core.Transaction{}, false
	}

	return core.Transaction{
		Timestamp: ts,
		Person:    person,
		Amount:    core.Money{Units: units},
		Memo:      cols[3],
		Type:      txType,
	}, true
}

func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

func cellAmount(s string) (int64, bool) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	// Sheets sometimes hands back integers as floats.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f + 0.5), true
	}
	return 0, false
}
