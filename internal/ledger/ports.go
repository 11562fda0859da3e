package ledger

import (
	"context"

	"ledgerbot/internal/core"
)

// Ports for outbound store adapters.
type (
	// Appender writes one transaction row to the ledger store.
	Appender interface {
		Append(ctx context.Context, tx core.Transaction) (rowRef string, err error)
	}

	// Reader returns every stored transaction in insertion order, oldest
	// first. It returns the full set or an error, never a partial result.
	Reader interface {
		ReadAll(ctx context.Context) ([]core.Transaction, error)
	}

	// Store combines the two ports; every backend implements both.
	Store interface {
		Appender
		Reader
	}
)
