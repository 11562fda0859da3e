package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"ledgerbot/internal/core"
	ports "ledgerbot/internal/ledger"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the local ledger backend for running without Google
// credentials. It implements the same store ports as the sheets adapter.
type SQLiteRepository struct {
	db *sql.DB
}

var (
	_ ports.Appender = (*SQLiteRepository)(nil)
	_ ports.Reader   = (*SQLiteRepository)(nil)
)

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Append implements ledger.Appender.
func (r *SQLiteRepository) Append(ctx context.Context, tx core.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (created_at, person, amount_units, memo, tx_type)
		 VALUES (?, ?, ?, ?, ?)`,
		tx.Timestamp.UTC().Format(time.RFC3339),
		string(tx.Person),
		tx.Amount.Units,
		tx.Memo,
		string(tx.Type),
	)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %v: %w", err, core.ErrStoreUnavailable)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"person", tx.Person,
		"amount_units", tx.Amount.Units,
		"tx_type", tx.Type)

	return fmt.Sprintf("sqlite:%d", id), nil
}

// ReadAll implements ledger.Reader. Rows come back in insertion order.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT created_at, person, amount_units, memo, tx_type
		 FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select transactions: %v: %w", err, core.ErrStoreUnavailable)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			createdAt string
			person    string
			units     int64
			memo      string
			txType    string
		)
		if err := rows.Scan(&createdAt, &person, &units, &memo, &txType); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		out = append(out, core.Transaction{
			Timestamp: ts,
			Person:    core.Person(person),
			Amount:    core.Money{Units: units},
			Memo:      memo,
			Type:      core.TxType(txType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %v: %w", err, core.ErrStoreUnavailable)
	}
	return out, nil
}
