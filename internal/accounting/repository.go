package accounting

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/propfolio/propfolio/internal/platform/db"
)

// RepositoryPort defines the journal snapshot reads.
type RepositoryPort interface {
	Snapshot(ctx context.Context) ([]Account, []JournalLine, error)
}

// Repository provides PostgreSQL backed reads for the accounting views.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Snapshot reads the chart of accounts and all journal lines inside one
// read-only transaction so the pair is consistent.
func (r *Repository) Snapshot(ctx context.Context) ([]Account, []JournalLine, error) {
	var accounts []Account
	var lines []JournalLine

	err := db.WithReadTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		if accounts, err = listAccounts(ctx, tx); err != nil {
			return err
		}
		lines, err = listJournalLines(ctx, tx)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return nil, nil, fmt.Errorf("accounting: snapshot failed (%s): %w", pgErr.Code, err)
		}
		return nil, nil, err
	}
	return accounts, lines, nil
}

func listAccounts(ctx context.Context, tx pgx.Tx) ([]Account, error) {
	query := `
		SELECT id, code, name, account_type, is_cash, cashflow_section
		FROM accounts
		ORDER BY code`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("accounting: list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []Account
	for rows.Next() {
		var a Account
		var section pgtype.Text
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.Type, &a.IsCash, &section); err != nil {
			return nil, fmt.Errorf("accounting: scan account: %w", err)
		}
		a.Cashflow = CashflowSection(section.String)
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func listJournalLines(ctx context.Context, tx pgx.Tx) ([]JournalLine, error) {
	query := `
		SELECT id, account_id, entry_date, property_id, debit, credit, COALESCE(memo, ''), source_id
		FROM journal_lines
		ORDER BY entry_date, id`

	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("accounting: list journal lines: %w", err)
	}
	defer rows.Close()

	var lines []JournalLine
	for rows.Next() {
		var l JournalLine
		var propertyID pgtype.Text
		if err := rows.Scan(&l.ID, &l.AccountID, &l.Date, &propertyID, &l.Debit, &l.Credit, &l.Memo, &l.SourceID); err != nil {
			return nil, fmt.Errorf("accounting: scan journal line: %w", err)
		}
		l.PropertyID = propertyID.String
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
