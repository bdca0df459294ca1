package sequences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// PostgresRepository implements counters over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Increment upserts the counter row. Postgres row-locks the conflicting row
// for the duration of the statement, so two concurrent callers never observe
// the same pre-increment value. The prefix is only written when the row is
// created.
func (r *PostgresRepository) Increment(ctx context.Context, year int, prefix string) (*models.Sequence, error) {
	query := `
		INSERT INTO certificate_sequences (year, last_number, prefix)
		VALUES ($1, 1, $2)
		ON CONFLICT (year)
		DO UPDATE SET last_number = certificate_sequences.last_number + 1
		RETURNING year, last_number, prefix
	`
	s := &models.Sequence{}
	if err := r.db.QueryRowContext(ctx, query, year, prefix).Scan(&s.Year, &s.LastNumber, &s.Prefix); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// Get returns the counter for year without modifying it.
func (r *PostgresRepository) Get(ctx context.Context, year int) (*models.Sequence, error) {
	query := `SELECT year, last_number, prefix FROM certificate_sequences WHERE year = $1`
	s := &models.Sequence{}
	if err := r.db.QueryRowContext(ctx, query, year).Scan(&s.Year, &s.LastNumber, &s.Prefix); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
