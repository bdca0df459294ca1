package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const rowQuery = `
		SELECT c.number, c.issued_at, c.status, s.full_name, s.national_id, co.name,
			i.name, COALESCE(i.department, '')
		FROM certificates c
		JOIN students s ON s.id = c.student_id
		JOIN courses co ON co.id = s.course_id
		JOIN institutions i ON i.id = co.institution_id
`

// ByDateRange returns certificates issued in [f.From, f.To). Empty
// Institution or Department filters match everything.
func (r *PostgresRepository) ByDateRange(ctx context.Context, f models.ReportFilter) ([]*models.ReportRow, error) {
	query := rowQuery + `
		WHERE c.issued_at >= $1 AND c.issued_at < $2
			AND ($3 OR c.status <> 'VOID')
			AND ($4 = '' OR i.name = $4)
			AND ($5 = '' OR i.department = $5)
		ORDER BY c.number
	`
	return r.selectRows(ctx, query, f.From, f.To, f.IncludeVoid, f.Institution, f.Department)
}

// ByNationalID returns every certificate of the student with the national id.
func (r *PostgresRepository) ByNationalID(ctx context.Context, nationalID string, includeVoid bool) ([]*models.ReportRow, error) {
	query := rowQuery + `
		WHERE s.national_id = $1 AND ($2 OR c.status <> 'VOID')
		ORDER BY c.issued_at DESC
	`
	return r.selectRows(ctx, query, nationalID, includeVoid)
}

// Summary counts certificates per status issued in [from, to).
func (r *PostgresRepository) Summary(ctx context.Context, from, to time.Time) (*models.StatusSummary, error) {
	query := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'ACTIVE'),
			COUNT(*) FILTER (WHERE status = 'VOID'),
			COUNT(*) FILTER (WHERE status = 'EXPIRED')
		FROM certificates
		WHERE issued_at >= $1 AND issued_at < $2
	`
	s := &models.StatusSummary{}
	if err := r.db.QueryRowContext(ctx, query, from, to).Scan(&s.Total, &s.Active, &s.Void, &s.Expired); err != nil {
		return nil, fmt.Errorf("failed to summarize certificates: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) selectRows(ctx context.Context, query string, args ...any) ([]*models.ReportRow, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select certificates: %w", err)
	}
	defer rows.Close()

	var result []*models.ReportRow
	for rows.Next() {
		var item models.ReportRow
		var status string
		if err := rows.Scan(&item.Number, &item.IssuedAt, &status, &item.StudentName, &item.NationalID,
			&item.CourseName, &item.InstitutionName, &item.Department); err != nil {
			return nil, err
		}
		item.Status = models.Status(status)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
