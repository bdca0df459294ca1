package students

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	query := `
		SELECT s.id, s.full_name, s.national_id, s.academic_status, c.name
		FROM students s
		JOIN courses c ON c.id = s.course_id
		WHERE s.id = $1
	`
	s := &models.Student{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.FullName, &s.NationalID, &s.AcademicStatus, &s.CourseName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.InvalidInput(err) {
			return nil, common.ErrStudentNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}
