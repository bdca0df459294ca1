package memory

import (
	"context"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// StudentRepository implements students.Repository on a Store.
type StudentRepository struct {
	s *Store
}

func (r *StudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.students[id]
	if !ok {
		return nil, common.ErrStudentNotFound
	}
	st := rec.Student
	return &st, nil
}
