package students

import (
	"context"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// Repository is the read side of the student management collaborator.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.Student, error)
}
