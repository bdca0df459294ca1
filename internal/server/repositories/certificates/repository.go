package certificates

import (
	"context"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// Repository persists certificates. Besides Create, the only mutations are
// the two named transitions SetArtifact and Void.
type Repository interface {
	Create(ctx context.Context, c *models.Certificate) error
	GetByID(ctx context.Context, id string) (*models.Certificate, error)
	GetByIDForUpdate(ctx context.Context, id string) (*models.Certificate, error)
	HasActive(ctx context.Context, studentID string) (bool, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	SetArtifact(ctx context.Context, id string, a *models.Artifact, at time.Time) error
	Void(ctx context.Context, id string, v *models.VoidInfo) error
	ViewByCode(ctx context.Context, code string) (*models.CertificateView, error)
	ViewByNumber(ctx context.Context, number string) (*models.CertificateView, error)
}
