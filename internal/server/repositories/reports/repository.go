package reports

import (
	"context"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// Repository answers read-only fiscal/audit queries.
type Repository interface {
	ByDateRange(ctx context.Context, f models.ReportFilter) ([]*models.ReportRow, error)
	ByNationalID(ctx context.Context, nationalID string, includeVoid bool) ([]*models.ReportRow, error)
	Summary(ctx context.Context, from, to time.Time) (*models.StatusSummary, error)
}
