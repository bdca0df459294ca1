package sequences

import (
	"context"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// Repository owns the per-year certificate counters.
type Repository interface {
	// Increment creates the counter for year on first use and bumps it by one
	// in a single atomic statement, returning the post-increment state.
	Increment(ctx context.Context, year int, prefix string) (*models.Sequence, error)
	Get(ctx context.Context, year int) (*models.Sequence, error)
}
