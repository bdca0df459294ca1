package memory

import (
	"context"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// SequenceRepository implements sequences.Repository on a Store.
type SequenceRepository struct {
	s *Store
}

func (r *SequenceRepository) Increment(ctx context.Context, year int, prefix string) (*models.Sequence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seq, ok := r.s.sequences[year]
	if !ok {
		seq = &models.Sequence{Year: year, Prefix: prefix}
		r.s.sequences[year] = seq
	}
	seq.LastNumber++
	cp := *seq
	return &cp, nil
}

func (r *SequenceRepository) Get(ctx context.Context, year int) (*models.Sequence, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	seq, ok := r.s.sequences[year]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *seq
	return &cp, nil
}
