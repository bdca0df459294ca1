package memory

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/certificates"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/reports"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/sequences"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/students"
)

// RepositoryManager vends repositories backed by a single Store. The DBTX
// arguments are ignored.
type RepositoryManager struct {
	store *Store
}

// NewRepositoryManager wraps store.
func NewRepositoryManager(store *Store) *RepositoryManager {
	return &RepositoryManager{store: store}
}

func (m *RepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *RepositoryManager) Certificates(dbx.DBTX) certificates.Repository {
	return &CertificateRepository{s: m.store}
}

func (m *RepositoryManager) Sequences(dbx.DBTX) sequences.Repository {
	return &SequenceRepository{s: m.store}
}

func (m *RepositoryManager) Students(dbx.DBTX) students.Repository {
	return &StudentRepository{s: m.store}
}

func (m *RepositoryManager) Reports(dbx.DBTX) reports.Repository {
	return &ReportRepository{s: m.store}
}
