package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/certificates"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/reports"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/sequences"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/students"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code can
// run against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Certificates(db dbx.DBTX) certificates.Repository
	Sequences(db dbx.DBTX) sequences.Repository
	Students(db dbx.DBTX) students.Repository
	Reports(db dbx.DBTX) reports.Repository
}
