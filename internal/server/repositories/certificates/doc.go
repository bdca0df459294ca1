// Package certificates provides the server-side persistence layer for issued
// certificates.
//
// # Overview
//
// The package defines a Repository interface whose only mutations after Create
// are the two named transitions SetArtifact and Void. A PostgreSQL-backed
// implementation (PostgresRepository) persists data via a dbx.DBTX, so it runs
// equally on *sql.DB and inside a transaction.
//
// Identifiers that are not valid UUIDs are reported as not found, and a row
// whose void or artifact columns are only partly set is rejected as an
// integrity failure.
//
// Typical Usage
//
//	repo := certificates.NewPostgresRepository(tx)
//	c, _ := repo.GetByIDForUpdate(ctx, id)
//	_ = repo.Void(ctx, c.ID, &models.VoidInfo{Reason: "typo", At: now, By: "registrar"})
package certificates
