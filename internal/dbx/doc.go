// Package dbx provides tiny DB abstractions shared by repositories.
//
// Key Types
//
//   - type DBTX        minimal interface implemented by both *sql.DB and *sql.Tx
//   - type Transactor  runs a function inside a transaction (SQL or no-op)
//
// It also classifies driver errors that callers need to react to: unique
// violations, serialization failures worth retrying and malformed input
// such as a non-UUID identifier.
package dbx
