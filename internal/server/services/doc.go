// Package services contains the server-side business logic of certkeeper.
//
// # Overview
//
// CertificateService issues certificates, binds their PDF artifacts and voids
// them. VerificationService answers public lookups by verification code or by
// certificate number and checks uploaded PDFs against the recorded digest.
// ReportService aggregates issued certificates for a date range.
//
// Every service works against a RepositoryManager, so the same code runs over
// PostgreSQL (inside a dbx.Transactor) and over the in-memory store.
//
// # Error Handling
//
// Failures are reported as the sentinel errors of internal/common; callers
// match them with errors.Is, either exactly or by category (ErrNotFound,
// ErrValidation, ErrConflict, ErrIntegrityFailure).
package services
