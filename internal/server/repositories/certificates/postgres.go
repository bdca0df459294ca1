package certificates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// Constraint and index names from the schema migration.
const (
	constraintNumber       = "certificates_number_key"
	constraintCode         = "certificates_verification_code_key"
	constraintActiveByUser = "certificates_active_student_idx"
)

const selectColumns = `id, number, verification_code, student_id, issued_at, status,
		void_reason, voided_at, voided_by, artifact_path, artifact_hash, artifact_size,
		created_at, updated_at`

// PostgresRepository implements certificate storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new ACTIVE certificate. The partial unique index on
// student_id is what guarantees a single active certificate per student;
// its violation is reported as common.ErrDuplicateActiveCertificate.
func (r *PostgresRepository) Create(ctx context.Context, c *models.Certificate) error {
	query := `
		INSERT INTO certificates (id, number, verification_code, student_id, issued_at, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		c.ID, c.Number, c.VerificationCode, c.StudentID, c.IssuedAt, string(c.Status)).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if name, ok := dbx.UniqueViolation(err); ok {
			switch name {
			case constraintActiveByUser:
				return common.ErrDuplicateActiveCertificate
			case constraintCode:
				return common.ErrVerificationCodeNotUnique
			case constraintNumber:
				return common.ErrAllocationConflict
			}
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// GetByID returns the certificate with the given id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	query := `SELECT ` + selectColumns + ` FROM certificates WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate is GetByID that also row-locks the certificate until the
// surrounding transaction ends.
func (r *PostgresRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Certificate, error) {
	query := `SELECT ` + selectColumns + ` FROM certificates WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.Certificate, error) {
	c, err := scanCertificate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.InvalidInput(err) {
			return nil, common.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if !c.Consistent() {
		return nil, fmt.Errorf("%w: certificate %s has partial void or artifact fields", common.ErrIntegrityFailure, c.ID)
	}
	return c, nil
}

// HasActive reports whether the student already owns an ACTIVE certificate.
func (r *PostgresRepository) HasActive(ctx context.Context, studentID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM certificates WHERE student_id = $1 AND status = 'ACTIVE')`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, studentID).Scan(&exists); err != nil {
		if dbx.InvalidInput(err) {
			return false, nil
		}
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// CodeExists reports whether a verification code is already taken.
func (r *PostgresRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM certificates WHERE verification_code = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// SetArtifact replaces the three artifact columns in a single statement.
// Exactly one row must be affected.
func (r *PostgresRepository) SetArtifact(ctx context.Context, id string, a *models.Artifact, at time.Time) error {
	query := `
		UPDATE certificates
		SET artifact_path = $2, artifact_hash = $3, artifact_size = $4, updated_at = $5
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query, id, a.Path, a.Hash, a.Size, at)
	if err != nil {
		if dbx.InvalidInput(err) {
			return common.ErrCertificateNotFound
		}
		return fmt.Errorf("failed to set artifact: %w", err)
	}
	return expectOneRow(res, common.ErrCertificateNotFound)
}

// Void moves an ACTIVE certificate to VOID and fills the void columns in one
// statement. A certificate that is missing or not ACTIVE yields
// common.ErrInvalidTransition; callers that need to tell the two apart read
// the row first inside the same transaction.
func (r *PostgresRepository) Void(ctx context.Context, id string, v *models.VoidInfo) error {
	query := `
		UPDATE certificates
		SET status = 'VOID', void_reason = $2, voided_at = $3, voided_by = $4, updated_at = $3
		WHERE id = $1 AND status = 'ACTIVE'
	`
	res, err := r.db.ExecContext(ctx, query, id, v.Reason, v.At, v.By)
	if err != nil {
		if dbx.InvalidInput(err) {
			return common.ErrInvalidTransition
		}
		return fmt.Errorf("failed to void certificate: %w", err)
	}
	return expectOneRow(res, common.ErrInvalidTransition)
}

const viewQuery = `
		SELECT c.number, s.full_name, co.name, c.issued_at, c.status
		FROM certificates c
		JOIN students s ON s.id = c.student_id
		JOIN courses co ON co.id = s.course_id
`

// ViewByCode returns the public view of the certificate with the exact code.
func (r *PostgresRepository) ViewByCode(ctx context.Context, code string) (*models.CertificateView, error) {
	return r.view(ctx, viewQuery+` WHERE c.verification_code = $1`, code)
}

// ViewByNumber returns the public view of the certificate with the number.
func (r *PostgresRepository) ViewByNumber(ctx context.Context, number string) (*models.CertificateView, error) {
	return r.view(ctx, viewQuery+` WHERE c.number = $1`, number)
}

func (r *PostgresRepository) view(ctx context.Context, query string, arg string) (*models.CertificateView, error) {
	v := &models.CertificateView{}
	var status string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&v.Number, &v.StudentName, &v.CourseName, &v.IssuedAt, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrCertificateNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	v.Status = models.Status(status)
	return v, nil
}

func expectOneRow(res sql.Result, none error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return none
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func scanCertificate(row *sql.Row) (*models.Certificate, error) {
	var (
		c                          models.Certificate
		status                     string
		voidReason, voidedBy       sql.NullString
		voidedAt                   sql.NullTime
		artifactPath, artifactHash sql.NullString
		artifactSize               sql.NullInt64
	)
	err := row.Scan(&c.ID, &c.Number, &c.VerificationCode, &c.StudentID, &c.IssuedAt, &status,
		&voidReason, &voidedAt, &voidedBy, &artifactPath, &artifactHash, &artifactSize,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Status = models.Status(status)

	if voidReason.Valid && voidedAt.Valid && voidedBy.Valid {
		c.Void = &models.VoidInfo{Reason: voidReason.String, At: voidedAt.Time, By: voidedBy.String}
	}
	if artifactPath.Valid && artifactHash.Valid && artifactSize.Valid {
		c.Artifact = &models.Artifact{Path: artifactPath.String, Hash: artifactHash.String, Size: artifactSize.Int64}
	}
	return &c, nil
}
