package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"github.com/dmitrijs2005/certkeeper/internal/server/artifacts"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/certkeeper/internal/server/verifycode"
	"github.com/google/uuid"
)

// NumberAllocator hands out certificate numbers for a year.
type NumberAllocator interface {
	Next(ctx context.Context, year int) (string, error)
}

// CodeGenerator produces verification codes that exists reports as unused.
type CodeGenerator interface {
	Generate(ctx context.Context, exists verifycode.ExistsFunc) (string, error)
}

// IssueRequest asks for a certificate for a student. IssuedAt backdates the
// certificate; nil means now.
type IssueRequest struct {
	StudentID string
	IssuedAt  *time.Time
}

// CertificateService drives the certificate state machine
// (none) -> ACTIVE -> VOID.
type CertificateService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	numbers     NumberAllocator
	codes       CodeGenerator
	artifacts   artifacts.Store
	logger      logging.Logger

	now   func() time.Time
	newID func() string
}

func NewCertificateService(tx dbx.Transactor, rm repomanager.RepositoryManager, numbers NumberAllocator,
	codes CodeGenerator, store artifacts.Store, logger logging.Logger) *CertificateService {
	return &CertificateService{
		tx:          tx,
		repomanager: rm,
		numbers:     numbers,
		codes:       codes,
		artifacts:   store,
		logger:      logger.With("module", "certificates"),
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
	}
}

// Issue creates an ACTIVE certificate for an approved student who holds no
// other ACTIVE certificate.
//
// The number is allocated before the insert and committed on its own, so a
// failed insert leaves a gap in the year's sequence rather than a reusable
// number. The partial unique index on active certificates is what enforces
// one ACTIVE certificate per student; the HasActive checks only keep
// ordinary duplicates from burning a number.
func (s *CertificateService) Issue(ctx context.Context, req IssueRequest) (*models.Certificate, error) {
	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		return nil, fmt.Errorf("%w: student id is required", common.ErrValidation)
	}

	now := s.now()
	issuedAt := now
	if req.IssuedAt != nil {
		issuedAt = req.IssuedAt.UTC()
		if issuedAt.After(now) {
			return nil, fmt.Errorf("%w: issue date is in the future", common.ErrValidation)
		}
	}

	if err := s.checkEligible(ctx, s.tx.Conn(), studentID); err != nil {
		return nil, err
	}

	number, err := s.numbers.Next(ctx, issuedAt.Year())
	if err != nil {
		return nil, err
	}

	cert := &models.Certificate{
		ID:        s.newID(),
		Number:    number,
		StudentID: studentID,
		IssuedAt:  issuedAt,
		Status:    models.StatusActive,
	}

	// A code collision that slipped past the exists check surfaces as a unique
	// violation on insert; one more round with a fresh code is enough.
	for attempt := 0; ; attempt++ {
		err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			if err := s.checkEligible(ctx, tx, studentID); err != nil {
				return err
			}

			repo := s.repomanager.Certificates(tx)
			code, err := s.codes.Generate(ctx, repo.CodeExists)
			if err != nil {
				return err
			}
			cert.VerificationCode = code

			return repo.Create(ctx, cert)
		})
		if errors.Is(err, common.ErrVerificationCodeNotUnique) && attempt == 0 {
			continue
		}
		break
	}
	if err != nil {
		s.logger.Warn(ctx, "issue failed", "student_id", studentID, "number", number, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "certificate issued", "id", cert.ID, "number", cert.Number, "student_id", studentID)
	return cert, nil
}

func (s *CertificateService) checkEligible(ctx context.Context, db dbx.DBTX, studentID string) error {
	st, err := s.repomanager.Students(db).GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if st.AcademicStatus != common.AcademicStatusApproved {
		return common.ErrStudentNotEligible
	}

	active, err := s.repomanager.Certificates(db).HasActive(ctx, studentID)
	if err != nil {
		return err
	}
	if active {
		return common.ErrDuplicateActiveCertificate
	}
	return nil
}

// AttachArtifact stores the certificate PDF and records its location, digest
// and size. Calling it again replaces the artifact. The status is unchanged.
//
// Bytes are written before, and outside of, any transaction. If the write
// fails the record is untouched. If the metadata update fails the object
// stays at its deterministic path and the caller must retry. When a previous
// artifact was attached, the file at that path already holds the new bytes
// while the record still carries the old digest, so integrity checks fail
// until a retry succeeds.
func (s *CertificateService) AttachArtifact(ctx context.Context, id string, data []byte) (*models.Certificate, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: artifact is empty", common.ErrValidation)
	}

	repo := s.repomanager.Certificates(s.tx.Conn())

	cert, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a, err := s.artifacts.Store(ctx, data, cert.Number, cert.IssuedAt)
	if err != nil {
		s.logger.Error(ctx, "artifact write failed", "id", id, "number", cert.Number, "error", err)
		return nil, err
	}

	now := s.now()
	if err := repo.SetArtifact(ctx, id, a, now); err != nil {
		if cert.Artifact != nil && cert.Artifact.Path == a.Path && cert.Artifact.Hash != a.Hash {
			s.logger.Error(ctx, "artifact replaced but metadata update failed; integrity checks fail until retried",
				"id", id, "path", a.Path, "recorded_hash", cert.Artifact.Hash, "stored_hash", a.Hash, "error", err)
		} else {
			s.logger.Error(ctx, "artifact metadata update failed", "id", id, "path", a.Path, "error", err)
		}
		return nil, err
	}

	cert.Artifact = a
	cert.UpdatedAt = now
	s.logger.Info(ctx, "artifact attached", "id", id, "path", a.Path, "size", a.Size)
	return cert, nil
}

// Void revokes an ACTIVE certificate. It is one-way: voiding anything that is
// not ACTIVE fails with common.ErrInvalidTransition.
func (s *CertificateService) Void(ctx context.Context, id, reason, actor string) (*models.Certificate, error) {
	reason, actor = strings.TrimSpace(reason), strings.TrimSpace(actor)
	if reason == "" {
		return nil, fmt.Errorf("%w: void reason is required", common.ErrValidation)
	}
	if actor == "" {
		return nil, fmt.Errorf("%w: voiding operator is required", common.ErrValidation)
	}

	var out *models.Certificate
	err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Certificates(tx)

		cert, err := repo.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !cert.IsActive() {
			return common.ErrInvalidTransition
		}

		v := &models.VoidInfo{Reason: reason, At: s.now(), By: actor}
		if err := repo.Void(ctx, id, v); err != nil {
			return err
		}

		cert.Status = models.StatusVoid
		cert.Void = v
		cert.UpdatedAt = v.At
		out = cert
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "certificate voided", "id", id, "number", out.Number, "by", actor)
	return out, nil
}

// Get returns the full internal record.
func (s *CertificateService) Get(ctx context.Context, id string) (*models.Certificate, error) {
	return s.repomanager.Certificates(s.tx.Conn()).GetByID(ctx, id)
}

// FetchArtifact returns the certificate's PDF after checking it against the
// recorded digest.
func (s *CertificateService) FetchArtifact(ctx context.Context, id string) ([]byte, error) {
	cert, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if cert.Artifact == nil {
		return nil, common.ErrArtifactNotAttached
	}

	data, err := s.artifacts.Fetch(ctx, cert.Artifact.Path)
	if err != nil {
		return nil, err
	}
	if artifacts.Digest(data) != cert.Artifact.Hash {
		s.logger.Error(ctx, "artifact digest mismatch", "id", id, "path", cert.Artifact.Path)
		return nil, common.ErrArtifactHashMismatch
	}
	return data, nil
}

// VerifyArtifact reports whether the stored PDF still matches its digest.
func (s *CertificateService) VerifyArtifact(ctx context.Context, id string) (bool, error) {
	cert, err := s.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if cert.Artifact == nil {
		return false, common.ErrArtifactNotAttached
	}

	ok := s.artifacts.VerifyIntegrity(ctx, cert.Artifact.Path, cert.Artifact.Hash)
	if !ok {
		s.logger.Warn(ctx, "artifact integrity check failed", "id", id, "path", cert.Artifact.Path)
	}
	return ok, nil
}
