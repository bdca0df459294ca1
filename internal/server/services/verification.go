package services

import (
	"context"

	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/repomanager"
)

// VerificationService answers public lookups. It only ever returns the
// public view of a certificate.
type VerificationService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewVerificationService(tx dbx.Transactor, rm repomanager.RepositoryManager, logger logging.Logger) *VerificationService {
	return &VerificationService{tx: tx, repomanager: rm, logger: logger.With("module", "verification")}
}

// ByCode looks a certificate up by its verification code. The code is
// matched exactly and is never normalized or pre-validated.
func (s *VerificationService) ByCode(ctx context.Context, code string) (*models.CertificateView, error) {
	v, err := s.repomanager.Certificates(s.tx.Conn()).ViewByCode(ctx, code)
	if err != nil {
		s.logger.Debug(ctx, "verification by code failed", "error", err)
		return nil, err
	}
	return v, nil
}

// ByNumber looks a certificate up by its public number.
func (s *VerificationService) ByNumber(ctx context.Context, number string) (*models.CertificateView, error) {
	v, err := s.repomanager.Certificates(s.tx.Conn()).ViewByNumber(ctx, number)
	if err != nil {
		s.logger.Debug(ctx, "verification by number failed", "number", number, "error", err)
		return nil, err
	}
	return v, nil
}
