package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/repomanager"
)

// ReportService serves read-only fiscal and audit reports.
type ReportService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
}

func NewReportService(tx dbx.Transactor, rm repomanager.RepositoryManager) *ReportService {
	return &ReportService{tx: tx, repomanager: rm}
}

// ByDateRange lists certificates issued in [From, To) ordered by number.
func (s *ReportService) ByDateRange(ctx context.Context, f models.ReportFilter) ([]*models.ReportRow, error) {
	if err := checkRange(f.From, f.To); err != nil {
		return nil, err
	}
	return s.repomanager.Reports(s.tx.Conn()).ByDateRange(ctx, f)
}

// ByNationalID lists one student's certificates, newest first.
func (s *ReportService) ByNationalID(ctx context.Context, nationalID string, includeVoid bool) ([]*models.ReportRow, error) {
	nationalID = strings.TrimSpace(nationalID)
	if nationalID == "" {
		return nil, fmt.Errorf("%w: national id is required", common.ErrValidation)
	}
	return s.repomanager.Reports(s.tx.Conn()).ByNationalID(ctx, nationalID, includeVoid)
}

// Summary counts certificates issued in [from, to) per status.
func (s *ReportService) Summary(ctx context.Context, from, to time.Time) (*models.StatusSummary, error) {
	if err := checkRange(from, to); err != nil {
		return nil, err
	}
	return s.repomanager.Reports(s.tx.Conn()).Summary(ctx, from, to)
}

func checkRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return fmt.Errorf("%w: report range needs both ends", common.ErrValidation)
	}
	if !from.Before(to) {
		return fmt.Errorf("%w: report range is empty", common.ErrValidation)
	}
	return nil
}
