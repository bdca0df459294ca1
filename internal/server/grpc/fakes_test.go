package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/services"
)

type fakeCertificates struct {
	cert *models.Certificate
	data []byte
	ok   bool
	err  error

	gotIssue services.IssueRequest
	gotActor string
}

func (f *fakeCertificates) Issue(ctx context.Context, req services.IssueRequest) (*models.Certificate, error) {
	f.gotIssue = req
	return f.cert, f.err
}
func (f *fakeCertificates) AttachArtifact(ctx context.Context, id string, data []byte) (*models.Certificate, error) {
	return f.cert, f.err
}
func (f *fakeCertificates) Void(ctx context.Context, id, reason, actor string) (*models.Certificate, error) {
	f.gotActor = actor
	return f.cert, f.err
}
func (f *fakeCertificates) Get(ctx context.Context, id string) (*models.Certificate, error) {
	return f.cert, f.err
}
func (f *fakeCertificates) FetchArtifact(ctx context.Context, id string) ([]byte, error) {
	return f.data, f.err
}
func (f *fakeCertificates) VerifyArtifact(ctx context.Context, id string) (bool, error) {
	return f.ok, f.err
}

type fakeVerifier struct {
	view *models.CertificateView
	err  error
}

func (f *fakeVerifier) ByCode(ctx context.Context, code string) (*models.CertificateView, error) {
	return f.view, f.err
}
func (f *fakeVerifier) ByNumber(ctx context.Context, number string) (*models.CertificateView, error) {
	return f.view, f.err
}

type fakeReporter struct {
	rows       []*models.ReportRow
	summary    *models.StatusSummary
	err        error
	gotFilter  models.ReportFilter
	byNational bool
}

func (f *fakeReporter) ByDateRange(ctx context.Context, flt models.ReportFilter) ([]*models.ReportRow, error) {
	f.gotFilter = flt
	return f.rows, f.err
}
func (f *fakeReporter) ByNationalID(ctx context.Context, nationalID string, includeVoid bool) ([]*models.ReportRow, error) {
	f.byNational = true
	return f.rows, f.err
}
func (f *fakeReporter) Summary(ctx context.Context, from, to time.Time) (*models.StatusSummary, error) {
	return f.summary, f.err
}
