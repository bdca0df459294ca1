package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	pb "github.com/dmitrijs2005/certkeeper/internal/proto"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func newHandlerServer(c *fakeCertificates, v *fakeVerifier, r *fakeReporter) *GRPCServer {
	return NewGRPCServer("", logging.Discard(), c, v, r, "secret")
}

func sampleCert() *models.Certificate {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &models.Certificate{
		ID: "c1", Number: "2024-000001", VerificationCode: "code", StudentID: "s1", IssuedAt: at,
		Status:   models.StatusVoid,
		Void:     &models.VoidInfo{Reason: "error", At: at, By: "registrar"},
		Artifact: &models.Artifact{Path: "2024/03/2024-000001.pdf", Hash: "abc", Size: 3},
	}
}

func TestIssue_MapsRequestAndResponse(t *testing.T) {
	fc := &fakeCertificates{cert: sampleCert()}
	s := newHandlerServer(fc, nil, nil)
	at := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	out, err := s.Issue(context.Background(), &pb.IssueRequest{StudentId: "s1", IssuedAt: timestamppb.New(at)})
	require.NoError(t, err)
	assert.Equal(t, "s1", fc.gotIssue.StudentID)
	require.NotNil(t, fc.gotIssue.IssuedAt)
	assert.Equal(t, at, *fc.gotIssue.IssuedAt)

	_, err = s.Issue(context.Background(), &pb.IssueRequest{StudentId: "s1"})
	require.NoError(t, err)
	assert.Nil(t, fc.gotIssue.IssuedAt)

	assert.Equal(t, "2024-000001", out.Number)
	assert.Equal(t, "VOID", out.Status)
	assert.Equal(t, "registrar", out.VoidedBy)
	require.NotNil(t, out.VoidedAt)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), out.VoidedAt.AsTime())
	assert.Equal(t, "2024/03/2024-000001.pdf", out.ArtifactPath)
	assert.Equal(t, int64(3), out.ArtifactSize)
}

func TestIssue_ErrorCodes(t *testing.T) {
	s := newHandlerServer(&fakeCertificates{err: common.ErrDuplicateActiveCertificate}, nil, nil)

	_, err := s.Issue(context.Background(), &pb.IssueRequest{StudentId: "s1"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	s = newHandlerServer(&fakeCertificates{err: errors.New("boom")}, nil, nil)
	_, err = s.Issue(context.Background(), &pb.IssueRequest{StudentId: "s1"})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestVoid_UsesAuthenticatedOperator(t *testing.T) {
	fc := &fakeCertificates{cert: sampleCert()}
	s := newHandlerServer(fc, nil, nil)

	_, err := s.Void(context.Background(), &pb.VoidRequest{CertificateId: "c1", Reason: "r"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := context.WithValue(context.Background(), operatorKey, "dean")
	_, err = s.Void(ctx, &pb.VoidRequest{CertificateId: "c1", Reason: "r"})
	require.NoError(t, err)
	assert.Equal(t, "dean", fc.gotActor)
}

func TestArtifactHandlers(t *testing.T) {
	fc := &fakeCertificates{cert: sampleCert(), data: []byte("pdf"), ok: true}
	s := newHandlerServer(fc, nil, nil)
	ctx := context.Background()

	a, err := s.FetchArtifact(ctx, &pb.CertificateRequest{CertificateId: "c1"})
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), a.Data)

	v, err := s.VerifyArtifact(ctx, &pb.CertificateRequest{CertificateId: "c1"})
	require.NoError(t, err)
	assert.True(t, v.Intact)

	_, err = s.AttachArtifact(ctx, &pb.AttachArtifactRequest{CertificateId: "c1", Data: []byte("pdf")})
	require.NoError(t, err)

	fc.err = common.ErrArtifactHashMismatch
	_, err = s.FetchArtifact(ctx, &pb.CertificateRequest{CertificateId: "c1"})
	assert.Equal(t, codes.DataLoss, status.Code(err))
}

func TestVerifyHandlers(t *testing.T) {
	view := &models.CertificateView{Number: "2024-000001", StudentName: "Ada", Status: models.StatusActive}
	s := newHandlerServer(nil, &fakeVerifier{view: view}, nil)

	out, err := s.VerifyByCode(context.Background(), &pb.VerifyByCodeRequest{Code: "x"})
	require.NoError(t, err)
	assert.True(t, out.Valid)
	assert.Equal(t, "Ada", out.StudentName)

	s = newHandlerServer(nil, &fakeVerifier{err: common.ErrCertificateNotFound}, nil)
	_, err = s.VerifyByNumber(context.Background(), &pb.VerifyByNumberRequest{Number: "nope"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestReport_Branches(t *testing.T) {
	fr := &fakeReporter{
		rows:    []*models.ReportRow{{Number: "2024-000001", NationalID: "NID-1", Status: models.StatusActive}},
		summary: &models.StatusSummary{Total: 1, Active: 1},
	}
	s := newHandlerServer(nil, nil, fr)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	out, err := s.Report(context.Background(), &pb.ReportRequest{
		From:        timestamppb.New(from),
		To:          timestamppb.New(from.AddDate(1, 0, 0)),
		Institution: "OU",
	})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "NID-1", out.Rows[0].NationalId)
	assert.Equal(t, "ACTIVE", out.Rows[0].Status)
	assert.Equal(t, int64(1), out.Summary.Total)
	assert.Equal(t, "OU", fr.gotFilter.Institution)
	assert.Equal(t, from, fr.gotFilter.From)
	assert.False(t, fr.byNational)

	out, err = s.Report(context.Background(), &pb.ReportRequest{NationalId: "NID-1"})
	require.NoError(t, err)
	assert.True(t, fr.byNational)
	assert.Nil(t, out.Summary)

	fr.err = common.ErrValidation
	_, err = s.Report(context.Background(), &pb.ReportRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.True(t, fr.gotFilter.From.IsZero())
	assert.True(t, fr.gotFilter.To.IsZero())
}

func TestPing(t *testing.T) {
	out, err := newHandlerServer(nil, nil, nil).Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", out.Status)
}
