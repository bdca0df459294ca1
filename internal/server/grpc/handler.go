package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/certkeeper/internal/proto"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Issue(ctx context.Context, req *pb.IssueRequest) (*pb.Certificate, error) {
	in := services.IssueRequest{StudentID: req.GetStudentId()}
	if req.GetIssuedAt() != nil {
		at := req.GetIssuedAt().AsTime()
		in.IssuedAt = &at
	}

	c, err := s.certificates.Issue(ctx, in)
	if err != nil {
		return nil, s.fail(ctx, "issue", err)
	}
	return toCertificate(c), nil
}

func (s *GRPCServer) AttachArtifact(ctx context.Context, req *pb.AttachArtifactRequest) (*pb.Certificate, error) {
	c, err := s.certificates.AttachArtifact(ctx, req.GetCertificateId(), req.GetData())
	if err != nil {
		return nil, s.fail(ctx, "attach artifact", err)
	}
	return toCertificate(c), nil
}

func (s *GRPCServer) Void(ctx context.Context, req *pb.VoidRequest) (*pb.Certificate, error) {
	operator, ok := operatorFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing operator")
	}

	c, err := s.certificates.Void(ctx, req.GetCertificateId(), req.GetReason(), operator)
	if err != nil {
		return nil, s.fail(ctx, "void", err)
	}
	return toCertificate(c), nil
}

func (s *GRPCServer) Get(ctx context.Context, req *pb.CertificateRequest) (*pb.Certificate, error) {
	c, err := s.certificates.Get(ctx, req.GetCertificateId())
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	return toCertificate(c), nil
}

func (s *GRPCServer) FetchArtifact(ctx context.Context, req *pb.CertificateRequest) (*pb.ArtifactResponse, error) {
	data, err := s.certificates.FetchArtifact(ctx, req.GetCertificateId())
	if err != nil {
		return nil, s.fail(ctx, "fetch artifact", err)
	}
	return &pb.ArtifactResponse{Data: data}, nil
}

func (s *GRPCServer) VerifyArtifact(ctx context.Context, req *pb.CertificateRequest) (*pb.VerifyArtifactResponse, error) {
	ok, err := s.certificates.VerifyArtifact(ctx, req.GetCertificateId())
	if err != nil {
		return nil, s.fail(ctx, "verify artifact", err)
	}
	return &pb.VerifyArtifactResponse{Intact: ok}, nil
}

func (s *GRPCServer) VerifyByCode(ctx context.Context, req *pb.VerifyByCodeRequest) (*pb.Verification, error) {
	v, err := s.verifier.ByCode(ctx, req.GetCode())
	if err != nil {
		return nil, toStatus(err)
	}
	return toVerification(v), nil
}

func (s *GRPCServer) VerifyByNumber(ctx context.Context, req *pb.VerifyByNumberRequest) (*pb.Verification, error) {
	v, err := s.verifier.ByNumber(ctx, req.GetNumber())
	if err != nil {
		return nil, toStatus(err)
	}
	return toVerification(v), nil
}

func (s *GRPCServer) Report(ctx context.Context, req *pb.ReportRequest) (*pb.ReportResponse, error) {
	if req.GetNationalId() != "" {
		rows, err := s.reports.ByNationalID(ctx, req.GetNationalId(), req.GetIncludeVoid())
		if err != nil {
			return nil, s.fail(ctx, "report", err)
		}
		return &pb.ReportResponse{Rows: toReportRows(rows)}, nil
	}

	from, to := fromTimestamp(req.GetFrom()), fromTimestamp(req.GetTo())
	rows, err := s.reports.ByDateRange(ctx, models.ReportFilter{
		From:        from,
		To:          to,
		IncludeVoid: req.GetIncludeVoid(),
		Institution: req.GetInstitution(),
		Department:  req.GetDepartment(),
	})
	if err != nil {
		return nil, s.fail(ctx, "report", err)
	}

	summary, err := s.reports.Summary(ctx, from, to)
	if err != nil {
		return nil, s.fail(ctx, "report", err)
	}
	return &pb.ReportResponse{Rows: toReportRows(rows), Summary: toSummary(summary)}, nil
}

func (s *GRPCServer) fail(ctx context.Context, op string, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error(ctx, op+" failed", "error", err)
	} else {
		s.logger.Info(ctx, op+" rejected", "error", err)
	}
	return st
}
