package grpc

import (
	"time"

	pb "github.com/dmitrijs2005/certkeeper/internal/proto"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toCertificate(c *models.Certificate) *pb.Certificate {
	out := &pb.Certificate{
		Id:               c.ID,
		Number:           c.Number,
		VerificationCode: c.VerificationCode,
		StudentId:        c.StudentID,
		IssuedAt:         timestamppb.New(c.IssuedAt),
		Status:           string(c.Status),
	}
	if c.Void != nil {
		out.VoidReason = c.Void.Reason
		out.VoidedAt = timestamppb.New(c.Void.At)
		out.VoidedBy = c.Void.By
	}
	if c.Artifact != nil {
		out.ArtifactPath = c.Artifact.Path
		out.ArtifactHash = c.Artifact.Hash
		out.ArtifactSize = c.Artifact.Size
	}
	return out
}

func toVerification(v *models.CertificateView) *pb.Verification {
	return &pb.Verification{
		Number:      v.Number,
		StudentName: v.StudentName,
		CourseName:  v.CourseName,
		IssuedAt:    timestamppb.New(v.IssuedAt),
		Status:      string(v.Status),
		Valid:       v.Valid(),
	}
}

func toReportRows(rows []*models.ReportRow) []*pb.ReportRow {
	out := make([]*pb.ReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, &pb.ReportRow{
			Number:          r.Number,
			IssuedAt:        timestamppb.New(r.IssuedAt),
			Status:          string(r.Status),
			StudentName:     r.StudentName,
			NationalId:      r.NationalID,
			CourseName:      r.CourseName,
			InstitutionName: r.InstitutionName,
			Department:      r.Department,
		})
	}
	return out
}

func toSummary(s *models.StatusSummary) *pb.StatusSummary {
	if s == nil {
		return nil
	}
	return &pb.StatusSummary{Total: s.Total, Active: s.Active, Void: s.Void, Expired: s.Expired}
}

// fromTimestamp treats an unset timestamp as the zero time so that range
// validation sees it as missing rather than as the Unix epoch.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
