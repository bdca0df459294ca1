package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/logging"
	pb "github.com/dmitrijs2005/certkeeper/internal/proto"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/services"
	"google.golang.org/grpc"
)

// maxMessageSize bounds request and response size; artifacts travel inline.
const maxMessageSize = 32 << 20

// CertificateManager is the registrar side of the service.
type CertificateManager interface {
	Issue(ctx context.Context, req services.IssueRequest) (*models.Certificate, error)
	AttachArtifact(ctx context.Context, id string, data []byte) (*models.Certificate, error)
	Void(ctx context.Context, id, reason, actor string) (*models.Certificate, error)
	Get(ctx context.Context, id string) (*models.Certificate, error)
	FetchArtifact(ctx context.Context, id string) ([]byte, error)
	VerifyArtifact(ctx context.Context, id string) (bool, error)
}

// Verifier answers public lookups.
type Verifier interface {
	ByCode(ctx context.Context, code string) (*models.CertificateView, error)
	ByNumber(ctx context.Context, number string) (*models.CertificateView, error)
}

// Reporter serves audit reports.
type Reporter interface {
	ByDateRange(ctx context.Context, f models.ReportFilter) ([]*models.ReportRow, error)
	ByNationalID(ctx context.Context, nationalID string, includeVoid bool) ([]*models.ReportRow, error)
	Summary(ctx context.Context, from, to time.Time) (*models.StatusSummary, error)
}

var _ pb.CertificateServiceServer = (*GRPCServer)(nil)

type GRPCServer struct {
	pb.UnimplementedCertificateServiceServer
	address      string
	certificates CertificateManager
	verifier     Verifier
	reports      Reporter
	logger       logging.Logger
	jwtSecret    []byte
}

func NewGRPCServer(a string, l logging.Logger, cs CertificateManager, vs Verifier, rs Reporter, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		certificates: cs,
		verifier:     vs,
		reports:      rs,
		jwtSecret:    []byte(secretKey),
	}
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(
		grpc.MaxRecvMsgSize(maxMessageSize),
		grpc.MaxSendMsgSize(maxMessageSize),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)
	pb.RegisterCertificateServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	return srv.Serve(lis)
}
