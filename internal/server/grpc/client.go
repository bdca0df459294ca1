package grpc

import (
	"context"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	pb "github.com/dmitrijs2005/certkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Dial opens an insecure client connection to addr.
func Dial(addr string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxMessageSize)),
	}, opts...)
	return grpc.NewClient(addr, opts...)
}

// Client calls the certificate service. Token, when set, is sent as the
// operator access token on every call.
type Client struct {
	api   pb.CertificateServiceClient
	token string
}

func NewClient(cc grpc.ClientConnInterface, token string) *Client {
	return &Client{api: pb.NewCertificateServiceClient(cc), token: token}
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *Client) outgoing(ctx context.Context) context.Context {
	if c.token == "" {
		return ctx
	}
	return withAccessToken(ctx, c.token)
}

func (c *Client) Ping(ctx context.Context) (*pb.PingResponse, error) {
	return c.api.Ping(c.outgoing(ctx), &pb.PingRequest{})
}

func (c *Client) Issue(ctx context.Context, in *pb.IssueRequest) (*pb.Certificate, error) {
	return c.api.Issue(c.outgoing(ctx), in)
}

func (c *Client) AttachArtifact(ctx context.Context, in *pb.AttachArtifactRequest) (*pb.Certificate, error) {
	return c.api.AttachArtifact(c.outgoing(ctx), in)
}

func (c *Client) Void(ctx context.Context, in *pb.VoidRequest) (*pb.Certificate, error) {
	return c.api.Void(c.outgoing(ctx), in)
}

func (c *Client) Get(ctx context.Context, id string) (*pb.Certificate, error) {
	return c.api.Get(c.outgoing(ctx), &pb.CertificateRequest{CertificateId: id})
}

func (c *Client) FetchArtifact(ctx context.Context, id string) (*pb.ArtifactResponse, error) {
	return c.api.FetchArtifact(c.outgoing(ctx), &pb.CertificateRequest{CertificateId: id})
}

func (c *Client) VerifyArtifact(ctx context.Context, id string) (*pb.VerifyArtifactResponse, error) {
	return c.api.VerifyArtifact(c.outgoing(ctx), &pb.CertificateRequest{CertificateId: id})
}

func (c *Client) VerifyByCode(ctx context.Context, code string) (*pb.Verification, error) {
	return c.api.VerifyByCode(c.outgoing(ctx), &pb.VerifyByCodeRequest{Code: code})
}

func (c *Client) VerifyByNumber(ctx context.Context, number string) (*pb.Verification, error) {
	return c.api.VerifyByNumber(c.outgoing(ctx), &pb.VerifyByNumberRequest{Number: number})
}

func (c *Client) Report(ctx context.Context, in *pb.ReportRequest) (*pb.ReportResponse, error) {
	return c.api.Report(c.outgoing(ctx), in)
}
