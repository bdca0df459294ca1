package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	pb "github.com/dmitrijs2005/certkeeper/internal/proto"
	"github.com/dmitrijs2005/certkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const operatorKey ctxKey = "operator"

// operatorMethods need a valid operator token. Verification and Ping are
// public.
var operatorMethods = map[string]struct{}{
	pb.CertificateService_Issue_FullMethodName:          {},
	pb.CertificateService_AttachArtifact_FullMethodName: {},
	pb.CertificateService_Void_FullMethodName:           {},
	pb.CertificateService_Get_FullMethodName:            {},
	pb.CertificateService_FetchArtifact_FullMethodName:  {},
	pb.CertificateService_VerifyArtifact_FullMethodName: {},
	pb.CertificateService_Report_FullMethodName:         {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := operatorMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	operator, err := auth.OperatorFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return handler(context.WithValue(ctx, operatorKey, operator), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "elapsed", time.Since(start))
	return resp, err
}

// operatorFromContext returns the operator the interceptor authenticated.
func operatorFromContext(ctx context.Context) (string, bool) {
	op, ok := ctx.Value(operatorKey).(string)
	return op, ok && op != ""
}
