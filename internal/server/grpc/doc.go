// Package grpc exposes the certificate services over gRPC.
//
// Registrar operations (Issue, AttachArtifact, Void, Get, FetchArtifact,
// VerifyArtifact, Report) require an operator access token in the request
// metadata; the operator name it carries is recorded on voids. Ping and the
// two verification lookups are public.
package grpc
