package common

// AccessTokenHeaderName is the gRPC metadata key carrying the operator token.
const AccessTokenHeaderName = "access_token"

// AcademicStatusApproved is the only student status eligible for issuance.
const AcademicStatusApproved = "APPROVED"
