package common

import (
	"errors"
	"fmt"
)

// Error categories.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidState     = errors.New("invalid state")
	ErrConflict         = errors.New("conflict")
	ErrIntegrityFailure = errors.New("integrity failure")
	ErrStorageFailure   = errors.New("storage failure")
	ErrValidation       = errors.New("validation error")

	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Specific errors. Each one wraps its category.
var (
	ErrStudentNotFound     = fmt.Errorf("student %w", ErrNotFound)
	ErrCertificateNotFound = fmt.Errorf("certificate %w", ErrNotFound)
	ErrArtifactNotFound    = fmt.Errorf("artifact %w", ErrNotFound)

	ErrStudentNotEligible         = fmt.Errorf("%w: student is not approved", ErrInvalidState)
	ErrDuplicateActiveCertificate = fmt.Errorf("%w: student already has an active certificate", ErrInvalidState)
	ErrInvalidTransition          = fmt.Errorf("%w: only active certificates can be voided", ErrInvalidState)
	ErrAllocationConflict         = fmt.Errorf("%w: certificate number allocation", ErrConflict)
	ErrVerificationCodeExhausted  = fmt.Errorf("%w: verification code generation", ErrConflict)
	ErrVerificationCodeNotUnique  = fmt.Errorf("%w: verification code already used", ErrConflict)
	ErrArtifactHashMismatch       = fmt.Errorf("%w: artifact hash mismatch", ErrIntegrityFailure)
	ErrArtifactNotAttached        = fmt.Errorf("%w: certificate has no artifact", ErrNotFound)
)
