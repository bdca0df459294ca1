package models

import "time"

// Status is the lifecycle state of a certificate.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusVoid    Status = "VOID"
	StatusExpired Status = "EXPIRED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusVoid, StatusExpired:
		return true
	}
	return false
}

// Certificate is a permanent record of a course completion.
//
// Void and Artifact are field groups: a group is either entirely absent (nil)
// or entirely present, so partially populated metadata cannot be represented.
type Certificate struct {
	ID               string
	Number           string
	VerificationCode string
	StudentID        string
	IssuedAt         time.Time
	Status           Status

	// Void is set iff Status == StatusVoid.
	Void *VoidInfo
	// Artifact is set once a PDF has been stored and bound to the record.
	Artifact *Artifact

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VoidInfo records who revoked a certificate, when and why.
type VoidInfo struct {
	Reason string
	At     time.Time
	By     string
}

// Artifact locates the stored PDF and fingerprints its bytes.
type Artifact struct {
	// Path is the storage key, e.g. "2024/03/2024-000001.pdf".
	Path string
	// Hash is the hex-encoded SHA-256 of the stored bytes.
	Hash string
	// Size is the byte length of the stored file.
	Size int64
}

// IsActive reports whether the certificate is currently valid and unrevoked.
func (c *Certificate) IsActive() bool {
	return c.Status == StatusActive
}

// Consistent checks the field-group invariants of the record.
func (c *Certificate) Consistent() bool {
	if (c.Status == StatusVoid) != (c.Void != nil) {
		return false
	}
	if c.Artifact != nil && (c.Artifact.Path == "" || c.Artifact.Hash == "") {
		return false
	}
	return true
}

// CertificateView is the public projection returned to third parties
// verifying a certificate. It never carries internal IDs, hashes or void
// metadata beyond the status.
type CertificateView struct {
	Number      string    `json:"number"`
	StudentName string    `json:"student_name"`
	CourseName  string    `json:"course_name"`
	IssuedAt    time.Time `json:"issued_at"`
	Status      Status    `json:"status"`
}

// Valid reports whether a downstream party may trust the certificate.
func (v *CertificateView) Valid() bool {
	return v.Status == StatusActive
}
