package artifacts

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"path"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// Store persists artifact bytes under deterministic paths.
type Store interface {
	// Store writes data for the certificate and returns its path, digest and
	// size. A failed write leaves nothing observable at the derived path.
	Store(ctx context.Context, data []byte, number string, issuedAt time.Time) (*models.Artifact, error)
	// Fetch returns the bytes at path or common.ErrArtifactNotFound.
	Fetch(ctx context.Context, path string) ([]byte, error)
	// VerifyIntegrity reports whether the bytes at path hash to expectedHash.
	// Read failures count as a mismatch.
	VerifyIntegrity(ctx context.Context, path string, expectedHash string) bool
	// Delete removes the artifact, reporting whether it succeeded.
	Delete(ctx context.Context, path string) bool
}

// Key derives the storage path of a certificate's PDF, partitioned by the
// year and month of issuance, e.g. "2024/03/2024-000001.pdf".
func Key(number string, issuedAt time.Time) string {
	return path.Join(fmt.Sprintf("%04d", issuedAt.Year()), fmt.Sprintf("%02d", int(issuedAt.Month())), number+".pdf")
}

// Digest returns the hex-encoded SHA-256 of data.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func matches(data []byte, expectedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(Digest(data)), []byte(expectedHash)) == 1
}
