package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/filex"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// FileStore keeps artifacts on the local filesystem under a root directory.
// Returned paths are relative to the root and use forward slashes.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

func (s *FileStore) Store(ctx context.Context, data []byte, number string, issuedAt time.Time) (*models.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := Key(number, issuedAt)
	full, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureDir(filepath.Dir(full)); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageFailure, err)
	}
	if err := filex.WriteFileAtomic(full, data, 0o640); err != nil {
		return nil, fmt.Errorf("%w: write %s: %v", common.ErrStorageFailure, key, err)
	}

	return &models.Artifact{Path: key, Hash: Digest(data), Size: int64(len(data))}, nil
}

func (s *FileStore) Fetch(ctx context.Context, path string) ([]byte, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.ErrArtifactNotFound
		}
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrStorageFailure, path, err)
	}
	return b, nil
}

func (s *FileStore) VerifyIntegrity(ctx context.Context, path string, expectedHash string) bool {
	b, err := s.Fetch(ctx, path)
	if err != nil {
		return false
	}
	return matches(b, expectedHash)
}

func (s *FileStore) Delete(ctx context.Context, path string) bool {
	full, err := s.resolve(path)
	if err != nil {
		return false
	}
	return os.Remove(full) == nil
}

// resolve maps a storage path to a filesystem path, refusing anything that
// would escape the root.
func (s *FileStore) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: invalid artifact path %q", common.ErrValidation, path)
	}
	return filepath.Join(s.root, clean), nil
}
