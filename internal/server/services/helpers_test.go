package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/dbx"
	"github.com/dmitrijs2005/certkeeper/internal/logging"
	"github.com/dmitrijs2005/certkeeper/internal/server/artifacts"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/certkeeper/internal/server/sequence"
	"github.com/dmitrijs2005/certkeeper/internal/server/verifycode"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type harness struct {
	store     *memory.Store
	rm        *memory.RepositoryManager
	files     *artifacts.FileStore
	root      string
	certs     *CertificateService
	verify    *VerificationService
	reports   *ReportService
	allocator *sequence.Allocator
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	store := memory.NewStore()
	rm := memory.NewRepositoryManager(store)
	tx := dbx.NopTransactor{}
	root := t.TempDir()
	files := artifacts.NewFileStore(root)
	alloc := sequence.NewAllocator(rm.Sequences(tx.Conn()), "", 0)

	certs := NewCertificateService(tx, rm, alloc, verifycode.NewGenerator(), files, logging.Discard())
	certs.now = func() time.Time { return fixedNow }

	return &harness{
		store:     store,
		rm:        rm,
		files:     files,
		root:      root,
		certs:     certs,
		verify:    NewVerificationService(tx, rm, logging.Discard()),
		reports:   NewReportService(tx, rm),
		allocator: alloc,
	}
}

func (h *harness) addStudent(id, status string) {
	h.store.PutStudent(memory.StudentRecord{
		Student: models.Student{
			ID:             id,
			FullName:       "Student " + id,
			NationalID:     "NID-" + id,
			AcademicStatus: status,
			CourseName:     "Computer Science",
		},
		Institution: "Open University",
		Department:  "Informatics",
	})
}

func (h *harness) addApproved(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("s%03d", i)
		h.addStudent(ids[i], common.AcademicStatusApproved)
	}
	return ids
}

// scriptedCodes returns codes from a fixed list, ignoring the exists check,
// so tests can force a collision at insert time.
type scriptedCodes struct {
	mu    sync.Mutex
	codes []string
}

func (s *scriptedCodes) Generate(ctx context.Context, exists verifycode.ExistsFunc) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.codes) == 0 {
		return "", common.ErrVerificationCodeExhausted
	}
	c := s.codes[0]
	s.codes = s.codes[1:]
	return c, nil
}

type failingAllocator struct{ err error }

func (f failingAllocator) Next(context.Context, int) (string, error) { return "", f.err }

// failingStore fails every write and read.
type failingStore struct{}

func (failingStore) Store(context.Context, []byte, string, time.Time) (*models.Artifact, error) {
	return nil, fmt.Errorf("%w: disk full", common.ErrStorageFailure)
}
func (failingStore) Fetch(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("%w: unreachable", common.ErrStorageFailure)
}
func (failingStore) VerifyIntegrity(context.Context, string, string) bool { return false }
func (failingStore) Delete(context.Context, string) bool                  { return false }
