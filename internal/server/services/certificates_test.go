package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_VoidReissueScenario(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()

	first, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-000001", first.Number)
	assert.Equal(t, models.StatusActive, first.Status)
	assert.Len(t, first.VerificationCode, 22)
	assert.Equal(t, fixedNow, first.IssuedAt)

	_, err = h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.ErrorIs(t, err, common.ErrDuplicateActiveCertificate)
	assert.ErrorIs(t, err, common.ErrInvalidState)

	voided, err := h.certs.Void(ctx, first.ID, "Clerical error", "registrar")
	require.NoError(t, err)
	assert.Equal(t, models.StatusVoid, voided.Status)

	second, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, "2024-000002", second.Number)

	all := h.store.Certificates()
	require.Len(t, all, 2)
	assert.Equal(t, models.StatusVoid, all[0].Status)
	assert.Equal(t, models.StatusActive, all[1].Status)
}

func TestIssue_Rejections(t *testing.T) {
	h := newHarness(t)
	h.addStudent("pending", "PENDING")
	ctx := context.Background()
	future := fixedNow.Add(24 * time.Hour)

	tests := []struct {
		name string
		req  IssueRequest
		want error
	}{
		{"blank student", IssueRequest{StudentID: "  "}, common.ErrValidation},
		{"unknown student", IssueRequest{StudentID: "ghost"}, common.ErrStudentNotFound},
		{"not approved", IssueRequest{StudentID: "pending"}, common.ErrStudentNotEligible},
		{"future date", IssueRequest{StudentID: "pending", IssuedAt: &future}, common.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.certs.Issue(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Empty(t, h.store.Certificates())
	_, err := h.rm.Sequences(nil).Get(ctx, 2024)
	assert.ErrorIs(t, err, common.ErrNotFound, "rejected requests must not consume numbers")
}

func TestIssue_BackdatedUsesIssueYear(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	when := time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC)

	c, err := h.certs.Issue(context.Background(), IssueRequest{StudentID: "s1", IssuedAt: &when})
	require.NoError(t, err)
	assert.Equal(t, "2023-000001", c.Number)
	assert.Equal(t, when, c.IssuedAt)
}

func TestIssue_ConcurrentDistinctStudentsGetContiguousNumbers(t *testing.T) {
	const n = 150
	h := newHarness(t)
	ids := h.addApproved(n)

	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			c, err := h.certs.Issue(context.Background(), IssueRequest{StudentID: id})
			if !assert.NoError(t, err) {
				return
			}
			numbers <- c.Number
		}(id)
	}
	wg.Wait()
	close(numbers)

	got := map[string]bool{}
	for num := range numbers {
		assert.False(t, got[num], "duplicate number %s", num)
		got[num] = true
	}
	require.Len(t, got, n)
	for i := 1; i <= n; i++ {
		assert.True(t, got[fmt.Sprintf("2024-%06d", i)], "missing 2024-%06d", i)
	}
}

func TestIssue_ConcurrentSameStudentYieldsOneActive(t *testing.T) {
	const n = 50
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok, dup := 0, 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.certs.Issue(context.Background(), IssueRequest{StudentID: "s1"})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, common.ErrDuplicateActiveCertificate):
				dup++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)
	assert.Len(t, h.store.Certificates(), 1)
}

func TestIssue_ConcurrentIssueAndVoidKeepAtMostOneActive(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()

	first, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
		}()
		go func() {
			defer wg.Done()
			for _, c := range h.store.Certificates() {
				if c.IsActive() {
					_, _ = h.certs.Void(ctx, c.ID, "reissue", "registrar")
				}
			}
		}()
	}
	wg.Wait()

	active := 0
	for _, c := range h.store.Certificates() {
		assert.True(t, c.Consistent(), c.Number)
		if c.IsActive() {
			active++
		}
	}
	assert.LessOrEqual(t, active, 1)

	got, err := h.certs.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVoid, got.Status)
}

func TestIssue_RetriesOnceOnCodeCollision(t *testing.T) {
	h := newHarness(t)
	h.addApproved(3)
	h.certs.codes = &scriptedCodes{codes: []string{"taken", "taken", "fresh", "taken", "taken"}}
	ctx := context.Background()

	_, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s000"})
	require.NoError(t, err)

	c, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s001"})
	require.NoError(t, err)
	assert.Equal(t, "fresh", c.VerificationCode)

	_, err = h.certs.Issue(ctx, IssueRequest{StudentID: "s002"})
	assert.ErrorIs(t, err, common.ErrVerificationCodeNotUnique)
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestIssue_AllocationFailureCreatesNothing(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	h.certs.numbers = failingAllocator{err: common.ErrAllocationConflict}

	_, err := h.certs.Issue(context.Background(), IssueRequest{StudentID: "s1"})
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Empty(t, h.store.Certificates())
}

func TestVoid_IsOneWay(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()

	c, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)

	v, err := h.certs.Void(ctx, c.ID, "  Academic misconduct ", "dean")
	require.NoError(t, err)
	require.NotNil(t, v.Void)
	assert.Equal(t, "Academic misconduct", v.Void.Reason)
	assert.Equal(t, "dean", v.Void.By)
	assert.Equal(t, fixedNow, v.Void.At)

	_, err = h.certs.Void(ctx, c.ID, "again", "dean")
	require.ErrorIs(t, err, common.ErrInvalidTransition)
	assert.ErrorIs(t, err, common.ErrInvalidState)

	stored, err := h.certs.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVoid, stored.Status)
	assert.Equal(t, "Academic misconduct", stored.Void.Reason)
	assert.True(t, stored.Consistent())
}

func TestVoid_Rejections(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()

	c, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)

	_, err = h.certs.Void(ctx, c.ID, " ", "dean")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = h.certs.Void(ctx, c.ID, "reason", "")
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = h.certs.Void(ctx, "missing", "reason", "dean")
	assert.ErrorIs(t, err, common.ErrCertificateNotFound)

	stored, err := h.certs.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, stored.Status)
	assert.Nil(t, stored.Void)
}

func TestAttachArtifact_RoundTripAndCorruption(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()
	pdf := []byte("%PDF-1.7\ncertificate of completion\n%%EOF")

	c, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)

	attached, err := h.certs.AttachArtifact(ctx, c.ID, pdf)
	require.NoError(t, err)
	require.NotNil(t, attached.Artifact)
	assert.Equal(t, "2024/06/2024-000001.pdf", attached.Artifact.Path)
	assert.Equal(t, int64(len(pdf)), attached.Artifact.Size)
	assert.Equal(t, models.StatusActive, attached.Status)

	got, err := h.certs.FetchArtifact(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, pdf, got)

	ok, err := h.certs.VerifyArtifact(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	full := filepath.Join(h.root, filepath.FromSlash(attached.Artifact.Path))
	raw, err := os.ReadFile(full)
	require.NoError(t, err)
	raw[len(raw)/2] ^= 0x20
	require.NoError(t, os.WriteFile(full, raw, 0o640))

	ok, err = h.certs.VerifyArtifact(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.certs.FetchArtifact(ctx, c.ID)
	assert.ErrorIs(t, err, common.ErrIntegrityFailure)
}

func TestAttachArtifact_IsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()
	pdf := []byte("%PDF same bytes")

	c, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)

	a1, err := h.certs.AttachArtifact(ctx, c.ID, pdf)
	require.NoError(t, err)
	a2, err := h.certs.AttachArtifact(ctx, c.ID, pdf)
	require.NoError(t, err)
	assert.Equal(t, a1.Artifact, a2.Artifact)
}

func TestAttachArtifact_StorageFailureLeavesRecordUntouched(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()

	c, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)

	h.certs.artifacts = failingStore{}
	_, err = h.certs.AttachArtifact(ctx, c.ID, []byte("pdf"))
	require.ErrorIs(t, err, common.ErrStorageFailure)

	stored, err := h.certs.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Artifact)
	assert.Equal(t, c.UpdatedAt, stored.UpdatedAt)
}

func TestAttachArtifact_Rejections(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.certs.AttachArtifact(ctx, "missing", []byte("pdf"))
	assert.ErrorIs(t, err, common.ErrCertificateNotFound)

	_, err = h.certs.AttachArtifact(ctx, "missing", nil)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestFetchArtifact_NotAttached(t *testing.T) {
	h := newHarness(t)
	h.addStudent("s1", common.AcademicStatusApproved)
	ctx := context.Background()

	c, err := h.certs.Issue(ctx, IssueRequest{StudentID: "s1"})
	require.NoError(t, err)

	_, err = h.certs.FetchArtifact(ctx, c.ID)
	assert.ErrorIs(t, err, common.ErrArtifactNotAttached)
	_, err = h.certs.VerifyArtifact(ctx, c.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
