package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
	"github.com/dmitrijs2005/certkeeper/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReports(t *testing.T) {
	h := newHarness(t)
	ids := h.addApproved(3)
	h.store.PutStudent(memory.StudentRecord{
		Student:     models.Student{ID: "other", FullName: "Other", NationalID: "NID-other", AcademicStatus: common.AcademicStatusApproved},
		Institution: "Tech Institute",
		Department:  "Physics",
	})
	ctx := context.Background()

	var certs []*models.Certificate
	for _, id := range append(ids, "other") {
		c, err := h.certs.Issue(ctx, IssueRequest{StudentID: id})
		require.NoError(t, err)
		certs = append(certs, c)
	}
	_, err := h.certs.Void(ctx, certs[1].ID, "error", "registrar")
	require.NoError(t, err)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rows, err := h.reports.ByDateRange(ctx, models.ReportFilter{From: from, To: to})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-000001", rows[0].Number)
	assert.Equal(t, "2024-000003", rows[1].Number)

	rows, err = h.reports.ByDateRange(ctx, models.ReportFilter{From: from, To: to, IncludeVoid: true, Institution: "Tech Institute"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Physics", rows[0].Department)

	rows, err = h.reports.ByNationalID(ctx, "NID-s001", false)
	require.NoError(t, err)
	assert.Empty(t, rows)
	rows, err = h.reports.ByNationalID(ctx, "NID-s001", true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusVoid, rows[0].Status)

	sum, err := h.reports.Summary(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, &models.StatusSummary{Total: 4, Active: 3, Void: 1}, sum)
}

func TestReports_Validation(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := h.reports.ByDateRange(ctx, models.ReportFilter{From: day, To: day})
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = h.reports.ByDateRange(ctx, models.ReportFilter{To: day})
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = h.reports.Summary(ctx, day, day.Add(-time.Hour))
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = h.reports.ByNationalID(ctx, " ", true)
	assert.ErrorIs(t, err, common.ErrValidation)
}
