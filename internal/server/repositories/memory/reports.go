package memory

import (
	"context"
	"sort"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// ReportRepository implements reports.Repository on a Store.
type ReportRepository struct {
	s *Store
}

func (r *ReportRepository) ByDateRange(ctx context.Context, f models.ReportFilter) ([]*models.ReportRow, error) {
	rows := r.collect(func(c *models.Certificate, st StudentRecord) bool {
		if c.IssuedAt.Before(f.From) || !c.IssuedAt.Before(f.To) {
			return false
		}
		if !f.IncludeVoid && c.Status == models.StatusVoid {
			return false
		}
		if f.Institution != "" && st.Institution != f.Institution {
			return false
		}
		return f.Department == "" || st.Department == f.Department
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].Number < rows[j].Number })
	return rows, nil
}

func (r *ReportRepository) ByNationalID(ctx context.Context, nationalID string, includeVoid bool) ([]*models.ReportRow, error) {
	rows := r.collect(func(c *models.Certificate, st StudentRecord) bool {
		return st.NationalID == nationalID && (includeVoid || c.Status != models.StatusVoid)
	})
	sort.Slice(rows, func(i, j int) bool { return rows[i].IssuedAt.After(rows[j].IssuedAt) })
	return rows, nil
}

func (r *ReportRepository) Summary(ctx context.Context, from, to time.Time) (*models.StatusSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sum := &models.StatusSummary{}
	for _, c := range r.s.certificates {
		if c.IssuedAt.Before(from) || !c.IssuedAt.Before(to) {
			continue
		}
		sum.Total++
		switch c.Status {
		case models.StatusActive:
			sum.Active++
		case models.StatusVoid:
			sum.Void++
		case models.StatusExpired:
			sum.Expired++
		}
	}
	return sum, nil
}

func (r *ReportRepository) collect(keep func(*models.Certificate, StudentRecord) bool) []*models.ReportRow {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var rows []*models.ReportRow
	for _, c := range r.s.certificates {
		st := r.s.students[c.StudentID]
		if !keep(c, st) {
			continue
		}
		rows = append(rows, &models.ReportRow{
			Number:          c.Number,
			IssuedAt:        c.IssuedAt,
			Status:          c.Status,
			StudentName:     st.FullName,
			NationalID:      st.NationalID,
			CourseName:      st.CourseName,
			InstitutionName: st.Institution,
			Department:      st.Department,
		})
	}
	return rows
}
