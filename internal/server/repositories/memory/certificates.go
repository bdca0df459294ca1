package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/certkeeper/internal/common"
	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// CertificateRepository implements certificates.Repository on a Store.
type CertificateRepository struct {
	s *Store
}

func (r *CertificateRepository) Create(ctx context.Context, c *models.Certificate) error {
	if !c.Consistent() {
		return fmt.Errorf("%w: certificate %s has partial void or artifact fields", common.ErrValidation, c.ID)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.byNumber[c.Number]; ok {
		return common.ErrAllocationConflict
	}
	if _, ok := r.s.byCode[c.VerificationCode]; ok {
		return common.ErrVerificationCodeNotUnique
	}
	if c.Status == models.StatusActive {
		if _, ok := r.s.activeByUser[c.StudentID]; ok {
			return common.ErrDuplicateActiveCertificate
		}
	}

	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	stored := clone(c)
	r.s.certificates[c.ID] = stored
	r.s.byNumber[c.Number] = c.ID
	r.s.byCode[c.VerificationCode] = c.ID
	if c.Status == models.StatusActive {
		r.s.activeByUser[c.StudentID] = c.ID
	}
	return nil
}

func (r *CertificateRepository) GetByID(ctx context.Context, id string) (*models.Certificate, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.certificates[id]
	if !ok {
		return nil, common.ErrCertificateNotFound
	}
	return clone(c), nil
}

// GetByIDForUpdate has no locking to do beyond GetByID: the mutation that
// follows re-checks its precondition under the store lock.
func (r *CertificateRepository) GetByIDForUpdate(ctx context.Context, id string) (*models.Certificate, error) {
	return r.GetByID(ctx, id)
}

func (r *CertificateRepository) HasActive(ctx context.Context, studentID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.activeByUser[studentID]
	return ok, nil
}

func (r *CertificateRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.byCode[code]
	return ok, nil
}

func (r *CertificateRepository) SetArtifact(ctx context.Context, id string, a *models.Artifact, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.certificates[id]
	if !ok {
		return common.ErrCertificateNotFound
	}
	cp := *a
	c.Artifact = &cp
	c.UpdatedAt = at
	return nil
}

func (r *CertificateRepository) Void(ctx context.Context, id string, v *models.VoidInfo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.certificates[id]
	if !ok || c.Status != models.StatusActive {
		return common.ErrInvalidTransition
	}
	cp := *v
	c.Status = models.StatusVoid
	c.Void = &cp
	c.UpdatedAt = v.At
	delete(r.s.activeByUser, c.StudentID)
	return nil
}

func (r *CertificateRepository) ViewByCode(ctx context.Context, code string) (*models.CertificateView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view(r.s.byCode[code])
}

func (r *CertificateRepository) ViewByNumber(ctx context.Context, number string) (*models.CertificateView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.view(r.s.byNumber[number])
}

// view must be called with the store lock held.
func (r *CertificateRepository) view(id string) (*models.CertificateView, error) {
	c, ok := r.s.certificates[id]
	if !ok {
		return nil, common.ErrCertificateNotFound
	}
	st := r.s.students[c.StudentID]
	return &models.CertificateView{
		Number:      c.Number,
		StudentName: st.FullName,
		CourseName:  st.CourseName,
		IssuedAt:    c.IssuedAt,
		Status:      c.Status,
	}, nil
}
