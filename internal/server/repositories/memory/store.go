package memory

import (
	"sort"
	"sync"

	"github.com/dmitrijs2005/certkeeper/internal/server/models"
)

// StudentRecord is a student as seen by the store, with the institution data
// that reports join in.
type StudentRecord struct {
	models.Student
	Institution string
	Department  string
}

// Store holds all state shared by the in-memory repositories.
type Store struct {
	mu           sync.Mutex
	certificates map[string]*models.Certificate
	byNumber     map[string]string
	byCode       map[string]string
	activeByUser map[string]string
	sequences    map[int]*models.Sequence
	students     map[string]StudentRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		certificates: make(map[string]*models.Certificate),
		byNumber:     make(map[string]string),
		byCode:       make(map[string]string),
		activeByUser: make(map[string]string),
		sequences:    make(map[int]*models.Sequence),
		students:     make(map[string]StudentRecord),
	}
}

// PutStudent adds or replaces a student record.
func (s *Store) PutStudent(r StudentRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students[r.ID] = r
}

// Certificates returns copies of all stored certificates ordered by number.
func (s *Store) Certificates() []*models.Certificate {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Certificate, 0, len(s.certificates))
	for _, c := range s.certificates {
		out = append(out, clone(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func clone(c *models.Certificate) *models.Certificate {
	cp := *c
	if c.Void != nil {
		v := *c.Void
		cp.Void = &v
	}
	if c.Artifact != nil {
		a := *c.Artifact
		cp.Artifact = &a
	}
	return &cp
}
