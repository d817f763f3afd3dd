// Package memory is an in-process store implementing the repository ports.
// It backs local development without Postgres and the service tests; the
// conditional transition mirrors the SQL adapter's semantics.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"blacklist/internal/domain"
	"blacklist/internal/lifecycle"
)

type Store struct {
	mu        sync.RWMutex
	cases     map[string]domain.Case
	companies map[string]domain.Company
	users     map[string]domain.User
	now       func() time.Time
}

func New() *Store {
	return &Store{
		cases:     map[string]domain.Case{},
		companies: map[string]domain.Company{},
		users:     map[string]domain.User{},
		now:       time.Now,
	}
}

// CaseRepository

func (s *Store) Create(ctx context.Context, c domain.Case) (domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	c.UpdatedAt = c.CreatedAt
	c = cloneCase(c)
	c.RegisteredCompanyName = ""
	s.cases[c.ID] = c
	return s.withCompanyName(cloneCase(c)), nil
}

func (s *Store) Load(ctx context.Context, id string) (domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cases[id]
	if !ok {
		return domain.Case{}, domain.ErrNotFound
	}
	return s.withCompanyName(cloneCase(c)), nil
}

func (s *Store) SaveTransition(ctx context.Context, id string, expected domain.Status, d lifecycle.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[id]
	if !ok {
		return domain.ErrNotFound
	}
	if c.Status != expected {
		return domain.ErrConflict
	}
	c = d.Apply(c)
	c.UpdatedAt = s.now()
	s.cases[id] = c
	return nil
}

func (s *Store) UpdateDetails(ctx context.Context, id string, details domain.CaseDetails, decision *lifecycle.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cases[id]
	if !ok {
		return domain.ErrNotFound
	}
	if decision != nil {
		if c.Status != domain.StatusPending {
			return domain.ErrConflict
		}
		c = decision.Apply(c)
	}
	c.FullName = details.FullName
	c.FullNameKana = details.FullNameKana
	c.Gender = details.Gender
	c.BirthDate = details.BirthDate
	c.PhoneLast4 = details.PhoneLast4
	c.OccurrenceDate = details.OccurrenceDate
	c.NarrativeText = details.NarrativeText
	c.EvidencePaths = append([]string(nil), details.EvidencePaths...)
	c.UpdatedAt = s.now()
	s.cases[id] = c
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cases[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.cases, id)
	return nil
}

func (s *Store) List(ctx context.Context, f domain.CaseFilter) ([]domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Case, 0, len(s.cases))
	for _, c := range s.cases {
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		if f.CompanyID != "" && c.RegisteredCompanyID != f.CompanyID {
			continue
		}
		if f.BirthDate != nil && (c.BirthDate == nil || !sameDay(*c.BirthDate, *f.BirthDate)) {
			continue
		}
		out = append(out, s.withCompanyName(cloneCase(c)))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (s *Store) CountByStatus(ctx context.Context, status domain.Status) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.cases {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

// CompanyRepository

func (s *Store) CreateCompany(ctx context.Context, name string, isMain bool) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.companies {
		if c.Name == name {
			return domain.Company{}, domain.ErrConflict
		}
	}
	c := domain.Company{ID: uuid.NewString(), Name: name, IsMain: isMain, CreatedAt: s.now()}
	s.companies[c.ID] = c
	return c, nil
}

func (s *Store) GetCompany(ctx context.Context, id string) (domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.companies[id]
	if !ok {
		return domain.Company{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *Store) UpdateCompany(ctx context.Context, id, name string, isMain bool) (domain.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.companies[id]
	if !ok {
		return domain.Company{}, domain.ErrNotFound
	}
	for _, other := range s.companies {
		if other.ID != id && other.Name == name {
			return domain.Company{}, domain.ErrConflict
		}
	}
	c.Name = name
	c.IsMain = isMain
	s.companies[id] = c
	return c, nil
}

func (s *Store) FindCompanyByName(ctx context.Context, name string) (domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.companies {
		if c.Name == name {
			return c, nil
		}
	}
	return domain.Company{}, domain.ErrNotFound
}

func (s *Store) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Company, 0, len(s.companies))
	for _, c := range s.companies {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) DeleteCompany(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; !ok {
		return domain.ErrNotFound
	}
	for _, c := range s.cases {
		if c.RegisteredCompanyID == id {
			return domain.ErrConflict
		}
	}
	for uid, u := range s.users {
		if u.CompanyID != nil && *u.CompanyID == id {
			u.CompanyID = nil
			s.users[uid] = u
		}
	}
	delete(s.companies, id)
	return nil
}

func (s *Store) CountCompanies(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.companies), nil
}

// UserRepository

func (s *Store) UpsertUser(ctx context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev, ok := s.users[u.ID]; ok {
		u.CreatedAt = prev.CreatedAt
	} else if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	u.CompanyName = nil
	s.users[u.ID] = u
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return s.withCompany(u), nil
}

func (s *Store) ListUsers(ctx context.Context, approved bool) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.User{}
	for _, u := range s.users {
		if u.IsApproved == approved {
			out = append(out, s.withCompany(u))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) SetApproved(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.IsApproved = true
	s.users[id] = u
	return nil
}

func (s *Store) CountPendingUsers(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, u := range s.users {
		if !u.IsApproved {
			n++
		}
	}
	return n, nil
}

func (s *Store) withCompanyName(c domain.Case) domain.Case {
	if co, ok := s.companies[c.RegisteredCompanyID]; ok {
		c.RegisteredCompanyName = co.Name
	}
	return c
}

func (s *Store) withCompany(u domain.User) domain.User {
	if u.CompanyID != nil {
		if c, ok := s.companies[*u.CompanyID]; ok {
			name := c.Name
			u.CompanyName = &name
		}
	}
	return u
}

func cloneCase(c domain.Case) domain.Case {
	c.EvidencePaths = append([]string(nil), c.EvidencePaths...)
	c.FullNameKana = clonePtr(c.FullNameKana)
	c.PhoneLast4 = clonePtr(c.PhoneLast4)
	c.BirthDate = clonePtr(c.BirthDate)
	c.OccurrenceDate = clonePtr(c.OccurrenceDate)
	c.DecidedBy = clonePtr(c.DecidedBy)
	c.DecidedAt = clonePtr(c.DecidedAt)
	c.RejectionReason = clonePtr(c.RejectionReason)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
