package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

type LeadStore struct {
	mu       sync.Mutex
	leads    map[uuid.UUID]domain.Lead
	contacts map[uuid.UUID]domain.Contact
}

func NewLeadStore() *LeadStore {
	return &LeadStore{
		leads:    make(map[uuid.UUID]domain.Lead),
		contacts: make(map[uuid.UUID]domain.Contact),
	}
}

var _ store.LeadRepository = (*LeadStore)(nil)

func (s *LeadStore) CreateLead(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Lead{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l.ID == uuid.Nil {
		l.ID = id
	}
	if l.Status == "" {
		l.Status = domain.LeadStatusLead
	}
	now := time.Now().UTC()
	l.CreatedAt, l.UpdatedAt = now, now
	s.leads[l.ID] = l
	return l, nil
}

func (s *LeadStore) GetLead(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok {
		return domain.Lead{}, store.ErrNotFound
	}
	return l, nil
}

func (s *LeadStore) UpdateLeadStatus(ctx context.Context, id uuid.UUID, from, to domain.LeadStatus) (domain.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok {
		return domain.Lead{}, store.ErrNotFound
	}
	if l.Status != from {
		return domain.Lead{}, store.ErrInvalidTransition
	}
	l.Status = to
	l.UpdatedAt = time.Now().UTC()
	s.leads[id] = l
	return l, nil
}

func (s *LeadStore) ListLeads(ctx context.Context, limit int) ([]domain.Lead, error) {
	s.mu.Lock()
	out := make([]domain.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		out = append(out, l)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *LeadStore) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return domain.Contact{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = id
	}
	if c.Status == "" {
		c.Status = domain.ContactStatusNew
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	s.contacts[c.ID] = c
	return c, nil
}

func (s *LeadStore) GetContact(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return domain.Contact{}, store.ErrNotFound
	}
	return c, nil
}

func (s *LeadStore) UpdateContactStatus(ctx context.Context, id uuid.UUID, from, to domain.ContactStatus) (domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contacts[id]
	if !ok {
		return domain.Contact{}, store.ErrNotFound
	}
	if c.Status != from {
		return domain.Contact{}, store.ErrInvalidTransition
	}
	c.Status = to
	c.UpdatedAt = time.Now().UTC()
	s.contacts[id] = c
	return c, nil
}

func (s *LeadStore) ListContacts(ctx context.Context, limit int) ([]domain.Contact, error) {
	s.mu.Lock()
	out := make([]domain.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
