package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type LeadStatus string

const (
	LeadStatusLead     LeadStatus = "LEAD"
	LeadStatusMQL      LeadStatus = "MQL"
	LeadStatusSQL      LeadStatus = "SQL"
	LeadStatusCustomer LeadStatus = "CUSTOMER"
)

var leadFunnel = []LeadStatus{LeadStatusLead, LeadStatusMQL, LeadStatusSQL, LeadStatusCustomer}

func ParseLeadStatus(s string) (LeadStatus, error) {
	for _, st := range leadFunnel {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid lead status %q", s)
}

// CanTransitionTo allows moving forward through the funnel, skipping stages.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	return funnelIndex(leadFunnel, s) >= 0 && funnelIndex(leadFunnel, next) > funnelIndex(leadFunnel, s)
}

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "NEW"
	ContactStatusInProgress ContactStatus = "IN_PROGRESS"
	ContactStatusCompleted  ContactStatus = "COMPLETED"
	ContactStatusArchived   ContactStatus = "ARCHIVED"
)

var contactFlow = []ContactStatus{ContactStatusNew, ContactStatusInProgress, ContactStatusCompleted, ContactStatusArchived}

func ParseContactStatus(s string) (ContactStatus, error) {
	for _, st := range contactFlow {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("invalid contact status %q", s)
}

// CanTransitionTo allows forward moves only. Any non-archived contact may be archived.
func (s ContactStatus) CanTransitionTo(next ContactStatus) bool {
	return funnelIndex(contactFlow, s) >= 0 && funnelIndex(contactFlow, next) > funnelIndex(contactFlow, s)
}

func funnelIndex[T comparable](flow []T, v T) int {
	for i, s := range flow {
		if s == v {
			return i
		}
	}
	return -1
}

type Lead struct {
	bun.BaseModel `bun:"table:leads"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid"`
	Name      string     `bun:"name,notnull"`
	Email     string     `bun:"email,notnull"`
	Company   string     `bun:"company,notnull"`
	Phone     string     `bun:"phone,notnull"`
	Message   string     `bun:"message,notnull"`
	Source    string     `bun:"source,notnull"`
	Status    LeadStatus `bun:"status,notnull"`
	CreatedAt time.Time  `bun:"created_at,notnull"`
	UpdatedAt time.Time  `bun:"updated_at,notnull"`
}

func (l *Lead) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if l.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			l.ID = id
		}
		if l.CreatedAt.IsZero() {
			l.CreatedAt = now
		}
		if l.UpdatedAt.IsZero() {
			l.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		l.UpdatedAt = now
	}
	return nil
}

type Contact struct {
	bun.BaseModel `bun:"table:contacts"`

	ID        uuid.UUID     `bun:"id,pk,type:uuid"`
	Name      string        `bun:"name,notnull"`
	Email     string        `bun:"email,notnull"`
	Company   string        `bun:"company,notnull"`
	Phone     string        `bun:"phone,notnull"`
	Message   string        `bun:"message,notnull"`
	Status    ContactStatus `bun:"status,notnull"`
	CreatedAt time.Time     `bun:"created_at,notnull"`
	UpdatedAt time.Time     `bun:"updated_at,notnull"`
}

func (c *Contact) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if c.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			c.ID = id
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.UpdatedAt.IsZero() {
			c.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		c.UpdatedAt = now
	}
	return nil
}
