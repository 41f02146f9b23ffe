package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

type LeadRepo struct {
	db *bun.DB
}

func NewLeadRepo(db *bun.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

var _ store.LeadRepository = (*LeadRepo)(nil)

func (r *LeadRepo) CreateLead(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	row := l
	if row.Status == "" {
		row.Status = domain.LeadStatusLead
	}
	if _, err := r.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return domain.Lead{}, err
	}
	return row, nil
}

func (r *LeadRepo) GetLead(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	var l domain.Lead
	if err := r.db.NewSelect().Model(&l).Where("id = ?", id).Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Lead{}, store.ErrNotFound
		}
		return domain.Lead{}, err
	}
	return l, nil
}

// UpdateLeadStatus is a compare-and-set on the current status.
func (r *LeadRepo) UpdateLeadStatus(ctx context.Context, id uuid.UUID, from, to domain.LeadStatus) (domain.Lead, error) {
	var out domain.Lead
	err := r.db.NewUpdate().
		Model(&out).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("status = ?", from).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetLead(ctx, id); getErr != nil {
				return domain.Lead{}, getErr
			}
			return domain.Lead{}, store.ErrInvalidTransition
		}
		return domain.Lead{}, err
	}
	return out, nil
}

func (r *LeadRepo) ListLeads(ctx context.Context, limit int) ([]domain.Lead, error) {
	var rows []domain.Lead
	q := r.db.NewSelect().Model(&rows).OrderExpr("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *LeadRepo) CreateContact(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	row := c
	if row.Status == "" {
		row.Status = domain.ContactStatusNew
	}
	if _, err := r.db.NewInsert().Model(&row).Exec(ctx); err != nil {
		return domain.Contact{}, err
	}
	return row, nil
}

func (r *LeadRepo) GetContact(ctx context.Context, id uuid.UUID) (domain.Contact, error) {
	var c domain.Contact
	if err := r.db.NewSelect().Model(&c).Where("id = ?", id).Limit(1).Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Contact{}, store.ErrNotFound
		}
		return domain.Contact{}, err
	}
	return c, nil
}

func (r *LeadRepo) UpdateContactStatus(ctx context.Context, id uuid.UUID, from, to domain.ContactStatus) (domain.Contact, error) {
	var out domain.Contact
	err := r.db.NewUpdate().
		Model(&out).
		Set("status = ?", to).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("status = ?", from).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if _, getErr := r.GetContact(ctx, id); getErr != nil {
				return domain.Contact{}, getErr
			}
			return domain.Contact{}, store.ErrInvalidTransition
		}
		return domain.Contact{}, err
	}
	return out, nil
}

func (r *LeadRepo) ListContacts(ctx context.Context, limit int) ([]domain.Contact, error) {
	var rows []domain.Contact
	q := r.db.NewSelect().Model(&rows).OrderExpr("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}
