package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/store"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"

	constraintPrimaryKey = "meetings_pkey"
	constraintSlotUnique = "meetings_slot_unique"
	constraintNoOverlap  = "meetings_no_overlap"
)

type MeetingRepo struct {
	db *bun.DB
}

func NewMeetingRepo(db *bun.DB) *MeetingRepo {
	return &MeetingRepo{db: db}
}

var _ store.MeetingRepository = (*MeetingRepo)(nil)

type dayTx struct {
	tx bun.Tx
}

func (r *MeetingRepo) InsertIfFree(ctx context.Context, m domain.Meeting) (domain.Meeting, error) {
	var out domain.Meeting
	err := r.InDayTransaction(ctx, m.Date, func(ctx context.Context, tx store.DayTx) error {
		if err := ensureSlotFree(ctx, tx, m); err != nil {
			return err
		}
		created, err := tx.InsertMeeting(ctx, m)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		var cErr *store.ConflictError
		if errors.As(err, &cErr) && cErr.MeetingID == uuid.Nil {
			return domain.Meeting{}, r.identifyConflict(ctx, m)
		}
		return domain.Meeting{}, err
	}
	return out, nil
}

// InDayTransaction serialises writers for one calendar day. The table
// constraints remain the source of truth when the lock is bypassed.
func (r *MeetingRepo) InDayTransaction(ctx context.Context, date domain.Date, fn func(ctx context.Context, tx store.DayTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockDay(ctx, tx, date); err != nil {
			return err
		}
		return fn(ctx, dayTx{tx: tx})
	})
}

func lockDay(ctx context.Context, tx bun.Tx, date domain.Date) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", "meetbook:day:"+date.String()).Exec(ctx)
	return err
}

func ensureSlotFree(ctx context.Context, tx store.DayTx, m domain.Meeting) error {
	existing, err := tx.ListActiveOnDate(ctx, m.Date)
	if err != nil {
		return err
	}
	if hit, ok := store.FirstOverlap(existing, m.Slot(), uuid.Nil); ok {
		return &store.ConflictError{MeetingID: hit.ID}
	}
	return nil
}

// identifyConflict runs outside the aborted transaction to find the row that
// tripped a constraint.
func (r *MeetingRepo) identifyConflict(ctx context.Context, m domain.Meeting) error {
	if m.ID != uuid.Nil {
		if existing, err := r.Get(ctx, m.ID); err == nil {
			return &store.ConflictError{MeetingID: existing.ID}
		}
	}
	var hit domain.Meeting
	err := r.db.NewSelect().
		Model(&hit).
		Where("status <> ?", domain.MeetingStatusCancelled).
		Where("starts_at < ?", m.EndsAt).
		Where("ends_at > ?", m.StartsAt).
		OrderExpr("starts_at ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return &store.ConflictError{}
	}
	return &store.ConflictError{MeetingID: hit.ID}
}

func (r dayTx) ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
	return listActiveOnDate(ctx, r.tx, date)
}

func (r dayTx) InsertMeeting(ctx context.Context, m domain.Meeting) (domain.Meeting, error) {
	row := m
	if row.Status == "" {
		row.Status = domain.MeetingStatusPending
	}

	_, err := r.tx.NewInsert().Model(&row).Exec(ctx)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == pgExclusionViolation && pgErr.ConstraintName == constraintNoOverlap:
				return domain.Meeting{}, &store.ConflictError{}
			case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintSlotUnique:
				return domain.Meeting{}, &store.ConflictError{}
			case pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintPrimaryKey:
				return domain.Meeting{}, &store.ConflictError{MeetingID: row.ID}
			}
		}
		return domain.Meeting{}, err
	}
	return row, nil
}

func listActiveOnDate(ctx context.Context, db bun.IDB, date domain.Date) ([]domain.Meeting, error) {
	var rows []domain.Meeting
	err := db.NewSelect().
		Model(&rows).
		Where(`"date" = ?`, date).
		Where("status <> ?", domain.MeetingStatusCancelled).
		OrderExpr(`"time" ASC`).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MeetingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, next domain.MeetingStatus, extra store.StatusUpdate) (domain.Meeting, error) {
	from := domain.MeetingPredecessors(next)
	if len(from) == 0 {
		return domain.Meeting{}, store.ErrInvalidTransition
	}

	var out domain.Meeting
	q := r.db.NewUpdate().
		Model(&out).
		Set("status = ?", next).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("status IN (?)", bun.In(from)).
		Returning("*")
	if extra.GoogleEventID != nil {
		q = q.Set("google_event_id = ?", *extra.GoogleEventID)
	}

	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Meeting{}, r.explainMissedUpdate(ctx, id)
		}
		return domain.Meeting{}, err
	}
	return out, nil
}

func (r *MeetingRepo) explainMissedUpdate(ctx context.Context, id uuid.UUID) error {
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	return store.ErrInvalidTransition
}

func (r *MeetingRepo) AttachEventID(ctx context.Context, id uuid.UUID, eventID string) (domain.Meeting, error) {
	var out domain.Meeting
	err := r.db.NewUpdate().
		Model(&out).
		Set("google_event_id = ?", eventID).
		Set("last_sync_error = ''").
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Where("google_event_id IS NULL").
		Where("status IN (?)", bun.In([]domain.MeetingStatus{domain.MeetingStatusPending, domain.MeetingStatusConfirmed})).
		Returning("*").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.Get(ctx, id)
		}
		return domain.Meeting{}, err
	}
	return out, nil
}

func (r *MeetingRepo) RecordSyncFailure(ctx context.Context, id uuid.UUID, reason string) error {
	res, err := r.db.NewUpdate().
		Model((*domain.Meeting)(nil)).
		Set("sync_attempts = sync_attempts + 1").
		Set("last_sync_error = ?", reason).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *MeetingRepo) Get(ctx context.Context, id uuid.UUID) (domain.Meeting, error) {
	var m domain.Meeting
	err := r.db.NewSelect().
		Model(&m).
		Where("id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Meeting{}, store.ErrNotFound
		}
		return domain.Meeting{}, err
	}
	return m, nil
}

func (r *MeetingRepo) ListActiveOnDate(ctx context.Context, date domain.Date) ([]domain.Meeting, error) {
	return listActiveOnDate(ctx, r.db, date)
}

func (r *MeetingRepo) List(ctx context.Context, filter store.MeetingFilter) ([]domain.Meeting, error) {
	var rows []domain.Meeting
	q := r.db.NewSelect().Model(&rows)
	if filter.From != nil {
		q = q.Where(`"date" >= ?`, *filter.From)
	}
	if filter.To != nil {
		q = q.Where(`"date" <= ?`, *filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		q = q.Where("email = ?", filter.Email)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.OrderExpr(`"date" DESC, "time" DESC`).Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MeetingRepo) ListPendingSync(ctx context.Context, createdBefore time.Time, limit int) ([]domain.Meeting, error) {
	var rows []domain.Meeting
	err := r.db.NewSelect().
		Model(&rows).
		Where("status = ?", domain.MeetingStatusPending).
		Where("created_at < ?", createdBefore).
		OrderExpr("created_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MeetingRepo) ListElapsed(ctx context.Context, endedBefore time.Time, limit int) ([]domain.Meeting, error) {
	var rows []domain.Meeting
	err := r.db.NewSelect().
		Model(&rows).
		Where("status = ?", domain.MeetingStatusConfirmed).
		Where("ends_at <= ?", endedBefore).
		OrderExpr("ends_at ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*domain.Meeting)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
