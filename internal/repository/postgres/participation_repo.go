package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"fitimprove/internal/domain"
)

type participationRepository struct {
	DB *sql.DB
}

func NewParticipationRepository(db *sql.DB) domain.ParticipationStore {
	return &participationRepository{
		DB: db,
	}
}

const participationColumns = `id, training_id, user_id, status, invited_at, booked_at, canceled_at`

func (r *participationRepository) Create(ctx context.Context, rec *domain.ParticipationRecord) error {
	query := `
		INSERT INTO training_users (training_id, user_id, status, invited_at, booked_at, canceled_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return querierFrom(ctx, r.DB).QueryRowContext(ctx, query,
		rec.TrainingID, rec.UserID, string(rec.Status),
		nullTime(rec.InvitedAt), nullTime(rec.BookedAt), nullTime(rec.CanceledAt),
	).Scan(&rec.ID)
}

func (r *participationRepository) ListByTrainingAndUserAndStatusIn(ctx context.Context, trainingID, userID string, statuses []domain.ParticipationStatus) ([]*domain.ParticipationRecord, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM training_users
		WHERE training_id = $1 AND user_id = $2 AND status = ANY($3)
	`
	rows, err := querierFrom(ctx, r.DB).QueryContext(ctx, query, trainingID, userID, pq.Array(statusStrings(statuses)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *participationRepository) ListByTrainingAndStatusIn(ctx context.Context, trainingID string, statuses []domain.ParticipationStatus) ([]*domain.ParticipationRecord, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM training_users
		WHERE training_id = $1 AND status = ANY($2)
	`
	rows, err := querierFrom(ctx, r.DB).QueryContext(ctx, query, trainingID, pq.Array(statusStrings(statuses)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *participationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ParticipationRecord, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM training_users
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := querierFrom(ctx, r.DB).QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *participationRepository) Update(ctx context.Context, rec *domain.ParticipationRecord) error {
	query := `
		UPDATE training_users
		SET status = $1, invited_at = $2, booked_at = $3, canceled_at = $4
		WHERE id = $5
	`
	res, err := querierFrom(ctx, r.DB).ExecContext(ctx, query,
		string(rec.Status), nullTime(rec.InvitedAt), nullTime(rec.BookedAt), nullTime(rec.CanceledAt), rec.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *participationRepository) UpdateAll(ctx context.Context, recs []*domain.ParticipationRecord) error {
	for _, rec := range recs {
		if err := r.Update(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (r *participationRepository) scanAll(rows *sql.Rows) ([]*domain.ParticipationRecord, error) {
	var recs []*domain.ParticipationRecord
	for rows.Next() {
		rec := &domain.ParticipationRecord{}
		var status string
		var invitedAt, bookedAt, canceledAt sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.TrainingID, &rec.UserID, &status, &invitedAt, &bookedAt, &canceledAt); err != nil {
			return nil, err
		}
		rec.Status = domain.ParticipationStatus(status)
		if invitedAt.Valid {
			rec.InvitedAt = &invitedAt.Time
		}
		if bookedAt.Valid {
			rec.BookedAt = &bookedAt.Time
		}
		if canceledAt.Valid {
			rec.CanceledAt = &canceledAt.Time
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []*domain.ParticipationRecord{}
	}
	return recs, nil
}

func statusStrings(statuses []domain.ParticipationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
