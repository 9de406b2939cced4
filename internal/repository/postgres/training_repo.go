package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitimprove/internal/domain"
)

type trainingRepository struct {
	DB *sql.DB
}

func NewTrainingRepository(db *sql.DB) domain.TrainingStore {
	return &trainingRepository{
		DB: db,
	}
}

const trainingColumns = `id, coach_id, title, description, type, for_type, free_slots, time, duration_minutes, is_canceled, created_at, last_updated`

func (r *trainingRepository) Create(ctx context.Context, t *domain.Training) error {
	query := `
		INSERT INTO trainings (coach_id, title, description, type, for_type, free_slots, time, duration_minutes, is_canceled, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	return querierFrom(ctx, r.DB).QueryRowContext(ctx, query,
		t.CoachID, t.Title, t.Description, t.Type, string(t.ForType), t.FreeSlots,
		t.Time, t.DurationMinutes, t.IsCanceled, t.CreatedAt, t.LastUpdated,
	).Scan(&t.ID)
}

func (r *trainingRepository) GetByID(ctx context.Context, id string) (*domain.Training, error) {
	query := `
		SELECT ` + trainingColumns + `
		FROM trainings
		WHERE id = $1
	`
	return r.scanOne(querierFrom(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *trainingRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Training, error) {
	query := `
		SELECT ` + trainingColumns + `
		FROM trainings
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanOne(querierFrom(ctx, r.DB).QueryRowContext(ctx, query, id))
}

func (r *trainingRepository) Update(ctx context.Context, t *domain.Training) error {
	query := `
		UPDATE trainings
		SET title = $1, description = $2, type = $3, for_type = $4, free_slots = $5,
		    time = $6, duration_minutes = $7, is_canceled = $8, last_updated = $9
		WHERE id = $10
	`
	res, err := querierFrom(ctx, r.DB).ExecContext(ctx, query,
		t.Title, t.Description, t.Type, string(t.ForType), t.FreeSlots,
		t.Time, t.DurationMinutes, t.IsCanceled, t.LastUpdated, t.ID,
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

func (r *trainingRepository) ListByCoachID(ctx context.Context, coachID string) ([]*domain.Training, error) {
	query := `
		SELECT ` + trainingColumns + `
		FROM trainings
		WHERE coach_id = $1
		ORDER BY time DESC
	`
	rows, err := querierFrom(ctx, r.DB).QueryContext(ctx, query, coachID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []*domain.Training
	for rows.Next() {
		t := &domain.Training{}
		var forType string
		if err := rows.Scan(
			&t.ID, &t.CoachID, &t.Title, &t.Description, &t.Type, &forType, &t.FreeSlots,
			&t.Time, &t.DurationMinutes, &t.IsCanceled, &t.CreatedAt, &t.LastUpdated,
		); err != nil {
			return nil, err
		}
		t.ForType = domain.ForType(forType)
		trainings = append(trainings, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if trainings == nil {
		trainings = []*domain.Training{}
	}
	return trainings, nil
}

func (r *trainingRepository) scanOne(row *sql.Row) (*domain.Training, error) {
	t := &domain.Training{}
	var forType string
	err := row.Scan(
		&t.ID, &t.CoachID, &t.Title, &t.Description, &t.Type, &forType, &t.FreeSlots,
		&t.Time, &t.DurationMinutes, &t.IsCanceled, &t.CreatedAt, &t.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	t.ForType = domain.ForType(forType)
	return t, nil
}
