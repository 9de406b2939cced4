package domain

import (
	"context"
	"time"
)

// ForType controls who may join a training.
type ForType string

const (
	// ForEveryone allows open self-enrollment.
	ForEveryone ForType = "EVERYONE"
	// ForLimited restricts participation to explicitly invited users.
	ForLimited ForType = "LIMITED"
)

// Valid reports whether t is a known audience type.
func (t ForType) Valid() bool {
	return t == ForEveryone || t == ForLimited
}

// MinEnrollmentLead is the minimum time before a training's start during
// which enrollment changes are still accepted.
const MinEnrollmentLead = 15 * time.Minute

// Training represents a coach-owned, time-boxed session with limited capacity.
// swagger:model Training
type Training struct {
	ID              string    `json:"id"`
	CoachID         string    `json:"coach_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	ForType         ForType   `json:"for_type"`
	FreeSlots       int       `json:"free_slots"`
	Time            time.Time `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	IsCanceled      bool      `json:"is_canceled"`
	CreatedAt       time.Time `json:"created_at"`
	LastUpdated     time.Time `json:"last_updated"`
}

// NewTraining returns a new Training with the given fields. ID is typically set by the store on create.
func NewTraining(coachID, title, description, trainingType string, forType ForType, freeSlots int, start time.Time, durationMinutes int) *Training {
	return &Training{
		CoachID:         coachID,
		Title:           title,
		Description:     description,
		Type:            trainingType,
		ForType:         forType,
		FreeSlots:       freeSlots,
		Time:            start,
		DurationMinutes: durationMinutes,
	}
}

// StartsWithin reports whether the training begins before now+lead.
func (t *Training) StartsWithin(now time.Time, lead time.Duration) bool {
	return t.Time.Before(now.Add(lead))
}

// TrainingStore defines the interface for training storage.
type TrainingStore interface {
	Create(ctx context.Context, t *Training) error
	GetByID(ctx context.Context, id string) (*Training, error)
	// GetByIDForUpdate loads the training and locks its row for the duration
	// of the surrounding transaction. Must be called inside TxManager.WithinTx.
	GetByIDForUpdate(ctx context.Context, id string) (*Training, error)
	Update(ctx context.Context, t *Training) error
	ListByCoachID(ctx context.Context, coachID string) ([]*Training, error)
}

// TrainingEdit carries the fields a coach may overwrite on an existing training.
type TrainingEdit struct {
	ID          string
	Title       string
	Description string
	Type        string
	ForType     ForType
	FreeSlots   int
}

// TrainingService defines the coach-facing training lifecycle operations.
type TrainingService interface {
	CreateTraining(ctx context.Context, t *Training) (*Training, error)
	// Edit overwrites title, description, type, forType and freeSlots.
	// It does not reconcile existing bookings against the new capacity.
	Edit(ctx context.Context, req *TrainingEdit) (*Training, error)
	// Cancel cancels the whole training and cascades to all active
	// participation records. Rejected with AlreadyClosed when already canceled.
	Cancel(ctx context.Context, trainingID string) error
	GetByID(ctx context.Context, trainingID string) (*Training, error)
	ListByCoachID(ctx context.Context, coachID string) ([]*Training, error)
}
