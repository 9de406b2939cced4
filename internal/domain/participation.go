package domain

import (
	"context"
	"time"
)

// ParticipationStatus is the state of a user's relationship to one training.
type ParticipationStatus string

const (
	StatusInvited  ParticipationStatus = "INVITED"
	StatusAgreed   ParticipationStatus = "AGREED"
	StatusDenied   ParticipationStatus = "DENIED"
	StatusCanceled ParticipationStatus = "CANCELED"
)

// IsActive reports whether the status holds a slot. INVITED and AGREED count
// against capacity; DENIED and CANCELED are terminal.
func (s ParticipationStatus) IsActive() bool {
	return s == StatusInvited || s == StatusAgreed
}

// ActiveStatuses lists the statuses that hold a slot.
var ActiveStatuses = []ParticipationStatus{StatusInvited, StatusAgreed}

// ParticipationRecord tracks one user's participation in one training.
// At most one record with an active status may exist per (training, user).
// swagger:model ParticipationRecord
type ParticipationRecord struct {
	ID         string              `json:"id"`
	TrainingID string              `json:"training_id"`
	UserID     string              `json:"user_id"`
	Status     ParticipationStatus `json:"status"`
	InvitedAt  *time.Time          `json:"invited_at,omitempty"`
	BookedAt   *time.Time          `json:"booked_at,omitempty"`
	CanceledAt *time.Time          `json:"canceled_at,omitempty"`
}

// ParticipationStore defines the interface for participation record storage.
type ParticipationStore interface {
	Create(ctx context.Context, rec *ParticipationRecord) error
	ListByTrainingAndUserAndStatusIn(ctx context.Context, trainingID, userID string, statuses []ParticipationStatus) ([]*ParticipationRecord, error)
	ListByTrainingAndStatusIn(ctx context.Context, trainingID string, statuses []ParticipationStatus) ([]*ParticipationRecord, error)
	ListByUserID(ctx context.Context, userID string) ([]*ParticipationRecord, error)
	Update(ctx context.Context, rec *ParticipationRecord) error
	UpdateAll(ctx context.Context, recs []*ParticipationRecord) error
}

// EnrollmentService is the enrollment engine: it owns the training free-slot
// counter and the participation record lifecycle.
type EnrollmentService interface {
	// Create creates a participation record with initial status INVITED or
	// AGREED, consuming one slot. Any other initial status is rejected.
	Create(ctx context.Context, trainingID, userID string, initial ParticipationStatus) (*ParticipationRecord, error)
	// EnrollUserInTraining is self-enrollment: Create with status AGREED.
	EnrollUserInTraining(ctx context.Context, trainingID, userID string) (*ParticipationRecord, error)
	// AcceptInvitation flips the user's INVITED record to AGREED and stamps
	// booked_at. The slot was already consumed at invite time.
	AcceptInvitation(ctx context.Context, trainingID, userID string) (*ParticipationRecord, error)
	// DenyInvitation flips the user's INVITED record to DENIED and releases
	// the reserved slot.
	DenyInvitation(ctx context.Context, trainingID, userID string) (*ParticipationRecord, error)
	// CancelParticipation flips the user's active record to CANCELED, stamps
	// canceled_at and releases one slot.
	CancelParticipation(ctx context.Context, trainingID, userID string) (*ParticipationRecord, error)
	// GetAllEnrolledTrainings returns every participation record of the user,
	// regardless of status.
	GetAllEnrolledTrainings(ctx context.Context, userID string) ([]*ParticipationRecord, error)
}
