package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fitimprove/internal/domain"
	"fitimprove/internal/metrics"
)

type trainingService struct {
	trainings     domain.TrainingStore
	participation domain.ParticipationStore
	users         domain.UserRepository
	tx            domain.TxManager
	dispatcher    domain.NotificationDispatcher
	clock         domain.Clock
	logger        *slog.Logger
}

// NewTrainingService creates a TrainingService with the given stores.
func NewTrainingService(
	trainings domain.TrainingStore,
	participation domain.ParticipationStore,
	users domain.UserRepository,
	tx domain.TxManager,
	dispatcher domain.NotificationDispatcher,
	clock domain.Clock,
	logger *slog.Logger,
) domain.TrainingService {
	return &trainingService{
		trainings:     trainings,
		participation: participation,
		users:         users,
		tx:            tx,
		dispatcher:    dispatcher,
		clock:         clock,
		logger:        logger,
	}
}

func (s *trainingService) CreateTraining(ctx context.Context, t *domain.Training) (*domain.Training, error) {
	if t.CoachID == "" {
		return nil, domain.InvalidState("training coach is required")
	}
	if !t.ForType.Valid() {
		return nil, domain.InvalidState("forType must be EVERYONE or LIMITED")
	}
	if t.FreeSlots < 0 {
		return nil, domain.InvalidState("freeSlots must not be negative")
	}
	now := s.clock.Now()
	if t.StartsWithin(now, domain.MinEnrollmentLead) {
		return nil, domain.InvalidState("training must be scheduled at least 15 minutes in the future")
	}

	t.IsCanceled = false
	t.CreatedAt = now
	t.LastUpdated = now
	if err := s.trainings.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create training: %w", err)
	}
	return t, nil
}

func (s *trainingService) Edit(ctx context.Context, req *domain.TrainingEdit) (*domain.Training, error) {
	var training *domain.Training
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		training, err = s.trainings.GetByIDForUpdate(ctx, req.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFound("Training not found")
			}
			return fmt.Errorf("get training: %w", err)
		}
		// Existence is checked first; only then is the request validated.
		if req.FreeSlots < 0 {
			return domain.InvalidState("freeSlots must not be negative")
		}
		if !req.ForType.Valid() {
			return domain.InvalidState("forType must be EVERYONE or LIMITED")
		}

		// Shrinking freeSlots below the number of active participants is
		// allowed; existing bookings are not reconciled.
		training.Title = req.Title
		training.Description = req.Description
		training.Type = req.Type
		training.ForType = req.ForType
		training.FreeSlots = req.FreeSlots
		training.LastUpdated = s.clock.Now()
		if err := s.trainings.Update(ctx, training); err != nil {
			return fmt.Errorf("update training: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return training, nil
}

func (s *trainingService) Cancel(ctx context.Context, trainingID string) error {
	defer observeOperation()()

	var (
		training *domain.Training
		affected []*domain.ParticipationRecord
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		training, err = s.trainings.GetByIDForUpdate(ctx, trainingID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFound("Training not found")
			}
			return fmt.Errorf("get training: %w", err)
		}
		if training.IsCanceled {
			return domain.AlreadyClosed("training is already canceled")
		}

		now := s.clock.Now()
		training.IsCanceled = true
		training.LastUpdated = now
		// The training is terminal, so freeSlots stays as it is.
		if err := s.trainings.Update(ctx, training); err != nil {
			return fmt.Errorf("update training: %w", err)
		}

		affected, err = s.participation.ListByTrainingAndStatusIn(ctx, trainingID, domain.ActiveStatuses)
		if err != nil {
			return fmt.Errorf("list participation: %w", err)
		}
		for _, rec := range affected {
			rec.Status = domain.StatusCanceled
			canceledAt := now
			rec.CanceledAt = &canceledAt
		}
		if err := s.participation.UpdateAll(ctx, affected); err != nil {
			return fmt.Errorf("update participation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.TrainingsCanceled.Inc()

	for _, rec := range affected {
		user, err := s.users.GetByID(ctx, rec.UserID)
		if err != nil {
			s.logger.Warn("skipping cancellation notice, user lookup failed", "user_id", rec.UserID, "err", err)
			continue
		}
		s.dispatcher.Dispatch(domain.Notification{Kind: domain.NotifyTrainingCanceled, User: user, Training: training})
	}
	return nil
}

func (s *trainingService) GetByID(ctx context.Context, trainingID string) (*domain.Training, error) {
	training, err := s.trainings.GetByID(ctx, trainingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("Training not found")
		}
		return nil, fmt.Errorf("get training: %w", err)
	}
	return training, nil
}

func (s *trainingService) ListByCoachID(ctx context.Context, coachID string) ([]*domain.Training, error) {
	trainings, err := s.trainings.ListByCoachID(ctx, coachID)
	if err != nil {
		return nil, fmt.Errorf("list trainings: %w", err)
	}
	return trainings, nil
}
