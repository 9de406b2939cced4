package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fitimprove/internal/domain"
	"fitimprove/internal/metrics"
)

type enrollmentService struct {
	trainings     domain.TrainingStore
	participation domain.ParticipationStore
	users         domain.UserRepository
	tx            domain.TxManager
	dispatcher    domain.NotificationDispatcher
	clock         domain.Clock
	logger        *slog.Logger
}

// NewEnrollmentService creates the enrollment engine with the given stores.
// All mutating operations run inside a single transaction with the training
// row locked, so two concurrent calls against the same training serialize.
func NewEnrollmentService(
	trainings domain.TrainingStore,
	participation domain.ParticipationStore,
	users domain.UserRepository,
	tx domain.TxManager,
	dispatcher domain.NotificationDispatcher,
	clock domain.Clock,
	logger *slog.Logger,
) domain.EnrollmentService {
	return &enrollmentService{
		trainings:     trainings,
		participation: participation,
		users:         users,
		tx:            tx,
		dispatcher:    dispatcher,
		clock:         clock,
		logger:        logger,
	}
}

// observeOperation times one mutating engine operation.
func observeOperation() func() {
	start := time.Now()
	return func() {
		metrics.EngineOperationTime.Observe(time.Since(start).Seconds())
	}
}

func (s *enrollmentService) Create(ctx context.Context, trainingID, userID string, initial domain.ParticipationStatus) (*domain.ParticipationRecord, error) {
	defer observeOperation()()

	if initial != domain.StatusInvited && initial != domain.StatusAgreed {
		return nil, domain.InvalidState("Can not create training that is not INVITED or AGREED")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound("User not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	var (
		training *domain.Training
		rec      *domain.ParticipationRecord
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		training, err = s.trainings.GetByIDForUpdate(ctx, trainingID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFound("Training not found")
			}
			return fmt.Errorf("get training: %w", err)
		}
		if training.IsCanceled {
			return domain.AlreadyClosed("training is canceled")
		}
		if training.FreeSlots <= 0 {
			return domain.InvalidState("training has no free slots")
		}
		now := s.clock.Now()
		if training.StartsWithin(now, domain.MinEnrollmentLead) {
			return domain.InvalidState("training can be joined at least 15 minutes before it starts")
		}
		active, err := s.participation.ListByTrainingAndUserAndStatusIn(ctx, trainingID, userID, domain.ActiveStatuses)
		if err != nil {
			return fmt.Errorf("list participation: %w", err)
		}
		if len(active) > 0 {
			return domain.InvalidState("user is already enrolled in this training")
		}

		training.FreeSlots--
		training.LastUpdated = now
		if err := s.trainings.Update(ctx, training); err != nil {
			return fmt.Errorf("update training: %w", err)
		}

		rec = &domain.ParticipationRecord{
			TrainingID: trainingID,
			UserID:     userID,
			Status:     initial,
		}
		switch initial {
		case domain.StatusInvited:
			rec.InvitedAt = &now
		case domain.StatusAgreed:
			rec.BookedAt = &now
		}
		if err := s.participation.Create(ctx, rec); err != nil {
			return fmt.Errorf("create participation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.EnrollmentsCreated.WithLabelValues(string(initial)).Inc()

	// Notification goes out only after the transaction committed and is never
	// awaited; failures are contained by the dispatcher.
	kind := domain.NotifyBookingConfirmed
	if initial == domain.StatusInvited {
		kind = domain.NotifyInvitation
	}
	s.dispatcher.Dispatch(domain.Notification{Kind: kind, User: user, Training: training})

	return rec, nil
}

func (s *enrollmentService) EnrollUserInTraining(ctx context.Context, trainingID, userID string) (*domain.ParticipationRecord, error) {
	return s.Create(ctx, trainingID, userID, domain.StatusAgreed)
}

func (s *enrollmentService) AcceptInvitation(ctx context.Context, trainingID, userID string) (*domain.ParticipationRecord, error) {
	defer observeOperation()()

	var rec *domain.ParticipationRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		training, err := s.trainings.GetByIDForUpdate(ctx, trainingID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFound("Training not found")
			}
			return fmt.Errorf("get training: %w", err)
		}
		if training.IsCanceled {
			return domain.AlreadyClosed("training is canceled")
		}

		rec, err = s.findByStatus(ctx, trainingID, userID,
			[]domain.ParticipationStatus{domain.StatusInvited},
			"User does not have an invitation to provided training")
		if err != nil {
			return err
		}

		now := s.clock.Now()
		rec.Status = domain.StatusAgreed
		rec.BookedAt = &now
		// The slot was reserved at invite time; capacity is not re-checked here.
		if err := s.participation.Update(ctx, rec); err != nil {
			return fmt.Errorf("update participation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.InvitationsAccepted.Inc()
	return rec, nil
}

func (s *enrollmentService) DenyInvitation(ctx context.Context, trainingID, userID string) (*domain.ParticipationRecord, error) {
	defer observeOperation()()

	var rec *domain.ParticipationRecord
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		training, err := s.trainings.GetByIDForUpdate(ctx, trainingID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NotFound("Training not found")
			}
			return fmt.Errorf("get training: %w", err)
		}
		if training.IsCanceled {
			return domain.AlreadyClosed("training is canceled")
		}

		rec, err = s.findByStatus(ctx, trainingID, userID,
			[]domain.ParticipationStatus{domain.StatusInvited},
			"User does not have an invitation to provided training")
		if err != nil {
			return err
		}

		// Denial is its own terminal marker; no timestamp beyond the status flip.
		rec.Status = domain.StatusDenied
		if err := s.participation.Update(ctx, rec); err != nil {
			return fmt.Errorf("update participation: %w", err)
		}

		training.FreeSlots++
		training.LastUpdated = s.clock.Now()
		if err := s.trainings.Update(ctx, training); err != nil {
			return fmt.Errorf("update training: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.InvitationsDenied.Inc()
	return rec, nil
}

func (s *enrollmentService) CancelParticipation(ctx context.Context, trainingID, userID string) (*domain.ParticipationRecord, error) {
	defer observeOperation()()

	var (
		training *domain.Training
		rec      *domain.ParticipationRecord
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
			return domain.AlreadyClosed("training is canceled")
		}

		rec, err = s.findByStatus(ctx, trainingID, userID, domain.ActiveStatuses,
			"User does not have an reservation in provided training")
		if err != nil {
			return err
		}

		now := s.clock.Now()
		rec.Status = domain.StatusCanceled
		rec.CanceledAt = &now
		if err := s.participation.Update(ctx, rec); err != nil {
			return fmt.Errorf("update participation: %w", err)
		}

		training.FreeSlots++
		training.LastUpdated = now
		if err := s.trainings.Update(ctx, training); err != nil {
			return fmt.Errorf("update training: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ParticipationsCanceled.Inc()

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("skipping cancellation notice, user lookup failed", "user_id", userID, "err", err)
		return rec, nil
	}
	s.dispatcher.Dispatch(domain.Notification{Kind: domain.NotifyParticipantCanceled, User: user, Training: training})

	return rec, nil
}

func (s *enrollmentService) GetAllEnrolledTrainings(ctx context.Context, userID string) ([]*domain.ParticipationRecord, error) {
	recs, err := s.participation.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list participation: %w", err)
	}
	return recs, nil
}

// findByStatus returns the unique record for (training, user) among statuses,
// or a NotFound error with notFoundMsg when no such record exists.
func (s *enrollmentService) findByStatus(ctx context.Context, trainingID, userID string, statuses []domain.ParticipationStatus, notFoundMsg string) (*domain.ParticipationRecord, error) {
	recs, err := s.participation.ListByTrainingAndUserAndStatusIn(ctx, trainingID, userID, statuses)
	if err != nil {
		return nil, fmt.Errorf("list participation: %w", err)
	}
	if len(recs) == 0 {
		return nil, domain.NotFound(notFoundMsg)
	}
	return recs[0], nil
}
