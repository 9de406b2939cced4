package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"fitimprove/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock is a Clock pinned to a single instant.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

// fakeTrainingStore is an in-memory TrainingStore for tests. Reads hand out
// copies and Update writes back a copy, so a failed operation cannot leak
// half-applied state into the store.
type fakeTrainingStore struct {
	mu     sync.Mutex
	byID   map[string]domain.Training
	nextID int
	err    error // if set, every method returns this error
}

func newFakeTrainingStore() *fakeTrainingStore {
	return &fakeTrainingStore{
		byID:   make(map[string]domain.Training),
		nextID: 1,
	}
}

func (f *fakeTrainingStore) Create(ctx context.Context, t *domain.Training) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	t.ID = fmt.Sprintf("tr-%d", f.nextID)
	f.nextID++
	f.byID[t.ID] = *t
	return nil
}

func (f *fakeTrainingStore) GetByID(ctx context.Context, id string) (*domain.Training, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTrainingStore) GetByIDForUpdate(ctx context.Context, id string) (*domain.Training, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeTrainingStore) Update(ctx context.Context, t *domain.Training) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[t.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[t.ID] = *t
	return nil
}

func (f *fakeTrainingStore) ListByCoachID(ctx context.Context, coachID string) ([]*domain.Training, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Training
	for _, t := range f.byID {
		if t.CoachID == coachID {
			tc := t
			out = append(out, &tc)
		}
	}
	return out, nil
}

// fakeParticipationStore is an in-memory ParticipationStore for tests.
type fakeParticipationStore struct {
	mu     sync.Mutex
	byID   map[string]domain.ParticipationRecord
	nextID int
	err    error
}

func newFakeParticipationStore() *fakeParticipationStore {
	return &fakeParticipationStore{
		byID:   make(map[string]domain.ParticipationRecord),
		nextID: 1,
	}
}

func (f *fakeParticipationStore) Create(ctx context.Context, rec *domain.ParticipationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	rec.ID = fmt.Sprintf("pr-%d", f.nextID)
	f.nextID++
	f.byID[rec.ID] = *rec
	return nil
}

func (f *fakeParticipationStore) ListByTrainingAndUserAndStatusIn(ctx context.Context, trainingID, userID string, statuses []domain.ParticipationStatus) ([]*domain.ParticipationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ParticipationRecord
	for _, rec := range f.byID {
		if rec.TrainingID == trainingID && rec.UserID == userID && statusIn(rec.Status, statuses) {
			rc := rec
			out = append(out, &rc)
		}
	}
	return out, nil
}

func (f *fakeParticipationStore) ListByTrainingAndStatusIn(ctx context.Context, trainingID string, statuses []domain.ParticipationStatus) ([]*domain.ParticipationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.ParticipationRecord
	for _, rec := range f.byID {
		if rec.TrainingID == trainingID && statusIn(rec.Status, statuses) {
			rc := rec
			out = append(out, &rc)
		}
	}
	return out, nil
}

func (f *fakeParticipationStore) ListByUserID(ctx context.Context, userID string) ([]*domain.ParticipationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ParticipationRecord
	for _, rec := range f.byID {
		if rec.UserID == userID {
			rc := rec
			out = append(out, &rc)
		}
	}
	return out, nil
}

func (f *fakeParticipationStore) Update(ctx context.Context, rec *domain.ParticipationRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[rec.ID] = *rec
	return nil
}

func (f *fakeParticipationStore) UpdateAll(ctx context.Context, recs []*domain.ParticipationRecord) error {
	for _, rec := range recs {
		if err := f.Update(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// active returns the single active record for (trainingID, userID), failing
// the test when none or more than one exists.
func (f *fakeParticipationStore) active(t *testing.T, trainingID, userID string) *domain.ParticipationRecord {
	t.Helper()
	recs, err := f.ListByTrainingAndUserAndStatusIn(context.Background(), trainingID, userID, domain.ActiveStatuses)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	return recs[0]
}

// fakeUserRepo is an in-memory UserRepository for tests.
type fakeUserRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) add(id string) *domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := &domain.User{ID: id, Email: id + "@example.com", Name: "User " + id, Role: domain.RoleUser}
	f.byID[id] = u
	return u
}

func (f *fakeUserRepo) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = fmt.Sprintf("u-%d", len(f.byID)+1)
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[u.ID] = u
	return nil
}

// fakeTxManager serializes transactions with a mutex, mimicking the row lock
// the Postgres implementation takes on the training.
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

// fakeDispatcher records dispatched notifications.
type fakeDispatcher struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (f *fakeDispatcher) Dispatch(n domain.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
}

func (f *fakeDispatcher) kinds() []domain.NotificationKind {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.NotificationKind
	for _, n := range f.sent {
		out = append(out, n.Kind)
	}
	return out
}

type engineFixture struct {
	trainings  *fakeTrainingStore
	parts      *fakeParticipationStore
	users      *fakeUserRepo
	dispatcher *fakeDispatcher
	clock      *fixedClock
	svc        domain.EnrollmentService
}

var fixtureNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func newEngineFixture() *engineFixture {
	f := &engineFixture{
		trainings:  newFakeTrainingStore(),
		parts:      newFakeParticipationStore(),
		users:      newFakeUserRepo(),
		dispatcher: &fakeDispatcher{},
		clock:      &fixedClock{now: fixtureNow},
	}
	f.svc = NewEnrollmentService(f.trainings, f.parts, f.users, &fakeTxManager{}, f.dispatcher, f.clock, discardLogger())
	return f
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// addTraining stores a training starting two hours from the fixture clock.
func (f *engineFixture) addTraining(t *testing.T, freeSlots int) *domain.Training {
	t.Helper()
	tr := domain.NewTraining("coach-1", "Morning strength", "", "strength", domain.ForEveryone, freeSlots, fixtureNow.Add(2*time.Hour), 60)
	require.NoError(t, f.trainings.Create(context.Background(), tr))
	return tr
}

func (f *engineFixture) training(t *testing.T, id string) *domain.Training {
	t.Helper()
	tr, err := f.trainings.GetByID(context.Background(), id)
	require.NoError(t, err)
	return tr
}

func TestEnrollUserInTraining(t *testing.T) {
	ctx := context.Background()

	t.Run("success consumes one slot", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")

		rec, err := f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAgreed, rec.Status)
		require.NotNil(t, rec.BookedAt)
		assert.Equal(t, fixtureNow, *rec.BookedAt)
		assert.Nil(t, rec.InvitedAt)
		assert.Equal(t, 4, f.training(t, tr.ID).FreeSlots)
		assert.Equal(t, []domain.NotificationKind{domain.NotifyBookingConfirmed}, f.dispatcher.kinds())
	})

	t.Run("training not found", func(t *testing.T) {
		f := newEngineFixture()
		f.users.add("u-10")

		_, err := f.svc.EnrollUserInTraining(ctx, "tr-1", "u-10")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "Training not found")
	})

	t.Run("user not found", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)

		_, err := f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "User not found")
		assert.Equal(t, 5, f.training(t, tr.ID).FreeSlots)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid initial status", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")

		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusCanceled)
		require.ErrorIs(t, err, domain.ErrInvalidState)
		assert.EqualError(t, err, "Can not create training that is not INVITED or AGREED")
	})

	t.Run("invite reserves a slot and stamps invited_at", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 2)
		f.users.add("u-10")

		rec, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusInvited)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusInvited, rec.Status)
		require.NotNil(t, rec.InvitedAt)
		assert.Nil(t, rec.BookedAt)
		assert.Equal(t, 1, f.training(t, tr.ID).FreeSlots)
		assert.Equal(t, []domain.NotificationKind{domain.NotifyInvitation}, f.dispatcher.kinds())
	})

	t.Run("canceled training", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		tr.IsCanceled = true
		require.NoError(t, f.trainings.Update(ctx, tr))
		f.users.add("u-10")

		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusAgreed)
		require.ErrorIs(t, err, domain.ErrAlreadyClosed)
	})

	t.Run("no free slots", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 0)
		f.users.add("u-10")

		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusAgreed)
		require.ErrorIs(t, err, domain.ErrInvalidState)
		assert.Contains(t, err.Error(), "no free slots")
	})

	t.Run("inside the lead window", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		tr.Time = fixtureNow.Add(10 * time.Minute)
		require.NoError(t, f.trainings.Update(ctx, tr))
		f.users.add("u-10")

		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusAgreed)
		require.ErrorIs(t, err, domain.ErrInvalidState)
		assert.Contains(t, err.Error(), "at least 15 minutes")
		assert.Equal(t, 5, f.training(t, tr.ID).FreeSlots)
	})

	t.Run("already started", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		tr.Time = fixtureNow.Add(-time.Hour)
		require.NoError(t, f.trainings.Update(ctx, tr))
		f.users.add("u-10")

		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusAgreed)
		require.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("duplicate active enrollment", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")

		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusInvited)
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, tr.ID, "u-10", domain.StatusAgreed)
		require.ErrorIs(t, err, domain.ErrInvalidState)
		assert.Contains(t, err.Error(), "already enrolled")
		assert.Equal(t, 4, f.training(t, tr.ID).FreeSlots)
	})

	t.Run("re-enrollment after cancel is allowed", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")

		_, err := f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		_, err = f.svc.CancelParticipation(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		_, err = f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		assert.Equal(t, 4, f.training(t, tr.ID).FreeSlots)
	})
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps the slot and stamps booked_at", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")
		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusInvited)
		require.NoError(t, err)
		slotsAfterInvite := f.training(t, tr.ID).FreeSlots

		rec, err := f.svc.AcceptInvitation(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAgreed, rec.Status)
		require.NotNil(t, rec.BookedAt)
		assert.Equal(t, fixtureNow, *rec.BookedAt)
		// Accepting must not change capacity relative to the invite.
		assert.Equal(t, slotsAfterInvite, f.training(t, tr.ID).FreeSlots)

		stored := f.parts.active(t, tr.ID, "u-10")
		assert.Equal(t, domain.StatusAgreed, stored.Status)
	})

	t.Run("no invitation", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")

		_, err := f.svc.AcceptInvitation(ctx, tr.ID, "u-10")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "User does not have an invitation to provided training")
	})

	t.Run("agreed record does not count as invitation", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")
		_, err := f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		require.NoError(t, err)

		_, err = f.svc.AcceptInvitation(ctx, tr.ID, "u-10")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("canceled training", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")
		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusInvited)
		require.NoError(t, err)
		tr = f.training(t, tr.ID)
		tr.IsCanceled = true
		require.NoError(t, f.trainings.Update(ctx, tr))

		_, err = f.svc.AcceptInvitation(ctx, tr.ID, "u-10")
		require.ErrorIs(t, err, domain.ErrAlreadyClosed)
	})
}

func TestDenyInvitation(t *testing.T) {
	ctx := context.Background()

	t.Run("success releases the slot", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")
		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusInvited)
		require.NoError(t, err)
		require.Equal(t, 4, f.training(t, tr.ID).FreeSlots)

		rec, err := f.svc.DenyInvitation(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDenied, rec.Status)
		// Denial is terminal through its status alone.
		assert.Nil(t, rec.CanceledAt)
		assert.Equal(t, 5, f.training(t, tr.ID).FreeSlots)
	})

	t.Run("no invitation", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")

		_, err := f.svc.DenyInvitation(ctx, tr.ID, "u-10")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "User does not have an invitation to provided training")
	})
}

func TestCancelParticipation(t *testing.T) {
	ctx := context.Background()

	t.Run("agreed record releases the slot", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 6)
		f.users.add("u-10")
		_, err := f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		require.Equal(t, 5, f.training(t, tr.ID).FreeSlots)

		rec, err := f.svc.CancelParticipation(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, rec.Status)
		require.NotNil(t, rec.CanceledAt)
		assert.Equal(t, fixtureNow, *rec.CanceledAt)
		assert.Equal(t, 6, f.training(t, tr.ID).FreeSlots)
	})

	t.Run("invited record can be canceled too", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")
		_, err := f.svc.Create(ctx, tr.ID, "u-10", domain.StatusInvited)
		require.NoError(t, err)

		rec, err := f.svc.CancelParticipation(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, rec.Status)
		assert.Equal(t, 5, f.training(t, tr.ID).FreeSlots)
	})

	t.Run("no reservation", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")

		_, err := f.svc.CancelParticipation(ctx, tr.ID, "u-10")
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "User does not have an reservation in provided training")
	})

	t.Run("notice is skipped when the user lookup fails", func(t *testing.T) {
		f := newEngineFixture()
		tr := f.addTraining(t, 5)
		f.users.add("u-10")
		_, err := f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		f.users.remove("u-10")

		rec, err := f.svc.CancelParticipation(ctx, tr.ID, "u-10")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCanceled, rec.Status)
		assert.Equal(t, 5, f.training(t, tr.ID).FreeSlots)
		assert.Equal(t, []domain.NotificationKind{domain.NotifyBookingConfirmed}, f.dispatcher.kinds())
	})
}

func TestGetAllEnrolledTrainings(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture()
	tr1 := f.addTraining(t, 5)
	tr2 := f.addTraining(t, 5)
	f.users.add("u-10")

	_, err := f.svc.EnrollUserInTraining(ctx, tr1.ID, "u-10")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, tr2.ID, "u-10", domain.StatusInvited)
	require.NoError(t, err)
	_, err = f.svc.DenyInvitation(ctx, tr2.ID, "u-10")
	require.NoError(t, err)

	recs, err := f.svc.GetAllEnrolledTrainings(ctx, "u-10")
	require.NoError(t, err)
	// Terminal records are returned alongside active ones.
	assert.Len(t, recs, 2)
}

func TestCreate_ConcurrentLastSlot(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture()
	tr := f.addTraining(t, 1)

	const attempts = 16
	for i := 0; i < attempts; i++ {
		f.users.add(fmt.Sprintf("u-%d", i))
	}

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.EnrollUserInTraining(ctx, tr.ID, fmt.Sprintf("u-%d", i))
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, domain.ErrInvalidState)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one enrollment may win the last slot")
	assert.Equal(t, 0, f.training(t, tr.ID).FreeSlots)
	assert.GreaterOrEqual(t, f.training(t, tr.ID).FreeSlots, 0)
}

func TestCreate_ConcurrentSameUser(t *testing.T) {
	ctx := context.Background()
	f := newEngineFixture()
	tr := f.addTraining(t, 10)
	f.users.add("u-10")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.EnrollUserInTraining(ctx, tr.ID, "u-10")
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "a user may hold only one active record per training")
	assert.Equal(t, 9, f.training(t, tr.ID).FreeSlots)
}

func statusIn(s domain.ParticipationStatus, statuses []domain.ParticipationStatus) bool {
	for _, c := range statuses {
		if s == c {
			return true
		}
	}
	return false
}
