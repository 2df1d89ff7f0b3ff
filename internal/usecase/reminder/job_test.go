//go:build unit

package reminder_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"seatslabs/internal/pkg/clock"
	"seatslabs/internal/usecase/reminder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	targets  []*reminder.Target
	err      error
	gotDate  time.Time
	gotKind  string
	payloads int
}

func (f *fakeStore) DueReminders(_ context.Context, date time.Time, kind string) ([]*reminder.Target, error) {
	f.gotDate = date
	f.gotKind = kind
	f.payloads++
	return f.targets, f.err
}

type fakeEmail struct {
	sent []string
	err  error
}

func (f *fakeEmail) SendEmail(_ context.Context, to, _, _ string) error {
	f.sent = append(f.sent, to)
	return f.err
}

type fakeSMS struct {
	sent []string
	err  error
}

func (f *fakeSMS) SendSMS(_ context.Context, number, _ string) error {
	f.sent = append(f.sent, number)
	return f.err
}

type fakeRecorder struct {
	recorded []uuid.UUID
	inserted bool
	err      error
}

func (f *fakeRecorder) RecordDispatch(_ context.Context, bookingID uuid.UUID, _, _, _ string, _ time.Time) (bool, error) {
	f.recorded = append(f.recorded, bookingID)
	return f.inserted, f.err
}

func newTarget() *reminder.Target {
	return &reminder.Target{
		BookingID:         uuid.New(),
		Reference:         "SL-20260901-4F2A9C",
		ScheduledAt:       time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		ServiceName:       "Full Service",
		Vehicle:           "Toyota Corolla (WP CAB-1234)",
		CustomerFirstName: "Nimal",
		CustomerEmail:     "nimal@example.com",
		CustomerPhone:     "+94771234567",
	}
}

func TestRunOnce(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)

	t.Run("sends and records each due booking", func(t *testing.T) {
		store := &fakeStore{targets: []*reminder.Target{newTarget(), newTarget()}}
		email := &fakeEmail{}
		sms := &fakeSMS{}
		recorder := &fakeRecorder{inserted: true}
		job := reminder.NewJob(store, email, sms, recorder, clock.NewMockClock(now), time.Hour)

		sent, err := job.RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, sent)
		assert.Len(t, email.sent, 2)
		assert.Len(t, sms.sent, 2)
		assert.Len(t, recorder.recorded, 2)
		assert.Equal(t, reminder.Kind24HourReminder, store.gotKind)
		assert.Equal(t, now.AddDate(0, 0, 1), store.gotDate)
	})

	t.Run("nothing due", func(t *testing.T) {
		store := &fakeStore{}
		recorder := &fakeRecorder{inserted: true}
		job := reminder.NewJob(store, &fakeEmail{}, &fakeSMS{}, recorder, clock.NewMockClock(now), time.Hour)

		sent, err := job.RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 0, sent)
		assert.Empty(t, recorder.recorded)
	})

	t.Run("store failure aborts the sweep", func(t *testing.T) {
		store := &fakeStore{err: errors.New("connection refused")}
		job := reminder.NewJob(store, &fakeEmail{}, &fakeSMS{}, &fakeRecorder{}, clock.NewMockClock(now), time.Hour)

		sent, err := job.RunOnce(context.Background())
		require.Error(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("failed email still records dispatch", func(t *testing.T) {
		store := &fakeStore{targets: []*reminder.Target{newTarget()}}
		email := &fakeEmail{err: errors.New("smtp timeout")}
		sms := &fakeSMS{}
		recorder := &fakeRecorder{inserted: true}
		job := reminder.NewJob(store, email, sms, recorder, clock.NewMockClock(now), time.Hour)

		sent, err := job.RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, sent)
		assert.Len(t, sms.sent, 1)
		assert.Len(t, recorder.recorded, 1)
	})

	t.Run("already recorded booking is not counted", func(t *testing.T) {
		store := &fakeStore{targets: []*reminder.Target{newTarget()}}
		recorder := &fakeRecorder{inserted: false}
		job := reminder.NewJob(store, &fakeEmail{}, &fakeSMS{}, recorder, clock.NewMockClock(now), time.Hour)

		sent, err := job.RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 0, sent)
	})

	t.Run("recorder failure does not abort remaining targets", func(t *testing.T) {
		store := &fakeStore{targets: []*reminder.Target{newTarget(), newTarget()}}
		recorder := &fakeRecorder{err: errors.New("insert failed")}
		job := reminder.NewJob(store, &fakeEmail{}, &fakeSMS{}, recorder, clock.NewMockClock(now), time.Hour)

		sent, err := job.RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 0, sent)
		assert.Len(t, recorder.recorded, 2)
	})
}

func TestStartStop(t *testing.T) {
	store := &fakeStore{}
	job := reminder.NewJob(store, &fakeEmail{}, &fakeSMS{}, &fakeRecorder{}, clock.NewRealClock(), 10*time.Millisecond)

	job.Start()
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	swept := store.payloads
	assert.GreaterOrEqual(t, swept, 1)

	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, swept, store.payloads)
}
