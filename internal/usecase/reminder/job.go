package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"seatslabs/internal/pkg/clock"
)

const Kind24HourReminder = "24_hour_reminder"

// Job is the hourly sweep for 24-hour booking reminders. Dispatch is
// at-least-once: the idempotency record is written after the sends, so a
// crash between send and record can repeat a reminder on the next run.
type Job struct {
	store    ReadStore
	email    EmailSender
	sms      SMSSender
	recorder DispatchRecorder
	clock    clock.Clock
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewJob(
	store ReadStore,
	email EmailSender,
	sms SMSSender,
	recorder DispatchRecorder,
	clk clock.Clock,
	interval time.Duration,
) *Job {
	return &Job{
		store:    store,
		email:    email,
		sms:      sms,
		recorder: recorder,
		clock:    clk,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the periodic loop. Runs are strictly sequential: a sweep
// that outlasts the interval delays the next tick instead of overlapping it.
func (j *Job) Start() {
	go func() {
		defer close(j.done)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-j.stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), j.interval)
				if _, err := j.RunOnce(ctx); err != nil {
					slog.Error("reminder sweep failed", "error", err.Error())
				}
				cancel()
			}
		}
	}()
}

func (j *Job) Stop() {
	close(j.stop)
	<-j.done
}

// RunOnce performs a single sweep and returns the number of bookings whose
// dispatch record was written. Per-booking failures are logged and do not
// abort the remaining targets.
func (j *Job) RunOnce(ctx context.Context) (int, error) {
	tomorrow := j.clock.Now().AddDate(0, 0, 1)

	targets, err := j.store.DueReminders(ctx, tomorrow, Kind24HourReminder)
	if err != nil {
		return 0, fmt.Errorf("failed to query due reminders: %w", err)
	}

	sent := 0
	for _, target := range targets {
		if j.process(ctx, target) {
			sent++
		}
	}

	if len(targets) > 0 {
		slog.Info("reminder sweep completed", "due", len(targets), "recorded", sent)
	}
	return sent, nil
}

func (j *Job) process(ctx context.Context, target *Target) bool {
	subject := "Reminder: Your Service Appointment Tomorrow"
	body := fmt.Sprintf(
		"Dear %s,\n\nThis is a reminder that your service appointment is tomorrow:\n\nReference: %s\nService: %s\nTime: %s\nVehicle: %s\n\nPlease arrive 10 minutes before your scheduled time.",
		target.CustomerFirstName,
		target.Reference,
		target.ServiceName,
		target.ScheduledAt.Format("2006-01-02 15:04"),
		target.Vehicle,
	)
	smsBody := fmt.Sprintf(
		"Reminder: Your SeatsLabs appointment %s is tomorrow at %s. See you soon!",
		target.Reference,
		target.ScheduledAt.Format("15:04"),
	)

	// Email and SMS are independent: one failing must not block the other.
	if err := j.email.SendEmail(ctx, target.CustomerEmail, subject, body); err != nil {
		slog.Warn("reminder email dispatch failed",
			"booking_id", target.BookingID,
			"error", err.Error())
	}
	if err := j.sms.SendSMS(ctx, target.CustomerPhone, smsBody); err != nil {
		slog.Warn("reminder sms dispatch failed",
			"booking_id", target.BookingID,
			"error", err.Error())
	}

	inserted, err := j.recorder.RecordDispatch(ctx, target.BookingID, Kind24HourReminder,
		"Appointment Reminder", "Your service appointment is tomorrow", j.clock.Now())
	if err != nil {
		slog.Error("failed to record reminder dispatch",
			"booking_id", target.BookingID,
			"error", err.Error())
		return false
	}
	return inserted
}
