package reminder

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Target is one approved booking due a 24-hour reminder.
type Target struct {
	BookingID         uuid.UUID
	Reference         string
	ScheduledAt       time.Time
	ServiceName       string
	Vehicle           string
	CustomerFirstName string
	CustomerEmail     string
	CustomerPhone     string
}

type ReadStore interface {
	// DueReminders returns approved bookings scheduled on the given date
	// that have no dispatch record of the reminder kind yet.
	DueReminders(ctx context.Context, date time.Time, kind string) ([]*Target, error)
}

// EmailSender and SMSSender are external collaborators. Both are best-effort:
// a failed send is logged by the job, never propagated.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type SMSSender interface {
	SendSMS(ctx context.Context, number, body string) error
}

type DispatchRecorder interface {
	// RecordDispatch writes the (booking, kind) idempotency row. Returns
	// false without error when the record already exists.
	RecordDispatch(ctx context.Context, bookingID uuid.UUID, kind, title, message string, sentAt time.Time) (bool, error)
}
