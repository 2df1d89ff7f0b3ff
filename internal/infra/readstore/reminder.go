package readstore

import (
	"context"
	"time"

	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"
	"seatslabs/internal/usecase/reminder"
)

type ReminderReadStore struct {
	db db.DBTX
}

func NewReminderReadStore(dbtx db.DBTX) *ReminderReadStore {
	return &ReminderReadStore{db: dbtx}
}

// DueReminders returns approved bookings scheduled on the given date without
// a recorded dispatch of the given kind. Date comparison is on the calendar
// day of scheduled_at, so the sweep is stable across repeated runs within the
// same day.
func (r *ReminderReadStore) DueReminders(ctx context.Context, date time.Time, kind string) ([]*reminder.Target, error) {
	const query = `
		SELECT b.id, b.reference, b.scheduled_at,
		       s.name,
		       v.make || ' ' || v.model || ' (' || v.registration_no || ')',
		       u.first_name, u.email, u.phone
		FROM bookings b
		JOIN services s ON s.id = b.service_id
		JOIN vehicles v ON v.id = b.vehicle_id
		JOIN users u ON u.id = b.customer_id
		WHERE b.status = 'approved'
		  AND b.scheduled_at::date = $1::date
		  AND NOT EXISTS (
			SELECT 1 FROM notifications n
			WHERE n.booking_id = b.id AND n.kind = $2
		  )
		ORDER BY b.scheduled_at ASC`

	rows, err := r.db.Query(ctx, query, date, kind)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due reminders", err)
	}
	defer rows.Close()

	targets := make([]*reminder.Target, 0)
	for rows.Next() {
		var t reminder.Target
		if err := rows.Scan(
			&t.BookingID, &t.Reference, &t.ScheduledAt,
			&t.ServiceName, &t.Vehicle,
			&t.CustomerFirstName, &t.CustomerEmail, &t.CustomerPhone,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reminder row", err)
		}
		targets = append(targets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reminder rows", err)
	}
	return targets, nil
}
