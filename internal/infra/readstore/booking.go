package readstore

import (
	"context"
	"fmt"
	"time"

	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"
	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookingViewQuery = `
	SELECT b.id, b.reference, b.customer_id,
	       b.vehicle_id, v.registration_no,
	       b.service_id, s.name,
	       b.time_slot_id, ts.slot_date,
	       EXTRACT(EPOCH FROM ts.start_time)::bigint,
	       EXTRACT(EPOCH FROM ts.end_time)::bigint,
	       b.status, b.scheduled_at,
	       b.technician_id, t.name,
	       b.estimated_price_cents,
	       b.actual_start_at, b.actual_end_at, b.paid_at,
	       b.special_notes, b.created_at, b.updated_at
	FROM bookings b
	JOIN vehicles v ON v.id = b.vehicle_id
	JOIN services s ON s.id = b.service_id
	JOIN time_slots ts ON ts.id = b.time_slot_id
	LEFT JOIN technicians t ON t.id = b.technician_id`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, bookingViewQuery+" WHERE b.id = $1", id)

	var (
		view             queries.BookingView
		startSec, endSec int64
	)
	err := row.Scan(
		&view.ID, &view.Reference, &view.CustomerID,
		&view.VehicleID, &view.VehicleRegistration,
		&view.ServiceID, &view.ServiceName,
		&view.TimeSlotID, &view.SlotDate,
		&startSec, &endSec,
		&view.Status, &view.ScheduledAt,
		&view.TechnicianID, &view.TechnicianName,
		&view.EstimatedPriceCents,
		&view.ActualStartAt, &view.ActualEndAt, &view.PaidAt,
		&view.SpecialNotes, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	view.SlotStart = formatClock(startSec)
	view.SlotEnd = formatClock(endSec)
	return &view, nil
}

const bookingListQuery = `
	SELECT b.id, b.reference, s.name, b.status, b.scheduled_at,
	       b.estimated_price_cents, b.created_at
	FROM bookings b
	JOIN services s ON s.id = b.service_id`

func (r *BookingReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	query := bookingListQuery + ` WHERE b.customer_id = $1`
	args := []any{customerID}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND b.status = $%d", len(args)+1)
		args = append(args, *filter.Status)
	}
	query += fmt.Sprintf(" ORDER BY b.scheduled_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	return r.list(ctx, query, args...)
}

func (r *BookingReadStore) FindByTechnicianID(ctx context.Context, technicianID uuid.UUID) ([]*queries.BookingListItem, error) {
	query := bookingListQuery + ` WHERE b.technician_id = $1 ORDER BY b.scheduled_at ASC`
	return r.list(ctx, query, technicianID)
}

func (r *BookingReadStore) FindAll(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingListItem, error) {
	query := bookingListQuery
	args := []any{}
	if filter.Status != nil {
		query += " WHERE b.status = $1"
		args = append(args, *filter.Status)
	}
	query += fmt.Sprintf(" ORDER BY b.scheduled_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	return r.list(ctx, query, args...)
}

func (r *BookingReadStore) list(ctx context.Context, query string, args ...any) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.Reference, &item.ServiceName, &item.Status,
			&item.ScheduledAt, &item.EstimatedPriceCents, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return items, nil
}

func (r *BookingReadStore) FindHistory(ctx context.Context, bookingID uuid.UUID) ([]*queries.HistoryEntry, error) {
	const query = `
		SELECT booking_id, status, note, changed_by, created_at
		FROM booking_status_history
		WHERE booking_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking history", err)
	}
	defer rows.Close()

	entries := make([]*queries.HistoryEntry, 0)
	for rows.Next() {
		var entry queries.HistoryEntry
		if err := rows.Scan(&entry.BookingID, &entry.Status, &entry.Note, &entry.ChangedBy, &entry.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan history row", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate history rows", err)
	}
	return entries, nil
}

// formatClock renders a seconds-from-midnight offset as HH:MM.
func formatClock(sec int64) string {
	d := time.Duration(sec) * time.Second
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
