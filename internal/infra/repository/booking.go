package repository

import (
	"context"
	"time"

	"seatslabs/internal/domain/booking"
	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (
			id, reference, customer_id, vehicle_id, service_id, time_slot_id,
			status, scheduled_at, technician_id, estimated_price_cents,
			actual_start_at, actual_end_at, paid_at, special_notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := r.db.Exec(ctx, query,
		b.ID(),
		b.Reference().String(),
		b.CustomerID(),
		b.VehicleID(),
		b.ServiceID(),
		b.TimeSlotID(),
		b.Status().String(),
		b.ScheduledAt(),
		b.TechnicianID(),
		b.EstimatedPrice().Cents(),
		b.ActualStartAt(),
		b.ActualEndAt(),
		b.PaidAt(),
		b.Notes().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
		SELECT id, reference, customer_id, vehicle_id, service_id, time_slot_id,
		       status, scheduled_at, technician_id, estimated_price_cents,
		       actual_start_at, actual_end_at, paid_at, special_notes,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`

	var (
		bookingID, customerID, vehicleID, serviceID, timeSlotID uuid.UUID
		reference, status, notes                                string
		scheduledAt, createdAt, updatedAt                       time.Time
		technicianID                                            *uuid.UUID
		priceCents                                              int64
		actualStartAt, actualEndAt, paidAt                      *time.Time
	)

	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookingID, &reference, &customerID, &vehicleID, &serviceID, &timeSlotID,
		&status, &scheduledAt, &technicianID, &priceCents,
		&actualStartAt, &actualEndAt, &paidAt, &notes,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking for update", err)
	}

	price, err := booking.NewMoney(priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid stored price", err)
	}

	return booking.ReconstructBooking(
		bookingID,
		booking.ReconstructReference(reference),
		customerID, vehicleID, serviceID, timeSlotID,
		booking.Status(status),
		scheduledAt,
		technicianID,
		price,
		actualStartAt, actualEndAt, paidAt,
		booking.NewNotes(notes),
		createdAt, updatedAt,
	), nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	const query = `
		UPDATE bookings
		SET status = $2,
		    time_slot_id = $3,
		    scheduled_at = $4,
		    technician_id = $5,
		    actual_start_at = $6,
		    actual_end_at = $7,
		    paid_at = $8,
		    special_notes = $9,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		b.ID(),
		b.Status().String(),
		b.TimeSlotID(),
		b.ScheduledAt(),
		b.TechnicianID(),
		b.ActualStartAt(),
		b.ActualEndAt(),
		b.PaidAt(),
		b.Notes().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) AppendHistory(ctx context.Context, bookingID uuid.UUID, status booking.Status, note string, changedBy uuid.UUID) error {
	const query = `
		INSERT INTO booking_status_history (booking_id, status, note, changed_by)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, bookingID, status.String(), note, changedBy)
	if err != nil {
		return infra.WrapRepoErr("failed to append booking status history", err)
	}
	return nil
}
