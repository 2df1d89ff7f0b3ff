package repository

import (
	"context"
	"log/slog"
	"time"

	"seatslabs/internal/domain/slot"
	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"
	"seatslabs/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(dbtx db.DBTX) *SlotRepository {
	return &SlotRepository{db: dbtx}
}

// Reserve claims one capacity unit with a single conditional update. The
// check and the increment are one statement, so two requests racing for the
// last unit are serialized by the row lock and at most one succeeds.
func (r *SlotRepository) Reserve(ctx context.Context, slotID uuid.UUID) (*slot.TimeSlot, error) {
	const query = `
		UPDATE time_slots
		SET current_bookings = current_bookings + 1, updated_at = now()
		WHERE id = $1 AND is_available AND current_bookings < max_capacity
		RETURNING id, slot_date,
		          EXTRACT(EPOCH FROM start_time)::bigint,
		          EXTRACT(EPOCH FROM end_time)::bigint,
		          max_capacity, current_bookings, is_available`

	snapshot, err := r.scanSlot(r.db.QueryRow(ctx, query, slotID))
	if err == nil {
		return snapshot, nil
	}
	if !infra.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to reserve time slot", err)
	}

	// The conditional update matched nothing; read the row to tell the
	// caller why.
	return nil, r.classifyReserveFailure(ctx, slotID)
}

func (r *SlotRepository) classifyReserveFailure(ctx context.Context, slotID uuid.UUID) error {
	const query = `SELECT is_available, current_bookings >= max_capacity FROM time_slots WHERE id = $1`

	var available, full bool
	if err := r.db.QueryRow(ctx, query, slotID).Scan(&available, &full); err != nil {
		if infra.IsNoRows(err) {
			return infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to inspect time slot", err)
	}

	if !available {
		return errs.ErrSlotUnavailable
	}
	if full {
		return errs.ErrSlotFull
	}
	// The slot had capacity on the second read: the first update lost a
	// race that has since resolved. Treat as full; the caller may retry.
	return errs.ErrSlotFull
}

// Release returns one capacity unit, flooring at zero. An underflow means a
// double release upstream; it is logged and swallowed.
func (r *SlotRepository) Release(ctx context.Context, slotID uuid.UUID) error {
	const query = `
		UPDATE time_slots
		SET current_bookings = current_bookings - 1, updated_at = now()
		WHERE id = $1 AND current_bookings > 0`

	tag, err := r.db.Exec(ctx, query, slotID)
	if err != nil {
		return infra.WrapRepoErr("failed to release time slot", err)
	}
	if tag.RowsAffected() == 0 {
		slog.Warn("time slot release on zero counter, possible double release",
			"time_slot_id", slotID)
	}
	return nil
}

func (r *SlotRepository) Create(ctx context.Context, s *slot.TimeSlot) error {
	const query = `
		INSERT INTO time_slots (id, slot_date, start_time, end_time, max_capacity, current_bookings, is_available)
		VALUES ($1, $2, make_interval(secs => $3)::time, make_interval(secs => $4)::time, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		s.ID(),
		s.Date(),
		int64(s.StartTime()/time.Second),
		int64(s.EndTime()/time.Second),
		s.MaxCapacity(),
		s.CurrentBookings(),
		s.IsAvailable(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create time slot", err)
	}
	return nil
}

func (r *SlotRepository) scanSlot(row interface{ Scan(dest ...any) error }) (*slot.TimeSlot, error) {
	var (
		id                           uuid.UUID
		date                         time.Time
		startSec, endSec             int64
		maxCapacity, currentBookings int32
		available                    bool
	)
	if err := row.Scan(&id, &date, &startSec, &endSec, &maxCapacity, &currentBookings, &available); err != nil {
		return nil, err
	}

	return slot.ReconstructTimeSlot(
		id,
		date,
		time.Duration(startSec)*time.Second,
		time.Duration(endSec)*time.Second,
		maxCapacity,
		currentBookings,
		available,
	), nil
}
