package readstore

import (
	"context"
	"time"

	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"
	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotReadStore struct {
	db db.DBTX
}

func NewSlotReadStore(dbtx db.DBTX) *SlotReadStore {
	return &SlotReadStore{db: dbtx}
}

const slotViewQuery = `
	SELECT id, slot_date,
	       EXTRACT(EPOCH FROM start_time)::bigint,
	       EXTRACT(EPOCH FROM end_time)::bigint,
	       max_capacity, current_bookings, is_available
	FROM time_slots`

func (r *SlotReadStore) FindByDateRange(ctx context.Context, from, to time.Time, onlyAvailable bool) ([]*queries.SlotView, error) {
	query := slotViewQuery + ` WHERE slot_date >= $1 AND slot_date <= $2`
	if onlyAvailable {
		query += ` AND is_available AND current_bookings < max_capacity`
	}
	query += ` ORDER BY slot_date ASC, start_time ASC`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	defer rows.Close()

	slots := make([]*queries.SlotView, 0)
	for rows.Next() {
		var (
			view             queries.SlotView
			startSec, endSec int64
		)
		if err := rows.Scan(
			&view.ID, &view.Date, &startSec, &endSec,
			&view.MaxCapacity, &view.CurrentBookings, &view.IsAvailable,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot row", err)
		}
		view.StartTime = formatClock(startSec)
		view.EndTime = formatClock(endSec)
		slots = append(slots, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time slot rows", err)
	}
	return slots, nil
}

func (r *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	row := r.db.QueryRow(ctx, slotViewQuery+` WHERE id = $1`, id)

	var (
		view             queries.SlotView
		startSec, endSec int64
	)
	err := row.Scan(
		&view.ID, &view.Date, &startSec, &endSec,
		&view.MaxCapacity, &view.CurrentBookings, &view.IsAvailable,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find time slot", err)
	}
	view.StartTime = formatClock(startSec)
	view.EndTime = formatClock(endSec)
	return &view, nil
}
