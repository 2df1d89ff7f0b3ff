package repository

import (
	"context"
	"time"

	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(dbtx db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: dbtx}
}

// RecordDispatch writes the (booking, kind) idempotency row. A second write
// for the same pair is a no-op and reports false.
func (r *NotificationRepository) RecordDispatch(ctx context.Context, bookingID uuid.UUID, kind, title, message string, sentAt time.Time) (bool, error) {
	const query = `
		INSERT INTO notifications (booking_id, kind, title, message, sent_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (booking_id, kind) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, bookingID, kind, title, message, sentAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to record notification dispatch", err)
	}
	return tag.RowsAffected() > 0, nil
}
