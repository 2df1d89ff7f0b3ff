package repository

import (
	"context"

	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"

	"github.com/google/uuid"
)

type TechnicianRepository struct {
	db db.DBTX
}

func NewTechnicianRepository(dbtx db.DBTX) *TechnicianRepository {
	return &TechnicianRepository{db: dbtx}
}

// IsAvailable locks the technician row so the availability flag cannot flip
// between the check and the booking update in the same transaction.
func (r *TechnicianRepository) IsAvailable(ctx context.Context, technicianID uuid.UUID) (bool, error) {
	const query = `SELECT is_available FROM technicians WHERE id = $1 FOR UPDATE`

	var available bool
	if err := r.db.QueryRow(ctx, query, technicianID).Scan(&available); err != nil {
		if infra.IsNoRows(err) {
			return false, infra.WrapRepoErr("technician not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to check technician availability", err)
	}
	return available, nil
}
