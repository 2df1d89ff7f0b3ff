package repository

import (
	"context"

	"seatslabs/internal/domain/vehicle"
	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"
)

type VehicleRepository struct {
	db db.DBTX
}

func NewVehicleRepository(dbtx db.DBTX) *VehicleRepository {
	return &VehicleRepository{db: dbtx}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	const query = `
		INSERT INTO vehicles (id, customer_id, registration_no, make, model, year, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, 0), $7)`

	_, err := r.db.Exec(ctx, query,
		v.ID(), v.CustomerID(), v.RegistrationNo(), v.Make(), v.Model(), v.Year(), v.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create vehicle", err)
	}
	return nil
}
