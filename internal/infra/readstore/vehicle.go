package readstore

import (
	"context"

	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"
	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

func (r *VehicleReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.VehicleView, error) {
	const query = `
		SELECT id, customer_id, registration_no, make, model, year, created_at
		FROM vehicles
		WHERE customer_id = $1
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	vehicles := make([]*queries.VehicleView, 0)
	for rows.Next() {
		var view queries.VehicleView
		if err := rows.Scan(&view.ID, &view.CustomerID, &view.RegistrationNo,
			&view.Make, &view.Model, &view.Year, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		vehicles = append(vehicles, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate vehicle rows", err)
	}
	return vehicles, nil
}
