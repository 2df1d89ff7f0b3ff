package readstore

import (
	"context"

	"seatslabs/internal/infra"
	"seatslabs/internal/infra/db"
	"seatslabs/internal/usecase/queries"
	"seatslabs/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

func (r *ServiceReadStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	const query = `
		SELECT id, name, base_price_cents, duration_min
		FROM services
		WHERE is_active
		ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	services := make([]*queries.ServiceView, 0)
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(&view.ID, &view.Name, &view.BasePriceCents, &view.DurationMin); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		services = append(services, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return services, nil
}

// CommandReads serves the in-transaction lookups command handlers need.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	const query = `
		SELECT id, name, base_price_cents, duration_min
		FROM services
		WHERE id = $1 AND is_active`

	var snap shared.ServiceSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Name, &snap.BasePriceCents, &snap.DurationMin)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &snap, nil
}

func (r *CommandReads) VehicleByID(ctx context.Context, id uuid.UUID) (*shared.VehicleSnapshot, error) {
	const query = `SELECT id, customer_id FROM vehicles WHERE id = $1`

	var snap shared.VehicleSnapshot
	err := r.db.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.CustomerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find vehicle", err)
	}
	return &snap, nil
}
