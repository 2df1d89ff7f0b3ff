package queries

import (
	"context"
	"time"

	"seatslabs/internal/pkg/errs"

	"github.com/google/uuid"
)

type VehicleView struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	RegistrationNo string
	Make           string
	Model          string
	Year           *int32
	CreatedAt      time.Time
}

type VehicleReadStore interface {
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*VehicleView, error)
}

type VehicleQueries interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*VehicleView, error) {
	vehicles, err := q.store.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return vehicles, nil
}
