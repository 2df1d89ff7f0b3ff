package queries

import (
	"context"
	"time"

	"seatslabs/internal/pkg/errs"

	"github.com/google/uuid"
)

type SlotReadStore interface {
	FindByDateRange(ctx context.Context, from, to time.Time, onlyAvailable bool) ([]*SlotView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SlotView, error)
}

type ServiceReadStore interface {
	FindAll(ctx context.Context) ([]*ServiceView, error)
}

type SlotQueries interface {
	ListByDateRange(ctx context.Context, from, to time.Time, onlyAvailable bool) ([]*SlotView, error)
}

type ServiceQueries interface {
	List(ctx context.Context) ([]*ServiceView, error)
}

type slotQueriesImpl struct {
	store SlotReadStore
}

func NewSlotQueries(store SlotReadStore) SlotQueries {
	return &slotQueriesImpl{store: store}
}

func (q *slotQueriesImpl) ListByDateRange(ctx context.Context, from, to time.Time, onlyAvailable bool) ([]*SlotView, error) {
	slots, err := q.store.FindByDateRange(ctx, from, to, onlyAvailable)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return slots, nil
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) List(ctx context.Context) ([]*ServiceView, error) {
	services, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return services, nil
}
