package queries

import (
	"context"

	"seatslabs/internal/infra"
	"seatslabs/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingFilter struct {
	Status *string
	Limit  int32
	Offset int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, filter BookingFilter) ([]*BookingListItem, error)
	FindByTechnicianID(ctx context.Context, technicianID uuid.UUID) ([]*BookingListItem, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	FindHistory(ctx context.Context, bookingID uuid.UUID) ([]*HistoryEntry, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, filter BookingFilter) ([]*BookingListItem, error)
	ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*BookingListItem, error)
	ListAll(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error)
	GetHistory(ctx context.Context, bookingID uuid.UUID) ([]*HistoryEntry, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter BookingFilter) ([]*BookingListItem, error) {
	items, err := q.store.FindByCustomerID(ctx, customerID, normalize(filter))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListByTechnician(ctx context.Context, technicianID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.FindByTechnicianID(ctx, technicianID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) ListAll(ctx context.Context, filter BookingFilter) ([]*BookingListItem, error) {
	items, err := q.store.FindAll(ctx, normalize(filter))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *bookingQueriesImpl) GetHistory(ctx context.Context, bookingID uuid.UUID) ([]*HistoryEntry, error) {
	if _, err := q.GetByID(ctx, bookingID); err != nil {
		return nil, err
	}

	entries, err := q.store.FindHistory(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entries, nil
}

const defaultListLimit = 20

func normalize(filter BookingFilter) BookingFilter {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = defaultListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return filter
}
