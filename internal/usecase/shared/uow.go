package shared

import (
	"context"
	"time"

	"seatslabs/internal/domain/booking"
	"seatslabs/internal/domain/slot"
	"seatslabs/internal/domain/vehicle"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Slots() SlotRepository
	Vehicles() VehicleRepository
	Technicians() TechnicianRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads are the lookups command handlers need inside a transaction.
type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	VehicleByID(ctx context.Context, id uuid.UUID) (*VehicleSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	// FindByIDForUpdate loads the booking with its row locked so the
	// status update and history append observe a stable state.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
	AppendHistory(ctx context.Context, bookingID uuid.UUID, status booking.Status, note string, changedBy uuid.UUID) error
}

type SlotRepository interface {
	// Reserve atomically claims one capacity unit and returns the slot
	// snapshot after the increment. Fails with kind-classified errors when
	// the slot is missing, unavailable, or full.
	Reserve(ctx context.Context, slotID uuid.UUID) (*slot.TimeSlot, error)
	// Release returns one capacity unit, flooring at zero. Underflow is a
	// logged no-op.
	Release(ctx context.Context, slotID uuid.UUID) error
	Create(ctx context.Context, s *slot.TimeSlot) error
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
}

type TechnicianRepository interface {
	// IsAvailable reads the availability flag with the technician row
	// locked for the remainder of the transaction.
	IsAvailable(ctx context.Context, technicianID uuid.UUID) (bool, error)
}

type NotificationRepository interface {
	// RecordDispatch inserts the idempotency row for (booking, kind).
	// Returns false without error when the record already exists.
	RecordDispatch(ctx context.Context, bookingID uuid.UUID, kind, title, message string, sentAt time.Time) (bool, error)
}

type ServiceSnapshot struct {
	ID             uuid.UUID
	Name           string
	BasePriceCents int64
	DurationMin    int32
}

type VehicleSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
}
