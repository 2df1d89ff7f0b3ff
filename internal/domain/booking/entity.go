package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer   = errors.New("booking requires a customer")
	ErrMissingVehicle    = errors.New("booking requires a vehicle")
	ErrMissingService    = errors.New("booking requires a service")
	ErrMissingSlot       = errors.New("booking requires a time slot")
	ErrTransitionBlocked = errors.New("status transition not allowed")
	ErrPaymentNotAllowed = errors.New("payment capture not allowed in current status")
)

// SlotSpec is the snapshot of the reserved slot a booking is created against.
type SlotSpec struct {
	ID          uuid.UUID
	ScheduledAt time.Time
}

type Booking struct {
	id             uuid.UUID
	reference      Reference
	customerID     uuid.UUID
	vehicleID      uuid.UUID
	serviceID      uuid.UUID
	timeSlotID     uuid.UUID
	status         Status
	scheduledAt    time.Time
	technicianID   *uuid.UUID
	estimatedPrice Money
	actualStartAt  *time.Time
	actualEndAt    *time.Time
	paidAt         *time.Time
	notes          Notes
	createdAt      time.Time
	updatedAt      time.Time
}

func NewBooking(
	customerID, vehicleID, serviceID uuid.UUID,
	slot SlotSpec,
	price Money,
	notes Notes,
	now time.Time,
) (*Booking, error) {
	switch {
	case customerID == uuid.Nil:
		return nil, ErrMissingCustomer
	case vehicleID == uuid.Nil:
		return nil, ErrMissingVehicle
	case serviceID == uuid.Nil:
		return nil, ErrMissingService
	case slot.ID == uuid.Nil:
		return nil, ErrMissingSlot
	}

	return &Booking{
		id:             uuid.New(),
		reference:      NewReference(now),
		customerID:     customerID,
		vehicleID:      vehicleID,
		serviceID:      serviceID,
		timeSlotID:     slot.ID,
		status:         StatusPending,
		scheduledAt:    slot.ScheduledAt,
		estimatedPrice: price,
		notes:          notes,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	reference Reference,
	customerID, vehicleID, serviceID, timeSlotID uuid.UUID,
	status Status,
	scheduledAt time.Time,
	technicianID *uuid.UUID,
	estimatedPrice Money,
	actualStartAt, actualEndAt, paidAt *time.Time,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		reference:      reference,
		customerID:     customerID,
		vehicleID:      vehicleID,
		serviceID:      serviceID,
		timeSlotID:     timeSlotID,
		status:         status,
		scheduledAt:    scheduledAt,
		technicianID:   technicianID,
		estimatedPrice: estimatedPrice,
		actualStartAt:  actualStartAt,
		actualEndAt:    actualEndAt,
		paidAt:         paidAt,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// ApplyTransition moves the booking along the lifecycle graph and maintains
// the actual start/end timestamps. The caller persists status and history in
// one transaction.
func (b *Booking) ApplyTransition(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionBlocked, b.status, to)
	}

	b.status = to

	switch to {
	case StatusInProgress:
		if b.actualStartAt == nil {
			t := now
			b.actualStartAt = &t
		}
	case StatusCompleted:
		if b.actualEndAt == nil {
			t := now
			b.actualEndAt = &t
		}
	}
	return nil
}

func (b *Booking) AssignTechnician(technicianID uuid.UUID) {
	id := technicianID
	b.technicianID = &id
}

func (b *Booking) Reschedule(slot SlotSpec) {
	b.timeSlotID = slot.ID
	b.scheduledAt = slot.ScheduledAt
}

// CapturePayment marks the booking paid. Payment is a flag orthogonal to the
// lifecycle status, so capturing never changes the status. Capturing an
// already-paid booking is a no-op.
func (b *Booking) CapturePayment(now time.Time) error {
	if b.paidAt != nil {
		return nil
	}
	switch b.status {
	case StatusApproved, StatusInProgress, StatusCompleted:
		t := now
		b.paidAt = &t
		return nil
	default:
		return ErrPaymentNotAllowed
	}
}

func (b *Booking) UpdateNotes(notes Notes) {
	b.notes = notes
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsPaid() bool {
	return b.paidAt != nil
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) Reference() Reference     { return b.reference }
func (b *Booking) CustomerID() uuid.UUID    { return b.customerID }
func (b *Booking) VehicleID() uuid.UUID     { return b.vehicleID }
func (b *Booking) ServiceID() uuid.UUID     { return b.serviceID }
func (b *Booking) TimeSlotID() uuid.UUID    { return b.timeSlotID }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) ScheduledAt() time.Time   { return b.scheduledAt }
func (b *Booking) TechnicianID() *uuid.UUID { return b.technicianID }
func (b *Booking) EstimatedPrice() Money    { return b.estimatedPrice }
func (b *Booking) ActualStartAt() *time.Time {
	return b.actualStartAt
}
func (b *Booking) ActualEndAt() *time.Time { return b.actualEndAt }
func (b *Booking) PaidAt() *time.Time      { return b.paidAt }
func (b *Booking) Notes() Notes            { return b.notes }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
