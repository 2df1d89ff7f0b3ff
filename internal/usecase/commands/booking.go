package commands

import (
	"context"
	"errors"

	"seatslabs/internal/domain/booking"
	"seatslabs/internal/infra"
	"seatslabs/internal/pkg/clock"
	"seatslabs/internal/pkg/errs"
	"seatslabs/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingParams struct {
	CustomerID   uuid.UUID
	VehicleID    uuid.UUID
	ServiceID    uuid.UUID
	TimeSlotID   uuid.UUID
	SpecialNotes string
}

type ChangeStatusParams struct {
	BookingID uuid.UUID
	To        booking.Status
	Note      string
	ActorID   uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error)
	ChangeStatus(ctx context.Context, params ChangeStatusParams) error
	Cancel(ctx context.Context, bookingID uuid.UUID, note string, actorID uuid.UUID) error
	Reschedule(ctx context.Context, bookingID, newSlotID, actorID uuid.UUID) error
	AssignTechnician(ctx context.Context, bookingID, technicianID, actorID uuid.UUID) error
	CapturePayment(ctx context.Context, bookingID, actorID uuid.UUID) error
	UpdateServiceNotes(ctx context.Context, bookingID uuid.UUID, notes string, actorID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// Create reserves a capacity unit on the slot, snapshots the service price
// and writes the booking together with its initial history entry. Everything
// runs in one transaction so a failed insert cannot strand a reservation.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		vehicle, err := tx.Reads().VehicleByID(ctx, params.VehicleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrVehicleNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if vehicle.CustomerID != params.CustomerID {
			return errs.ErrVehicleNotOwned
		}

		service, err := tx.Reads().ServiceByID(ctx, params.ServiceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrServiceNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		slotSnapshot, err := tx.Slots().Reserve(ctx, params.TimeSlotID)
		if err != nil {
			return mapSlotError(err)
		}

		price, err := booking.NewMoney(service.BasePriceCents)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		entity, err := booking.NewBooking(
			params.CustomerID,
			params.VehicleID,
			params.ServiceID,
			booking.SlotSpec{ID: slotSnapshot.ID(), ScheduledAt: slotSnapshot.ScheduledStart()},
			price,
			booking.NewNotes(params.SpecialNotes),
			c.clock.Now(),
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if err := tx.Bookings().Create(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().AppendHistory(ctx, entity.ID(), booking.StatusPending, "Booking created", params.CustomerID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		bookingID = entity.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return bookingID, nil
}

// ChangeStatus applies one edge of the lifecycle graph. The status update,
// the history append and the slot release on cancellation commit together
// or not at all.
func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, params ChangeStatusParams) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.findForUpdate(ctx, tx, params.BookingID)
		if err != nil {
			return err
		}

		if err := entity.ApplyTransition(params.To, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if params.To == booking.StatusCancelled {
			if err := tx.Slots().Release(ctx, entity.TimeSlotID()); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return c.appendHistory(ctx, tx, entity, params.To, params.Note, params.ActorID)
	})
}

/// Cancel is idempotent: cancelling an already-cancelled booking is a no-op
// and must not release the slot a second time.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, note string, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if entity.IsCancelled() {
			return nil
		}

		if err := entity.ApplyTransition(booking.StatusCancelled, c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Slots().Release(ctx, entity.TimeSlotID()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if note == "" {
			note = "Booking cancelled"
		}
		return c.appendHistory(ctx, tx, entity, booking.StatusCancelled, note, actorID)
	})
}

// Reschedule reserves the new slot before releasing the old one, all inside
// one transaction, so a failed reservation leaves the original slot intact.
func (c *bookingCommandsImpl) Reschedule(ctx context.Context, bookingID, newSlotID, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		if entity.Status().IsTerminal() {
			return errs.ErrInvalidTransition
		}
		if entity.TimeSlotID() == newSlotID {
			return nil
		}

		oldSlotID := entity.TimeSlotID()

		slotSnapshot, err := tx.Slots().Reserve(ctx, newSlotID)
		if err != nil {
			return mapSlotError(err)
		}

		if err := tx.Slots().Release(ctx, oldSlotID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		entity.Reschedule(booking.SlotSpec{ID: slotSnapshot.ID(), ScheduledAt: slotSnapshot.ScheduledStart()})

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return c.appendHistory(ctx, tx, entity, entity.Status(), "Booking rescheduled", actorID)
	})
}

// AssignTechnician checks availability with the technician row locked in the
// same transaction as the booking update. It does not check the technician's
// other bookings for overlapping windows.
func (c *bookingCommandsImpl) AssignTechnician(ctx context.Context, bookingID, technicianID, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}
		if entity.Status().IsTerminal() {
			return errs.ErrInvalidTransition
		}

		available, err := tx.Technicians().IsAvailable(ctx, technicianID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrTechnicianNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !available {
			return errs.ErrTechnicianUnavailable
		}

		entity.AssignTechnician(technicianID)

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return c.appendHistory(ctx, tx, entity, entity.Status(), "Technician assigned", actorID)
	})
}

// CapturePayment sets the paid flag without touching the lifecycle status.
func (c *bookingCommandsImpl) CapturePayment(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		alreadyPaid := entity.IsPaid()

		if err := entity.CapturePayment(c.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrPaymentNotAllowed)
		}
		if alreadyPaid {
			return nil
		}

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return c.appendHistory(ctx, tx, entity, entity.Status(), "Payment captured", actorID)
	})
}

func (c *bookingCommandsImpl) UpdateServiceNotes(ctx context.Context, bookingID uuid.UUID, notes string, actorID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := c.findForUpdate(ctx, tx, bookingID)
		if err != nil {
			return err
		}

		entity.UpdateNotes(booking.NewNotes(notes))

		if err := tx.Bookings().Update(ctx, entity); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *bookingCommandsImpl) findForUpdate(ctx context.Context, tx shared.Tx, bookingID uuid.UUID) (*booking.Booking, error) {
	entity, err := tx.Bookings().FindByIDForUpdate(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func (c *bookingCommandsImpl) appendHistory(ctx context.Context, tx shared.Tx, entity *booking.Booking, status booking.Status, note string, actorID uuid.UUID) error {
	if err := tx.Bookings().AppendHistory(ctx, entity.ID(), status, note, actorID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func mapSlotError(err error) error {
	switch {
	case errors.Is(err, errs.ErrSlotUnavailable), errors.Is(err, errs.ErrSlotFull):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.ErrSlotNotFound
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
