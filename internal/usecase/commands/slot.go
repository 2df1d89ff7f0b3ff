package commands

import (
	"context"
	"time"

	"seatslabs/internal/domain/slot"
	"seatslabs/internal/infra"
	"seatslabs/internal/pkg/errs"
	"seatslabs/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateSlotParams struct {
	Date        time.Time
	StartTime   time.Duration
	EndTime     time.Duration
	MaxCapacity int32
}

type SlotCommands interface {
	Create(ctx context.Context, params CreateSlotParams) (uuid.UUID, error)
}

type slotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSlotCommands(uow shared.UnitOfWork) SlotCommands {
	return &slotCommandsImpl{uow: uow}
}

func (c *slotCommandsImpl) Create(ctx context.Context, params CreateSlotParams) (uuid.UUID, error) {
	entity, err := slot.NewTimeSlot(params.Date, params.StartTime, params.EndTime, params.MaxCapacity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Slots().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return entity.ID(), nil
}
