package commands

import (
	"context"

	"seatslabs/internal/domain/vehicle"
	"seatslabs/internal/infra"
	"seatslabs/internal/pkg/clock"
	"seatslabs/internal/pkg/errs"
	"seatslabs/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterVehicleParams struct {
	CustomerID     uuid.UUID
	RegistrationNo string
	Make           string
	Model          string
	Year           int32
}

type VehicleCommands interface {
	Register(ctx context.Context, params RegisterVehicleParams) (uuid.UUID, error)
}

type vehicleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVehicleCommands(uow shared.UnitOfWork, clock clock.Clock) VehicleCommands {
	return &vehicleCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

func (c *vehicleCommandsImpl) Register(ctx context.Context, params RegisterVehicleParams) (uuid.UUID, error) {
	entity, err := vehicle.NewVehicle(
		params.CustomerID,
		params.RegistrationNo,
		params.Make,
		params.Model,
		params.Year,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Vehicles().Create(ctx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrVehicleAlreadyRegistered)
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
