package vehicle

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingCustomer     = errors.New("vehicle requires a customer")
	ErrMissingRegistration = errors.New("vehicle requires a registration number")
	ErrMissingMakeModel    = errors.New("vehicle requires make and model")
	ErrInvalidYear         = errors.New("vehicle year out of range")
)

// Vehicle is a customer-owned car registered for service bookings.
type Vehicle struct {
	id             uuid.UUID
	customerID     uuid.UUID
	registrationNo string
	make           string
	model          string
	year           int32
	createdAt      time.Time
}

// NewVehicle registers a vehicle for a customer. Year is optional; zero
// means unknown.
func NewVehicle(customerID uuid.UUID, registrationNo, make, model string, year int32, now time.Time) (*Vehicle, error) {
	registrationNo = strings.ToUpper(strings.TrimSpace(registrationNo))
	make = strings.TrimSpace(make)
	model = strings.TrimSpace(model)

	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if registrationNo == "" {
		return nil, ErrMissingRegistration
	}
	if make == "" || model == "" {
		return nil, ErrMissingMakeModel
	}
	if year != 0 && (year < 1900 || int(year) > now.Year()+1) {
		return nil, ErrInvalidYear
	}

	return &Vehicle{
		id:             uuid.New(),
		customerID:     customerID,
		registrationNo: registrationNo,
		make:           make,
		model:          model,
		year:           year,
		createdAt:      now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	customerID uuid.UUID,
	registrationNo, make, model string,
	year int32,
	createdAt time.Time,
) *Vehicle {
	return &Vehicle{
		id:             id,
		customerID:     customerID,
		registrationNo: registrationNo,
		make:           make,
		model:          model,
		year:           year,
		createdAt:      createdAt,
	}
}

func (v *Vehicle) ID() uuid.UUID          { return v.id }
func (v *Vehicle) CustomerID() uuid.UUID  { return v.customerID }
func (v *Vehicle) RegistrationNo() string { return v.registrationNo }
func (v *Vehicle) Make() string           { return v.make }
func (v *Vehicle) Model() string          { return v.model }
func (v *Vehicle) Year() int32            { return v.year }
func (v *Vehicle) CreatedAt() time.Time   { return v.createdAt }
