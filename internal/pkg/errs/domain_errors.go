package errs

import "errors"

// Domain-specific sentinel errors for the booking usecase layers
var (
	// Slot errors
	ErrSlotNotFound    = errors.New("time slot not found")
	ErrSlotUnavailable = errors.New("time slot unavailable")
	ErrSlotFull        = errors.New("time slot fully booked")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrPaymentNotAllowed = errors.New("payment capture not allowed")

	// Vehicle errors
	ErrVehicleNotFound          = errors.New("vehicle not found")
	ErrVehicleNotOwned          = errors.New("vehicle does not belong to customer")
	ErrVehicleAlreadyRegistered = errors.New("vehicle registration already exists")

	// Technician errors
	ErrTechnicianNotFound    = errors.New("technician not found")
	ErrTechnicianUnavailable = errors.New("technician unavailable")

	// Service errors
	ErrServiceNotFound = errors.New("service not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
