//go:build unit || e2e

package builder

import (
	"time"

	dombooking "seatslabs/internal/domain/booking"
	reqdto "seatslabs/internal/handler/dto/request"
	"seatslabs/internal/usecase/commands"
	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	CustomerID          uuid.UUID
	VehicleID           uuid.UUID
	VehicleRegistration string
	ServiceID           uuid.UUID
	ServiceName         string
	TimeSlotID          uuid.UUID
	Status              string
	ScheduledAt         time.Time
	EstimatedPriceCents int64
	SpecialNotes        string
	CreatedAt           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now()
	return &BookingBuilder{
		CustomerID:          uuid.New(),
		VehicleID:           uuid.New(),
		VehicleRegistration: "WP CAB-1234",
		ServiceID:           uuid.New(),
		ServiceName:         "Full Service",
		TimeSlotID:          uuid.New(),
		Status:              "pending",
		ScheduledAt:         now.Add(48 * time.Hour),
		EstimatedPriceCents: 85_00,
		SpecialNotes:        "Check brake pads",
		CreatedAt:           now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	price, err := dombooking.NewMoney(b.EstimatedPriceCents)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(
		b.CustomerID,
		b.VehicleID,
		b.ServiceID,
		dombooking.SlotSpec{ID: b.TimeSlotID, ScheduledAt: b.ScheduledAt},
		price,
		dombooking.NewNotes(b.SpecialNotes),
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		CustomerID:   b.CustomerID,
		VehicleID:    b.VehicleID,
		ServiceID:    b.ServiceID,
		TimeSlotID:   b.TimeSlotID,
		SpecialNotes: b.SpecialNotes,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	notes := b.SpecialNotes
	return reqdto.CreateBookingRequest{
		VehicleID:    b.VehicleID,
		ServiceID:    b.ServiceID,
		TimeSlotID:   b.TimeSlotID,
		SpecialNotes: &notes,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	bookingID := uuid.New()
	notes := b.SpecialNotes
	return &queries.BookingView{
		ID:                  bookingID,
		Reference:           "SL-20260831-4F2A9C",
		CustomerID:          b.CustomerID,
		VehicleID:           b.VehicleID,
		VehicleRegistration: b.VehicleRegistration,
		ServiceID:           b.ServiceID,
		ServiceName:         b.ServiceName,
		TimeSlotID:          b.TimeSlotID,
		SlotDate:            b.ScheduledAt.Truncate(24 * time.Hour),
		SlotStart:           "09:00",
		SlotEnd:             "10:00",
		Status:              b.Status,
		ScheduledAt:         b.ScheduledAt,
		EstimatedPriceCents: b.EstimatedPriceCents,
		SpecialNotes:        &notes,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	return &queries.BookingListItem{
		ID:                  uuid.New(),
		Reference:           "SL-20260831-4F2A9C",
		ServiceName:         b.ServiceName,
		Status:              b.Status,
		ScheduledAt:         b.ScheduledAt,
		EstimatedPriceCents: b.EstimatedPriceCents,
		CreatedAt:           b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithVehicleID(id uuid.UUID) *BookingBuilder {
	b.VehicleID = id
	return b
}

func (b *BookingBuilder) WithServiceID(id uuid.UUID) *BookingBuilder {
	b.ServiceID = id
	return b
}

func (b *BookingBuilder) WithTimeSlotID(id uuid.UUID) *BookingBuilder {
	b.TimeSlotID = id
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPriceCents(cents int64) *BookingBuilder {
	b.EstimatedPriceCents = cents
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.SpecialNotes = notes
	return b
}
