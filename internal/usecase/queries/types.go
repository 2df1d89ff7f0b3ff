package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID                  uuid.UUID  `json:"id"`
	Reference           string     `json:"reference"`
	CustomerID          uuid.UUID  `json:"customer_id"`
	VehicleID           uuid.UUID  `json:"vehicle_id"`
	VehicleRegistration string     `json:"vehicle_registration"`
	ServiceID           uuid.UUID  `json:"service_id"`
	ServiceName         string     `json:"service_name"`
	TimeSlotID          uuid.UUID  `json:"time_slot_id"`
	SlotDate            time.Time  `json:"slot_date"`
	SlotStart           string     `json:"slot_start"`
	SlotEnd             string     `json:"slot_end"`
	Status              string     `json:"status"`
	ScheduledAt         time.Time  `json:"scheduled_at"`
	TechnicianID        *uuid.UUID `json:"technician_id,omitempty"`
	TechnicianName      *string    `json:"technician_name,omitempty"`
	EstimatedPriceCents int64      `json:"estimated_price_cents"`
	ActualStartAt       *time.Time `json:"actual_start_at,omitempty"`
	ActualEndAt         *time.Time `json:"actual_end_at,omitempty"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	SpecialNotes        *string    `json:"special_notes,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID                  uuid.UUID `json:"id"`
	Reference           string    `json:"reference"`
	ServiceName         string    `json:"service_name"`
	Status              string    `json:"status"`
	ScheduledAt         time.Time `json:"scheduled_at"`
	EstimatedPriceCents int64     `json:"estimated_price_cents"`
	CreatedAt           time.Time `json:"created_at"`
}

type HistoryEntry struct {
	BookingID uuid.UUID `json:"booking_id"`
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	ChangedBy uuid.UUID `json:"changed_by"`
	CreatedAt time.Time `json:"created_at"`
}

type SlotView struct {
	ID              uuid.UUID `json:"id"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	MaxCapacity     int32     `json:"max_capacity"`
	CurrentBookings int32     `json:"current_bookings"`
	IsAvailable     bool      `json:"is_available"`
}

type ServiceView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"base_price_cents"`
	DurationMin    int32     `json:"duration_min"`
}
