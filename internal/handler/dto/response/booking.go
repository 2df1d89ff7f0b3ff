package response

import (
	"time"

	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Reference           string     `json:"reference"`
	CustomerID          uuid.UUID  `json:"customerId"`
	VehicleID           uuid.UUID  `json:"vehicleId"`
	VehicleRegistration string     `json:"vehicleRegistration"`
	ServiceID           uuid.UUID  `json:"serviceId"`
	ServiceName         string     `json:"serviceName"`
	TimeSlotID          uuid.UUID  `json:"timeSlotId"`
	SlotDate            time.Time  `json:"slotDate"`
	SlotStart           string     `json:"slotStart"`
	SlotEnd             string     `json:"slotEnd"`
	Status              string     `json:"status"`
	ScheduledAt         time.Time  `json:"scheduledAt"`
	TechnicianID        *uuid.UUID `json:"technicianId,omitempty"`
	TechnicianName      *string    `json:"technicianName,omitempty"`
	EstimatedPriceCents int64      `json:"estimatedPriceCents"`
	ActualStartAt       *time.Time `json:"actualStartAt,omitempty"`
	ActualEndAt         *time.Time `json:"actualEndAt,omitempty"`
	PaidAt              *time.Time `json:"paidAt,omitempty"`
	SpecialNotes        *string    `json:"specialNotes,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID                  uuid.UUID `json:"id"`
	Reference           string    `json:"reference"`
	ServiceName         string    `json:"serviceName"`
	Status              string    `json:"status"`
	ScheduledAt         time.Time `json:"scheduledAt"`
	EstimatedPriceCents int64     `json:"estimatedPriceCents"`
	CreatedAt           time.Time `json:"createdAt"`
}

type HistoryEntryResponse struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	ChangedBy uuid.UUID `json:"changedBy"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreatedBookingResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem) []*BookingListResponse {
	out := make([]*BookingListResponse, 0, len(items))
	for _, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		out = append(out, &resp)
	}
	return out
}

func FromHistoryEntries(entries []*queries.HistoryEntry) []*HistoryEntryResponse {
	out := make([]*HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, &HistoryEntryResponse{
			Status:    entry.Status,
			Note:      entry.Note,
			ChangedBy: entry.ChangedBy,
			CreatedAt: entry.CreatedAt,
		})
	}
	return out
}
