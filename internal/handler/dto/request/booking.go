package request

import (
	"strings"

	"seatslabs/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VehicleID    uuid.UUID `json:"vehicle_id" binding:"required"`
	ServiceID    uuid.UUID `json:"service_id" binding:"required"`
	TimeSlotID   uuid.UUID `json:"time_slot_id" binding:"required"`
	SpecialNotes *string   `json:"special_notes,omitempty"`
}

func (r CreateBookingRequest) Notes() string {
	if r.SpecialNotes == nil {
		return ""
	}
	return strings.TrimSpace(*r.SpecialNotes)
}

type ChangeStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note,omitempty"`
}

func (r ChangeStatusRequest) ToStatus() (booking.Status, error) {
	return booking.NewStatus(r.Status)
}

func (r ChangeStatusRequest) NoteOrDefault() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelBookingRequest) ReasonOrDefault() string {
	if r.Reason == nil {
		return ""
	}
	return strings.TrimSpace(*r.Reason)
}

type RescheduleBookingRequest struct {
	TimeSlotID uuid.UUID `json:"time_slot_id" binding:"required"`
}

type AssignTechnicianRequest struct {
	TechnicianID uuid.UUID `json:"technician_id" binding:"required"`
}

type UpdateNotesRequest struct {
	SpecialNotes string `json:"special_notes" binding:"required"`
}
