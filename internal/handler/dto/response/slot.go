package response

import (
	"time"

	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            time.Time `json:"date"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	MaxCapacity     int32     `json:"maxCapacity"`
	CurrentBookings int32     `json:"currentBookings"`
	Remaining       int32     `json:"remaining"`
	IsAvailable     bool      `json:"isAvailable"`
}

type CreatedSlotResponse struct {
	ID uuid.UUID `json:"id"`
}

type ServiceResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"basePriceCents"`
	DurationMin    int32     `json:"durationMin"`
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		var resp SlotResponse
		_ = copier.Copy(&resp, v)
		resp.Remaining = v.MaxCapacity - v.CurrentBookings
		if resp.Remaining < 0 {
			resp.Remaining = 0
		}
		out = append(out, &resp)
	}
	return out
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(views))
	for _, v := range views {
		var resp ServiceResponse
		_ = copier.Copy(&resp, v)
		out = append(out, &resp)
	}
	return out
}
