package response

import (
	"time"

	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	RegistrationNo string    `json:"registrationNo"`
	Make           string    `json:"make"`
	Model          string    `json:"model"`
	Year           *int32    `json:"year,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type RegisteredVehicleResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromVehicleViews(views []*queries.VehicleView) []*VehicleResponse {
	out := make([]*VehicleResponse, 0, len(views))
	for _, v := range views {
		var resp VehicleResponse
		_ = copier.Copy(&resp, v)
		out = append(out, &resp)
	}
	return out
}
