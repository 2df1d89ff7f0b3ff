package request

type RegisterVehicleRequest struct {
	RegistrationNo string `json:"registration_no" binding:"required"`
	Make           string `json:"make" binding:"required"`
	Model          string `json:"model" binding:"required"`
	Year           int32  `json:"year,omitempty"`
}
