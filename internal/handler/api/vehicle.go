package api

import (
	"errors"
	"net/http"

	reqdto "seatslabs/internal/handler/dto/request"
	resdto "seatslabs/internal/handler/dto/response"
	"seatslabs/internal/handler/httperr"
	"seatslabs/internal/handler/middleware"
	"seatslabs/internal/pkg/errs"
	"seatslabs/internal/usecase/commands"
	"seatslabs/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	commands commands.VehicleCommands
	queries  queries.VehicleQueries
}

func NewVehicleHandler(cmds commands.VehicleCommands, qrs queries.VehicleQueries) *VehicleHandler {
	return &VehicleHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Register vehicle
// @Description Register a vehicle under the calling customer
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterVehicleRequest true "Vehicle details"
// @Success 201 {object} resdto.RegisteredVehicleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /vehicles [post]
func (h *VehicleHandler) RegisterVehicle(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.RegisterVehicleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	vehicleID, err := h.commands.Register(c.Request.Context(), commands.RegisterVehicleParams{
		CustomerID:     userID,
		RegistrationNo: req.RegistrationNo,
		Make:           req.Make,
		Model:          req.Model,
		Year:           req.Year,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVehicleAlreadyRegistered):
			httperr.AbortWithError(c, http.StatusConflict, err, "Vehicle registration already exists", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisteredVehicleResponse{ID: vehicleID})
}

// @Summary List vehicles
// @Description List the calling customer's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VehicleResponse
// @Failure 401 {object} map[string]string
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	vehicles, err := h.queries.ListByCustomer(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromVehicleViews(vehicles))
}
