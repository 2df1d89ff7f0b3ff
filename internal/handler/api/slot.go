package api

import (
	"errors"
	"net/http"

	reqdto "seatslabs/internal/handler/dto/request"
	resdto "seatslabs/internal/handler/dto/response"
	"seatslabs/internal/handler/httperr"
	"seatslabs/internal/pkg/errs"
	"seatslabs/internal/usecase/commands"
	"seatslabs/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	commands commands.SlotCommands
	queries  queries.SlotQueries
}

func NewSlotHandler(cmds commands.SlotCommands, qrs queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary List time slots
// @Description List time slots in a date range
// @Tags slots
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param only_available query bool false "Only slots with remaining capacity"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	var query reqdto.ListSlotsQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid query parameters", nil)
		return
	}

	from, to, err := query.ParseRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	slots, err := h.queries.ListByDateRange(c.Request.Context(), from, to, query.OnlyAvailable)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}

// @Summary Create time slot
// @Description Open a new bookable time slot
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot definition"
// @Success 201 {object} resdto.CreatedSlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	start, end, err := req.ParseWindow()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time window", nil)
		return
	}

	slotID, err := h.commands.Create(c.Request.Context(), commands.CreateSlotParams{
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		MaxCapacity: req.MaxCapacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedSlotResponse{ID: slotID})
}
