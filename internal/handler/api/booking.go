package api

import (
	"errors"
	"net/http"
	"strconv"

	"seatslabs/internal/domain/user"
	reqdto "seatslabs/internal/handler/dto/request"
	resdto "seatslabs/internal/handler/dto/response"
	"seatslabs/internal/handler/httperr"
	"seatslabs/internal/handler/middleware"
	"seatslabs/internal/pkg/errs"
	"seatslabs/internal/usecase/commands"
	"seatslabs/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create booking
// @Description Book a service appointment in a time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params := commands.CreateBookingParams{
		CustomerID:   userID,
		VehicleID:    req.VehicleID,
		ServiceID:    req.ServiceID,
		TimeSlotID:   req.TimeSlotID,
		SpecialNotes: req.Notes(),
	}

	bookingID, err := h.commands.Create(c.Request.Context(), params)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		// Created but the read-back failed; report the ID so the client
		// is not left guessing.
		c.JSON(http.StatusCreated, resdto.CreatedBookingResponse{ID: bookingID})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking details by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	if !h.canView(c, view.CustomerID, view.TechnicianID) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("viewer is not allowed to read this booking"), "Insufficient permissions", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Customers see their own bookings, technicians their assignments, managers everything
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("user id missing from context"), "Internal server error", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	filter := listFilter(c)

	var (
		items []*queries.BookingListItem
		err   error
	)
	switch role {
	case user.RoleManager:
		items, err = h.queries.ListAll(c.Request.Context(), filter)
	case user.RoleTechnician:
		items, err = h.queries.ListByTechnician(c.Request.Context(), userID)
	default:
		items, err = h.queries.ListByCustomer(c.Request.Context(), userID, filter)
	}
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items))
}

// @Summary Get booking history
// @Description Get the status change trail for a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.HistoryEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/history [get]
func (h *BookingHandler) GetBookingHistory(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}
	if !h.canView(c, view.CustomerID, view.TechnicianID) {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("viewer is not allowed to read this booking"), "Insufficient permissions", nil)
		return
	}

	entries, err := h.queries.GetHistory(c.Request.Context(), id)
	if err != nil {
		h.respondQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryEntries(entries))
}

// @Summary Change booking status
// @Description Move a booking along its lifecycle (approve, reject, start, complete, cancel)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) ChangeStatus(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	var req reqdto.ChangeStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	to, err := req.ToStatus()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		return
	}

	err = h.commands.ChangeStatus(c.Request.Context(), commands.ChangeStatusParams{
		BookingID: id,
		To:        to,
		Note:      req.NoteOrDefault(),
		ActorID:   actorID,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel booking
// @Description Cancel a booking and release its slot. Repeating the call is a no-op.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Cancellation reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
			return
		}
	}

	if !h.ensureOwnedByCustomer(c, id, actorID) {
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), id, req.ReasonOrDefault(), actorID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reschedule booking
// @Description Move a booking to another time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "New time slot"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	var req reqdto.RescheduleBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if !h.ensureOwnedByCustomer(c, id, actorID) {
		return
	}

	if err := h.commands.Reschedule(c.Request.Context(), id, req.TimeSlotID, actorID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Assign technician
// @Description Assign an available technician to a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.AssignTechnicianRequest true "Technician"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/assign-technician [post]
func (h *BookingHandler) AssignTechnician(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	var req reqdto.AssignTechnicianRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.commands.AssignTechnician(c.Request.Context(), id, req.TechnicianID, actorID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Capture payment
// @Description Mark a booking as paid. Repeating the call is a no-op.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/payment [post]
func (h *BookingHandler) CapturePayment(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	if err := h.commands.CapturePayment(c.Request.Context(), id, actorID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update service notes
// @Description Replace the free-form notes on a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateNotesRequest true "Notes"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id}/notes [put]
func (h *BookingHandler) UpdateNotes(c *gin.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetUserID(c)

	var req reqdto.UpdateNotesRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if err := h.commands.UpdateServiceNotes(c.Request.Context(), id, req.SpecialNotes, actorID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) bookingID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *BookingHandler) canView(c *gin.Context, customerID uuid.UUID, technicianID *uuid.UUID) bool {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return false
	}
	role, _ := middleware.GetUserRole(c)

	switch role {
	case user.RoleManager:
		return true
	case user.RoleTechnician:
		return technicianID != nil && *technicianID == userID
	default:
		return customerID == userID
	}
}

// Customers may only act on their own bookings; staff roles pass through.
func (h *BookingHandler) ensureOwnedByCustomer(c *gin.Context, bookingID, actorID uuid.UUID) bool {
	role, _ := middleware.GetUserRole(c)
	if role != user.RoleCustomer {
		return true
	}

	view, err := h.queries.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		h.respondQueryError(c, err)
		return false
	}
	if view.CustomerID != actorID {
		httperr.AbortWithError(c, http.StatusForbidden, errs.New("booking belongs to another customer"), "Insufficient permissions", nil)
		return false
	}
	return true
}

func (h *BookingHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrSlotNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Time slot not found", nil)
	case errors.Is(err, errs.ErrVehicleNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Vehicle not found", nil)
	case errors.Is(err, errs.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, errs.ErrTechnicianNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Technician not found", nil)
	case errors.Is(err, errs.ErrVehicleNotOwned):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Vehicle does not belong to you", nil)
	case errors.Is(err, errs.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is not open for booking", nil)
	case errors.Is(err, errs.ErrSlotFull):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is fully booked", nil)
	case errors.Is(err, errs.ErrTechnicianUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Technician is not available", nil)
	case errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Status change not allowed from the current state", nil)
	case errors.Is(err, errs.ErrPaymentNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment is not allowed for the current status", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *BookingHandler) respondQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func listFilter(c *gin.Context) queries.BookingFilter {
	filter := queries.BookingFilter{}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	filter.Limit = int32(queryInt(c, "limit"))
	filter.Offset = int32(queryInt(c, "offset"))
	return filter
}

func queryInt(c *gin.Context, key string) int {
	val, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return val
}
