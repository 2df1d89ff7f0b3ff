//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"seatslabs/internal/domain/user"
	"seatslabs/internal/handler/api"
	resdto "seatslabs/internal/handler/dto/response"
	"seatslabs/internal/pkg/errs"
	"seatslabs/internal/usecase/queries"
	"seatslabs/tests/common/builder"
	"seatslabs/tests/common/httptest"
	"seatslabs/tests/common/testutil"
	commandsmock "seatslabs/tests/mock/commands"
	queriesmock "seatslabs/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	authUserID uuid.UUID
	authRole   user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.authUserID = uuid.New()
	s.authRole = user.RoleCustomer

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.authUserID)
		c.Set("user_role", s.authRole)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.GET("/bookings/:id/history", authMiddleware, s.handler.GetBookingHistory)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.ChangeStatus)
	s.router.POST("/bookings/:id/cancel", authMiddleware, s.handler.CancelBooking)
	s.router.POST("/bookings/:id/reschedule", authMiddleware, s.handler.RescheduleBooking)
	s.router.POST("/bookings/:id/assign-technician", authMiddleware, s.handler.AssignTechnician)
	s.router.POST("/bookings/:id/payment", authMiddleware, s.handler.CapturePayment)
	s.router.PUT("/bookings/:id/notes", authMiddleware, s.handler.UpdateNotes)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with full booking view", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Reference, response.Reference)
		s.Equal(returnView.ServiceName, response.ServiceName)
	})

	s.Run("success: falls back to the ID when the read-back fails", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errors.New("read replica lag")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreatedBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing field: vehicle_id", mutate: testutil.Field("vehicle_id", nil)},
			{name: "missing field: service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing field: time_slot_id", mutate: testutil.Field("time_slot_id", nil)},
			{name: "malformed vehicle_id", mutate: testutil.Field("vehicle_id", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "vehicle of another customer",
				commandsError:  errs.ErrVehicleNotOwned,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Vehicle does not belong to you",
			},
			{
				name:           "slot fully booked",
				commandsError:  errs.ErrSlotFull,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "fully booked",
			},
			{
				name:           "slot closed",
				commandsError:  errs.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not open",
			},
			{
				name:           "slot missing",
				commandsError:  errs.ErrSlotNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Time slot not found",
			},
			{
				name:           "service missing",
				commandsError:  errs.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "domain validation",
				commandsError:  errs.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: customer reads own booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID
		returnView.CustomerID = s.authUserID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
	})

	s.Run("error: 403 for another customer's booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("success: manager reads any booking", func() {
		s.authRole = user.RoleManager
		defer func() { s.authRole = user.RoleCustomer }()

		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("technician: only assigned bookings", func() {
		s.authRole = user.RoleTechnician
		defer func() { s.authRole = user.RoleCustomer }()

		assigned := builder.NewBookingBuilder().BuildView()
		assigned.ID = bookingID
		techID := s.authUserID
		assigned.TechnicianID = &techID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(assigned, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		unassigned := builder.NewBookingBuilder().BuildView()
		unassigned.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(unassigned, nil).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().BuildListItem(),
		builder.NewBookingBuilder().BuildListItem(),
	}

	s.Run("customer: lists own bookings with filter", func() {
		status := "pending"
		expected := queries.BookingFilter{Status: &status, Limit: 10, Offset: 20}

		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.authUserID, expected).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?status=pending&limit=10&offset=20", nil, "bearer-token")

		var response []resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("technician: lists assignments", func() {
		s.authRole = user.RoleTechnician
		defer func() { s.authRole = user.RoleCustomer }()

		s.mockQueries.EXPECT().ListByTechnician(gomock.Any(), s.authUserID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("manager: lists everything", func() {
		s.authRole = user.RoleManager
		defer func() { s.authRole = user.RoleCustomer }()

		s.mockQueries.EXPECT().ListAll(gomock.Any(), queries.BookingFilter{}).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestChangeStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestChangeStatus() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "approved", "note": "Looks good"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status")
	})

	s.Run("error: 409 for blocked transition", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).
			Return(errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "completed"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Status change not allowed")
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("customer: cancels own booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID
		returnView.CustomerID = s.authUserID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)
		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, "Changed plans", s.authUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "Changed plans"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("customer: cannot cancel another customer's booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("manager: cancels without ownership check", func() {
		s.authRole = user.RoleManager
		defer func() { s.authRole = user.RoleCustomer }()

		s.mockCommands.EXPECT().Cancel(gomock.Any(), bookingID, "", s.authUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// TestRescheduleBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestRescheduleBooking() {
	bookingID := uuid.New()
	newSlotID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/reschedule"

	s.Run("customer: reschedules own booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID
		returnView.CustomerID = s.authUserID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, newSlotID, s.authUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"time_slot_id": newSlotID.String()}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("customer: cannot reschedule another customer's booking", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"time_slot_id": newSlotID.String()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("manager: reschedules without ownership check", func() {
		s.authRole = user.RoleManager
		defer func() { s.authRole = user.RoleCustomer }()

		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, newSlotID, s.authUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"time_slot_id": newSlotID.String()}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the new slot is full", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID
		returnView.CustomerID = s.authUserID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)
		s.mockCommands.EXPECT().Reschedule(gomock.Any(), bookingID, newSlotID, s.authUserID).
			Return(errs.ErrSlotFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"time_slot_id": newSlotID.String()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "fully booked")
	})

	s.Run("error: 400 for missing slot", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestAssignTechnician / TestCapturePayment / TestUpdateNotes
// ================================================================================

func (s *BookingHandlerTestSuite) TestAssignTechnician() {
	bookingID := uuid.New()
	technicianID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/assign-technician"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().AssignTechnician(gomock.Any(), bookingID, technicianID, s.authUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"technician_id": technicianID.String()}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when the technician is unavailable", func() {
		s.mockCommands.EXPECT().AssignTechnician(gomock.Any(), bookingID, technicianID, s.authUserID).
			Return(errs.ErrTechnicianUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"technician_id": technicianID.String()}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "not available")
	})
}

func (s *BookingHandlerTestSuite) TestCapturePayment() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/payment"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CapturePayment(gomock.Any(), bookingID, s.authUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 when payment is not allowed", func() {
		s.mockCommands.EXPECT().CapturePayment(gomock.Any(), bookingID, s.authUserID).
			Return(errs.ErrPaymentNotAllowed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Payment is not allowed")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateNotes() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/notes"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateServiceNotes(gomock.Any(), bookingID, "Replaced air filter", s.authUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"special_notes": "Replaced air filter"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 for missing notes", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

// ================================================================================
// TestGetBookingHistory
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBookingHistory() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/history"

	s.Run("customer: reads own booking's trail", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID
		returnView.CustomerID = s.authUserID

		entries := []*queries.HistoryEntry{
			{Status: "pending", Note: "Booking created", ChangedBy: s.authUserID},
			{Status: "approved", Note: "Approved", ChangedBy: uuid.New()},
		}

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)
		s.mockQueries.EXPECT().GetHistory(gomock.Any(), bookingID).
			Return(entries, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.HistoryEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("pending", response[0].Status)
		s.Equal("approved", response[1].Status)
	})

	s.Run("customer: cannot read another customer's trail", func() {
		returnView := builder.NewBookingBuilder().BuildView()
		returnView.ID = bookingID

		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 404 for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), bookingID).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
