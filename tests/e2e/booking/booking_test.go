//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"seatslabs/internal/domain/user"
	"seatslabs/internal/handler/dto/response"
	"seatslabs/internal/infra/readstore"
	"seatslabs/internal/infra/repository"
	"seatslabs/internal/pkg/clock"
	"seatslabs/internal/usecase/reminder"
	"seatslabs/tests/common/authtest"
	"seatslabs/tests/common/dbtest"
	"seatslabs/tests/common/httptest"
	"seatslabs/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	slotsURL    = "/api/slots"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// seeds one customer with a vehicle, a service and a slot for tomorrow
func (s *BookingSuite) seedBookingFixture(t *testing.T, email, registration string, capacity int32) (customerID, vehicleID, serviceID, slotID uuid.UUID) {
	customerID = dbtest.CreateTestUser(t, s.DB, email, string(user.RoleCustomer))
	vehicleID = dbtest.CreateTestVehicle(t, s.DB, customerID, registration)
	serviceID = dbtest.CreateTestService(t, s.DB, "Full Service "+registration, 85_00)
	slotID = dbtest.CreateTestSlot(t, s.DB, time.Now().AddDate(0, 0, 1), 9, capacity)
	return
}

func (s *BookingSuite) createBooking(t *testing.T, token string, vehicleID, serviceID, slotID uuid.UUID) response.BookingResponse {
	reqBody := map[string]any{
		"vehicle_id":    vehicleID.String(),
		"service_id":    serviceID.String(),
		"time_slot_id":  slotID.String(),
		"special_notes": "Check brake pads",
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
	require.Equal(t, http.StatusCreated, w.Code, "booking creation failed: %s", w.Body.String())

	var created response.BookingResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *BookingSuite) slotBookings(t *testing.T, slotID uuid.UUID) int32 {
	var n int32
	err := s.DB.QueryRow(context.Background(),
		"SELECT current_bookings FROM time_slots WHERE id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

// =============================================================================
// TestCreateBooking - booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: customer books a slot and the price is snapshotted", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "booker@example.com", "WP CAB-1001", 3)
		token := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)

		created := s.createBooking(t, token, vehicleID, serviceID, slotID)

		require.NotEqual(t, uuid.Nil, created.ID)
		require.NotEmpty(t, created.Reference)

		expected := &response.BookingResponse{
			CustomerID:          customerID,
			VehicleID:           vehicleID,
			VehicleRegistration: "WP CAB-1001",
			ServiceID:           serviceID,
			TimeSlotID:          slotID,
			SlotStart:           "09:00",
			SlotEnd:             "10:00",
			Status:              "pending",
			EstimatedPriceCents: 85_00,
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{},
				"ID", "Reference", "ServiceName", "SlotDate", "ScheduledAt",
				"SpecialNotes", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, int32(1), s.slotBookings(t, slotID))

		// Raising the service price later must not change the booked price
		_, err := s.DB.Exec(context.Background(),
			"UPDATE services SET base_price_cents = 999_00 WHERE id = $1", serviceID)
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, int64(85_00), fetched.EstimatedPriceCents)
	})

	s.Run("Error case: booking someone else's vehicle fails", func() {
		t := s.T()

		_, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "owner@example.com", "WP CAB-1002", 3)
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", string(user.RoleCustomer))
		token := s.jwt.GenerateToken(t, otherID, user.RoleCustomer)

		reqBody := map[string]any{
			"vehicle_id":   vehicleID.String(),
			"service_id":   serviceID.String(),
			"time_slot_id": slotID.String(),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, int32(0), s.slotBookings(t, slotID))
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "expired@example.com", "WP CAB-1003", 3)
		token := s.jwt.CreateExpiredToken(t, customerID, user.RoleCustomer)

		reqBody := map[string]any{
			"vehicle_id":   vehicleID.String(),
			"service_id":   serviceID.String(),
			"time_slot_id": slotID.String(),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestSlotCapacity - concurrent reservation against a bounded slot
// =============================================================================

func (s *BookingSuite) TestSlotCapacity() {
	s.Run("Concurrent bookings never exceed the slot capacity", func() {
		t := s.T()

		const attempts = 5
		const capacity = 2

		serviceID := dbtest.CreateTestService(t, s.DB, "Capacity Service", 60_00)
		slotID := dbtest.CreateTestSlot(t, s.DB, time.Now().AddDate(0, 0, 1), 10, capacity)

		type attempt struct {
			token     string
			vehicleID uuid.UUID
		}
		attemptsData := make([]attempt, attempts)
		for i := range attempts {
			email := fmt.Sprintf("racer%d@example.com", i)
			customerID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleCustomer))
			vehicleID := dbtest.CreateTestVehicle(t, s.DB, customerID, fmt.Sprintf("WP RACE-%04d", i))
			attemptsData[i] = attempt{
				token:     s.jwt.GenerateToken(t, customerID, user.RoleCustomer),
				vehicleID: vehicleID,
			}
		}

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				reqBody := map[string]any{
					"vehicle_id":   attemptsData[i].vehicleID.String(),
					"service_id":   serviceID.String(),
					"time_slot_id": slotID.String(),
				}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, attemptsData[i].token)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created, rejected := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				rejected++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, capacity, created)
		require.Equal(t, attempts-capacity, rejected)
		require.Equal(t, int32(capacity), s.slotBookings(t, slotID))
	})
}

// =============================================================================
// TestBookingLifecycle - approval, work, completion, payment, history
// =============================================================================

func (s *BookingSuite) TestBookingLifecycle() {
	s.Run("Normal case: full lifecycle with history trail", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "lifecycle@example.com", "WP CAB-2001", 3)
		customerToken := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)

		managerID := dbtest.CreateTestUser(t, s.DB, "manager@example.com", string(user.RoleManager))
		managerToken := s.jwt.GenerateToken(t, managerID, user.RoleManager)

		technicianID := dbtest.CreateTestTechnician(t, s.DB, "tech@example.com", true)

		created := s.createBooking(t, customerToken, vehicleID, serviceID, slotID)
		bookingURL := bookingsURL + "/" + created.ID.String()

		// approve
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingURL+"/status",
			map[string]any{"status": "approved", "note": "Approved by manager"}, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// assign technician
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL+"/assign-technician",
			map[string]any{"technician_id": technicianID.String()}, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// start and complete
		for _, status := range []string{"in_progress", "completed"} {
			w = httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingURL+"/status",
				map[string]any{"status": status}, managerToken)
			require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		}

		// capture payment
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingURL+"/payment", nil, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// final state
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL, nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var final response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &final))
		require.Equal(t, "completed", final.Status)
		require.NotNil(t, final.TechnicianID)
		require.Equal(t, technicianID, *final.TechnicianID)
		require.NotNil(t, final.ActualStartAt)
		require.NotNil(t, final.ActualEndAt)
		require.NotNil(t, final.PaidAt)

		// history trail in chronological order
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingURL+"/history", nil, managerToken)
		require.Equal(t, http.StatusOK, w.Code)
		var history []response.HistoryEntryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &history))
		require.Len(t, history, 6)
		require.Equal(t, "pending", history[0].Status)
		require.Equal(t, "approved", history[1].Status)
		require.Equal(t, "Technician assigned", history[2].Note)
		require.Equal(t, "in_progress", history[3].Status)
		require.Equal(t, "completed", history[4].Status)
		require.Equal(t, "Payment captured", history[5].Note)
	})

	s.Run("Error case: completed booking cannot be reopened", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "terminal@example.com", "WP CAB-2002", 3)
		customerToken := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)
		managerID := dbtest.CreateTestUser(t, s.DB, "manager2@example.com", string(user.RoleManager))
		managerToken := s.jwt.GenerateToken(t, managerID, user.RoleManager)

		created := s.createBooking(t, customerToken, vehicleID, serviceID, slotID)
		bookingURL := bookingsURL + "/" + created.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingURL+"/status",
			map[string]any{"status": "rejected"}, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, bookingURL+"/status",
			map[string]any{"status": "approved"}, managerToken)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// =============================================================================
// TestCancelBooking - cancellation and slot release
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: cancellation releases the slot and repeats are no-ops", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "canceller@example.com", "WP CAB-3001", 3)
		token := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)

		created := s.createBooking(t, token, vehicleID, serviceID, slotID)
		require.Equal(t, int32(1), s.slotBookings(t, slotID))

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL,
			map[string]any{"reason": "Changed plans"}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, int32(0), s.slotBookings(t, slotID))

		// second cancel must not drive the counter negative
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Equal(t, int32(0), s.slotBookings(t, slotID))
	})

	s.Run("Error case: customer cannot cancel someone else's booking", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "victim@example.com", "WP CAB-3002", 3)
		ownerToken := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)
		created := s.createBooking(t, ownerToken, vehicleID, serviceID, slotID)

		strangerID := dbtest.CreateTestUser(t, s.DB, "stranger@example.com", string(user.RoleCustomer))
		strangerToken := s.jwt.GenerateToken(t, strangerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/cancel", nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, int32(1), s.slotBookings(t, slotID))
	})
}

// =============================================================================
// TestRescheduleBooking - atomic slot swap
// =============================================================================

func (s *BookingSuite) TestRescheduleBooking() {
	s.Run("Normal case: booking moves to the new slot", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "mover@example.com", "WP CAB-4001", 3)
		token := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)
		created := s.createBooking(t, token, vehicleID, serviceID, slotID)

		newSlotID := dbtest.CreateTestSlot(t, s.DB, time.Now().AddDate(0, 0, 2), 14, 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/reschedule",
			map[string]any{"time_slot_id": newSlotID.String()}, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		require.Equal(t, int32(0), s.slotBookings(t, slotID))
		require.Equal(t, int32(1), s.slotBookings(t, newSlotID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var fetched response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, newSlotID, fetched.TimeSlotID)
	})

	s.Run("Error case: full target slot keeps the original reservation", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "blocked@example.com", "WP CAB-4002", 3)
		token := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)
		created := s.createBooking(t, token, vehicleID, serviceID, slotID)

		fullSlotID := dbtest.CreateTestSlot(t, s.DB, time.Now().AddDate(0, 0, 2), 15, 1)
		blockerID := dbtest.CreateTestUser(t, s.DB, "blocker@example.com", string(user.RoleCustomer))
		blockerVehicleID := dbtest.CreateTestVehicle(t, s.DB, blockerID, "WP CAB-4003")
		blockerToken := s.jwt.GenerateToken(t, blockerID, user.RoleCustomer)
		s.createBooking(t, blockerToken, blockerVehicleID, serviceID, fullSlotID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/reschedule",
			map[string]any{"time_slot_id": fullSlotID.String()}, token)
		require.Equal(t, http.StatusConflict, w.Code)

		require.Equal(t, int32(1), s.slotBookings(t, slotID))
		require.Equal(t, int32(1), s.slotBookings(t, fullSlotID))
	})

	s.Run("Error case: customer cannot reschedule someone else's booking", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "target@example.com", "WP CAB-4004", 3)
		ownerToken := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)
		created := s.createBooking(t, ownerToken, vehicleID, serviceID, slotID)

		newSlotID := dbtest.CreateTestSlot(t, s.DB, time.Now().AddDate(0, 0, 2), 16, 3)
		strangerID := dbtest.CreateTestUser(t, s.DB, "meddler@example.com", string(user.RoleCustomer))
		strangerToken := s.jwt.GenerateToken(t, strangerID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/reschedule",
			map[string]any{"time_slot_id": newSlotID.String()}, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code)

		require.Equal(t, int32(1), s.slotBookings(t, slotID))
		require.Equal(t, int32(0), s.slotBookings(t, newSlotID))
	})
}

// =============================================================================
// TestReminderSweep - 24 hour reminder job against seeded data
// =============================================================================

type countingEmailSender struct{ sent int }

func (c *countingEmailSender) SendEmail(context.Context, string, string, string) error {
	c.sent++
	return nil
}

type countingSMSSender struct{ sent int }

func (c *countingSMSSender) SendSMS(context.Context, string, string) error {
	c.sent++
	return nil
}

func (s *BookingSuite) TestReminderSweep() {
	s.Run("Normal case: approved bookings for tomorrow are reminded exactly once", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "remindee@example.com", "WP CAB-5001", 3)
		customerToken := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)
		managerID := dbtest.CreateTestUser(t, s.DB, "manager3@example.com", string(user.RoleManager))
		managerToken := s.jwt.GenerateToken(t, managerID, user.RoleManager)

		created := s.createBooking(t, customerToken, vehicleID, serviceID, slotID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			bookingsURL+"/"+created.ID.String()+"/status",
			map[string]any{"status": "approved"}, managerToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		email := &countingEmailSender{}
		sms := &countingSMSSender{}
		job := reminder.NewJob(
			readstore.NewReminderReadStore(s.DB),
			email,
			sms,
			repository.NewNotificationRepository(s.DB),
			clock.NewMockClock(time.Now()),
			time.Hour,
		)

		sent, err := job.RunOnce(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, sent)
		require.Equal(t, 1, email.sent)
		require.Equal(t, 1, sms.sent)

		// second sweep finds the dispatch record and stays silent
		sent, err = job.RunOnce(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, sent)
		require.Equal(t, 1, email.sent)

		var kind string
		err = s.DB.QueryRow(context.Background(),
			"SELECT kind FROM notifications WHERE booking_id = $1", created.ID).Scan(&kind)
		require.NoError(t, err)
		require.Equal(t, reminder.Kind24HourReminder, kind)
	})

	s.Run("Normal case: pending bookings are not reminded", func() {
		t := s.T()

		customerID, vehicleID, serviceID, slotID := s.seedBookingFixture(t, "pending@example.com", "WP CAB-5002", 3)
		token := s.jwt.GenerateToken(t, customerID, user.RoleCustomer)
		s.createBooking(t, token, vehicleID, serviceID, slotID)

		email := &countingEmailSender{}
		job := reminder.NewJob(
			readstore.NewReminderReadStore(s.DB),
			email,
			&countingSMSSender{},
			repository.NewNotificationRepository(s.DB),
			clock.NewMockClock(time.Now()),
			time.Hour,
		)

		sent, err := job.RunOnce(context.Background())
		require.NoError(t, err)
		require.Equal(t, 0, sent)
		require.Equal(t, 0, email.sent)
	})
}
