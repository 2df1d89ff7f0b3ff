//go:build unit || e2e

package builder

import (
	"time"

	domslot "seatslabs/internal/domain/slot"
	reqdto "seatslabs/internal/handler/dto/request"
	"seatslabs/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	Date            time.Time
	StartTime       time.Duration
	EndTime         time.Duration
	MaxCapacity     int32
	CurrentBookings int32
	IsAvailable     bool
}

func NewSlotBuilder() *SlotBuilder {
	tomorrow := time.Now().AddDate(0, 0, 1).Truncate(24 * time.Hour)
	return &SlotBuilder{
		Date:        tomorrow,
		StartTime:   9 * time.Hour,
		EndTime:     10 * time.Hour,
		MaxCapacity: 3,
		IsAvailable: true,
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

func (s *SlotBuilder) BuildDomain() (*domslot.TimeSlot, error) {
	return domslot.NewTimeSlot(s.Date, s.StartTime, s.EndTime, s.MaxCapacity)
}

func (s *SlotBuilder) BuildReconstructed() *domslot.TimeSlot {
	return domslot.ReconstructTimeSlot(
		uuid.New(), s.Date, s.StartTime, s.EndTime,
		s.MaxCapacity, s.CurrentBookings, s.IsAvailable,
	)
}

func (s *SlotBuilder) BuildCreateRequestDTO() reqdto.CreateSlotRequest {
	return reqdto.CreateSlotRequest{
		Date:        s.Date.Format("2006-01-02"),
		StartTime:   formatOffset(s.StartTime),
		EndTime:     formatOffset(s.EndTime),
		MaxCapacity: s.MaxCapacity,
	}
}

func (s *SlotBuilder) BuildView() *queries.SlotView {
	return &queries.SlotView{
		ID:              uuid.New(),
		Date:            s.Date,
		StartTime:       formatOffset(s.StartTime),
		EndTime:         formatOffset(s.EndTime),
		MaxCapacity:     s.MaxCapacity,
		CurrentBookings: s.CurrentBookings,
		IsAvailable:     s.IsAvailable,
	}
}

// Fluent builder methods
func (s *SlotBuilder) WithWindow(start, end time.Duration) *SlotBuilder {
	s.StartTime = start
	s.EndTime = end
	return s
}

func (s *SlotBuilder) WithCapacity(maxCapacity int32) *SlotBuilder {
	s.MaxCapacity = maxCapacity
	return s
}

func (s *SlotBuilder) WithCurrentBookings(n int32) *SlotBuilder {
	s.CurrentBookings = n
	return s
}

func (s *SlotBuilder) WithAvailable(available bool) *SlotBuilder {
	s.IsAvailable = available
	return s
}

func formatOffset(d time.Duration) string {
	t := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC).Add(d)
	return t.Format("15:04")
}
