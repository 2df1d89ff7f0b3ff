package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("slot start time must be before end time")
	ErrInvalidCapacity = errors.New("slot capacity must be positive")
)

// TimeSlot is the capacity ledger entry for one service window.
// current bookings is mutated only through the atomic reserve/release
// statements in the repository; the entity carries a read snapshot.
type TimeSlot struct {
	id              uuid.UUID
	date            time.Time
	startTime       time.Duration // offset from midnight
	endTime         time.Duration
	maxCapacity     int32
	currentBookings int32
	available       bool
}

func NewTimeSlot(date time.Time, start, end time.Duration, maxCapacity int32) (*TimeSlot, error) {
	if start >= end {
		return nil, ErrInvalidWindow
	}
	if maxCapacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &TimeSlot{
		id:          uuid.New(),
		date:        date.Truncate(24 * time.Hour),
		startTime:   start,
		endTime:     end,
		maxCapacity: maxCapacity,
		available:   true,
	}, nil
}

func ReconstructTimeSlot(
	id uuid.UUID,
	date time.Time,
	start, end time.Duration,
	maxCapacity, currentBookings int32,
	available bool,
) *TimeSlot {
	return &TimeSlot{
		id:              id,
		date:            date,
		startTime:       start,
		endTime:         end,
		maxCapacity:     maxCapacity,
		currentBookings: currentBookings,
		available:       available,
	}
}

// ScheduledStart combines the slot date and start offset into the timestamp
// a booking is scheduled for. Fixed at booking creation, changed only by a
// reschedule.
func (s *TimeSlot) ScheduledStart() time.Time {
	return s.date.Add(s.startTime)
}

func (s *TimeSlot) HasCapacity() bool {
	return s.available && s.currentBookings < s.maxCapacity
}

func (s *TimeSlot) Remaining() int32 {
	if s.currentBookings >= s.maxCapacity {
		return 0
	}
	return s.maxCapacity - s.currentBookings
}

func (s *TimeSlot) ID() uuid.UUID           { return s.id }
func (s *TimeSlot) Date() time.Time         { return s.date }
func (s *TimeSlot) StartTime() time.Duration { return s.startTime }
func (s *TimeSlot) EndTime() time.Duration  { return s.endTime }
func (s *TimeSlot) MaxCapacity() int32      { return s.maxCapacity }
func (s *TimeSlot) CurrentBookings() int32  { return s.currentBookings }
func (s *TimeSlot) IsAvailable() bool       { return s.available }
