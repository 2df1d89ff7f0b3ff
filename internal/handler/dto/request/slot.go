package request

import (
	"fmt"
	"time"
)

const slotDateLayout = "2006-01-02"

type CreateSlotRequest struct {
	Date        string `json:"date" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	MaxCapacity int32  `json:"max_capacity" binding:"required,gt=0"`
}

func (r CreateSlotRequest) ParseDate() (time.Time, error) {
	return time.Parse(slotDateLayout, r.Date)
}

func (r CreateSlotRequest) ParseWindow() (start, end time.Duration, err error) {
	start, err = parseClock(r.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = parseClock(r.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

type ListSlotsQuery struct {
	From          string `form:"from" binding:"required"`
	To            string `form:"to" binding:"required"`
	OnlyAvailable bool   `form:"only_available"`
}

func (q ListSlotsQuery) ParseRange() (from, to time.Time, err error) {
	from, err = time.Parse(slotDateLayout, q.From)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err = time.Parse(slotDateLayout, q.To)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s before start %s", q.To, q.From)
	}
	return from, to, nil
}

// parseClock reads HH:MM as an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
