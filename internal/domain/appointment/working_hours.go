package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	// Shop hours, both ends bookable.
	OpeningMinute = 6 * 60
	ClosingMinute = 17 * 60
)

// Slot is a bookable (date, time) point. Two appointments conflict iff their slots are equal.
type Slot struct {
	Date string
	Time string
}

func (s Slot) String() string {
	return s.Date + " " + s.Time
}

// Start resolves the slot to an instant in loc.
func (s Slot) Start(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" "+TimeLayout, s.Date+" "+s.Time, loc)
}

// ParseSlot normalizes user input ("9:00" becomes "09:00") without checking business rules.
func ParseSlot(date, tm string) (Slot, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(date))
	if err != nil {
		return Slot{}, httperr.ErrBusinessf(httperr.CodeInvalidDateTime, "date must be YYYY-MM-DD")
	}

	t, err := time.Parse(TimeLayout, strings.TrimSpace(tm))
	if err != nil {
		return Slot{}, httperr.ErrBusinessf(httperr.CodeInvalidDateTime, "time must be HH:MM")
	}

	return Slot{
		Date: d.Format(DateLayout),
		Time: t.Format(TimeLayout),
	}, nil
}

// IsWithinShopHours checks the 06:00-17:00 inclusive window.
func IsWithinShopHours(s Slot) bool {
	t, err := time.Parse(TimeLayout, s.Time)
	if err != nil {
		return false
	}
	minute := t.Hour()*60 + t.Minute()
	return minute >= OpeningMinute && minute <= ClosingMinute
}

// ValidateSlot parses the input and applies the booking rules against now:
// no past date, no past time today, and inside shop hours.
func ValidateSlot(date, tm string, now time.Time) (Slot, error) {
	slot, err := ParseSlot(date, tm)
	if err != nil {
		return Slot{}, err
	}

	start, err := slot.Start(now.Location())
	if err != nil {
		return Slot{}, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
	}

	today := now.Format(DateLayout)
	if slot.Date < today {
		return Slot{}, httperr.ErrBusinessf(httperr.CodePastDateTime, "date has passed")
	}
	if slot.Date == today && start.Before(now) {
		return Slot{}, httperr.ErrBusinessf(httperr.CodePastDateTime, "time has passed")
	}

	if !IsWithinShopHours(slot) {
		return Slot{}, httperr.ErrBusiness(httperr.CodeInvalidTimeWindow)
	}

	return slot, nil
}
