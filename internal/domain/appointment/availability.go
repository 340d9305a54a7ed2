package appointment

import (
	"time"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

type TimeSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// FreeSlots walks the shop-hours grid for one day and drops slots that are
// actively held or already in the past relative to now.
func FreeSlots(date string, step time.Duration, now time.Time, booked []models.Appointment) []TimeSlot {
	if step <= 0 {
		return nil
	}

	held := make(map[string]bool, len(booked))
	for _, ap := range booked {
		if ap.SlotDate == date && IsActive(ap.Status, ap.IsDeleted) {
			held[ap.SlotTime] = true
		}
	}

	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return nil
	}

	open := day.Add(OpeningMinute * time.Minute)
	closing := day.Add(ClosingMinute * time.Minute)

	slots := []TimeSlot{}
	for cur := open; !cur.After(closing); cur = cur.Add(step) {
		if cur.Before(now) {
			continue
		}
		hm := cur.Format(TimeLayout)
		if held[hm] {
			continue
		}
		slots = append(slots, TimeSlot{Date: date, Time: hm})
	}

	return slots
}
