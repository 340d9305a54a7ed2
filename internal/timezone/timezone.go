package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "Asia/Manila"

var (
	mu      sync.RWMutex
	shopLoc *time.Location
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetShop fixes the location every slot is interpreted in.
func SetShop(tz string) {
	mu.Lock()
	defer mu.Unlock()
	shopLoc = Location(tz)
}

func Shop() *time.Location {
	mu.RLock()
	loc := shopLoc
	mu.RUnlock()

	if loc == nil {
		return Location(DefaultTimezone)
	}
	return loc
}

// Now is the shop's wall clock.
func Now() time.Time {
	return time.Now().In(Shop())
}

// Clock is injected wherever "now" matters.
type Clock func() time.Time

// Fixed returns a clock stuck at t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}
