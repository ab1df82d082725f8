package delivery

import "time"

// Service window for pickups, local time of the start date.
const (
	pickupWindowOpenHour  = 8
	pickupWindowCloseHour = 18
)

// WithinPickupWindow reports whether t falls inside the pickup service window
// on its own calendar day. Both boundaries are inclusive: 08:00:00 and
// 18:00:00 sharp are accepted.
func WithinPickupWindow(t time.Time) bool {
	y, m, d := t.Date()
	open := time.Date(y, m, d, pickupWindowOpenHour, 0, 0, 0, t.Location())
	closed := time.Date(y, m, d, pickupWindowCloseHour, 0, 0, 0, t.Location())
	return !t.Before(open) && !t.After(closed)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's calendar day.
// Together with StartOfDay it bounds the window used by the daily pickup quota.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
