package handlers

import "time"

// IsDueTomorrow reports whether due falls on the calendar day after now, both
// viewed in loc. Only year, month and day are compared; a bill due at 00:01
// and one due at 23:59 tomorrow both match.
func IsDueTomorrow(now, due time.Time, loc *time.Location) bool {
	tomorrow := now.In(loc).AddDate(0, 0, 1)
	d := due.In(loc)
	return d.Year() == tomorrow.Year() &&
		d.Month() == tomorrow.Month() &&
		d.Day() == tomorrow.Day()
}
