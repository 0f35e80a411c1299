// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// DateWindow is an optional inclusive [StartDate, EndDate] bound applied to
// listing and summary queries. A nil bound leaves that side open.
type DateWindow struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// Contains reports whether the given date falls inside the window.
func (w DateWindow) Contains(date time.Time) bool {
	if w.StartDate != nil && date.Before(*w.StartDate) {
		return false
	}
	if w.EndDate != nil && date.After(*w.EndDate) {
		return false
	}
	return true
}

// IsOpen reports whether neither bound is set.
func (w DateWindow) IsOpen() bool {
	return w.StartDate == nil && w.EndDate == nil
}
