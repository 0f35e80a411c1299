// Package adapters provides implementations of application-layer service interfaces.
package adapters

import (
	"time"

	"github.com/loan-tracker/engine/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface using the wall clock.
type systemClock struct{}

// NewSystemClock creates a clock backed by the system time, in UTC.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

// Now returns the current time.
func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
