// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock supplies the current time. Injected so that "today"-relative logic
// (overdue flags, paid dates, default windows) is testable.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
