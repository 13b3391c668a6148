package appointment

import (
	"fmt"
	"time"
)

// Clock supplies the current time. Injected so bookings are deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// TokenSource issues display tokens handed to the patient at booking time.
// Tokens need not be globally unique, only distinct with overwhelming
// probability within one device's usage.
type TokenSource interface {
	Token() string
}

// clockTokenSource derives the token from the last six digits of the clock's
// epoch-millisecond timestamp, matching the established token format.
type clockTokenSource struct {
	clock Clock
}

func (s clockTokenSource) Token() string {
	return fmt.Sprintf("HD%06d", s.clock.Now().UnixMilli()%1_000_000)
}
