// Package notification is the fire-and-forget user notification boundary.
// Core services hand a severity and a human-readable message to a Notifier
// and never block on or inspect the outcome.
package notification

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier delivers a user-facing message. Implementations must be safe to
// call from request handlers and must not block on delivery.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}

// LogNotifier writes notifications to the process log. It is the default
// in-process implementation; a real presentation layer would swap in its own.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier constructs a LogNotifier.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (n *LogNotifier) Notify(_ context.Context, severity Severity, message string) {
	evt := n.logger.Info()
	if severity == SeverityError {
		evt = n.logger.Error()
	}
	evt.Str("severity", string(severity)).Msg(message)
}

// Event records a single delivered notification.
type Event struct {
	ID        string    `json:"id"`
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MockNotifier is a test double that records every call.
type MockNotifier struct {
	mu     sync.Mutex
	events []Event
}

// Notify records the call.
func (m *MockNotifier) Notify(_ context.Context, severity Severity, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, Event{
		ID:        uuid.New().String(),
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	})
}

// Events returns a copy of recorded notifications.
func (m *MockNotifier) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Discard is a Notifier that drops everything; useful where no notifier is
// wired.
type Discard struct{}

// Notify implements Notifier.
func (Discard) Notify(context.Context, Severity, string) {}
