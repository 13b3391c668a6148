package notification

import (
	"context"
	"testing"
)

func TestMockNotifierRecordsEvents(t *testing.T) {
	m := &MockNotifier{}
	m.Notify(context.Background(), SeveritySuccess, "first")
	m.Notify(context.Background(), SeverityError, "second")

	events := m.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Severity != SeveritySuccess || events[0].Message != "first" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].Severity != SeverityError || events[1].Message != "second" {
		t.Errorf("unexpected second event: %+v", events[1])
	}
	if events[0].ID == events[1].ID {
		t.Error("expected distinct event ids")
	}
}

func TestEventsReturnsCopy(t *testing.T) {
	m := &MockNotifier{}
	m.Notify(context.Background(), SeverityInfo, "one")

	events := m.Events()
	events[0].Message = "mutated"
	if got := m.Events()[0].Message; got != "one" {
		t.Errorf("internal state mutated: %q", got)
	}
}
