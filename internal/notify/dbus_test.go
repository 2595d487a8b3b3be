//go:build linux

package notify

import (
	"os"
	"testing"
)

func TestNotifyAgainstSessionBus(t *testing.T) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		t.Skip("no D-Bus session available")
	}

	notifier, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	id, err := notifier.Notify(Notification{
		Title:   "Earmark Test",
		Body:    "notification from the test suite",
		Timeout: 1000,
		Urgency: UrgencyLow,
	})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if id == 0 {
		t.Error("Notify returned id 0, want non-zero")
	}

	if err := notifier.Close(id); err != nil {
		t.Errorf("Close: %v", err)
	}
}
