// Package notify sends desktop notifications over D-Bus.
package notify

// Urgency is the freedesktop notification priority.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for one desktop notification.
type Notification struct {
	Title      string  // summary text
	Body       string  // optional body, supports basic markup
	Icon       string  // icon name or image path
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 starts a new notification, >0 replaces one
	Urgency    Urgency
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID. Returns 0 and a
	// nil error when notifications are unavailable.
	Notify(n Notification) (uint32, error)
	// Close dismisses a notification by ID.
	Close(id uint32) error
}

// Nop discards notifications.
type Nop struct{}

// Verify Nop implements Notifier at compile time.
var _ Notifier = Nop{}

func (Nop) Notify(Notification) (uint32, error) { return 0, nil }
func (Nop) Close(uint32) error                  { return nil }
