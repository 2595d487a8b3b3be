//go:build !linux

package notify

// New returns a Nop notifier; desktop notifications are D-Bus only.
func New() (Notifier, error) {
	return Nop{}, nil
}
