//go:build linux

package notify

import (
	"github.com/godbus/dbus/v5"
)

const (
	notifyDest      = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyInterface = "org.freedesktop.Notifications"
)

// dbusNotifier talks to the session notification daemon.
type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session notification daemon. Without a reachable
// session bus it degrades to a Nop notifier rather than failing.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return Nop{}, nil //nolint:nilerr // graceful fallback when D-Bus is unavailable
	}
	return &dbusNotifier{obj: conn.Object(notifyDest, notifyPath)}, nil
}

func (n *dbusNotifier) Notify(notif Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(byte(notif.Urgency)),
		"desktop-entry": dbus.MakeVariant("earmark"),
	}

	// Notify(app_name, replaces_id, icon, summary, body, actions, hints, timeout) -> id
	call := n.obj.Call(
		notifyInterface+".Notify",
		0,
		"Earmark",
		notif.ReplacesID,
		notif.Icon,
		notif.Title,
		notif.Body,
		[]string{},
		hints,
		notif.Timeout,
	)
	if call.Err != nil {
		return 0, call.Err
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (n *dbusNotifier) Close(id uint32) error {
	return n.obj.Call(notifyInterface+".CloseNotification", 0, id).Err
}
