// internal/notify/mock.go
package notify

import "sync"

// Mock records notifications for tests.
type Mock struct {
	mu        sync.Mutex
	nextID    uint32
	sent      []Notification
	closed    []uint32
	notifyErr error
}

// Verify Mock implements Notifier at compile time.
var _ Notifier = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{}
}

// Notify records n. Like the real daemon, it returns the replaced ID
// when ReplacesID is set and a fresh one otherwise.
func (m *Mock) Notify(n Notification) (uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.notifyErr != nil {
		return 0, m.notifyErr
	}
	m.sent = append(m.sent, n)
	if n.ReplacesID != 0 {
		return n.ReplacesID, nil
	}
	m.nextID++
	return m.nextID, nil
}

func (m *Mock) Close(id uint32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = append(m.closed, id)
	return nil
}

// SetNotifyError makes subsequent Notify calls fail with err.
func (m *Mock) SetNotifyError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifyErr = err
}

// Sent returns the notifications sent so far.
func (m *Mock) Sent() []Notification {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Notification, len(m.sent))
	copy(out, m.sent)
	return out
}

// Closed returns the IDs dismissed so far.
func (m *Mock) Closed() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint32, len(m.closed))
	copy(out, m.closed)
	return out
}
