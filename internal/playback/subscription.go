package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	StateRestored <-chan StateRestored
	Done          <-chan struct{}

	// Internal write channels
	restoredCh chan StateRestored
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		restoredCh: make(chan StateRestored, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.StateRestored = s.restoredCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendStateRestored sends a restore event (non-blocking).
func (s *Subscription) sendStateRestored(e StateRestored) {
	select {
	case s.restoredCh <- e:
	default:
		// Drop if buffer full
	}
}
