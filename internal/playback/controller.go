package playback

import (
	"math"
	"sync"

	"github.com/llehouerou/earmark/internal/device"
	"github.com/llehouerou/earmark/internal/errmsg"
	"github.com/llehouerou/earmark/internal/logger"
	"github.com/llehouerou/earmark/internal/notify"
	"github.com/llehouerou/earmark/internal/store"
)

const msgBufferSize = 64

// Options configures a Controller. Device and Store must be non-nil;
// Surface, Logger and Notifier default to no-ops.
type Options struct {
	Device   device.Interface
	Surface  ControlSurface
	Store    store.Interface
	Logger   logger.Interface
	Notifier notify.Notifier
}

// Controller is the single source of truth for what is playing, how far
// along it is, and at what speed. All mutations flow through Send as
// messages and are applied by one loop goroutine, which is the only
// writer to the device.
//
// State readers always receive copies; the live state is never exposed
// by reference.
type Controller struct {
	device   device.Interface
	surface  ControlSurface
	store    store.Interface
	log      logger.Interface
	notifier notify.Notifier

	mu           sync.RWMutex
	state        store.PlayerState
	loadedHandle store.Handle
	loadedTitle  string
	notifyID     uint32
	closed       bool

	actions  *Actions
	autosave *autosaveTimer

	msgs chan Msg
	done chan struct{}

	subsMu sync.RWMutex
	subs   map[*Subscription]struct{}
}

// New creates a Controller, registers its surface handlers, starts the
// message loop, begins restoring the previously saved state, and arms
// the autosave timer.
func New(opts Options) *Controller {
	c := &Controller{
		device:   opts.Device,
		surface:  opts.Surface,
		store:    opts.Store,
		log:      opts.Logger,
		notifier: opts.Notifier,
		state:    store.PlayerState{PlaybackSpeed: 1.0},
		msgs:     make(chan Msg, msgBufferSize),
		done:     make(chan struct{}),
		subs:     make(map[*Subscription]struct{}),
	}
	if c.surface == nil {
		c.surface = NopSurface{}
	}
	if c.log == nil {
		c.log = logger.New()
	}
	if c.notifier == nil {
		c.notifier = notify.Nop{}
	}

	c.actions = c.buildActions()
	c.registerActions()
	c.autosave = newAutosaveTimer(autosaveInterval, func() {
		c.Send(SaveState{Elapsed: c.device.CurrentTime()})
	})

	go c.loop()
	c.restoreFromStore()
	c.autosave.Arm()
	return c
}

// Send enqueues msg for processing. Messages are processed strictly in
// arrival order. After Close, messages are dropped.
func (c *Controller) Send(msg Msg) {
	select {
	case <-c.done:
	case c.msgs <- msg:
	}
}

func (c *Controller) loop() {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.msgs:
			c.handle(msg)
		}
	}
}

// restoreFromStore loads the saved player state and replays it through
// SetState. Any load failure means a fresh start.
func (c *Controller) restoreFromStore() {
	go func() {
		state, err := c.store.LoadPlayerState()
		if err != nil || state == nil {
			return
		}
		c.Send(SetState{State: *state})
	}()
}

// State returns a copy of the controller state.
func (c *Controller) State() store.PlayerState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return copyState(c.state)
}

// NowPlaying returns the handle most recently requested for playback,
// which may not be installed in the device yet.
func (c *Controller) NowPlaying() store.Handle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.NowPlaying
}

// LoadedHandle returns the handle whose audio the device carries.
func (c *Controller) LoadedHandle() store.Handle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedHandle
}

// LoadedTitle returns the title of the article the device carries.
func (c *Controller) LoadedTitle() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedTitle
}

// Position reports the device position in seconds, NaN when nothing is
// loaded.
func (c *Controller) Position() float64 {
	return c.device.CurrentTime()
}

// Duration reports the loaded article length in seconds, NaN when
// nothing is loaded.
func (c *Controller) Duration() float64 {
	return c.device.Duration()
}

// Rate reports the device playback rate.
func (c *Controller) Rate() float64 {
	return c.device.Rate()
}

// Playing reports whether the device is playing.
func (c *Controller) Playing() bool {
	return c.device.Playing()
}

// Subscribe registers an event subscriber. The subscription stays live
// until Unsubscribe or Close.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.subs == nil {
		sub.close()
		return sub
	}
	c.subs[sub] = struct{}{}
	return sub
}

// Unsubscribe removes a subscription and closes its Done channel.
func (c *Controller) Unsubscribe(sub *Subscription) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	if _, ok := c.subs[sub]; !ok {
		return
	}
	delete(c.subs, sub)
	sub.close()
}

func (c *Controller) notifyStateRestored() {
	event := StateRestored{State: c.State()}
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for sub := range c.subs {
		sub.sendStateRestored(event)
	}
}

// Close stops the controller: the autosave chain halts, the loop exits,
// queued messages are dropped, and subscriptions end. A final state
// snapshot is persisted synchronously so a quit loses at most the
// position since the last device readout. Close is idempotent; the
// persist failure, like any other, is logged rather than returned.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.autosave.Stop()
	close(c.done)

	c.subsMu.Lock()
	for sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	c.mu.RLock()
	notifyID := c.notifyID
	c.mu.RUnlock()
	if notifyID != 0 {
		c.notifier.Close(notifyID)
	}

	elapsed := c.device.CurrentTime()
	c.mu.Lock()
	if !math.IsNaN(elapsed) {
		c.state.Elapsed = &elapsed
	}
	snapshot := copyState(c.state)
	c.mu.Unlock()
	if err := c.store.SavePlayerState(snapshot); err != nil {
		c.log.Print(errmsg.Format(errmsg.OpStatePersist, err))
	}
	return nil
}

// copyState clones s so that callers never share memory with the live
// state.
func copyState(s store.PlayerState) store.PlayerState {
	out := s
	if s.Elapsed != nil {
		e := *s.Elapsed
		out.Elapsed = &e
	}
	return out
}
