package playback

import (
	"math"
	"strconv"

	"github.com/llehouerou/earmark/internal/errmsg"
	"github.com/llehouerou/earmark/internal/notify"
	"github.com/llehouerou/earmark/internal/store"
)

const defaultMIMEType = "audio/mp3"

// notifyTimeout is how long the now-playing notification stays up, in ms.
const notifyTimeout int32 = 5000

func (c *Controller) handle(msg Msg) {
	switch m := msg.(type) {
	case PlayHandle:
		c.handlePlayHandle(m.Handle)
	case Play:
		c.handlePlay()
	case Pause:
		c.handlePause()
	case JumpForward:
		c.handleJump(jumpSize)
	case JumpBackward:
		c.handleJump(-jumpSize)
	case SeekTo:
		c.handleSeekTo(m.Details)
	case UpdatePlaybackSpeed:
		c.handleUpdateSpeed(m.Value)
	case SetState:
		c.handleSetState(m.State)
	case SaveState:
		c.handleSaveState(m.Elapsed)
	case playResolved:
		c.handlePlayResolved(m)
	case restoreResolved:
		c.handleRestoreResolved(m)
	}
}

func (c *Controller) handlePlayHandle(handle store.Handle) {
	// Some platforms keep feeding the old source unless it is paused
	// before being swapped.
	c.device.Pause()
	c.surface.SetPlaybackStatus(false)

	// The handle is now-playing from the moment it is requested, not
	// when its audio arrives.
	c.mu.Lock()
	c.state.NowPlaying = handle
	c.mu.Unlock()

	go c.resolveForPlay(handle)
}

func (c *Controller) resolveForPlay(handle store.Handle) {
	article, err := c.store.Resolve(handle)
	if err != nil {
		c.log.Print(errmsg.FormatWith(errmsg.OpArticleResolve, string(handle), err))
		return
	}
	c.Send(playResolved{article: article})
}

func (c *Controller) handlePlayResolved(msg playResolved) {
	if !c.installSource(msg.article) {
		return
	}
	if err := c.device.Play(); err != nil {
		c.log.Print(errmsg.Format(errmsg.OpPlaybackStart, err))
		return
	}
	c.surface.SetPlaybackStatus(true)
	c.sendNowPlaying(msg.article.Title)
}

// sendNowPlaying raises the desktop notification for an article that
// just started, replacing the previous one instead of stacking.
func (c *Controller) sendNowPlaying(title string) {
	c.mu.RLock()
	replaces := c.notifyID
	c.mu.RUnlock()

	id, err := c.notifier.Notify(notify.Notification{
		Title:      title,
		Timeout:    notifyTimeout,
		ReplacesID: replaces,
		Urgency:    notify.UrgencyLow,
	})
	if err != nil {
		c.log.Print(errmsg.Format(errmsg.OpNotifySend, err))
		return
	}

	c.mu.Lock()
	c.notifyID = id
	c.mu.Unlock()
}

// installSource pauses the device, swaps in the article's audio, and
// publishes its title. Installing never starts playback. Reports
// whether the source is in place.
func (c *Controller) installSource(article store.Article) bool {
	c.device.Pause()

	mimeType := article.MIMEType
	if mimeType == "" {
		mimeType = defaultMIMEType
	}
	if err := c.device.SetSource(article.Audio, mimeType); err != nil {
		c.log.Print(errmsg.FormatWith(errmsg.OpPlaybackStart, article.Title, err))
		return false
	}

	c.mu.Lock()
	c.loadedHandle = article.Handle
	c.loadedTitle = article.Title
	c.mu.Unlock()

	c.surface.SetMetadata(article.Title)
	c.surface.SetPlaybackStatus(false)
	return true
}

func (c *Controller) handlePlay() {
	if err := c.device.Play(); err != nil {
		c.log.Print(errmsg.Format(errmsg.OpPlaybackStart, err))
		return
	}
	c.surface.SetPlaybackStatus(true)
}

func (c *Controller) handlePause() {
	c.device.Pause()
	c.surface.SetPlaybackStatus(false)
}

// handleJump seeks by offset seconds from the current position, clamped
// to the article bounds. Skipped entirely unless both position and
// duration read back valid.
func (c *Controller) handleJump(offset float64) {
	pos := c.device.CurrentTime()
	dur := c.device.Duration()
	if !validReadout(pos) || !validReadout(dur) {
		return
	}
	c.device.Seek(clampJump(pos, offset, dur))
	c.pushPositionState()
}

// handleSeekTo translates a platform seek request. Absolute time wins
// over an offset when both are present; the fast path is taken only
// when explicitly requested.
func (c *Controller) handleSeekTo(details ActionDetails) {
	switch {
	case details.SeekTime != nil:
		if details.FastSeek {
			c.device.FastSeek(*details.SeekTime)
		} else {
			c.device.Seek(*details.SeekTime)
		}
	case details.SeekOffset != nil:
		c.handleJump(*details.SeekOffset)
	}
}

func (c *Controller) handleUpdateSpeed(value string) {
	speed := parseSpeed(value)
	c.device.SetRate(speed)
	c.device.SetDefaultRate(speed)

	c.mu.Lock()
	c.state.PlaybackSpeed = speed
	c.mu.Unlock()

	c.pushPositionState()
}

// handleSetState replaces the whole controller state. If the new state
// names a now-playing handle, its audio is resolved and installed
// without starting playback, positioned at the saved elapsed time with
// the saved speed applied. This is the only message observers must
// re-render for.
func (c *Controller) handleSetState(state store.PlayerState) {
	state = copyState(state)
	state.PlaybackSpeed = normalizeSpeed(state.PlaybackSpeed)

	c.mu.Lock()
	c.state = state
	c.mu.Unlock()

	if state.NowPlaying != "" {
		elapsed := 0.0
		if state.Elapsed != nil {
			elapsed = *state.Elapsed
		}
		go c.resolveForRestore(state.NowPlaying, elapsed, state.PlaybackSpeed)
	}

	c.notifyStateRestored()
}

func (c *Controller) resolveForRestore(handle store.Handle, elapsed, rate float64) {
	article, err := c.store.Resolve(handle)
	if err != nil {
		c.log.Print(errmsg.FormatWith(errmsg.OpStateRestore, string(handle), err))
		return
	}
	c.Send(restoreResolved{article: article, elapsed: elapsed, rate: rate})
}

func (c *Controller) handleRestoreResolved(msg restoreResolved) {
	if !c.installSource(msg.article) {
		return
	}
	c.device.Seek(msg.elapsed)
	c.device.SetRate(msg.rate)
	c.device.SetDefaultRate(msg.rate)
}

// handleSaveState records the elapsed position, hands a snapshot of the
// full state to the store, and unconditionally re-arms the autosave
// timer. Persistence runs in the background; failures are logged, never
// retried.
func (c *Controller) handleSaveState(elapsed float64) {
	c.mu.Lock()
	c.state.Elapsed = &elapsed
	snapshot := copyState(c.state)
	c.mu.Unlock()

	go func() {
		if err := c.store.SavePlayerState(snapshot); err != nil {
			c.log.Print(errmsg.Format(errmsg.OpStatePersist, err))
		}
	}()

	c.autosave.Arm()
}

func normalizeSpeed(speed float64) float64 {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return 1.0
	}
	return speed
}

// parseSpeed parses raw user input for the playback rate. Unparseable
// or non-positive input falls back to 1.0. Input is not trimmed.
func parseSpeed(value string) float64 {
	speed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 1.0
	}
	return normalizeSpeed(speed)
}
