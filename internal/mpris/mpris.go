//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/earmark/internal/playback"
)

// Adapter exposes the playback controller on the session bus as an
// MPRIS player. It is a playback.ControlSurface: the controller pushes
// metadata, position snapshots and playback status in; MPRIS method
// calls flow back out through the registered action handlers.
//
// Position is served by interpolating from the last pushed snapshot at
// the pushed rate while playing, so the controller does not have to
// push on a timer.
type Adapter struct {
	server *server.Server

	mu       sync.Mutex
	title    string
	hasMeta  bool
	position float64
	duration float64
	rate     float64
	playing  bool
	pushedAt time.Time
	handlers map[playback.ActionKind]playback.ActionHandler
}

// Verify Adapter implements ControlSurface at compile time.
var _ playback.ControlSurface = (*Adapter)(nil)

// New creates and starts a new MPRIS adapter.
func New() (*Adapter, error) {
	a := &Adapter{
		position: math.NaN(),
		duration: math.NaN(),
		rate:     1.0,
		handlers: make(map[playback.ActionKind]playback.ActionHandler),
	}

	a.server = server.NewServer("earmark", &rootAdapter{}, &playerAdapter{adapter: a})

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// SetMetadata publishes the current article title.
func (a *Adapter) SetMetadata(title string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.title = title
	a.hasMeta = true
}

// SetPositionState caches a position snapshot as the new interpolation
// anchor.
func (a *Adapter) SetPositionState(position, duration, rate float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.position = position
	a.duration = duration
	a.rate = rate
	a.pushedAt = time.Now()
}

// SetPlaybackStatus records whether playback is running, folding any
// interpolated progress into the anchor first.
func (a *Adapter) SetPlaybackStatus(playing bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	now := time.Now()
	a.position = a.positionLocked(now)
	a.pushedAt = now
	a.playing = playing
}

// RegisterActionHandler installs the handler for an action kind,
// replacing any previous one.
func (a *Adapter) RegisterActionHandler(kind playback.ActionKind, fn playback.ActionHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handlers[kind] = fn
}

func (a *Adapter) positionLocked(now time.Time) float64 {
	if math.IsNaN(a.position) || !a.playing {
		return a.position
	}
	return a.position + now.Sub(a.pushedAt).Seconds()*a.rate
}

func (a *Adapter) invoke(kind playback.ActionKind, details playback.ActionDetails) {
	a.mu.Lock()
	fn := a.handlers[kind]
	a.mu.Unlock()
	if fn != nil {
		fn(details)
	}
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Earmark", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/flac", "audio/ogg", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter against the
// adapter's cached state.
type playerAdapter struct {
	adapter *Adapter
}

// Next jumps forward: an article player has no queue, so the skip
// buttons become jumps.
func (p *playerAdapter) Next() error {
	p.adapter.invoke(playback.ActionSeekForward, playback.ActionDetails{})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.adapter.invoke(playback.ActionSeekBackward, playback.ActionDetails{})
	return nil
}

func (p *playerAdapter) Pause() error {
	p.adapter.invoke(playback.ActionPause, playback.ActionDetails{})
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.adapter.mu.Lock()
	playing := p.adapter.playing
	p.adapter.mu.Unlock()
	if playing {
		p.adapter.invoke(playback.ActionPause, playback.ActionDetails{})
	} else {
		p.adapter.invoke(playback.ActionPlay, playback.ActionDetails{})
	}
	return nil
}

// Stop pauses: there is no stopped state distinct from paused.
func (p *playerAdapter) Stop() error {
	p.adapter.invoke(playback.ActionPause, playback.ActionDetails{})
	return nil
}

func (p *playerAdapter) Play() error {
	p.adapter.invoke(playback.ActionPlay, playback.ActionDetails{})
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	seconds := (time.Duration(offset) * time.Microsecond).Seconds()
	p.adapter.invoke(playback.ActionSeekTo, playback.ActionDetails{SeekOffset: &seconds})
	return nil
}

func (p *playerAdapter) SetPosition(_ string, position types.Microseconds) error {
	seconds := (time.Duration(position) * time.Microsecond).Seconds()
	p.adapter.invoke(playback.ActionSeekTo, playback.ActionDetails{SeekTime: &seconds})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	p.adapter.mu.Lock()
	defer p.adapter.mu.Unlock()
	if !p.adapter.hasMeta {
		return types.PlaybackStatusStopped, nil
	}
	if p.adapter.playing {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusPaused, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	p.adapter.mu.Lock()
	defer p.adapter.mu.Unlock()
	return p.adapter.rate, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	p.adapter.mu.Lock()
	defer p.adapter.mu.Unlock()
	if !p.adapter.hasMeta {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(p.adapter.title)),
		Title:   p.adapter.title,
	}
	if !math.IsNaN(p.adapter.duration) {
		meta.Length = types.Microseconds(secondsToMicroseconds(p.adapter.duration))
	}
	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return 1.0, nil // Volume control not exposed
}

func (p *playerAdapter) SetVolume(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Position() (int64, error) {
	p.adapter.mu.Lock()
	defer p.adapter.mu.Unlock()
	pos := p.adapter.positionLocked(time.Now())
	if math.IsNaN(pos) {
		return 0, nil
	}
	return secondsToMicroseconds(pos), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 0.25, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 4.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.hasMetadata(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.hasMetadata(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.hasMetadata(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return true, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

func (p *playerAdapter) hasMetadata() bool {
	p.adapter.mu.Lock()
	defer p.adapter.mu.Unlock()
	return p.adapter.hasMeta
}

func formatTrackID(title string) string {
	h := fnv.New64a()
	h.Write([]byte(title))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

func secondsToMicroseconds(s float64) int64 {
	return (time.Duration(s * float64(time.Second))).Microseconds()
}
