package playback

// ActionKind identifies a platform media-control action.
type ActionKind string

const (
	ActionPlay         ActionKind = "play"
	ActionPause        ActionKind = "pause"
	ActionSeekForward  ActionKind = "seekforward"
	ActionSeekBackward ActionKind = "seekbackward"
	ActionSeekTo       ActionKind = "seekto"
)

// ActionDetails carries the parameters of a surface action. Only seek-to
// actions populate the fields.
type ActionDetails struct {
	// SeekTime is an absolute target position in seconds.
	SeekTime *float64
	// SeekOffset is a relative offset in seconds.
	SeekOffset *float64
	// FastSeek requests a fast, potentially imprecise seek.
	FastSeek bool
}

// ActionHandler reacts to a surface action.
type ActionHandler func(details ActionDetails)

// Actions bundles the five surface handlers. The controller owns the
// bundle for its whole lifetime; the surface only borrows the callbacks.
type Actions struct {
	Play         ActionHandler
	Pause        ActionHandler
	SeekForward  ActionHandler
	SeekBackward ActionHandler
	SeekTo       ActionHandler
}

// ControlSurface is the platform media-control surface the controller
// pushes state to and receives actions from.
type ControlSurface interface {
	// SetMetadata publishes the title of the current article.
	SetMetadata(title string)

	// SetPositionState publishes a position snapshot. Implementations
	// interpolate between pushes using the rate.
	SetPositionState(position, duration, rate float64)

	// SetPlaybackStatus publishes whether playback is running.
	SetPlaybackStatus(playing bool)

	// RegisterActionHandler installs the handler for an action kind,
	// replacing any previous one.
	RegisterActionHandler(kind ActionKind, fn ActionHandler)
}

// NopSurface is a ControlSurface that does nothing, for platforms or
// configurations without a media control surface.
type NopSurface struct{}

// Verify NopSurface implements ControlSurface at compile time.
var _ ControlSurface = NopSurface{}

func (NopSurface) SetMetadata(string)                              {}
func (NopSurface) SetPositionState(float64, float64, float64)      {}
func (NopSurface) SetPlaybackStatus(bool)                          {}
func (NopSurface) RegisterActionHandler(ActionKind, ActionHandler) {}
