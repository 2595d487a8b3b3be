package playback

import "github.com/llehouerou/earmark/internal/store"

// Msg is a playback controller message. Messages are processed strictly
// in arrival order by the controller loop; every state mutation happens
// by sending one.
type Msg interface {
	isMsg()
}

// PlayHandle requests playback of an article by handle. The handle is
// recorded as now-playing immediately; the audio is resolved and
// installed asynchronously.
type PlayHandle struct {
	Handle store.Handle
}

// Play resumes the device.
type Play struct{}

// Pause pauses the device.
type Pause struct{}

// JumpForward seeks ahead by the fixed jump size, clamped to the
// article duration.
type JumpForward struct{}

// JumpBackward seeks back by the fixed jump size, clamped to zero.
type JumpBackward struct{}

// SeekTo carries a platform seek request from the control surface.
type SeekTo struct {
	Details ActionDetails
}

// UpdatePlaybackSpeed sets the playback rate from raw user input.
// Unparseable or non-positive input falls back to 1.0.
type UpdatePlaybackSpeed struct {
	Value string
}

// SetState replaces the whole controller state, typically with a state
// loaded from the store at startup.
type SetState struct {
	State store.PlayerState
}

// SaveState records the elapsed position and persists a snapshot of the
// full state.
type SaveState struct {
	Elapsed float64
}

// playResolved is the completion of a PlayHandle resolution.
type playResolved struct {
	article store.Article
}

// restoreResolved is the completion of a SetState resolution. It carries
// the saved position and rate so the install can apply them without
// re-reading state that may have moved on.
type restoreResolved struct {
	article store.Article
	elapsed float64
	rate    float64
}

func (PlayHandle) isMsg()          {}
func (Play) isMsg()                {}
func (Pause) isMsg()               {}
func (JumpForward) isMsg()         {}
func (JumpBackward) isMsg()        {}
func (SeekTo) isMsg()              {}
func (UpdatePlaybackSpeed) isMsg() {}
func (SetState) isMsg()            {}
func (SaveState) isMsg()           {}
func (playResolved) isMsg()        {}
func (restoreResolved) isMsg()     {}
