//go:build !linux

package mpris

import "github.com/llehouerou/earmark/internal/playback"

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// Verify Adapter implements ControlSurface at compile time.
var _ playback.ControlSurface = (*Adapter)(nil)

// New returns a no-op adapter on non-Linux platforms.
func New() (*Adapter, error) {
	return &Adapter{}, nil
}

// SetMetadata is a no-op on non-Linux platforms.
func (a *Adapter) SetMetadata(string) {}

// SetPositionState is a no-op on non-Linux platforms.
func (a *Adapter) SetPositionState(float64, float64, float64) {}

// SetPlaybackStatus is a no-op on non-Linux platforms.
func (a *Adapter) SetPlaybackStatus(bool) {}

// RegisterActionHandler is a no-op on non-Linux platforms.
func (a *Adapter) RegisterActionHandler(playback.ActionKind, playback.ActionHandler) {}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
