package playback

import "github.com/llehouerou/earmark/internal/store"

// StateRestored is emitted when a SetState message replaces the
// controller state wholesale.
//
// Emitted by:
//   - SetState: both the startup restore and any explicit replacement
//
// NOT emitted by:
//   - PlayHandle/Play/Pause/jumps/speed changes: these move the device,
//     not the shape of what observers display
//   - SaveState: autosaves are invisible to observers
//
// Observers re-render on this event and on nothing else.
type StateRestored struct {
	State store.PlayerState
}
