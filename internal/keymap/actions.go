// Package keymap defines key bindings and action dispatch for the player.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit    Action = "quit"
	ActionRefresh Action = "refresh"
	ActionHelp    Action = "help"

	// Playback actions
	ActionPlaySelected Action = "play_selected"
	ActionPlayPause    Action = "play_pause"
	ActionJumpForward  Action = "jump_forward"
	ActionJumpBackward Action = "jump_backward"
	ActionSpeedUp      Action = "speed_up"
	ActionSpeedDown    Action = "speed_down"

	// Navigation actions
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
)
