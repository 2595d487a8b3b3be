package keymap

// Binding ties an action to its keys. Keys use the exact strings the
// terminal event loop reports, so " " is the space bar.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
}

// All contains every binding, in help display order.
var All = []Binding{
	{ActionMoveUp, []string{"up", "k"}, "Move up"},
	{ActionMoveDown, []string{"down", "j"}, "Move down"},
	{ActionPlaySelected, []string{"enter"}, "Play selected article"},
	{ActionPlayPause, []string{" "}, "Play/pause"},
	{ActionJumpBackward, []string{"left", "h"}, "Jump backward"},
	{ActionJumpForward, []string{"right", "l"}, "Jump forward"},
	{ActionSpeedDown, []string{"-", "_"}, "Slower"},
	{ActionSpeedUp, []string{"+", "="}, "Faster"},
	{ActionRefresh, []string{"r"}, "Reload articles"},
	{ActionHelp, []string{"?"}, "Toggle help"},
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit"},
}

// Label returns the display form of a key string.
func Label(key string) string {
	if key == " " {
		return "space"
	}
	return key
}
