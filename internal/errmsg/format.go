// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Article operations
	OpArticleResolve Op = "resolve article"
	OpArticleList    Op = "list articles"
	OpArticleSave    Op = "save article"

	// Player state operations
	OpStateRestore Op = "restore player state"
	OpStatePersist Op = "save player state"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpPlaybackSeek  Op = "seek"
	OpPlaybackSpeed Op = "set playback speed"

	// Media control surface
	OpSurfaceStart Op = "start media controls"

	// Desktop notifications
	OpNotifySend Op = "send notification"

	// Import operations
	OpImportFile Op = "import file"
	OpImportTags Op = "read file tags"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
