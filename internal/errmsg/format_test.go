//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpArticleResolve,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpArticleResolve,
			err:      errors.New("article not found"),
			expected: "Failed to resolve article: article not found",
		},
		{
			name:     "state persist operation",
			op:       OpStatePersist,
			err:      errors.New("database is locked"),
			expected: "Failed to save player state: database is locked",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("no audio device"),
			expected: "Failed to start playback: no audio device",
		},
		{
			name:     "surface operation",
			op:       OpSurfaceStart,
			err:      errors.New("dbus unavailable"),
			expected: "Failed to start media controls: dbus unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpImportFile,
			context:  "article.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with context",
			op:       OpImportFile,
			context:  "article.mp3",
			err:      errors.New("permission denied"),
			expected: "Failed to import file 'article.mp3': permission denied",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpImportFile,
			context:  "",
			err:      errors.New("permission denied"),
			expected: "Failed to import file: permission denied",
		},
		{
			name:     "resolve with handle context",
			op:       OpArticleResolve,
			context:  "a1b2c3",
			err:      errors.New("article not found"),
			expected: "Failed to resolve article 'a1b2c3': article not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}

func TestOpConstants(t *testing.T) {
	// Verify that Op constants are non-empty and produce valid messages
	ops := []Op{
		OpArticleResolve, OpArticleList, OpArticleSave,
		OpStateRestore, OpStatePersist,
		OpPlaybackStart, OpPlaybackSeek, OpPlaybackSpeed,
		OpSurfaceStart, OpNotifySend,
		OpImportFile, OpImportTags,
		OpInitialize,
	}

	testErr := errors.New("test error")

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			if op == "" {
				t.Error("Op constant should not be empty")
			}

			result := Format(op, testErr)
			if result == "" {
				t.Error("Format should return non-empty string for non-nil error")
			}

			// Verify the format includes the operation
			expected := "Failed to " + string(op) + ": test error"
			if result != expected {
				t.Errorf("Format = %q, want %q", result, expected)
			}
		})
	}
}
