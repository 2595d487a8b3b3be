//go:build windows

// Package stderr provides a no-op implementation for Windows.
// Windows audio libraries don't produce the same stderr noise as ALSA.
package stderr

import "os"

// Messages receives captured stderr lines. Nothing is ever sent on
// Windows; readers block until the program exits.
var Messages = make(chan string, 100)

// Start is a no-op on Windows.
func Start() error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
