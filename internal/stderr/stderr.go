//go:build !windows

// Package stderr captures output that audio libraries (ALSA in
// particular) write directly to file descriptor 2, bypassing Go's
// os.Stderr. Left uncaptured, those lines corrupt the TUI layout.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"syscall"
)

// Messages receives stderr lines captured from audio libraries.
// Callers should read from this channel to display errors in the UI.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
)

// Start begins capturing stderr output. Must be called early in main(),
// before the speaker is initialized. On error the program can continue;
// audio library noise just goes to the original stderr.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect fd 2 to the pipe's write end.
	if err := syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd())); err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true

	go forward(pipeRead)

	return nil
}

func forward(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case Messages <- line:
		default:
			// Channel full, drop message to avoid blocking
		}
	}
}

// WriteOriginal writes directly to the original stderr, bypassing
// capture. Useful for fatal errors that must be visible even if the TUI
// is running.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
	}
}

// Stop restores the original stderr. Should be called on program exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	pipeRead.Close()

	close(Messages)
	started = false
}
