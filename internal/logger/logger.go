package logger

import "fmt"

const lineBufferSize = 100

// Interface is the logging surface handed to components that run
// behind the TUI and therefore cannot write to stderr.
type Interface interface {
	Print(s string)
	Printf(format string, args ...interface{})
	PrintError(source string, err error)
}

// Logger buffers log lines on a channel for the UI to drain.
type Logger struct {
	Lines chan string
}

var _ Interface = (*Logger)(nil)

func New() *Logger {
	return &Logger{Lines: make(chan string, lineBufferSize)}
}

// Print queues a line. When the buffer is full the line is dropped
// rather than blocking the caller.
func (l *Logger) Print(s string) {
	select {
	case l.Lines <- s:
	default:
	}
}

func (l *Logger) Printf(format string, args ...interface{}) {
	l.Print(fmt.Sprintf(format, args...))
}

func (l *Logger) PrintError(source string, err error) {
	l.Printf("error (%s): %s", source, err.Error())
}
