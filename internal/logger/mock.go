package logger

import (
	"fmt"
	"sync"
)

// Mock records log lines for assertions. Safe for concurrent use
// since background effects log from their own goroutines.
type Mock struct {
	mu    sync.Mutex
	lines []string
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Print(s string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, s)
}

func (m *Mock) Printf(format string, args ...interface{}) {
	m.Print(fmt.Sprintf(format, args...))
}

func (m *Mock) PrintError(source string, err error) {
	m.Printf("error (%s): %s", source, err.Error())
}

// Test helpers

func (m *Mock) Lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
