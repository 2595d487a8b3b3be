// internal/store/mock.go
package store

import "sync"

// Mock is a test double for Manager. Resolve and the save methods are
// called from background goroutines, so everything is mutex-guarded.
type Mock struct {
	mu           sync.Mutex
	articles     map[Handle]Article
	order        []Handle
	playerState  *PlayerState
	loadErr      error
	saveStateErr error
	resolveErrs  map[Handle]error
	resolveGates map[Handle]chan struct{}
	savedStates  []PlayerState
	closed       bool
}

// NewMock creates a new mock store for testing.
func NewMock() *Mock {
	return &Mock{
		articles:     make(map[Handle]Article),
		resolveErrs:  make(map[Handle]error),
		resolveGates: make(map[Handle]chan struct{}),
	}
}

// Resolve returns the stubbed article. When a gate was installed with
// GateResolve, it blocks until the gate is released.
func (m *Mock) Resolve(handle Handle) (Article, error) {
	m.mu.Lock()
	gate := m.resolveGates[handle]
	m.mu.Unlock()

	if gate != nil {
		<-gate
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.resolveErrs[handle]; err != nil {
		return Article{}, err
	}
	a, ok := m.articles[handle]
	if !ok {
		return Article{}, ErrNotFound
	}
	return a, nil
}

func (m *Mock) SaveArticles(articles []Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range articles {
		m.addLocked(a)
	}
	return nil
}

func (m *Mock) ListArticles() ([]ArticleInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	infos := make([]ArticleInfo, 0, len(m.order))
	for _, h := range m.order {
		a := m.articles[h]
		infos = append(infos, ArticleInfo{
			Handle:       a.Handle,
			Title:        a.Title,
			MIMEType:     a.MIMEType,
			DurationSecs: a.DurationSecs,
			AddedAt:      a.AddedAt,
		})
	}
	return infos, nil
}

func (m *Mock) LoadPlayerState() (*PlayerState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.playerState == nil {
		return nil, nil
	}
	state := *m.playerState
	return &state, nil
}

func (m *Mock) SavePlayerState(state PlayerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.savedStates = append(m.savedStates, state)
	if m.saveStateErr != nil {
		return m.saveStateErr
	}
	m.playerState = &state
	return nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *Mock) addLocked(a Article) {
	if _, exists := m.articles[a.Handle]; !exists {
		m.order = append(m.order, a.Handle)
	}
	m.articles[a.Handle] = a
}

// Test helpers

func (m *Mock) AddArticle(a Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addLocked(a)
}

func (m *Mock) SetPlayerState(state *PlayerState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playerState = state
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) SetResolveError(handle Handle, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolveErrs[handle] = err
}

func (m *Mock) SetSaveStateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveStateErr = err
}

// GateResolve makes Resolve(handle) block until the returned release
// function is called. Used to order concurrent resolutions in tests.
func (m *Mock) GateResolve(handle Handle) (release func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	gate := make(chan struct{})
	m.resolveGates[handle] = gate

	var once sync.Once
	return func() {
		once.Do(func() { close(gate) })
	}
}

func (m *Mock) SavedStates() []PlayerState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PlayerState, len(m.savedStates))
	copy(out, m.savedStates)
	return out
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
