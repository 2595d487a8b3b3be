// internal/device/mock.go
package device

import (
	"math"
	"sync"
)

// MockSource records one installed source.
type MockSource struct {
	Data     []byte
	MIMEType string
}

// Mock implements Interface for testing. It mimics the readout model of
// the real device: NaN position and duration until a source is
// installed, playback rate always finite.
type Mock struct {
	mu sync.Mutex

	position    float64
	duration    float64
	rate        float64
	defaultRate float64
	playing     bool
	hasSource   bool

	playErr error

	sources      []MockSource
	seeks        []float64
	fastSeeks    []float64
	rates        []float64
	defaultRates []float64
	playCalls    int
	pauseCalls   int
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)

// NewMock creates a Mock with no source installed.
func NewMock() *Mock {
	return &Mock{
		position:    math.NaN(),
		duration:    math.NaN(),
		rate:        1.0,
		defaultRate: 1.0,
	}
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if !m.hasSource {
		return errNoSource
	}
	m.playing = true
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	m.playing = false
}

func (m *Mock) SetSource(data []byte, mimeType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources = append(m.sources, MockSource{Data: data, MIMEType: mimeType})
	m.hasSource = true
	m.position = 0
	m.playing = false
	m.rate = m.defaultRate
	return nil
}

func (m *Mock) Seek(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeks = append(m.seeks, t)
	m.position = t
}

func (m *Mock) FastSeek(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fastSeeks = append(m.fastSeeks, t)
	m.position = t
}

func (m *Mock) SetRate(rate float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates = append(m.rates, rate)
	m.rate = rate
}

func (m *Mock) SetDefaultRate(rate float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultRates = append(m.defaultRates, rate)
	m.defaultRate = rate
}

func (m *Mock) CurrentTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Rate() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rate
}

func (m *Mock) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// SetPlayError makes subsequent Play calls return err.
func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

// SetPosition overrides the reported position.
func (m *Mock) SetPosition(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = t
}

// SetDuration overrides the reported duration.
func (m *Mock) SetDuration(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = t
}

// Sources returns the installed sources in order.
func (m *Mock) Sources() []MockSource {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockSource, len(m.sources))
	copy(out, m.sources)
	return out
}

// LastSource returns the most recently installed source.
func (m *Mock) LastSource() (MockSource, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sources) == 0 {
		return MockSource{}, false
	}
	return m.sources[len(m.sources)-1], true
}

// Seeks returns the precise seek targets in order.
func (m *Mock) Seeks() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.seeks))
	copy(out, m.seeks)
	return out
}

// FastSeeks returns the fast seek targets in order.
func (m *Mock) FastSeeks() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.fastSeeks))
	copy(out, m.fastSeeks)
	return out
}

// Rates returns the rates passed to SetRate in order.
func (m *Mock) Rates() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.rates))
	copy(out, m.rates)
	return out
}

// DefaultRates returns the rates passed to SetDefaultRate in order.
func (m *Mock) DefaultRates() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]float64, len(m.defaultRates))
	copy(out, m.defaultRates)
	return out
}

// PlayCalls reports how many times Play was called.
func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

// PauseCalls reports how many times Pause was called.
func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}
