package device

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	resampleQuality  = 4
	speakerBufferLen = time.Second / 10
)

// One speaker per process. Initialized lazily on the first source so
// that constructing a Player never touches audio hardware.
var speakerInitialized bool

var errNoSource = errors.New("no source installed")

// Player plays in-memory audio through the system speaker.
type Player struct {
	mu          sync.RWMutex
	speakerRate beep.SampleRate

	streamer  beep.StreamSeekCloser
	format    beep.Format
	resampler *beep.Resampler
	ctrl      *beep.Ctrl

	rate        float64
	defaultRate float64

	// drained flips when the source plays to its end and the mixer
	// drops the chain. Set from the speaker goroutine.
	drained atomic.Bool
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)

// New creates a Player that mixes at the given sample rate.
func New(sampleRate int) *Player {
	return &Player{
		speakerRate: beep.SampleRate(sampleRate),
		rate:        1.0,
		defaultRate: 1.0,
	}
}

func (p *Player) ensureSpeaker() error {
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(p.speakerRate, p.speakerRate.N(speakerBufferLen)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speakerInitialized = true
	return nil
}

// SetSource decodes data and installs it as the current source, paused
// at position zero with the default playback rate applied.
func (p *Player) SetSource(data []byte, mimeType string) error {
	streamer, format, err := decode(data, mimeType)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureSpeaker(); err != nil {
		streamer.Close()
		return err
	}

	speaker.Clear()
	if p.streamer != nil {
		p.streamer.Close()
	}

	p.streamer = streamer
	p.format = format
	p.rate = p.defaultRate
	p.drained.Store(false)

	p.resampler = beep.ResampleRatio(resampleQuality, p.ratio(), streamer)
	p.playChain()
	return nil
}

// playChain wraps the resampler in a fresh Ctrl and hands the chain to
// the mixer, paused. A drained Seq cannot be replayed, so recovery from
// end-of-source goes through here too.
func (p *Player) playChain() {
	ctrl := &beep.Ctrl{Paused: true}
	ctrl.Streamer = beep.Seq(p.resampler, beep.Callback(func() {
		// Runs on the speaker goroutine with the speaker lock held.
		ctrl.Paused = true
		p.drained.Store(true)
	}))
	p.ctrl = ctrl
	speaker.Play(ctrl)
}

// Play starts or resumes playback. After the source has played to its
// end, Play rewinds to the start first.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return errNoSource
	}
	if p.drained.Load() {
		speaker.Lock()
		err := p.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			return err
		}
		p.drained.Store(false)
		p.playChain()
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

// Seek moves the position to t seconds, clamped to the source bounds.
func (p *Player) Seek(t float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil || math.IsNaN(t) {
		return
	}

	speaker.Lock()
	pos := p.format.SampleRate.N(secondsToDuration(t))
	if pos < 0 {
		pos = 0
	}
	if last := p.streamer.Len() - 1; pos > last {
		pos = last
	}
	p.streamer.Seek(pos)
	speaker.Unlock()

	// The mixer dropped the chain when the source drained; rebuild it,
	// still paused, at the new position.
	if p.drained.Load() {
		p.drained.Store(false)
		p.playChain()
	}
}

// FastSeek seeks to t seconds. Positions are sample-exact here, so the
// fast path and the precise path coincide.
func (p *Player) FastSeek(t float64) {
	p.Seek(t)
}

// SetRate sets the playback rate. Non-finite or non-positive rates are
// ignored.
func (p *Player) SetRate(rate float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !validRate(rate) {
		return
	}
	p.rate = rate
	if p.resampler == nil {
		return
	}
	speaker.Lock()
	p.resampler.SetRatio(p.ratio())
	speaker.Unlock()
}

// SetDefaultRate sets the rate applied to the next installed source.
func (p *Player) SetDefaultRate(rate float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !validRate(rate) {
		return
	}
	p.defaultRate = rate
}

// CurrentTime reports the position in seconds, NaN when no source is
// installed.
func (p *Player) CurrentTime() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.streamer == nil {
		return math.NaN()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Position()).Seconds()
}

// Duration reports the source length in seconds, NaN when no source is
// installed.
func (p *Player) Duration() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.streamer == nil {
		return math.NaN()
	}
	speaker.Lock()
	defer speaker.Unlock()
	return p.format.SampleRate.D(p.streamer.Len()).Seconds()
}

func (p *Player) Rate() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.rate
}

func (p *Player) Playing() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// Close releases the current source. The Player can take a new source
// afterwards.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return
	}
	speaker.Clear()
	p.streamer.Close()
	p.streamer = nil
	p.resampler = nil
	p.ctrl = nil
}

func (p *Player) ratio() float64 {
	return resampleRatio(p.format.SampleRate, p.speakerRate, p.rate)
}

// resampleRatio converts a source sample rate and a playback rate into
// the resampling ratio feeding the speaker.
func resampleRatio(src, out beep.SampleRate, rate float64) float64 {
	return float64(src) / float64(out) * rate
}

func validRate(rate float64) bool {
	return !math.IsNaN(rate) && !math.IsInf(rate, 0) && rate > 0
}

func secondsToDuration(t float64) time.Duration {
	return time.Duration(t * float64(time.Second))
}

// Probe decodes data just far enough to report its duration in seconds.
// It never touches the speaker.
func Probe(data []byte, mimeType string) (float64, error) {
	streamer, format, err := decode(data, mimeType)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()
	return format.SampleRate.D(streamer.Len()).Seconds(), nil
}

func decode(data []byte, mimeType string) (beep.StreamSeekCloser, beep.Format, error) {
	r := &sourceReader{bytes.NewReader(data)}
	switch mimeType {
	case "audio/mpeg", "audio/mp3":
		return mp3.Decode(r)
	case "audio/flac", "audio/x-flac":
		return flac.Decode(r)
	case "audio/ogg", "application/ogg", "audio/vorbis":
		return vorbis.Decode(r)
	case "audio/wav", "audio/x-wav", "audio/wave":
		return wav.Decode(r)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported format: %s", mimeType)
	}
}

// sourceReader adapts an in-memory audio buffer to the ReadCloser the
// decoders expect, keeping it seekable.
type sourceReader struct {
	*bytes.Reader
}

func (*sourceReader) Close() error { return nil }
