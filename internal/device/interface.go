// internal/device/interface.go
package device

// Interface is the audio playback device. It mirrors the readout model
// of a media element: CurrentTime and Duration are NaN until a source
// is installed, Rate is always finite.
//
// All methods are no-ops (or invalid readouts) when no source is set;
// none of them fail loudly. The playback controller is the single
// writer, so implementations only need to guard reads against writes.
type Interface interface {
	// Play starts or resumes playback of the installed source.
	Play() error

	// Pause pauses playback. Pausing an idle or already-paused device
	// does nothing.
	Pause()

	// SetSource decodes the audio bytes and installs them as the
	// current source, paused at position zero. The playback rate is
	// reset to the default rate.
	SetSource(data []byte, mimeType string) error

	// Seek moves the position to t seconds, clamped to the source
	// bounds.
	Seek(t float64)

	// FastSeek is a potentially imprecise seek to t seconds.
	FastSeek(t float64)

	// SetRate sets the current playback rate.
	SetRate(rate float64)

	// SetDefaultRate sets the rate applied when a new source is
	// installed.
	SetDefaultRate(rate float64)

	// CurrentTime reports the position in seconds, NaN when no source
	// is installed.
	CurrentTime() float64

	// Duration reports the source length in seconds, NaN when no
	// source is installed.
	Duration() float64

	// Rate reports the current playback rate.
	Rate() float64

	// Playing reports whether playback is running.
	Playing() bool
}
