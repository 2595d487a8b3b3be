package playback

import "math"

// jumpSize is the fixed jump distance in seconds.
const jumpSize = 10.0

// buildActions creates the surface handler bundle. The controller owns
// it for its whole lifetime; handlers only translate platform actions
// into messages.
func (c *Controller) buildActions() *Actions {
	return &Actions{
		Play:         func(ActionDetails) { c.Send(Play{}) },
		Pause:        func(ActionDetails) { c.Send(Pause{}) },
		SeekForward:  func(ActionDetails) { c.Send(JumpForward{}) },
		SeekBackward: func(ActionDetails) { c.Send(JumpBackward{}) },
		SeekTo:       func(details ActionDetails) { c.Send(SeekTo{Details: details}) },
	}
}

func (c *Controller) registerActions() {
	c.surface.RegisterActionHandler(ActionPlay, c.actions.Play)
	c.surface.RegisterActionHandler(ActionPause, c.actions.Pause)
	c.surface.RegisterActionHandler(ActionSeekForward, c.actions.SeekForward)
	c.surface.RegisterActionHandler(ActionSeekBackward, c.actions.SeekBackward)
	c.surface.RegisterActionHandler(ActionSeekTo, c.actions.SeekTo)
}

// pushPositionState publishes a position snapshot to the surface. The
// push is skipped entirely unless position, duration and rate all read
// back valid.
func (c *Controller) pushPositionState() {
	pos := c.device.CurrentTime()
	dur := c.device.Duration()
	rate := c.device.Rate()
	if !validReadout(pos) || !validReadout(dur) || !validReadout(rate) {
		return
	}
	c.surface.SetPositionState(pos, dur, rate)
}

// validReadout reports whether a device readout is usable: finite and
// non-negative.
func validReadout(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// clampJump moves pos by offset seconds, clamped to [0, duration].
func clampJump(pos, offset, duration float64) float64 {
	target := pos + offset
	if target < 0 {
		return 0
	}
	if target > duration {
		return duration
	}
	return target
}
