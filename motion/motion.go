// Package motion advances the cab one sub-step at a time toward its
// destination. Motion is step-wise, not floor-wise: the cab passes
// through three intermediate sub-positions between floors, and
// floor-arrival logic elsewhere only fires when the position lands
// exactly on a floor.
package motion

import (
	"liftsim/cab"
	"liftsim/config"
	"liftsim/iodevice"
)

type Controller struct {
	st  *cab.State
	now func() uint64 // monotonic tick counter

	fastTicks uint64
	slowTicks uint64
	lastStep  uint64
}

func New(st *cab.State, cfg config.Config, now func() uint64) *Controller {
	return &Controller{
		st:        st,
		now:       now,
		fastTicks: uint64(cfg.FastStepTicks),
		slowTicks: uint64(cfg.SlowStepTicks),
	}
}

// Step is called once per main-loop iteration and returns whether the
// position changed. It is a no-op while the door animation holds the
// cab, or until the selected step interval has elapsed.
func (c *Controller) Step(speed iodevice.Speed) bool {
	snap := c.st.Snapshot()
	if snap.FloorReached || snap.Phase != cab.PhaseIdle {
		return false
	}

	interval := c.fastTicks
	if speed == iodevice.SpeedSlow {
		interval = c.slowTicks
	}
	n := c.now()
	if n-c.lastStep < interval {
		return false
	}
	c.lastStep = n

	pos := snap.Position
	switch {
	case snap.Destination > pos:
		pos++
	case snap.Destination < pos:
		pos--
	default:
		return false
	}

	if !c.st.SetPosition(pos) {
		return false
	}
	if f, ok := cab.FloorOf(pos); ok {
		c.st.SetCurrentFloor(f)
	}
	return true
}
