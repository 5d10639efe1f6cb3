// Package sequencer runs the door animation and the tone generator from
// the tick context. It is the sole writer of the animation phase and the
// door-open flag.
package sequencer

import (
	"liftsim/cab"
	"liftsim/config"
	"liftsim/iodevice"
)

type Sequencer struct {
	st  *cab.State
	dev iodevice.OutputDevice

	holdTicks     int
	doorToneTicks int
	ackToneTicks  int

	// Tick counters, touched only from the tick context.
	phaseTicks int
	ackTicks   int
}

func New(st *cab.State, dev iodevice.OutputDevice, cfg config.Config) *Sequencer {
	return &Sequencer{
		st:            st,
		dev:           dev,
		holdTicks:     cfg.PhaseHoldTicks,
		doorToneTicks: cfg.DoorToneTicks,
		ackToneTicks:  cfg.AckToneTicks,
	}
}

// Tick advances the animation by one tick. The phase sequence is always
// idle -> opening -> closing -> idle; while idle, the machine is dormant
// until the main loop raises the floor-reached trigger.
//
// There is one physical tone generator. The acknowledgment tone runs on
// its own timer and may overlap the door tone; whichever tone was
// configured last wins, and whichever timer expires first silences the
// generator.
func (s *Sequencer) Tick() {
	if s.st.FloorReached() {
		s.phaseTicks++
	}

	if s.st.ButtonPushed() {
		s.ackTicks++
		if s.ackTicks == 1 {
			s.dev.SetTone(iodevice.ToneAck)
		}
		if s.ackTicks >= s.ackToneTicks {
			s.ackTicks = 0
			s.st.SetButtonPushed(false)
			s.dev.StopTone()
		}
	}

	switch s.st.Phase() {
	case cab.PhaseIdle:
		// Doors stay closed for a full hold before opening.
		if s.phaseTicks >= s.holdTicks {
			s.st.SetPhase(cab.PhaseOpening)
			s.phaseTicks = 0
		}
	case cab.PhaseOpening:
		if s.phaseTicks == 1 {
			s.st.SetDoorOpen(true)
			s.dev.DoorLamp(true)
			s.dev.SetTone(iodevice.ToneDoor)
		}
		if s.phaseTicks == s.doorToneTicks {
			s.dev.StopTone()
		}
		if s.phaseTicks >= s.holdTicks {
			s.st.SetPhase(cab.PhaseClosing)
			s.phaseTicks = 0
		}
	case cab.PhaseClosing:
		if s.phaseTicks == 1 {
			s.st.SetDoorOpen(false)
			s.dev.DoorLamp(false)
		}
		if s.phaseTicks >= s.holdTicks {
			s.st.SetPhase(cab.PhaseIdle)
			s.phaseTicks = 0
			// Travel may resume.
			s.st.SetFloorReached(false)
		}
	}
}
