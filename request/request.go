// Package request manages the single outstanding passenger request and
// the lifetime travel counters. It runs in the main loop only.
package request

import "liftsim/cab"

// MarkerSurface is the slice of the scene renderer the manager needs:
// showing and hiding the waiting-passenger marker.
type MarkerSurface interface {
	DrawWaitMarker(origin, onward cab.Floor)
	ClearWaitMarker(origin cab.Floor)
}

type Manager struct {
	st      *cab.State
	surface MarkerSurface

	active  bool
	onboard bool
	origin  cab.Floor
	onward  cab.Floor

	// Exactly one of these increments per floor-boundary crossing,
	// attributed by onboard at the moment of crossing.
	withPassenger    int
	withoutPassenger int
	lastFloor        cab.Floor
}

func New(st *cab.State, surface MarkerSurface) *Manager {
	return &Manager{st: st, surface: surface}
}

func (m *Manager) Active() bool  { return m.active }
func (m *Manager) Onboard() bool { return m.onboard }

// Counters returns floors moved with and without a passenger.
func (m *Manager) Counters() (withPassenger, withoutPassenger int) {
	return m.withPassenger, m.withoutPassenger
}

// HandleInput processes a discrete "request at floor" press against the
// currently selected destination floor. A press is accepted iff no
// request is active and the pressed floor differs from the selected
// destination (pickup and drop-off coinciding means there is nothing to
// transport). Rejected presses leave all state untouched, including the
// acknowledgment tone trigger.
func (m *Manager) HandleInput(pressed, selected cab.Floor) bool {
	if m.active || !pressed.Valid() || !selected.Valid() || pressed == selected {
		return false
	}
	originPos, ok := cab.PositionOf(pressed)
	if !ok {
		return false
	}

	// The cab must first travel to the pressed floor to collect the
	// passenger; the intended onward floor is remembered for the
	// handoff at pickup.
	m.st.SetDestination(originPos)
	m.active = true
	m.onboard = false
	m.origin = pressed
	m.onward = selected
	m.st.SetButtonPushed(true)
	m.surface.DrawWaitMarker(m.origin, m.onward)
	return true
}

// Update runs once per main-loop iteration, after the motion controller.
// It attributes floor crossings, triggers the door animation on arrival
// at the origin or the drop-off floor, and flips occupancy.
func (m *Manager) Update() {
	snap := m.st.Snapshot()
	m.account(snap)

	if m.active && !m.onboard {
		originPos, _ := cab.PositionOf(m.origin)
		if snap.Position == originPos {
			if !snap.FloorReached {
				// Arrived to collect the passenger: hand the onward
				// floor to the motion controller and start the doors.
				onwardPos, _ := cab.PositionOf(m.onward)
				m.st.SetDestination(onwardPos)
				m.st.SetFloorReached(true)
			} else if snap.DoorOpen {
				// The passenger steps in.
				m.surface.ClearWaitMarker(m.origin)
				m.onboard = true
			}
		}
	}

	if m.onboard && snap.Position == snap.Destination && !snap.FloorReached {
		// Drop-off. The crossing that got us here was already
		// attributed above, so the request can retire.
		m.st.SetFloorReached(true)
		m.onboard = false
		m.active = false
	}
}

// account books at most one crossing per call; the controller moves one
// sub-step per iteration, so floors can only be reached one at a time.
// Replaying the same position trace books nothing twice.
func (m *Manager) account(snap cab.Snapshot) {
	if !snap.Position.Aligned() {
		return
	}
	if snap.CurrentFloor == m.lastFloor {
		return
	}
	if m.onboard {
		m.withPassenger++
	} else {
		m.withoutPassenger++
	}
	m.lastFloor = snap.CurrentFloor
}
