// Package cab defines the building geometry and the cab state that is
// shared between the tick context and the main loop.
package cab

import "sync/atomic"

const (
	NumFloors     = 4
	StepsPerFloor = 4
)

// Floor is one of the four fixed stopping levels.
type Floor int

// Position is the cab's discrete sub-floor coordinate, StepsPerFloor
// steps per floor.
type Position int

const MaxPosition Position = Position((NumFloors - 1) * StepsPerFloor)

func (f Floor) Valid() bool {
	return f >= 0 && f < NumFloors
}

func (p Position) Valid() bool {
	return p >= 0 && p <= MaxPosition
}

// Aligned reports whether the position sits exactly on a floor.
func (p Position) Aligned() bool {
	return p%StepsPerFloor == 0
}

// PositionOf converts a floor to its aligned position.
func PositionOf(f Floor) (Position, bool) {
	if !f.Valid() {
		return 0, false
	}
	return Position(f) * StepsPerFloor, true
}

// FloorOf converts an aligned position back to its floor. Out-of-range
// or mid-transit positions convert to nothing.
func FloorOf(p Position) (Floor, bool) {
	if !p.Valid() || !p.Aligned() {
		return 0, false
	}
	return Floor(p / StepsPerFloor), true
}

// Phase of the door animation.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseOpening
	PhaseClosing
)

func (ph Phase) String() string {
	switch ph {
	case PhaseIdle:
		return "idle"
	case PhaseOpening:
		return "opening"
	case PhaseClosing:
		return "closing"
	default:
		return "undefined"
	}
}

// State holds the fields shared across the two execution contexts.
// Ownership is partitioned: the sequencer writes phase, doorOpen and
// clears floorReached; the motion controller writes position and
// currentFloor; the request manager writes destination and raises
// floorReached and buttonPushed. Atomics give each side an up-to-date
// view without locks.
type State struct {
	position     atomic.Int32
	destination  atomic.Int32
	currentFloor atomic.Int32
	phase        atomic.Int32
	doorOpen     atomic.Bool
	floorReached atomic.Bool
	buttonPushed atomic.Bool
}

// Snapshot is a plain copy of the shared fields. The main loop takes one
// per iteration so that multi-field checks cannot tear.
type Snapshot struct {
	Position     Position
	Destination  Position
	CurrentFloor Floor
	Phase        Phase
	DoorOpen     bool
	FloorReached bool
}

func NewState() *State {
	return &State{}
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Position:     Position(s.position.Load()),
		Destination:  Position(s.destination.Load()),
		CurrentFloor: Floor(s.currentFloor.Load()),
		Phase:        Phase(s.phase.Load()),
		DoorOpen:     s.doorOpen.Load(),
		FloorReached: s.floorReached.Load(),
	}
}

func (s *State) Position() Position {
	return Position(s.position.Load())
}

// SetPosition rejects out-of-range positions instead of storing them.
func (s *State) SetPosition(p Position) bool {
	if !p.Valid() {
		return false
	}
	s.position.Store(int32(p))
	return true
}

func (s *State) Destination() Position {
	return Position(s.destination.Load())
}

// SetDestination rejects anything that is not a floor-aligned position.
func (s *State) SetDestination(p Position) bool {
	if _, ok := FloorOf(p); !ok {
		return false
	}
	s.destination.Store(int32(p))
	return true
}

func (s *State) CurrentFloor() Floor {
	return Floor(s.currentFloor.Load())
}

func (s *State) SetCurrentFloor(f Floor) bool {
	if !f.Valid() {
		return false
	}
	s.currentFloor.Store(int32(f))
	return true
}

func (s *State) Phase() Phase {
	return Phase(s.phase.Load())
}

func (s *State) SetPhase(ph Phase) {
	s.phase.Store(int32(ph))
}

func (s *State) DoorOpen() bool {
	return s.doorOpen.Load()
}

func (s *State) SetDoorOpen(open bool) {
	s.doorOpen.Store(open)
}

func (s *State) FloorReached() bool {
	return s.floorReached.Load()
}

func (s *State) SetFloorReached(v bool) {
	s.floorReached.Store(v)
}

func (s *State) ButtonPushed() bool {
	return s.buttonPushed.Load()
}

func (s *State) SetButtonPushed(v bool) {
	s.buttonPushed.Store(v)
}
