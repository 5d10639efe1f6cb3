// Package render translates cab state into draw calls against the grid
// and text surfaces. Every call is safe to repeat; the renderer keeps a
// snapshot of what it last drew and skips work that would change
// nothing.
package render

import (
	"fmt"

	"liftsim/cab"
	"liftsim/iodevice"
)

// Grid geometry. Floors sit on every fourth row, the cab occupies
// columns 1-2, the waiting-passenger marker column 5.
const (
	GridWidth  = 8
	GridHeight = (cab.NumFloors-1)*cab.StepsPerFloor + cabHeight + 1

	cabLeft   = 1
	cabWidth  = 2
	cabHeight = 3

	markerColumn = 5
)

// Text surface layout. The status block sits below the grid's screen
// area so rewrites can never clobber grid cells.
const (
	statusCol       = 10
	floorRow        = GridHeight + 3
	directionRow    = GridHeight + 5
	withCountRow    = GridHeight + 7
	withoutCountRow = GridHeight + 8
)

// StatusRows lists the terminal rows the status text occupies, so
// backends can place their surfaces clear of them.
func StatusRows() []int {
	return []int{floorRow, directionRow, withCountRow, withoutCountRow}
}

type direction int

const (
	directionDown direction = iota - 1
	directionStationary
	directionUp
)

func (d direction) String() string {
	switch d {
	case directionUp:
		return "Up"
	case directionDown:
		return "Down"
	default:
		return "Stationary"
	}
}

// view is what the status text currently shows. Counters only change
// together with the floor, so floor and direction decide staleness.
type view struct {
	Floor            cab.Floor
	Direction        direction
	WithPassenger    int
	WithoutPassenger int
}

type Renderer struct {
	dev iodevice.OutputDevice

	cabPos cab.Position
	shown  view
	drawn  bool
}

func New(dev iodevice.OutputDevice) *Renderer {
	return &Renderer{dev: dev}
}

// DrawStatic draws the four floor lines and the cab at its current
// position. Call once before the loop starts.
func (r *Renderer) DrawStatic(pos cab.Position) {
	for x := 0; x < GridWidth; x++ {
		for f := cab.Floor(0); f < cab.NumFloors; f++ {
			r.dev.SetCell(x, int(f)*cab.StepsPerFloor, iodevice.CellFloor)
		}
	}
	r.cabPos = pos
	r.drawCabAt(pos, iodevice.CellCab)
}

// DrawCab redraws the cab sprite after a position change: the single row
// vacated by the move is cleared, the new 2x3 block drawn. Rows that
// coincide with a floor line are never touched.
func (r *Renderer) DrawCab(pos cab.Position) {
	if !pos.Valid() || pos == r.cabPos {
		return
	}

	var vacated int
	if r.cabPos > pos { // moved down, clear above
		vacated = int(r.cabPos) + cabHeight
	} else { // moved up, clear below
		vacated = int(r.cabPos) + 1
	}
	if vacated%cab.StepsPerFloor != 0 {
		for x := cabLeft; x < cabLeft+cabWidth; x++ {
			r.dev.SetCell(x, vacated, iodevice.CellEmpty)
		}
	}

	r.cabPos = pos
	r.drawCabAt(pos, iodevice.CellCab)
}

func (r *Renderer) drawCabAt(pos cab.Position, c iodevice.CellColor) {
	for i := 1; i <= cabHeight; i++ {
		y := int(pos) + i
		if y%cab.StepsPerFloor == 0 { // never overdraw a floor line
			continue
		}
		for x := cabLeft; x < cabLeft+cabWidth; x++ {
			r.dev.SetCell(x, y, c)
		}
	}
}

// DrawWaitMarker marks a waiting passenger beside the origin floor,
// colored by the onward floor.
func (r *Renderer) DrawWaitMarker(origin, onward cab.Floor) {
	if !origin.Valid() || !onward.Valid() {
		return
	}
	r.dev.SetCell(markerColumn, int(origin)*cab.StepsPerFloor+1, iodevice.TravellerTo(onward))
}

func (r *Renderer) ClearWaitMarker(origin cab.Floor) {
	if !origin.Valid() {
		return
	}
	r.dev.SetCell(markerColumn, int(origin)*cab.StepsPerFloor+1, iodevice.CellEmpty)
}

// StatusText rewrites the status lines when the floor or the direction
// changed since they were last drawn, and otherwise leaves the text
// surface alone.
func (r *Renderer) StatusText(snap cab.Snapshot, withPassenger, withoutPassenger int) {
	v := view{
		Floor:            snap.CurrentFloor,
		Direction:        directionOf(snap),
		WithPassenger:    withPassenger,
		WithoutPassenger: withoutPassenger,
	}
	if r.drawn && v.Floor == r.shown.Floor && v.Direction == r.shown.Direction {
		return
	}

	r.line(floorRow, fmt.Sprintf("Current floor: %d", v.Floor))
	r.line(directionRow, fmt.Sprintf("Direction of travel: %s", v.Direction))
	r.line(withCountRow, fmt.Sprintf("Number of floors moved with traveller: %d", v.WithPassenger))
	r.line(withoutCountRow, fmt.Sprintf("Number of floors moved without traveller: %d", v.WithoutPassenger))

	r.shown = v
	r.drawn = true
}

func (r *Renderer) line(row int, s string) {
	r.dev.MoveCursor(statusCol, row)
	r.dev.WriteText(s)
	r.dev.ClearToEOL()
}

// The cab reads as stationary for the whole door hold, not just while
// the destination matches the position.
func directionOf(snap cab.Snapshot) direction {
	if snap.FloorReached || snap.Phase != cab.PhaseIdle {
		return directionStationary
	}
	switch {
	case snap.Destination > snap.Position:
		return directionUp
	case snap.Destination < snap.Position:
		return directionDown
	default:
		return directionStationary
	}
}
