package render

import (
	"strings"
	"testing"

	"liftsim/cab"
	"liftsim/iodevice"
)

type fakeSurface struct {
	cells      map[[2]int]iodevice.CellColor
	textWrites int
	text       strings.Builder
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{cells: make(map[[2]int]iodevice.CellColor)}
}

func (f *fakeSurface) output() iodevice.OutputDevice {
	return iodevice.OutputDevice{
		SetCell: func(x, y int, c iodevice.CellColor) {
			f.cells[[2]int{x, y}] = c
		},
		MoveCursor: func(col, row int) {},
		WriteText: func(s string) {
			f.textWrites++
			f.text.WriteString(s + "\n")
		},
		ClearToEOL: func() {},
	}
}

func (f *fakeSurface) floorLinesIntact(t *testing.T) {
	t.Helper()
	for x := 0; x < GridWidth; x++ {
		for f0 := 0; f0 < cab.NumFloors; f0++ {
			y := f0 * cab.StepsPerFloor
			if got := f.cells[[2]int{x, y}]; got != iodevice.CellFloor {
				t.Fatalf("floor line overdrawn at (%d,%d): %v", x, y, got)
			}
		}
	}
}

func TestCabNeverOverdrawsFloorLines(t *testing.T) {
	surface := newFakeSurface()
	r := New(surface.output())
	r.DrawStatic(0)
	surface.floorLinesIntact(t)

	// Ride all the way up and back down.
	for p := cab.Position(1); p <= cab.MaxPosition; p++ {
		r.DrawCab(p)
		surface.floorLinesIntact(t)
	}
	for p := cab.MaxPosition - 1; ; p-- {
		r.DrawCab(p)
		surface.floorLinesIntact(t)
		if p == 0 {
			break
		}
	}
}

func TestVacatedRowCleared(t *testing.T) {
	surface := newFakeSurface()
	r := New(surface.output())
	r.DrawStatic(0)

	// At position 0 the sprite occupies rows 1,2,3 (row 4 is a floor).
	r.DrawCab(1)
	// Moving up vacates row 1.
	for x := 1; x <= 2; x++ {
		if got := surface.cells[[2]int{x, 1}]; got != iodevice.CellEmpty {
			t.Errorf("vacated cell (%d,1) not cleared: %v", x, got)
		}
	}
	// New top row 4 is a floor line and must be untouched; row 3 and
	// row 2 hold the sprite.
	for x := 1; x <= 2; x++ {
		for _, y := range []int{2, 3} {
			if got := surface.cells[[2]int{x, y}]; got != iodevice.CellCab {
				t.Errorf("sprite cell (%d,%d) missing: %v", x, y, got)
			}
		}
	}
}

func TestWaitMarker(t *testing.T) {
	surface := newFakeSurface()
	r := New(surface.output())

	r.DrawWaitMarker(2, 1)
	cell := [2]int{5, 2*cab.StepsPerFloor + 1}
	if got := surface.cells[cell]; got != iodevice.TravellerTo(1) {
		t.Errorf("expected marker colored for floor 1 at %v, got %v", cell, got)
	}
	r.ClearWaitMarker(2)
	if got := surface.cells[cell]; got != iodevice.CellEmpty {
		t.Errorf("marker not cleared: %v", got)
	}
}

func TestStatusTextOnlyOnChange(t *testing.T) {
	surface := newFakeSurface()
	r := New(surface.output())

	snap := cab.Snapshot{Position: 0, Destination: 8, CurrentFloor: 0}
	r.StatusText(snap, 0, 0)
	writes := surface.textWrites
	if writes == 0 {
		t.Fatal("initial status not drawn")
	}
	if !strings.Contains(surface.text.String(), "Direction of travel: Up") {
		t.Errorf("unexpected status text: %q", surface.text.String())
	}

	// Same floor, same direction: nothing to rewrite.
	snap.Position = 2
	r.StatusText(snap, 0, 0)
	if surface.textWrites != writes {
		t.Error("status rewritten without a floor or direction change")
	}

	// Floor change rewrites.
	snap.Position = 4
	snap.CurrentFloor = 1
	r.StatusText(snap, 0, 1)
	if surface.textWrites == writes {
		t.Error("status not rewritten on floor change")
	}
	if !strings.Contains(surface.text.String(), "Number of floors moved without traveller: 1") {
		t.Errorf("counters missing from status: %q", surface.text.String())
	}
}

func TestStationaryWhileAnimating(t *testing.T) {
	surface := newFakeSurface()
	r := New(surface.output())

	snap := cab.Snapshot{Position: 8, Destination: 4, CurrentFloor: 2, FloorReached: true}
	r.StatusText(snap, 0, 2)
	if !strings.Contains(surface.text.String(), "Direction of travel: Stationary") {
		t.Errorf("expected stationary while doors cycle, got %q", surface.text.String())
	}
}
