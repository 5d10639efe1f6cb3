package cab

import "testing"

func TestFloorPositionConversion(t *testing.T) {
	for f := Floor(0); f < NumFloors; f++ {
		p, ok := PositionOf(f)
		if !ok {
			t.Fatalf("PositionOf(%d) rejected a valid floor", f)
		}
		if !p.Aligned() {
			t.Errorf("PositionOf(%d) = %d is not floor-aligned", f, p)
		}
		back, ok := FloorOf(p)
		if !ok || back != f {
			t.Errorf("FloorOf(PositionOf(%d)) = %d, %v", f, back, ok)
		}
	}
}

func TestConversionBounds(t *testing.T) {
	if _, ok := PositionOf(-1); ok {
		t.Error("PositionOf(-1) accepted")
	}
	if _, ok := PositionOf(NumFloors); ok {
		t.Error("PositionOf(NumFloors) accepted")
	}
	if _, ok := FloorOf(-1); ok {
		t.Error("FloorOf(-1) accepted")
	}
	if _, ok := FloorOf(MaxPosition + 1); ok {
		t.Error("FloorOf above the top floor accepted")
	}
	if _, ok := FloorOf(1); ok {
		t.Error("FloorOf accepted a mid-transit position")
	}
}

func TestStateRejectsInvalidWrites(t *testing.T) {
	st := NewState()
	if st.SetPosition(MaxPosition + 1) {
		t.Error("SetPosition accepted an out-of-range position")
	}
	if st.SetDestination(3) {
		t.Error("SetDestination accepted a non-aligned position")
	}
	if st.SetCurrentFloor(NumFloors) {
		t.Error("SetCurrentFloor accepted an invalid floor")
	}
	snap := st.Snapshot()
	if snap.Position != 0 || snap.Destination != 0 || snap.CurrentFloor != 0 {
		t.Errorf("rejected writes leaked into state: %+v", snap)
	}
}

func TestSnapshotReflectsWrites(t *testing.T) {
	st := NewState()
	st.SetPosition(5)
	st.SetDestination(8)
	st.SetCurrentFloor(1)
	st.SetPhase(PhaseOpening)
	st.SetDoorOpen(true)
	st.SetFloorReached(true)

	snap := st.Snapshot()
	expected := Snapshot{
		Position:     5,
		Destination:  8,
		CurrentFloor: 1,
		Phase:        PhaseOpening,
		DoorOpen:     true,
		FloorReached: true,
	}
	if snap != expected {
		t.Errorf("expected %+v, got %+v", expected, snap)
	}
}
