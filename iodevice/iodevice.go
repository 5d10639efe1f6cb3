// Package iodevice defines the contracts of the external collaborators:
// the grid surface, the two-digit display driver, the text surface, the
// tone generator and the input source. The core only ever talks to these
// function structs, so any backend (terminal, hardware, test fake) can
// be plugged in.
package iodevice

import "liftsim/cab"

// CellColor tags what a grid cell shows. Out-of-bounds coordinates are a
// precondition violation, not a recoverable error.
type CellColor int

const (
	CellEmpty CellColor = iota
	CellFloor
	CellCab
	CellTravellerTo0
	CellTravellerTo1
	CellTravellerTo2
	CellTravellerTo3
)

// TravellerTo tags a waiting-passenger marker with the passenger's
// onward floor.
func TravellerTo(f cab.Floor) CellColor {
	return CellTravellerTo0 + CellColor(f)
}

// Half selects which of the two multiplexed digits is energized.
type Half int

const (
	FirstHalf Half = iota
	SecondHalf
)

// TonePreset selects the frequency of the single tone generator.
type TonePreset int

const (
	ToneAck  TonePreset = iota // short "request acknowledged" pulse
	ToneDoor                   // "doors operating" tone
)

type Speed int

const (
	SpeedFast Speed = iota
	SpeedSlow
)

func SpeedToString(s Speed) string {
	switch s {
	case SpeedFast:
		return "fast"
	case SpeedSlow:
		return "slow"
	default:
		return "undefined"
	}
}

type OutputDevice struct {
	SetCell    func(x, y int, c CellColor)
	ShowDigit  func(h Half, glyph byte)
	MoveCursor func(col, row int)
	WriteText  func(s string)
	ClearToEOL func()
	SetTone    func(p TonePreset)
	StopTone   func()
	DoorLamp   func(open bool)
}

// InputDevice polls the latest sampled value of each control. None of
// these block; a press shorter than one main-loop iteration may be
// missed, which is documented behavior.
type InputDevice struct {
	// Button returns the floor of a discrete "request at floor N" press,
	// at most once per press.
	Button func() (cab.Floor, bool)

	SpeedToggle func() Speed

	DestinationSelector func() cab.Floor
}
