// Package segdisp multiplexes the two-digit seven-segment display.
// Every tick it energizes the other half and derives that half's glyph
// from the shared cab state.
package segdisp

import (
	"liftsim/cab"
	"liftsim/iodevice"
)

// Segment patterns, bit-for-bit with the reference hardware.
const (
	GlyphUp         byte = 0x01 // segment A
	GlyphDown       byte = 0x08 // segment D
	GlyphStationary byte = 0x40 // segment G
	MarkerBit       byte = 0x80 // decimal point, lit while mid-transit
)

// Digits 0 through 3.
var digitGlyphs = [cab.NumFloors]byte{0x3F, 0x06, 0x5B, 0x4F}

// Glyph derives the pattern for one half from a state snapshot.
//
// The first half shows the floor last fully arrived at, with the marker
// bit lit whenever the cab sits between floors. The second half shows
// the direction of travel, or the stationary bar while the door
// animation holds the cab.
func Glyph(h iodevice.Half, s cab.Snapshot) byte {
	if h == iodevice.FirstHalf {
		g := digitGlyphs[0]
		if s.CurrentFloor.Valid() {
			g = digitGlyphs[s.CurrentFloor]
		}
		if !s.Position.Aligned() {
			g |= MarkerBit
		}
		return g
	}

	if s.FloorReached || s.Phase != cab.PhaseIdle {
		return GlyphStationary
	}
	switch {
	case s.Destination > s.Position:
		return GlyphUp
	case s.Destination < s.Position:
		return GlyphDown
	default:
		return GlyphStationary
	}
}

type Mux struct {
	st   *cab.State
	show func(iodevice.Half, byte)
	half iodevice.Half
}

func NewMux(st *cab.State, dev iodevice.OutputDevice) *Mux {
	return &Mux{st: st, show: dev.ShowDigit}
}

// Tick runs in the tick context.
func (m *Mux) Tick() {
	m.show(m.half, Glyph(m.half, m.st.Snapshot()))
	m.half = iodevice.SecondHalf - m.half
}
