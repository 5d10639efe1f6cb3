// Package term backs the output device contracts with an ANSI terminal.
// The grid is drawn as colored cell pairs, the two seven-segment digits
// are decoded into characters, and tone/door state show up as small
// indicators.
//
// The tick context and the main loop share this writer, so every
// logical update is emitted as one absolutely positioned write under a
// mutex: a digit refresh can never land between a cursor move and its
// text.
package term

import (
	"fmt"
	"io"
	"sync"
	"unicode/utf8"

	"liftsim/iodevice"
	"liftsim/render"
)

// Terminal placement of the drawn surfaces. The status text rows are
// owned by the renderer and lie below the grid.
const (
	gridTop  = 2
	gridLeft = 2

	digitRow  = 2
	digitCol  = 24
	toneRow   = 4
	toneCol   = 24
	doorRow   = 5
	doorCol   = 24
	bannerRow = 1
	bannerCol = 2
)

var cellColors = map[iodevice.CellColor]string{
	iodevice.CellEmpty:        "\033[40m",
	iodevice.CellFloor:        "\033[42m",
	iodevice.CellCab:          "\033[43m",
	iodevice.CellTravellerTo0: "\033[41m",
	iodevice.CellTravellerTo1: "\033[45m",
	iodevice.CellTravellerTo2: "\033[46m",
	iodevice.CellTravellerTo3: "\033[44m",
}

type Device struct {
	mu sync.Mutex
	w  io.Writer

	ackHz  int
	doorHz int

	// digit glyphs last shown, so both halves stay on screen even
	// though only one is energized per tick
	glyphs [2]byte

	// cursor position set by MoveCursor; WriteText and ClearToEOL emit
	// it with their payload instead of relying on terminal state
	cursorCol int
	cursorRow int
}

func NewDevice(w io.Writer, ackHz, doorHz int) *Device {
	return &Device{w: w, ackHz: ackHz, doorHz: doorHz}
}

// Output wires the device into the core's collaborator contract.
func (d *Device) Output() iodevice.OutputDevice {
	return iodevice.OutputDevice{
		SetCell:    d.setCell,
		ShowDigit:  d.showDigit,
		MoveCursor: d.moveCursor,
		WriteText:  d.writeText,
		ClearToEOL: d.clearToEOL,
		SetTone:    d.setTone,
		StopTone:   d.stopTone,
		DoorLamp:   d.doorLamp,
	}
}

// Clear wipes the screen and hides the cursor.
func (d *Device) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(d.w, "\033[2J\033[?25l")
}

// Restore shows the cursor again and resets colors.
func (d *Device) Restore() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprint(d.w, "\033[0m\033[?25h")
}

// Banner writes a headline above the grid.
func (d *Device) Banner(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "\033[%d;%dH%s\033[K", bannerRow, bannerCol, s)
}

func (d *Device) setCell(x, y int, c iodevice.CellColor) {
	d.mu.Lock()
	defer d.mu.Unlock()
	// Grid y grows upward; terminal rows grow downward. Cells are two
	// characters wide to look square.
	row := gridTop + (render.GridHeight - 1 - y)
	col := gridLeft + 2*x
	color, ok := cellColors[c]
	if !ok {
		color = cellColors[iodevice.CellEmpty]
	}
	fmt.Fprintf(d.w, "\033[%d;%dH%s  \033[0m", row, col, color)
}

// showDigit decodes the segment pattern into a printable character. The
// marker bit renders as a trailing dot, mirroring the decimal point on
// the hardware display.
func (d *Device) showDigit(h iodevice.Half, glyph byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.glyphs[h] == glyph {
		return
	}
	d.glyphs[h] = glyph

	// First half to the right of the second, as on the hardware.
	col := digitCol
	if h == iodevice.FirstHalf {
		col += 3
	}
	fmt.Fprintf(d.w, "\033[%d;%dH%s", digitRow, col, decodeGlyph(glyph))
}

func decodeGlyph(glyph byte) string {
	marker := " "
	if glyph&0x80 != 0 {
		marker = "."
	}
	var body string
	switch glyph &^ 0x80 {
	case 0x3F:
		body = "0"
	case 0x06:
		body = "1"
	case 0x5B:
		body = "2"
	case 0x4F:
		body = "3"
	case 0x01:
		body = "^"
	case 0x08:
		body = "v"
	case 0x40:
		body = "-"
	default:
		body = "?"
	}
	return body + marker
}

func (d *Device) moveCursor(col, row int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursorCol = col
	d.cursorRow = row
}

func (d *Device) writeText(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "\033[%d;%dH%s", d.cursorRow, d.cursorCol, s)
	d.cursorCol += utf8.RuneCountInString(s)
}

func (d *Device) clearToEOL() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "\033[%d;%dH\033[K", d.cursorRow, d.cursorCol)
}

func (d *Device) setTone(p iodevice.TonePreset) {
	d.mu.Lock()
	defer d.mu.Unlock()
	hz := d.ackHz
	if p == iodevice.ToneDoor {
		hz = d.doorHz
	}
	fmt.Fprintf(d.w, "\033[%d;%dH\033[33m♪ %4d Hz\033[0m", toneRow, toneCol, hz)
}

func (d *Device) stopTone() {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.w, "\033[%d;%dH         ", toneRow, toneCol)
}

func (d *Device) doorLamp(open bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	label := "doors closed"
	if open {
		label = "doors open  "
	}
	fmt.Fprintf(d.w, "\033[%d;%dH%s", doorRow, doorCol, label)
}
