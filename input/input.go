// Package input turns console keystrokes into the non-blocking input
// source the core polls. Keys 0-3 place a passenger request, the arrow
// keys move the destination selector, space flips the speed toggle, and
// q / Esc / Ctrl-C quit.
package input

import (
	"sync/atomic"

	"github.com/eiannone/keyboard"

	"liftsim/cab"
	"liftsim/iodevice"
)

const noButton int32 = -1

type Device struct {
	pressed  atomic.Int32 // latched floor of the last unconsumed press
	slow     atomic.Bool
	selector atomic.Int32

	anyKey chan struct{}
	quit   chan struct{}
}

// New starts listening to the keyboard. Close must be called before the
// process exits to restore the terminal.
func New() (*Device, error) {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return nil, err
	}
	d := &Device{
		anyKey: make(chan struct{}, 1),
		quit:   make(chan struct{}),
	}
	d.pressed.Store(noButton)
	go d.consume(events)
	return d, nil
}

func (d *Device) consume(events <-chan keyboard.KeyEvent) {
	for ev := range events {
		if ev.Err != nil {
			continue
		}
		select {
		case d.anyKey <- struct{}{}:
		default:
		}
		switch {
		case ev.Rune >= '0' && ev.Rune <= '3':
			d.pressed.Store(int32(ev.Rune - '0'))
		case ev.Key == keyboard.KeyArrowUp:
			if s := d.selector.Load(); s < cab.NumFloors-1 {
				d.selector.Store(s + 1)
			}
		case ev.Key == keyboard.KeyArrowDown:
			if s := d.selector.Load(); s > 0 {
				d.selector.Store(s - 1)
			}
		case ev.Key == keyboard.KeySpace:
			d.slow.Store(!d.slow.Load())
		case ev.Rune == 'q' || ev.Rune == 'Q' ||
			ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC:
			close(d.quit)
			return
		}
	}
}

// Quit is closed once the user asks to exit.
func (d *Device) Quit() <-chan struct{} {
	return d.quit
}

// WaitForAny blocks until the next keystroke, or until quit.
func (d *Device) WaitForAny() {
	select {
	case <-d.anyKey:
	case <-d.quit:
	}
}

func (d *Device) Close() {
	keyboard.Close()
}

// Input wires the device into the core's collaborator contract.
func (d *Device) Input() iodevice.InputDevice {
	return iodevice.InputDevice{
		Button:              d.button,
		SpeedToggle:         d.speedToggle,
		DestinationSelector: d.destinationSelector,
	}
}

// button consumes the latched press, so one keystroke produces one
// event.
func (d *Device) button() (cab.Floor, bool) {
	f := d.pressed.Swap(noButton)
	if f == noButton {
		return 0, false
	}
	return cab.Floor(f), true
}

func (d *Device) speedToggle() iodevice.Speed {
	if d.slow.Load() {
		return iodevice.SpeedSlow
	}
	return iodevice.SpeedFast
}

func (d *Device) destinationSelector() cab.Floor {
	return cab.Floor(d.selector.Load())
}
