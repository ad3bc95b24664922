// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clcd drives HD44780 compatible character LCD modules wired
// directly to digital I/O pins, in either the 4-bit or the 8-bit interface
// width.
//
// The driver is config driven and keeps no protocol state: every operation
// turns into an ordered sequence of dio.PinAccess calls plus the settle
// delays the controller requires, and returns once the last delay has
// elapsed. All waits are blocking sleeps; the busy flag is never polled.
//
// A Dev is not safe for concurrent use. The enable pulse plus data line
// sequence is not atomic on the wire, so access to the pins of one display
// must be serialized by the caller.
//
// Implements periph.io/x/conn/v3/display.TextDisplay.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package clcd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/greenbit-embedded/mcuhal/dio"
)

type writeMode bool

const (
	modeCommand writeMode = false
	modeData    writeMode = true

	packageName = "clcd"

	// DisplayCols and DisplayRows fix the supported panel geometry. The
	// row address table below is for the ubiquitous 16x2 module.
	DisplayCols = 16
	DisplayRows = 2
)

// Controller command set.
const (
	cmdClear       byte = 0x01
	cmdHome        byte = 0x02
	cmdEntryMode   byte = 0x04
	entryIncrement byte = 0x02
	cmdDisplayCtrl byte = 0x08
	ctrlDisplayOn  byte = 0x04
	ctrlCursorOn   byte = 0x02
	ctrlBlinkOn    byte = 0x01
	cmdShift       byte = 0x10
	shiftRight     byte = 0x04
	cmdFunctionSet byte = 0x20
	fnEightBit     byte = 0x10
	fnTwoLines     byte = 0x08
	cmdSetDDRAM    byte = 0x80
)

// Controller timing. The protocol is time based: the driver waits fixed
// minimums instead of polling the busy flag.
const (
	// enablePulseWidth keeps the enable line high long enough to latch;
	// the part needs >450ns.
	enablePulseWidth = 2 * time.Microsecond
	// nibbleDelay separates the two passes of a 4-bit transfer.
	nibbleDelay = 10 * time.Microsecond
	// settleDelay follows every transferred byte; commands need >37us.
	settleDelay = 50 * time.Microsecond
	// clearDelay follows clear and home, which run far longer than other
	// commands.
	clearDelay = 2 * time.Millisecond
	// powerOnDelay gives the controller time to reset after power up.
	powerOnDelay = 15 * time.Millisecond
	// syncDelay follows the first wake up knock of the init sequence.
	syncDelay = 4100 * time.Microsecond
)

// sleep is swapped out by tests to observe delay sequencing.
var sleep = time.Sleep

// DDRAM base address of each row.
var rowBase = [DisplayRows]byte{0x00, 0x40}

// ErrOutOfRange is reported when a cursor position is outside the panel.
var ErrOutOfRange = errors.New(packageName + ": position out of range")

func wrap(err error) error {
	if err == nil || strings.HasPrefix(err.Error(), packageName) {
		return err
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

// Dev is a character LCD on a set of digital I/O pins. All hardware state
// lives in the physical module; the Dev carries only the wiring description
// and the display-control shadow bits that the write-only protocol cannot
// read back.
type Dev struct {
	pins dio.PinAccess
	cfg  *Config

	on     bool
	cursor bool
	blink  bool
}

// New validates the wiring description and returns a driver for it. It does
// not touch the pins; call Init before any other operation.
func New(pins dio.PinAccess, cfg *Config) (*Dev, error) {
	if pins == nil {
		return nil, errors.New(packageName + ": nil pin access")
	}
	if cfg == nil {
		return nil, errors.New(packageName + ": nil config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Dev{pins: pins, cfg: cfg, on: true}, nil
}

// Init configures every wired pin as an output and runs the controller's
// power-on sequence for the configured interface width: the wake up knocks,
// function set, display on with the cursor off, entry mode increment, and a
// clear. Calling it again re-runs the identical sequence.
func (d *Dev) Init() error {
	d.on, d.cursor, d.blink = true, false, false

	for _, ref := range d.cfg.Data {
		if err := d.pins.SetDirection(ref.Port, ref.Pin, dio.Output); err != nil {
			return wrap(err)
		}
	}
	for _, ref := range d.cfg.controlPins() {
		if err := d.pins.SetDirection(ref.Port, ref.Pin, dio.Output); err != nil {
			return wrap(err)
		}
	}
	// Keep the bus quiet while the controller resets.
	for _, ref := range []dio.PinRef{d.cfg.RS, d.cfg.RW, d.cfg.Enable} {
		if err := d.pins.SetLevel(ref.Port, ref.Pin, gpio.Low); err != nil {
			return wrap(err)
		}
	}
	sleep(powerOnDelay)

	fn := cmdFunctionSet | fnTwoLines
	switch d.cfg.Mode {
	case FourBit:
		// The controller wakes up expecting a full width interface; the
		// three knocks and the switch to 4-bit are single nibble writes.
		for i, knock := range [...]byte{0x03, 0x03, 0x03, 0x02} {
			if err := d.writeBits(knock); err != nil {
				return err
			}
			if i == 0 {
				sleep(syncDelay)
			} else {
				sleep(settleDelay)
			}
		}
	case EightBit:
		fn |= fnEightBit
		for i := 0; i < 3; i++ {
			if err := d.writeBits(0x03 << 4); err != nil {
				return err
			}
			if i == 0 {
				sleep(syncDelay)
			} else {
				sleep(settleDelay)
			}
		}
	default:
		// Unset or corrupt mode: no pin activity.
		return nil
	}

	for _, cmd := range []byte{fn, cmdDisplayCtrl | ctrlDisplayOn, cmdEntryMode | entryIncrement} {
		if err := d.SendCommand(cmd); err != nil {
			return err
		}
	}
	if err := d.Clear(); err != nil {
		return err
	}
	if d.cfg.Backlight != nil {
		return d.Backlight(0xff)
	}
	return nil
}

// SendCommand writes one instruction byte to the controller.
func (d *Dev) SendCommand(command byte) error {
	return d.send(command, modeCommand)
}

// SendChar writes one character code at the current cursor position. The
// cursor advances according to the entry mode set at Init.
func (d *Dev) SendChar(char byte) error {
	return d.send(char, modeData)
}

// SendString writes the bytes of text in order. No width clamping is done;
// text longer than a row follows the controller's own cursor advance policy.
func (d *Dev) SendString(text string) error {
	_, err := d.WriteString(text)
	return err
}

// Clear blanks the display and homes the cursor. Clearing is a long running
// command, so the settle wait here is much longer than for other commands.
func (d *Dev) Clear() error {
	if err := d.SendCommand(cmdClear); err != nil {
		return err
	}
	sleep(clearDelay)
	return nil
}

// Home moves the cursor to the first column of the first row.
func (d *Dev) Home() error {
	if err := d.SendCommand(cmdHome); err != nil {
		return err
	}
	sleep(clearDelay)
	return nil
}

// GoToXYPos moves the cursor to column x (0..15) and row y (0..1).
// Out of range coordinates report ErrOutOfRange without issuing a command.
func (d *Dev) GoToXYPos(x, y uint8) error {
	if x >= DisplayCols || y >= DisplayRows {
		return fmt.Errorf("%s: GoToXYPos(%d,%d): %w", packageName, x, y, ErrOutOfRange)
	}
	return d.SendCommand(cmdSetDDRAM | (rowBase[y] + x))
}

// send is the single byte transfer primitive both protocols route through.
func (d *Dev) send(value byte, mode writeMode) error {
	switch d.cfg.Mode {
	case FourBit, EightBit:
	default:
		// An unrecognized mode must not produce undefined pin activity.
		return nil
	}
	if err := d.pins.SetLevel(d.cfg.RS.Port, d.cfg.RS.Pin, gpio.Level(mode)); err != nil {
		return wrap(err)
	}
	if err := d.pins.SetLevel(d.cfg.RW.Port, d.cfg.RW.Pin, gpio.Low); err != nil {
		return wrap(err)
	}
	if d.cfg.Mode == EightBit {
		if err := d.writeBits(value); err != nil {
			return err
		}
	} else {
		if err := d.writeBits(value >> 4); err != nil {
			return err
		}
		sleep(nibbleDelay)
		if err := d.writeBits(value & 0x0f); err != nil {
			return err
		}
	}
	sleep(settleDelay)
	return nil
}

// writeBits drives every configured data line from value, most significant
// bit on Data[0], and latches with an enable pulse. In 4-bit mode only the
// low nibble of value is meaningful.
func (d *Dev) writeBits(value byte) error {
	lines := d.cfg.Data
	width := uint(len(lines))
	for i, ref := range lines {
		level := gpio.Level(value>>(width-1-uint(i))&1 == 1)
		if err := d.pins.SetLevel(ref.Port, ref.Pin, level); err != nil {
			return wrap(err)
		}
	}
	return d.pulseEnable()
}

// pulseEnable latches the currently driven data lines into the controller.
func (d *Dev) pulseEnable() error {
	en := d.cfg.Enable
	if err := d.pins.SetLevel(en.Port, en.Pin, gpio.High); err != nil {
		return wrap(err)
	}
	sleep(enablePulseWidth)
	if err := d.pins.SetLevel(en.Port, en.Pin, gpio.Low); err != nil {
		return wrap(err)
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("CLCD::%s Rows: %d, Cols: %d", d.cfg.Mode, DisplayRows, DisplayCols)
}

// Halt clears the display and turns it and the backlight off.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	if d.cfg.Backlight != nil {
		_ = d.Backlight(0)
	}
	return d.Display(false)
}
