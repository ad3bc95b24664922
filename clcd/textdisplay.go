// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clcd

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

// ErrNotImplemented is reported for TextDisplay features the panel or the
// wiring does not support.
var ErrNotImplemented = fmt.Errorf("%s: %w", packageName, display.ErrNotImplemented)

// Not supported by this device.
func (d *Dev) AutoScroll(enabled bool) error {
	return ErrNotImplemented
}

// Cols returns the number of columns the display supports.
func (d *Dev) Cols() int {
	return DisplayCols
}

// Rows returns the number of rows the display supports.
func (d *Dev) Rows() int {
	return DisplayRows
}

// MinCol returns the minimum column position.
func (d *Dev) MinCol() int {
	return 1
}

// MinRow returns the minimum row position.
func (d *Dev) MinRow() int {
	return 1
}

// Cursor sets the cursor mode. You can pass multiple arguments:
// Cursor(CursorOff), Cursor(CursorUnderline, CursorBlink).
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	d.cursor, d.blink = false, false
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
		case display.CursorUnderline:
			d.cursor = true
		case display.CursorBlink, display.CursorBlock:
			d.cursor = true
			d.blink = true
		default:
			return fmt.Errorf("%s: unexpected cursor mode %d", packageName, mode)
		}
	}
	return d.Display(d.on)
}

// Display turns the display on or off without losing its contents.
func (d *Dev) Display(on bool) error {
	d.on = on
	val := cmdDisplayCtrl
	if on {
		val |= ctrlDisplayOn
	}
	if d.cursor {
		val |= ctrlCursorOn
	}
	if d.blink {
		val |= ctrlBlinkOn
	}
	return d.SendCommand(val)
}

// Move moves the cursor one cell forward or backward.
func (d *Dev) Move(dir display.CursorDirection) error {
	val := cmdShift
	switch dir {
	case display.Backward:
	case display.Forward:
		val |= shiftRight
	default:
		return ErrNotImplemented
	}
	return d.SendCommand(val)
}

// MoveTo moves the cursor to the 1-based row and column.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row > DisplayRows || col < d.MinCol() || col > DisplayCols {
		return fmt.Errorf("%s: MoveTo(%d,%d): %w", packageName, row, col, ErrOutOfRange)
	}
	return d.GoToXYPos(uint8(col-1), uint8(row-1))
}

// Write sends every byte of p as a character.
func (d *Dev) Write(p []byte) (int, error) {
	for i, b := range p {
		if err := d.SendChar(b); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// WriteString writes a string to the display.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// Backlight switches the backlight pin. Wirings without a backlight pin
// report ErrNotImplemented.
func (d *Dev) Backlight(intensity display.Intensity) error {
	bl := d.cfg.Backlight
	if bl == nil {
		return ErrNotImplemented
	}
	return wrap(d.pins.SetLevel(bl.Port, bl.Pin, gpio.Level(intensity > 0)))
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ conn.Resource = &Dev{}
