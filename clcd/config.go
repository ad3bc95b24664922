// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clcd

import (
	"fmt"

	"github.com/greenbit-embedded/mcuhal/dio"
)

// Mode selects the wire protocol between the driver and the display.
type Mode uint8

const (
	// FourBit transfers each byte as two nibbles over four data lines.
	FourBit Mode = 4
	// EightBit transfers each byte in one pass over eight data lines.
	EightBit Mode = 8
)

func (m Mode) String() string {
	switch m {
	case FourBit:
		return "4-bit"
	case EightBit:
		return "8-bit"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Config describes how a display is wired. It is read-only to the driver:
// build it once, pass it to New, and do not mutate it afterwards.
type Config struct {
	// Mode is the transfer width. The zero value is deliberately invalid.
	Mode Mode

	// Data lists the data line pins most significant bit first: Data[0] is
	// wired to D7. Length must be 4 for FourBit and 8 for EightBit.
	Data []dio.PinRef

	// RS is the register select line: low for commands, high for characters.
	RS dio.PinRef
	// RW is the read/write line. The driver only writes and holds it low.
	RW dio.PinRef
	// Enable is the latch line; a high-low pulse clocks the data lines in.
	Enable dio.PinRef

	// Backlight optionally names a pin that switches the backlight. Leave
	// nil for displays with a hard wired backlight.
	Backlight *dio.PinRef
}

func (c *Config) validate() error {
	switch c.Mode {
	case FourBit, EightBit:
	default:
		return fmt.Errorf("%s: unsupported mode %d", packageName, uint8(c.Mode))
	}
	if len(c.Data) != int(c.Mode) {
		return fmt.Errorf("%s: %s mode needs %d data lines, have %d",
			packageName, c.Mode, int(c.Mode), len(c.Data))
	}
	refs := make([]dio.PinRef, 0, len(c.Data)+4)
	refs = append(refs, c.Data...)
	refs = append(refs, c.RS, c.RW, c.Enable)
	if c.Backlight != nil {
		refs = append(refs, *c.Backlight)
	}
	seen := make(map[dio.PinRef]struct{}, len(refs))
	for _, ref := range refs {
		if !ref.Valid() {
			return fmt.Errorf("%s: pin %s out of range", packageName, ref)
		}
		if _, dup := seen[ref]; dup {
			return fmt.Errorf("%s: pin %s used twice", packageName, ref)
		}
		seen[ref] = struct{}{}
	}
	return nil
}

// controlPins returns the non-data pins in a fixed order.
func (c *Config) controlPins() []dio.PinRef {
	pins := []dio.PinRef{c.RS, c.RW, c.Enable}
	if c.Backlight != nil {
		pins = append(pins, *c.Backlight)
	}
	return pins
}
