// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clcdsim emulates an HD44780 style character LCD at the pin level.
//
// Sim implements dio.PinAccess for one clcd.Config wiring. Driving it
// through the clcd driver exercises the exact enable pulse and nibble
// sequencing a physical module sees: the simulator latches on the enable
// falling edge, reassembles nibbles, decodes the command set, and maintains
// DDRAM and the address counter. The decoded screen is available as text
// (Text), as ANSI terminal output (Render), and as an image (Image).
//
// Like the real part, the simulator wakes in the 8-bit interpretation; a
// function set with a cleared data-length bit switches it to nibble pairing.
package clcdsim

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/greenbit-embedded/mcuhal/clcd"
	"github.com/greenbit-embedded/mcuhal/dio"
)

// DDRAM geometry: row 0 at 0x00..0x27, row 1 at 0x40..0x67, 40 cells each.
const (
	rowSpan  = 40
	row1Base = 0x40
	ddramLen = row1Base + rowSpan
)

// Sim is a simulated display. The zero value is not usable; call New.
type Sim struct {
	cfg *clcd.Config

	dir   [dio.PortCount][dio.PinsPerPort]dio.Direction
	level [dio.PortCount][dio.PinsPerPort]gpio.Level

	// busWidth is 8 until a function set selects the 4-bit interface.
	busWidth int
	haveHigh bool
	high     byte

	ddram     [ddramLen]byte
	ac        byte
	increment bool
	on        bool
	cursor    bool
	blink     bool
	latches   int
}

// New returns a powered up, blank display wired as cfg describes.
func New(cfg *clcd.Config) (*Sim, error) {
	if cfg == nil {
		return nil, errors.New("clcdsim: nil config")
	}
	if n := len(cfg.Data); n != 4 && n != 8 {
		return nil, fmt.Errorf("clcdsim: %d data lines, want 4 or 8", n)
	}
	s := &Sim{cfg: cfg, busWidth: 8, increment: true}
	s.blank()
	return s, nil
}

func (s *Sim) blank() {
	for i := range s.ddram {
		s.ddram[i] = ' '
	}
	s.ac = 0
}

// SetDirection implements dio.PinAccess.
func (s *Sim) SetDirection(port dio.Port, pin uint8, dir dio.Direction) error {
	if _, err := dio.NewPinRef(port, pin); err != nil {
		return err
	}
	s.dir[port][pin] = dir
	return nil
}

// SetLevel implements dio.PinAccess. Driving a pin that was never configured
// as an output is an error: the simulator enforces the driver's contract of
// configuring directions before use.
func (s *Sim) SetLevel(port dio.Port, pin uint8, level gpio.Level) error {
	if _, err := dio.NewPinRef(port, pin); err != nil {
		return err
	}
	if s.dir[port][pin] != dio.Output {
		return fmt.Errorf("clcdsim: %s not configured as output",
			dio.PinRef{Port: port, Pin: pin})
	}
	prev := s.level[port][pin]
	s.level[port][pin] = level
	en := s.cfg.Enable
	if port == en.Port && pin == en.Pin && prev == gpio.High && level == gpio.Low {
		s.latch()
	}
	return nil
}

// Level implements dio.PinAccess.
func (s *Sim) Level(port dio.Port, pin uint8) (gpio.Level, error) {
	if _, err := dio.NewPinRef(port, pin); err != nil {
		return gpio.Low, err
	}
	return s.level[port][pin], nil
}

func (s *Sim) pin(ref dio.PinRef) gpio.Level {
	return s.level[ref.Port][ref.Pin]
}

// dataBits samples the configured data lines, Data[0] as the most
// significant bit.
func (s *Sim) dataBits() byte {
	var v byte
	for _, ref := range s.cfg.Data {
		v <<= 1
		if s.pin(ref) == gpio.High {
			v |= 1
		}
	}
	return v
}

// latch handles an enable falling edge.
func (s *Sim) latch() {
	s.latches++
	if s.pin(s.cfg.RW) == gpio.High {
		// Reads are out of scope for this wiring.
		return
	}
	value := s.dataBits()
	if s.busWidth == 8 {
		if len(s.cfg.Data) == 4 {
			// Four wired lines in the 8-bit state: the controller only
			// sees D7..D4, the low lines float.
			value <<= 4
		}
		s.execute(value)
		return
	}
	if !s.haveHigh {
		s.high = value & 0x0f
		s.haveHigh = true
		return
	}
	s.haveHigh = false
	s.execute(s.high<<4 | value&0x0f)
}

// execute applies one assembled byte.
func (s *Sim) execute(value byte) {
	if s.pin(s.cfg.RS) == gpio.High {
		s.writeData(value)
		return
	}
	switch {
	case value&0x80 != 0: // set DDRAM address
		s.ac = value & 0x7f
	case value&0x40 != 0: // set CGRAM address; patterns are not modeled
	case value&0x20 != 0: // function set
		if value&0x10 == 0 {
			s.busWidth = 4
		} else {
			s.busWidth = 8
		}
		s.haveHigh = false
	case value&0x10 != 0: // cursor / display shift
		if value&0x08 == 0 {
			if value&0x04 != 0 {
				s.advance(1)
			} else {
				s.advance(-1)
			}
		}
	case value&0x08 != 0: // display control
		s.on = value&0x04 != 0
		s.cursor = value&0x02 != 0
		s.blink = value&0x01 != 0
	case value&0x04 != 0: // entry mode set
		s.increment = value&0x02 != 0
	case value&0x02 != 0: // return home
		s.ac = 0
	case value&0x01 != 0: // clear display
		s.blank()
		s.increment = true
	}
}

func (s *Sim) writeData(value byte) {
	if int(s.ac) < ddramLen {
		s.ddram[s.ac] = value
	}
	if s.increment {
		s.advance(1)
	} else {
		s.advance(-1)
	}
}

// advance moves the address counter around the controller's 80 cell ring.
func (s *Sim) advance(delta int) {
	ac := int(s.ac)
	if ac >= row1Base {
		ac = ac - row1Base + rowSpan
	}
	ac = (ac + delta + 2*rowSpan) % (2 * rowSpan)
	if ac >= rowSpan {
		s.ac = byte(ac - rowSpan + row1Base)
	} else {
		s.ac = byte(ac)
	}
}

// Text returns the visible window of each row.
func (s *Sim) Text() []string {
	return []string{
		string(s.ddram[0:clcd.DisplayCols]),
		string(s.ddram[row1Base : row1Base+clcd.DisplayCols]),
	}
}

// AddressCounter returns the controller's current DDRAM address.
func (s *Sim) AddressCounter() byte {
	return s.ac
}

// DisplayOn reports whether the display is switched on.
func (s *Sim) DisplayOn() bool {
	return s.on
}

// Latches returns the number of enable falling edges seen, a proxy for "was
// any transfer attempted".
func (s *Sim) Latches() int {
	return s.latches
}

func (s *Sim) String() string {
	return fmt.Sprintf("CLCDSim::%s Rows: %d, Cols: %d",
		s.cfg.Mode, clcd.DisplayRows, clcd.DisplayCols)
}

// Halt blanks the simulated screen.
func (s *Sim) Halt() error {
	s.blank()
	s.on = false
	return nil
}

var _ dio.PinAccess = &Sim{}
