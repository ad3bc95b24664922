// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package diotest provides dio.PinAccess implementations for testing drivers
// without hardware, following the conventions of periph's gpiotest and
// i2ctest packages.
package diotest

import (
	"github.com/greenbit-embedded/mcuhal/dio"
	"periph.io/x/conn/v3/gpio"
)

// Mem is a dio.PinAccess over shadow registers: a direction register, an
// output register, and an input register per port, the classic DDRx/PORTx/
// PINx layout. Reading an output pin returns the driven level; reading an
// input pin returns whatever the test applied with SetInput.
type Mem struct {
	ddr [dio.PortCount]byte
	out [dio.PortCount]byte
	in  [dio.PortCount]byte
}

// NewMem returns a register backend with every pin as a low input.
func NewMem() *Mem {
	return &Mem{}
}

func check(port dio.Port, pin uint8) error {
	_, err := dio.NewPinRef(port, pin)
	return err
}

// SetDirection implements dio.PinAccess.
func (m *Mem) SetDirection(port dio.Port, pin uint8, dir dio.Direction) error {
	if err := check(port, pin); err != nil {
		return err
	}
	if dir == dio.Output {
		m.ddr[port] |= 1 << pin
	} else {
		m.ddr[port] &^= 1 << pin
	}
	return nil
}

// SetLevel implements dio.PinAccess.
func (m *Mem) SetLevel(port dio.Port, pin uint8, level gpio.Level) error {
	if err := check(port, pin); err != nil {
		return err
	}
	if level {
		m.out[port] |= 1 << pin
	} else {
		m.out[port] &^= 1 << pin
	}
	return nil
}

// Level implements dio.PinAccess.
func (m *Mem) Level(port dio.Port, pin uint8) (gpio.Level, error) {
	if err := check(port, pin); err != nil {
		return gpio.Low, err
	}
	if m.ddr[port]&(1<<pin) != 0 {
		return m.out[port]&(1<<pin) != 0, nil
	}
	return m.in[port]&(1<<pin) != 0, nil
}

// SetInput applies an external level to an input pin.
func (m *Mem) SetInput(port dio.Port, pin uint8, level gpio.Level) error {
	if err := check(port, pin); err != nil {
		return err
	}
	if level {
		m.in[port] |= 1 << pin
	} else {
		m.in[port] &^= 1 << pin
	}
	return nil
}

// Direction returns the configured direction of a pin.
func (m *Mem) Direction(port dio.Port, pin uint8) (dio.Direction, error) {
	if err := check(port, pin); err != nil {
		return dio.Input, err
	}
	if m.ddr[port]&(1<<pin) != 0 {
		return dio.Output, nil
	}
	return dio.Input, nil
}

var _ dio.PinAccess = &Mem{}
