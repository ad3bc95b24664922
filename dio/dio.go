// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dio models a microcontroller's digital I/O space as a small set of
// ports with eight pins each, behind a narrow capability interface.
//
// Drivers in this module consume PinAccess instead of touching hardware
// registers, so the same driver code runs against memory mapped ports, a
// GPIO character device (see Pins), or a simulator (see the clcdsim and
// diotest packages).
package dio

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Port identifies one of the device's I/O ports.
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD

	// PortCount is the number of valid ports.
	PortCount = 4

	// PinsPerPort is the number of pins on each port.
	PinsPerPort = 8
)

var (
	ErrInvalidPort = errors.New("dio: invalid port")
	ErrInvalidPin  = errors.New("dio: invalid pin")
)

func (p Port) String() string {
	if p >= PortCount {
		return fmt.Sprintf("PORT(%d)", uint8(p))
	}
	return "PORT" + string(rune('A'+p))
}

// Direction configures a pin as an input or an output.
type Direction uint8

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	switch d {
	case Input:
		return "In"
	case Output:
		return "Out"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// PinAccess is the capability set drivers use to reach pins. Levels follow
// the periph gpio conventions: gpio.Low and gpio.High.
//
// Implementations report errors for out of range ports or pins; drivers
// treat any error as fatal for the operation in flight and propagate it.
type PinAccess interface {
	// SetDirection configures the pin as an input or an output.
	SetDirection(port Port, pin uint8, dir Direction) error
	// SetLevel drives an output pin high or low.
	SetLevel(port Port, pin uint8, level gpio.Level) error
	// Level returns the pin's current level.
	Level(port Port, pin uint8) (gpio.Level, error)
}

// PinRef names a single pin by port and index. The zero value refers to
// PORTA pin 0.
type PinRef struct {
	Port Port
	Pin  uint8
}

// NewPinRef returns a validated pin reference.
func NewPinRef(port Port, pin uint8) (PinRef, error) {
	if port >= PortCount {
		return PinRef{}, fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	if pin >= PinsPerPort {
		return PinRef{}, fmt.Errorf("%w: %d", ErrInvalidPin, pin)
	}
	return PinRef{Port: port, Pin: pin}, nil
}

// Valid reports whether the reference is within the port/pin range.
func (r PinRef) Valid() bool {
	return r.Port < PortCount && r.Pin < PinsPerPort
}

func (r PinRef) String() string {
	if !r.Valid() {
		return fmt.Sprintf("P?(%d,%d)", uint8(r.Port), r.Pin)
	}
	return fmt.Sprintf("P%c%d", 'A'+rune(r.Port), r.Pin)
}

func checkRange(port Port, pin uint8) error {
	if port >= PortCount {
		return fmt.Errorf("%w: %d", ErrInvalidPort, port)
	}
	if pin >= PinsPerPort {
		return fmt.Errorf("%w: %s pin %d", ErrInvalidPin, port, pin)
	}
	return nil
}
