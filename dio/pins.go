// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dio

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Pins is a PinAccess backed by periph gpio pins. Each port maps to a slice
// of up to eight gpio.PinIO, indexed by pin number; nil entries are
// unconnected. Any pin source works: a host GPIO chip via gpioreg, an I²C
// expander, or gpiotest pins in unit tests.
type Pins struct {
	ports map[Port][]gpio.PinIO
}

// NewPins builds a PinAccess from a port to pin-slice map.
func NewPins(ports map[Port][]gpio.PinIO) (*Pins, error) {
	for port, pins := range ports {
		if port >= PortCount {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPort, port)
		}
		if len(pins) > PinsPerPort {
			return nil, fmt.Errorf("%w: %s has %d pins", ErrInvalidPin, port, len(pins))
		}
	}
	return &Pins{ports: ports}, nil
}

func (p *Pins) pin(port Port, pin uint8) (gpio.PinIO, error) {
	if err := checkRange(port, pin); err != nil {
		return nil, err
	}
	pins := p.ports[port]
	if int(pin) >= len(pins) || pins[pin] == nil {
		return nil, fmt.Errorf("%w: %s pin %d is not connected", ErrInvalidPin, port, pin)
	}
	return pins[pin], nil
}

// SetDirection implements PinAccess. Outputs start low.
func (p *Pins) SetDirection(port Port, pin uint8, dir Direction) error {
	io, err := p.pin(port, pin)
	if err != nil {
		return err
	}
	if dir == Input {
		return io.In(gpio.PullNoChange, gpio.NoEdge)
	}
	return io.Out(gpio.Low)
}

// SetLevel implements PinAccess.
func (p *Pins) SetLevel(port Port, pin uint8, level gpio.Level) error {
	io, err := p.pin(port, pin)
	if err != nil {
		return err
	}
	return io.Out(level)
}

// Level implements PinAccess.
func (p *Pins) Level(port Port, pin uint8) (gpio.Level, error) {
	io, err := p.pin(port, pin)
	if err != nil {
		return gpio.Low, err
	}
	return io.Read(), nil
}

func (p *Pins) String() string {
	return fmt.Sprintf("dio.Pins{%d ports}", len(p.ports))
}

var _ PinAccess = &Pins{}
