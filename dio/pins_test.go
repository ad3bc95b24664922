// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dio

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func testPins(t *testing.T) (*Pins, []*gpiotest.Pin) {
	t.Helper()
	raw := make([]*gpiotest.Pin, PinsPerPort)
	slots := make([]gpio.PinIO, PinsPerPort)
	for i := range raw {
		raw[i] = &gpiotest.Pin{N: "A" + string(rune('0'+i)), Num: i}
		slots[i] = raw[i]
	}
	p, err := NewPins(map[Port][]gpio.PinIO{PortA: slots})
	if err != nil {
		t.Fatal(err)
	}
	return p, raw
}

func TestPinsLevels(t *testing.T) {
	p, raw := testPins(t)
	if err := p.SetDirection(PortA, 2, Output); err != nil {
		t.Fatal(err)
	}
	if err := p.SetLevel(PortA, 2, gpio.High); err != nil {
		t.Fatal(err)
	}
	if raw[2].L != gpio.High {
		t.Error("pin not driven high")
	}
	lvl, err := p.Level(PortA, 2)
	if err != nil {
		t.Fatal(err)
	}
	if lvl != gpio.High {
		t.Error("read back low")
	}
	if err := p.SetDirection(PortA, 3, Input); err != nil {
		t.Fatal(err)
	}
}

func TestPinsRejectsBadRefs(t *testing.T) {
	p, _ := testPins(t)
	if err := p.SetLevel(PortB, 0, gpio.High); err == nil {
		t.Error("unmapped port accepted")
	}
	if err := p.SetLevel(PortA, 8, gpio.High); err == nil {
		t.Error("pin 8 accepted")
	}
	if err := p.SetLevel(4, 0, gpio.High); err == nil {
		t.Error("port 4 accepted")
	}
	if _, err := p.Level(PortB, 1); err == nil {
		t.Error("unmapped read accepted")
	}
}

func TestNewPinsValidation(t *testing.T) {
	if _, err := NewPins(map[Port][]gpio.PinIO{4: nil}); err == nil {
		t.Error("port 4 accepted")
	}
	nine := make([]gpio.PinIO, 9)
	if _, err := NewPins(map[Port][]gpio.PinIO{PortA: nine}); err == nil {
		t.Error("9 pins accepted")
	}
}

func TestPinsSparseSlots(t *testing.T) {
	slots := make([]gpio.PinIO, 4)
	slots[1] = &gpiotest.Pin{N: "only", Num: 1}
	p, err := NewPins(map[Port][]gpio.PinIO{PortB: slots})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.SetLevel(PortB, 1, gpio.High); err != nil {
		t.Error(err)
	}
	if err := p.SetLevel(PortB, 0, gpio.High); err == nil {
		t.Error("nil slot accepted")
	}
	if err := p.SetLevel(PortB, 5, gpio.High); err == nil {
		t.Error("slot past the slice accepted")
	}
}
