// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clcd_test

import (
	"log"
	"os"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/greenbit-embedded/mcuhal/clcd"
	"github.com/greenbit-embedded/mcuhal/clcdsim"
	"github.com/greenbit-embedded/mcuhal/dio"
)

// This example drives a 16x2 module wired in 4-bit mode to host GPIOs. The
// host pins are mapped into one logical port: data on pins 0-3, enable on 4,
// RS on 5, RW on 6.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	names := []string{"GPIO26", "GPIO19", "GPIO13", "GPIO6", "GPIO5", "GPIO11", "GPIO9"}
	slots := make([]gpio.PinIO, len(names))
	for i, name := range names {
		if slots[i] = gpioreg.ByName(name); slots[i] == nil {
			log.Fatalf("no pin named %s", name)
		}
	}
	pins, err := dio.NewPins(map[dio.Port][]gpio.PinIO{dio.PortA: slots})
	if err != nil {
		log.Fatal(err)
	}

	cfg := &clcd.Config{
		Mode: clcd.FourBit,
		Data: []dio.PinRef{
			{Port: dio.PortA, Pin: 3},
			{Port: dio.PortA, Pin: 2},
			{Port: dio.PortA, Pin: 1},
			{Port: dio.PortA, Pin: 0},
		},
		RS:     dio.PinRef{Port: dio.PortA, Pin: 5},
		RW:     dio.PinRef{Port: dio.PortA, Pin: 6},
		Enable: dio.PinRef{Port: dio.PortA, Pin: 4},
	}
	lcd, err := clcd.New(pins, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := lcd.Init(); err != nil {
		log.Fatal(err)
	}
	_ = lcd.SendString("Temp:")
	_ = lcd.SendNumber(23.517)
	_ = lcd.GoToXYPos(0, 1)
	_ = lcd.SendIntegerNumber(-42)
	_ = lcd.Halt()
}

// The same driver code runs against the pin level simulator, which is handy
// while developing display output on a machine with no display attached.
func Example_simulator() {
	cfg := &clcd.Config{
		Mode: clcd.FourBit,
		Data: []dio.PinRef{
			{Port: dio.PortA, Pin: 3},
			{Port: dio.PortA, Pin: 2},
			{Port: dio.PortA, Pin: 1},
			{Port: dio.PortA, Pin: 0},
		},
		RS:     dio.PinRef{Port: dio.PortA, Pin: 5},
		RW:     dio.PinRef{Port: dio.PortA, Pin: 6},
		Enable: dio.PinRef{Port: dio.PortA, Pin: 4},
	}
	sim, err := clcdsim.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	lcd, err := clcd.New(sim, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := lcd.Init(); err != nil {
		log.Fatal(err)
	}
	_ = lcd.SendString("Hello")
	_ = lcd.GoToXYPos(0, 1)
	_ = lcd.SendString("World")
	_ = sim.Render(os.Stdout)
}
