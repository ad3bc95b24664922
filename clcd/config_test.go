// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clcd

import (
	"testing"

	"github.com/greenbit-embedded/mcuhal/dio"
	"github.com/greenbit-embedded/mcuhal/dio/diotest"
)

func TestNewRejectsBadConfigs(t *testing.T) {
	pins := diotest.NewMem()
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero mode", func(c *Config) { c.Mode = 0 }},
		{"bogus mode", func(c *Config) { c.Mode = 7 }},
		{"too few data lines", func(c *Config) { c.Data = c.Data[:3] }},
		{"too many data lines", func(c *Config) {
			c.Data = append(c.Data, dio.PinRef{Port: dio.PortB, Pin: 0})
		}},
		{"duplicate pin", func(c *Config) { c.RS = c.Data[0] }},
		{"pin out of range", func(c *Config) { c.Data[0].Pin = 9 }},
		{"port out of range", func(c *Config) { c.Enable.Port = 4 }},
		{"duplicate backlight", func(c *Config) {
			bl := c.Enable
			c.Backlight = &bl
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := fourBitConfig()
			tc.mutate(cfg)
			if _, err := New(pins, cfg); err == nil {
				t.Error("New accepted a bad config")
			}
		})
	}
}

func TestNewRejectsNilArguments(t *testing.T) {
	if _, err := New(nil, fourBitConfig()); err == nil {
		t.Error("New accepted nil pin access")
	}
	if _, err := New(diotest.NewMem(), nil); err == nil {
		t.Error("New accepted nil config")
	}
}

func TestNewAcceptsBothModes(t *testing.T) {
	pins := diotest.NewMem()
	for _, cfg := range []*Config{fourBitConfig(), eightBitConfig()} {
		dev, err := New(pins, cfg)
		if err != nil {
			t.Fatalf("%s: %v", cfg.Mode, err)
		}
		if got := dev.String(); got == "" {
			t.Error("empty String()")
		}
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{
		FourBit:  "4-bit",
		EightBit: "8-bit",
		Mode(3):  "Mode(3)",
	} {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", uint8(mode), got, want)
		}
	}
}
