// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package diotest

import (
	"fmt"

	"github.com/greenbit-embedded/mcuhal/dio"
	"periph.io/x/conn/v3/gpio"
)

// OpKind discriminates recorded pin operations.
type OpKind uint8

const (
	OpSetDirection OpKind = iota
	OpSetLevel
	OpLevel
)

// Op is one recorded PinAccess call.
type Op struct {
	Kind  OpKind
	Port  dio.Port
	Pin   uint8
	Dir   dio.Direction
	Level gpio.Level
}

func (o Op) String() string {
	ref := dio.PinRef{Port: o.Port, Pin: o.Pin}
	switch o.Kind {
	case OpSetDirection:
		return fmt.Sprintf("dir %s=%s", ref, o.Dir)
	case OpSetLevel:
		return fmt.Sprintf("set %s=%s", ref, o.Level)
	case OpLevel:
		return fmt.Sprintf("get %s", ref)
	}
	return fmt.Sprintf("op(%d) %s", uint8(o.Kind), ref)
}

// Recorder is a dio.PinAccess that records every call in order. If Backend
// is set, calls are forwarded to it after recording; otherwise they succeed
// without side effects. A non-nil Err fails every call, for exercising the
// error propagation paths of a driver.
type Recorder struct {
	Backend dio.PinAccess
	Err     error
	Ops     []Op
}

// Reset discards the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// SetDirection implements dio.PinAccess.
func (r *Recorder) SetDirection(port dio.Port, pin uint8, dir dio.Direction) error {
	r.Ops = append(r.Ops, Op{Kind: OpSetDirection, Port: port, Pin: pin, Dir: dir})
	if r.Err != nil {
		return r.Err
	}
	if r.Backend != nil {
		return r.Backend.SetDirection(port, pin, dir)
	}
	return nil
}

// SetLevel implements dio.PinAccess.
func (r *Recorder) SetLevel(port dio.Port, pin uint8, level gpio.Level) error {
	r.Ops = append(r.Ops, Op{Kind: OpSetLevel, Port: port, Pin: pin, Level: level})
	if r.Err != nil {
		return r.Err
	}
	if r.Backend != nil {
		return r.Backend.SetLevel(port, pin, level)
	}
	return nil
}

// Level implements dio.PinAccess.
func (r *Recorder) Level(port dio.Port, pin uint8) (gpio.Level, error) {
	r.Ops = append(r.Ops, Op{Kind: OpLevel, Port: port, Pin: pin})
	if r.Err != nil {
		return gpio.Low, r.Err
	}
	if r.Backend != nil {
		return r.Backend.Level(port, pin)
	}
	return gpio.Low, nil
}

var _ dio.PinAccess = &Recorder{}
