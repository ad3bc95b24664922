// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mcuhal is a container for the microcontroller peripheral
// abstraction layer: the dio digital I/O capability layer and the clcd
// character LCD driver built on top of it.
//
// Import the individual packages, not this one.
package mcuhal
