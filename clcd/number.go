// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clcd

import (
	"fmt"
	"math"
)

// fractionDigits is the fixed precision of SendNumber.
const fractionDigits = 3

// SendIntegerNumber writes number in decimal, most significant digit first.
// Zero renders as "0"; a negative number renders one leading minus.
func (d *Dev) SendIntegerNumber(number int32) error {
	n := int64(number)
	if n < 0 {
		if err := d.SendChar('-'); err != nil {
			return err
		}
		n = -n
	}
	return d.sendUint(uint64(n))
}

// SendNumber writes a floating point number with exactly three fractional
// digits. The fraction is truncated, not rounded.
func (d *Dev) SendNumber(number float64) error {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return fmt.Errorf("%s: cannot display %v", packageName, number)
	}
	// Signbit catches -0.x, where the integer part alone would lose the
	// sign.
	if math.Signbit(number) {
		if err := d.SendChar('-'); err != nil {
			return err
		}
		number = -number
	}
	whole, frac := math.Modf(number)
	if err := d.sendUint(uint64(whole)); err != nil {
		return err
	}
	if err := d.SendChar('.'); err != nil {
		return err
	}
	for i := 0; i < fractionDigits; i++ {
		frac *= 10
		digit := byte(frac)
		frac -= float64(digit)
		if err := d.SendChar('0' + digit); err != nil {
			return err
		}
	}
	return nil
}

// sendUint emits the decimal digits of n most significant first.
func (d *Dev) sendUint(n uint64) error {
	div := uint64(1)
	for m := n; m >= 10; m /= 10 {
		div *= 10
	}
	for ; div > 0; div /= 10 {
		if err := d.SendChar(byte('0' + n/div%10)); err != nil {
			return err
		}
	}
	return nil
}
