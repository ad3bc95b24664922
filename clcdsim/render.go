// Copyright 2026 The MCUHal Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clcdsim

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"golang.org/x/image/font/basicfont"

	"github.com/greenbit-embedded/mcuhal/clcd"
)

// The classic STN module look: dark bezel, green backlight, near black ink.
var (
	bezelColor = color.NRGBA{R: 0x20, G: 0x24, B: 0x20, A: 0xff}
	glassColor = color.NRGBA{R: 0x9a, G: 0xcd, B: 0x32, A: 0xff}
	inkColor   = color.NRGBA{R: 0x10, G: 0x20, B: 0x10, A: 0xff}
)

// Render writes an ANSI rendering of the screen, one bordered cell row per
// display row. A nil writer renders to a colorable stdout.
//
// Useful while developing display output on a machine with no display
// attached.
func (s *Sim) Render(w io.Writer) error {
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	pal := *ansi256.Default
	block := pal.Block(bezelColor)

	var buf bytes.Buffer
	border := strings.Repeat(block, clcd.DisplayCols+2)
	buf.WriteString(border)
	buf.WriteString("\033[0m\n")
	for _, row := range s.Text() {
		if !s.on {
			row = strings.Repeat(" ", clcd.DisplayCols)
		}
		buf.WriteString(block)
		buf.WriteString("\033[0m")
		buf.WriteString(row)
		buf.WriteString(block)
		buf.WriteString("\033[0m\n")
	}
	buf.WriteString(border)
	buf.WriteString("\033[0m\n")
	_, err := buf.WriteTo(w)
	return err
}

// Image renders the screen to an image, one basicfont glyph per cell.
func (s *Sim) Image() image.Image {
	face := basicfont.Face7x13
	const pad = 8
	cellW := face.Advance + 2
	cellH := face.Height + 2

	dc := gg.NewContext(clcd.DisplayCols*cellW+2*pad, clcd.DisplayRows*cellH+2*pad)
	dc.SetColor(bezelColor)
	dc.Clear()
	dc.SetColor(glassColor)
	dc.DrawRectangle(pad/2, pad/2,
		float64(clcd.DisplayCols*cellW+pad), float64(clcd.DisplayRows*cellH+pad))
	dc.Fill()

	if !s.on {
		return dc.Image()
	}
	dc.SetColor(inkColor)
	dc.SetFontFace(face)
	for y, row := range s.Text() {
		baseline := pad + y*cellH + face.Ascent
		for x := 0; x < len(row); x++ {
			dc.DrawString(string(row[x]), float64(pad+x*cellW), float64(baseline))
		}
	}
	return dc.Image()
}
