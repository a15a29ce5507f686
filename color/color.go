// seehuhn.de/go/gangsheet - print-ready sticker sheets
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package color implements the device colour spaces used on sticker sheets.
package color

import (
	"fmt"
	"io"
	stdcolor "image/color"

	"seehuhn.de/go/gangsheet/internal/float"
)

// Color is a colour in one of the PDF device colour spaces.
type Color interface {
	// SetStroke writes the content stream operator which selects the
	// colour for stroking operations.
	SetStroke(w io.Writer) error

	// SetFill writes the content stream operator which selects the colour
	// for filling operations.
	SetFill(w io.Writer) error

	// RGBA converts the colour to an approximate screen colour, for
	// previews.
	RGBA() stdcolor.NRGBA
}

type gray float64

// Gray returns a color in the /DeviceGray color space.
// The value must be in the range from 0 (black) to 1 (white).
func Gray(g float64) Color {
	return gray(g)
}

func (c gray) SetStroke(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(float64(c), 3), "G")
	return err
}

func (c gray) SetFill(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(float64(c), 3), "g")
	return err
}

func (c gray) RGBA() stdcolor.NRGBA {
	v := to8(float64(c))
	return stdcolor.NRGBA{R: v, G: v, B: v, A: 255}
}

// Black is black in the /DeviceGray color space.
var Black = gray(0)

type rgb struct {
	R, G, B float64
}

// RGB returns a color in the /DeviceRGB color space.
// Each component must be in the range [0, 1].
func RGB(r, g, b float64) Color {
	return rgb{r, g, b}
}

func (c rgb) SetStroke(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(c.R, 3), float.Format(c.G, 3),
		float.Format(c.B, 3), "RG")
	return err
}

func (c rgb) SetFill(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(c.R, 3), float.Format(c.G, 3),
		float.Format(c.B, 3), "rg")
	return err
}

func (c rgb) RGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

type cmyk struct {
	C, M, Y, K float64
}

// CMYK returns a color in the /DeviceCMYK color space.
// Each component must be in the range [0, 1].
func CMYK(c, m, y, k float64) Color {
	return cmyk{c, m, y, k}
}

func (c cmyk) SetStroke(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(c.C, 3), float.Format(c.M, 3),
		float.Format(c.Y, 3), float.Format(c.K, 3), "K")
	return err
}

func (c cmyk) SetFill(w io.Writer) error {
	_, err := fmt.Fprintln(w, float.Format(c.C, 3), float.Format(c.M, 3),
		float.Format(c.Y, 3), float.Format(c.K, 3), "k")
	return err
}

// RGBA uses the naive conversion formula without any colour management.
func (c cmyk) RGBA() stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: to8((1 - c.C) * (1 - c.K)),
		G: to8((1 - c.M) * (1 - c.K)),
		B: to8((1 - c.Y) * (1 - c.K)),
		A: 255,
	}
}

func to8(x float64) uint8 {
	x = min(max(x, 0), 1)
	return uint8(x*255 + 0.5)
}
