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

package color

import (
	"bytes"
	stdcolor "image/color"
	"testing"
)

func TestOperators(t *testing.T) {
	cases := []struct {
		col          Color
		fill, stroke string
	}{
		{Black, "0 g\n", "0 G\n"},
		{Gray(0.5), ".5 g\n", ".5 G\n"},
		{RGB(1, 0, 0.25), "1 0 .25 rg\n", "1 0 .25 RG\n"},
		{CMYK(0, 0.09, 0.09, 0.87), "0 .09 .09 .87 k\n", "0 .09 .09 .87 K\n"},
	}
	for _, test := range cases {
		buf := &bytes.Buffer{}
		if err := test.col.SetFill(buf); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != test.fill {
			t.Errorf("fill: got %q, want %q", got, test.fill)
		}
		buf.Reset()
		if err := test.col.SetStroke(buf); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != test.stroke {
			t.Errorf("stroke: got %q, want %q", got, test.stroke)
		}
	}
}

func TestRGBA(t *testing.T) {
	cases := []struct {
		col  Color
		want stdcolor.NRGBA
	}{
		{CMYK(0, 0, 0, 0), stdcolor.NRGBA{255, 255, 255, 255}},
		{CMYK(0, 1, 0, 0), stdcolor.NRGBA{255, 0, 255, 255}},
		{CMYK(0, 0, 0, 1), stdcolor.NRGBA{0, 0, 0, 255}},
		{Gray(1), stdcolor.NRGBA{255, 255, 255, 255}},
		{RGB(2, -1, 0), stdcolor.NRGBA{255, 0, 0, 255}},
	}
	for _, test := range cases {
		if got := test.col.RGBA(); got != test.want {
			t.Errorf("%v: got %v, want %v", test.col, got, test.want)
		}
	}
}
