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

package gofont

import "testing"

func TestAllFontsLoad(t *testing.T) {
	for _, f := range All {
		F, err := f.New(nil)
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if !F.HasGlyph('A') {
			t.Errorf("%s: no glyph for 'A'", f)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, f := range All {
		g, ok := Lookup(f.String())
		if !ok || g != f {
			t.Errorf("Lookup(%q) = %d, %t", f.String(), g, ok)
		}
	}
	if _, ok := Lookup("GoBold"); !ok {
		t.Error("lookup is case sensitive")
	}
	if _, ok := Lookup("builtin:arial"); ok {
		t.Error("unknown font found")
	}
}
