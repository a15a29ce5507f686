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

package buildinfo

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	cases := []struct {
		info Info
		want string
	}{
		{Info{}, ""},
		{Info{Version: "v1.2.3", Revision: "0123456789abcdef"}, "v1.2.3"},
		{Info{Revision: "0123456789abcdef"}, "01234567"},
		{Info{Revision: "0123456789abcdef", Dirty: true}, "01234567+dirty"},
		{Info{Revision: "abc"}, "abc"},
	}
	for _, c := range cases {
		if got := c.info.String(); got != c.want {
			t.Errorf("%+v: got %q, want %q", c.info, got, c.want)
		}
	}
}

func TestShort(t *testing.T) {
	if s := Short("gangsheet"); !strings.HasPrefix(s, "gangsheet") {
		t.Errorf("unexpected version string %q", s)
	}
}
