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

// Package gofont provides the Go font family as built-in fonts for
// sticker artwork.
//
// The fonts can be selected in the configuration file using names like
// "builtin:gobold".
package gofont

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/gangsheet/outline"
)

// Prefix marks font names which refer to a built-in font.
const Prefix = "builtin:"

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular    Font = iota // Go Regular
	Bold                   // Go Semi Bold
	BoldItalic             // Go Semi Bold Italic
	Italic                 // Go Italic
	Medium                 // Go Medium Regular
	Mono                   // Go Mono Regular
	MonoBold               // Go Mono Semi Bold
)

// New returns the font, prepared for outline extraction.
func (f Font) New(opt *outline.FontOptions) (*outline.Font, error) {
	data, ok := ttf[f]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown font %d", f)
	}

	F, err := outline.ParseFont(data, opt)
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	return F, nil
}

func (f Font) String() string {
	for name, g := range names {
		if g == f {
			return Prefix + name
		}
	}
	return fmt.Sprintf("gofont.Font(%d)", int(f))
}

// Lookup finds a built-in font by name.  The name may optionally carry
// the "builtin:" prefix, and case is ignored.
func Lookup(name string) (Font, bool) {
	name = strings.ToLower(strings.TrimPrefix(name, Prefix))
	f, ok := names[name]
	return f, ok
}

// IsBuiltin reports whether name refers to a built-in font.
func IsBuiltin(name string) bool {
	return strings.HasPrefix(name, Prefix)
}

var ttf = map[Font][]byte{
	Regular:    goregular.TTF,
	Bold:       gobold.TTF,
	BoldItalic: gobolditalic.TTF,
	Italic:     goitalic.TTF,
	Medium:     gomedium.TTF,
	Mono:       gomono.TTF,
	MonoBold:   gomonobold.TTF,
}

var names = map[string]Font{
	"goregular":    Regular,
	"gobold":       Bold,
	"gobolditalic": BoldItalic,
	"goitalic":     Italic,
	"gomedium":     Medium,
	"gomono":       Mono,
	"gomonobold":   MonoBold,
}

// All contains all fonts available in this package.
var All = []Font{Regular, Bold, BoldItalic, Italic, Medium, Mono, MonoBold}
