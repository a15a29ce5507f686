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

package order

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/gangsheet"
)

// LabelText extracts the sticker text from a product name of the form
// "Product - TEXT / Variant".  Names without " - " are used as a whole.
func LabelText(name string) string {
	text := name
	if _, after, ok := strings.Cut(name, " - "); ok {
		text, _, _ = strings.Cut(after, " / ")
	}
	return norm.NFC.String(strings.TrimSpace(text))
}

var fold = cases.Fold()

// Skip reports whether a line item should not be printed.  This is the
// case if the text is empty, or if the product name contains one of the
// patterns.  Patterns are matched ignoring case.
func Skip(name, text string, patterns []string) bool {
	if strings.TrimSpace(text) == "" {
		return true
	}
	folded := fold.String(name)
	for _, pat := range patterns {
		if pat != "" && strings.Contains(folded, fold.String(pat)) {
			return true
		}
	}
	return false
}

// Classify chooses the sticker category for a text:
//   - texts containing a regional indicator symbol are [gangsheet.Flags],
//   - single characters which are neither letters nor digits are
//     [gangsheet.Symbols],
//   - texts of at most two characters, consisting of letters and digits
//     apart from spaces, are [gangsheet.Initials],
//   - everything else is [gangsheet.Words].
func Classify(text string) gangsheet.Category {
	text = strings.TrimSpace(text)

	for _, r := range text {
		if r >= 0x1F1E6 && r <= 0x1F1FF {
			return gangsheet.Flags
		}
	}

	n := utf8.RuneCountInString(text)
	if n == 1 && !isAlnum(text) {
		return gangsheet.Symbols
	}
	if n <= 2 && isAlnum(strings.ReplaceAll(text, " ", "")) {
		return gangsheet.Initials
	}
	return gangsheet.Words
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// GridSquares returns the width of the sticker cell for a text, in grid
// squares: one for up to three characters, two for up to ten characters,
// and three for longer texts.
func GridSquares(text string) int {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	switch {
	case n <= 3:
		return 1
	case n <= 10:
		return 2
	default:
		return 3
	}
}

// Options control the conversion of line items into sticker requests.
type Options struct {
	// SkipPatterns lists product name fragments of items which are not
	// printed.
	SkipPatterns []string

	// Sizes lists the known categories.  Items in other categories use
	// the default category.  If Sizes is nil, all categories are
	// accepted.
	Sizes map[gangsheet.Category]gangsheet.Size

	// Default is the category used for unknown categories.
	Default gangsheet.Category
}

// ErrNoDefault is returned by [Resolve] if the default category has no
// configured size.
var ErrNoDefault = errors.New("default category has no size")

// Resolve converts line items into sticker requests, in order.
// The second return value lists the skipped lines.
func Resolve(lines []Line, opt *Options) ([]gangsheet.Item, []Line, error) {
	if opt == nil {
		opt = &Options{}
	}
	if opt.Sizes != nil {
		if _, ok := opt.Sizes[opt.Default]; !ok {
			return nil, nil, fmt.Errorf("%q: %w", opt.Default, ErrNoDefault)
		}
	}

	var items []gangsheet.Item
	var skipped []Line
	for _, line := range lines {
		text := LabelText(line.Name)
		if Skip(line.Name, text, opt.SkipPatterns) {
			skipped = append(skipped, line)
			continue
		}

		cat := Classify(text)
		if opt.Sizes != nil {
			if _, ok := opt.Sizes[cat]; !ok {
				cat = opt.Default
			}
		}
		items = append(items, gangsheet.Item{
			Text:     text,
			Category: cat,
			Quantity: line.Quantity,
			Squares:  GridSquares(text),
		})
	}
	return items, skipped, nil
}
