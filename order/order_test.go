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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/gangsheet"
)

const export = "\ufeffName,Email,Lineitem quantity,Lineitem name,Lineitem price\n" +
	"#1001,a@example.com,3,Custom Text - AB / Black,4.50\n" +
	"#1001,,1,Priming Wipe,1.00\n" +
	"#1002,b@example.com,,\"Custom Text - Hello, World / White\",6.00\n" +
	"#1003,c@example.com,2.0,Flag - 🇩🇪 / Glossy,3.00\n"

func TestReadCSV(t *testing.T) {
	lines, err := ReadCSV(strings.NewReader(export), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{
		{Name: "Custom Text - AB / Black", Quantity: 3, Row: 2},
		{Name: "Priming Wipe", Quantity: 1, Row: 3},
		{Name: "Custom Text - Hello, World / White", Quantity: 1, Row: 4},
		{Name: "Flag - 🇩🇪 / Glossy", Quantity: 2, Row: 5},
	}
	if d := cmp.Diff(want, lines); d != "" {
		t.Errorf("lines (-want +got):\n%s", d)
	}
}

func TestReadCSVColumns(t *testing.T) {
	in := "Item,Count\nStar - ★,4\n"
	lines, err := ReadCSV(strings.NewReader(in), &Columns{Name: "Item", Quantity: "Count"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{{Name: "Star - ★", Quantity: 4, Row: 2}}
	if d := cmp.Diff(want, lines); d != "" {
		t.Errorf("lines (-want +got):\n%s", d)
	}

	// a missing quantity column means one copy each
	lines, err = ReadCSV(strings.NewReader("Lineitem name\nA\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Errorf("unexpected lines %v", lines)
	}
}

func TestReadCSVErrors(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Name,Qty\nx,1\n"), nil)
	if !errors.Is(err, ErrNoColumn) {
		t.Errorf("missing column: got %v", err)
	}
	_, err = ReadCSV(strings.NewReader(""), nil)
	if !errors.Is(err, ErrNoColumn) {
		t.Errorf("empty input: got %v", err)
	}

	in := "Lineitem name,Lineitem quantity\nA,1\nB,many\n"
	_, err = ReadCSV(strings.NewReader(in), nil)
	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("invalid quantity: got %v", err)
	}
	for _, bad := range []string{"-1", "1.5", "1e12", "10001", "Inf", "NaN"} {
		in := "Lineitem name,Lineitem quantity\nA," + bad + "\n"
		if _, err := ReadCSV(strings.NewReader(in), nil); err == nil {
			t.Errorf("quantity %q accepted", bad)
		}
	}
}

func TestQuantityLimit(t *testing.T) {
	in := "Lineitem name,Lineitem quantity\nA,2\nB,1e12\n"
	_, err := ReadCSV(strings.NewReader(in), nil)
	if err == nil {
		t.Fatal("huge quantity accepted")
	}
	msg := err.Error()
	if !strings.Contains(msg, "line 3") || !strings.Contains(msg, "limit") {
		t.Errorf("unexpected error %q", msg)
	}

	in = "Lineitem name,Lineitem quantity\nA,10000\nB,2.0\n"
	lines, err := ReadCSV(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	if lines[0].Quantity != MaxQuantity || lines[1].Quantity != 2 {
		t.Errorf("got quantities %d and %d", lines[0].Quantity, lines[1].Quantity)
	}
}

func TestLabelText(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Custom Text - AB / Black", "AB"},
		{"Custom Text - AB", "AB"},
		{"Custom Text - A - B / Black / Large", "A - B"},
		{"Plain", "Plain"},
		{"  Spaces  ", "Spaces"},
		{"Name - Café / Red", "Café"},
		{"Text -  / Red", ""},
	}
	for _, c := range cases {
		if got := LabelText(c.in); got != c.want {
			t.Errorf("LabelText(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSkip(t *testing.T) {
	patterns := []string{"Priming Wipe"}
	cases := []struct {
		name, text string
		want       bool
	}{
		{"Custom Text - AB / Black", "AB", false},
		{"Priming Wipe", "Priming Wipe", true},
		{"Bundle - PRIMING WIPE / x", "PRIMING WIPE", true},
		{"Custom Text -  / Black", "", true},
		{"Custom Text - x", "  ", true},
	}
	for _, c := range cases {
		if got := Skip(c.name, c.text, patterns); got != c.want {
			t.Errorf("Skip(%q, %q) = %t, want %t", c.name, c.text, got, c.want)
		}
	}
	if Skip("Priming Wipe", "Priming Wipe", nil) {
		t.Error("item skipped without patterns")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		text string
		want gangsheet.Category
	}{
		{"🇩🇪", gangsheet.Flags},
		{"Go 🇬🇧", gangsheet.Flags},
		{"★", gangsheet.Symbols},
		{"&", gangsheet.Symbols},
		{"A", gangsheet.Initials},
		{"AB", gangsheet.Initials},
		{"7", gangsheet.Initials},
		{"A B", gangsheet.Words},
		{"A.", gangsheet.Words},
		{"ÄÖ", gangsheet.Initials},
		{"ABC", gangsheet.Words},
		{"12.05.2025", gangsheet.Words},
		{"Hello", gangsheet.Words},
	}
	for _, c := range cases {
		if got := Classify(c.text); got != c.want {
			t.Errorf("Classify(%q) = %s, want %s", c.text, got, c.want)
		}
	}
}

func TestGridSquares(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 1},
		{"AB", 1},
		{"ABC", 1},
		{"ABCD", 2},
		{" ABC ", 1},
		{"Grüße!", 2},
		{"0123456789", 2},
		{"Hello World", 3},
	}
	for _, c := range cases {
		if got := GridSquares(c.text); got != c.want {
			t.Errorf("GridSquares(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestResolve(t *testing.T) {
	lines, err := ReadCSV(strings.NewReader(export), nil)
	if err != nil {
		t.Fatal(err)
	}
	opt := &Options{
		SkipPatterns: []string{"priming wipe"},
		Sizes: map[gangsheet.Category]gangsheet.Size{
			gangsheet.Initials: {FontSize: 80},
			gangsheet.Words:    {FontSize: 30},
		},
		Default: gangsheet.Words,
	}
	items, skipped, err := Resolve(lines, opt)
	if err != nil {
		t.Fatal(err)
	}
	want := []gangsheet.Item{
		{Text: "AB", Category: gangsheet.Initials, Quantity: 3, Squares: 1},
		{Text: "Hello, World", Category: gangsheet.Words, Quantity: 1, Squares: 3},
		{Text: "🇩🇪", Category: gangsheet.Words, Quantity: 2, Squares: 1},
	}
	if d := cmp.Diff(want, items); d != "" {
		t.Errorf("items (-want +got):\n%s", d)
	}
	if len(skipped) != 1 || skipped[0].Row != 3 {
		t.Errorf("unexpected skipped lines %v", skipped)
	}

	opt.Default = gangsheet.Symbols
	if _, _, err := Resolve(lines, opt); !errors.Is(err, ErrNoDefault) {
		t.Errorf("missing default: got %v", err)
	}

	items, _, err = Resolve(lines, &Options{SkipPatterns: []string{"Priming Wipe"}})
	if err != nil {
		t.Fatal(err)
	}
	if items[2].Category != gangsheet.Flags {
		t.Errorf("got category %s, want Flags", items[2].Category)
	}
}
