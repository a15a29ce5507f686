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

package pdf

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func format(obj Object) string {
	buf := &bytes.Buffer{}
	if err := obj.PDF(buf); err != nil {
		panic(err)
	}
	return buf.String()
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   Object
		want string
	}{
		{Bool(true), "true"},
		{Integer(-7), "-7"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{Name("Type"), "/Type"},
		{Name("A B#"), "/A#20B#23"},
		{Name("x/y"), "/x#2fy"},
		{String("hello"), "(hello)"},
		{String("a(b)c"), "(a(b)c)"},
		{String("a)b"), `(a\)b)`},
		{String("\x00\x01\x02"), "<000102>"},
		{Array{Integer(1), nil, Name("X")}, "[1 null /X]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{Reference{Number: 12}, "12 0 R"},
		{Rectangle{URx: 10, URy: 20}, "[0. 0. 10. 20.]"},
	}
	for _, test := range cases {
		if got := format(test.in); got != test.want {
			t.Errorf("%#v: got %q, want %q", test.in, got, test.want)
		}
	}
}

func TestTextString(t *testing.T) {
	if s := TextString("Order 17"); string(s) != "Order 17" {
		t.Errorf("ASCII string changed to %q", s)
	}
	s := TextString("Grüße")
	if !bytes.HasPrefix(s, []byte{0xFE, 0xFF}) {
		t.Fatalf("missing byte order mark in %x", []byte(s))
	}
	if len(s) != 2+2*5 {
		t.Errorf("unexpected length %d", len(s))
	}
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("", 90*60)
	d := Date(time.Date(2025, 3, 9, 14, 5, 6, 0, loc))
	if want := "D:20250309140506+01'30'"; string(d) != want {
		t.Errorf("got %q, want %q", d, want)
	}
}

var objRegexp = regexp.MustCompile(`^(\d+) 0 obj`)

// checkXRef verifies that all entries in the cross-reference table point
// to the start of the corresponding object.
func checkXRef(t *testing.T, data []byte) {
	t.Helper()
	s := string(data)
	k := strings.LastIndex(s, "startxref\n")
	if k < 0 {
		t.Fatal("startxref not found")
	}
	var xrefPos int
	if _, err := fmt.Sscanf(s[k:], "startxref\n%d", &xrefPos); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(s[xrefPos:], "xref\n0 ") {
		t.Fatalf("no xref table at %d", xrefPos)
	}
	lines := strings.Split(s[xrefPos:], "\n")
	n, err := strconv.Atoi(strings.Fields(lines[1])[1])
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < n; i++ {
		f := strings.Fields(lines[2+i])
		if f[2] != "n" {
			continue
		}
		pos, _ := strconv.Atoi(f[0])
		m := objRegexp.FindStringSubmatch(s[pos:])
		if m == nil || m[1] != strconv.Itoa(i) {
			t.Errorf("xref entry %d points to %q", i, s[pos:min(len(s), pos+10)])
		}
	}
}

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w, err := NewWriter(buf, V1_7)
	if err != nil {
		t.Fatal(err)
	}

	catalog := w.Alloc()
	content := w.Alloc()
	unused := w.Alloc()
	_ = unused

	stm, err := w.OpenStream(content, nil, true)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Put(catalog, Dict{}); err != errStreamOpen {
		t.Errorf("writing while a stream is open: got %v", err)
	}
	const body = "0 0 m 100 100 l S\n"
	if _, err := io.WriteString(stm, strings.Repeat(body, 50)); err != nil {
		t.Fatal(err)
	}
	if err := stm.Close(); err != nil {
		t.Fatal(err)
	}

	err = w.Put(catalog, Dict{"Type": Name("Catalog")})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Put(catalog, Dict{}); err != errObjectWritten {
		t.Errorf("duplicate object: got %v", err)
	}
	if err := w.Close(Dict{"Root": catalog}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(Dict{"Root": catalog}); err != errClosed {
		t.Errorf("second Close: got %v", err)
	}

	data := buf.Bytes()
	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) {
		t.Errorf("bad header %q", data[:10])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing EOF marker")
	}
	if !bytes.Contains(data, []byte("/Size 5")) {
		t.Error("trailer /Size missing or wrong")
	}
	checkXRef(t, data)

	// decompress the content stream
	start := bytes.Index(data, []byte("stream\n")) + len("stream\n")
	end := bytes.Index(data, []byte("\nendstream"))
	zr, err := zlib.NewReader(bytes.NewReader(data[start:end]))
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != strings.Repeat(body, 50) {
		t.Error("stream contents changed")
	}
	lengthObj := fmt.Sprintf("4 0 obj\n%d\nendobj", end-start)
	if !bytes.Contains(data, []byte(lengthObj)) {
		t.Errorf("length object %q not found", lengthObj)
	}
}

func TestMissingRoot(t *testing.T) {
	w, err := NewWriter(io.Discard, V1_4)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(Dict{}); err == nil {
		t.Error("missing /Root not detected")
	}
}
