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

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"

	"seehuhn.de/go/gangsheet/color"
	"seehuhn.de/go/gangsheet/internal/float"
	"seehuhn.de/go/gangsheet/pdf"
)

// Page is a page of a [MultiPage] document, open for drawing.
//
// Drawing methods do not return errors.  Instead, the first error is
// recorded in Err, all later drawing operations are ignored, and the error
// is returned by [Page.Close].
type Page struct {
	// Content is the content stream of the page.
	Content *bytes.Buffer

	// Err is the first error which occurred while drawing.
	Err error

	doc   *MultiPage
	ref   pdf.Reference
	state state
	depth int

	alpha map[alphaKey]pdf.Name
}

type alphaKey struct {
	fill  bool
	value float64
}

func newPage(doc *MultiPage, ref pdf.Reference) *Page {
	return &Page{
		Content: &bytes.Buffer{},
		doc:     doc,
		ref:     ref,
		state:   objPage,
	}
}

// Close writes the page to the document.  Any error that occurred during
// drawing is returned here.
func (p *Page) Close() error {
	if p.doc == nil {
		return errors.New("page already closed")
	}
	if p.Err != nil {
		return p.Err
	}
	if p.state != objPage {
		return fmt.Errorf("unfinished path at end of page")
	}
	if p.depth != 0 {
		return fmt.Errorf("%d unbalanced PushGraphicsState calls", p.depth)
	}

	out := p.doc.Out
	contentRef := out.Alloc()
	stm, err := out.OpenStream(contentRef, nil, true)
	if err != nil {
		return err
	}
	if _, err := io.Copy(stm, p.Content); err != nil {
		return err
	}
	if err := stm.Close(); err != nil {
		return err
	}

	pageDict := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   p.doc.pageTree,
		"Contents": contentRef,
	}
	if len(p.alpha) > 0 {
		gs := pdf.Dict{}
		for key, name := range p.alpha {
			entry := pdf.Name("CA")
			if key.fill {
				entry = "ca"
			}
			gs[name] = pdf.Dict{
				"Type": pdf.Name("ExtGState"),
				entry:  pdf.Real(key.value),
			}
		}
		pageDict["Resources"] = pdf.Dict{"ExtGState": gs}
	}
	if err := out.Put(p.ref, pageDict); err != nil {
		return err
	}

	// The page has been written and cannot be modified anymore.
	p.Content = nil
	p.doc.numOpen--
	p.doc = nil
	return nil
}

// PushGraphicsState saves the current graphics state.
func (p *Page) PushGraphicsState() {
	if !p.valid("PushGraphicsState", objPage) {
		return
	}
	p.depth++
	_, p.Err = fmt.Fprintln(p.Content, "q")
}

// PopGraphicsState restores the previous graphics state.
func (p *Page) PopGraphicsState() {
	if !p.valid("PopGraphicsState", objPage) {
		return
	}
	if p.depth == 0 {
		p.Err = errors.New("PopGraphicsState without PushGraphicsState")
		return
	}
	p.depth--
	_, p.Err = fmt.Fprintln(p.Content, "Q")
}

// SetFillColor sets the colour used for filling paths.
func (p *Page) SetFillColor(col color.Color) {
	if !p.valid("SetFillColor", objPage) {
		return
	}
	p.Err = col.SetFill(p.Content)
}

// SetStrokeColor sets the colour used for stroking paths.
func (p *Page) SetStrokeColor(col color.Color) {
	if !p.valid("SetStrokeColor", objPage) {
		return
	}
	p.Err = col.SetStroke(p.Content)
}

// SetFillAlpha sets the constant opacity for filling operations.
func (p *Page) SetFillAlpha(alpha float64) {
	p.setAlpha("SetFillAlpha", true, alpha)
}

// SetStrokeAlpha sets the constant opacity for stroking operations.
func (p *Page) SetStrokeAlpha(alpha float64) {
	p.setAlpha("SetStrokeAlpha", false, alpha)
}

func (p *Page) setAlpha(cmd string, fill bool, alpha float64) {
	if !p.valid(cmd, objPage) {
		return
	}
	if alpha < 0 || alpha > 1 {
		p.Err = fmt.Errorf("%s: invalid opacity %g", cmd, alpha)
		return
	}
	key := alphaKey{fill: fill, value: alpha}
	name, ok := p.alpha[key]
	if !ok {
		if p.alpha == nil {
			p.alpha = make(map[alphaKey]pdf.Name)
		}
		name = pdf.Name(fmt.Sprintf("GS%d", len(p.alpha)+1))
		p.alpha[key] = name
	}
	if p.Err = name.PDF(p.Content); p.Err != nil {
		return
	}
	_, p.Err = fmt.Fprintln(p.Content, " gs")
}

// SetLineWidth sets the line width.
func (p *Page) SetLineWidth(width float64) {
	if !p.valid("SetLineWidth", objPage) {
		return
	}
	if width < 0 {
		p.Err = fmt.Errorf("invalid line width %g", width)
		return
	}
	_, p.Err = fmt.Fprintln(p.Content, coord(width), "w")
}

// SetDashPattern sets the line dash pattern.  An empty pattern selects
// solid lines.
func (p *Page) SetDashPattern(phase float64, pattern ...float64) {
	if !p.valid("SetDashPattern", objPage) {
		return
	}
	arr := make(pdf.Array, len(pattern))
	for i, x := range pattern {
		arr[i] = pdf.Real(x)
	}
	if p.Err = arr.PDF(p.Content); p.Err != nil {
		return
	}
	_, p.Err = fmt.Fprintln(p.Content, "", coord(phase), "d")
}

// MoveTo starts a new subpath at the given coordinates.
func (p *Page) MoveTo(x, y float64) {
	if !p.valid("MoveTo", objPage, objPath) {
		return
	}
	p.state = objPath
	_, p.Err = fmt.Fprintln(p.Content, coord(x), coord(y), "m")
}

// LineTo appends a straight line segment to the current path.
func (p *Page) LineTo(x, y float64) {
	if !p.valid("LineTo", objPath) {
		return
	}
	_, p.Err = fmt.Fprintln(p.Content, coord(x), coord(y), "l")
}

// ClosePath closes the current subpath.
func (p *Page) ClosePath() {
	if !p.valid("ClosePath", objPath) {
		return
	}
	_, p.Err = fmt.Fprintln(p.Content, "h")
}

// Rectangle appends a rectangle to the current path as a closed subpath.
func (p *Page) Rectangle(x, y, width, height float64) {
	if !p.valid("Rectangle", objPage, objPath) {
		return
	}
	p.state = objPath
	_, p.Err = fmt.Fprintln(p.Content, coord(x), coord(y), coord(width), coord(height), "re")
}

// Fill fills the current path, using the nonzero winding number rule.
// Any subpaths that are open are implicitly closed before being filled.
func (p *Page) Fill() {
	p.paint("Fill", "f")
}

// FillEvenOdd fills the current path, using the even-odd rule.
func (p *Page) FillEvenOdd() {
	p.paint("FillEvenOdd", "f*")
}

// Stroke strokes the current path.
func (p *Page) Stroke() {
	p.paint("Stroke", "S")
}

func (p *Page) paint(cmd, op string) {
	if !p.valid(cmd, objPath) {
		return
	}
	p.state = objPage
	_, p.Err = fmt.Fprintln(p.Content, op)
}

func (p *Page) valid(cmd string, ss ...state) bool {
	if p.Err != nil {
		return false
	}
	if p.doc == nil {
		p.Err = fmt.Errorf("%s: page already closed", cmd)
		return false
	}
	if slices.Contains(ss, p.state) {
		return true
	}
	p.Err = fmt.Errorf("unexpected state %q for %q", p.state, cmd)
	return false
}

func coord(x float64) string {
	return float.Format(x, 3)
}

type state int

// See Figure 9 (p. 113) of PDF 32000-1:2008.
const (
	objPage state = iota
	objPath
)

func (s state) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}
