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

package gangsheet

import (
	"errors"
	"fmt"
	"io"

	"seehuhn.de/go/gangsheet/document"
	"seehuhn.de/go/gangsheet/layout"
	"seehuhn.de/go/gangsheet/render"
)

// Sheet is the result of [Planner.Plan].
type Sheet struct {
	Geometry layout.Geometry

	// Placements lists all copies, ordered by page.
	Placements []Placement

	// Pages is the number of pages used.
	Pages int

	// Designs is the number of distinct designs.
	Designs int

	// Copies is the total number of stickers.
	Copies int
}

// Page returns the placements on the given page.
func (s *Sheet) Page(idx int) []Placement {
	var res []Placement
	for _, p := range s.Placements {
		if p.Page == idx {
			res = append(res, p)
		}
	}
	return res
}

// Utilisation returns the fraction of the printable area of all pages
// which is covered by sticker cells.
func (s *Sheet) Utilisation() float64 {
	if s.Pages == 0 {
		return 0
	}
	r := s.Geometry.Printable()
	total := float64(s.Pages) * (r.URx - r.LLx) * (r.URy - r.LLy)
	if total <= 0 {
		return 0
	}
	var used float64
	for _, p := range s.Placements {
		used += (p.Cell.URx - p.Cell.LLx) * (p.Cell.URy - p.Cell.LLy)
	}
	return used / total
}

var errEmptySheet = errors.New("sheet has no stickers")

// Write renders the sheet as a PDF document.
//
// The document outline has one entry per page.  Each of these has one
// child entry for every distinct text on the page.  Texts must be given
// in the same order as the items passed to [Planner.Plan]; if texts is
// nil, the outline only lists the pages.
//
// The options can be nil, in which case default values are used.
func Write(w io.Writer, s *Sheet, texts []string, style *render.Style, opt *document.Options) error {
	if s.Pages == 0 {
		return errEmptySheet
	}
	doc, err := document.WriteMultiPage(w, s.Geometry.Width, s.Geometry.Height, opt)
	if err != nil {
		return err
	}
	return s.draw(doc, texts, style)
}

// WriteFile is like [Write], but writes the document to a new file.
func WriteFile(fname string, s *Sheet, texts []string, style *render.Style, opt *document.Options) error {
	if s.Pages == 0 {
		return errEmptySheet
	}
	doc, err := document.CreateMultiPage(fname, s.Geometry.Width, s.Geometry.Height, opt)
	if err != nil {
		return err
	}
	return s.draw(doc, texts, style)
}

func (s *Sheet) draw(doc *document.MultiPage, texts []string, style *render.Style) error {
	byPage := make([][]Placement, s.Pages)
	for _, p := range s.Placements {
		if p.Page < 0 || p.Page >= s.Pages {
			return fmt.Errorf("placement on invalid page %d", p.Page)
		}
		byPage[p.Page] = append(byPage[p.Page], p)
	}

	for i, placements := range byPage {
		page := doc.AddPage()
		bm := &document.Bookmark{
			Title: fmt.Sprintf("Page %d", i+1),
			Page:  i,
		}
		seen := make(map[string]bool)
		for _, p := range placements {
			render.Sticker(page, p.Glyph, p.Background, p.Cell, style)

			if p.Item < 0 || p.Item >= len(texts) {
				continue
			}
			text := texts[p.Item]
			if !seen[text] {
				seen[text] = true
				bm.Children = append(bm.Children, &document.Bookmark{Title: text, Page: i})
			}
		}
		if err := page.Close(); err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		doc.Outline = append(doc.Outline, bm)
	}

	return doc.Close()
}

// Texts returns the texts of the given items, for use with [Write].
func Texts(items []Item) []string {
	res := make([]string, len(items))
	for i, item := range items {
		res[i] = item.Text
	}
	return res
}
