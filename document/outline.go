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
	"fmt"

	"seehuhn.de/go/gangsheet/pdf"
)

// Bookmark is an entry in the document outline.
type Bookmark struct {
	Title string

	// Page is the zero-based index of the target page.
	Page int

	// Open indicates whether the children are shown initially.
	Open bool

	Children []*Bookmark
}

type outlineWriter struct {
	doc   *MultiPage
	count map[*Bookmark]int
}

func (doc *MultiPage) writeOutline() (pdf.Reference, error) {
	ww := &outlineWriter{
		doc:   doc,
		count: map[*Bookmark]int{},
	}

	var rootCount int
	for _, b := range doc.Outline {
		rootCount += ww.getCount(b)
	}

	out := doc.Out
	rootRef := out.Alloc()
	first := out.Alloc()
	last := first
	if len(doc.Outline) > 1 {
		last = out.Alloc()
	}
	err := out.Put(rootRef, pdf.Dict{
		"Type":  pdf.Name("Outlines"),
		"First": first,
		"Last":  last,
		"Count": pdf.Integer(rootCount),
	})
	if err != nil {
		return pdf.Reference{}, err
	}

	err = ww.writeChildren(rootRef, first, last, doc.Outline)
	if err != nil {
		return pdf.Reference{}, err
	}
	return rootRef, nil
}

// getCount returns the number of visible entries the bookmark contributes
// to its parent.  Open bookmarks store the number of visible descendants,
// closed ones the negated number of children.
func (ww *outlineWriter) getCount(b *Bookmark) int {
	if len(b.Children) == 0 {
		return 1
	}
	visible := 0
	for _, child := range b.Children {
		visible += ww.getCount(child)
	}
	if b.Open {
		ww.count[b] = visible
		return 1 + visible
	}
	ww.count[b] = -len(b.Children)
	return 1
}

func (ww *outlineWriter) writeChildren(parent, first, last pdf.Reference, items []*Bookmark) error {
	out := ww.doc.Out
	refs := make([]pdf.Reference, len(items))
	for i := range items {
		switch i {
		case 0:
			refs[i] = first
		case len(items) - 1:
			refs[i] = last
		default:
			refs[i] = out.Alloc()
		}
	}

	for i, b := range items {
		if b.Page < 0 || b.Page >= len(ww.doc.pages) {
			return fmt.Errorf("bookmark %q: invalid page %d", b.Title, b.Page)
		}
		dict := pdf.Dict{
			"Title":  pdf.TextString(b.Title),
			"Parent": parent,
			"Dest":   pdf.Array{ww.doc.pages[b.Page], pdf.Name("Fit")},
		}
		if i > 0 {
			dict["Prev"] = refs[i-1]
		}
		if i < len(items)-1 {
			dict["Next"] = refs[i+1]
		}

		var cFirst, cLast pdf.Reference
		if len(b.Children) > 0 {
			cFirst = out.Alloc()
			cLast = cFirst
			if len(b.Children) > 1 {
				cLast = out.Alloc()
			}
			dict["First"] = cFirst
			dict["Last"] = cLast
			dict["Count"] = pdf.Integer(ww.count[b])
		}
		if err := out.Put(refs[i], dict); err != nil {
			return err
		}
		if len(b.Children) > 0 {
			err := ww.writeChildren(refs[i], cFirst, cLast, b.Children)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
