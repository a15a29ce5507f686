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

// Package document writes multi-page PDF documents consisting of vector
// paths.
package document

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"seehuhn.de/go/gangsheet/pdf"
)

// Options control the output of a document.
type Options struct {
	// Version is the PDF version of the output file.
	// The default is PDF 1.7.
	Version pdf.Version

	// Info, if not nil, is written to the document information dictionary
	// and to an XMP metadata stream.
	Info *Info

	// OutputIntent, if not nil, is embedded as the output intent of the
	// document.
	OutputIntent *OutputIntent

	// ID is used as the file identifier in the trailer.  If ID is the zero
	// value, a random identifier is used.
	ID uuid.UUID
}

// MultiPage is a PDF document with pages of equal size.
type MultiPage struct {
	// Out is the underlying PDF writer.
	Out *pdf.Writer

	// Outline is written as the bookmark tree of the document, when the
	// document is closed.
	Outline []*Bookmark

	width, height float64
	opt           Options
	pageTree      pdf.Reference
	pages         []pdf.Reference
	numOpen       int
	base          io.Writer
	closeBase     bool
}

// CreateMultiPage creates a new file and returns a document writer for it.
// The options can be nil, in which case default values are used.
func CreateMultiPage(name string, width, height float64, opt *Options) (*MultiPage, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	doc, err := WriteMultiPage(fd, width, height, opt)
	if err != nil {
		fd.Close()
		return nil, err
	}
	doc.closeBase = true
	return doc, nil
}

// WriteMultiPage returns a document writer which writes to w.
// The options can be nil, in which case default values are used.
func WriteMultiPage(w io.Writer, width, height float64, opt *Options) (*MultiPage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid page size %gx%g", width, height)
	}

	var o Options
	if opt != nil {
		o = *opt
	}
	if o.Version == 0 {
		o.Version = pdf.V1_7
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}

	out, err := pdf.NewWriter(w, o.Version)
	if err != nil {
		return nil, err
	}

	return &MultiPage{
		Out:      out,
		width:    width,
		height:   height,
		opt:      o,
		pageTree: out.Alloc(),
		base:     w,
	}, nil
}

// AddPage starts a new page.  Pages appear in the output in the order in
// which they were added.  Each page must be closed before the document is
// closed.
func (doc *MultiPage) AddPage() *Page {
	doc.numOpen++
	ref := doc.Out.Alloc()
	doc.pages = append(doc.pages, ref)
	return newPage(doc, ref)
}

// NumPages returns the number of pages added so far.
func (doc *MultiPage) NumPages() int {
	return len(doc.pages)
}

// Close writes the page tree, the catalog and the trailer.
func (doc *MultiPage) Close() error {
	if doc.numOpen != 0 {
		return fmt.Errorf("%d pages still open", doc.numOpen)
	}
	if len(doc.pages) == 0 {
		return fmt.Errorf("document has no pages")
	}

	kids := make(pdf.Array, len(doc.pages))
	for i, ref := range doc.pages {
		kids[i] = ref
	}
	err := doc.Out.Put(doc.pageTree, pdf.Dict{
		"Type":     pdf.Name("Pages"),
		"Kids":     kids,
		"Count":    pdf.Integer(len(doc.pages)),
		"MediaBox": pdf.Rectangle{URx: doc.width, URy: doc.height},
	})
	if err != nil {
		return err
	}

	catalog := pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": doc.pageTree,
	}
	trailer := pdf.Dict{}

	if doc.opt.Info != nil {
		infoRef, metaRef, err := doc.writeInfo(doc.opt.Info)
		if err != nil {
			return err
		}
		trailer["Info"] = infoRef
		catalog["Metadata"] = metaRef
		if !doc.opt.Info.Language.IsRoot() {
			catalog["Lang"] = pdf.TextString(doc.opt.Info.Language.String())
		}
	}
	if doc.opt.OutputIntent != nil {
		intents, err := doc.opt.OutputIntent.write(doc.Out)
		if err != nil {
			return err
		}
		catalog["OutputIntents"] = intents
	}
	if len(doc.Outline) > 0 {
		outlines, err := doc.writeOutline()
		if err != nil {
			return err
		}
		catalog["Outlines"] = outlines
		catalog["PageMode"] = pdf.Name("UseOutlines")
	}

	catalogRef := doc.Out.Alloc()
	if err := doc.Out.Put(catalogRef, catalog); err != nil {
		return err
	}

	id := pdf.String(doc.opt.ID[:])
	trailer["Root"] = catalogRef
	trailer["ID"] = pdf.Array{id, id}
	err = doc.Out.Close(trailer)
	if err != nil {
		return err
	}

	if doc.closeBase {
		err = doc.base.(io.Closer).Close()
		if err != nil {
			return err
		}
	}
	return nil
}
