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
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/icc"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/gangsheet/pdf"
)

// Info contains the document metadata.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	// Created is the creation time of the document.  If this is zero,
	// the time when the document is closed is used.
	Created time.Time

	// Language is the natural language of the document.
	Language language.Tag
}

// xmpPDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

func (doc *MultiPage) writeInfo(info *Info) (pdf.Reference, pdf.Reference, error) {
	created := info.Created
	if created.IsZero() {
		created = time.Now()
	}

	dict := pdf.Dict{
		"CreationDate": pdf.Date(created),
		"ModDate":      pdf.Date(created),
	}
	for key, val := range map[pdf.Name]string{
		"Title":    info.Title,
		"Author":   info.Author,
		"Subject":  info.Subject,
		"Keywords": info.Keywords,
		"Creator":  info.Creator,
		"Producer": info.Producer,
	} {
		if val != "" {
			dict[key] = pdf.TextString(val)
		}
	}
	infoRef := doc.Out.Alloc()
	if err := doc.Out.Put(infoRef, dict); err != nil {
		return pdf.Reference{}, pdf.Reference{}, err
	}

	lang := info.Language
	if lang.IsRoot() {
		lang = language.MustParse("x-default")
	}
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(lang, info.Title)
	}
	if info.Subject != "" {
		dc.Description.Set(lang, info.Subject)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(created)
	basic.ModifyDate = xmp.NewDate(created)
	pdfNS := &xmpPDF{}
	if info.Keywords != "" {
		pdfNS.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfNS.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfNS)

	metaRef := doc.Out.Alloc()
	stm, err := doc.Out.OpenStream(metaRef, pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}, false)
	if err != nil {
		return pdf.Reference{}, pdf.Reference{}, err
	}
	err = packet.Write(stm, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return pdf.Reference{}, pdf.Reference{}, err
	}
	if err := stm.Close(); err != nil {
		return pdf.Reference{}, pdf.Reference{}, err
	}

	return infoRef, metaRef, nil
}

// OutputIntent describes the intended printing condition of a document.
type OutputIntent struct {
	// Profile is an ICC profile for a CMYK output device.
	Profile []byte

	// Condition is a short identifier for the printing condition.
	Condition string
}

var errNotCMYK = errors.New("output intent profile is not a CMYK profile")

// Check verifies that the profile can be used as an output intent.
func (oi *OutputIntent) Check() error {
	p, err := icc.Decode(oi.Profile)
	if err != nil {
		return fmt.Errorf("output intent: %w", err)
	}
	if p.ColorSpace != icc.CMYKSpace {
		return errNotCMYK
	}
	return nil
}

func (oi *OutputIntent) write(out *pdf.Writer) (pdf.Array, error) {
	if err := oi.Check(); err != nil {
		return nil, err
	}

	profileRef := out.Alloc()
	stm, err := out.OpenStream(profileRef, pdf.Dict{"N": pdf.Integer(4)}, true)
	if err != nil {
		return nil, err
	}
	if _, err := stm.Write(oi.Profile); err != nil {
		return nil, err
	}
	if err := stm.Close(); err != nil {
		return nil, err
	}

	cond := oi.Condition
	if cond == "" {
		cond = "Custom"
	}
	intent := pdf.Dict{
		"Type":                      pdf.Name("OutputIntent"),
		"S":                         pdf.Name("GTS_PDFX"),
		"OutputConditionIdentifier": pdf.TextString(cond),
		"DestOutputProfile":         profileRef,
	}
	return pdf.Array{intent}, nil
}
