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

// Package pdf implements a small writer for PDF files.
//
// Objects are written sequentially, in the order in which they are
// passed to [Writer.Put] or [Writer.OpenStream].  The cross-reference
// table and trailer are written by [Writer.Close].
package pdf

import (
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"os"
)

// Version represents a version of the PDF standard.
type Version int

// PDF versions supported by this package.
const (
	V1_4 Version = iota + 4
	V1_5
	V1_6
	V1_7
)

func (ver Version) String() string {
	return fmt.Sprintf("1.%d", int(ver))
}

var (
	errObjectWritten = errors.New("object already written")
	errStreamOpen    = errors.New("stream still open")
	errClosed        = errors.New("writer already closed")
)

// Writer represents a PDF file open for writing.
type Writer struct {
	Version Version

	w       *posWriter
	xref    map[int]int64
	nextRef int
	inStm   bool
	closer  io.Closer
}

// NewWriter prepares a PDF file for writing.
func NewWriter(w io.Writer, ver Version) (*Writer, error) {
	pdf := &Writer{
		Version: ver,
		w:       &posWriter{w: w},
		xref:    make(map[int]int64),
		nextRef: 1,
	}

	_, err := fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}

// Create creates the named PDF file and opens it for output.  If a previous
// file with the same name exists, it is overwritten.  After writing is
// complete, Close() must be called to write the trailer and to close the
// underlying file.
func Create(name string, ver Version) (*Writer, error) {
	fd, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	pdf, err := NewWriter(fd, ver)
	if err != nil {
		fd.Close()
		return nil, err
	}
	pdf.closer = fd
	return pdf, nil
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	ref := Reference{Number: pdf.nextRef}
	pdf.nextRef++
	return ref
}

// Put writes an object to the PDF file, as an indirect object.
// The reference must have been obtained from [Writer.Alloc].
func (pdf *Writer) Put(ref Reference, obj Object) error {
	if err := pdf.startObject(ref); err != nil {
		return err
	}
	if obj == nil {
		_, err := io.WriteString(pdf.w, "null")
		if err != nil {
			return err
		}
	} else if err := obj.PDF(pdf.w); err != nil {
		return err
	}
	_, err := io.WriteString(pdf.w, "\nendobj\n")
	return err
}

func (pdf *Writer) startObject(ref Reference) error {
	if pdf.w == nil {
		return errClosed
	}
	if pdf.inStm {
		return errStreamOpen
	}
	if ref.Number <= 0 || ref.Number >= pdf.nextRef {
		return fmt.Errorf("invalid reference %s", ref)
	}
	if _, seen := pdf.xref[ref.Number]; seen {
		return errObjectWritten
	}
	pdf.xref[ref.Number] = pdf.w.pos
	_, err := fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number, ref.Generation)
	return err
}

// OpenStream writes the dictionary of a stream object and returns a writer
// for the stream data.  The /Length entry is added automatically.  If
// compress is true, the data is compressed using the FlateDecode filter.
// The stream must be closed before any other object can be written.
func (pdf *Writer) OpenStream(ref Reference, dict Dict, compress bool) (io.WriteCloser, error) {
	if err := pdf.startObject(ref); err != nil {
		return nil, err
	}

	length := pdf.Alloc()
	d := Dict{}
	for key, val := range dict {
		d[key] = val
	}
	d["Length"] = length
	if compress {
		d["Filter"] = Name("FlateDecode")
	}
	if err := d.PDF(pdf.w); err != nil {
		return nil, err
	}
	if _, err := io.WriteString(pdf.w, "\nstream\n"); err != nil {
		return nil, err
	}

	pdf.inStm = true
	stm := &streamWriter{
		pdf:    pdf,
		length: length,
		start:  pdf.w.pos,
	}
	if compress {
		stm.zw = zlib.NewWriter(pdf.w)
	}
	return stm, nil
}

type streamWriter struct {
	pdf    *Writer
	zw     *zlib.Writer
	length Reference
	start  int64
	closed bool
}

func (s *streamWriter) Write(p []byte) (int, error) {
	if s.closed {
		return 0, errClosed
	}
	if s.zw != nil {
		return s.zw.Write(p)
	}
	return s.pdf.w.Write(p)
}

func (s *streamWriter) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	pdf := s.pdf

	if s.zw != nil {
		if err := s.zw.Close(); err != nil {
			return err
		}
	}
	n := pdf.w.pos - s.start
	if _, err := io.WriteString(pdf.w, "\nendstream\nendobj\n"); err != nil {
		return err
	}
	pdf.inStm = false
	return pdf.Put(s.length, Integer(n))
}

// Close writes the cross-reference table and the trailer.  The trailer
// dictionary must contain the /Root entry; /Size is added automatically.
// If the Writer was created using [Create], the file is closed.
func (pdf *Writer) Close(trailer Dict) error {
	if pdf.w == nil {
		return errClosed
	}
	if pdf.inStm {
		return errStreamOpen
	}
	if _, ok := trailer["Root"]; !ok {
		return errors.New("missing /Root in trailer")
	}

	xRefPos := pdf.w.pos
	if err := pdf.writeXRefTable(); err != nil {
		return err
	}

	t := Dict{}
	for key, val := range trailer {
		t[key] = val
	}
	t["Size"] = Integer(pdf.nextRef)
	if _, err := io.WriteString(pdf.w, "trailer\n"); err != nil {
		return err
	}
	if err := t.PDF(pdf.w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(pdf.w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	// make sure we don't accidentally write beyond the end of file
	pdf.w = nil

	if pdf.closer != nil {
		return pdf.closer.Close()
	}
	return nil
}

func (pdf *Writer) writeXRefTable() error {
	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", pdf.nextRef)
	if err != nil {
		return err
	}
	_, err = io.WriteString(pdf.w, "0000000000 65535 f\r\n")
	if err != nil {
		return err
	}
	for i := 1; i < pdf.nextRef; i++ {
		pos, ok := pdf.xref[i]
		if ok {
			_, err = fmt.Fprintf(pdf.w, "%010d 00000 n\r\n", pos)
		} else {
			// allocated but never written
			_, err = io.WriteString(pdf.w, "0000000000 00000 f\r\n")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
