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

// Package preview renders sticker sheets as raster images, for proofing.
//
// Colours are converted to RGB without colour management.
package preview

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gangsheet"
	"seehuhn.de/go/gangsheet/color"
	"seehuhn.de/go/gangsheet/polygon"
	"seehuhn.de/go/gangsheet/render"
)

// DefaultDPI is the default resolution of preview images.
const DefaultDPI = 96

// maxPixels limits the size of preview images.
const maxPixels = 1 << 28

type renderer struct {
	img    *image.RGBA
	raster *vector.Rasterizer
	scale  float64
	height int
}

// Page renders one page of a sheet.  Page numbers start at zero.
// If style is nil, [render.DefaultStyle] is used.
func Page(s *gangsheet.Sheet, page int, style *render.Style, dpi float64) (*image.RGBA, error) {
	if page < 0 || page >= s.Pages {
		return nil, fmt.Errorf("page %d out of range [1, %d]", page+1, s.Pages)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if style == nil {
		style = render.DefaultStyle()
	}

	scale := dpi / 72
	width := int(math.Ceil(s.Geometry.Width * scale))
	height := int(math.Ceil(s.Geometry.Height * scale))
	if width <= 0 || height <= 0 || float64(width)*float64(height) > maxPixels {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	r := &renderer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
		scale:  scale,
		height: height,
	}
	draw.Draw(r.img, r.img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, p := range s.Placements {
		if p.Page != page {
			continue
		}
		r.sticker(p, style)
	}
	return r.img, nil
}

func (r *renderer) sticker(p gangsheet.Placement, style *render.Style) {
	if style.CutGuides {
		r.frame(p.Cell, style.CutLineWidth, style.Cut)
	}
	if style.Halo != nil {
		r.fill(p.Background, style.Halo, style.HaloAlpha)
	}
	if style.Ink != nil {
		r.fill(p.Glyph, style.Ink, 1)
	}
}

func (r *renderer) fill(s polygon.Shape, col color.Color, alpha float64) {
	if s.IsEmpty() || alpha <= 0 {
		return
	}
	r.raster.Reset(r.img.Bounds().Dx(), r.height)
	for _, c := range s.Contours() {
		if len(c) < 3 {
			continue
		}
		x, y := r.device(c[0].X, c[0].Y)
		r.raster.MoveTo(x, y)
		for _, p := range c[1:] {
			x, y := r.device(p.X, p.Y)
			r.raster.LineTo(x, y)
		}
		r.raster.ClosePath()
	}
	r.paint(col, alpha)
}

// frame draws the outline of a rectangle.  The line is at least one pixel
// wide.
func (r *renderer) frame(box rect.Rect, width float64, col color.Color) {
	w := max(width*r.scale, 1) / r.scale
	h := w / 2
	r.raster.Reset(r.img.Bounds().Dx(), r.height)
	r.rect(box.LLx-h, box.LLy-h, box.URx+h, box.LLy+h)
	r.rect(box.LLx-h, box.URy-h, box.URx+h, box.URy+h)
	r.rect(box.LLx-h, box.LLy+h, box.LLx+h, box.URy-h)
	r.rect(box.URx-h, box.LLy+h, box.URx+h, box.URy-h)
	r.paint(col, 1)
}

func (r *renderer) rect(x0, y0, x1, y1 float64) {
	ax, ay := r.device(x0, y0)
	bx, by := r.device(x1, y1)
	r.raster.MoveTo(ax, ay)
	r.raster.LineTo(bx, ay)
	r.raster.LineTo(bx, by)
	r.raster.LineTo(ax, by)
	r.raster.ClosePath()
}

func (r *renderer) paint(col color.Color, alpha float64) {
	c := col.RGBA()
	c.A = uint8(math.Round(min(max(alpha, 0), 1) * 255))
	src := image.NewUniform(c)
	r.raster.Draw(r.img, r.img.Bounds(), src, image.Point{})
}

// device maps PDF coordinates to pixel coordinates.  The y-axis is
// flipped.
func (r *renderer) device(x, y float64) (float32, float32) {
	return float32(x * r.scale), float32(float64(r.height) - y*r.scale)
}

// WritePNG encodes an image in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
