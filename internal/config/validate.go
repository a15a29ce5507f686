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

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"seehuhn.de/go/gangsheet/layout"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePage(); err != nil {
		return err
	}
	if err := c.validateSizes(); err != nil {
		return err
	}
	if err := c.validateAppearance(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePage() error {
	p := c.Page
	if (p.WidthMM > 0) != (p.HeightMM > 0) {
		return errors.New("page.width_mm and page.height_mm must be set together")
	}
	if p.WidthMM < 0 || p.HeightMM < 0 {
		return errors.New("page.width_mm and page.height_mm must not be negative")
	}
	if p.WidthMM == 0 {
		if _, ok := layout.PaperByName(p.Paper); !ok {
			return fmt.Errorf("page.paper: unknown paper size %q", p.Paper)
		}
	}
	if p.MarginMM < 0 {
		return errors.New("page.margin_mm must not be negative")
	}
	if p.GapMM < 0 {
		return errors.New("page.gap_mm must not be negative")
	}
	if c.Grid.SquareMM <= 0 {
		return errors.New("grid.square_mm must be positive")
	}
	if c.Font.TolerancePt <= 0 {
		return errors.New("font.tolerance_pt must be positive")
	}
	if err := c.Geometry().Validate(); err != nil {
		return fmt.Errorf("page: %w", err)
	}
	return nil
}

func (c *Config) validateSizes() error {
	for name, s := range c.Sizes {
		if strings.TrimSpace(name) == "" {
			return errors.New("sizes: empty category name")
		}
		if s.FontSize <= 0 {
			return fmt.Errorf("sizes.%s.font_size must be positive", name)
		}
		if s.OffsetMM < 0 {
			return fmt.Errorf("sizes.%s.offset_mm must not be negative", name)
		}
	}
	if _, ok := c.Sizes[c.Input.DefaultCategory]; !ok {
		return fmt.Errorf("input.default_category: no sizes configured for %q",
			c.Input.DefaultCategory)
	}
	return nil
}

func (c *Config) validateAppearance() error {
	a := &c.Appearance
	for _, col := range []struct {
		name string
		val  []float64
	}{
		{"style.ink_cmyk", a.InkCMYK},
		{"style.halo_cmyk", a.HaloCMYK},
		{"style.cut_cmyk", a.CutCMYK},
	} {
		if err := checkCMYK(col.name, col.val); err != nil {
			return err
		}
	}
	if a.HaloAlpha < 0 || a.HaloAlpha > 1 {
		return errors.New("style.halo_alpha must be between 0 and 1")
	}
	if a.CutLineWidthPt < 0 {
		return errors.New("style.cut_line_width_pt must not be negative")
	}
	if a.QuadrantSegments < 0 {
		return errors.New("style.quadrant_segments must not be negative")
	}
	return nil
}

func checkCMYK(name string, v []float64) error {
	if len(v) != 4 {
		return fmt.Errorf("%s must have 4 components, got %d", name, len(v))
	}
	for _, x := range v {
		if x < 0 || x > 1 {
			return fmt.Errorf("%s: component %g outside [0, 1]", name, x)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}
