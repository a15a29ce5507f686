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
	"fmt"
	"strings"

	"seehuhn.de/go/gangsheet/font/gofont"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeFont(); err != nil {
		return err
	}
	c.normalizePage()
	c.normalizeSizes()
	c.normalizeInput()
	c.normalizeAppearance()
	c.normalizeLogging()
	if c.Run.Jobs <= 0 {
		c.Run.Jobs = defaultJobs
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.InputDir) == "" {
		c.Paths.InputDir = defaultInputDir
	}
	if c.Paths.InputDir, err = expandPath(c.Paths.InputDir); err != nil {
		return fmt.Errorf("paths.input_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	// an empty history path disables the history
	if c.Paths.HistoryDB, err = expandPath(strings.TrimSpace(c.Paths.HistoryDB)); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	if c.Paths.OutputSuffix == "" {
		c.Paths.OutputSuffix = defaultOutputSuffix
	}
	return nil
}

func (c *Config) normalizeFont() error {
	c.Font.Path = strings.TrimSpace(c.Font.Path)
	if c.Font.Path == "" {
		c.Font.Path = defaultFont
	}
	if !gofont.IsBuiltin(c.Font.Path) {
		var err error
		if c.Font.Path, err = expandPath(c.Font.Path); err != nil {
			return fmt.Errorf("font.path: %w", err)
		}
	}
	c.Font.Language = strings.TrimSpace(c.Font.Language)
	if c.Font.Language == "" {
		c.Font.Language = defaultLanguage
	}
	if c.Font.TolerancePt == 0 {
		c.Font.TolerancePt = defaultTolerancePt
	}
	return nil
}

func (c *Config) normalizePage() {
	c.Page.Paper = strings.TrimSpace(c.Page.Paper)
	if c.Page.Paper == "" {
		c.Page.Paper = defaultPaper
	}
}

// normalizeSizes adds the built-in categories which are missing from the
// configuration file.  For the built-in categories, a missing font size is
// taken from the defaults.
func (c *Config) normalizeSizes() {
	if c.Sizes == nil {
		c.Sizes = make(map[string]Size, len(defaultSizes))
	}
	for name, def := range defaultSizes {
		s, ok := c.Sizes[name]
		if !ok {
			c.Sizes[name] = def
			continue
		}
		if s.FontSize == 0 {
			s.FontSize = def.FontSize
			c.Sizes[name] = s
		}
	}
}

func (c *Config) normalizeInput() {
	c.Input.NameColumn = strings.TrimSpace(c.Input.NameColumn)
	if c.Input.NameColumn == "" {
		c.Input.NameColumn = defaultNameColumn
	}
	c.Input.QuantityColumn = strings.TrimSpace(c.Input.QuantityColumn)
	if c.Input.QuantityColumn == "" {
		c.Input.QuantityColumn = defaultQuantityColumn
	}
	patterns := c.Input.SkipPatterns[:0]
	for _, p := range c.Input.SkipPatterns {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	c.Input.SkipPatterns = patterns
	c.Input.DefaultCategory = strings.TrimSpace(c.Input.DefaultCategory)
	if c.Input.DefaultCategory == "" {
		c.Input.DefaultCategory = defaultCategory
	}
}

func (c *Config) normalizeAppearance() {
	a := &c.Appearance
	if a.InkCMYK == nil {
		a.InkCMYK = []float64{0, 0.09, 0.09, 0.87}
	}
	if a.HaloCMYK == nil {
		a.HaloCMYK = []float64{0, 0, 0, 0}
	}
	if a.CutCMYK == nil {
		a.CutCMYK = []float64{0, 1, 0, 0}
	}
	if a.CutLineWidthPt == 0 {
		a.CutLineWidthPt = defaultCutLineWidthPt
	}
	if a.QuadrantSegments == 0 {
		a.QuadrantSegments = defaultQuadrantSegments
	}
	if a.OutputIntentICC != "" {
		if p, err := expandPath(a.OutputIntentICC); err == nil {
			a.OutputIntentICC = p
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console", "text":
		c.Logging.Format = defaultLogFormat
	case "json":
	default:
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
