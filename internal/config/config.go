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
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"seehuhn.de/go/gangsheet"
	"seehuhn.de/go/gangsheet/color"
	"seehuhn.de/go/gangsheet/font/gofont"
	"seehuhn.de/go/gangsheet/layout"
	"seehuhn.de/go/gangsheet/outline"
	"seehuhn.de/go/gangsheet/render"
)

//go:embed sample_config.toml
var sampleConfig string

// ErrNoFont is returned by [Config.LoadFont] if the configured font file
// does not exist.
var ErrNoFont = errors.New("font not found")

// Paths contains file and directory locations.
type Paths struct {
	InputDir     string `toml:"input_dir"`
	OutputDir    string `toml:"output_dir"`
	HistoryDB    string `toml:"history_db"`
	OutputSuffix string `toml:"output_suffix"`
}

// Page describes the paper and the page margins.
type Page struct {
	// Paper is the name of a standard paper size.  If WidthMM and HeightMM
	// are both set, they take precedence.
	Paper     string  `toml:"paper"`
	WidthMM   float64 `toml:"width_mm"`
	HeightMM  float64 `toml:"height_mm"`
	Landscape bool    `toml:"landscape"`
	MarginMM  float64 `toml:"margin_mm"`
	GapMM     float64 `toml:"gap_mm"`
}

// Grid gives the size of the grid squares which make up sticker cells.
type Grid struct {
	SquareMM float64 `toml:"square_mm"`
}

// Font selects the typeface used for all stickers.
type Font struct {
	// Path is either the name of a TrueType/OpenType file, or one of the
	// built-in Go fonts, e.g. "builtin:gobold".
	Path        string  `toml:"path"`
	Language    string  `toml:"language"`
	TolerancePt float64 `toml:"tolerance_pt"`
}

// Size gives the glyph size and halo offset for one category.
type Size struct {
	FontSize float64 `toml:"font_size"`
	OffsetMM float64 `toml:"offset_mm"`
}

// Input controls how order files are interpreted.
type Input struct {
	NameColumn      string   `toml:"name_column"`
	QuantityColumn  string   `toml:"quantity_column"`
	SkipPatterns    []string `toml:"skip_patterns"`
	DefaultCategory string   `toml:"default_category"`
}

// Appearance contains colours and line settings for the printed sheet.
// Colours are given as CMYK tuples with components in [0, 1].
type Appearance struct {
	InkCMYK          []float64 `toml:"ink_cmyk"`
	HaloCMYK         []float64 `toml:"halo_cmyk"`
	HaloAlpha        float64   `toml:"halo_alpha"`
	CutGuides        bool      `toml:"cut_guides"`
	CutCMYK          []float64 `toml:"cut_cmyk"`
	CutLineWidthPt   float64   `toml:"cut_line_width_pt"`
	OutputIntentICC  string    `toml:"output_intent_icc"`
	QuadrantSegments int       `toml:"quadrant_segments"`
}

// Run contains settings for batch processing.
type Run struct {
	Jobs int `toml:"jobs"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all settings of the gangsheet command.
type Config struct {
	Paths      Paths           `toml:"paths"`
	Page       Page            `toml:"page"`
	Grid       Grid            `toml:"grid"`
	Font       Font            `toml:"font"`
	Sizes      map[string]Size `toml:"sizes"`
	Input      Input           `toml:"input"`
	Appearance Appearance      `toml:"style"`
	Run        Run             `toml:"run"`
	Logging    Logging         `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file.
// The second return value is the path of the configuration file, the third
// indicates whether the file exists.  If the file does not exist, the
// defaults are used.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		// decoding into a map merges with the defaults, so clear it first
		cfg.Sizes = nil
		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("gangsheet.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// Geometry returns the page geometry in PDF points.
func (c *Config) Geometry() layout.Geometry {
	return layout.NewGeometry(c.paper(), layout.FromMM(c.Page.MarginMM), layout.FromMM(c.Page.GapMM))
}

func (c *Config) paper() layout.Paper {
	var p layout.Paper
	if c.Page.WidthMM > 0 && c.Page.HeightMM > 0 {
		p = layout.Paper{Width: layout.FromMM(c.Page.WidthMM), Height: layout.FromMM(c.Page.HeightMM)}
	} else {
		p, _ = layout.PaperByName(c.Page.Paper)
	}
	if c.Page.Landscape {
		p = p.Landscape()
	}
	return p
}

// SizeTable returns the configured glyph sizes and halo offsets, in points.
func (c *Config) SizeTable() map[gangsheet.Category]gangsheet.Size {
	res := make(map[gangsheet.Category]gangsheet.Size, len(c.Sizes))
	for name, s := range c.Sizes {
		res[gangsheet.Category(name)] = gangsheet.Size{
			FontSize: s.FontSize,
			Offset:   layout.FromMM(s.OffsetMM),
		}
	}
	return res
}

// PlanOptions returns the settings for a [gangsheet.Planner].
// The Logger field is left empty.
func (c *Config) PlanOptions() *gangsheet.Options {
	return &gangsheet.Options{
		Geometry:         c.Geometry(),
		GridSquare:       layout.FromMM(c.Grid.SquareMM),
		Sizes:            c.SizeTable(),
		Tolerance:        c.Font.TolerancePt,
		QuadrantSegments: c.Appearance.QuadrantSegments,
	}
}

// Style returns the colours used to draw stickers.
func (c *Config) Style() *render.Style {
	a := &c.Appearance
	return &render.Style{
		Ink:          cmyk(a.InkCMYK),
		Halo:         cmyk(a.HaloCMYK),
		HaloAlpha:    a.HaloAlpha,
		CutGuides:    a.CutGuides,
		Cut:          cmyk(a.CutCMYK),
		CutLineWidth: a.CutLineWidthPt,
	}
}

func cmyk(v []float64) color.Color {
	return color.CMYK(v[0], v[1], v[2], v[3])
}

// Language returns the language used for text layout.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Font.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// LoadFont loads the configured font.
// If the font file does not exist, the error wraps [ErrNoFont].
func (c *Config) LoadFont() (*outline.Font, error) {
	opt := &outline.FontOptions{Language: c.Language()}

	if gofont.IsBuiltin(c.Font.Path) {
		F, ok := gofont.Lookup(c.Font.Path)
		if !ok {
			return nil, fmt.Errorf("font.path %q: %w", c.Font.Path, ErrNoFont)
		}
		return F.New(opt)
	}

	_, err := os.Stat(c.Font.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("font.path %q: %w", c.Font.Path, ErrNoFont)
	}
	return outline.LoadFont(c.Font.Path, opt)
}

// OutputPath returns the name of the PDF file generated for the given
// order file.
func (c *Config) OutputPath(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(c.Paths.OutputDir, base+c.Paths.OutputSuffix)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath applies the path expansion rules used for configuration
// values.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the text of the sample configuration file.
func Sample() string {
	return sampleConfig
}
