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

import "seehuhn.de/go/gangsheet"

const (
	defaultConfigPath       = "~/.config/gangsheet/config.toml"
	defaultInputDir         = "input_csv"
	defaultOutputDir        = "output_sheet"
	defaultHistoryDB        = "~/.local/share/gangsheet/history.db"
	defaultOutputSuffix     = "_gangsheet.pdf"
	defaultPaper            = "A4"
	defaultMarginMM         = 10
	defaultGapMM            = 5
	defaultGridSquareMM     = 25
	defaultFont             = "builtin:gobold"
	defaultLanguage         = "en"
	defaultTolerancePt      = 0.05
	defaultNameColumn       = "Lineitem name"
	defaultQuantityColumn   = "Lineitem quantity"
	defaultSkipPattern      = "Priming Wipe"
	defaultCategory         = string(gangsheet.Words)
	defaultHaloAlpha        = 0.03
	defaultCutLineWidthPt   = 0.25
	defaultQuadrantSegments = 16
	defaultJobs             = 1
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

var defaultSizes = map[string]Size{
	string(gangsheet.Flags):    {FontSize: 50, OffsetMM: 2},
	string(gangsheet.Symbols):  {FontSize: 50, OffsetMM: 2},
	string(gangsheet.Initials): {FontSize: 80, OffsetMM: 3},
	string(gangsheet.Words):    {FontSize: 30, OffsetMM: 1.5},
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	sizes := make(map[string]Size, len(defaultSizes))
	for name, s := range defaultSizes {
		sizes[name] = s
	}
	return Config{
		Paths: Paths{
			InputDir:     defaultInputDir,
			OutputDir:    defaultOutputDir,
			HistoryDB:    defaultHistoryDB,
			OutputSuffix: defaultOutputSuffix,
		},
		Page: Page{
			Paper:    defaultPaper,
			MarginMM: defaultMarginMM,
			GapMM:    defaultGapMM,
		},
		Grid: Grid{
			SquareMM: defaultGridSquareMM,
		},
		Font: Font{
			Path:        defaultFont,
			Language:    defaultLanguage,
			TolerancePt: defaultTolerancePt,
		},
		Sizes: sizes,
		Input: Input{
			NameColumn:      defaultNameColumn,
			QuantityColumn:  defaultQuantityColumn,
			SkipPatterns:    []string{defaultSkipPattern},
			DefaultCategory: defaultCategory,
		},
		Appearance: Appearance{
			InkCMYK:          []float64{0, 0.09, 0.09, 0.87},
			HaloCMYK:         []float64{0, 0, 0, 0},
			HaloAlpha:        defaultHaloAlpha,
			CutGuides:        true,
			CutCMYK:          []float64{0, 1, 0, 0},
			CutLineWidthPt:   defaultCutLineWidthPt,
			QuadrantSegments: defaultQuadrantSegments,
		},
		Run: Run{
			Jobs: defaultJobs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
