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

// Package config loads, normalizes and validates the settings of the
// gangsheet command.
//
// Settings are read from a TOML file.  Missing values are filled in from
// [Default], user paths are expanded, and all lengths given in millimetres
// are converted to PDF points exactly once, by the accessor methods
// [Config.Geometry], [Config.PlanOptions] and [Config.Style].
package config
