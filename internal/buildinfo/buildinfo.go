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

// Package buildinfo reports the version of the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the build of the running binary.
type Info struct {
	Module    string
	Version   string
	Revision  string
	Dirty     bool
	GoVersion string
}

// Read returns the build information embedded in the binary.
// Fields which are not available are left empty.
func Read() Info {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}
	}

	res := Info{
		Module:    info.Main.Path,
		GoVersion: info.GoVersion,
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		res.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			res.Revision = s.Value
		case "vcs.modified":
			res.Dirty = s.Value == "true"
		}
	}
	return res
}

// String returns the module version, or the abbreviated VCS revision if
// no version is known.  The result is empty if neither is available.
func (i Info) String() string {
	if i.Version != "" {
		return i.Version
	}
	rev := i.Revision
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if i.Dirty {
		rev += "+dirty"
	}
	return rev
}

// Short returns a short version string for a CLI tool, e.g.
// "gangsheet (seehuhn.de/go/gangsheet v0.1.0)".
func Short(toolName string) string {
	i := Read()
	v := i.String()
	if v == "" {
		return toolName
	}
	return toolName + " (" + i.Module + " " + v + ")"
}
