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

package logging_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"seehuhn.de/go/gangsheet/internal/config"
	"seehuhn.de/go/gangsheet/internal/logging"
)

func TestConsoleFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Debug("hidden")
	logger.With("file", "orders.csv").
		Info("sheet written",
			slog.Group("sheet", "pages", 3, "title", "two words"),
			"err", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
	for _, want := range []string{
		" INFO orders.csv: sheet written",
		"sheet.pages=3",
		`sheet.title="two words"`,
		" err=boom",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, ".go:") {
		t.Errorf("unexpected source information in %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected escape sequences in %q", out)
	}
}

func TestDebugAddsSource(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{Level: "debug", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("details")
	if !strings.Contains(buf.String(), "logger_test.go:") {
		t.Errorf("missing source in %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := logging.New(logging.Options{Level: "warn", Format: "JSON", Writer: buf})
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("ignored")
	logger.Warn("glyphs missing from font", "text", "AB")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if rec["level"] != "warn" || rec["msg"] != "glyphs missing from font" || rec["text"] != "AB" {
		t.Errorf("unexpected record %v", rec)
	}
	if _, ok := rec["ts"]; !ok {
		t.Errorf("missing timestamp in %v", rec)
	}
}

func TestInvalidOptions(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Error("unknown format accepted")
	}
	if _, err := logging.New(logging.Options{Level: "loud"}); err == nil {
		t.Error("unknown level accepted")
	}
	if _, err := logging.New(logging.Options{Level: "warn+2", Writer: &bytes.Buffer{}}); err != nil {
		t.Errorf("numeric level offset rejected: %v", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "json"
	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}

	if _, err := logging.NewFromConfig(nil); err != nil {
		t.Error(err)
	}
	logging.NewNop().Error("discarded")
}
