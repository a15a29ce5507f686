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


// Package batch turns order files into sticker sheets.
//
// A [Runner] reads each order file, plans the sheet, writes the PDF and
// records the run in the history database.  Files which have already been
// processed are skipped unless [Runner.Force] is set.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"seehuhn.de/go/gangsheet"
	"seehuhn.de/go/gangsheet/document"
	"seehuhn.de/go/gangsheet/history"
	"seehuhn.de/go/gangsheet/internal/config"
	"seehuhn.de/go/gangsheet/order"
	"seehuhn.de/go/gangsheet/outline"
)

// ErrLocked is returned by [Runner.Run] if another process is writing to
// the same output directory.
var ErrLocked = errors.New("output directory is in use by another process")

const lockName = ".gangsheet.lock"

// Status describes the outcome for one order file.
type Status int

const (
	// Done means that a sheet was written.
	Done Status = iota
	// Unchanged means that the file was processed by an earlier run.
	Unchanged
	// Empty means that the file contains no printable stickers.
	Empty
	// Failed means that an error occurred.
	Failed
)

func (s Status) String() string {
	switch s {
	case Done:
		return "done"
	case Unchanged:
		return "unchanged"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes what happened to one order file.
type Result struct {
	Input  string
	Output string
	Status Status

	// Lines is the number of line items read, Skipped the number of line
	// items which were ignored.
	Lines   int
	Skipped int

	Pages       int
	Designs     int
	Copies      int
	Utilisation float64
	OutputBytes int64

	// Previous is the earlier run for an unchanged file.
	Previous *history.Entry

	Err error
}

// Runner processes order files using a fixed configuration.
type Runner struct {
	// Force causes files to be processed even if the history shows that
	// they were processed before.
	Force bool

	// Producer is recorded in the PDF metadata.
	Producer string

	cfg    *config.Config
	font   *outline.Font
	store  *history.Store
	intent *document.OutputIntent
	log    *slog.Logger

	now func() time.Time
}

// New creates a Runner.  The font and the output intent profile are loaded
// immediately.  If store is nil, no history is kept.
func New(cfg *config.Config, store *history.Store, logger *slog.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, errors.New("batch: missing configuration")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	font, err := cfg.LoadFont()
	if err != nil {
		return nil, err
	}

	r := &Runner{
		Producer: "gangsheet",
		cfg:      cfg,
		font:     font,
		store:    store,
		log:      logger,
		now:      time.Now,
	}

	if fname := cfg.Appearance.OutputIntentICC; fname != "" {
		profile, err := os.ReadFile(fname)
		if err != nil {
			return nil, fmt.Errorf("style.output_intent_icc: %w", err)
		}
		intent := &document.OutputIntent{
			Profile:   profile,
			Condition: filepath.Base(fname),
		}
		if err := intent.Check(); err != nil {
			return nil, fmt.Errorf("style.output_intent_icc %q: %w", fname, err)
		}
		r.intent = intent
	}
	return r, nil
}

// Inputs returns the order files to process.  If names is empty, all CSV
// files in the configured input directory are used, in lexical order.
func (r *Runner) Inputs(names []string) ([]string, error) {
	if len(names) > 0 {
		res := make([]string, len(names))
		for i, name := range names {
			abs, err := filepath.Abs(name)
			if err != nil {
				return nil, err
			}
			res[i] = abs
		}
		return res, nil
	}

	entries, err := os.ReadDir(r.cfg.Paths.InputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}
	var res []string
	for _, e := range entries {
		if e.IsDir() || !isCSV(e.Name()) {
			continue
		}
		res = append(res, filepath.Join(r.cfg.Paths.InputDir, e.Name()))
	}
	slices.Sort(res)
	return res, nil
}

func isCSV(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".csv")
}

// Run processes the given order files, using up to jobs files in
// parallel.  The results are returned in the order of the inputs.
// Errors for individual files are reported in the results; the returned
// error is only set if processing could not start.
func (r *Runner) Run(ctx context.Context, inputs []string, jobs int) ([]Result, error) {
	if err := os.MkdirAll(r.cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	lock := flock.New(filepath.Join(r.cfg.Paths.OutputDir, lockName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			r.log.Warn("failed to release lock", "error", err)
		}
	}()

	jobs = max(jobs, 1)
	results := make([]Result, len(inputs))
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup
	for i, input := range inputs {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return nil, ctx.Err()
		}
		wg.Add(1)
		go func() {
			defer func() {
				<-sem
				wg.Done()
			}()
			results[i] = r.Process(ctx, input)
		}()
	}
	wg.Wait()
	return results, ctx.Err()
}

// Process converts a single order file into a sheet.
func (r *Runner) Process(ctx context.Context, input string) Result {
	res := Result{
		Input:  input,
		Output: r.cfg.OutputPath(input),
	}
	log := r.log.With("file", filepath.Base(input))

	fail := func(err error) Result {
		res.Status = Failed
		res.Err = err
		log.Error("order file failed", "error", err)
		return res
	}

	digest, err := history.FileDigest(input)
	if err != nil {
		return fail(err)
	}
	if r.store != nil && !r.Force {
		prev, err := r.store.Lookup(ctx, digest)
		if err != nil {
			return fail(err)
		}
		if prev != nil {
			res.Status = Unchanged
			res.Previous = prev
			res.Output = prev.OutputPath
			res.Pages = prev.Pages
			res.Designs = prev.Designs
			res.Copies = prev.Copies
			res.OutputBytes = prev.OutputBytes
			log.Info("already processed", "run", prev.RunID, "at", prev.CreatedAt)
			return res
		}
	}

	plan, err := r.Plan(input, log)
	if err != nil {
		return fail(err)
	}
	res.Lines = plan.Lines
	res.Skipped = len(plan.Skipped)

	sheet := plan.Sheet
	res.Pages = sheet.Pages
	res.Designs = sheet.Designs
	res.Copies = sheet.Copies
	res.Utilisation = sheet.Utilisation()
	if sheet.Copies == 0 {
		res.Status = Empty
		log.Warn("no stickers to print")
		return res
	}

	runID := uuid.New()
	created := r.now()
	opt := &document.Options{
		Info: &document.Info{
			Title:    filepath.Base(res.Output),
			Subject:  filepath.Base(input),
			Producer: r.Producer,
			Created:  created,
			Language: r.cfg.Language(),
		},
		OutputIntent: r.intent,
		ID:           runID,
	}
	err = gangsheet.WriteFile(res.Output, sheet, gangsheet.Texts(plan.Items), r.cfg.Style(), opt)
	if err != nil {
		return fail(err)
	}
	if info, err := os.Stat(res.Output); err == nil {
		res.OutputBytes = info.Size()
	}
	log.Info("sheet written",
		"output", res.Output,
		"pages", res.Pages,
		"bytes", res.OutputBytes)

	if r.store != nil {
		entry := &history.Entry{
			RunID:       runID,
			InputPath:   input,
			Digest:      digest,
			OutputPath:  res.Output,
			Pages:       res.Pages,
			Designs:     res.Designs,
			Copies:      res.Copies,
			OutputBytes: res.OutputBytes,
			CreatedAt:   created,
		}
		if err := r.store.Record(ctx, entry); err != nil {
			return fail(fmt.Errorf("record history: %w", err))
		}
	}
	res.Status = Done
	return res
}

// Plan is the sheet layout for one order file.
type Plan struct {
	Sheet   *gangsheet.Sheet
	Items   []gangsheet.Item
	Skipped []order.Line
	Lines   int
}

// Plan reads an order file and lays out the stickers, without writing
// any output.
func (r *Runner) Plan(input string, log *slog.Logger) (*Plan, error) {
	if log == nil {
		log = r.log
	}

	fd, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	in := &r.cfg.Input
	lines, err := order.ReadCSV(fd, &order.Columns{
		Name:     in.NameColumn,
		Quantity: in.QuantityColumn,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(input), err)
	}

	sizes := r.cfg.SizeTable()
	items, skipped, err := order.Resolve(lines, &order.Options{
		SkipPatterns: in.SkipPatterns,
		Sizes:        sizes,
		Default:      gangsheet.Category(in.DefaultCategory),
	})
	if err != nil {
		return nil, err
	}
	for _, line := range skipped {
		log.Debug("line skipped", "row", line.Row, "name", line.Name)
	}

	opt := r.cfg.PlanOptions()
	opt.Logger = log
	planner, err := gangsheet.NewPlanner(r.font, opt)
	if err != nil {
		return nil, err
	}
	sheet, err := planner.Plan(items)
	if err != nil {
		return nil, err
	}
	return &Plan{
		Sheet:   sheet,
		Items:   items,
		Skipped: skipped,
		Lines:   len(lines),
	}, nil
}
