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


package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"seehuhn.de/go/gangsheet/internal/batch"
	"seehuhn.de/go/gangsheet/internal/buildinfo"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "run [FILE.csv ...]",
		Short: "Generate sticker sheets for order files",
		Long: `Generate a PDF sticker sheet for each order file.

If no files are given, all CSV files in the configured input directory
are processed.  Files which were processed before are skipped unless
--force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			runner, err := batch.New(cfg, store, logger)
			if err != nil {
				return err
			}
			runner.Force = force
			runner.Producer = buildinfo.Short("gangsheet")

			inputs, err := runner.Inputs(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(inputs) == 0 {
				fmt.Fprintf(out, "No order files found in %s\n", cfg.Paths.InputDir)
				return nil
			}

			if !cmd.Flags().Changed("jobs") {
				jobs = cfg.Run.Jobs
			}
			results, err := runner.Run(cmd.Context(), inputs, jobs)
			if err != nil {
				return err
			}
			printResults(cmd, results)

			failed := 0
			for _, res := range results {
				if res.Status == batch.Failed {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d order files failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Process files even if they were processed before")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 1, "Number of files processed in parallel")
	return cmd
}

func printResults(cmd *cobra.Command, results []batch.Result) {
	headers := []string{"File", "Status", "Pages", "Designs", "Copies", "Fill", "Size", "Output"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		row := []string{
			filepath.Base(res.Input),
			res.Status.String(),
			strconv.Itoa(res.Pages),
			strconv.Itoa(res.Designs),
			strconv.Itoa(res.Copies),
			"",
			"",
			"",
		}
		switch res.Status {
		case batch.Done:
			row[5] = fmt.Sprintf("%.0f%%", 100*res.Utilisation)
			fallthrough
		case batch.Unchanged:
			row[6] = humanize.Bytes(uint64(res.OutputBytes))
			row[7] = res.Output
		case batch.Failed:
			row[7] = res.Err.Error()
		}
		rows = append(rows, row)
	}
	writeTable(cmd.OutOrStdout(), headers, rows, aligns)
}
