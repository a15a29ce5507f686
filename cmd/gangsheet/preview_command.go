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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/gangsheet/internal/batch"
	"seehuhn.de/go/gangsheet/preview"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var page int
	var dpi float64
	var output string

	cmd := &cobra.Command{
		Use:   "preview FILE.csv",
		Short: "Render one page of a sheet as a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			runner, err := batch.New(cfg, nil, logger)
			if err != nil {
				return err
			}

			input := args[0]
			plan, err := runner.Plan(input, nil)
			if err != nil {
				return err
			}
			if plan.Sheet.Pages == 0 {
				return errors.New("the order contains no stickers")
			}
			if page < 1 || page > plan.Sheet.Pages {
				return fmt.Errorf("page %d out of range (the sheet has %d pages)", page, plan.Sheet.Pages)
			}

			img, err := preview.Page(plan.Sheet, page-1, cfg.Style(), dpi)
			if err != nil {
				return err
			}

			if output == "" {
				base := strings.TrimSuffix(cfg.OutputPath(input), filepath.Ext(cfg.Paths.OutputSuffix))
				output = fmt.Sprintf("%s-%d.png", base, page)
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			fd, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := preview.WritePNG(fd, img); err != nil {
				fd.Close()
				return err
			}
			if err := fd.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote page %d of %d to %s\n", page, plan.Sheet.Pages, output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (1-based)")
	cmd.Flags().Float64Var(&dpi, "dpi", preview.DefaultDPI, "Image resolution in dots per inch")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output PNG file")
	return cmd
}
