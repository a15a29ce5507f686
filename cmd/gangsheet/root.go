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
	"github.com/spf13/cobra"

	"seehuhn.de/go/gangsheet/internal/buildinfo"
	"seehuhn.de/go/gangsheet/internal/profile"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags
	ctx := newCommandContext(&flags)

	var stopProfile func() error

	rootCmd := &cobra.Command{
		Use:           "gangsheet",
		Short:         "Turn order exports into print-ready sticker sheets",
		Version:       buildinfo.Read().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			stop, err := profile.Start(flags.cpuProfile, flags.memProfile)
			if err != nil {
				return err
			}
			stopProfile = stop
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err = ctx.ensureConfig()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if stopProfile == nil {
				return nil
			}
			return stopProfile()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format (console or json)")
	pf.StringVar(&flags.cpuProfile, "cpuprofile", "", "Write a CPU profile to this file")
	pf.StringVar(&flags.memProfile, "memprofile", "", "Write an allocation profile to this file")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
