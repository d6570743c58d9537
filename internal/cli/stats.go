/*
 * stats.go, part of brook.
 *
 * Copyright 2026 The brook Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rmera/brook/stream"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <topology>",
		Short: "Print per-parameter statistics for each kind of term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

func runStats(opts *RootOptions, path string, out io.Writer) error {
	tabs, closer, err := opts.loadTables(path, false)
	if err != nil {
		return err
	}
	defer closer()
	for _, t := range tabs {
		if t.BondCount() == 0 || t.ParametersPerBond() == 0 {
			opts.log.Warn("skipping empty table", "name", t.BondName())
			continue
		}
		sum, err := stream.Summarize(t)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%d bonds)\n", t.BondName(), t.BondCount())
		for _, s := range sum {
			fmt.Fprintf(out, "  %s\n", s)
		}
	}
	return closer()
}
