/*
 * plot.go, part of brook.
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
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/brook/stream"
)

// PlotOptions holds the flags of the plot command.
type PlotOptions struct {
	Term  string
	Param int
	Out   string
	Bins  int
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{}
	cmd := &cobra.Command{
		Use:   "plot <topology>",
		Short: "Plot a histogram of one parameter of one kind of term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("bins") {
				opts.Bins = rootOpts.cfg.Plot.Bins
			}
			return runPlot(rootOpts, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.Term, "term", "t", "HarmonicBond", "kind of term to plot")
	cmd.Flags().IntVarP(&opts.Param, "param", "p", 0, "0-based parameter index")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "histogram.png", "output PNG file")
	cmd.Flags().IntVarP(&opts.Bins, "bins", "b", 0, "number of bins (overrides plot.bins, 0 for automatic)")
	return cmd
}

func runPlot(opts *RootOptions, popts *PlotOptions, path string) error {
	tabs, closer, err := opts.loadTables(path, false)
	if err != nil {
		return err
	}
	defer closer()
	for _, t := range tabs {
		if t.BondName() != popts.Term {
			continue
		}
		// The plot is rendered in memory first, so a failure leaves no file behind.
		var png bytes.Buffer
		if err := stream.Histogram(t, popts.Param, popts.Bins, &png); err != nil {
			return err
		}
		if err := os.WriteFile(popts.Out, png.Bytes(), 0o644); err != nil {
			return err
		}
		opts.log.Info("histogram written", "term", popts.Term, "param", popts.Param, "file", popts.Out)
		return closer()
	}
	return fmt.Errorf("no %s terms in %s", popts.Term, path)
}
