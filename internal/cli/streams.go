/*
 * streams.go, part of brook.
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

// NewStreamsCommand creates the streams command.
func NewStreamsCommand(rootOpts *RootOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "streams <topology>",
		Short: "Flatten each table into padded streams and report their layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") {
				rootOpts.cfg.Stream.Width = width
			}
			return runStreams(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", stream.DefaultWidth, "components per stream element (overrides stream.width)")
	return cmd
}

func runStreams(opts *RootOptions, path string, out io.Writer) error {
	tabs, closer, err := opts.loadTables(path, false)
	if err != nil {
		return err
	}
	defer closer()
	for _, t := range tabs {
		s, err := stream.Flatten(t, opts.cfg.Stream.Width)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-18s bonds: %6d width: %d particle stride: %3d (%d floats) parameter stride: %3d (%d floats)\n",
			s.Name, s.Bonds, s.Width, s.ParticleStride, len(s.Particles), s.ParameterStride, len(s.Parameters))
	}
	return closer()
}
