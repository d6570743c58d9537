/*
 * dump.go, part of brook.
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

	"github.com/rmera/brook/bondparams"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <topology>",
		Short: "Print the contents of every parameter table in a topology",
		Long: `Print the contents of the parameter table of each kind of bonded term in the
topology. If the configuration sets dump.file, the dumps are also written there.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

func runDump(opts *RootOptions, path string, out io.Writer) error {
	tabs, closer, err := opts.loadTables(path, true)
	if err != nil {
		return err
	}
	defer closer()
	for _, t := range tabs {
		s := t.ContentsString(opts.cfg.Dump.Level)
		if _, err := io.WriteString(out, s); err != nil {
			return err
		}
		if err := writeToLog(t, s); err != nil {
			return err
		}
	}
	return closer()
}

// writeToLog writes s to the log target of t, if it has one.
func writeToLog(t *bondparams.Table, s string) error {
	w := t.LogTarget()
	if w == nil {
		return nil
	}
	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("writing %s dump: %w", t.BondName(), err)
	}
	return nil
}
