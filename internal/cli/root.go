/*
 * root.go, part of brook.
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
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rmera/brook/bondparams"
	"github.com/rmera/brook/config"
	gro "github.com/rmera/brook/grotop"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	cfg *config.Config
	log *slog.Logger
}

// NewRootCommand creates the root command for the bondtab CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bondtab",
		Short: "Load bonded force-field terms into parameter tables",
		Long: `bondtab reads the bonded sections of Gromacs topologies (bonds, angles,
dihedrals and constraints) into bond parameter tables, one per kind of term,
and dumps, summarizes, flattens or plots them.`,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints them
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")

	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewStreamsCommand(opts))
	cmd.AddCommand(NewPlotCommand(opts))

	return cmd
}

// setup configures logging and loads the configuration.
func (o *RootOptions) setup(errw io.Writer) error {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.log = slog.New(slog.NewTextHandler(errw, &slog.HandlerOptions{Level: level}))
	if o.ConfigPath == "" {
		o.cfg = config.DefaultConfig()
		return nil
	}
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}
	o.log.Debug("configuration loaded", "path", o.ConfigPath)
	o.cfg = cfg
	return nil
}

// loadTables reads the topology in path and returns its tables. If withDump is true
// and the configuration names a dump file, the file is created, after the topology has
// been read, and set as the log target of the tables. The returned function closes it.
func (o *RootOptions) loadTables(path string, withDump bool) ([]*bondparams.Table, func() error, error) {
	closer := func() error { return nil }
	top, err := gro.ReadFile(path, o.cfg.ReadOptions())
	if err != nil {
		return nil, nil, err
	}
	o.log.Info("topology read", "path", path, "terms", top.Len(), "kinds", len(top.Kinds()))
	var logs []io.Writer
	if withDump && o.cfg.Dump.File != "" {
		f, err := os.Create(o.cfg.Dump.File)
		if err != nil {
			return nil, nil, fmt.Errorf("creating dump file: %w", err)
		}
		logs = append(logs, f)
		closer = f.Close
	}
	tabs, err := top.Tables(logs...)
	if err != nil {
		closer()
		return nil, nil, err
	}
	for _, t := range tabs {
		o.log.Debug("table loaded", "name", t.BondName(), "bonds", t.BondCount(),
			"particles", t.ParticlesPerBond(), "parameters", t.ParametersPerBond())
	}
	return tabs, closer, nil
}
