/*
 * cli_test.go, part of brook.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = filepath.Join("..", "..", "grotop", "testdata", "sample.itp")

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errb := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errb)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errb.String(), err
}

func TestDump(t *testing.T) {
	out, logs, err := execute(t, "dump", sample)
	require.NoError(t, err)
	for _, name := range []string{"HarmonicBond", "HarmonicAngle", "RBTorsion", "PeriodicTorsion", "Constraint"} {
		assert.Contains(t, out, name)
	}
	assert.Equal(t, 5, strings.Count(out, "Bonds:\n"))
	assert.Contains(t, out, "     1 [     1      2 ] [  1.5300000000e-01   3.3472000000e+05 ]")
	assert.Contains(t, logs, "topology read")
}

func TestDumpFile(t *testing.T) {
	dir := t.TempDir()
	dumpFile := filepath.Join(dir, "dump.txt")
	cfgFile := filepath.Join(dir, "bondtab.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("dump:\n  file: "+dumpFile+"\n"), 0o644))

	out, _, err := execute(t, "--config", cfgFile, "dump", sample)
	require.NoError(t, err)
	data, err := os.ReadFile(dumpFile)
	require.NoError(t, err)
	assert.Equal(t, out, string(data))
}

func TestOtherCommandsKeepDumpFile(t *testing.T) {
	dir := t.TempDir()
	dumpFile := filepath.Join(dir, "dump.txt")
	cfgFile := filepath.Join(dir, "bondtab.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("dump:\n  file: "+dumpFile+"\n"), 0o644))

	out, _, err := execute(t, "--config", cfgFile, "dump", sample)
	require.NoError(t, err)
	require.NotEmpty(t, out)

	png := filepath.Join(dir, "bonds.png")
	for _, args := range [][]string{
		{"stats", sample},
		{"streams", sample},
		{"plot", "--out", png, sample},
		{"dump", "nothere.itp"},
	} {
		_, _, _ = execute(t, append([]string{"--config", cfgFile}, args...)...)
		data, err := os.ReadFile(dumpFile)
		require.NoError(t, err)
		assert.Equal(t, out, string(data), "after %v", args)
	}
}

func TestDumpErrors(t *testing.T) {
	_, _, err := execute(t, "dump", "nothere.itp")
	assert.Error(t, err)
	_, _, err = execute(t, "dump")
	assert.Error(t, err)
	_, _, err = execute(t, "--config", "nothere.yaml", "dump", sample)
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, _, err := execute(t, "-v", "stats", sample)
	require.NoError(t, err)
	assert.Contains(t, out, "HarmonicBond (3 bonds)")
	assert.Contains(t, out, "mean:   1.530000e-01")
}

func TestStreams(t *testing.T) {
	out, _, err := execute(t, "streams", "--width", "8", sample)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[2], "RBTorsion")
	assert.Contains(t, lines[2], "width: 8")
	assert.Contains(t, lines[2], "parameter stride:   8")
}

func TestPlot(t *testing.T) {
	png := filepath.Join(t.TempDir(), "angles.png")
	_, logs, err := execute(t, "plot", "--term", "HarmonicAngle", "--param", "1", "--bins", "4", "--out", png, sample)
	require.NoError(t, err)
	data, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
	assert.Contains(t, logs, "histogram written")

	_, _, err = execute(t, "plot", "--term", "UreyBradley", "--out", png, sample)
	assert.ErrorContains(t, err, "UreyBradley")

	auto := filepath.Join(t.TempDir(), "auto.png")
	_, _, err = execute(t, "plot", "--term", "HarmonicAngle", "--bins", "0", "--out", auto, sample)
	require.NoError(t, err)
	assert.FileExists(t, auto)

	bad := filepath.Join(t.TempDir(), "bad.png")
	_, _, err = execute(t, "plot", "--term", "HarmonicAngle", "--param", "5", "--out", bad, sample)
	assert.Error(t, err)
	assert.NoFileExists(t, bad)
}
