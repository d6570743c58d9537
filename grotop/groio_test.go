/*
 * groio_test.go, part of brook.
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

package gro

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSample(t *testing.T) {
	top, err := ReadFile("testdata/sample.itp", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"HarmonicBond", "HarmonicAngle", "RBTorsion", "PeriodicTorsion", "Constraint"}, top.Kinds())
	assert.Equal(t, 3+2+1+1+1, top.Len())

	bonds := top.Terms("HarmonicBond")
	require.Len(t, bonds, 3)
	assert.Equal(t, []int{2, 3}, bonds[1].IDs)
	assert.Equal(t, []float64{0.1530, 334720.0}, bonds[1].Params)
	assert.Equal(t, 16, bonds[1].Line)

	pt := top.Terms("PeriodicTorsion")
	require.Len(t, pt, 1)
	assert.Equal(t, 1, pt[0].Functype, "the #else branch should be read without defines")
	assert.Equal(t, []float64{180.0, 1.0, 2}, pt[0].Params)
}

func TestReadDefines(t *testing.T) {
	top, err := ReadFile("testdata/sample.itp", &ReadOptions{Defines: []string{"PERIODIC"}})
	require.NoError(t, err)
	pt := top.Terms("PeriodicTorsion")
	require.Len(t, pt, 1)
	assert.Equal(t, 9, pt[0].Functype)
	assert.Equal(t, []float64{0.0, 5.92, 3}, pt[0].Params)
}

func TestReadSections(t *testing.T) {
	top, err := ReadFile("testdata/sample.itp", &ReadOptions{Sections: []string{"angles", "constraints"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"HarmonicAngle", "Constraint"}, top.Kinds())

	_, err = ReadFile("testdata/sample.itp", &ReadOptions{Sections: []string{"pairs"}})
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	top, err := ReadFile("testdata/sample.itp", nil)
	require.NoError(t, err)
	var log bytes.Buffer
	tabs, err := top.Tables(&log)
	require.NoError(t, err)
	require.Len(t, tabs, 5)

	b := tabs[0]
	assert.Equal(t, "HarmonicBond", b.BondName())
	assert.Equal(t, 3, b.BondCount())
	assert.Equal(t, 2, b.ParticlesPerBond())
	assert.Equal(t, 2, b.ParametersPerBond())
	assert.Equal(t, [][]int{{0, 1}, {1, 2}, {2, 3}}, b.ParticleIndices())
	assert.True(t, b.Complete())
	assert.Same(t, &log, b.LogTarget())

	rb := tabs[2]
	assert.Equal(t, "RBTorsion", rb.BondName())
	assert.Equal(t, []float64{9.28, 12.16, -13.12, -3.06, 26.24, -31.5}, rb.ParameterRow(0))

	c := tabs[4]
	assert.Equal(t, [][]int{{0, 2}}, c.ParticleIndices())
	assert.Equal(t, [][]float64{{0.2530}}, c.BondParameters())
}

func TestTablesOneBased(t *testing.T) {
	top, err := ReadFile("testdata/sample.itp", &ReadOptions{OneBased: true})
	require.NoError(t, err)
	tab, err := top.Table("HarmonicAngle")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {2, 3, 4}}, tab.ParticleIndices())
	assert.Nil(t, tab.LogTarget())

	_, err = top.Table("UreyBradley")
	assert.Error(t, err)

	empty, err := top.Table("HarmonicImproper")
	require.NoError(t, err)
	assert.Zero(t, empty.BondCount())
}

func TestReadErrors(t *testing.T) {
	cases := map[string]string{
		"functype":   "[ bonds ]\n 1 2 5 0.1 100\n",
		"fields":     "[ angles ]\n 1 2\n",
		"atoms":      "[ bonds ]\n 1 x 1 0.1 100\n",
		"params":     "[ bonds ]\n 1 2 1 0.1\n",
		"badfloat":   "[ dihedrals ]\n 1 2 3 4 2 abc 10\n",
		"noFunctype": "[ constraints ]\n 1 2 a 0.1\n",
	}
	for name, s := range cases {
		_, err := Read(strings.NewReader(s), nil)
		assert.Error(t, err, name)
		assert.Contains(t, err.Error(), "line 2", name)
	}
}

func TestHeaderWhitespace(t *testing.T) {
	for _, h := range []string{"[\tbonds\t]", "[bonds]", "[ \t bonds]", "  [\u00a0bonds ]  ; comment"} {
		top, err := Read(strings.NewReader(h+"\n1 2 1 0.1 100\n"), nil)
		require.NoError(t, err, "%q", h)
		assert.Len(t, top.Terms("HarmonicBond"), 1, "%q", h)
	}
	_, err := Read(strings.NewReader("[\vbonds ]\n1 2 1 0.1 100\n"), nil)
	assert.ErrorContains(t, err, "malformed header")

	top, err := Read(strings.NewReader("[\tpairs\t]\n1 2 1\n"), nil)
	require.NoError(t, err)
	assert.Zero(t, top.Len())
}

func TestZeroIndexInOneBasedFile(t *testing.T) {
	top, err := Read(strings.NewReader("[ bonds ]\n0 1 1 0.1 100"), nil)
	require.NoError(t, err)
	_, err = top.Table("HarmonicBond")
	assert.Error(t, err)
}

func TestNoTrailingNewline(t *testing.T) {
	top, err := Read(strings.NewReader("[ bonds ]\n1 2 1 0.1 100\n[ constraints ]\n2 3 1 0.2"), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, top.Len())
	require.Len(t, top.Terms("Constraint"), 1)
	assert.Equal(t, 4, top.Terms("Constraint")[0].Line)
}

func TestTermZeroBased(t *testing.T) {
	term := &Term{IDs: []int{1, 2, 5}, Line: 3}
	ids, err := term.ZeroBased(true)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, ids)
	ids, err = term.ZeroBased(false)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, ids)

	term.IDs = []int{0, 1}
	_, err = term.ZeroBased(true)
	assert.ErrorContains(t, err, "line 3")
}

func TestKindOf(t *testing.T) {
	k, ok := KindOf("dihedrals", 4)
	require.True(t, ok)
	assert.Equal(t, "PeriodicTorsion", k.Name)
	_, ok = KindOf("bonds", 2)
	assert.False(t, ok)
	for _, v := range Kinds {
		assert.Equal(t, sectionParticles[v.Section], v.Particles, v.Name)
	}
}

func compressedCopy(t *testing.T, name string, wrap func(io.Writer) (io.WriteCloser, error)) string {
	t.Helper()
	data, err := os.ReadFile("testdata/sample.itp")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	w, err := wrap(f)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestCompressed(t *testing.T) {
	gz := compressedCopy(t, "sample.itp.gz", func(f io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriter(f), nil
	})
	zs := compressedCopy(t, "sample.itp.zst", func(f io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(f)
	})
	plain, err := ReadFile("testdata/sample.itp", nil)
	require.NoError(t, err)
	want, err := plain.Tables()
	require.NoError(t, err)
	for _, name := range []string{gz, zs} {
		top, err := ReadFile(name, nil)
		require.NoError(t, err, name)
		got, err := top.Tables()
		require.NoError(t, err, name)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i].ContentsString(0), got[i].ContentsString(0), name)
		}
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := Open("testdata/nothere.itp")
	assert.Error(t, err)
}
