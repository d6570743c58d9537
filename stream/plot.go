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

package stream

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rmera/brook/bondparams"
)

// Histogram writes to w a PNG histogram of parameter param over all the bonds of tab,
// using the given number of bins. If bins is not positive, the square root of
// the number of bonds is used.
func Histogram(tab *bondparams.Table, param, bins int, w io.Writer) error {
	vals, err := Column(tab, param)
	if err != nil {
		return err
	}
	if bins <= 0 {
		bins = int(math.Ceil(math.Sqrt(float64(len(vals)))))
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = fmt.Sprintf("%s, parameter %d", tab.BondName(), param)
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Bonds"
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return fmt.Errorf("stream/Histogram: %w", err)
	}
	p.Add(h)
	p.Add(plotter.NewGrid())
	wt, err := p.WriterTo(4*vg.Inch, 3*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("stream/Histogram: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}
