/*
 * compose_test.go, part of goformula.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * goFormula is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */


package formula

import (
	"bytes"
	"errors"
	"log"
	"testing"
)

func TestAdd(Te *testing.T) {
	ca := MustParse(reg, "CaCO3")
	w := MustParse(reg, "H2O")
	ik := Add(ca, Scale(6, w))
	if !ik.Equal(ikaite()) {
		Te.Errorf("CaCO3 + 6 H2O gave %s, not ikaite", ik)
	}
	if ik.String() != "CaCO3(H2O)6" {
		Te.Errorf("Add lost the grouping: %s", ik)
	}
	if !relClose(ik.Mass(), ca.Mass()+6*w.Mass(), 1e-14) {
		Te.Errorf("Mass is not additive: %g vs %g", ik.Mass(), ca.Mass()+6*w.Mass())
	}
	na := MustParse(reg, "NaCl")
	s := Add(na, w)
	atoms := s.Atoms()
	if len(atoms) != 4 || atoms[unit("Na")] != 1 || atoms[unit("Cl")] != 1 || atoms[unit("H")] != 2 || atoms[unit("O")] != 1 {
		Te.Errorf("Wrong atoms for NaCl + H2O: %v", atoms)
	}
	if !Add(Empty(reg), Empty(reg)).IsEmpty() {
		Te.Error("The sum of two null compounds should be empty")
	}
	if !Add(Empty(reg), w).Equal(w) {
		Te.Error("The null compound should be neutral for Add")
	}
	named := MustParse(reg, "H2O", Name("water"), Density(1))
	if sum := Add(named, na); sum.Name() != "" || sum.HasDensity() {
		Te.Errorf("Add should not carry metadata, got name %q", sum.Name())
	}
}

func checkWaterMix(Te *testing.T, mix *Formula, hd float64) {
	Te.Helper()
	atoms := mix.Atoms()
	h, d, o := atoms[unit("H")], atoms[unit("D")], atoms[unit("O")]
	if !relClose(h+d, 2*o, 1e-14) {
		Te.Errorf("H+D should be twice O in %s: %g %g %g", mix, h, d, o)
	}
	if !relClose(h/d, hd, 1e-14) {
		Te.Errorf("H/D should be %g, not %g", hd, h/d)
	}
	if h != 2 && d != 2 {
		Te.Errorf("The smallest component should enter once in %s", mix)
	}
}

func TestMix(Te *testing.T) {
	for _, r := range [][2]float64{{3, 2}, {3.2, 4.1}} {
		h2o := MustParse(reg, "H2O", NaturalDensity(1))
		d2o := MustParse(reg, "D2O", NaturalDensity(1))
		rh, err := h2o.Density()
		if err != nil {
			Te.Fatal(err)
		}
		rd, err := d2o.Density()
		if err != nil {
			Te.Fatal(err)
		}
		if rh != 1 {
			Te.Errorf("H2O should keep its natural density, got %g", rh)
		}
		vol, err := MixByVolume(reg, []Portion{{h2o, r[0]}, {d2o, r[1]}})
		if err != nil {
			Te.Fatal(err)
		}
		checkWaterMix(Te, vol, r[0]/r[1])
		dv, err := vol.Density()
		if err != nil {
			Te.Error(err)
		}
		if !relClose(dv, (r[0]*rh+r[1]*rd)/(r[0]+r[1]), 1e-14) {
			Te.Errorf("Wrong density by volume %g", dv)
		}
		wt, err := MixByWeight(reg, []Portion{{h2o, r[0]}, {d2o, r[1]}})
		if err != nil {
			Te.Fatal(err)
		}
		checkWaterMix(Te, wt, r[0]/r[1]*rd/rh)
		dw, err := wt.Density()
		if err != nil {
			Te.Error(err)
		}
		if !relClose(dw, (r[0]+r[1])/(r[0]/rh+r[1]/rd), 1e-14) {
			Te.Errorf("Wrong density by weight %g", dw)
		}
	}
}

func TestMixZero(Te *testing.T) {
	h2o := MustParse(reg, "H2O", Density(1))
	d2o := MustParse(reg, "D2O", Density(1.1))
	for _, mix := range []func() (*Formula, error){
		func() (*Formula, error) { return MixByWeight(reg, []Portion{{h2o, 0}, {d2o, 2}}) },
		func() (*Formula, error) { return MixByVolume(reg, []Portion{{h2o, 0}, {d2o, 2}}) },
	} {
		f, err := mix()
		if err != nil {
			Te.Fatal(err)
		}
		if !f.Equal(d2o) || f.String() != "D2O" {
			Te.Errorf("A zero amount should drop the component, got %s", f)
		}
		if d, err := f.Density(); err != nil || !relClose(d, 1.1, 1e-14) {
			Te.Errorf("Single component mixture should keep the density: %g %v", d, err)
		}
	}
	f, err := MixByWeight(reg, []Portion{{h2o, 0}, {d2o, 0}})
	if err != nil || !f.IsEmpty() {
		Te.Errorf("All-zero mixture should be empty: %s %v", f, err)
	}
	f, err = MixByVolume(reg, nil)
	if err != nil || !f.IsEmpty() {
		Te.Errorf("Mixture of nothing should be empty: %s %v", f, err)
	}
}

func TestMixText(Te *testing.T) {
	glass, err := MixByWeight(reg, []Portion{{Text("SiO2"), 75}, {Text("Na2O"), 15}, {Text("CaO"), 10}}, Density(2.52), Name("soda-lime glass"))
	if err != nil {
		Te.Fatal(err)
	}
	if glass.Name() != "soda-lime glass" || glass.String() != "soda-lime glass" {
		Te.Errorf("Wrong name %q", glass.Name())
	}
	if d, err := glass.Density(); err != nil || d != 2.52 {
		Te.Errorf("Wrong glass density %g %v", d, err)
	}
	atoms := glass.Atoms()
	m := glass.Mass()
	for _, c := range []struct {
		sym  string
		per  float64
		comp string
		frac float64
	}{
		{"Si", 1, "SiO2", 0.75},
		{"Na", 2, "Na2O", 0.15},
		{"Ca", 1, "CaO", 0.10},
	} {
		got := atoms[unit(c.sym)] / c.per * MustParse(reg, c.comp).Mass() / m
		if !relClose(got, c.frac, 1e-12) {
			Te.Errorf("Weight fraction of %s is %g, not %g", c.comp, got, c.frac)
		}
	}
	if atoms[unit("Ca")] != 1 {
		Te.Errorf("CaO has the smallest amount and should enter once, got %g", atoms[unit("Ca")])
	}
	mixed, err := MixByWeight(reg, []Portion{{Text("H2O"), 1}, {MustParse(reg, "NaCl"), 1}})
	if err != nil {
		Te.Fatal(err)
	}
	if mixed.HasDensity() {
		Te.Error("A mixture with components lacking density should have no density")
	}
}

func TestMixErrors(Te *testing.T) {
	_, err := MixByVolume(reg, []Portion{{Text("H2O"), 1}, {Text("D2O"), 1}})
	if !errors.Is(err, ErrMissingDensity) {
		Te.Errorf("Expected a missing density error, got %v", err)
	}
	_, err = MixByWeight(reg, []Portion{{Empty(reg), 1}, {Text("H2O"), 1}})
	if !errors.Is(err, ErrMissingMass) {
		Te.Errorf("Expected a missing mass error, got %v", err)
	}
	_, err = MixByWeight(reg, []Portion{{Text("H2O("), 1}})
	if !errors.Is(err, ErrParse) {
		Te.Errorf("Expected a parse error, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Substring() != "(" {
		Te.Errorf("The parse error should point to the open parenthesis: %v", err)
	} else if deco := e.Decorate(""); deco[len(deco)-1] != "MixByWeight" {
		Te.Errorf("The error should be decorated with the mixing function: %v", deco)
	}
	_, err = MixByVolume(reg, []Portion{{Text("Xx2O"), 1}})
	if !errors.Is(err, ErrUnknownElement) {
		Te.Errorf("Expected an unknown element error, got %v", err)
	}
	defer func() {
		if recover() == nil {
			Te.Error("A negative amount should panic")
		}
	}()
	MixByWeight(reg, []Portion{{Text("H2O"), -1}})
}

func TestMixDensityWarning(Te *testing.T) {
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	portions := []Portion{{Text("SiO2"), 75}, {Text("Na2O"), 25}}
	for _, c := range []struct {
		opts []Option
		warn bool
	}{
		{nil, true},
		{[]Option{Density(2.5)}, false},
		{[]Option{NaturalDensity(2.5)}, false},
		{[]Option{CellVolume(500)}, false},
	} {
		buf.Reset()
		mix, err := MixByWeight(reg, portions, c.opts...)
		if err != nil {
			Te.Fatal(err)
		}
		if mix.HasDensity() == c.warn {
			Te.Errorf("Mixture with %d options: HasDensity is %v", len(c.opts), mix.HasDensity())
		}
		if warned := buf.Len() > 0; warned != c.warn {
			Te.Errorf("Mixture with %d options: warning logged %v, expected %v: %s", len(c.opts), warned, c.warn, buf.String())
		}
	}
}

func TestMixNilFormula(Te *testing.T) {
	defer func() {
		if recover() == nil {
			Te.Error("A nil *Formula component should panic")
		}
	}()
	var f *Formula
	MixByVolume(reg, []Portion{{Text("H2O"), 1}, {f, 1}})
}
