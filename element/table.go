/*
 * table.go, part of goformula.
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

package element

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log"
	"sync"

	"gonum.org/v1/gonum/interp"
	"gopkg.in/yaml.v3"
)

//go:embed elements.yaml
var bundled []byte

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

//Default returns the registry built from the bundled element data.
//The table is loaded the first time Default is called, and it is shared
//(read-only) afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		var err error
		defaultTable, err = Load(bytes.NewReader(bundled))
		if err != nil {
			//the bundled data is part of the program, so this is a bug.
			panic("goFormula/element.Default: broken bundled data: " + err.Error())
		}
	})
	return defaultTable
}

//The YAML document, as stored on disk.
type yamlNeutron struct {
	BC         float64 `yaml:"b_c"`
	Incoherent float64 `yaml:"incoherent"`
	Absorption float64 `yaml:"absorption"`
}

type yamlXray struct {
	Energy []float64 `yaml:"energy"`
	F1     []float64 `yaml:"f1"`
	F2     []float64 `yaml:"f2"`
}

type yamlIsotope struct {
	MassNumber int          `yaml:"mass_number"`
	Symbol     string       `yaml:"symbol"`
	Mass       float64      `yaml:"mass"`
	Neutron    *yamlNeutron `yaml:"neutron"`
}

type yamlElement struct {
	Symbol   string        `yaml:"symbol"`
	Number   int           `yaml:"number"`
	Mass     float64       `yaml:"mass"`
	Density  float64       `yaml:"density"`
	Neutron  *yamlNeutron  `yaml:"neutron"`
	Xray     *yamlXray     `yaml:"xray"`
	Isotopes []yamlIsotope `yaml:"isotopes"`
}

type yamlTable struct {
	Elements []yamlElement `yaml:"elements"`
}

//xray scattering factors, interpolated in energy
type xrayData struct {
	emin, emax float64
	f1, f2     interp.PiecewiseLinear
}

type record struct {
	mass    float64
	density float64
	neutron *yamlNeutron
	xray    *xrayData //shared between an element and its isotopes
}

type isoKey struct {
	symbol string
	mass   int
}

//Table is a Registry backed by an in-memory table of element data.
//It is never modified after Load returns, so it can be shared between goroutines.
type Table struct {
	units    []*Unit
	symbols  map[string]*Unit
	isotopes map[isoKey]*Unit
	data     map[*Unit]*record
}

//Load reads a YAML element table from r and returns the corresponding registry.
func Load(r io.Reader) (*Table, error) {
	var doc yamlTable
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("goFormula/element.Load: can't decode table: %w", err)
	}
	T := &Table{
		symbols:  make(map[string]*Unit),
		isotopes: make(map[isoKey]*Unit),
		data:     make(map[*Unit]*record),
	}
	for _, e := range doc.Elements {
		if err := T.addElement(e); err != nil {
			return nil, fmt.Errorf("goFormula/element.Load: %w", err)
		}
	}
	return T, nil
}

func (T *Table) addElement(e yamlElement) error {
	if e.Symbol == "" || e.Mass <= 0 {
		return fmt.Errorf("element %q (Z=%d) needs a symbol and a positive mass", e.Symbol, e.Number)
	}
	if _, ok := T.symbols[e.Symbol]; ok {
		return fmt.Errorf("element %s defined twice", e.Symbol)
	}
	el := NewElement(e.Symbol, e.Number)
	rec := &record{mass: e.Mass, density: e.Density, neutron: e.Neutron}
	if e.Xray != nil {
		x, err := newXrayData(e.Xray)
		if err != nil {
			return fmt.Errorf("element %s: %w", e.Symbol, err)
		}
		rec.xray = x
	}
	T.symbols[e.Symbol] = el
	T.data[el] = rec
	T.units = append(T.units, el)
	for _, i := range e.Isotopes {
		if i.MassNumber <= 0 || i.Mass <= 0 {
			return fmt.Errorf("isotope %d of %s needs a mass number and a positive mass", i.MassNumber, e.Symbol)
		}
		key := isoKey{e.Symbol, i.MassNumber}
		if _, ok := T.isotopes[key]; ok {
			return fmt.Errorf("isotope %s[%d] defined twice", e.Symbol, i.MassNumber)
		}
		iso := NewIsotope(el, i.MassNumber, i.Symbol)
		irec := &record{mass: i.Mass, neutron: i.Neutron, xray: rec.xray}
		//isotopes keep the molar volume of the element.
		irec.density = e.Density * i.Mass / e.Mass
		T.isotopes[key] = iso
		T.data[iso] = irec
		T.units = append(T.units, iso)
		if i.Symbol != "" {
			if _, ok := T.symbols[i.Symbol]; ok {
				return fmt.Errorf("special symbol %s already used", i.Symbol)
			}
			T.symbols[i.Symbol] = iso
		}
	}
	return nil
}

func newXrayData(x *yamlXray) (*xrayData, error) {
	if len(x.Energy) < 2 || len(x.F1) != len(x.Energy) || len(x.F2) != len(x.Energy) {
		return nil, fmt.Errorf("xray table needs at least 2 energies, and one f1 and f2 per energy")
	}
	for i := 1; i < len(x.Energy); i++ {
		if x.Energy[i] <= x.Energy[i-1] {
			return nil, fmt.Errorf("xray energies must be strictly increasing")
		}
	}
	ret := new(xrayData)
	if err := ret.f1.Fit(x.Energy, x.F1); err != nil {
		return nil, fmt.Errorf("can't fit f1: %w", err)
	}
	if err := ret.f2.Fit(x.Energy, x.F2); err != nil {
		return nil, fmt.Errorf("can't fit f2: %w", err)
	}
	ret.emin = x.Energy[0]
	ret.emax = x.Energy[len(x.Energy)-1]
	return ret, nil
}

//Units returns all the units in the table, elements followed by their isotopes,
//in the order they were read.
func (T *Table) Units() []*Unit {
	ret := make([]*Unit, len(T.units))
	copy(ret, T.units)
	return ret
}

//Lookup returns the unit with the given element or special isotope symbol.
func (T *Table) Lookup(symbol string) (*Unit, error) {
	u, ok := T.symbols[symbol]
	if !ok {
		return nil, &UnknownError{Symbol: symbol}
	}
	return u, nil
}

//Isotope returns the isotope massNumber of the element symbol.
func (T *Table) Isotope(symbol string, massNumber int) (*Unit, error) {
	el, err := T.Lookup(symbol)
	if err != nil {
		return nil, err
	}
	el = el.Element()
	u, ok := T.isotopes[isoKey{el.symbol, massNumber}]
	if !ok {
		return nil, &UnknownError{Symbol: el.symbol, Isotope: massNumber}
	}
	return u, nil
}

//record returns the data for u. Units built by another registry are
//matched by symbol and mass number.
func (T *Table) record(u *Unit) *record {
	if u == nil {
		return nil
	}
	if r, ok := T.data[u]; ok {
		return r
	}
	var own *Unit
	var err error
	if u.isotope == 0 {
		own, err = T.Lookup(u.symbol)
	} else {
		own, err = T.Isotope(u.symbol, u.isotope)
	}
	if err != nil {
		return nil
	}
	return T.data[own]
}

//Mass returns the mass of the unit in g/mol, or 0 if the unit is unknown.
func (T *Table) Mass(u *Unit) float64 {
	r := T.record(u)
	if r == nil {
		return 0
	}
	return r.mass
}

//NaturalDensity returns the density of the pure material made of u.
func (T *Table) NaturalDensity(u *Unit) (float64, error) {
	r := T.record(u)
	if r == nil {
		return 0, &UnknownError{Symbol: u.symbol, Isotope: u.isotope}
	}
	if r.density <= 0 {
		return 0, &DataError{Unit: u, What: "density"}
	}
	return r.density, nil
}

//NeutronScattering returns the coherent, absorptive and incoherent scattering lengths (fm)
//of u at the given wavelength (A).
func (T *Table) NeutronScattering(u *Unit, wavelength float64) (bReal, bAbs, bInc float64, err error) {
	if wavelength <= 0 {
		return 0, 0, 0, fmt.Errorf("goFormula/element.NeutronScattering: invalid wavelength %g", wavelength)
	}
	r := T.record(u)
	if r == nil {
		return 0, 0, 0, &UnknownError{Symbol: u.symbol, Isotope: u.isotope}
	}
	if r.neutron == nil {
		return 0, 0, 0, &DataError{Unit: u, What: "neutron scattering"}
	}
	n := r.neutron
	return n.BC, absorptionLength(n.Absorption, wavelength), incoherentLength(n.Incoherent), nil
}

//XrayScattering returns the scattering factors f1 and f2 of u at the given wavelength (A).
//Energies outside the tabulated range use the value at the nearest end of the table.
func (T *Table) XrayScattering(u *Unit, wavelength float64) (f1, f2 float64, err error) {
	if wavelength <= 0 {
		return 0, 0, fmt.Errorf("goFormula/element.XrayScattering: invalid wavelength %g", wavelength)
	}
	r := T.record(u)
	if r == nil {
		return 0, 0, &UnknownError{Symbol: u.symbol, Isotope: u.isotope}
	}
	if r.xray == nil {
		return 0, 0, &DataError{Unit: u, What: "X-ray scattering"}
	}
	x := r.xray
	e := XrayEnergy(wavelength)
	if e < x.emin || e > x.emax {
		log.Printf("goFormula/element.XrayScattering: energy %.3f keV outside the table for %s (%.3f-%.3f keV), clamping", e, u, x.emin, x.emax)
		e = min(max(e, x.emin), x.emax)
	}
	return x.f1.Predict(e), x.f2.Predict(e), nil
}
