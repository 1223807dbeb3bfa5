/*
 * properties.go, part of goformula.
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
	"fmt"

	"github.com/rmera/goformula/element"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//masses returns the units of F in Hill order, with their counts and masses.
//If natural is true, isotopes are given the mass of their element.
func (F *Formula) masses(natural bool) (units []*element.Unit, counts, masses []float64) {
	units, counts = hillOrder(F.Atoms())
	masses = make([]float64, len(units))
	for i, u := range units {
		if natural {
			u = u.Element()
		}
		masses[i] = F.reg.Mass(u)
	}
	return units, counts, masses
}

//Mass returns the molar mass of the formula in g/mol. Isotopes use their own mass.
func (F *Formula) Mass() float64 {
	_, counts, masses := F.masses(false)
	if len(counts) == 0 {
		return 0
	}
	return floats.Dot(counts, masses)
}

//NaturalMass returns the molar mass the formula would have if every isotope
//were replaced by its natural element.
func (F *Formula) NaturalMass() float64 {
	_, counts, masses := F.masses(true)
	if len(counts) == 0 {
		return 0
	}
	return floats.Dot(counts, masses)
}

//HasDensity returns true if a density can be obtained for the formula.
func (F *Formula) HasDensity() bool {
	_, err := F.Density()
	return err == nil
}

//Density returns the mass density of the formula in g/cm^3. It is, in order of preference:
//the explicit density, the one following from the cell volume, the natural density scaled
//by the isotope substitution, or, for single-element formulas with RegistryDensity, the
//density of the element in the registry, also scaled.
func (F *Formula) Density() (float64, error) {
	const funcname = "Density"
	switch {
	case F.density > 0:
		return F.density, nil
	case F.cell > 0:
		m := F.Mass()
		if m <= 0 {
			return 0, newError(MissingMass, funcname, fmt.Sprintf("%s has no mass", F))
		}
		return m / (F.cell * 1e-24 * element.Avogadro), nil
	case F.natural > 0:
		r, err := F.isotopeRatio(funcname)
		if err != nil {
			return 0, err
		}
		return F.natural * r, nil
	case F.registry:
		var els []*element.Unit
		for u := range F.Atoms() {
			if !isInUnits(els, u.Element()) {
				els = append(els, u.Element())
			}
		}
		if len(els) != 1 {
			return 0, newError(MissingDensity, funcname, fmt.Sprintf("the registry only gives densities for single-element formulas, not %s", F))
		}
		d, err := F.reg.NaturalDensity(els[0])
		if err != nil {
			return 0, registryError(funcname, err)
		}
		r, err := F.isotopeRatio(funcname)
		if err != nil {
			return 0, err
		}
		return d * r, nil
	}
	return 0, newError(MissingDensity, funcname, fmt.Sprintf("no density information for %s", F))
}

//isotopeRatio returns the ratio between the mass of the formula and its natural mass
func (F *Formula) isotopeRatio(funcname string) (float64, error) {
	nm := F.NaturalMass()
	if nm <= 0 {
		return 0, newError(MissingMass, funcname, fmt.Sprintf("%s has no mass", F))
	}
	return F.Mass() / nm, nil
}

//NumberDensity returns the number of formula units per cubic Angstrom.
func (F *Formula) NumberDensity() (float64, error) {
	const funcname = "NumberDensity"
	d, err := F.Density()
	if err != nil {
		return 0, errDecorate(err, funcname)
	}
	m := F.Mass()
	if m <= 0 {
		return 0, newError(MissingMass, funcname, fmt.Sprintf("%s has no mass", F))
	}
	return element.NumberDensity(d, m), nil
}

//scattering returns the number density of F and the sum over the atoms of F of
//the columns returned by lengths for each unit, weighted by the unit counts.
func (F *Formula) scattering(funcname string, ncols int, lengths func(u *element.Unit) ([]float64, error)) (float64, *mat.VecDense, error) {
	d, err := F.Density()
	if err != nil {
		return 0, nil, errDecorate(err, funcname)
	}
	units, counts, masses := F.masses(false)
	if len(units) == 0 {
		return 0, nil, newError(MissingMass, funcname, "empty formula")
	}
	m := floats.Dot(counts, masses)
	if m <= 0 {
		return 0, nil, newError(MissingMass, funcname, fmt.Sprintf("%s has no mass", F))
	}
	B := mat.NewDense(len(units), ncols, nil)
	for i, u := range units {
		row, err := lengths(u)
		if err != nil {
			return 0, nil, registryError(funcname, err)
		}
		B.SetRow(i, row)
	}
	sum := mat.NewVecDense(ncols, nil)
	sum.MulVec(B.T(), mat.NewVecDense(len(counts), counts))
	return element.NumberDensity(d, m), sum, nil
}

//NeutronSLD returns the real, absorptive and incoherent neutron scattering length
//densities of the formula (1e-6/A^2) at the given wavelength (A).
func (F *Formula) NeutronSLD(wavelength float64) (rho, mu, inc float64, err error) {
	n, b, err := F.scattering("NeutronSLD", 3, func(u *element.Unit) ([]float64, error) {
		b, babs, binc, err := F.reg.NeutronScattering(u, wavelength)
		return []float64{b, babs, binc}, err
	})
	if err != nil {
		return 0, 0, 0, err
	}
	f := element.NeutronSLDFactor()
	return n * b.AtVec(0) * f, n * b.AtVec(1) * f, n * b.AtVec(2) * f, nil
}

//XraySLD returns the real and absorptive X-ray scattering length densities of the
//formula (1e-6/A^2) at the given wavelength (A).
func (F *Formula) XraySLD(wavelength float64) (rho, mu float64, err error) {
	n, f, err := F.scattering("XraySLD", 2, func(u *element.Unit) ([]float64, error) {
		f1, f2, err := F.reg.XrayScattering(u, wavelength)
		return []float64{f1, f2}, err
	})
	if err != nil {
		return 0, 0, err
	}
	r := element.XraySLDFactor()
	return n * f.AtVec(0) * r, n * f.AtVec(1) * r, nil
}

//XraySLDEnergy is like XraySLD, but takes the photon energy in keV.
func (F *Formula) XraySLDEnergy(energy float64) (rho, mu float64, err error) {
	return F.XraySLD(element.XrayWavelength(energy))
}
