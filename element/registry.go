/*
 * registry.go, part of goformula.
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

import "fmt"

//Registry gives access to the atomic data needed by formulas.
//Implementations must be safe for concurrent reads, and must always return
//the same *Unit for the same symbol/isotope.
type Registry interface {
	//Lookup returns the unit for an element symbol, or for a special
	//isotope symbol such as D.
	Lookup(symbol string) (*Unit, error)

	//Isotope returns the isotope with mass number massNumber of the element
	//with the given symbol.
	Isotope(symbol string, massNumber int) (*Unit, error)

	//Mass returns the atomic mass of the unit in g/mol, or 0 if not known.
	Mass(u *Unit) float64

	//NaturalDensity returns the mass density (g/cm^3) of the pure element, scaled by
	//mass for isotopes.
	NaturalDensity(u *Unit) (float64, error)

	//NeutronScattering returns the coherent, absorptive and incoherent
	//scattering lengths (fm) for the unit at the given wavelength (A).
	NeutronScattering(u *Unit, wavelength float64) (bReal, bAbs, bInc float64, err error)

	//XrayScattering returns the atomic scattering factors f1 and f2 for
	//the unit, at the given wavelength (A).
	XrayScattering(u *Unit, wavelength float64) (f1, f2 float64, err error)
}

//UnknownError is returned when a symbol or isotope is not present in a registry.
type UnknownError struct {
	Symbol  string
	Isotope int //0 if an element was requested
}

func (err *UnknownError) Error() string {
	if err.Isotope == 0 {
		return fmt.Sprintf("goFormula/element: unknown element %q", err.Symbol)
	}
	return fmt.Sprintf("goFormula/element: unknown isotope %s[%d]", err.Symbol, err.Isotope)
}

//DataError is returned when the registry lacks some data for a known unit.
type DataError struct {
	Unit *Unit
	What string //the missing quantity, i.e. "density"
}

func (err *DataError) Error() string {
	return fmt.Sprintf("goFormula/element: no %s data for %s", err.What, err.Unit)
}

//NeutronSLD returns the real, absorptive and incoherent neutron scattering length densities
//(1e-6/A^2) of the unit u as a pure material with the given mass density (g/cm^3), at
//the given wavelength (A).
func NeutronSLD(reg Registry, u *Unit, density, wavelength float64) (rho, mu, inc float64, err error) {
	b, babs, binc, err := reg.NeutronScattering(u, wavelength)
	if err != nil {
		return 0, 0, 0, err
	}
	n := NumberDensity(density, reg.Mass(u))
	return n * b * neutronSLDFactor, n * babs * neutronSLDFactor, n * binc * neutronSLDFactor, nil
}

//XraySLD returns the real and absorptive X-ray scattering length densities (1e-6/A^2) of the
//unit u as a pure material with the given mass density (g/cm^3), at the given wavelength (A).
func XraySLD(reg Registry, u *Unit, density, wavelength float64) (rho, mu float64, err error) {
	f1, f2, err := reg.XrayScattering(u, wavelength)
	if err != nil {
		return 0, 0, err
	}
	n := NumberDensity(density, reg.Mass(u))
	return n * f1 * xraySLDFactor, n * f2 * xraySLDFactor, nil
}

//NeutronSLDFactor and XraySLDFactor convert number density times scattering
//length (fm) or scattering factor (electrons) into 1e-6/A^2.
func NeutronSLDFactor() float64 { return neutronSLDFactor }

func XraySLDFactor() float64 { return xraySLDFactor }
