/*
 * atomicdata.go, part of goformula.
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

import "math"

//Physical constants used in the scattering calculations.
const (
	Avogadro = 6.02214076e23 //1/mol
	//Classical electron radius, in Angstrom
	ElectronRadius = 2.8179403262e-5
	//Wavelength (A) of 2200 m/s neutrons, where absorption cross sections are tabulated
	AbsorptionWavelength = 1.798
	//h*c in keV*Angstrom
	planckC = 12.398419843320026
	//h^2/(2 m_n) in meV*A^2
	neutronEnergyFactor = 81.80420235
)

//conversion factors that take n*b (1/A^3 * fm) and n*f (1/A^3 * electrons)
//to SLDs in units of 1e-6/A^2
const (
	neutronSLDFactor = 10.0
	xraySLDFactor    = ElectronRadius * 1e6
)

//XrayEnergy returns the energy (keV) of an X-ray photon with the given wavelength (A)
func XrayEnergy(wavelength float64) float64 {
	return planckC / wavelength
}

//XrayWavelength returns the wavelength (A) of an X-ray photon of the given energy (keV)
func XrayWavelength(energy float64) float64 {
	return planckC / energy
}

//NeutronWavelength returns the wavelength (A) of a neutron with the given energy (meV)
func NeutronWavelength(energy float64) float64 {
	return math.Sqrt(neutronEnergyFactor / energy)
}

//NeutronEnergy returns the energy (meV) of a neutron with the given wavelength (A)
func NeutronEnergy(wavelength float64) float64 {
	return neutronEnergyFactor / (wavelength * wavelength)
}

//NumberDensity returns the number of formula units per cubic Angstrom for a
//material with the given mass density (g/cm^3) and molar mass (g/mol).
func NumberDensity(density, mass float64) float64 {
	return density / mass * Avogadro * 1e-24
}

//incoherentLength converts an incoherent cross section (barn) into an incoherent
//scattering length (fm). 1 barn = 100 fm^2, sigma = 4 pi b^2
func incoherentLength(sigma float64) float64 {
	return math.Sqrt(100 * sigma / (4 * math.Pi))
}

//absorptionLength returns the imaginary scattering length (fm) for an absorption
//cross section (barn, at AbsorptionWavelength), at the given wavelength (A).
//Absorption is assumed to follow the 1/v law.
func absorptionLength(sigma, wavelength float64) float64 {
	s := sigma * wavelength / AbsorptionWavelength
	return s / (2 * wavelength) * 1e-3
}
