/*
 * doc.go, part of goformula.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package formula represents chemical compounds and mixtures as formulas, and computes
their physical properties.



	**goFormula Capabilities**


    Parses formula strings such as "CaCO3(H2O)6", "CaCO3+6H2O", "Fe0.75Ni0.25"
	or "CaCO[18]3", keeping the grouping and order given, so formulas print
	back the way they were written. Hill order is available as a separate view.

    Builds formulas from nested (count, component) parts, from single atomic
	units, or by copying other formulas.

    Adds and scales formulas, and mixes them by weight or by volume.

    Computes molar masses, including isotope substitution, and densities, either
	given explicitly, from a cell volume, or from the natural density.

    Computes neutron (real, absorptive, incoherent) and X-ray (real, absorptive)
	scattering length densities.

    Saves and restores formulas as (optionally zstd-compressed) JSON.

Atomic data comes from an element.Registry, given explicitly when formulas
are built. The element package provides a registry with the elements most
commonly found in scattering samples:

	reg := element.Default()
	ikaite, err := formula.Parse(reg, "CaCO3(H2O)6", formula.Density(1.77))
	rho, mu, inc, err := ikaite.NeutronSLD(4.75)

Formulas are not modified after construction (only their name and density
can be set), so they can be read from several goroutines at once.

*/
package formula
