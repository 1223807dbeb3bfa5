/*
 * handy.go, part of goformula.
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

/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package formula

import (
	"sort"
	"strconv"

	"github.com/rmera/goformula/element"
)

//formatCount writes a count the way the parser reads it back: no
//exponents, and the shortest representation that round-trips.
func formatCount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

//hillOrder returns the units in atoms, and their counts, sorted in Hill order.
//Isotopes follow their element, lighter isotopes first.
func hillOrder(atoms map[*element.Unit]float64) ([]*element.Unit, []float64) {
	units := make([]*element.Unit, 0, len(atoms))
	carbon := false
	for u := range atoms {
		units = append(units, u)
		if u.Symbol() == "C" {
			carbon = true
		}
	}
	rank := func(u *element.Unit) int {
		if !carbon {
			return 2
		}
		switch u.Symbol() {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.Slice(units, func(i, j int) bool {
		a, b := units[i], units[j]
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra < rb
		}
		if a.Symbol() != b.Symbol() {
			return a.Symbol() < b.Symbol()
		}
		return a.Isotope() < b.Isotope()
	})
	counts := make([]float64, len(units))
	for i, u := range units {
		counts[i] = atoms[u]
	}
	return units, counts
}

//isInUnits returns true if test is in container.
func isInUnits(container []*element.Unit, test *element.Unit) bool {
	for _, u := range container {
		if u == test {
			return true
		}
	}
	return false
}
