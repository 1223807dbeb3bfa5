/*
 * unit.go, part of goformula.
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

//Unit is an atomic unit: either an element at natural abundance, or one
//of its isotopes. Units are created by a registry and never change afterwards,
//so they can be compared by pointer.
type Unit struct {
	symbol  string
	alias   string //special symbol for some isotopes, like D for H[2]
	number  int
	isotope int   //mass number, 0 for the natural element
	element *Unit //the natural element, nil if this Unit is one.
}

//NewElement returns a Unit for the element with the given symbol and atomic number.
//Registry implementations use it to build their units.
func NewElement(symbol string, number int) *Unit {
	return &Unit{symbol: symbol, number: number}
}

//NewIsotope returns the isotope of element el with mass number massNumber.
//alias can be an empty string.
func NewIsotope(el *Unit, massNumber int, alias string) *Unit {
	if el == nil || el.element != nil {
		panic("goFormula/element.NewIsotope: isotopes must be built on a natural element")
	}
	return &Unit{symbol: el.symbol, alias: alias, number: el.number, isotope: massNumber, element: el}
}

//Symbol returns the element symbol, also for isotopes (O for O[18]).
func (U *Unit) Symbol() string {
	return U.symbol
}

//Number returns the atomic number
func (U *Unit) Number() int {
	return U.number
}

//Isotope returns the mass number of the unit, or 0 if the unit is a natural element
func (U *Unit) Isotope() int {
	return U.isotope
}

//IsIsotope returns true if the unit is a specific isotope
func (U *Unit) IsIsotope() bool {
	return U.element != nil
}

//Element returns the natural element for U. For an element it returns U itself.
func (U *Unit) Element() *Unit {
	if U.element == nil {
		return U
	}
	return U.element
}

//String renders the unit the way the formula grammar reads it back:
//"O", "O[18]", or the special symbol ("D") when the isotope has one.
func (U *Unit) String() string {
	if U.alias != "" {
		return U.alias
	}
	if U.isotope == 0 {
		return U.symbol
	}
	return fmt.Sprintf("%s[%d]", U.symbol, U.isotope)
}

//Alias returns the special symbol of the unit, or an empty string.
func (U *Unit) Alias() string {
	return U.alias
}
