/*
 * interfaces.go, part of goformula.
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

import "github.com/rmera/goformula/element"

//Decorator is implemented by the errors of this package. The Decorate method allows to add
//and retrieve information from the error without changing its type or wrapping it.
type Decorator interface {
	Error() string
	//Decorate appends the name of a function in the calling stack, optionally followed
	//by ": extra info", and returns the resulting slice. An empty string only returns it.
	Decorate(string) []string
}

//Like is something that can stand for a formula in the composition functions:
//a *Formula, or a Text to be parsed. No other types implement it.
type Like interface {
	like(reg element.Registry) (*Formula, error)
}

//Text is a formula string, i.e. "CaCO3(H2O)6".
type Text string

func (t Text) like(reg element.Registry) (*Formula, error) {
	return Parse(reg, string(t))
}

func (F *Formula) like(reg element.Registry) (*Formula, error) {
	if F == nil {
		panic("goFormula: nil formula used as a mixture component")
	}
	return F, nil
}
