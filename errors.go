/*
 * errors.go, part of goformula.
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
	"errors"
	"fmt"

	"github.com/rmera/goformula/element"
)

//Kind classifies the errors returned by this package.
type Kind int

const (
	//ParseError: malformed formula string.
	ParseError Kind = iota + 1
	//UnknownElement: symbol or isotope not present in the registry.
	UnknownElement
	//MissingDensity: a density-dependent calculation on a formula without density.
	MissingDensity
	//MissingMass: a mass-dependent calculation on a formula without mass.
	MissingMass
	//MissingData: the registry knows the unit, but lacks the data needed.
	MissingData
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case UnknownElement:
		return "unknown element"
	case MissingDensity:
		return "missing density"
	case MissingMass:
		return "missing mass"
	case MissingData:
		return "missing data"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Sentinels, to be used with errors.Is. Only the kind is compared.
var (
	ErrParse          = &Error{kind: ParseError}
	ErrUnknownElement = &Error{kind: UnknownElement}
	ErrMissingDensity = &Error{kind: MissingDensity}
	ErrMissingMass    = &Error{kind: MissingMass}
	ErrMissingData    = &Error{kind: MissingData}
)

//Error is the error type of the package. It implements Decorator.
type Error struct {
	kind    Kind
	message string
	sub     string //the offending part of the input, if any
	pos     int    //byte offset of sub in the input, -1 if not applicable
	deco    []string
	err     error
}

func newError(kind Kind, caller, message string) *Error {
	return &Error{kind: kind, message: message, pos: -1, deco: []string{caller}}
}

func newParseError(caller, input string, pos, end int, message string) *Error {
	if end > len(input) {
		end = len(input)
	}
	if pos > end {
		pos = end
	}
	return &Error{kind: ParseError, message: message, sub: input[pos:end], pos: pos, deco: []string{caller}}
}

//registryError translates an error from the registry into an *Error.
func registryError(caller string, err error) *Error {
	var unk *element.UnknownError
	var data *element.DataError
	kind := MissingData
	switch {
	case errors.As(err, &unk):
		kind = UnknownElement
	case errors.As(err, &data):
		if data.What == "density" {
			kind = MissingDensity
		}
	}
	ret := newError(kind, caller, err.Error())
	ret.err = err
	return ret
}

func (E *Error) Error() string {
	if E.pos >= 0 {
		return fmt.Sprintf("goFormula: %s at %d (%q): %s", E.kind, E.pos, E.sub, E.message)
	}
	return fmt.Sprintf("goFormula: %s: %s", E.kind, E.message)
}

//Kind returns the kind of error
func (E *Error) Kind() Kind {
	return E.kind
}

//Substring returns the part of the input responsible for a parse error,
//or an empty string.
func (E *Error) Substring() string {
	return E.sub
}

//Position returns the byte offset of Substring in the parsed string, or -1.
func (E *Error) Position() int {
	return E.pos
}

//Decorate adds dec to the list of callers the error went through, and returns the list.
//If dec is empty, it just returns the current list.
func (E *Error) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

func (E *Error) Unwrap() error {
	return E.err
}

//Is reports whether target is a sentinel of the same kind as E.
func (E *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == E.kind && t.message == ""
}

//errDecorate decorates err with the caller's name, if err is a Decorator.
func errDecorate(err error, caller string) error {
	if d, ok := err.(Decorator); ok {
		d.Decorate(caller)
	}
	return err
}
