/*
 * lexer.go, part of goformula.
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
	"strconv"
	"unicode/utf8"
)

type tokenType int

const (
	tokEOF     tokenType = iota
	tokSymbol            //element symbol: Ca, O, D
	tokIsotope           //[18]
	tokNumber            //6, 0.75, .5
	tokLParen
	tokRParen
	tokSep //'+' and/or whitespace between terms
)

type token struct {
	typ   tokenType
	text  string
	num   float64 //for tokNumber, and the mass number for tokIsotope
	start int     //byte offsets in the input
	end   int
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }
func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }

//lex splits a formula string into tokens. Runs of whitespace are collapsed,
//together with at most one '+', into a single separator.
func lex(src string) ([]token, error) {
	const funcname = "lex"
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		start := i
		switch {
		case isSpace(c) || c == '+':
			plus := false
			for i < len(src) && (isSpace(src[i]) || src[i] == '+') {
				if src[i] == '+' {
					if plus {
						return nil, newParseError(funcname, src, start, i+1, "empty term between '+' signs")
					}
					plus = true
				}
				i++
			}
			toks = append(toks, token{typ: tokSep, text: src[start:i], start: start, end: i})
		case isUpper(c):
			i++
			if i < len(src) && isLower(src[i]) {
				i++
			}
			toks = append(toks, token{typ: tokSymbol, text: src[start:i], start: start, end: i})
		case c == '[':
			if len(toks) == 0 || toks[len(toks)-1].typ != tokSymbol || toks[len(toks)-1].end != start {
				return nil, newParseError(funcname, src, start, start+1, "isotope tag must follow an element symbol")
			}
			i++
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if i >= len(src) || src[i] != ']' {
				return nil, newParseError(funcname, src, start, i+1, "malformed isotope tag")
			}
			if i == start+1 {
				return nil, newParseError(funcname, src, start, i+1, "isotope tag without mass number")
			}
			mass, err := strconv.Atoi(src[start+1 : i])
			if err != nil {
				return nil, newParseError(funcname, src, start, i+1, "invalid mass number")
			}
			i++
			toks = append(toks, token{typ: tokIsotope, text: src[start:i], num: float64(mass), start: start, end: i})
		case isDigit(c) || c == '.':
			dot := false
			digits := 0
			for i < len(src) && (isDigit(src[i]) || (src[i] == '.' && !dot)) {
				if src[i] == '.' {
					dot = true
				} else {
					digits++
				}
				i++
			}
			if digits == 0 {
				return nil, newParseError(funcname, src, start, i, "invalid number")
			}
			f, err := strconv.ParseFloat(src[start:i], 64)
			if err != nil {
				return nil, newParseError(funcname, src, start, i, "invalid number")
			}
			toks = append(toks, token{typ: tokNumber, text: src[start:i], num: f, start: start, end: i})
		case c == '(':
			i++
			toks = append(toks, token{typ: tokLParen, text: "(", start: start, end: i})
		case c == ')':
			i++
			toks = append(toks, token{typ: tokRParen, text: ")", start: start, end: i})
		case c == ']':
			return nil, newParseError(funcname, src, start, start+1, "unbalanced ']'")
		default:
			_, size := utf8.DecodeRuneInString(src[start:])
			return nil, newParseError(funcname, src, start, start+size, "unexpected character")
		}
	}
	toks = append(toks, token{typ: tokEOF, start: len(src), end: len(src)})
	return toks, nil
}
