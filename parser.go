/*
 * parser.go, part of goformula.
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
	"strings"

	"github.com/rmera/goformula/element"
)

//Formula grammar, lowest precedence first:
//
//	formula := term (sep term)*          sep is '+' and/or whitespace
//	term    := [number] group+
//	group   := symbol [isotope] [number]
//	         | '(' formula ')' [number]
//
//A term with a leading multiplicity k != 1 becomes a sub-group with count k.
//A parenthesized group with count 1 is merged into the enclosing sequence.

type parser struct {
	reg  element.Registry
	src  string
	toks []token
	cur  int
}

//Parse builds a formula from its textual representation, i.e. "CaCO3(H2O)6",
//"CaCO3+6H2O", "Fe0.75Ni0.25" or "O[18]". The empty string gives the null compound.
func Parse(reg element.Registry, s string, opts ...Option) (*Formula, error) {
	const funcname = "Parse"
	if strings.TrimSpace(s) == "" {
		return Empty(reg, opts...), nil
	}
	toks, err := lex(s)
	if err != nil {
		return nil, errDecorate(err, funcname)
	}
	p := &parser{reg: reg, src: s, toks: toks}
	parts, err := p.formula(false)
	if err != nil {
		return nil, errDecorate(err, funcname)
	}
	if t := p.peek(); t.typ != tokEOF {
		return nil, errDecorate(p.unexpected(t), funcname)
	}
	return newFormula(reg, NewGroup(parts...), opts...), nil
}

//MustParse is like Parse but panics on error. Meant for formulas known
//at compile time.
func MustParse(reg element.Registry, s string, opts ...Option) *Formula {
	f, err := Parse(reg, s, opts...)
	if err != nil {
		panic(err.Error())
	}
	return f
}

func (p *parser) peek() token {
	return p.toks[p.cur]
}

func (p *parser) next() token {
	t := p.toks[p.cur]
	if t.typ != tokEOF {
		p.cur++
	}
	return t
}

func (p *parser) unexpected(t token) *Error {
	switch t.typ {
	case tokEOF:
		return newParseError("parser", p.src, t.start, t.end, "unexpected end of formula")
	case tokRParen:
		return newParseError("parser", p.src, t.start, t.end, "unbalanced ')'")
	}
	return newParseError("parser", p.src, t.start, t.end, "unexpected "+t.text)
}

//dangling returns an error if the separator sep, found with no term on one of
//its sides, contains a '+'.
func (p *parser) dangling(sep token) *Error {
	i := strings.IndexByte(sep.text, '+')
	if i < 0 {
		return nil
	}
	return newParseError("parser", p.src, sep.start+i, sep.start+i+1, "dangling '+'")
}

//formula parses terms until the end of the input, or until a ')' if nested.
func (p *parser) formula(nested bool) ([]Part, error) {
	var parts []Part
	if t := p.peek(); t.typ == tokSep {
		p.next()
		if err := p.dangling(t); err != nil {
			return nil, err
		}
	}
	for {
		t := p.peek()
		if t.typ == tokEOF || (nested && t.typ == tokRParen) {
			break
		}
		term, err := p.term()
		if err != nil {
			return nil, err
		}
		parts = append(parts, term...)
		t = p.peek()
		if t.typ == tokSep {
			p.next()
			if n := p.peek(); n.typ == tokEOF || (nested && n.typ == tokRParen) {
				if err := p.dangling(t); err != nil {
					return nil, err
				}
			}
			continue
		}
		if t.typ == tokEOF || (nested && t.typ == tokRParen) {
			break
		}
		return nil, p.unexpected(t)
	}
	return parts, nil
}

func (p *parser) term() ([]Part, error) {
	mult := 1.0
	explicit := false
	if t := p.peek(); t.typ == tokNumber {
		p.next()
		mult = t.num
		explicit = true
	}
	var parts []Part
	for {
		t := p.peek()
		if t.typ != tokSymbol && t.typ != tokLParen {
			break
		}
		g, err := p.group()
		if err != nil {
			return nil, err
		}
		parts = append(parts, g...)
	}
	if len(parts) == 0 {
		return nil, p.unexpected(p.peek())
	}
	if explicit && mult != 1 {
		return []Part{Sub(mult, parts...)}, nil
	}
	return parts, nil
}

func (p *parser) count() float64 {
	if t := p.peek(); t.typ == tokNumber {
		p.next()
		return t.num
	}
	return 1
}

func (p *parser) group() ([]Part, error) {
	t := p.next()
	if t.typ == tokLParen {
		inner, err := p.formula(true)
		if err != nil {
			return nil, err
		}
		closing := p.next()
		if closing.typ != tokRParen {
			return nil, newParseError("parser", p.src, t.start, len(p.src), "unbalanced '('")
		}
		if len(inner) == 0 {
			return nil, newParseError("parser", p.src, t.start, closing.end, "empty group")
		}
		n := p.count()
		if n == 1 {
			return inner, nil
		}
		return []Part{Sub(n, inner...)}, nil
	}
	u, err := p.reg.Lookup(t.text)
	if err != nil {
		return nil, p.unknown(t, err)
	}
	if iso := p.peek(); iso.typ == tokIsotope {
		p.next()
		if u.IsIsotope() {
			return nil, newParseError("parser", p.src, t.start, iso.end, "isotope tag on an isotope symbol")
		}
		u, err = p.reg.Isotope(t.text, int(iso.num))
		if err != nil {
			return nil, p.unknown(token{text: t.text + iso.text, start: t.start, end: iso.end}, err)
		}
	}
	return []Part{Atom(p.count(), u)}, nil
}

func (p *parser) unknown(t token, err error) *Error {
	ret := registryError("parser", err)
	ret.sub = t.text
	ret.pos = t.start
	return ret
}
