/*
 * formula.go, part of goformula.
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
	"math"
	"strings"

	"github.com/rmera/goformula/element"
)

//Part is a (count, component) pair. Exactly one of Unit and Sub is set.
type Part struct {
	Count float64
	Unit  *element.Unit
	Sub   *Group
}

//Atom returns a Part with count units of u.
func Atom(count float64, u *element.Unit) Part {
	return Part{Count: count, Unit: u}
}

//Sub returns a Part with count copies of the group formed by parts.
func Sub(count float64, parts ...Part) Part {
	return Part{Count: count, Sub: NewGroup(parts...)}
}

func (P Part) check() {
	if P.Count < 0 || math.IsNaN(P.Count) || math.IsInf(P.Count, 0) {
		panic(fmt.Sprintf("goFormula: invalid count %v", P.Count))
	}
	if (P.Unit == nil) == (P.Sub == nil) {
		panic("goFormula: a Part needs either a Unit or a Sub group")
	}
}

//Group is an ordered sequence of Parts. A group can't be modified once built,
//so sub-groups can be shared between formulas.
type Group struct {
	parts []Part
}

//NewGroup returns a group with the given parts, in order. It panics
//if a part has a negative count, or has both or none of Unit and Sub.
func NewGroup(parts ...Part) *Group {
	G := &Group{parts: make([]Part, len(parts))}
	for i, p := range parts {
		p.check()
		G.parts[i] = p
	}
	return G
}

//Len returns the number of parts in the group
func (G *Group) Len() int {
	if G == nil {
		return 0
	}
	return len(G.parts)
}

//Part returns the i-th part of the group. Panics if out of range.
func (G *Group) Part(i int) Part {
	if i >= G.Len() || i < 0 {
		panic(fmt.Sprintf("goFormula: Part %d requested from a group of %d", i, G.Len()))
	}
	return G.parts[i]
}

//deepCopy returns a copy of the group where every sub-group is also copied.
//Units are shared.
func (G *Group) deepCopy() *Group {
	ret := &Group{parts: make([]Part, len(G.parts))}
	for i, p := range G.parts {
		if p.Sub != nil {
			p.Sub = p.Sub.deepCopy()
		}
		ret.parts[i] = p
	}
	return ret
}

var emptyGroup = &Group{}

//Formula is a compound or mixture: a tree of counted atomic units, plus
//some optional metadata (name and density information). The atomic content
//of a formula never changes after construction.
type Formula struct {
	reg       element.Registry
	structure *Group
	name      string
	density   float64 //explicit density, g/cm^3
	natural   float64 //density of the natural-abundance material
	registry  bool    //take the natural density from the registry
	cell      float64 //volume (A^3) taken by one formula unit
}

//Option sets metadata on a formula.
type Option func(*Formula)

//Name sets the name of the formula. A named formula is printed by name.
func Name(name string) Option {
	return func(F *Formula) { F.name = name }
}

//Density sets an explicit mass density, in g/cm^3. Non-positive values unset it.
func Density(d float64) Option {
	return func(F *Formula) { F.density = positive(d) }
}

//NaturalDensity gives the density (g/cm^3) of the material at natural isotopic abundance.
//The density of the formula is this value scaled by the ratio between its mass and
//the mass it would have with natural isotopes.
func NaturalDensity(d float64) Option {
	return func(F *Formula) { F.natural = positive(d) }
}

//RegistryDensity takes the natural density of single-element formulas from the registry.
func RegistryDensity() Option {
	return func(F *Formula) { F.registry = true }
}

//CellVolume sets the volume, in A^3, occupied by one formula unit. The density
//follows from it and the mass of the formula.
func CellVolume(v float64) Option {
	return func(F *Formula) { F.cell = positive(v) }
}

func positive(f float64) float64 {
	if f > 0 && !math.IsInf(f, 0) {
		return f
	}
	return 0
}

func newFormula(reg element.Registry, structure *Group, opts ...Option) *Formula {
	F := &Formula{reg: reg, structure: structure}
	return F.Set(opts...)
}

//Empty returns the null compound: no atoms, no mass.
func Empty(reg element.Registry, opts ...Option) *Formula {
	return newFormula(reg, emptyGroup, opts...)
}

//FromParts returns a formula with the given structure.
func FromParts(reg element.Registry, parts ...Part) *Formula {
	if len(parts) == 0 {
		return Empty(reg)
	}
	return newFormula(reg, NewGroup(parts...))
}

//FromUnit returns a formula formed by a single atomic unit.
func FromUnit(reg element.Registry, u *element.Unit, opts ...Option) *Formula {
	return newFormula(reg, NewGroup(Atom(1, u)), opts...)
}

//Set applies the options to F, and returns F. Only metadata can be set after construction.
func (F *Formula) Set(opts ...Option) *Formula {
	for _, o := range opts {
		o(F)
	}
	return F
}

//SetName sets the name of the formula
func (F *Formula) SetName(name string) {
	F.name = name
}

//SetDensity sets an explicit density for the formula.
func (F *Formula) SetDensity(d float64) {
	F.density = positive(d)
}

//Copy returns a deep copy of F with the options given applied on top of F's metadata.
//The copy shares no structure with F, except for the atomic units.
func (F *Formula) Copy(opts ...Option) *Formula {
	ret := *F
	ret.structure = F.structure.deepCopy()
	return ret.Set(opts...)
}

//Name returns the name of the formula, or an empty string
func (F *Formula) Name() string {
	return F.name
}

//Registry returns the registry the formula was built with
func (F *Formula) Registry() element.Registry {
	return F.reg
}

//Structure returns the top-level group of the formula.
func (F *Formula) Structure() *Group {
	return F.structure
}

//IsEmpty returns true if the formula has no parts.
func (F *Formula) IsEmpty() bool {
	return F.structure.Len() == 0
}

//Atoms returns the total count of each atomic unit in the formula. Isotopes are
//counted separately from their elements, and units with zero count are omitted.
func (F *Formula) Atoms() map[*element.Unit]float64 {
	type frame struct {
		g    *Group
		mult float64
	}
	ret := make(map[*element.Unit]float64)
	stack := []frame{{F.structure, 1}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range fr.g.parts {
			n := fr.mult * p.Count
			if p.Unit != nil {
				ret[p.Unit] += n
			} else {
				stack = append(stack, frame{p.Sub, n})
			}
		}
	}
	for k, v := range ret {
		if v == 0 {
			delete(ret, k)
		}
	}
	return ret
}

//Equal returns true if F and G have the same atomic content. The names
//are compared only if both formulas have one.
func (F *Formula) Equal(G *Formula) bool {
	if F == nil || G == nil {
		return F == G
	}
	if F.name != "" && G.name != "" && F.name != G.name {
		return false
	}
	a, b := F.Atoms(), G.Atoms()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

//Key returns a string that identifies the atomic content (and name, if any) of F.
//Formulas with the same content and name have the same key.
func (F *Formula) Key() string {
	units, counts := hillOrder(F.Atoms())
	var b strings.Builder
	for i, u := range units {
		fmt.Fprintf(&b, "%s:%s;", u, formatCount(counts[i]))
	}
	if F.name != "" {
		b.WriteString("|" + F.name)
	}
	return b.String()
}

//String returns the name of the formula if set. Otherwise, it
//renders the structure, keeping the order and grouping it was built with.
func (F *Formula) String() string {
	if F.name != "" {
		return F.name
	}
	var b strings.Builder
	render(&b, F.structure)
	return b.String()
}

func render(b *strings.Builder, g *Group) {
	for _, p := range g.parts {
		if p.Unit != nil {
			b.WriteString(p.Unit.String())
		} else {
			b.WriteByte('(')
			render(b, p.Sub)
			b.WriteByte(')')
		}
		if p.Count != 1 {
			b.WriteString(formatCount(p.Count))
		}
	}
}

//Hill returns a flat formula with the atoms of F in Hill order: carbon, hydrogen
//and then every other element alphabetically. If there is no carbon, all elements
//are sorted alphabetically. The density information of F is kept, the name is not.
func (F *Formula) Hill() *Formula {
	units, counts := hillOrder(F.Atoms())
	parts := make([]Part, len(units))
	for i, u := range units {
		parts[i] = Atom(counts[i], u)
	}
	ret := *F
	ret.name = ""
	ret.structure = NewGroup(parts...)
	return &ret
}
