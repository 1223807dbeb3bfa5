/*
 * compose.go, part of goformula.
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
	"log"
	"math"

	"github.com/rmera/goformula/element"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Add returns a new formula with the parts of a followed by the parts of b.
//Parts are not merged, so the grouping of both formulas is kept. The result
//has no name or density.
func Add(a, b *Formula) *Formula {
	if a == nil || b == nil {
		panic("goFormula.Add: nil formula")
	}
	reg := a.reg
	if reg == nil {
		reg = b.reg
	}
	if a.IsEmpty() && b.IsEmpty() {
		return Empty(reg)
	}
	parts := make([]Part, 0, a.structure.Len()+b.structure.Len())
	parts = append(parts, a.structure.parts...)
	parts = append(parts, b.structure.parts...)
	return newFormula(reg, &Group{parts: parts})
}

//Scale returns a new formula where every top-level count of f is multiplied by k.
//If k is 1, or f is empty, the new formula shares its structure with f.
//The density information of f is kept, the cell volume is scaled by k.
//The name is only kept if k is 1. Scale panics if k is negative.
func Scale(k float64, f *Formula) *Formula {
	if f == nil {
		panic("goFormula.Scale: nil formula")
	}
	if k < 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		panic(fmt.Sprintf("goFormula.Scale: invalid factor %v", k))
	}
	ret := *f
	if k == 1 || f.IsEmpty() {
		return &ret
	}
	ret.name = ""
	ret.cell = f.cell * k
	parts := make([]Part, len(f.structure.parts))
	for i, p := range f.structure.parts {
		p.Count *= k
		parts[i] = p
	}
	ret.structure = &Group{parts: parts}
	return &ret
}

//Portion is an amount of some formula in a mixture. The amount is a weight
//or a volume, depending on the mixing function.
type Portion struct {
	Of     Like
	Amount float64
}

//collect normalizes the portions with positive amounts into formulas.
func collect(reg element.Registry, funcname string, portions []Portion) ([]*Formula, []float64, error) {
	fs := make([]*Formula, 0, len(portions))
	amounts := make([]float64, 0, len(portions))
	for i, p := range portions {
		if p.Amount < 0 || math.IsNaN(p.Amount) {
			panic(fmt.Sprintf("goFormula.%s: invalid amount %v for component %d", funcname, p.Amount, i))
		}
		if p.Amount == 0 {
			continue
		}
		if p.Of == nil {
			panic(fmt.Sprintf("goFormula.%s: nil component %d", funcname, i))
		}
		f, err := p.Of.like(reg)
		if err != nil {
			return nil, nil, errDecorate(err, funcname)
		}
		fs = append(fs, f)
		amounts = append(amounts, p.Amount)
	}
	return fs, amounts, nil
}

//combine adds the formulas, each scaled by its multiplier divided by the smallest
//multiplier, so at least one of them enters with count 1.
func combine(reg element.Registry, fs []*Formula, mult []float64) *Formula {
	if len(fs) == 0 {
		return Empty(reg)
	}
	least := floats.Min(mult)
	var ret *Formula
	for i, f := range fs {
		s := Scale(mult[i]/least, f)
		if ret == nil {
			ret = s
			continue
		}
		ret = Add(ret, s)
	}
	return newFormula(reg, ret.structure)
}

//MixByWeight returns a mixture of the given portions, where amounts are relative
//weights. Zero-weight portions are ignored. If all components have a density, the
//mixture gets the density sum(w)/sum(w/density); a Density option overrides it.
func MixByWeight(reg element.Registry, portions []Portion, opts ...Option) (*Formula, error) {
	const funcname = "MixByWeight"
	fs, w, err := collect(reg, funcname, portions)
	if err != nil {
		return nil, err
	}
	mult := make([]float64, len(fs))
	dens := make([]float64, len(fs))
	withDensity := true
	for i, f := range fs {
		m := f.Mass()
		if m <= 0 {
			return nil, newError(MissingMass, funcname, fmt.Sprintf("component %d (%s) has no mass", i, f))
		}
		mult[i] = w[i] / m
		if dens[i], err = f.Density(); err != nil {
			withDensity = false
		}
	}
	ret := combine(reg, fs, mult)
	if len(fs) > 0 && withDensity {
		ret.density = stat.HarmonicMean(dens, w)
	}
	ret.Set(opts...)
	if len(fs) > 0 && !withDensity && !ret.HasDensity() {
		log.Printf("goFormula.MixByWeight: not all components of %s have a density, the mixture will have none", ret)
	}
	return ret, nil
}

//MixByVolume returns a mixture of the given portions, where amounts are relative
//volumes. Zero-volume portions are ignored. Every other component needs a density.
//The mixture gets the volume-weighted mean density, unless a Density option is given.
func MixByVolume(reg element.Registry, portions []Portion, opts ...Option) (*Formula, error) {
	const funcname = "MixByVolume"
	fs, v, err := collect(reg, funcname, portions)
	if err != nil {
		return nil, err
	}
	mult := make([]float64, len(fs))
	dens := make([]float64, len(fs))
	for i, f := range fs {
		if dens[i], err = f.Density(); err != nil {
			return nil, errDecorate(err, funcname)
		}
		m := f.Mass()
		if m <= 0 {
			return nil, newError(MissingMass, funcname, fmt.Sprintf("component %d (%s) has no mass", i, f))
		}
		mult[i] = v[i] * dens[i] / m
	}
	ret := combine(reg, fs, mult)
	if len(fs) > 0 {
		ret.density = stat.Mean(dens, v)
	}
	return ret.Set(opts...), nil
}
