/*
 * json.go, part of goformula.
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
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/goformula/element"
)

//A ready-to-serialize container for a Part. El is empty for groups.
type jsonPart struct {
	N     float64    `json:"n"`
	El    string     `json:"el,omitempty"`
	Iso   int        `json:"iso,omitempty"`
	Group []jsonPart `json:"group,omitempty"`
}

//A ready-to-serialize container for a Formula.
type jsonFormula struct {
	Name            string     `json:"name,omitempty"`
	Density         float64    `json:"density,omitempty"`
	NaturalDensity  float64    `json:"natural_density,omitempty"`
	RegistryDensity bool       `json:"registry_density,omitempty"`
	CellVolume      float64    `json:"cell_volume,omitempty"`
	Structure       []jsonPart `json:"structure"`
}

func group2json(g *Group) []jsonPart {
	ret := make([]jsonPart, len(g.parts))
	for i, p := range g.parts {
		ret[i].N = p.Count
		if p.Unit != nil {
			ret[i].El = p.Unit.Symbol()
			ret[i].Iso = p.Unit.Isotope()
			continue
		}
		ret[i].Group = group2json(p.Sub)
	}
	return ret
}

//MarshalJSON encodes the structure and metadata of F. Units are stored by
//symbol and mass number.
func (F *Formula) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(jsonFormula{
		Name:            F.name,
		Density:         F.density,
		NaturalDensity:  F.natural,
		RegistryDensity: F.registry,
		CellVolume:      F.cell,
		Structure:       group2json(F.structure),
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

func json2group(reg element.Registry, parts []jsonPart) (*Group, error) {
	const funcname = "json2group"
	ret := &Group{parts: make([]Part, len(parts))}
	for i, p := range parts {
		if p.N < 0 {
			return nil, newError(ParseError, funcname, fmt.Sprintf("negative count %v in stored formula", p.N))
		}
		ret.parts[i].Count = p.N
		if p.El == "" {
			sub, err := json2group(reg, p.Group)
			if err != nil {
				return nil, err
			}
			ret.parts[i].Sub = sub
			continue
		}
		var u *element.Unit
		var err error
		if p.Iso == 0 {
			u, err = reg.Lookup(p.El)
		} else {
			u, err = reg.Isotope(p.El, p.Iso)
		}
		if err != nil {
			return nil, registryError(funcname, err)
		}
		ret.parts[i].Unit = u
	}
	return ret, nil
}

//Restore decodes a formula produced by MarshalJSON. Units are resolved through reg,
//so the restored formula uses the very same units the registry hands out.
func Restore(reg element.Registry, data []byte) (*Formula, error) {
	const funcname = "Restore"
	var j jsonFormula
	if err := json.Unmarshal(data, &j); err != nil {
		ret := newError(ParseError, funcname, err.Error())
		ret.err = err
		return nil, ret
	}
	g, err := json2group(reg, j.Structure)
	if err != nil {
		return nil, errDecorate(err, funcname)
	}
	F := newFormula(reg, g, Name(j.Name), Density(j.Density), NaturalDensity(j.NaturalDensity), CellVolume(j.CellVolume))
	F.registry = j.RegistryDensity
	return F, nil
}

//Save writes F to w as a zstd-compressed JSON document.
func Save(w io.Writer, F *Formula) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return fmt.Errorf("goFormula.Save: can't start compression: %w", err)
	}
	if err := json.NewEncoder(enc).Encode(F); err != nil {
		enc.Close()
		return fmt.Errorf("goFormula.Save: can't encode %s: %w", F, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("goFormula.Save: %w", err)
	}
	return nil
}

//Load reads a formula written by Save.
func Load(reg element.Registry, r io.Reader) (*Formula, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("goFormula.Load: can't start decompression: %w", err)
	}
	defer dec.Close()
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("goFormula.Load: %w", err)
	}
	F, err := Restore(reg, data)
	if err != nil {
		return nil, errDecorate(err, "Load")
	}
	return F, nil
}
