/*
 * json_test.go, part of goformula.
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
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rmera/goformula/element"
)

func TestJSON(Te *testing.T) {
	for _, f := range []*Formula{
		MustParse(reg, "Fe0.75Ni0.25", Name("permalloy"), Density(8.7)),
		ikaite(),
		MustParse(reg, "Fe[56]2O[18]3", NaturalDensity(5.24)),
		MustParse(reg, "Si8", CellVolume(160.19)),
		FromUnit(reg, unit("Si"), RegistryDensity()),
		MustParse(reg, "2(NaCl(H2O)3)0.5 D2O"),
		Empty(reg),
	} {
		data, err := json.Marshal(f)
		if err != nil {
			Te.Fatal(err)
		}
		g, err := Restore(reg, data)
		if err != nil {
			Te.Fatalf("Can't restore %s: %v", data, err)
		}
		if !g.Equal(f) || g.String() != f.String() || g.Name() != f.Name() {
			Te.Errorf("%s restored as %s", f, g)
		}
		if g.Structure().Len() != f.Structure().Len() {
			Te.Errorf("Structure of %s not preserved", f)
		}
		d1, e1 := f.Density()
		d2, e2 := g.Density()
		if d1 != d2 || (e1 == nil) != (e2 == nil) {
			Te.Errorf("Density of %s not preserved: %g %g", f, d1, d2)
		}
	}
}

func TestRestoreUnits(Te *testing.T) {
	data, err := json.Marshal(MustParse(reg, "Fe[56]O[18]D"))
	if err != nil {
		Te.Fatal(err)
	}
	g, err := Restore(reg, data)
	if err != nil {
		Te.Fatal(err)
	}
	atoms := g.Atoms()
	for _, u := range []*element.Unit{isotope("Fe", 56), isotope("O", 18), unit("D")} {
		if _, ok := atoms[u]; !ok {
			Te.Errorf("Restored formula does not use the registry's %s", u)
		}
	}
}

func TestSaveLoad(Te *testing.T) {
	f := MustParse(reg, "CaCO3(H2O)6", Name("ikaite"), Density(1.77))
	var buf bytes.Buffer
	if err := Save(&buf, f); err != nil {
		Te.Fatal(err)
	}
	g, err := Load(reg, &buf)
	if err != nil {
		Te.Fatal(err)
	}
	if !g.Equal(f) || g.Name() != "ikaite" || g.Hill().String() != f.Hill().String() {
		Te.Errorf("%s loaded as %s", f.Hill(), g.Hill())
	}
	if d, _ := g.Density(); d != 1.77 {
		Te.Errorf("Density lost in Save/Load: %g", d)
	}
	if _, err := Load(reg, strings.NewReader("not zstd at all")); err == nil {
		Te.Error("Loading garbage should fail")
	}
}

func TestRestoreErrors(Te *testing.T) {
	for _, c := range []struct {
		data string
		err  error
	}{
		{`{"structure": [`, ErrParse},
		{`{"structure": [{"n": 1, "el": "Xx"}]}`, ErrUnknownElement},
		{`{"structure": [{"n": 1, "el": "O", "iso": 99}]}`, ErrUnknownElement},
		{`{"structure": [{"n": -1, "el": "O"}]}`, ErrParse},
		{`{"structure": [{"n": 2, "group": [{"n": -3, "el": "H"}]}]}`, ErrParse},
	} {
		if _, err := Restore(reg, []byte(c.data)); !errors.Is(err, c.err) {
			Te.Errorf("Restoring %s: expected %v, got %v", c.data, c.err, err)
		}
	}
}
