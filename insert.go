/*
 * insert.go, part of gomc.
 *
 * Copyright 2026 The gomc developers
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
 */

package mc

import (
	"fmt"
	"math"

	"github.com/gomcproject/gomc/geometry"
	"github.com/gomcproject/gomc/v3"
)

// RandomInserter generates trial coordinates for one molecule at a
// uniformly random position and orientation inside a cell. It is the
// default InserterFunc provider wired in by Catalog.RegisterMolecule,
// which copies the molecule's insertion directions, offset and rotation
// flags into it.
type RandomInserter struct {
	Dir          v3.Point // per-axis scaling of the random point
	Offset       v3.Point // added to the scaled random point
	Rotate       bool     // random rotation of the inserted coordinates
	KeepPos      bool     // keep conformation coordinates as stored
	CheckOverlap bool     // reject trials sticking out of the container
	MaxTrials    int      // retry budget before giving up
	Rng          *Random
	Cat          *Catalog // atom prototypes for atomic molecules
}

// NewRandomInserter returns an inserter with the standard defaults:
// rotation on, overlap checking on, direction (1,1,1), 2000 trials.
func NewRandomInserter(rng *Random) *RandomInserter {
	return &RandomInserter{
		Dir:          v3.Point{X: 1, Y: 1, Z: 1},
		Rotate:       true,
		CheckOverlap: true,
		MaxTrials:    2000,
		Rng:          rng,
	}
}

// Insert produces trial coordinates for one molecule of type mol. Atomic
// molecules get one independently placed and oriented particle per atom
// type in the sequence; molecular types get a stored conformation, either
// kept in place (KeepPos) or randomly rotated about its geometric center
// and translated to a random point. Trials whose particles stick out of
// the container are redrawn until the retry budget runs out, which yields
// a non-critical error: the requesting move abstains, the run goes on.
func (ri *RandomInserter) Insert(geo *geometry.Cell, others []Particle, mol *MoleculeData) ([]Particle, error) {
	_ = others // container overlap only; particle overlap is the energy's job
	for trial := 0; trial < ri.MaxTrials; trial++ {
		var v []Particle
		if mol.Atomic {
			if ri.Cat == nil {
				return nil, Error{fmt.Sprintf("no catalog to draw atom prototypes for %q from", mol.Name), []string{"RandomInserter.Insert"}, true}
			}
			v = make([]Particle, 0, len(mol.Atoms))
			for _, id := range mol.Atoms {
				p := ri.Cat.Atom(id).P
				if ri.Rotate {
					p.Rotate(v3.NewRotation(2*math.Pi*ri.Rng.Float64(), RanUnit(ri.Rng)))
				}
				geo.RandomPos(&p.Pos, ri.Rng.Float64)
				p.Pos = p.Pos.CwiseMul(ri.Dir).Add(ri.Offset)
				geo.Boundary(&p.Pos)
				v = append(v, p)
			}
		} else {
			var err error
			v, err = mol.RandomConformation()
			if err != nil {
				return nil, errDecorate(err, "RandomInserter.Insert")
			}
			if ri.KeepPos {
				for i := range v {
					if geo.Collision(v[i].Pos, 0) {
						return nil, Error{fmt.Sprintf("molecule %q does not fit in the container at its stored position", mol.Name), []string{"RandomInserter.Insert"}, false}
					}
				}
			} else {
				cm := GeometricCenter(v)
				for i := range v {
					v[i].Pos = v[i].Pos.Sub(cm)
				}
				if ri.Rotate {
					q := v3.NewRotation(2*math.Pi*ri.Rng.Float64(), RanUnit(ri.Rng))
					for i := range v {
						v[i].Rotate(q)
						v[i].Pos = q.Rotate(v[i].Pos)
					}
				}
				var a v3.Point
				geo.RandomPos(&a, ri.Rng.Float64)
				a = a.CwiseMul(ri.Dir).Add(ri.Offset)
				for i := range v {
					v[i].Pos = v[i].Pos.Add(a)
					geo.Boundary(&v[i].Pos)
				}
			}
		}
		if !ri.CheckOverlap || !containerOverlap(geo, v) {
			return v, nil
		}
	}
	return nil, Error{fmt.Sprintf("insertion of %q failed after %d overlap checks", mol.Name, ri.MaxTrials), []string{"RandomInserter.Insert"}, false}
}

func containerOverlap(geo *geometry.Cell, v []Particle) bool {
	for i := range v {
		radius := 0.0
		if v[i].Caps.Has(CapRadius) {
			radius = v[i].Radius
		}
		if geo.Collision(v[i].Pos, radius) {
			return true
		}
	}
	return false
}
