/*
 * group.go, part of gomc.
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

	"github.com/gomcproject/gomc/geometry"
	"github.com/gomcproject/gomc/v3"
)

// Group is one molecule's window into the shared particle buffer: an
// elastic range tagged with the molecule type id, plus a cached mass
// center. Groups partition the buffer into disjoint contiguous windows
// whose relative order never changes; a group's identity (its index in
// the owning Space) is stable for the Space's lifetime, only the
// active/inactive partition moves.
type Group struct {
	ElasticRange
	ID     int  // molecule type id
	Atomic bool // unstructured species (salt etc.)
	CM     v3.Point
}

// NewGroup returns a group of molecule type molid over buf[begin:end].
func NewGroup(buf []Particle, begin, end, molid int) Group {
	return Group{ElasticRange: NewElasticRange(buf, begin, end), ID: molid}
}

// Assign copies the active/inactive partition and the scalar fields (type
// id, atomic flag, mass center) from o. It does not copy particle
// contents; Space.Sync copies exactly the touched elements afterwards.
// The two groups must have equal capacity.
func (g *Group) Assign(o *Group) error {
	if g.Capacity() != o.Capacity() {
		return Error{fmt.Sprintf("group capacity mismatch: %d != %d", g.Capacity(), o.Capacity()), []string{"Group.Assign"}, true}
	}
	g.Resize(o.Size())
	g.ID = o.ID
	g.Atomic = o.Atomic
	g.CM = o.CM
	return nil
}

// Translate shifts the mass center and every active particle by d, then
// applies boundary to each.
func (g *Group) Translate(d v3.Point, boundary geometry.BoundaryFunc) {
	g.CM = g.CM.Add(d)
	boundary(&g.CM)
	act := g.Active()
	for i := range act {
		act[i].Pos = act[i].Pos.Add(d)
		boundary(&act[i].Pos)
	}
}

// Rotate rotates every active particle about the cached mass center and
// every orientable capability by the same quaternion, re-wrapping
// positions with boundary.
func (g *Group) Rotate(q *v3.Rotation, boundary geometry.BoundaryFunc) {
	shift := g.CM.Scale(-1)
	act := g.Active()
	for i := range act {
		act[i].Rotate(q)
		p := act[i].Pos.Add(shift)
		boundary(&p)
		p = q.Rotate(p).Sub(shift)
		boundary(&p)
		act[i].Pos = p
	}
}

// Wrap applies boundary conditions to the mass center and every active
// particle. O(size).
func (g *Group) Wrap(boundary geometry.BoundaryFunc) {
	boundary(&g.CM)
	act := g.Active()
	for i := range act {
		boundary(&act[i].Pos)
	}
}

// Unwrap removes periodic boundaries with respect to the cached mass
// center, using the minimum-image distance vdist. O(size). Call it
// before any operation that assumes unwrapped coordinates, notably
// mass-center recomputation after a large displacement.
func (g *Group) Unwrap(vdist geometry.DistanceFunc) {
	act := g.Active()
	for i := range act {
		act[i].Pos = g.CM.Add(vdist(act[i].Pos, g.CM))
	}
}

// FindID returns the offsets of the active particles with the given atom
// type id. O(size).
func (g *Group) FindID(id int) []int {
	var idx []int
	for i, p := range g.Active() {
		if p.ID == id {
			idx = append(idx, i)
		}
	}
	return idx
}

// FindIndex returns pointers to the active particles at the given
// offsets. Cost is linear in len(offsets), not in the group size.
// Offsets outside the active window panic.
func (g *Group) FindIndex(offsets []int) []*Particle {
	ps := make([]*Particle, len(offsets))
	for k, i := range offsets {
		if i < 0 || i >= g.Size() {
			panic(ErrSpanOutsideWindow)
		}
		ps[k] = g.At(i)
	}
	return ps
}

// UpdateMassCenter recomputes the cached mass center from the active
// particles, weighting each by its catalog mass weight. Coordinates must
// be unwrapped first.
func (g *Group) UpdateMassCenter(cat *Catalog) {
	g.CM = MassCenter(g.Active(), cat)
}

// WeightFunc assigns a weight to a particle for center computations.
type WeightFunc func(*Particle) float64

// AnyCenter returns the weighted center of ps. Weights that sum to zero
// make the result meaningless; callers pick weight functions that cannot.
func AnyCenter(ps []Particle, weight WeightFunc) v3.Point {
	var c v3.Point
	var sum float64
	for i := range ps {
		w := weight(&ps[i])
		c = c.Add(ps[i].Pos.Scale(w))
		sum += w
	}
	return c.Scale(1 / sum)
}

// MassCenter returns the mass center of ps using the catalog weights.
func MassCenter(ps []Particle, cat *Catalog) v3.Point {
	return AnyCenter(ps, func(p *Particle) float64 { return cat.Weight(p.ID) })
}

// GeometricCenter returns the unweighted center of ps.
func GeometricCenter(ps []Particle) v3.Point {
	return AnyCenter(ps, func(*Particle) float64 { return 1 })
}

// ChargeCenter returns the charge-weighted center of ps.
func ChargeCenter(ps []Particle) v3.Point {
	return AnyCenter(ps, func(p *Particle) float64 { return p.Charge })
}
