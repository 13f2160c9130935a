/*
 * particle.go, part of gomc.
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
	"encoding/json"

	"github.com/gomcproject/gomc/v3"
)

// CapSet is a bit-set of the optional capabilities a particle carries.
// A particle's capability set is chosen when its type is built and does
// not change during a run.
type CapSet uint8

const (
	CapCharge CapSet = 1 << iota
	CapRadius
	CapDipole
	CapQuadrupole
	CapCigar // spherocylinder (rod-like) anisotropy
)

// Has reports whether every capability in f is present in c.
func (c CapSet) Has(f CapSet) bool { return c&f == f }

// Particle is a position plus a statically chosen set of optional
// chemical capabilities. Only the fields whose capability bit is set in
// Caps are meaningful; the rest stay at their zero/default values and are
// skipped by rotation and serialization. ID indexes the atom-type catalog.
type Particle struct {
	ID   int
	Pos  v3.Point
	Caps CapSet

	Charge float64   // monopole charge [e]
	Radius float64   // radius [angstrom]
	Mu     v3.Point  // dipole moment unit vector
	MuLen  float64   // dipole moment scalar [eA]
	Q      v3.Tensor // quadrupole moment
	SCDir  v3.Point  // spherocylinder direction unit vector
	SCLen  float64   // spherocylinder length [angstrom]
}

// NewParticle returns a particle of type id carrying the given
// capabilities, with orientable unit vectors at their default (1,0,0).
func NewParticle(id int, caps CapSet) Particle {
	p := Particle{ID: id, Caps: caps}
	if caps.Has(CapDipole) {
		p.Mu = v3.Point{X: 1}
	}
	if caps.Has(CapCigar) {
		p.SCDir = v3.Point{X: 1}
	}
	return p
}

// Rotate applies q to every orientable capability the particle carries.
// Scalar capabilities (charge, radius, moment lengths) are untouched, and
// so is the position: positions rotate about a group's mass center, which
// is the group's job, not the particle's.
func (p *Particle) Rotate(q *v3.Rotation) {
	if p.Caps.Has(CapDipole) {
		p.Mu = q.Rotate(p.Mu)
	}
	if p.Caps.Has(CapCigar) {
		p.SCDir = q.Rotate(p.SCDir)
	}
	if p.Caps.Has(CapQuadrupole) {
		p.Q.Rotate(q)
	}
}

//Serialization. Only enabled capabilities appear in the record; on
//decoding, the presence of a capability's field enables it. Field keys
//follow the established state-file vocabulary: q, r, mu/mulen, Q,
//scdir/sclen.

type particleRecord struct {
	ID     int        `json:"id"`
	Pos    v3.Point   `json:"pos"`
	Charge *float64   `json:"q,omitempty"`
	Radius *float64   `json:"r,omitempty"`
	Mu     *v3.Point  `json:"mu,omitempty"`
	MuLen  *float64   `json:"mulen,omitempty"`
	Q      *v3.Tensor `json:"Q,omitempty"`
	SCDir  *v3.Point  `json:"scdir,omitempty"`
	SCLen  *float64   `json:"sclen,omitempty"`
}

func (p Particle) MarshalJSON() ([]byte, error) {
	rec := particleRecord{ID: p.ID, Pos: p.Pos}
	if p.Caps.Has(CapCharge) {
		rec.Charge = &p.Charge
	}
	if p.Caps.Has(CapRadius) {
		rec.Radius = &p.Radius
	}
	if p.Caps.Has(CapDipole) {
		rec.Mu = &p.Mu
		rec.MuLen = &p.MuLen
	}
	if p.Caps.Has(CapQuadrupole) {
		rec.Q = &p.Q
	}
	if p.Caps.Has(CapCigar) {
		rec.SCDir = &p.SCDir
		rec.SCLen = &p.SCLen
	}
	return json.Marshal(rec)
}

func (p *Particle) UnmarshalJSON(b []byte) error {
	var rec particleRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return Error{err.Error(), []string{"Particle.UnmarshalJSON"}, true}
	}
	*p = Particle{ID: rec.ID, Pos: rec.Pos}
	if rec.Charge != nil {
		p.Caps |= CapCharge
		p.Charge = *rec.Charge
	}
	if rec.Radius != nil {
		p.Caps |= CapRadius
		p.Radius = *rec.Radius
	}
	if rec.Mu != nil || rec.MuLen != nil {
		p.Caps |= CapDipole
		p.Mu = v3.Point{X: 1}
		if rec.Mu != nil {
			p.Mu = *rec.Mu
		}
		if rec.MuLen != nil {
			p.MuLen = *rec.MuLen
		}
	}
	if rec.Q != nil {
		p.Caps |= CapQuadrupole
		p.Q = *rec.Q
	}
	if rec.SCDir != nil || rec.SCLen != nil {
		p.Caps |= CapCigar
		p.SCDir = v3.Point{X: 1}
		if rec.SCDir != nil {
			p.SCDir = *rec.SCDir
		}
		if rec.SCLen != nil {
			p.SCLen = *rec.SCLen
		}
	}
	return nil
}
