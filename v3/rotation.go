/*
 * rotation.go, part of gomc.
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

package v3

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is a quaternion rotation by Angle radians about a unit axis.
// The same Rotation rotates points directly and tensors by similarity,
// so a particle's position and all its orientable capabilities can be
// transformed consistently.
type Rotation struct {
	Angle float64
	rot   r3.Rotation
	m     *mat.Dense // cached 3x3 rotation matrix for tensor similarity
}

// NewRotation returns the rotation by angle radians about axis. The axis
// need not be normalized.
func NewRotation(angle float64, axis Point) *Rotation {
	q := new(Rotation)
	q.Set(angle, axis)
	return q
}

// Set replaces the rotation with angle radians about axis.
func (q *Rotation) Set(angle float64, axis Point) {
	q.Angle = angle
	q.rot = r3.NewRotation(angle, r3.Vec(axis.Unit()))
	// The matrix columns are the rotated basis vectors.
	e := [3]Point{{X: 1}, {Y: 1}, {Z: 1}}
	q.m = mat.NewDense(3, 3, nil)
	for j, v := range e {
		rv := q.Rotate(v)
		q.m.Set(0, j, rv.X)
		q.m.Set(1, j, rv.Y)
		q.m.Set(2, j, rv.Z)
	}
}

// Rotate returns p rotated by q.
func (q *Rotation) Rotate(p Point) Point {
	return Point(q.rot.Rotate(r3.Vec(p)))
}

// Matrix returns the 3x3 rotation matrix equivalent to q. The returned
// matrix is shared with the Rotation and must not be modified.
func (q *Rotation) Matrix() *mat.Dense {
	return q.m
}
