/*
 * point.go, part of gomc.
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
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Point is a cartesian 3-vector. It serializes to a flat JSON array of
// exactly three numbers.
type Point r3.Vec

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point(r3.Add(r3.Vec(p), r3.Vec(q)))
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point(r3.Sub(r3.Vec(p), r3.Vec(q)))
}

// Scale returns f*p.
func (p Point) Scale(f float64) Point {
	return Point(r3.Scale(f, r3.Vec(p)))
}

// Dot returns the inner product of p and q.
func (p Point) Dot(q Point) float64 {
	return r3.Dot(r3.Vec(p), r3.Vec(q))
}

// Cross returns the cross product p x q.
func (p Point) Cross(q Point) Point {
	return Point(r3.Cross(r3.Vec(p), r3.Vec(q)))
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return r3.Norm(r3.Vec(p))
}

// Norm2 returns the squared Euclidean length of p.
func (p Point) Norm2() float64 {
	return r3.Norm2(r3.Vec(p))
}

// Unit returns p normalized to unit length.
func (p Point) Unit() Point {
	return Point(r3.Unit(r3.Vec(p)))
}

// CwiseMul returns the component-wise product of p and q. It is used for
// the per-axis insertion-direction scaling of random positions.
func (p Point) CwiseMul(q Point) Point {
	return Point{X: p.X * q.X, Y: p.Y * q.Y, Z: p.Z * q.Z}
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{p.X, p.Y, p.Z})
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var a []float64
	if err := json.Unmarshal(b, &a); err != nil {
		return Error{err.Error(), []string{"Point.UnmarshalJSON"}, true}
	}
	if len(a) != 3 {
		return Error{fmt.Sprintf("JSON->Point: array with exactly 3 numbers expected, got %d", len(a)), []string{"Point.UnmarshalJSON"}, true}
	}
	p.X, p.Y, p.Z = a[0], a[1], a[2]
	return nil
}

// XYZToRTP converts cartesian to spherical coordinates relative to origin.
// The result is (r, theta, phi) with r in [0,inf), theta in [-pi,pi)
// and phi in [0,pi].
func XYZToRTP(p, origin Point) Point {
	xyz := p.Sub(origin)
	radius := xyz.Norm()
	return Point{
		X: radius,
		Y: math.Atan2(xyz.Y, xyz.X),
		Z: math.Acos(xyz.Z / radius),
	}
}

// RTPToXYZ converts spherical coordinates (r, theta, phi) back to
// cartesian, adding origin to the result.
func RTPToXYZ(rtp, origin Point) Point {
	return origin.Add(Point{
		X: math.Cos(rtp.Y) * math.Sin(rtp.Z),
		Y: math.Sin(rtp.Y) * math.Sin(rtp.Z),
		Z: math.Cos(rtp.Z),
	}.Scale(rtp.X))
}

//Errors

// Error is the error type for the v3 package. It fulfills mc.Errorer.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("gomc/v3: %s", err.message)
}

// Decorate adds new information to the error and returns the accumulated
// decoration slice. An empty string adds nothing.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns whether the error invalidates the run.
func (err Error) Critical() bool { return err.critical }
