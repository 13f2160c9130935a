/*
 * cell.go, part of gomc.
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

/*Package geometry implements the simulation cell variants of gomc and
their boundary operations: minimum-image distances, position wrapping,
volume handling, uniform random placement, and container-overlap checks.

The variant set is closed by design. Rather than an open interface, Cell
is a kind-tagged struct with a single dispatch point per operation, so the
four topologies (open box, periodic box with per-axis toggles, cylinder,
sphere) can be tested exhaustively and extended only deliberately.*/
package geometry

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/gomcproject/gomc/v3"
)

// Kind tags the cell variant.
type Kind int

const (
	Box      Kind = iota // open cuboid, no wrapping
	Cuboid               // cuboid with per-axis periodic boundaries
	Cylinder             // periodic along z, hard radial wall
	Sphere               // fully non-periodic spherical cell
)

func (k Kind) String() string {
	switch k {
	case Box:
		return "box"
	case Cuboid:
		return "cuboid"
	case Cylinder:
		return "cylinder"
	case Sphere:
		return "sphere"
	}
	return "unknown"
}

// BoundaryFunc applies boundary conditions to a point in place.
type BoundaryFunc func(*v3.Point)

// DistanceFunc returns the (minimum-image) vector from b to a.
type DistanceFunc func(a, b v3.Point) v3.Point

// Cell is a simulation cell. The zero value is not usable; construct with
// NewBox, NewCuboid, NewSlit, NewCylinder or NewSphere.
//
// Callers must guarantee per-step displacements smaller than half the cell
// side: both wrapping and minimum-image distances apply a single
// nearest-image correction per axis, never an iterative one.
type Cell struct {
	kind     Kind
	periodic [3]bool
	length   v3.Point // side lengths (cylinder/sphere: bounding box)
	half     v3.Point
	inv      v3.Point
	radius   float64 // cylinder and sphere only
	r2       float64
}

// NewBox returns an open (non-periodic) box with the given side lengths.
// The volume is used only for uniform random placement.
func NewBox(length v3.Point) (*Cell, error) {
	c := &Cell{kind: Box}
	if err := c.setLength(length); err != nil {
		return nil, errDecorate(err, "NewBox")
	}
	return c, nil
}

// NewCuboid returns a cuboid with periodic boundaries toggled per axis.
func NewCuboid(length v3.Point, periodic [3]bool) (*Cell, error) {
	c := &Cell{kind: Cuboid, periodic: periodic}
	if err := c.setLength(length); err != nil {
		return nil, errDecorate(err, "NewCuboid")
	}
	return c, nil
}

// NewSlit returns a cuboid periodic in x and y only.
func NewSlit(length v3.Point) (*Cell, error) {
	return NewCuboid(length, [3]bool{true, true, false})
}

// NewCylinder returns a cylindrical cell with the given radius, periodic
// along its z axis of the given length.
func NewCylinder(radius, length float64) (*Cell, error) {
	if radius <= 0 || length <= 0 {
		return nil, Error{fmt.Sprintf("cylinder needs positive radius and length, got %g, %g", radius, length), []string{"NewCylinder"}, true}
	}
	c := &Cell{kind: Cylinder, periodic: [3]bool{false, false, true}}
	c.setRadial(radius, length)
	return c, nil
}

// NewSphere returns a non-periodic spherical cell with the given radius.
func NewSphere(radius float64) (*Cell, error) {
	if radius <= 0 {
		return nil, Error{fmt.Sprintf("sphere needs a positive radius, got %g", radius), []string{"NewSphere"}, true}
	}
	c := &Cell{kind: Sphere}
	c.setRadial(radius, 2*radius)
	return c, nil
}

func (c *Cell) setLength(l v3.Point) error {
	if l.X <= 0 || l.Y <= 0 || l.Z <= 0 {
		return Error{fmt.Sprintf("cell side lengths must be positive, got (%g,%g,%g)", l.X, l.Y, l.Z), []string{"setLength"}, true}
	}
	c.length = l
	c.half = l.Scale(0.5)
	c.inv = v3.Point{X: 1 / l.X, Y: 1 / l.Y, Z: 1 / l.Z}
	return nil
}

func (c *Cell) setRadial(radius, length float64) {
	c.radius = radius
	c.r2 = radius * radius
	d := 2 * radius
	if c.kind == Cylinder {
		c.setLength(v3.Point{X: d, Y: d, Z: length})
	} else {
		c.setLength(v3.Point{X: d, Y: d, Z: d})
	}
}

// Kind returns the cell variant tag.
func (c *Cell) Kind() Kind { return c.kind }

// Length returns the cell side lengths (for cylinder and sphere, those of
// the bounding box).
func (c *Cell) Length() v3.Point { return c.length }

// Radius returns the radius of a cylinder or sphere cell, and 0 for boxes.
func (c *Cell) Radius() float64 { return c.radius }

// Volume returns the cell volume. dim selects the measure for the lower
// dimensional variants: for a cylinder, dim 1 is the length and dim 2 the
// cross-section area; every other combination returns the 3D volume.
func (c *Cell) Volume(dim int) float64 {
	switch c.kind {
	case Cylinder:
		switch dim {
		case 1:
			return c.length.Z
		case 2:
			return math.Pi * c.r2
		}
		return math.Pi * c.r2 * c.length.Z
	case Sphere:
		return 4.0 / 3.0 * math.Pi * c.r2 * c.radius
	}
	return c.length.X * c.length.Y * c.length.Z
}

// SetVolume rescales the cell to volume v. Boxes and cuboids become cubes
// of side v^(1/3); a cylinder keeps its length and adjusts the radius; a
// sphere adjusts its radius. A non-positive volume is a configuration
// error.
func (c *Cell) SetVolume(v float64) error {
	if v <= 0 {
		return Error{fmt.Sprintf("volume is zero or less: %g", v), []string{"SetVolume"}, true}
	}
	switch c.kind {
	case Cylinder:
		c.setRadial(math.Sqrt(v/(math.Pi*c.length.Z)), c.length.Z)
	case Sphere:
		c.setRadial(math.Cbrt(3*v/(4*math.Pi)), 0)
	default:
		l := math.Cbrt(v)
		return c.setLength(v3.Point{X: l, Y: l, Z: l})
	}
	return nil
}

// Boundary wraps p in place onto the cell, applying at most a single
// nearest-image correction per periodic axis.
func (c *Cell) Boundary(p *v3.Point) {
	if c.periodic[0] && math.Abs(p.X) > c.half.X {
		p.X -= c.length.X * math.Round(p.X*c.inv.X)
	}
	if c.periodic[1] && math.Abs(p.Y) > c.half.Y {
		p.Y -= c.length.Y * math.Round(p.Y*c.inv.Y)
	}
	if c.periodic[2] && math.Abs(p.Z) > c.half.Z {
		p.Z -= c.length.Z * math.Round(p.Z*c.inv.Z)
	}
}

// VecDist returns the minimum-image vector from b to a. Each periodic
// axis is corrected once by the full side length when the component
// exceeds half the side.
func (c *Cell) VecDist(a, b v3.Point) v3.Point {
	r := a.Sub(b)
	if c.periodic[0] {
		if r.X > c.half.X {
			r.X -= c.length.X
		} else if r.X < -c.half.X {
			r.X += c.length.X
		}
	}
	if c.periodic[1] {
		if r.Y > c.half.Y {
			r.Y -= c.length.Y
		} else if r.Y < -c.half.Y {
			r.Y += c.length.Y
		}
	}
	if c.periodic[2] {
		if r.Z > c.half.Z {
			r.Z -= c.length.Z
		} else if r.Z < -c.half.Z {
			r.Z += c.length.Z
		}
	}
	return r
}

// RandomPos overwrites p with a point drawn uniformly from the cell
// volume. rnd must return uniform numbers in [0,1). Radially confined
// variants use rejection sampling from the bounding square/cube, with
// acceptance ratio pi/4 (disk) and pi/6 (ball).
func (c *Cell) RandomPos(p *v3.Point, rnd func() float64) {
	switch c.kind {
	case Cylinder:
		p.Z = (rnd() - 0.5) * c.length.Z
		for {
			p.X = (rnd() - 0.5) * c.length.X
			p.Y = (rnd() - 0.5) * c.length.Y
			if p.X*p.X+p.Y*p.Y <= c.r2 {
				return
			}
		}
	case Sphere:
		for {
			p.X = (rnd() - 0.5) * c.length.X
			p.Y = (rnd() - 0.5) * c.length.Y
			p.Z = (rnd() - 0.5) * c.length.Z
			if p.Norm2() <= c.r2 {
				return
			}
		}
	default:
		p.X = (rnd() - 0.5) * c.length.X
		p.Y = (rnd() - 0.5) * c.length.Y
		p.Z = (rnd() - 0.5) * c.length.Z
	}
}

// Collision reports whether a particle of the given radius centered at p
// sticks out of the container. Periodic axes have no wall and never
// collide.
func (c *Cell) Collision(p v3.Point, radius float64) bool {
	switch c.kind {
	case Cylinder:
		if math.Sqrt(p.X*p.X+p.Y*p.Y)+radius > c.radius {
			return true
		}
		return !c.periodic[2] && math.Abs(p.Z)+radius > c.half.Z
	case Sphere:
		return p.Norm()+radius > c.radius
	default:
		if !c.periodic[0] && math.Abs(p.X)+radius > c.half.X {
			return true
		}
		if !c.periodic[1] && math.Abs(p.Y)+radius > c.half.Y {
			return true
		}
		return !c.periodic[2] && math.Abs(p.Z)+radius > c.half.Z
	}
}

//JSON round trip. The record is field-named: the cell kind under "type",
//then the shape parameters relevant to the variant.

type cellRecord struct {
	Type     string    `json:"type"`
	Length   *v3.Point `json:"length,omitempty"`
	Radius   *float64  `json:"radius,omitempty"`
	Periodic *[3]bool  `json:"periodic,omitempty"`
	CylLen   *float64  `json:"cyllength,omitempty"`
}

func (c *Cell) MarshalJSON() ([]byte, error) {
	rec := cellRecord{Type: c.kind.String()}
	switch c.kind {
	case Cylinder:
		rec.Radius = &c.radius
		l := c.length.Z
		rec.CylLen = &l
	case Sphere:
		rec.Radius = &c.radius
	case Cuboid:
		l := c.length
		rec.Length = &l
		p := c.periodic
		rec.Periodic = &p
	default:
		l := c.length
		rec.Length = &l
	}
	return json.Marshal(rec)
}

func (c *Cell) UnmarshalJSON(b []byte) error {
	var rec cellRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return Error{err.Error(), []string{"Cell.UnmarshalJSON"}, true}
	}
	var nc *Cell
	var err error
	switch rec.Type {
	case "box":
		if rec.Length == nil {
			return Error{"box record lacks length", []string{"Cell.UnmarshalJSON"}, true}
		}
		nc, err = NewBox(*rec.Length)
	case "cuboid":
		if rec.Length == nil {
			return Error{"cuboid record lacks length", []string{"Cell.UnmarshalJSON"}, true}
		}
		per := [3]bool{true, true, true}
		if rec.Periodic != nil {
			per = *rec.Periodic
		}
		nc, err = NewCuboid(*rec.Length, per)
	case "cylinder":
		if rec.Radius == nil || rec.CylLen == nil {
			return Error{"cylinder record lacks radius or cyllength", []string{"Cell.UnmarshalJSON"}, true}
		}
		nc, err = NewCylinder(*rec.Radius, *rec.CylLen)
	case "sphere":
		if rec.Radius == nil {
			return Error{"sphere record lacks radius", []string{"Cell.UnmarshalJSON"}, true}
		}
		nc, err = NewSphere(*rec.Radius)
	default:
		return Error{fmt.Sprintf("unknown cell type %q", rec.Type), []string{"Cell.UnmarshalJSON"}, true}
	}
	if err != nil {
		return errDecorate(err, "Cell.UnmarshalJSON")
	}
	*c = *nc
	return nil
}

//Errors

// Error is the error type for the geometry package. It fulfills mc.Errorer.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("gomc/geometry: %s", err.message)
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

type errorInt interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}
