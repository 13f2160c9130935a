/*
 * v3_test.go, part of gomc.
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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointOps(t *testing.T) {
	p := Point{X: 1, Y: 2, Z: 3}
	q := Point{X: -1, Y: 0, Z: 2}
	assert.Equal(t, Point{X: 0, Y: 2, Z: 5}, p.Add(q))
	assert.Equal(t, Point{X: 2, Y: 2, Z: 1}, p.Sub(q))
	assert.Equal(t, Point{X: 2, Y: 4, Z: 6}, p.Scale(2))
	assert.Equal(t, 5.0, p.Dot(q))
	assert.Equal(t, Point{X: 4, Y: -5, Z: 2}, p.Cross(q))
	assert.InDelta(t, math.Sqrt(14), p.Norm(), 1e-14)
	assert.InDelta(t, 14, p.Norm2(), 1e-14)
	assert.InDelta(t, 1.0, p.Unit().Norm(), 1e-14)
	assert.Equal(t, Point{X: -1, Y: 0, Z: 6}, p.CwiseMul(q))
}

func TestSphericalRoundTrip(t *testing.T) {
	origin := Point{X: 0.5, Y: -1, Z: 2}
	p := Point{X: 1, Y: 2, Z: 3}
	rtp := XYZToRTP(p, origin)
	back := RTPToXYZ(rtp, origin)
	assert.InDelta(t, p.X, back.X, 1e-12)
	assert.InDelta(t, p.Y, back.Y, 1e-12)
	assert.InDelta(t, p.Z, back.Z, 1e-12)
	assert.InDelta(t, p.Sub(origin).Norm(), rtp.X, 1e-12)
}

func TestPointJSON(t *testing.T) {
	b, err := json.Marshal(Point{X: 1, Y: 2, Z: 3})
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", string(b))
	var p Point
	require.NoError(t, json.Unmarshal([]byte("[4,5,6]"), &p))
	assert.Equal(t, Point{X: 4, Y: 5, Z: 6}, p)
	err = json.Unmarshal([]byte("[1,2]"), &p)
	require.Error(t, err, "a 2-element array is not a point")
	err = json.Unmarshal([]byte("[1,2,3,4]"), &p)
	require.Error(t, err, "a 4-element array is not a point")
}

func TestRotationBasis(t *testing.T) {
	q := NewRotation(math.Pi/2, Point{Z: 1})
	r := q.Rotate(Point{X: 1})
	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)
	assert.InDelta(t, 0, r.Z, 1e-12)
	// The axis need not be normalized and is itself invariant.
	q = NewRotation(1.234, Point{X: 3, Y: 3, Z: 3})
	ax := Point{X: 1, Y: 1, Z: 1}.Unit()
	r = q.Rotate(ax)
	assert.InDelta(t, ax.X, r.X, 1e-12)
	assert.InDelta(t, ax.Y, r.Y, 1e-12)
	assert.InDelta(t, ax.Z, r.Z, 1e-12)
}

func TestRotationPreservesNorm(t *testing.T) {
	q := NewRotation(2.5, Point{X: 1, Y: -2, Z: 0.3})
	p := Point{X: 0.2, Y: 4, Z: -1}
	assert.InDelta(t, p.Norm(), q.Rotate(p).Norm(), 1e-12)
}

func TestTensorRotation(t *testing.T) {
	tt := Tensor{XX: 1, XY: 2, XZ: 3, YY: 4, YZ: 5, ZZ: 6}
	q := NewRotation(math.Pi/2, Point{Y: 1})
	tt.Rotate(q)
	assert.InDelta(t, 6, tt.XX, 1e-12)
	assert.InDelta(t, 5, tt.XY, 1e-12)
	assert.InDelta(t, -3, tt.XZ, 1e-12)
	assert.InDelta(t, 4, tt.YY, 1e-12)
	assert.InDelta(t, -2, tt.YZ, 1e-12)
	assert.InDelta(t, 1, tt.ZZ, 1e-12)
}

func TestTensorJSON(t *testing.T) {
	tt := Tensor{XX: 1, XY: 2, XZ: 3, YY: 4, YZ: 5, ZZ: 6}
	b, err := json.Marshal(tt)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3,4,5,6]", string(b))
	var back Tensor
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tt, back)
	require.Error(t, json.Unmarshal([]byte("[1,2,3]"), &back))
}
