/*
 * tensor.go, part of gomc.
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

	"gonum.org/v1/gonum/mat"
)

// Tensor is a symmetric 3x3 tensor stored as its six independent
// coefficients. It serializes to a flat JSON array of exactly six numbers
// in the order xx,xy,xz,yy,yz,zz.
type Tensor struct {
	XX, XY, XZ, YY, YZ, ZZ float64
}

// Dense returns the full 3x3 matrix form of t.
func (t Tensor) Dense() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.XX, t.XY, t.XZ,
		t.XY, t.YY, t.YZ,
		t.XZ, t.YZ, t.ZZ,
	})
}

// Rotate applies the similarity rotation t' = R t R^T in place.
func (t *Tensor) Rotate(q *Rotation) {
	r := q.Matrix()
	var tmp, out mat.Dense
	tmp.Mul(r, t.Dense())
	out.Mul(&tmp, r.T())
	t.XX = out.At(0, 0)
	t.XY = out.At(0, 1)
	t.XZ = out.At(0, 2)
	t.YY = out.At(1, 1)
	t.YZ = out.At(1, 2)
	t.ZZ = out.At(2, 2)
}

func (t Tensor) MarshalJSON() ([]byte, error) {
	return json.Marshal([6]float64{t.XX, t.XY, t.XZ, t.YY, t.YZ, t.ZZ})
}

func (t *Tensor) UnmarshalJSON(b []byte) error {
	var a []float64
	if err := json.Unmarshal(b, &a); err != nil {
		return Error{err.Error(), []string{"Tensor.UnmarshalJSON"}, true}
	}
	if len(a) != 6 {
		return Error{fmt.Sprintf("JSON->Tensor: array with exactly six coefficients expected, got %d", len(a)), []string{"Tensor.UnmarshalJSON"}, true}
	}
	t.XX, t.XY, t.XZ, t.YY, t.YZ, t.ZZ = a[0], a[1], a[2], a[3], a[4], a[5]
	return nil
}
