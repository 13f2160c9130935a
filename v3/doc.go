/*
 * doc.go, part of gomc.
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

/*Package v3 implements the geometric primitives used by gomc: a cartesian
3-vector (Point), a symmetric 3x3 tensor stored as six independent
coefficients, and a quaternion rotation that acts on both. It is a thin
layer over gonum's spatial/r3 and mat types, with the positional JSON
encodings (flat arrays of 3 and 6 numbers) the simulation's record format
uses for vectors and tensors.
*/
package v3
