/*
 * elastic_test.go, part of gomc.
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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sixParticles returns a buffer with ids 10,20,...,60.
func sixParticles() []Particle {
	buf := make([]Particle, 6)
	for i := range buf {
		buf[i].ID = 10 * (i + 1)
	}
	return buf
}

func ids(ps []Particle) []int {
	out := make([]int, len(ps))
	for i := range ps {
		out[i] = ps[i].ID
	}
	return out
}

func TestElasticRangeDeactivate(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 0, 6)
	require.Equal(t, 6, r.Size())
	require.Equal(t, 6, r.Capacity())
	require.Equal(t, 0, r.InactiveSize())

	r.Deactivate(1, 3)
	assert.Equal(t, []int{10, 40, 50, 60}, ids(r.Active()))
	assert.Equal(t, []int{20, 30}, ids(r.Inactive()))
	assert.Equal(t, 4, r.Size())
	assert.Equal(t, 2, r.InactiveSize())
	assert.Equal(t, 6, r.Capacity())
}

func TestElasticRangeActivate(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 0, 6)
	r.Deactivate(1, 3) // active 10,40,50,60; inactive 20,30

	// activating the first inactive element appends it to the active window
	r.Activate(4, 5)
	assert.Equal(t, []int{10, 40, 50, 60, 20}, ids(r.Active()))
	assert.Equal(t, []int{30}, ids(r.Inactive()))

	r.Activate(5, 6)
	assert.Equal(t, []int{10, 40, 50, 60, 20, 30}, ids(r.Active()))
	assert.True(t, r.InactiveSize() == 0)
}

func TestElasticRangeActivateDeep(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 0, 6)
	r.Deactivate(1, 3) // inactive 20,30

	// activating a non-leading inactive element rotates it to the front
	// of the inactive window first
	r.Activate(5, 6)
	assert.Equal(t, []int{10, 40, 50, 60, 30}, ids(r.Active()))
	assert.Equal(t, []int{20}, ids(r.Inactive()))
}

func TestElasticRangeFullRoundTrip(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 0, 6)
	r.Deactivate(0, 6)
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 6, r.InactiveSize())
	r.Activate(0, 6)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60}, ids(r.Active()))
}

func TestElasticRangeMultisetInvariant(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 0, 6)
	r.Deactivate(2, 5)
	r.Activate(4, 6)
	r.Deactivate(0, 1)

	all := ids(buf)
	sort.Ints(all)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60}, all)
	assert.Equal(t, r.Capacity(), r.Size()+r.InactiveSize())
}

func TestElasticRangeSubWindow(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 2, 5) // 30,40,50
	assert.Equal(t, 3, r.Size())
	r.Deactivate(0, 1)
	assert.Equal(t, []int{40, 50}, ids(r.Active()))
	assert.Equal(t, []int{30}, ids(r.Inactive()))
	// the surrounding buffer is untouched
	assert.Equal(t, 10, buf[0].ID)
	assert.Equal(t, 20, buf[1].ID)
	assert.Equal(t, 60, buf[5].ID)
}

func TestElasticRangeAt(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 1, 5)
	assert.Equal(t, 20, r.At(0).ID)
	r.Deactivate(0, 2)
	// deactivated elements stay addressable past the active size
	assert.Equal(t, 20, r.At(2).ID)
	assert.Equal(t, 30, r.At(3).ID)
	assert.Panics(t, func() { r.At(4) })
	assert.Panics(t, func() { r.At(-1) })
}

func TestElasticRangeContractViolations(t *testing.T) {
	buf := sixParticles()
	assert.Panics(t, func() { NewElasticRange(buf, 4, 2) })
	assert.Panics(t, func() { NewElasticRange(buf, 0, 7) })

	r := NewElasticRange(buf, 0, 6)
	assert.PanicsWithValue(t, ErrSpanOutsideWindow, func() { r.Deactivate(3, 2) })
	assert.PanicsWithValue(t, ErrSpanOutsideWindow, func() { r.Deactivate(0, 7) })
	assert.PanicsWithValue(t, ErrSpanOutsideWindow, func() { r.Activate(0, 1) })
	assert.PanicsWithValue(t, ErrBadResize, func() { r.Resize(7) })
}

func TestElasticRangeRebase(t *testing.T) {
	buf := sixParticles()
	r := NewElasticRange(buf, 0, 6)
	r.Deactivate(4, 6)

	grown := make([]Particle, 0, 12)
	grown = append(grown, buf...)
	grown = append(grown, Particle{ID: 70})
	r.Rebase(grown)
	assert.Equal(t, 4, r.Size())
	assert.Same(t, &grown[0], r.At(0))

	assert.PanicsWithValue(t, ErrGroupRelocation, func() { r.Rebase(grown[:3]) })
}
