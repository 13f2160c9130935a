/*
 * state_test.go, part of gomc.
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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	s, _, _, _ := newSaltSpace(t, 4)
	// a partially deactivated group, so the snapshot must carry the
	// inactive tail too
	s.Groups[2].Deactivate(0, 1)
	rng := NewRandomSeed(42)
	for i := 0; i < 9; i++ {
		rng.Float64()
	}

	var buf bytes.Buffer
	require.NoError(t, SaveState(&buf, s, rng))

	// reference stream from the generator state at save time
	want := make([]float64, 5)
	for i := range want {
		want[i] = rng.Float64()
	}

	back, rng2, err := LoadState(&buf, s.Cat)
	require.NoError(t, err)
	require.Len(t, back.P, len(s.P))
	require.Len(t, back.Groups, len(s.Groups))
	for i := range s.Groups {
		g, h := &s.Groups[i], &back.Groups[i]
		assert.Equal(t, g.ID, h.ID)
		assert.Equal(t, g.Atomic, h.Atomic)
		assert.Equal(t, g.Size(), h.Size())
		assert.Equal(t, g.Capacity(), h.Capacity())
		assert.Equal(t, g.CM, h.CM)
		for j := 0; j < g.Capacity(); j++ {
			assert.Equal(t, g.At(j).ID, h.At(j).ID)
			assert.Equal(t, g.At(j).Pos, h.At(j).Pos)
		}
	}
	assert.Equal(t, s.Geo.Kind(), back.Geo.Kind())
	assert.InDelta(t, s.Geo.Volume(3), back.Geo.Volume(3), 1e-12)
	assert.Same(t, s.Cat, back.Cat, "the catalog is injected, not loaded")

	for i := range want {
		assert.Equal(t, want[i], rng2.Float64(), "restored generator diverged at draw %d", i)
	}
}

func TestLoadStateRejectsGarbage(t *testing.T) {
	_, _, err := LoadState(strings.NewReader("this is not a snapshot"), nil)
	require.Error(t, err)
}

func TestLoadStateValidatesGroupWindows(t *testing.T) {
	s, _, _, _ := newSaltSpace(t, 1)
	rng := NewRandomSeed(1)

	// a snapshot whose group window reaches past its particle list
	bad := &Space{Geo: s.Geo, Cat: s.Cat, P: s.P[:1], Groups: s.Groups}
	var buf bytes.Buffer
	require.NoError(t, SaveState(&buf, bad, rng))
	_, _, err := LoadState(&buf, s.Cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside")
}
