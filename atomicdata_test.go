/*
 * atomicdata_test.go, part of gomc.
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomcproject/gomc/geometry"
	"github.com/gomcproject/gomc/v3"
)

func TestCatalogRegistration(t *testing.T) {
	cat := NewCatalog(NewRandomSeed(1))
	na := cat.RegisterAtom(AtomData{Name: "Na", P: NewParticle(99, CapCharge)})
	cl := cat.RegisterAtom(AtomData{Name: "Cl"})
	assert.Equal(t, 0, na)
	assert.Equal(t, 1, cl)
	assert.Equal(t, 0, cat.Atom(na).P.ID, "prototype id follows registration order")
	assert.Equal(t, 1.0, cat.Atom(cl).Weight, "zero weight defaults to one")
	assert.Equal(t, 2, cat.LenAtoms())

	a, ok := cat.AtomByName("Cl")
	require.True(t, ok)
	assert.Equal(t, cl, a.ID())
	_, ok = cat.AtomByName("K")
	assert.False(t, ok)

	assert.PanicsWithValue(t, ErrNoSuchType, func() { cat.Atom(2) })
	assert.PanicsWithValue(t, ErrNoSuchType, func() { cat.Atom(-1) })
	assert.PanicsWithValue(t, ErrNoSuchType, func() { cat.Molecule(0) })
}

func TestMoleculeRegistrationWiresInsertion(t *testing.T) {
	cat := NewCatalog(NewRandomSeed(1))
	id := cat.RegisterAtom(AtomData{Name: "X"})
	m := NewMoleculeData("mono", true)
	m.Atoms = []int{id}
	assert.Equal(t, -1, m.ID())

	mid := cat.RegisterMolecule(m)
	assert.Equal(t, 0, mid)
	assert.Equal(t, 0, m.ID())
	assert.Same(t, m, cat.Molecule(mid))

	mm, ok := cat.MoleculeByName("mono")
	require.True(t, ok)
	assert.Same(t, m, mm)

	geo, err := geometry.NewBox(v3.Point{X: 5, Y: 5, Z: 5})
	require.NoError(t, err)
	v, err := m.InsertionTrial(geo, nil)
	require.NoError(t, err, "registration installs a default inserter")
	assert.Len(t, v, 1)
}

func TestUnregisteredMoleculeCannotInsert(t *testing.T) {
	m := NewMoleculeData("stray", true)
	geo, err := geometry.NewBox(v3.Point{X: 5, Y: 5, Z: 5})
	require.NoError(t, err)
	_, err = m.InsertionTrial(geo, nil)
	require.Error(t, err)
	assert.True(t, err.(Errorer).Critical())
}

func TestConformationBookkeeping(t *testing.T) {
	m := NewMoleculeData("flex", false)
	m.AddConformation([]Particle{{ID: 1}}, 2)
	m.AddConformation([]Particle{{ID: 2}}, 3)
	assert.Equal(t, 2, m.NumConformations())
	assert.Equal(t, []float64{2, 3}, m.Weights())

	// the returned conformation is a copy; mutating it leaves the store alone
	cat := NewCatalog(NewRandomSeed(1))
	cat.RegisterMolecule(m)
	v, err := m.RandomConformation()
	require.NoError(t, err)
	v[0].Pos = v3.Point{X: 5}
	w, err := m.RandomConformation()
	require.NoError(t, err)
	assert.Equal(t, v3.Point{}, w[0].Pos)
}

func TestCatalogJSONRoundTrip(t *testing.T) {
	cat := NewCatalog(NewRandomSeed(1))
	p := NewParticle(0, CapCharge|CapRadius)
	p.Charge = 1
	p.Radius = 1.9
	na := cat.RegisterAtom(AtomData{Name: "Na", Weight: 22.99, Activity: 0.1, DP: 0.5, P: p})
	m := NewMoleculeData("dimer", false)
	m.Atoms = []int{na, na}
	m.Activity = 0.3
	m.InsOffset = v3.Point{Z: 1}
	m.AddConformation([]Particle{{ID: na}, {ID: na, Pos: v3.Point{X: 1}}}, 1)
	cat.RegisterMolecule(m)

	b, err := json.Marshal(cat)
	require.NoError(t, err)

	back := NewCatalog(NewRandomSeed(2))
	require.NoError(t, json.Unmarshal(b, back))
	require.Equal(t, 1, back.LenAtoms())
	require.Equal(t, 1, back.LenMolecules())
	assert.Equal(t, "Na", back.Atom(0).Name)
	assert.Equal(t, 22.99, back.Atom(0).Weight)
	assert.True(t, back.Atom(0).P.Caps.Has(CapCharge|CapRadius))

	bm := back.Molecule(0)
	assert.Equal(t, "dimer", bm.Name)
	assert.Equal(t, 0.3, bm.Activity)
	assert.Equal(t, v3.Point{Z: 1}, bm.InsOffset)
	assert.Equal(t, 1, bm.NumConformations())

	// loading re-registers, so insertion works out of the box
	geo, err := geometry.NewBox(v3.Point{X: 50, Y: 50, Z: 50})
	require.NoError(t, err)
	v, err := bm.InsertionTrial(geo, nil)
	require.NoError(t, err)
	assert.Len(t, v, 2)
}

func TestMoleculeJSONWeightMismatch(t *testing.T) {
	var m MoleculeData
	err := json.Unmarshal([]byte(`{"name":"bad","conformations":[[{"id":0,"pos":[0,0,0]}]],"weights":[1,2]}`), &m)
	require.Error(t, err)
}
