/*
 * atomicdata.go, part of gomc.
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
	"fmt"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gomcproject/gomc/geometry"
	"github.com/gomcproject/gomc/v3"
)

//The type catalogs are built once at startup, before any move runs, and
//are read-only afterwards: entries are only ever appended, so integer ids
//stay valid for the process lifetime. Components receive the catalog
//explicitly instead of reaching for package-level state, which keeps
//multi-Space (and multi-goroutine, one Space per goroutine) use safe.

// AtomData holds the per-type constants of an atom type. The particle
// prototype P carries the capability set and default capability values for
// particles of this type; its ID is set when the type is registered.
type AtomData struct {
	P        Particle `json:"particle"`
	Name     string   `json:"name"`
	Eps      float64  `json:"eps"`      // LJ epsilon [kJ/mol]
	Activity float64  `json:"activity"` // chemical activity [mol/l]
	DP       float64  `json:"dp"`       // translational displacement [angstrom]
	DProt    float64  `json:"dprot"`    // rotational displacement [degrees]
	Weight   float64  `json:"weight"`   // mass weight
}

// ID returns the type id of the atom type.
func (a *AtomData) ID() int { return a.P.ID }

// InserterFunc produces a trial coordinate set for one molecule of type
// mol, with random position and orientation obeying the molecule's
// insertion directions and offset. others is the existing particle buffer,
// available for overlap checks. Implementations must bound their retries
// and fail with an error rather than loop forever.
type InserterFunc func(geo *geometry.Cell, others []Particle, mol *MoleculeData) ([]Particle, error)

// MoleculeData holds the per-type constants of a molecule type, its
// stored conformations with selection weights, and the pluggable
// insertion operation used by grand-canonical and Widom-style moves.
type MoleculeData struct {
	Name      string
	Atomic    bool     // unstructured species (salt ions etc.)
	Rotate    bool     // random rotation upon insertion
	KeepPos   bool     // keep conformation coordinates upon insertion
	Activity  float64  // chemical activity [mol/l]
	InsDir    v3.Point // per-axis scaling of the random insertion point
	InsOffset v3.Point // added to the insertion point
	Atoms     []int    // sequence of atom type ids in the molecule
	Ninit     int      // number of molecules in the initial configuration

	id            int
	conformations [][]Particle
	weights       []float64
	confDist      *distuv.Categorical
	src           xrand.Source
	inserter      InserterFunc
}

// NewMoleculeData returns a molecule type with the given name. Insertion
// defaults: rotate, direction (1,1,1), no offset.
func NewMoleculeData(name string, atomic bool) *MoleculeData {
	return &MoleculeData{
		Name:   name,
		Atomic: atomic,
		Rotate: true,
		InsDir: v3.Point{X: 1, Y: 1, Z: 1},
		id:     -1,
	}
}

// ID returns the type id of the molecule type, or -1 before registration.
func (m *MoleculeData) ID() int { return m.id }

// AddConformation stores one coordinate set for the molecule, selectable
// by RandomConformation with probability proportional to weight. The
// selection distribution is rebuilt here, linear in the number of stored
// conformations.
func (m *MoleculeData) AddConformation(ps []Particle, weight float64) {
	cp := make([]Particle, len(ps))
	copy(cp, ps)
	m.conformations = append(m.conformations, cp)
	m.weights = append(m.weights, weight)
	m.rebuildDist()
}

func (m *MoleculeData) rebuildDist() {
	if m.src == nil || len(m.weights) == 0 {
		m.confDist = nil
		return
	}
	d := distuv.NewCategorical(m.weights, m.src)
	m.confDist = &d
}

// NumConformations returns the number of stored conformations.
func (m *MoleculeData) NumConformations() int { return len(m.conformations) }

// Weights returns a copy of the conformation selection weights.
func (m *MoleculeData) Weights() []float64 {
	w := make([]float64, len(m.weights))
	copy(w, m.weights)
	return w
}

// RandomConformation returns a copy of a stored conformation drawn from
// the weighted selection distribution. A molecule with no stored
// conformations yields a non-critical error: the requesting move should
// abstain, not crash the run.
func (m *MoleculeData) RandomConformation() ([]Particle, error) {
	if len(m.conformations) == 0 {
		return nil, Error{fmt.Sprintf("no conformations for molecule %q; perhaps you forgot the 'atomic' keyword?", m.Name), []string{"MoleculeData.RandomConformation"}, false}
	}
	i := 0
	if m.confDist != nil && len(m.conformations) > 1 {
		i = int(m.confDist.Rand())
	}
	v := make([]Particle, len(m.conformations[i]))
	copy(v, m.conformations[i])
	return v, nil
}

// SetInserter replaces the insertion operation for the molecule type.
func (m *MoleculeData) SetInserter(f InserterFunc) { m.inserter = f }

// InsertionTrial produces a trial coordinate set for one molecule of this
// type using the configured inserter.
func (m *MoleculeData) InsertionTrial(geo *geometry.Cell, others []Particle) ([]Particle, error) {
	if m.inserter == nil {
		return nil, Error{fmt.Sprintf("molecule %q has no inserter; register it in a catalog first", m.Name), []string{"MoleculeData.InsertionTrial"}, true}
	}
	v, err := m.inserter(geo, others, m)
	if err != nil {
		return nil, errDecorate(err, "MoleculeData.InsertionTrial")
	}
	return v, nil
}

// Catalog aggregates the atom- and molecule-type registries. It is built
// once at startup and treated as immutable, append-only configuration
// afterwards; no entry is ever removed.
type Catalog struct {
	rng       *Random
	atoms     []AtomData
	molecules []*MoleculeData
}

// NewCatalog returns an empty catalog whose conformation draws and
// default inserters use rng. A nil rng gets a deterministic default.
func NewCatalog(rng *Random) *Catalog {
	if rng == nil {
		rng = NewRandom()
	}
	return &Catalog{rng: rng}
}

// RegisterAtom appends an atom type and returns its id. The prototype's
// ID is overwritten to match the registration order; a zero Weight
// defaults to 1.
func (c *Catalog) RegisterAtom(a AtomData) int {
	a.P.ID = len(c.atoms)
	if a.Weight == 0 {
		a.Weight = 1
	}
	c.atoms = append(c.atoms, a)
	return a.P.ID
}

// RegisterMolecule appends a molecule type, wires its conformation
// distribution and default inserter to the catalog's random source, and
// returns its id.
func (c *Catalog) RegisterMolecule(m *MoleculeData) int {
	m.id = len(c.molecules)
	m.src = c.rng.Source()
	m.rebuildDist()
	if m.inserter == nil {
		ins := NewRandomInserter(c.rng)
		ins.Cat = c
		ins.Dir = m.InsDir
		ins.Offset = m.InsOffset
		ins.Rotate = m.Rotate
		ins.KeepPos = m.KeepPos
		m.inserter = ins.Insert
	}
	c.molecules = append(c.molecules, m)
	return m.id
}

// Atom returns the atom type with the given id. Panics if the id is not
// registered: type ids come from the catalog itself, so a miss is a bug.
func (c *Catalog) Atom(id int) *AtomData {
	if id < 0 || id >= len(c.atoms) {
		panic(ErrNoSuchType)
	}
	return &c.atoms[id]
}

// Molecule returns the molecule type with the given id. Panics if the id
// is not registered.
func (c *Catalog) Molecule(id int) *MoleculeData {
	if id < 0 || id >= len(c.molecules) {
		panic(ErrNoSuchType)
	}
	return c.molecules[id]
}

// LenAtoms returns the number of registered atom types.
func (c *Catalog) LenAtoms() int { return len(c.atoms) }

// LenMolecules returns the number of registered molecule types.
func (c *Catalog) LenMolecules() int { return len(c.molecules) }

// AtomByName returns the first atom type with the given name.
func (c *Catalog) AtomByName(name string) (*AtomData, bool) {
	for i := range c.atoms {
		if c.atoms[i].Name == name {
			return &c.atoms[i], true
		}
	}
	return nil, false
}

// MoleculeByName returns the first molecule type with the given name.
func (c *Catalog) MoleculeByName(name string) (*MoleculeData, bool) {
	for _, m := range c.molecules {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Weight returns the mass weight of atom type id, for mass-center
// computation.
func (c *Catalog) Weight(id int) float64 {
	return c.Atom(id).Weight
}

//Serialization

type moleculeRecord struct {
	Name          string       `json:"name"`
	ID            int          `json:"id"`
	Atomic        bool         `json:"atomic"`
	Rotate        bool         `json:"rotate"`
	KeepPos       bool         `json:"keeppos"`
	Activity      float64      `json:"activity"`
	InsDir        v3.Point     `json:"insdir"`
	InsOffset     v3.Point     `json:"insoffset"`
	Atoms         []int        `json:"atoms,omitempty"`
	Ninit         int          `json:"ninit,omitempty"`
	Conformations [][]Particle `json:"conformations,omitempty"`
	Weights       []float64    `json:"weights,omitempty"`
}

func (m *MoleculeData) MarshalJSON() ([]byte, error) {
	return json.Marshal(moleculeRecord{
		Name:          m.Name,
		ID:            m.id,
		Atomic:        m.Atomic,
		Rotate:        m.Rotate,
		KeepPos:       m.KeepPos,
		Activity:      m.Activity,
		InsDir:        m.InsDir,
		InsOffset:     m.InsOffset,
		Atoms:         m.Atoms,
		Ninit:         m.Ninit,
		Conformations: m.conformations,
		Weights:       m.weights,
	})
}

func (m *MoleculeData) UnmarshalJSON(b []byte) error {
	var rec moleculeRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return Error{err.Error(), []string{"MoleculeData.UnmarshalJSON"}, true}
	}
	if len(rec.Weights) != len(rec.Conformations) {
		return Error{fmt.Sprintf("molecule %q: %d weights for %d conformations", rec.Name, len(rec.Weights), len(rec.Conformations)), []string{"MoleculeData.UnmarshalJSON"}, true}
	}
	*m = MoleculeData{
		Name:          rec.Name,
		Atomic:        rec.Atomic,
		Rotate:        rec.Rotate,
		KeepPos:       rec.KeepPos,
		Activity:      rec.Activity,
		InsDir:        rec.InsDir,
		InsOffset:     rec.InsOffset,
		Atoms:         rec.Atoms,
		Ninit:         rec.Ninit,
		id:            rec.ID,
		conformations: rec.Conformations,
		weights:       rec.Weights,
	}
	return nil
}

type catalogRecord struct {
	Atoms     []AtomData      `json:"atomlist"`
	Molecules []*MoleculeData `json:"moleculelist"`
}

func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(catalogRecord{Atoms: c.atoms, Molecules: c.molecules})
}

// UnmarshalJSON loads a serialized catalog. The receiver keeps its random
// source; every loaded molecule is re-registered against it so ids,
// conformation distributions and default inserters are rewired.
func (c *Catalog) UnmarshalJSON(b []byte) error {
	var rec catalogRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return Error{err.Error(), []string{"Catalog.UnmarshalJSON"}, true}
	}
	if c.rng == nil {
		c.rng = NewRandom()
	}
	c.atoms = c.atoms[:0]
	c.molecules = c.molecules[:0]
	for _, a := range rec.Atoms {
		c.RegisterAtom(a)
	}
	for _, m := range rec.Molecules {
		c.RegisterMolecule(m)
	}
	return nil
}
