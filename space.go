/*
 * space.go, part of gomc.
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
	"github.com/gomcproject/gomc/geometry"
)

// ChangedGroup records what a move touched inside one group. All is a
// shorthand for "every currently active offset changed" and takes
// precedence over Atoms, which is then ignored; moves use it when the
// exact footprint is more expensive to record than to copy (whole-group
// rotations and the like).
type ChangedGroup struct {
	Index       int      // group index in the owning Space
	All         bool     // every active particle changed
	Atoms       []int    // touched offsets relative to the group begin
	Activated   [][2]int // offset ranges activated by the move
	Deactivated [][2]int // offset ranges deactivated by the move
}

// Change is the minimal diff a move records as it mutates a trial Space:
// which groups were touched, which offsets within them, and whether the
// volume changed. Space.Sync consumes it to copy back only the touched
// elements on acceptance.
type Change struct {
	DV     float64 // volume change; caller-owned metadata, never applied by Sync
	Groups []ChangedGroup
}

// Clear empties the change for reuse.
func (c *Change) Clear() {
	c.DV = 0
	c.Groups = c.Groups[:0]
}

// Empty reports whether nothing was recorded: no groups and no volume
// change.
func (c *Change) Empty() bool {
	return len(c.Groups) == 0 && c.DV == 0
}

// Touched returns the indices of the recorded groups, in record order.
func (c *Change) Touched() []int {
	idx := make([]int, len(c.Groups))
	for i, g := range c.Groups {
		idx[i] = g.Index
	}
	return idx
}

// Space is the aggregate simulation state: the particle buffer, the
// groups partitioning it, the active cell geometry and the injected type
// catalog. A Space is exclusively owned; independent trial Spaces may be
// evaluated on separate goroutines, but no single Space may be shared.
type Space struct {
	P      []Particle
	Groups []Group
	Geo    *geometry.Cell
	Cat    *Catalog
}

// NewSpace returns an empty Space over the given geometry and catalog.
func NewSpace(geo *geometry.Cell, cat *Catalog) *Space {
	return &Space{Geo: geo, Cat: cat}
}

// PushBack appends the particles of one molecule of type molid to the
// buffer and creates its group. If the append reallocates the buffer,
// every existing group is rebased onto it; a group whose size or
// capacity would change in the process indicates buffer corruption and
// panics.
func (s *Space) PushBack(molid int, in []Particle) *Group {
	md := s.Cat.Molecule(molid)

	begin := len(s.P)
	s.P = append(s.P, in...)

	for i := range s.Groups {
		g := &s.Groups[i]
		size, capacity := g.Size(), g.Capacity()
		g.Rebase(s.P)
		if g.Size() != size || g.Capacity() != capacity {
			panic(ErrGroupRelocation)
		}
	}

	g := NewGroup(s.P, begin, len(s.P), molid)
	g.Atomic = md.Atomic
	if len(in) > 0 {
		g.UpdateMassCenter(s.Cat)
	}
	s.Groups = append(s.Groups, g)
	return &s.Groups[len(s.Groups)-1]
}

// FindMolecules returns all groups of molecule type molid. O(number of
// groups).
func (s *Space) FindMolecules(molid int) []*Group {
	var gs []*Group
	for i := range s.Groups {
		if s.Groups[i].ID == molid {
			gs = append(gs, &s.Groups[i])
		}
	}
	return gs
}

// FindAtoms returns pointers to every active particle of atom type
// atomid, across all groups. O(number of particles).
func (s *Space) FindAtoms(atomid int) []*Particle {
	var ps []*Particle
	for i := range s.Groups {
		act := s.Groups[i].Active()
		for j := range act {
			if act[j].ID == atomid {
				ps = append(ps, &act[j])
			}
		}
	}
	return ps
}

// ActiveLen returns the total number of active particles.
func (s *Space) ActiveLen() int {
	n := 0
	for i := range s.Groups {
		n += s.Groups[i].Size()
	}
	return n
}

// Sync copies the data recorded in change from the trial Space o into s.
// For each recorded group the active/inactive boundary and scalar fields
// are synchronized unconditionally, then either every active particle
// (All) or exactly the listed offsets are copied. Groups absent from the
// change are never touched, so the cost is proportional to the size of
// the change, not of the system.
//
// By contract the two Spaces have structurally identical group topology;
// a capacity mismatch, or a touched offset at or beyond the post-resize
// size, is a bug in the move that built the change and panics.
func (s *Space) Sync(o *Space, change *Change) {
	for _, m := range change.Groups {
		gAcc := &s.Groups[m.Index]
		gTri := &o.Groups[m.Index]

		if err := gAcc.Assign(gTri); err != nil {
			panic(PanicMsg(err.Error()))
		}

		if m.All {
			copy(gAcc.Active(), gTri.Active())
			continue
		}
		for _, i := range m.Atoms {
			if i < 0 || i >= gAcc.Size() {
				panic(ErrOffsetOutOfRange)
			}
			*gAcc.At(i) = *gTri.At(i)
		}
	}
}
