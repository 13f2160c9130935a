/*
 * state.go, part of gomc.
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
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/gomcproject/gomc/geometry"
	"github.com/gomcproject/gomc/v3"
)

//State snapshots. A snapshot is the zstd-compressed JSON of everything
//needed to resume a run bit-for-bit: the generator state token, the cell,
//the full particle buffer (inactive tails included, since grand-canonical
//bookkeeping lives there) and the group windows as buffer offsets.

type groupRecord struct {
	ID       int      `json:"id"`
	Atomic   bool     `json:"atomic"`
	CM       v3.Point `json:"cm"`
	Begin    int      `json:"begin"`
	Size     int      `json:"size"`
	Capacity int      `json:"capacity"`
}

type stateRecord struct {
	Random    *Random        `json:"random"`
	Geometry  *geometry.Cell `json:"geometry"`
	Particles []Particle     `json:"particles"`
	Groups    []groupRecord  `json:"groups"`
}

// SaveState writes a compressed snapshot of spc and the generator state
// of rng to w.
func SaveState(w io.Writer, spc *Space, rng *Random) error {
	rec := stateRecord{
		Random:    rng,
		Geometry:  spc.Geo,
		Particles: spc.P,
		Groups:    make([]groupRecord, len(spc.Groups)),
	}
	for i := range spc.Groups {
		g := &spc.Groups[i]
		begin, _ := g.BufferRange()
		rec.Groups[i] = groupRecord{
			ID:       g.ID,
			Atomic:   g.Atomic,
			CM:       g.CM,
			Begin:    begin,
			Size:     g.Size(),
			Capacity: g.Capacity(),
		}
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return Error{err.Error(), []string{"SaveState"}, true}
	}
	if err := json.NewEncoder(zw).Encode(rec); err != nil {
		zw.Close()
		return Error{err.Error(), []string{"SaveState"}, true}
	}
	if err := zw.Close(); err != nil {
		return Error{err.Error(), []string{"SaveState"}, true}
	}
	return nil
}

// LoadState reads a snapshot from r and rebuilds the Space and the random
// generator. The catalog is injected, not loaded: type registries are
// startup configuration, the snapshot only references them by id.
func LoadState(r io.Reader, cat *Catalog) (*Space, *Random, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, Error{err.Error(), []string{"LoadState"}, true}
	}
	defer zr.Close()
	var rec stateRecord
	if err := json.NewDecoder(zr).Decode(&rec); err != nil {
		return nil, nil, Error{"malformed state snapshot: " + err.Error(), []string{"LoadState"}, true}
	}
	if rec.Geometry == nil {
		return nil, nil, Error{"state snapshot lacks a geometry", []string{"LoadState"}, true}
	}
	spc := NewSpace(rec.Geometry, cat)
	spc.P = rec.Particles
	spc.Groups = make([]Group, 0, len(rec.Groups))
	for _, gr := range rec.Groups {
		if gr.Begin < 0 || gr.Capacity < 0 || gr.Begin+gr.Capacity > len(spc.P) {
			return nil, nil, Error{fmt.Sprintf("group window [%d,%d) outside the %d-particle buffer", gr.Begin, gr.Begin+gr.Capacity, len(spc.P)), []string{"LoadState"}, true}
		}
		if gr.Size < 0 || gr.Size > gr.Capacity {
			return nil, nil, Error{fmt.Sprintf("group of capacity %d claims %d active particles", gr.Capacity, gr.Size), []string{"LoadState"}, true}
		}
		g := NewGroup(spc.P, gr.Begin, gr.Begin+gr.Capacity, gr.ID)
		g.Resize(gr.Size)
		g.Atomic = gr.Atomic
		g.CM = gr.CM
		spc.Groups = append(spc.Groups, g)
	}
	rng := rec.Random
	if rng == nil {
		rng = NewRandom()
	}
	return spc, rng, nil
}
