/*
 * random.go, part of gomc.
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
	crand "crypto/rand"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gomcproject/gomc/v3"
)

// Random is the single stateful random number source of a simulation.
// Draw order is deterministic given a seed, and the full generator state
// can be captured and restored through JSON, so runs are reproducible and
// auditable. A Random must not be shared between concurrently evaluated
// Spaces; give each its own.
type Random struct {
	src *xrand.PCGSource
	rng *xrand.Rand
}

// NewRandom returns a Random with a deterministic default seed.
func NewRandom() *Random {
	return NewRandomSeed(0)
}

// NewRandomSeed returns a Random seeded with seed.
func NewRandomSeed(seed uint64) *Random {
	src := &xrand.PCGSource{}
	src.Seed(seed)
	return &Random{src: src, rng: xrand.New(src)}
}

// Seed reseeds the generator deterministically.
func (r *Random) Seed(seed uint64) {
	r.src.Seed(seed)
}

// HardwareSeed reseeds the generator from the operating system's entropy
// source, making the sequence non-reproducible.
func (r *Random) HardwareSeed() error {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return Error{err.Error(), []string{"Random.HardwareSeed"}, true}
	}
	r.src.Seed(binary.LittleEndian.Uint64(b[:]))
	return nil
}

// Float64 returns a uniform number in [0,1).
func (r *Random) Float64() float64 {
	return r.rng.Float64()
}

// IntRange returns a uniform integer in the inclusive range [min,max].
func (r *Random) IntRange(min, max int) int {
	return min + r.rng.Intn(max-min+1)
}

// WeightedChoice picks one of len(w) outcomes with probability
// proportional to its weight. Cost is linear in len(w); callers that draw
// repeatedly from fixed weights should cache a distribution against
// Source instead (see MoleculeData).
func (r *Random) WeightedChoice(w []float64) int {
	d := distuv.NewCategorical(w, r.src)
	return int(d.Rand())
}

// Source exposes the underlying generator for gonum distributions, so
// that every draw in a run comes from the one shared, ordered stream.
func (r *Random) Source() xrand.Source {
	return r.src
}

// RanUnitPolar returns a random unit vector drawn by polar sphere
// picking. This is the default unit-vector sampler.
func RanUnitPolar(r *Random) v3.Point {
	return v3.RTPToXYZ(v3.Point{X: 1, Y: 2 * math.Pi * r.Float64(), Z: math.Acos(2*r.Float64() - 1)}, v3.Point{})
}

// RanUnitNeumann returns a random unit vector by Neumann rejection
// ("sphere picking"): points are drawn in a cube until one falls inside
// the inscribed ball, then normalized.
func RanUnitNeumann(r *Random) v3.Point {
	for {
		p := v3.Point{X: r.Float64() - 0.5, Y: r.Float64() - 0.5, Z: r.Float64() - 0.5}
		if r2 := p.Norm2(); r2 <= 0.25 && r2 > 0 {
			return p.Scale(1 / math.Sqrt(r2))
		}
	}
}

// RanUnit is the default random unit vector sampler.
var RanUnit = RanUnitPolar

//Serialization. The generator state is an opaque token: the PCG state,
//base64-encoded under the "randomseed" key. The literal value "hardware"
//requests an OS-entropy seed instead.

type randomRecord struct {
	Seed string `json:"randomseed"`
}

func (r *Random) MarshalJSON() ([]byte, error) {
	state, err := r.src.MarshalBinary()
	if err != nil {
		return nil, Error{err.Error(), []string{"Random.MarshalJSON"}, true}
	}
	return json.Marshal(randomRecord{Seed: base64.StdEncoding.EncodeToString(state)})
}

func (r *Random) UnmarshalJSON(b []byte) error {
	var rec randomRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return Error{err.Error(), []string{"Random.UnmarshalJSON"}, true}
	}
	if r.src == nil {
		r.src = &xrand.PCGSource{}
		r.rng = xrand.New(r.src)
	}
	if rec.Seed == "hardware" {
		return r.HardwareSeed()
	}
	if rec.Seed == "" {
		r.src.Seed(0)
		return nil
	}
	state, err := base64.StdEncoding.DecodeString(rec.Seed)
	if err != nil {
		return Error{"malformed randomseed token: " + err.Error(), []string{"Random.UnmarshalJSON"}, true}
	}
	if err := r.src.UnmarshalBinary(state); err != nil {
		return Error{"malformed randomseed token: " + err.Error(), []string{"Random.UnmarshalJSON"}, true}
	}
	return nil
}
