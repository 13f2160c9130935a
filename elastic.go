/*
 * elastic.go, part of gomc.
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

// ElasticRange is a window [begin,end) of active particles inside a
// fixed-capacity span [begin,trueEnd) of a shared particle buffer.
// Elements can be logically deactivated and later reactivated without
// inserting or erasing: deactivated elements are rotated to the tail of
// the active window and remain readable there until overwritten, so a
// grand-canonical removal is O(distance moved), never a reallocation.
//
// The range addresses the buffer by offsets, not pointers, and holds its
// own copy of the buffer's slice header. Whenever the owning Space's
// buffer reallocates, the owner must Rebase every range onto the new
// buffer; begin and trueEnd are otherwise stable, only end moves.
//
// Invariant: Size() + InactiveSize() == Capacity() at all times.
type ElasticRange struct {
	buf     []Particle
	begin   int
	end     int
	trueEnd int
}

// NewElasticRange returns a range over buf[begin:end], all elements
// active, with capacity fixed to end-begin.
func NewElasticRange(buf []Particle, begin, end int) ElasticRange {
	if begin < 0 || begin > end || end > len(buf) {
		panic(ErrSpanOutsideWindow)
	}
	return ElasticRange{buf: buf, begin: begin, end: end, trueEnd: end}
}

// Size returns the number of active elements.
func (r *ElasticRange) Size() int { return r.end - r.begin }

// InactiveSize returns the number of deactivated elements.
func (r *ElasticRange) InactiveSize() int { return r.trueEnd - r.end }

// Capacity returns the total reserved span, active plus inactive.
func (r *ElasticRange) Capacity() int { return r.trueEnd - r.begin }

// Empty reports whether no element is active.
func (r *ElasticRange) Empty() bool { return r.begin == r.end }

// Active returns the active window of the underlying buffer. The slice
// is a live view: it is invalidated by Deactivate, Activate and Rebase.
func (r *ElasticRange) Active() []Particle { return r.buf[r.begin:r.end] }

// Inactive returns the deactivated window of the underlying buffer.
func (r *ElasticRange) Inactive() []Particle { return r.buf[r.end:r.trueEnd] }

// At returns the element at offset i from begin. Offsets in [0,Size())
// address active elements; [Size(),Capacity()) address deactivated ones.
func (r *ElasticRange) At(i int) *Particle {
	if i < 0 || i >= r.Capacity() {
		panic(ErrSpanOutsideWindow)
	}
	return &r.buf[r.begin+i]
}

// BufferRange returns the absolute [begin,trueEnd) offsets of the range
// window within the owning buffer.
func (r *ElasticRange) BufferRange() (begin, trueEnd int) {
	return r.begin, r.trueEnd
}

// Deactivate moves the active elements at offsets [first,last) to the
// tail of the active window by rotation and shrinks the window. The span
// must lie inside [0,Size()); anything else is a bug in the caller and
// panics. The deactivated elements stay readable at offsets
// [Size(),Size()+n) until overwritten.
func (r *ElasticRange) Deactivate(first, last int) {
	n := last - first
	if first < 0 || n < 0 || last > r.Size() {
		panic(ErrSpanOutsideWindow)
	}
	rotateLeft(r.buf[r.begin+first:r.end], n)
	r.end -= n
}

// Activate is the mirror of Deactivate: it moves the deactivated
// elements at offsets [first,last) to the head of the inactive window by
// rotation and grows the active window over them. The span must lie
// inside [Size(),Capacity()].
func (r *ElasticRange) Activate(first, last int) {
	n := last - first
	if first < r.Size() || n < 0 || last > r.Capacity() {
		panic(ErrSpanOutsideWindow)
	}
	rotateLeft(r.buf[r.end:r.trueEnd], first-r.Size())
	r.end += n
}

// Resize sets the active size to n without moving elements. It is used
// when synchronizing the active/inactive boundary from another range.
func (r *ElasticRange) Resize(n int) {
	if n < 0 || n > r.Capacity() {
		panic(ErrBadResize)
	}
	r.end = r.begin + n
}

// Rebase points the range at a (re)allocated buffer. Offsets are kept;
// the window must still fit.
func (r *ElasticRange) Rebase(buf []Particle) {
	if r.trueEnd > len(buf) {
		panic(ErrGroupRelocation)
	}
	r.buf = buf
}

// rotateLeft rotates s left by k positions using three reversals, so a
// selection travels to the far end while the order of everything else is
// preserved.
func rotateLeft(s []Particle, k int) {
	if k <= 0 || k >= len(s) {
		return
	}
	reverse(s[:k])
	reverse(s[k:])
	reverse(s)
}

func reverse(s []Particle) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
