// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package types

// Variable is an identity in the type graph, not a value: copying a Variable by value
// never copies its descriptor. All reads and writes go through a Store's Find/Descriptor
// pair. Fresh hands out ids densely from 0, so the zero Variable is a valid id and
// cannot serve as a "no variable" sentinel.
type Variable int32

// Store is the union-find arena (component C1): equivalence classes of type-variables,
// each with exactly one shared Descriptor. The "rank" used for disjoint-set balancing here
// is internal bookkeeping for union by rank and is unrelated to the polymorphism Rank
// carried in a Descriptor (see pool.Pool).
//
// A Store is not safe for concurrent use; the solver is single-threaded by design (spec §5).
type Store struct {
	parent []Variable
	ufRank []uint8
	desc   []*Descriptor
}

// NewStore creates an empty union-find arena with room for capacity variables
// before its backing slices need to grow.
func NewStore(capacity int) *Store {
	return &Store{
		parent: make([]Variable, 0, capacity),
		ufRank: make([]uint8, 0, capacity),
		desc:   make([]*Descriptor, 0, capacity),
	}
}

// Len returns the number of variables ever allocated by Fresh, including variables
// that have since been unioned into another class.
func (s *Store) Len() int { return len(s.parent) }

// Fresh allocates a new singleton equivalence class holding d.
func (s *Store) Fresh(d *Descriptor) Variable {
	v := Variable(len(s.parent))
	s.parent = append(s.parent, v)
	s.ufRank = append(s.ufRank, 0)
	s.desc = append(s.desc, d)
	return v
}

// Find returns the representative of v's equivalence class, compressing the path
// from v to the root so repeated lookups are near-constant time.
func (s *Store) Find(v Variable) Variable {
	root := v
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[v] != root {
		s.parent[v], v = root, s.parent[v]
	}
	return root
}

// Descriptor returns the shared descriptor for v's equivalence class.
func (s *Store) Descriptor(v Variable) *Descriptor { return s.desc[s.Find(v)] }

// SetDescriptor overwrites the descriptor for v's equivalence class. Every member
// of the class observes the change, since they all resolve to the same root.
func (s *Store) SetDescriptor(v Variable, d *Descriptor) { s.desc[s.Find(v)] = d }

// ModifyDescriptor mutates v's equivalence class's descriptor in place via f.
func (s *Store) ModifyDescriptor(v Variable, f func(*Descriptor)) { f(s.Descriptor(v)) }

// Union merges a and b's equivalence classes, installing d as the combined root's
// descriptor. Union is idempotent when a and b already denote the same class: the
// descriptor is still overwritten with d in that case, matching a fresh merge.
func (s *Store) Union(a, b Variable, d *Descriptor) Variable {
	ra, rb := s.Find(a), s.Find(b)
	if ra == rb {
		s.desc[ra] = d
		return ra
	}
	switch {
	case s.ufRank[ra] < s.ufRank[rb]:
		ra, rb = rb, ra
	case s.ufRank[ra] == s.ufRank[rb]:
		s.ufRank[ra]++
	}
	s.parent[rb] = ra
	s.desc[ra] = d
	s.desc[rb] = nil
	return ra
}

// Equivalent reports whether a and b currently denote the same equivalence class.
func (s *Store) Equivalent(a, b Variable) bool { return s.Find(a) == s.Find(b) }

// Redundant reports whether v is not the root of its own equivalence class, i.e.
// it has been unioned into another variable's class.
func (s *Store) Redundant(v Variable) bool { return s.parent[v] != v }

// Snapshot captures enough of the arena's current state to undo, via Restore, every
// Fresh, Union and SetDescriptor performed after it. It copies descriptor pointers,
// not descriptor contents, so taking a Snapshot is O(n) in the number of variables,
// not in descriptor size; a field changed in place through ModifyDescriptor after the
// Snapshot is not undone by Restore. Unify only ever replaces descriptors (via Union),
// so a Unify call is fully undone.
type Snapshot struct {
	parent []Variable
	ufRank []uint8
	desc   []*Descriptor
}

// Snapshot returns a point-in-time copy of s's arena, for CanUnify-style speculation.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		parent: append([]Variable(nil), s.parent...),
		ufRank: append([]uint8(nil), s.ufRank...),
		desc:   append([]*Descriptor(nil), s.desc...),
	}
}

// Restore reverts s to exactly the state captured by snap, discarding any Variable
// allocated and any Union or descriptor replacement performed since. snap must have
// been taken from this same Store.
func (s *Store) Restore(snap Snapshot) {
	s.parent = append(s.parent[:0], snap.parent...)
	s.ufRank = append(s.ufRank[:0], snap.ufRank...)
	s.desc = append(s.desc[:0], snap.desc...)
}
