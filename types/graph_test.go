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

import "testing"

// testPool is a minimal Registrar, enough to exercise Flatten outside package pool.
type testPool struct {
	rank        Rank
	inhabitants []Variable
}

func (p *testPool) Rank() Rank          { return p.rank }
func (p *testPool) Register(v Variable) { p.inhabitants = append(p.inhabitants, v) }

func TestFlattenRegistersEveryAllocation(t *testing.T) {
	store := NewStore(8)
	reg := &testPool{rank: OutermostRank}

	surface := SurfaceFun{
		Arg: SurfaceApp{Name: "Int"},
		Ret: SurfaceApp{Name: "Int"},
	}
	v := Flatten(store, reg, surface)

	if len(reg.inhabitants) != 3 {
		t.Fatalf("expected 3 registered variables (Int, Int, Fun1), got %d", len(reg.inhabitants))
	}
	fn, ok := store.Descriptor(v).Content.(Structure)
	if !ok {
		t.Fatalf("expected a Structure content")
	}
	if _, ok := fn.Term.(Fun1); !ok {
		t.Fatalf("expected a Fun1 term")
	}
}

func TestFlattenSurfaceVarDoesNotAllocate(t *testing.T) {
	store := NewStore(8)
	reg := &testPool{rank: OutermostRank}
	existing := store.Fresh(NewDescriptor(Flex{}, OutermostRank))

	v := Flatten(store, reg, SurfaceVar{Var: existing})

	if v != existing {
		t.Fatalf("expected SurfaceVar to pass through unchanged")
	}
	if len(reg.inhabitants) != 0 {
		t.Fatalf("expected no registration for a bare SurfaceVar leaf")
	}
}

func TestCheckAcyclicNoCycle(t *testing.T) {
	store := NewStore(8)
	leaf := store.Fresh(NewDescriptor(Structure{Term: App1{Name: "Int"}}, OutermostRank))
	fn := store.Fresh(NewDescriptor(Structure{Term: Fun1{Arg: leaf, Ret: leaf}}, OutermostRank))

	if !CheckAcyclic(store, []Variable{fn}) {
		t.Fatalf("expected a diamond-shaped (non-cyclic) graph to be reported acyclic")
	}
}

func TestCheckAcyclicDetectsSelfLoop(t *testing.T) {
	store := NewStore(8)
	a := store.Fresh(NewDescriptor(Flex{}, OutermostRank))
	// Manually build a self-referential Fun1, the shape the post-Let occurs check
	// (solve.occursCheck) must catch: a = a -> a.
	store.SetDescriptor(a, NewDescriptor(Structure{Term: Fun1{Arg: a, Ret: a}}, OutermostRank))

	if CheckAcyclic(store, []Variable{a}) {
		t.Fatalf("expected a self-referential Fun1 to be reported as a cycle")
	}
}

// TestFindCyclesLocalizesDescendant covers a root that is not itself cyclic but
// reaches a cyclic class nested within its structure: g = List(h), h = List(h). Only
// h - the actual offending class - may come back from FindCycles; g must not, since
// g's own type is perfectly well-formed on its own.
func TestFindCyclesLocalizesDescendant(t *testing.T) {
	store := NewStore(8)
	h := store.Fresh(NewDescriptor(Flex{}, OutermostRank))
	store.SetDescriptor(h, NewDescriptor(Structure{Term: App1{Name: "List", Args: []Variable{h}}}, OutermostRank))
	g := store.Fresh(NewDescriptor(Structure{Term: App1{Name: "List", Args: []Variable{h}}}, OutermostRank))

	cyclic := FindCycles(store, []Variable{g})
	if len(cyclic) != 1 || cyclic[0] != h {
		t.Fatalf("expected FindCycles to name exactly h, got %v", cyclic)
	}
}
