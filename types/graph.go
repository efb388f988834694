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

import "github.com/wdamron/hmcore/internal/util"

// Surface is a syntactic type expression handed in by the elaborator (out of scope,
// spec §1): a tree whose leaves may already be allocated Variables (e.g. a
// programmer-written type variable, or a quantifier introduced by an enclosing Let).
// Flatten walks one of these into a single registered Variable in the current pool.
//
// Surface intentionally mirrors Term's shape (App1/Fun1/EmptyRecord1/Record1) but is
// nested rather than flat, since the elaborator's surface syntax has not yet been
// broken into individually-addressable Variables the way an internal Structure has.
type Surface interface {
	surfaceNode()
}

// SurfaceVar is a leaf referring to a Variable the caller already allocated.
type SurfaceVar struct{ Var Variable }

func (SurfaceVar) surfaceNode() {}

// SurfaceApp is a constructor application over nested surface arguments.
type SurfaceApp struct {
	Name string
	Args []Surface
}

func (SurfaceApp) surfaceNode() {}

// SurfaceFun is a function arrow over nested surface argument/return types.
type SurfaceFun struct{ Arg, Ret Surface }

func (SurfaceFun) surfaceNode() {}

// SurfaceEmptyRecord is the empty record literal `{}`.
type SurfaceEmptyRecord struct{}

func (SurfaceEmptyRecord) surfaceNode() {}

// SurfaceRecord is a record literal with Fields (in any order; Flatten doesn't care)
// and an Extension row, itself a nested surface type (commonly a SurfaceVar for an
// open/polymorphic record, or SurfaceEmptyRecord for a closed one).
type SurfaceRecord struct {
	Fields    map[string]Surface
	Extension Surface
}

func (SurfaceRecord) surfaceNode() {}

// SurfaceAliasArg is one type-argument applied to a SurfaceAlias, e.g. the `a` in
// `type Pair a = ...`.
type SurfaceAliasArg struct {
	Name string
	Var  Surface
}

// SurfaceAlias names an alias application (supplemented feature, SPEC_FULL.md
// §1.3(a)). Self is the Variable the caller pre-allocated for the alias's own
// identity: a recursive alias - one whose RealVar, however deeply nested, mentions
// the alias itself - closes that cycle by pointing a SurfaceVar leaf back at Self,
// the same pre-allocate-then-recurse trick pool.MakeInstance uses to copy a cyclic
// scheme without looping forever. Group is non-nil when Self belongs to a recursive
// alias group, including a group whose only member refers to itself.
type SurfaceAlias struct {
	Self          Variable
	QualifiedName string
	Args          []SurfaceAliasArg
	RealVar       Surface
	Group         *RecursiveGroup
}

func (SurfaceAlias) surfaceNode() {}

// Registrar is implemented by the current pool (component C4): every Variable
// Flatten allocates must be registered with the pool that is live at flatten time,
// per spec §4.4 ("every freshly created or flattened variable is registered").
type Registrar interface {
	Register(v Variable)
	Rank() Rank
}

// Flatten converts a Surface expression into a single Variable in store, allocating a
// fresh Variable (registered with reg) for every constructor application it walks.
// SurfaceVar leaves are returned as-is without allocating anything, since they name a
// Variable that some earlier step (typically also via Flatten, or a scheme
// instantiation) already registered.
func Flatten(store *Store, reg Registrar, s Surface) Variable {
	switch s := s.(type) {
	case SurfaceVar:
		return s.Var

	case SurfaceApp:
		args := make([]Variable, len(s.Args))
		for i, a := range s.Args {
			args[i] = Flatten(store, reg, a)
		}
		return freshStructure(store, reg, App1{Name: s.Name, Args: args})

	case SurfaceFun:
		arg := Flatten(store, reg, s.Arg)
		ret := Flatten(store, reg, s.Ret)
		return freshStructure(store, reg, Fun1{Arg: arg, Ret: ret})

	case SurfaceEmptyRecord:
		return freshStructure(store, reg, EmptyRecord1{})

	case SurfaceRecord:
		b := NewRecordMapBuilder()
		for name, field := range s.Fields {
			b = b.Set(name, Flatten(store, reg, field))
		}
		ext := Flatten(store, reg, s.Extension)
		return freshStructure(store, reg, Record1{Fields: b.Build(), Extension: ext})

	case SurfaceAlias:
		args := make([]AliasArg, len(s.Args))
		for i, a := range s.Args {
			args[i] = AliasArg{Name: a.Name, Var: Flatten(store, reg, a.Var)}
		}
		// s.Self is already registered by whoever allocated it; RealVar is flattened
		// after the descriptor swap below would be too late, so it's flattened first
		// and any self-reference inside it resolves through the SurfaceVar{s.Self}
		// leaf, which returns s.Self unchanged without touching its (still-Flex)
		// descriptor.
		realVar := Flatten(store, reg, s.RealVar)
		store.SetDescriptor(s.Self, NewDescriptor(Alias{
			QualifiedName: s.QualifiedName,
			Args:          args,
			RealVar:       realVar,
			Group:         s.Group,
		}, reg.Rank()))
		return s.Self
	}
	panic("types: unhandled Surface variant")
}

func freshStructure(store *Store, reg Registrar, t Term) Variable {
	v := store.Fresh(NewDescriptor(Structure{Term: t}, reg.Rank()))
	reg.Register(v)
	return v
}

// CheckAcyclic walks every reachable Structure/Alias edge from each root and reports
// whether the graph induced by those edges is free of cycles (spec §8, Testable
// Property 6; invariant 5). It is read-only: no Variable is unioned, marked, or
// otherwise mutated, so it is safe to call at any point, including mid-solve for
// diagnostics.
func CheckAcyclic(store *Store, roots []Variable) bool {
	return len(FindCycles(store, roots)) == 0
}

// Reachable returns the representative Variable of every equivalence class reachable
// from root through a Structure/Alias edge, including root's own class. It is
// read-only, exactly like FindCycles and CheckAcyclic, and is meant to be paired with
// FindCycles: scan the cyclic set across a whole batch of roots once, then test each
// root's Reachable set against that frozen set independently, so which roots are
// found "infinite" never depends on the order the batch is processed in (see
// solve.occursCheck, the caller this exists for).
func Reachable(store *Store, root Variable) []Variable {
	_, order := reachableOrder(store, []Variable{root})
	return order
}

// FindCycles walks every reachable Structure/Alias edge from each root and returns the
// representative Variable of every equivalence class that actually participates in a
// cycle - not merely the roots passed in. A root can be acyclic on its own while still
// reaching a cyclic class nested deeper in its structure (e.g. a header variable bound
// to List(h) where h alone satisfies h = List(h)); callers that need to install an
// Error("∞") sentinel on "the offending class" (spec invariant 5) must use the classes
// this returns, not the roots, or the sentinel lands on an innocent ancestor instead of
// the class that is actually infinite.
//
// Built on internal/util.Graph's Tarjan SCC rather than a hand-rolled DFS, matching the
// teacher's choice to reuse that utility for cycle analysis instead of re-deriving
// Tarjan's algorithm at each call site.
func FindCycles(store *Store, roots []Variable) []Variable {
	index, order := reachableOrder(store, roots)

	g := util.NewGraph(len(order))
	for _, v := range order {
		from := index[store.Find(v)]
		for _, succ := range structureSuccessors(store, v) {
			g.AddEdge(from, index[store.Find(succ)])
		}
	}
	var cyclic []Variable
	for _, scc := range g.SCC() {
		if len(scc) > 1 {
			for _, idx := range scc {
				cyclic = append(cyclic, order[idx])
			}
			continue
		}
		// A singleton component is still a cycle if it has a self-edge.
		v := scc[0]
		if g.HasEdge(v, v) {
			cyclic = append(cyclic, order[v])
		}
	}
	return cyclic
}

// reachableOrder walks every Structure/Alias edge reachable from roots via a
// depth-first visit, assigning each newly-discovered class's canonical representative
// a dense index in discovery order. Both FindCycles and Reachable are this same
// traversal; FindCycles additionally builds a util.Graph over the discovered vertices
// to run Tarjan's SCC, while Reachable just wants the vertex set itself.
func reachableOrder(store *Store, roots []Variable) (index map[Variable]int, order []Variable) {
	index = map[Variable]int{}
	var visit func(v Variable)
	visit = func(v Variable) {
		r := store.Find(v)
		if _, ok := index[r]; ok {
			return
		}
		index[r] = len(order)
		order = append(order, r)
		for _, succ := range structureSuccessors(store, r) {
			visit(succ)
		}
	}
	for _, root := range roots {
		visit(root)
	}
	return index, order
}

// structureSuccessors lists the Variables one step reachable from v through a
// Structure or Alias content, the only two variants that can participate in a cycle.
func structureSuccessors(store *Store, v Variable) []Variable {
	d := store.Descriptor(v)
	switch c := d.Content.(type) {
	case Alias:
		succ := make([]Variable, 0, len(c.Args)+1)
		for _, a := range c.Args {
			succ = append(succ, a.Var)
		}
		return append(succ, c.RealVar)
	case Structure:
		switch t := c.Term.(type) {
		case App1:
			return append([]Variable(nil), t.Args...)
		case Fun1:
			return []Variable{t.Arg, t.Ret}
		case EmptyRecord1:
			return nil
		case Record1:
			succ := make([]Variable, 0, t.Fields.Len()+1)
			t.Fields.Range(func(_ string, fv Variable) bool {
				succ = append(succ, fv)
				return true
			})
			return append(succ, t.Extension)
		}
	}
	return nil
}
