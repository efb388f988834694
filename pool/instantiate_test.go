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

package pool

import (
	"testing"

	"github.com/wdamron/hmcore/types"
)

// buildGeneralizedIdentity returns a fully-generalized ∀a. a -> a scheme, rooted at
// self, plus the pool an instantiation should land in.
func buildGeneralizedIdentity(t *testing.T) (store *types.Store, current *Pool, self types.Variable) {
	t.Helper()
	store, marks, old, young, _, self := buildIdentityScheme(t)
	Generalize(store, marks, old, young)
	return store, old, self
}

func TestMakeInstanceProducesDisjointCopy(t *testing.T) {
	store, current, self := buildGeneralizedIdentity(t)

	copy1 := MakeInstance(store, current, self)
	if copy1 == self {
		t.Fatalf("expected a fresh variable, got the scheme's own root")
	}

	fn, ok := store.Descriptor(copy1).Content.(types.Structure)
	if !ok {
		t.Fatalf("expected the copy's content to be a Structure")
	}
	arrow, ok := fn.Term.(types.Fun1)
	if !ok {
		t.Fatalf("expected the copy's term to be a Fun1")
	}
	if arrow.Arg != arrow.Ret {
		t.Fatalf("expected the copy to preserve a = a sharing between argument and return")
	}
	orig := store.Descriptor(self).Content.(types.Structure).Term.(types.Fun1)
	if arrow.Arg == orig.Arg {
		t.Fatalf("expected the copy's argument variable to be fresh, not the scheme's own quantifier")
	}
}

func TestMakeInstanceTwiceYieldsIndependentCopies(t *testing.T) {
	store, current, self := buildGeneralizedIdentity(t)

	copy1 := MakeInstance(store, current, self)
	copy2 := MakeInstance(store, current, self)

	if copy1 == copy2 {
		t.Fatalf("expected independent instantiations to allocate distinct variables")
	}

	// Binding copy1's argument to Int must not touch copy2's argument.
	arrow1 := store.Descriptor(copy1).Content.(types.Structure).Term.(types.Fun1)
	store.SetDescriptor(arrow1.Arg, types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, current.Rank()))

	arrow2 := store.Descriptor(copy2).Content.(types.Structure).Term.(types.Fun1)
	if _, ok := store.Descriptor(arrow2.Arg).Content.(types.Flex); !ok {
		t.Fatalf("expected copy2's argument to remain an unconstrained Flex variable")
	}
}

func TestMakeInstanceDoesNotDisturbOriginalScheme(t *testing.T) {
	store, current, self := buildGeneralizedIdentity(t)
	beforeRank := store.Descriptor(self).Rank
	beforeContent := store.Descriptor(self).Content

	_ = MakeInstance(store, current, self)

	if store.Descriptor(self).Rank != beforeRank {
		t.Fatalf("expected the original scheme's rank to be unaffected by instantiation")
	}
	if store.Descriptor(self).Content != beforeContent {
		t.Fatalf("expected the original scheme's content to be unaffected by instantiation")
	}
	if store.Descriptor(self).HasCopy {
		t.Fatalf("expected the Copy/HasCopy memo to be cleared after MakeInstance returns")
	}
}

// buildGeneralizedRecursiveAlias returns a fully-generalized `Stream a = Cons a
// (Stream a)` scheme, rooted at self, exercising copyContent's Alias case together
// with the same pre-allocate-then-recurse trick MakeInstance uses for any cycle.
func buildGeneralizedRecursiveAlias(t *testing.T) (store *types.Store, current *Pool, self types.Variable) {
	t.Helper()
	store = types.NewStore(8)
	marks := NewMarkCounter()
	old := New(types.OutermostRank)
	young := old.NextRankPool()

	a := store.Fresh(types.NewDescriptor(types.Flex{}, young.Rank()))
	young.Register(a)
	self = store.Fresh(types.NewDescriptor(types.Flex{}, young.Rank()))
	young.Register(self)
	body := store.Fresh(types.NewDescriptor(types.Structure{
		Term: types.App1{Name: "Cons", Args: []types.Variable{a, self}},
	}, young.Rank()))
	young.Register(body)
	store.SetDescriptor(self, types.NewDescriptor(types.Alias{
		QualifiedName: "Stream",
		Args:          []types.AliasArg{{Name: "a", Var: a}},
		RealVar:       body,
	}, young.Rank()))

	Generalize(store, marks, old, young)
	return store, old, self
}

func TestMakeInstanceCopiesRecursiveAlias(t *testing.T) {
	store, current, self := buildGeneralizedRecursiveAlias(t)

	copy1 := MakeInstance(store, current, self)
	if copy1 == self {
		t.Fatalf("expected a fresh variable, got the scheme's own root")
	}

	alias, ok := store.Descriptor(copy1).Content.(types.Alias)
	if !ok {
		t.Fatalf("expected the copy's content to be an Alias, got %T", store.Descriptor(copy1).Content)
	}
	if alias.QualifiedName != "Stream" {
		t.Fatalf("expected QualifiedName Stream, got %q", alias.QualifiedName)
	}
	body, ok := store.Descriptor(store.Find(alias.RealVar)).Content.(types.Structure)
	if !ok {
		t.Fatalf("expected the copy's RealVar to be a concrete Structure")
	}
	cons, ok := body.Term.(types.App1)
	if !ok || cons.Name != "Cons" || len(cons.Args) != 2 {
		t.Fatalf("expected Cons(a, self), got %#v", body.Term)
	}
	if cons.Args[1] != copy1 {
		t.Fatalf("expected the copy's recursive argument to close over the copy itself, not the original scheme root")
	}
	if cons.Args[0] != alias.Args[0].Var {
		t.Fatalf("expected the alias argument and the body's use of it to be copied to the same variable")
	}
}
