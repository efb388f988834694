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

package unify

import (
	"testing"

	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
)

func TestUnifyFlexWithStructure(t *testing.T) {
	store := types.NewStore(8)
	a := store.Fresh(types.NewDescriptor(types.Flex{}, types.OutermostRank))
	intVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))

	if err := Unify(store, "test", region.None, a, intVar); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.Equivalent(a, intVar) {
		t.Fatalf("expected a and intVar to be unified")
	}
	s, ok := store.Descriptor(a).Content.(types.Structure)
	if !ok {
		t.Fatalf("expected the merged class to carry the concrete Structure")
	}
	if app, ok := s.Term.(types.App1); !ok || app.Name != "Int" {
		t.Fatalf("expected the merged class to be Int, got %#v", s.Term)
	}
}

func TestUnifyAppMismatch(t *testing.T) {
	store := types.NewStore(8)
	intVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))
	strVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "String"}}, types.OutermostRank))

	err := Unify(store, "test", region.None, intVar, strVar)
	if err == nil {
		t.Fatalf("expected a mismatch error")
	}
	if _, ok := err.(*Mismatch); !ok {
		t.Fatalf("expected *Mismatch, got %T", err)
	}
	if _, ok := store.Descriptor(intVar).Content.(types.Error); !ok {
		t.Fatalf("expected the merged class to carry an Error sentinel after failure")
	}
}

func TestUnifyRigidOnlyMatchesItself(t *testing.T) {
	store := types.NewStore(8)
	r1 := store.Fresh(types.NewDescriptor(types.Rigid{Name: "a"}, types.OutermostRank))
	r2 := store.Fresh(types.NewDescriptor(types.Rigid{Name: "a"}, types.OutermostRank))

	if err := Unify(store, "test", region.None, r1, r2); err == nil {
		t.Fatalf("expected two distinct rigid variables to fail to unify")
	}

	store2 := types.NewStore(8)
	rigid := store2.Fresh(types.NewDescriptor(types.Rigid{Name: "a"}, types.OutermostRank))
	if err := Unify(store2, "test", region.None, rigid, rigid); err != nil {
		t.Fatalf("a rigid variable must unify with itself: %v", err)
	}
}

func TestUnifyBadKind(t *testing.T) {
	store := types.NewStore(8)
	a := store.Fresh(types.NewDescriptor(types.Flex{Super: types.Number}, types.OutermostRank))
	str := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "String"}}, types.OutermostRank))

	err := Unify(store, "test", region.None, a, str)
	if err == nil {
		t.Fatalf("expected a BadKind error")
	}
	bk, ok := err.(*BadKind)
	if !ok {
		t.Fatalf("expected *BadKind, got %T", err)
	}
	if bk.Super != "number" {
		t.Fatalf("expected Super to name \"number\", got %q", bk.Super)
	}
}

func TestUnifySuperKindMergeOnFlexFlex(t *testing.T) {
	store := types.NewStore(8)
	a := store.Fresh(types.NewDescriptor(types.Flex{Super: types.Comparable}, types.OutermostRank))
	b := store.Fresh(types.NewDescriptor(types.Flex{Super: types.Appendable}, types.OutermostRank))

	if err := Unify(store, "test", region.None, a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flex, ok := store.Descriptor(a).Content.(types.Flex)
	if !ok {
		t.Fatalf("expected the merged class to remain Flex")
	}
	if flex.Super != types.CompAppend {
		t.Fatalf("expected comparable+appendable to merge to compappend, got %v", flex.Super.Name)
	}
}

func TestUnifyRecordWidth(t *testing.T) {
	store := types.NewStore(8)
	strTy := func() types.Variable {
		return store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "String"}}, types.OutermostRank))
	}
	intTy := func() types.Variable {
		return store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))
	}
	emptyRec := store.Fresh(types.NewDescriptor(types.Structure{Term: types.EmptyRecord1{}}, types.OutermostRank))
	r := store.Fresh(types.NewDescriptor(types.Flex{}, types.OutermostRank))

	rec1 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{
		Fields:    types.SingletonRecordMap("name", strTy()),
		Extension: r,
	}}, types.OutermostRank))
	rec2 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{
		Fields:    types.NewRecordMapBuilder().Set("name", strTy()).Set("age", intTy()).Build(),
		Extension: emptyRec,
	}}, types.OutermostRank))

	if err := Unify(store, "test", region.None, rec1, rec2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rRec, ok := store.Descriptor(r).Content.(types.Structure)
	if !ok {
		t.Fatalf("expected r to be unified with a concrete record, got %T", store.Descriptor(r).Content)
	}
	row, ok := rRec.Term.(types.Record1)
	if !ok {
		t.Fatalf("expected r's structure to be a Record1")
	}
	if _, ok := row.Fields.Get("age"); !ok {
		t.Fatalf("expected r to absorb the age field")
	}
	if _, ok := row.Fields.Get("name"); ok {
		t.Fatalf("expected name to stay out of r's absorbed fields, since it was already common")
	}
	ext, ok := store.Descriptor(row.Extension).Content.(types.Structure)
	if !ok {
		t.Fatalf("expected r's remaining extension to be concrete")
	}
	if _, ok := ext.Term.(types.EmptyRecord1); !ok {
		t.Fatalf("expected r's remaining extension to be the empty record")
	}
}

func TestUnifyRecordFieldClash(t *testing.T) {
	store := types.NewStore(8)
	emptyRec := func() types.Variable {
		return store.Fresh(types.NewDescriptor(types.Structure{Term: types.EmptyRecord1{}}, types.OutermostRank))
	}
	intTy := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))
	strTy := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "String"}}, types.OutermostRank))

	rec1 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{
		Fields:    types.SingletonRecordMap("x", intTy),
		Extension: emptyRec(),
	}}, types.OutermostRank))
	rec2 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{
		Fields:    types.SingletonRecordMap("x", strTy),
		Extension: emptyRec(),
	}}, types.OutermostRank))

	err := Unify(store, "test", region.None, rec1, rec2)
	if err == nil {
		t.Fatalf("expected a mismatch on field x")
	}
	if _, ok := err.(*Mismatch); !ok {
		t.Fatalf("expected *Mismatch, got %T", err)
	}
	if _, ok := store.Descriptor(rec1).Content.(types.Error); !ok {
		t.Fatalf("expected the outer record class to carry an Error sentinel")
	}
}

func TestUnifyClosedRowsRejectExtraFields(t *testing.T) {
	store := types.NewStore(8)
	intTy := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))
	emptyRec := func() types.Variable {
		return store.Fresh(types.NewDescriptor(types.Structure{Term: types.EmptyRecord1{}}, types.OutermostRank))
	}

	closed := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{
		Fields:    types.EmptyRecordMap,
		Extension: emptyRec(),
	}}, types.OutermostRank))
	withAge := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{
		Fields:    types.SingletonRecordMap("age", intTy),
		Extension: emptyRec(),
	}}, types.OutermostRank))

	if err := Unify(store, "test", region.None, closed, withAge); err == nil {
		t.Fatalf("expected a closed record to reject an extra field")
	}
}

// TestUnifyAliasExpandsAgainstStructure covers the Alias/Structure arm: unifying an
// alias with a concrete structure unifies the alias's expansion against it and the
// merged class takes on the expansion's content, not the Alias wrapper.
func TestUnifyAliasExpandsAgainstStructure(t *testing.T) {
	store := types.NewStore(8)
	realVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))
	aliasVar := store.Fresh(types.NewDescriptor(types.Alias{
		QualifiedName: "MyInt",
		RealVar:       realVar,
	}, types.OutermostRank))
	concreteVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))

	if err := Unify(store, "test", region.None, aliasVar, concreteVar); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := store.Descriptor(aliasVar).Content.(types.Structure)
	if !ok {
		t.Fatalf("expected the merged class to carry the expansion's Structure, got %T", store.Descriptor(aliasVar).Content)
	}
	if app, ok := s.Term.(types.App1); !ok || app.Name != "Int" {
		t.Fatalf("expected the merged class to be Int, got %#v", s.Term)
	}
}

// TestUnifyAliasSameNameUnifiesArgsOnly covers the Alias/Alias arm when both sides
// name the same alias at the same arity: only the type arguments are unified pairwise,
// and the winning RealVar is the left side's own - the two expansions are never
// compared directly, since same-named, same-arity aliases are assumed equal by
// construction.
func TestUnifyAliasSameNameUnifiesArgsOnly(t *testing.T) {
	store := types.NewStore(8)
	rv1 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "PairRepr"}}, types.OutermostRank))
	rv2 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "PairRepr"}}, types.OutermostRank))
	argFlex := store.Fresh(types.NewDescriptor(types.Flex{}, types.OutermostRank))
	argInt := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))

	a1 := store.Fresh(types.NewDescriptor(types.Alias{
		QualifiedName: "Pair", Args: []types.AliasArg{{Name: "a", Var: argFlex}}, RealVar: rv1,
	}, types.OutermostRank))
	a2 := store.Fresh(types.NewDescriptor(types.Alias{
		QualifiedName: "Pair", Args: []types.AliasArg{{Name: "a", Var: argInt}}, RealVar: rv2,
	}, types.OutermostRank))

	if err := Unify(store, "test", region.None, a1, a2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.Equivalent(argFlex, argInt) {
		t.Fatalf("expected same-named aliases to unify their type arguments")
	}
	if store.Equivalent(rv1, rv2) {
		t.Fatalf("expected same-named, same-arity aliases to leave their expansions untouched")
	}
	merged, ok := store.Descriptor(a1).Content.(types.Alias)
	if !ok {
		t.Fatalf("expected the merged class to remain an Alias, got %T", store.Descriptor(a1).Content)
	}
	if merged.RealVar != rv1 {
		t.Fatalf("expected the merged alias to keep the left side's own RealVar")
	}
}
