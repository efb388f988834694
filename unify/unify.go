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

// Package unify implements the unifier (component C3): the only writer allowed to
// call types.Store.Union. Everything here is plain recursion over the descriptor
// pair's content; there is no backtracking except through the explicit speculative
// transaction in speculate.go.
package unify

import (
	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
)

// Unify makes v1 and v2's classes denote the same type, recording hint and region on
// any error it returns. On failure, it installs a types.Error sentinel on the merged
// class so later unifications touching it degrade silently instead of cascading
// (spec §4.3, step 6).
func Unify(store *types.Store, hint Hint, rgn region.Region, v1, v2 types.Variable) error {
	if store.Equivalent(v1, v2) {
		return nil
	}
	d1, d2 := store.Descriptor(v1), store.Descriptor(v2)
	mergedRank := mergeRank(d1.Rank, d2.Rank)

	content, err := unifyContent(store, hint, rgn, v1, d1.Content, v2, d2.Content, mergedRank)
	if err != nil {
		store.Union(v1, v2, types.NewDescriptor(types.Error{Reason: err.Error()}, mergedRank))
		return err
	}
	store.Union(v1, v2, types.NewDescriptor(content, mergedRank))
	return nil
}

func mergeRank(a, b types.Rank) types.Rank {
	if a == types.NoRank || b == types.NoRank {
		return types.NoRank
	}
	if a < b {
		return a
	}
	return b
}

func preferName(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func mergeSuperPtr(a, b *types.SuperKind) (*types.SuperKind, bool) {
	switch {
	case a == nil:
		return b, true
	case b == nil:
		return a, true
	}
	return a.Merge(b)
}

// unifyContent dispatches on the pair of contents per spec §4.3's table. Cases that
// are symmetric in the table recurse with v1/v2 (and c1/c2) swapped rather than
// duplicating logic.
func unifyContent(store *types.Store, hint Hint, rgn region.Region, v1 types.Variable, c1 types.Content, v2 types.Variable, c2 types.Content, rank types.Rank) (types.Content, error) {
	switch l := c1.(type) {
	case types.Flex:
		switch r := c2.(type) {
		case types.Flex:
			super, ok := mergeSuperPtr(l.Super, r.Super)
			if !ok {
				return nil, badKind(store, hint, rgn, v2, l.Super, r.Super)
			}
			return types.Flex{Super: super, Name: preferName(l.Name, r.Name)}, nil

		case types.Rigid:
			super, ok := mergeSuperPtr(l.Super, r.Super)
			if !ok {
				return nil, badKind(store, hint, rgn, v2, l.Super, r.Super)
			}
			return types.Rigid{Super: super, Name: r.Name}, nil

		case types.Alias, types.Structure, types.Error:
			return unifyFlexWithConcrete(store, hint, rgn, v1, l, v2, c2, rank)
		}

	case types.Rigid:
		switch c2.(type) {
		case types.Flex:
			return unifyContent(store, hint, rgn, v2, c2, v1, c1, rank)
		case types.Error:
			return c2, nil
		default:
			// Rigid succeeds only against itself (already ruled out above by the
			// Equivalent check) or another Flex; anything else is a mismatch.
			return nil, mismatch(store, hint, rgn, v1, v2)
		}

	case types.Alias:
		switch r := c2.(type) {
		case types.Flex, types.Rigid:
			return unifyContent(store, hint, rgn, v2, c2, v1, c1, rank)
		case types.Error:
			return r, nil
		case types.Alias:
			if l.QualifiedName == r.QualifiedName && len(l.Args) == len(r.Args) {
				for i := range l.Args {
					if err := Unify(store, hint, rgn, l.Args[i].Var, r.Args[i].Var); err != nil {
						return nil, err
					}
				}
				return c1, nil
			}
			if err := Unify(store, hint, rgn, l.RealVar, r.RealVar); err != nil {
				return nil, err
			}
			return c1, nil
		case types.Structure:
			if err := Unify(store, hint, rgn, l.RealVar, v2); err != nil {
				return nil, err
			}
			return store.Descriptor(store.Find(v2)).Content, nil
		}

	case types.Structure:
		switch r := c2.(type) {
		case types.Flex, types.Rigid, types.Alias:
			return unifyContent(store, hint, rgn, v2, c2, v1, c1, rank)
		case types.Error:
			return r, nil
		case types.Structure:
			term, err := unifyTerm(store, hint, rgn, v1, v2, l.Term, r.Term, rank)
			if err != nil {
				return nil, err
			}
			return types.Structure{Term: term}, nil
		}

	case types.Error:
		return c1, nil
	}
	return nil, mismatch(store, hint, rgn, v1, v2)
}

// unifyFlexWithConcrete handles Flex unified with Alias, Structure, or Error: the
// concrete side wins, after checking the Flex's super-constraint (if any) against a
// Structure head.
func unifyFlexWithConcrete(store *types.Store, hint Hint, rgn region.Region, v1 types.Variable, l types.Flex, v2 types.Variable, c2 types.Content, rank types.Rank) (types.Content, error) {
	if s, ok := c2.(types.Structure); ok && l.Super != nil {
		if !l.Super.Satisfies(s.Term) {
			return nil, &BadKind{Hint: hint, Region: rgn, Super: l.Super.Name, Got: types.ToSrcType(store, v2)}
		}
	}
	return c2, nil
}

func unifyTerm(store *types.Store, hint Hint, rgn region.Region, v1, v2 types.Variable, t1, t2 types.Term, rank types.Rank) (types.Term, error) {
	switch l := t1.(type) {
	case types.App1:
		r, ok := t2.(types.App1)
		if !ok || l.Name != r.Name || len(l.Args) != len(r.Args) {
			return nil, mismatch(store, hint, rgn, v1, v2)
		}
		for i := range l.Args {
			if err := Unify(store, hint, rgn, l.Args[i], r.Args[i]); err != nil {
				return nil, err
			}
		}
		return l, nil

	case types.Fun1:
		r, ok := t2.(types.Fun1)
		if !ok {
			return nil, mismatch(store, hint, rgn, v1, v2)
		}
		if err := Unify(store, hint, rgn, l.Arg, r.Arg); err != nil {
			return nil, err
		}
		if err := Unify(store, hint, rgn, l.Ret, r.Ret); err != nil {
			return nil, err
		}
		return l, nil

	case types.EmptyRecord1:
		if _, ok := t2.(types.EmptyRecord1); ok {
			return l, nil
		}
		return nil, mismatch(store, hint, rgn, v1, v2)

	case types.Record1:
		r, ok := t2.(types.Record1)
		if !ok {
			return nil, mismatch(store, hint, rgn, v1, v2)
		}
		return unifyRows(store, hint, rgn, rank, v1, v2, l, r)
	}
	return nil, mismatch(store, hint, rgn, v1, v2)
}

func mismatch(store *types.Store, hint Hint, rgn region.Region, v1, v2 types.Variable) error {
	return &Mismatch{Hint: hint, Region: rgn, Left: types.ToSrcType(store, v1), Right: types.ToSrcType(store, v2)}
}

func badKind(store *types.Store, hint Hint, rgn region.Region, got types.Variable, a, b *types.SuperKind) error {
	name := a.Name
	if name == "" && b != nil {
		name = b.Name
	}
	return &BadKind{Hint: hint, Region: rgn, Super: name, Got: types.ToSrcType(store, got)}
}
