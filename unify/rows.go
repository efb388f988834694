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
	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
)

// unifyRows implements extensible-record unification (Leijen, "Extensible records
// with scoped labels"), spec §4.3 step 5's Record1 case: fields common to both sides
// unify pairwise; fields exclusive to one side are absorbed into the other side's
// extension, introducing a fresh shared tail only when both sides have exclusive
// fields of their own to account for.
func unifyRows(store *types.Store, hint Hint, rgn region.Region, rank types.Rank, v1, v2 types.Variable, r1, r2 types.Record1) (types.Term, error) {
	only1 := types.NewRecordMapBuilder()
	var ferr error
	r1.Fields.Range(func(name string, fv1 types.Variable) bool {
		if fv2, ok := r2.Fields.Get(name); ok {
			if err := Unify(store, hint, rgn, fv1, fv2); err != nil {
				ferr = err
				return false
			}
		} else {
			only1 = only1.Set(name, fv1)
		}
		return true
	})
	if ferr != nil {
		return nil, ferr
	}

	only2 := types.NewRecordMapBuilder()
	r2.Fields.Range(func(name string, fv2 types.Variable) bool {
		if _, ok := r1.Fields.Get(name); !ok {
			only2 = only2.Set(name, fv2)
		}
		return true
	})

	extra1, extra2 := only1.Build(), only2.Build()
	mismatchErr := func() error { return mismatch(store, hint, rgn, v1, v2) }

	var tail types.Variable
	switch {
	case extra1.Len() == 0 && extra2.Len() == 0:
		if err := Unify(store, hint, rgn, r1.Extension, r2.Extension); err != nil {
			return nil, err
		}
		tail = store.Find(r1.Extension)

	case extra1.Len() == 0:
		if isClosedRow(store, r1.Extension) {
			return nil, mismatchErr()
		}
		rem := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{Fields: extra2, Extension: r2.Extension}}, rank))
		if err := Unify(store, hint, rgn, r1.Extension, rem); err != nil {
			return nil, err
		}
		tail = r2.Extension

	case extra2.Len() == 0:
		if isClosedRow(store, r2.Extension) {
			return nil, mismatchErr()
		}
		rem := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{Fields: extra1, Extension: r1.Extension}}, rank))
		if err := Unify(store, hint, rgn, r2.Extension, rem); err != nil {
			return nil, err
		}
		tail = r1.Extension

	default:
		if isClosedRow(store, r1.Extension) || isClosedRow(store, r2.Extension) {
			return nil, mismatchErr()
		}
		shared := store.Fresh(types.NewDescriptor(types.Flex{}, rank))
		rem2 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{Fields: extra2, Extension: shared}}, rank))
		if err := Unify(store, hint, rgn, r1.Extension, rem2); err != nil {
			return nil, err
		}
		rem1 := store.Fresh(types.NewDescriptor(types.Structure{Term: types.Record1{Fields: extra1, Extension: shared}}, rank))
		if err := Unify(store, hint, rgn, r2.Extension, rem1); err != nil {
			return nil, err
		}
		tail = shared
	}

	merged := r1.Fields.Builder()
	extra2.Range(func(name string, v types.Variable) bool { merged = merged.Set(name, v); return true })
	return types.Record1{Fields: merged.Build(), Extension: store.Find(tail)}, nil
}

// isClosedRow reports whether v's class is, structurally, the empty record - i.e. no
// further fields can be absorbed into it.
func isClosedRow(store *types.Store, v types.Variable) bool {
	s, ok := store.Descriptor(store.Find(v)).Content.(types.Structure)
	if !ok {
		return false
	}
	_, ok = s.Term.(types.EmptyRecord1)
	return ok
}
