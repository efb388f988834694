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

import (
	"github.com/benbjohnson/immutable"
)

var emptyRecordMap = immutable.NewSortedMap(nil)

// EmptyRecordMap is the record map with no fields.
var EmptyRecordMap = RecordMap{emptyRecordMap}

// RecordMap is an immutable, sorted mapping from field names to the Variable holding
// each field's type. Unlike the teacher's TypeMap (which maps a label to a list of
// types, for scoped/overloaded labels), a record label here denotes exactly one field,
// which is all the spec's Record1 term needs.
//
// Backed by benbjohnson/immutable.SortedMap so iteration order is deterministic (field
// names sort lexically) without a separate sort step in error rendering, and so the
// row-unification algorithm (unify.unifyRows) can build the "remainder" rows
// `{f1\f2 | e1}` via structural sharing instead of copying the whole map.
type RecordMap struct {
	m *immutable.SortedMap
}

// NewRecordMap returns the empty record map.
func NewRecordMap() RecordMap { return EmptyRecordMap }

// SingletonRecordMap returns a record map with a single field.
func SingletonRecordMap(label string, v Variable) RecordMap {
	return RecordMap{emptyRecordMap.Set(label, v)}
}

// Len returns the number of fields.
func (m RecordMap) Len() int { return m.m.Len() }

// Get returns the variable bound to label, if present.
func (m RecordMap) Get(label string) (Variable, bool) {
	v, ok := m.m.Get(label)
	if !ok {
		return 0, false
	}
	return v.(Variable), true
}

// Range calls f for every field in label order, stopping early if f returns false.
func (m RecordMap) Range(f func(label string, v Variable) bool) {
	iter := m.m.Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(Variable)) {
			return
		}
	}
}

// Builder returns a mutable builder seeded with this map's entries.
func (m RecordMap) Builder() RecordMapBuilder {
	imm := m.m
	if imm == nil {
		imm = emptyRecordMap
	}
	return RecordMapBuilder{immutable.NewSortedMapBuilder(imm)}
}

// NewRecordMapBuilder returns a builder seeded with no entries.
func NewRecordMapBuilder() RecordMapBuilder {
	return RecordMapBuilder{immutable.NewSortedMapBuilder(emptyRecordMap)}
}

// RecordMapBuilder accumulates field entries before finalizing into a RecordMap.
type RecordMapBuilder struct {
	b *immutable.SortedMapBuilder
}

func (b RecordMapBuilder) Len() int { return b.b.Len() }

func (b RecordMapBuilder) Set(label string, v Variable) RecordMapBuilder {
	b.b.Set(label, v)
	return b
}

func (b RecordMapBuilder) Delete(label string) RecordMapBuilder {
	b.b.Delete(label)
	return b
}

func (b RecordMapBuilder) Build() RecordMap {
	if b.b == nil {
		return EmptyRecordMap
	}
	return RecordMap{b.b.Map()}
}
