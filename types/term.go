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

// Term is the shape held by a Structure content: a concrete type constructor applied
// to argument variables. The grammar is fixed to App1, Fun1, EmptyRecord1, and Record1;
// there is no Variant/RowExtend case here, unlike the teacher's richer Type sum, since
// nothing else in the scope of this core requires sum types.
type Term interface {
	// termNode restricts Term to the variants declared in this file.
	termNode()
	TermName() string
}

// App1 is a type constructor (named by Name, e.g. "List" or "Result") applied to zero
// or more argument variables.
type App1 struct {
	Name string
	Args []Variable
}

func (App1) termNode()        {}
func (App1) TermName() string { return "App1" }

// Fun1 is a single-argument function type. Curried multi-argument functions are
// expressed, as in the teacher's encoding, as nested Fun1 values.
type Fun1 struct {
	Arg Variable
	Ret Variable
}

func (Fun1) termNode()        {}
func (Fun1) TermName() string { return "Fun1" }

// EmptyRecord1 is the empty, closed record `{}`.
type EmptyRecord1 struct{}

func (EmptyRecord1) termNode()        {}
func (EmptyRecord1) TermName() string { return "EmptyRecord1" }

// Record1 is a record with Fields, extended by Extension: a record is only fully
// closed when Extension resolves (through Find) to a class holding EmptyRecord1.
// Otherwise Extension names a row variable that may unify with further fields later
// (spec §3, §4.3.5).
type Record1 struct {
	Fields    RecordMap
	Extension Variable
}

func (Record1) termNode()        {}
func (Record1) TermName() string { return "Record1" }
