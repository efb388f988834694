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

// Package region locates constraints and errors within elaborator-supplied source text.
//
// The core never parses or owns source text; a Region is an opaque span handed in
// by the elaboration pass (out of scope, see spec §1) and carried through unchanged
// so located errors can point back at it.
package region

import "fmt"

// Region is a byte-offset span within a single named source file.
type Region struct {
	File       string
	Start, End Pos
}

// Pos is a line/column position, both 1-based.
type Pos struct {
	Line, Column int
}

// None is the zero Region, used for constraints synthesized by the solver itself
// (e.g. kernel-identifier fallbacks) which have no corresponding source span.
var None = Region{}

func (r Region) IsNone() bool { return r == None }

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

func (r Region) String() string {
	if r.IsNone() {
		return "<generated>"
	}
	if r.Start == r.End {
		return fmt.Sprintf("%s:%s", r.File, r.Start)
	}
	return fmt.Sprintf("%s:%s-%s", r.File, r.Start, r.End)
}
