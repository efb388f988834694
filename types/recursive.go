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

// https://www.cs.cmu.edu/~rwh/papers/datatypes/tr.pdf
//
// RecursiveGroup names one or more mutually-recursive aliases (supplemented feature,
// SPEC_FULL.md §1.3(a)): every Alias whose expansion may transitively mention another
// alias in the same nest shares a RecursiveGroup. This replaces the teacher's
// Recursive, which additionally owned the aliased *App bodies directly and tracked
// generic/ref flags for its richer Type sum; here the bodies already live as ordinary
// Alias.RealVar classes in the Store, so a RecursiveGroup is just the shared
// membership marker with a by-name lookup. Generalize and MakeInstance do not consult
// it: they stop on an already-visited member through marks and the Copy memo.
type RecursiveGroup struct {
	// ID uniquely identifies the group within a single Store.
	ID int
	// Members lists every alias variable that belongs to this mutually-recursive nest,
	// in the order they were registered.
	Members []Variable
	// names maps an alias's qualified name to its index in Members, mirroring the
	// teacher's Recursive.Indexes lookup.
	names map[string]int
}

// NewRecursiveGroup creates an empty mutually-recursive nest identified by id.
func NewRecursiveGroup(id int) *RecursiveGroup {
	return &RecursiveGroup{ID: id}
}

// Add registers v as a named member of the group and returns its index.
func (g *RecursiveGroup) Add(name string, v Variable) int {
	g.Members = append(g.Members, v)
	if g.names == nil {
		g.names = make(map[string]int)
	}
	idx := len(g.Members) - 1
	g.names[name] = idx
	return idx
}

// Lookup returns the member variable registered under name, if any.
func (g *RecursiveGroup) Lookup(name string) (Variable, bool) {
	idx, ok := g.names[name]
	if !ok {
		return 0, false
	}
	return g.Members[idx], true
}

// Contains reports whether v was registered as a member of this group.
func (g *RecursiveGroup) Contains(v Variable) bool {
	for _, m := range g.Members {
		if m == v {
			return true
		}
	}
	return false
}
