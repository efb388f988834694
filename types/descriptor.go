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

// Rank is the nesting depth of the innermost let that introduced a variable.
type Rank int32

const (
	// NoRank marks a class that has been generalized into a scheme quantifier.
	NoRank Rank = -1
	// OutermostRank is the rank of the solver's initial pool.
	OutermostRank Rank = 0
)

// Mark is a transient traversal sentinel. Marks are obtained from a process-wide
// monotonically increasing counter (pool.MarkCounter.Fresh) rather than cleared per traversal,
// so a Mark is only ever meaningfully compared against the counter value current at
// the time a traversal started (spec §5, "Marks").
type Mark int64

// NoMark is the zero value held by a freshly allocated Descriptor, guaranteed to
// never equal a Mark handed out by the counter (which starts at 1).
const NoMark Mark = 0

// Descriptor is the payload of one equivalence class in the union-find store.
// Exactly one Descriptor is shared by every Variable in a class; mutating it through
// any member's Store.ModifyDescriptor is observed by all of them.
type Descriptor struct {
	Content Content
	Rank    Rank
	Mark    Mark
	// Copy memoizes the freshly allocated variable produced for this class during
	// the in-progress scheme instantiation (pool.MakeInstance); cleared afterward.
	Copy Variable
	// HasCopy distinguishes "not yet copied" from "copied to variable 0", since 0
	// is a valid Variable id.
	HasCopy bool
}

// NewDescriptor creates a descriptor holding content at the given rank, with no mark
// and no instantiation copy.
func NewDescriptor(content Content, rank Rank) *Descriptor {
	return &Descriptor{Content: content, Rank: rank}
}

// ClearCopy drops the instantiation memo, called once instantiation of the
// enclosing scheme has finished walking every reachable variable.
func (d *Descriptor) ClearCopy() { d.Copy, d.HasCopy = 0, false }
