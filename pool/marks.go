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

import "github.com/wdamron/hmcore/types"

// MarkCounter is the process-wide monotonically increasing integer source of fresh
// traversal sentinels (spec §5, §9 "Global mark counter"). A single MarkCounter must
// be shared by every Generalize call within one solve, since marks obtained for an
// outer let's generalization must stay distinguishable from marks obtained for an
// inner one, even though pools nest.
type MarkCounter struct{ next types.Mark }

// NewMarkCounter returns a counter that will never hand out types.NoMark.
func NewMarkCounter() *MarkCounter { return &MarkCounter{next: types.NoMark + 1} }

// Fresh returns a mark no previously-issued mark from this counter equals.
func (c *MarkCounter) Fresh() types.Mark {
	m := c.next
	c.next++
	return m
}
