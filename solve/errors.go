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

package solve

import (
	"fmt"

	"github.com/wdamron/hmcore/region"
)

// LocatedError is anything Solve can append to its error list: unify.Mismatch and
// unify.BadKind satisfy it directly, alongside the two error kinds defined here.
// Policy (spec §7): unification errors accumulate without aborting the walk;
// InternalInvariant aborts the solve immediately.
type LocatedError interface {
	error
	Where() region.Region
}

// InfiniteType is raised by the post-Let occurs check when a header binding's class
// is reachable from itself.
type InfiniteType struct {
	Name     string
	Region   region.Region
	Rendered string
}

func (e *InfiniteType) Error() string {
	return fmt.Sprintf("%s: %s has an infinite type: %s", e.Region, e.Name, e.Rendered)
}
func (e *InfiniteType) Where() region.Region { return e.Region }

// InternalInvariant signals that generalization left a rigid quantifier with a rank
// other than types.NoRank, violating an invariant the solver relies on elsewhere.
// Unlike every other error kind, encountering this aborts Solve immediately (spec §7).
type InternalInvariant struct {
	Region region.Region
	Detail string
}

func (e *InternalInvariant) Error() string {
	return fmt.Sprintf("%s: internal invariant violated: %s", e.Region, e.Detail)
}
func (e *InternalInvariant) Where() region.Region { return e.Region }
