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
	"fmt"

	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
)

// Hint labels why two classes were asked to unify, so an error message can explain the
// context (e.g. "argument 2 of f") rather than just the two types involved.
type Hint string

// InstanceHint labels a unification issued while resolving an Instance constraint
// against an identifier's scheme.
func InstanceHint(name string) Hint { return Hint("instance of " + name) }

// Mismatch is returned when two classes' contents cannot be reconciled.
type Mismatch struct {
	Hint   Hint
	Region region.Region
	Left   types.SourceType
	Right  types.SourceType
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("%s: cannot unify %s with %s (%s)", m.Region, m.Left, m.Right, m.Hint)
}

// Where satisfies package solve's LocatedError interface.
func (m *Mismatch) Where() region.Region { return m.Region }

// BadKind is returned when a super-constraint (number/comparable/appendable/compappend)
// is violated.
type BadKind struct {
	Hint   Hint
	Region region.Region
	Super  string
	Got    types.SourceType
}

func (m *BadKind) Error() string {
	return fmt.Sprintf("%s: %s does not satisfy %s (%s)", m.Region, m.Got, m.Super, m.Hint)
}

// Where satisfies package solve's LocatedError interface.
func (m *BadKind) Where() region.Region { return m.Region }
