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
	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
	"github.com/wdamron/hmcore/unify"
)

// LocatedVariable pairs a Variable with the region its binding came from, so an error
// raised while using it (e.g. the post-Let occurs check) can point back at source.
type LocatedVariable struct {
	Var    types.Variable
	Region region.Region
}

// Scheme is a (possibly polymorphic) binding: a constraint to solve to produce a
// header of named variables, quantified by zero or more rigid and flex variables.
// A Scheme with both quantifier lists empty is a monomorphic binding (spec §3).
type Scheme struct {
	RigidQuantifiers []types.Variable
	FlexQuantifiers  []types.Variable
	Constraint       Constraint
	Header           map[string]LocatedVariable
}

// Constraint is the solver's input language (spec §3). Exactly one of the concrete
// types below satisfies it; Solve dispatches on the dynamic type.
type Constraint interface {
	constraintNode()
}

// True is a no-op constraint.
type True struct{}

func (True) constraintNode() {}

// SaveEnv snapshots the current environment into the solver's State.SavedEnv.
type SaveEnv struct{}

func (SaveEnv) constraintNode() {}

// Equal requires term1 and term2 to denote the same type once flattened.
type Equal struct {
	Hint         unify.Hint
	Region       region.Region
	Term1, Term2 types.Surface
}

func (Equal) constraintNode() {}

// And solves every element of Constraints in order; later elements observe earlier
// unifications, so reordering is never permitted (spec §5).
type And struct {
	Constraints []Constraint
}

func (And) constraintNode() {}

// Let solves each Scheme's constraint (a Scheme with quantifiers in a new pool one
// rank deeper, a monomorphic one in the current pool), installs the resulting
// headers into the environment, solves Body, then restores the environment. A Let
// with a single monomorphic Scheme whose Body is True is the "let shortcut" that
// introduces no new quantifiers (spec §4.5).
type Let struct {
	Schemes []Scheme
	Body    Constraint
}

func (Let) constraintNode() {}

// Instance requires Name to resolve (via the environment, or as a kernel identifier)
// to a type unifiable with Term. Any Name not bound in the environment is treated as
// a kernel identifier and resolves to a fresh variable.
type Instance struct {
	Region region.Region
	Name   string
	Term   types.Surface
}

func (Instance) constraintNode() {}
