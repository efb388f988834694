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

// Content is the payload variant held by a Descriptor. Exactly one of Flex, Rigid,
// Alias, Structure, or Error is live at a time; Unify replaces it wholesale rather
// than mutating a shared representation across variants.
type Content interface {
	// TypeName names the variant, mirroring the teacher's Type.TypeName() convention.
	TypeName() string
}

// Flex is an unsolved type-variable, optionally constrained by a super-kind and
// optionally carrying a programmer-visible name (e.g. from a type annotation).
type Flex struct {
	Super *SuperKind
	Name  string
}

func (Flex) TypeName() string { return "Flex" }

// Rigid is a skolem: forbidden from unifying with anything except itself, or a Flex
// which becomes bound to it.
type Rigid struct {
	Super *SuperKind
	Name  string
}

func (Rigid) TypeName() string { return "Rigid" }

// AliasArg is one type-argument applied to an alias, e.g. the `a` in `type Pair a = ...`.
type AliasArg struct {
	Name string
	Var  Variable
}

// Alias is a named abbreviation applied to arguments. RealVar is the expansion used
// for unification and rank-adjustment purposes; Group is non-nil only when the alias
// belongs to a recursive alias group (spec §1.3). Group is membership information
// carried through Flatten and instantiation; no traversal reads it. Generalize,
// MakeInstance, FindCycles and ToSrcType stop on a recursive alias through their own
// marks, copy memo or visited sets.
type Alias struct {
	QualifiedName string
	Args          []AliasArg
	RealVar       Variable
	Group         *RecursiveGroup
}

func (Alias) TypeName() string { return "Alias" }

// Structure is a concrete type constructor application.
type Structure struct {
	Term Term
}

func (Structure) TypeName() string { return "Structure" }

// Error is a sentinel installed on a class after a unification failure so that
// further unifications touching the class degrade silently instead of cascading.
type Error struct {
	Reason string
}

func (Error) TypeName() string { return "Error" }

// ErrInfiniteType is the Reason installed by the post-Let occurs check (spec §4.5).
const ErrInfiniteType = "∞" // "∞"
