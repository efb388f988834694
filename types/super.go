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

// SuperKind restricts a Flex or Rigid variable to a fixed, closed family of structures.
// This is deliberately a much narrower mechanism than the teacher's Kind/Refine pair:
// there is no Refine callback and no MoveKind/instance-dispatch machinery, since
// ad-hoc polymorphism and subtyping are out of scope here. A SuperKind only ever
// answers "does this Structure satisfy me", never "which instance implements me".
type SuperKind struct {
	Name string
	// satisfies reports whether a concrete Structure's Term meets this constraint.
	// Unlike the teacher's Refine, it never mutates anything: Unify is solely
	// responsible for installing the result (success, or an Error content) onto
	// the merged class.
	satisfies func(t Term) bool
}

// Well-known super-kinds (spec §4.3 invariant 4). Each is a package-level singleton
// since the set is closed; callers compare by pointer identity via Store.Descriptor.
var (
	Number     = &SuperKind{Name: "number", satisfies: satisfiesNumber}
	Comparable = &SuperKind{Name: "comparable", satisfies: satisfiesComparable}
	Appendable = &SuperKind{Name: "appendable", satisfies: satisfiesAppendable}
	CompAppend = &SuperKind{Name: "compappend", satisfies: satisfiesCompAppend}
)

func satisfiesNumber(t Term) bool {
	app, ok := t.(App1)
	if !ok {
		return false
	}
	switch app.Name {
	case "Int", "Float":
		return len(app.Args) == 0
	}
	return false
}

func satisfiesComparable(t Term) bool {
	app, ok := t.(App1)
	if !ok {
		return false
	}
	switch app.Name {
	case "Int", "Float", "Char", "String":
		return len(app.Args) == 0
	case "List":
		// Only the head is checked: List of anything is accepted, and Unify does not
		// constrain the element.
		return len(app.Args) == 1
	case "Tuple":
		// Any Tuple is accepted; its components are not checked for comparability.
		return true
	}
	return false
}

func satisfiesAppendable(t Term) bool {
	app, ok := t.(App1)
	if !ok {
		return false
	}
	switch app.Name {
	case "String":
		return len(app.Args) == 0
	case "List":
		return len(app.Args) == 1
	}
	return false
}

func satisfiesCompAppend(t Term) bool {
	app, ok := t.(App1)
	if !ok {
		return false
	}
	switch app.Name {
	case "String":
		return len(app.Args) == 0
	case "List":
		// Any List is accepted; its element is not checked for comparability.
		return len(app.Args) == 1
	}
	return false
}

// Satisfies reports whether term meets the constraint named by k.
func (k *SuperKind) Satisfies(t Term) bool { return k.satisfies(t) }

// Merge combines two super-kind constraints found on either side of a variable-variable
// unification (spec §4.3.3: "merge the super-kind constraint"). Identical constraints
// merge to themselves; compappend is the meet of comparable and appendable since every
// compappend-satisfying term also satisfies both. Any other combination is irreconcilable
// and Merge reports ok=false so the caller can raise BadKind.
func (k *SuperKind) Merge(other *SuperKind) (merged *SuperKind, ok bool) {
	switch {
	case other == nil:
		return k, true
	case k == other:
		return k, true
	case k == CompAppend && (other == Comparable || other == Appendable):
		return CompAppend, true
	case other == CompAppend && (k == Comparable || k == Appendable):
		return CompAppend, true
	case (k == Comparable && other == Appendable) || (k == Appendable && other == Comparable):
		return CompAppend, true
	}
	return nil, false
}
