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

// hmcore is a Hindley-Milner type-inference core with extensible records, built
// around a classic union-find substitution graph rather than mutable link chains.
//
// The type-system extends Hindley-Milner with Daan Leijen's extensible records with
// scoped labels, and generalizes let-bindings using Oleg Kiselyov's rank/level
// scheme, which avoids a full-graph walk on every let by tracking, per pool, exactly
// the variables introduced since the enclosing one.
//
// The core is deliberately narrow: it has no parser, no elaborator, and no notion of
// a surface language. Callers translate their own expression trees into Constraint
// values (see package solve) and get back either a solved State or a list of located
// errors.
//
// Packages:
//
//   * types - the union-find substitution graph (variables, descriptors, content,
//     terms, records) and its presentation-layer renderer.
//   * pool  - the rank engine: pools, generalization, and scheme instantiation.
//   * unify - the unifier, the only writer allowed to merge two equivalence classes.
//   * solve - the constraint solver that orchestrates the above three into a single
//     entry point, Solve.
//
// Links:
//
// Extensible Records with Scoped Labels (Leijen, 2005): https://www.microsoft.com/en-us/research/publication/extensible-records-with-scoped-labels/
//
// Efficient Generalization with Levels (Oleg Kiselyov): http://okmij.org/ftp/ML/generalization.html#levels
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
package hmcore
