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

// Env is a typing environment: a mapping from identifier to the LocatedVariable
// it's bound to. Unlike the teacher's TypeEnv, this Env owns no allocator and no
// parent-chain lookup - identifier resolution for anything not already present is
// delegated entirely to the elaborator (spec §6), which populates the initial
// environment with imported schemes before calling Solve.
type Env struct {
	bindings map[string]LocatedVariable
}

// NewEnv returns an empty environment.
func NewEnv() *Env { return &Env{bindings: make(map[string]LocatedVariable)} }

// Clone returns a shallow copy: a Let that introduces new bindings must not mutate
// the environment its caller is still holding a reference to.
func (e *Env) Clone() *Env {
	c := &Env{bindings: make(map[string]LocatedVariable, len(e.bindings))}
	for k, v := range e.bindings {
		c.bindings[k] = v
	}
	return c
}

// Lookup returns the binding for name, if any.
func (e *Env) Lookup(name string) (LocatedVariable, bool) {
	lv, ok := e.bindings[name]
	return lv, ok
}

// Bind installs or overwrites name's binding.
func (e *Env) Bind(name string, lv LocatedVariable) { e.bindings[name] = lv }

// Range calls f for every binding, in no particular order.
func (e *Env) Range(f func(name string, lv LocatedVariable) bool) {
	for k, v := range e.bindings {
		if !f(k, v) {
			return
		}
	}
}
