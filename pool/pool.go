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

// Package pool implements the rank engine (component C4): the current pool of
// variables introduced at the innermost unfinished let, and the generalize/
// instantiate pair that open and close a let's polymorphism, following Oleg
// Kiselyov's "Efficient Generalization with Levels"
// (http://okmij.org/ftp/ML/generalization.html#levels).
package pool

import "github.com/wdamron/hmcore/types"

// Pool holds every variable registered at one rank: the set of variables introduced
// while solving at the innermost unfinished let. A Pool implements types.Registrar so
// types.Flatten can register directly into whichever pool is current.
type Pool struct {
	rank        types.Rank
	inhabitants []types.Variable
}

// New creates an empty pool at the given rank.
func New(rank types.Rank) *Pool { return &Pool{rank: rank} }

// Rank returns the rank every variable registered with this pool will be assigned.
func (p *Pool) Rank() types.Rank { return p.rank }

// Register adds v to the pool's inhabitants (types.Registrar).
func (p *Pool) Register(v types.Variable) { p.inhabitants = append(p.inhabitants, v) }

// Inhabitants returns every variable ever registered with this pool.
func (p *Pool) Inhabitants() []types.Variable { return p.inhabitants }

// NextRankPool opens a let: returns a fresh pool one rank deeper than p.
func (p *Pool) NextRankPool() *Pool { return New(p.rank + 1) }
