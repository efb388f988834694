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

import "github.com/wdamron/hmcore/types"

// occursCheck runs the post-Let occurs check (spec §4.5) over every header variable in
// a Let at once, never mid-unification, matching the source's exception-free,
// accumulate-into-errors policy (spec §9). It reports which of vars have an infinite
// type reachable anywhere within their structure, and installs a
// types.Error(ErrInfiniteType) sentinel on the class that is actually cyclic - never
// on a var that merely reaches a cyclic descendant (e.g. a header g bound to List(h)
// where h alone satisfies h = List(h)): the sentinel belongs on h, or g's legitimate,
// non-cyclic type is destroyed for no reason.
//
// vars must be checked together, in one call, rather than one at a time: the cyclic
// set is computed once up front (types.FindCycles(store, vars)), and every var's
// membership test (types.Reachable(store, v) intersected with that frozen set) runs
// before any sentinel is installed. Checking vars one at a time would let the first
// var's sentinel installation truncate structureSuccessors through the Error cutoff
// before a later var's check runs, making the result - and even whether an error is
// reported at all - depend on the order vars happen to be processed in (e.g. Go's
// randomized map iteration order over a Let's headers). Batching once and freezing
// the cyclic set before any mutation makes the result a pure function of the
// constraint tree, matching the solver's required determinism (spec §5).
func occursCheck(store *types.Store, vars []types.Variable) (infinite map[types.Variable]bool) {
	cyclic := types.FindCycles(store, vars)
	if len(cyclic) == 0 {
		return nil
	}
	cyclicSet := make(map[types.Variable]bool, len(cyclic))
	for _, c := range cyclic {
		cyclicSet[c] = true
	}

	infinite = make(map[types.Variable]bool)
	for _, v := range vars {
		for _, r := range types.Reachable(store, v) {
			if cyclicSet[r] {
				infinite[v] = true
				break
			}
		}
	}

	for _, c := range cyclic {
		store.ModifyDescriptor(c, func(d *types.Descriptor) {
			d.Content = types.Error{Reason: types.ErrInfiniteType}
		})
	}
	return infinite
}
