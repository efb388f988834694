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

import (
	"sort"

	"github.com/wdamron/hmcore/types"
)

// Generalize promotes variables in young that belong semantically to old (the
// enclosing pool), and turns the remaining flex variables into quantifiers of the
// scheme being closed, by setting their rank to types.NoRank (spec §4.4).
//
// marks must be the single MarkCounter shared across an entire solve, since nested
// lets each call Generalize and their mark scopes must not collide.
func Generalize(store *types.Store, marks *MarkCounter, old, young *Pool) {
	youngMark := marks.Fresh()

	rankBuckets := map[types.Rank][]types.Variable{}
	for _, v := range young.inhabitants {
		store.ModifyDescriptor(v, func(d *types.Descriptor) { d.Mark = youngMark })
		rank := store.Descriptor(v).Rank
		rankBuckets[rank] = append(rankBuckets[rank], v)
	}

	ranks := make([]types.Rank, 0, len(rankBuckets))
	for r := range rankBuckets {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	visitedMark := marks.Fresh()
	for _, r := range ranks {
		for _, v := range rankBuckets[r] {
			adjustRank(store, youngMark, visitedMark, r, v)
		}
	}

	for _, r := range ranks {
		for _, v := range rankBuckets[r] {
			if store.Redundant(v) {
				continue
			}
			if final := store.Descriptor(v).Rank; final < young.rank {
				old.Register(v)
			} else {
				store.ModifyDescriptor(v, func(d *types.Descriptor) { d.Rank = types.NoRank })
			}
		}
	}
}

// adjustRank lowers v's rank so ranks never increase along reachability, and returns
// the (possibly newly computed) rank for use by a caller walking a parent node.
func adjustRank(store *types.Store, youngMark, visitedMark types.Mark, bucketRank types.Rank, v types.Variable) types.Rank {
	root := store.Find(v)
	d := store.Descriptor(root)
	switch {
	case d.Mark == youngMark:
		d.Mark = visitedMark
		r := adjustContentRank(store, youngMark, visitedMark, bucketRank, d.Content)
		d.Rank = r
		return r
	case d.Mark != visitedMark:
		r := d.Rank
		if bucketRank < r {
			r = bucketRank
		}
		d.Rank = r
		d.Mark = visitedMark
		return r
	default:
		return d.Rank
	}
}

func adjustContentRank(store *types.Store, youngMark, visitedMark types.Mark, bucketRank types.Rank, c types.Content) types.Rank {
	switch c := c.(type) {
	case types.Flex, types.Rigid, types.Error:
		return bucketRank

	case types.Alias:
		max := adjustRank(store, youngMark, visitedMark, bucketRank, c.RealVar)
		for _, a := range c.Args {
			if r := adjustRank(store, youngMark, visitedMark, bucketRank, a.Var); r > max {
				max = r
			}
		}
		return max

	case types.Structure:
		return adjustTermRank(store, youngMark, visitedMark, bucketRank, c.Term)
	}
	return bucketRank
}

func adjustTermRank(store *types.Store, youngMark, visitedMark types.Mark, bucketRank types.Rank, t types.Term) types.Rank {
	switch t := t.(type) {
	case types.App1:
		if len(t.Args) == 0 {
			return bucketRank
		}
		max := adjustRank(store, youngMark, visitedMark, bucketRank, t.Args[0])
		for _, a := range t.Args[1:] {
			if r := adjustRank(store, youngMark, visitedMark, bucketRank, a); r > max {
				max = r
			}
		}
		return max

	case types.Fun1:
		a := adjustRank(store, youngMark, visitedMark, bucketRank, t.Arg)
		r := adjustRank(store, youngMark, visitedMark, bucketRank, t.Ret)
		if a > r {
			return a
		}
		return r

	case types.EmptyRecord1:
		return types.OutermostRank

	case types.Record1:
		max := adjustRank(store, youngMark, visitedMark, bucketRank, t.Extension)
		t.Fields.Range(func(_ string, fv types.Variable) bool {
			if r := adjustRank(store, youngMark, visitedMark, bucketRank, fv); r > max {
				max = r
			}
			return true
		})
		return max
	}
	return bucketRank
}
