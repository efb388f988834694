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
	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
)

// CanUnify reports whether v1 and v2 would unify, without retaining any of the
// mutation Unify performs to reach that answer (supplemented feature, SPEC_FULL.md
// §1.3(b)). It is grounded on the teacher's UnifyTxn/Speculate/LinkStash pattern,
// adapted from "stash the old link before overwriting it" to "snapshot the whole
// union-find arena before speculating, restore it unconditionally afterward", since
// this union-find store has no per-Variable link field to stash individually - only
// Store.Snapshot/Restore can undo a Union.
//
// Nothing inside this module calls CanUnify; it is exported for callers that need
// to probe a unification (e.g. an elaborator trying overload candidates) before
// committing to it.
func CanUnify(store *types.Store, hint Hint, rgn region.Region, v1, v2 types.Variable) bool {
	snap := store.Snapshot()
	err := Unify(store, hint, rgn, v1, v2)
	store.Restore(snap)
	return err == nil
}
