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
	"testing"

	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
)

func TestCanUnifySucceedsWithoutMutating(t *testing.T) {
	store := types.NewStore(8)
	a := store.Fresh(types.NewDescriptor(types.Flex{}, types.OutermostRank))
	intVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))

	if !CanUnify(store, "test", region.None, a, intVar) {
		t.Fatalf("expected a Flex and Int to be speculatively unifiable")
	}
	if store.Equivalent(a, intVar) {
		t.Fatalf("CanUnify must not leave the two classes unioned")
	}
	if _, ok := store.Descriptor(a).Content.(types.Flex); !ok {
		t.Fatalf("expected a's content to remain Flex after speculation")
	}
}

func TestCanUnifyFailsAndLeavesNoTrace(t *testing.T) {
	store := types.NewStore(8)
	lenBefore := store.Len()
	intVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "Int"}}, types.OutermostRank))
	strVar := store.Fresh(types.NewDescriptor(types.Structure{Term: types.App1{Name: "String"}}, types.OutermostRank))

	if CanUnify(store, "test", region.None, intVar, strVar) {
		t.Fatalf("expected Int and String not to be unifiable")
	}
	if store.Equivalent(intVar, strVar) {
		t.Fatalf("a failed speculation must not leave the classes unioned")
	}
	if _, ok := store.Descriptor(intVar).Content.(types.Error); ok {
		t.Fatalf("a failed speculation must not leave an Error sentinel behind")
	}
	if store.Len() != lenBefore+2 {
		t.Fatalf("expected no extra variables to survive the speculation, got Len()=%d", store.Len())
	}
}
