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

import "github.com/wdamron/hmcore/types"

// MakeInstance produces a fresh copy of the scheme rooted at v: every reachable class
// with rank == types.NoRank is copied to a new variable registered in current, while
// classes at any other rank are shared unchanged (spec §4.4). The descriptor's
// Copy/HasCopy slot memoizes each copy so a quantifier reachable by more than one path
// - including through a cyclic types.RecursiveGroup - is only ever allocated once.
func MakeInstance(store *types.Store, current *Pool, v types.Variable) types.Variable {
	in := &instantiator{store: store, pool: current}
	result := in.copyVar(v)
	for _, touched := range in.touched {
		store.ModifyDescriptor(touched, func(d *types.Descriptor) { d.ClearCopy() })
	}
	return result
}

type instantiator struct {
	store   *types.Store
	pool    *Pool
	touched []types.Variable
}

func (in *instantiator) copyVar(v types.Variable) types.Variable {
	root := in.store.Find(v)
	d := in.store.Descriptor(root)
	if d.Rank != types.NoRank {
		return root
	}
	if d.HasCopy {
		return d.Copy
	}

	// Allocate the fresh variable before recursing into content, so a recursive
	// alias group that loops back to root sees a placeholder instead of looping.
	fresh := in.store.Fresh(types.NewDescriptor(types.Flex{}, in.pool.Rank()))
	in.pool.Register(fresh)
	in.store.ModifyDescriptor(root, func(d *types.Descriptor) { d.Copy, d.HasCopy = fresh, true })
	in.touched = append(in.touched, root)

	content := in.copyContent(d.Content)
	in.store.SetDescriptor(fresh, types.NewDescriptor(content, in.pool.Rank()))
	return fresh
}

func (in *instantiator) copyContent(c types.Content) types.Content {
	switch c := c.(type) {
	case types.Flex:
		return types.Flex{Super: c.Super, Name: c.Name}

	case types.Rigid:
		// A scheme's rigid quantifiers reach NoRank through Generalize with their
		// Rigid content untouched (Generalize only changes ranks), so the copy keeps
		// that content unchanged.
		return c

	case types.Alias:
		args := make([]types.AliasArg, len(c.Args))
		for i, a := range c.Args {
			args[i] = types.AliasArg{Name: a.Name, Var: in.copyVar(a.Var)}
		}
		return types.Alias{
			QualifiedName: c.QualifiedName,
			Args:          args,
			RealVar:       in.copyVar(c.RealVar),
			Group:         c.Group,
		}

	case types.Structure:
		return types.Structure{Term: in.copyTerm(c.Term)}

	case types.Error:
		return c
	}
	panic("pool: unhandled Content variant in MakeInstance")
}

func (in *instantiator) copyTerm(t types.Term) types.Term {
	switch t := t.(type) {
	case types.App1:
		args := make([]types.Variable, len(t.Args))
		for i, a := range t.Args {
			args[i] = in.copyVar(a)
		}
		return types.App1{Name: t.Name, Args: args}

	case types.Fun1:
		return types.Fun1{Arg: in.copyVar(t.Arg), Ret: in.copyVar(t.Ret)}

	case types.EmptyRecord1:
		return t

	case types.Record1:
		b := types.NewRecordMapBuilder()
		t.Fields.Range(func(name string, fv types.Variable) bool {
			b = b.Set(name, in.copyVar(fv))
			return true
		})
		return types.Record1{Fields: b.Build(), Extension: in.copyVar(t.Extension)}
	}
	panic("pool: unhandled Term variant in MakeInstance")
}
