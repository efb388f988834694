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

// Package solve implements the constraint solver (component C5): the single
// entangled mutable state - union-find store, current pool, environment, error list,
// and mark counter - that the rest of the core's components mutate only through it
// (spec §5).
package solve

import (
	"context"
	"sort"

	"github.com/wdamron/hmcore/pool"
	"github.com/wdamron/hmcore/region"
	"github.com/wdamron/hmcore/types"
	"github.com/wdamron/hmcore/unify"
)

// Trace, if non-nil, is called once for each Equal constraint, as
// ("unify", hint, v1, v2) just before its two flattened variables are unified. Let
// entry and exit, Instance unifications and occurs-check hits are not traced. It is
// never called on the hot path inside
// Unify/Generalize/Instantiate themselves - only from the constraint walk in this
// package - so wiring a logger here does not touch allocation-sensitive code.
type Trace func(step string, v ...any)

// Option configures a State at construction.
type Option func(*State)

// WithInitialCapacity pre-sizes the union-find arena, avoiding reallocation for
// workloads whose variable count is roughly known up front.
func WithInitialCapacity(n int) Option {
	return func(s *State) { s.store = types.NewStore(n) }
}

// WithTrace installs a trace hook.
func WithTrace(t Trace) Option {
	return func(s *State) { s.trace = t }
}

// State is everything a solve call threads through: the union-find store, the
// current pool, the typing environment, the accumulated error list, and the mark
// counter (spec §4.5).
type State struct {
	store *types.Store
	pool  *pool.Pool
	env   *Env

	// SavedEnv is the environment snapshot taken on SaveEnv, exposed to consumers
	// that want a typed environment snapshot (spec §6's outward interface).
	SavedEnv *Env

	errors []LocatedError
	fatal  bool
	marks  *pool.MarkCounter
	trace  Trace
}

// NewSolver creates a State with an empty environment and the initial pool at
// types.OutermostRank, applying opts (functional-options constructor, mirroring the
// teacher's TypeEnv/InferenceContext construction pattern).
func NewSolver(opts ...Option) *State {
	s := &State{
		store: types.NewStore(64),
		env:   NewEnv(),
		marks: pool.NewMarkCounter(),
	}
	s.pool = pool.New(types.OutermostRank)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Env exposes the live typing environment so a caller can populate it with imported
// schemes before calling Solve (spec §6: identifier resolution for anything already
// bound is delegated to the caller).
func (s *State) Env() *Env { return s.env }

// Store exposes the union-find arena backing this solve, for callers that need to
// call types.Flatten or types.ToSrcType directly (e.g. to build a constraint's
// types.Surface inputs, or to render State.SavedEnv's bindings).
func (s *State) Store() *types.Store { return s.store }

// Register implements types.Registrar by delegating to the current pool.
func (s *State) Register(v types.Variable) { s.pool.Register(v) }

// Rank implements types.Registrar by delegating to the current pool.
func (s *State) Rank() types.Rank { return s.pool.Rank() }

func (s *State) trc(step string, v ...any) {
	if s.trace != nil {
		s.trace(step, v...)
	}
}

// Solve is the single entry point (spec §6): it runs actuallySolve on s, whose initial
// pool at types.OutermostRank was created by NewSolver, and returns either the final
// state or the accumulated errors.
func Solve(ctx context.Context, s *State, c Constraint) (*State, []LocatedError) {
	s.actuallySolve(ctx, c)
	if len(s.errors) != 0 {
		return nil, s.errors
	}
	return s, nil
}

func (s *State) actuallySolve(ctx context.Context, c Constraint) {
	switch c := c.(type) {
	case True:
		return

	case SaveEnv:
		s.SavedEnv = s.env.Clone()

	case Equal:
		v1 := types.Flatten(s.store, s, c.Term1)
		v2 := types.Flatten(s.store, s, c.Term2)
		s.trc("unify", c.Hint, v1, v2)
		if err := unify.Unify(s.store, c.Hint, c.Region, v1, v2); err != nil {
			s.appendError(err)
		}

	case And:
		for _, sub := range c.Constraints {
			if err := ctx.Err(); err != nil || s.fatal {
				return
			}
			s.actuallySolve(ctx, sub)
		}

	case Let:
		s.solveLet(ctx, c)

	case Instance:
		s.solveInstance(ctx, c)
	}
}

func (s *State) solveInstance(ctx context.Context, c Instance) {
	var instanceVar types.Variable
	if lv, ok := s.env.Lookup(c.Name); ok {
		instanceVar = pool.MakeInstance(s.store, s.pool, lv.Var)
	} else {
		// Every name missing from the environment is treated as a kernel identifier
		// (a foreign primitive the elaborator never registered a scheme for) and gets
		// a fresh, unconstrained variable; an unbound name is never reported as an error.
		instanceVar = s.store.Fresh(types.NewDescriptor(types.Flex{}, s.pool.Rank()))
		s.pool.Register(instanceVar)
	}
	v := types.Flatten(s.store, s, c.Term)
	if err := unify.Unify(s.store, unify.InstanceHint(c.Name), c.Region, instanceVar, v); err != nil {
		s.appendError(err)
	}
}

func (s *State) solveLet(ctx context.Context, l Let) {
	savedEnv := s.env
	s.env = s.env.Clone()

	// Monomorphic shortcut (spec §4.5): a single scheme with no quantifiers and a
	// True body just solves the scheme's constraint in place.
	if len(l.Schemes) == 1 && len(l.Schemes[0].RigidQuantifiers) == 0 && len(l.Schemes[0].FlexQuantifiers) == 0 {
		if _, isTrue := l.Body.(True); isTrue {
			s.actuallySolve(ctx, l.Schemes[0].Constraint)
			s.env = savedEnv
			return
		}
	}

	headers := make([]map[string]LocatedVariable, len(l.Schemes))
	for i, scheme := range l.Schemes {
		if err := ctx.Err(); err != nil || s.fatal {
			s.env = savedEnv
			return
		}
		headers[i] = s.solveScheme(ctx, scheme)
		for name, lv := range headers[i] {
			s.env.Bind(name, lv)
		}
	}

	if !s.fatal {
		s.actuallySolve(ctx, l.Body)
	}

	// Every header across every Scheme in this Let is flattened into one list, sorted
	// by name, and checked by a single occursCheck call: occurs.go's cyclic scan must
	// see the whole batch before any sentinel is installed, or which headers end up
	// reported depends on the order they're processed in - including Go's randomized
	// map iteration order over each header. See occursCheck's doc comment.
	type namedHeader struct {
		name string
		lv   LocatedVariable
	}
	var named []namedHeader
	for _, header := range headers {
		for name, lv := range header {
			named = append(named, namedHeader{name, lv})
		}
	}
	sort.Slice(named, func(i, j int) bool { return named[i].name < named[j].name })

	vars := make([]types.Variable, len(named))
	for i, h := range named {
		vars[i] = h.lv.Var
	}
	infinite := occursCheck(s.store, vars)
	for _, h := range named {
		if infinite[h.lv.Var] {
			s.appendError(&InfiniteType{
				Name:     h.name,
				Region:   h.lv.Region,
				Rendered: types.ToSrcType(s.store, h.lv.Var).String(),
			})
		}
	}

	s.env = savedEnv
}

// solveScheme runs one Scheme's constraint to produce its header (spec §4.5).
func (s *State) solveScheme(ctx context.Context, scheme Scheme) map[string]LocatedVariable {
	if len(scheme.RigidQuantifiers) == 0 && len(scheme.FlexQuantifiers) == 0 {
		s.actuallySolve(ctx, scheme.Constraint)
		return scheme.Header
	}

	oldPool := s.pool
	young := oldPool.NextRankPool()
	s.pool = young

	// Quantifiers are pre-allocated by the caller (often at an outer rank, e.g.
	// the rank in force when the Scheme literal was built) and only handed to the
	// solver here, so - unlike a freshly Flatten-ed variable - they need their
	// descriptor's rank raised to young's before registration makes that stick.
	for _, v := range scheme.RigidQuantifiers {
		s.store.ModifyDescriptor(v, func(d *types.Descriptor) { d.Rank = young.Rank() })
		young.Register(v)
	}
	for _, v := range scheme.FlexQuantifiers {
		s.store.ModifyDescriptor(v, func(d *types.Descriptor) { d.Rank = young.Rank() })
		young.Register(v)
	}

	s.actuallySolve(ctx, scheme.Constraint)

	s.pool = oldPool
	pool.Generalize(s.store, s.marks, oldPool, young)

	for _, v := range scheme.RigidQuantifiers {
		if rank := s.store.Descriptor(v).Rank; rank != types.NoRank {
			s.appendError(&InternalInvariant{
				Region: region.None,
				Detail: "generalization left a rigid quantifier outside NO_RANK",
			})
		}
	}

	return scheme.Header
}

func (s *State) appendError(err error) {
	if le, ok := err.(LocatedError); ok {
		s.errors = append(s.errors, le)
	} else {
		s.errors = append(s.errors, &InternalInvariant{Region: region.None, Detail: err.Error()})
	}
	if _, fatal := err.(*InternalInvariant); fatal {
		s.fatal = true
	}
}
