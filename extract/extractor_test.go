package extract_test

import (
	"testing"

	"github.com/GEO-IASS/gr1c/encode"
	"github.com/GEO-IASS/gr1c/extract"
	"github.com/GEO-IASS/gr1c/fixpoint"
	"github.com/GEO-IASS/gr1c/formula"
	"github.com/GEO-IASS/gr1c/model"
	"github.com/stretchr/testify/require"
)

func compute(t *testing.T, spec *model.Specification, opts ...fixpoint.Option) (*fixpoint.Engine, *fixpoint.Result) {
	t.Helper()
	enc, err := encode.New(spec.Vars)
	require.NoError(t, err)
	eng, err := fixpoint.New(enc, spec, opts...)
	require.NoError(t, err)
	result, err := eng.Compute()
	require.NoError(t, err)
	return eng, result
}

// The single-variable, single-goal specification (spec_full scenario 1):
// sys_init = x, sys_goal = x, no transitions declared (free). The winning
// strategy is a single node, x=1, with a self-loop.
func TestExtractTriviallyRealizable(t *testing.T) {
	vars, err := model.NewVarEnv(nil, []string{"x"})
	require.NoError(t, err)
	spec := &model.Specification{
		Vars:     vars,
		SysInit:  formula.Var("x"),
		SysGoals: []*formula.Node{formula.Var("x")},
	}

	eng, result := compute(t, spec)
	require.True(t, result.Realizable)

	auto, err := extract.Extract(eng, result)
	require.NoError(t, err)
	require.Len(t, auto.Nodes, 1)

	n := auto.Nodes[0]
	require.True(t, n.State.Test(0), "the only reachable state has x=1")
	require.Equal(t, 0, n.Mode)
	require.Equal(t, []int{0}, n.Successors, "x=1 must self-loop")
}

// Two unconstrained system variables p,q rotating between two goals: the
// automaton must have at least two distinct modes reachable and every node
// must have a successor (no dead ends), since env has no variables at all
// and therefore always "moves".
func TestExtractRotation(t *testing.T) {
	vars, err := model.NewVarEnv(nil, []string{"p", "q"})
	require.NoError(t, err)
	spec := &model.Specification{
		Vars:    vars,
		SysInit: formula.And(formula.Neg(formula.Var("p")), formula.Neg(formula.Var("q"))),
		SysGoals: []*formula.Node{
			formula.Var("p"),
			formula.Var("q"),
		},
	}

	eng, result := compute(t, spec)
	require.True(t, result.Realizable)

	auto, err := extract.Extract(eng, result)
	require.NoError(t, err)
	require.NotEmpty(t, auto.Nodes)

	modes := make(map[int]bool)
	for _, n := range auto.Nodes {
		modes[n.Mode] = true
		require.NotEmpty(t, n.Successors, "every node must have an admissible move")
	}
	require.True(t, modes[0])
}

// Every admissible environment move must get its own edge, not just the
// overall rank/lex-best one: here sys_trans mirrors env's move exactly
// (s' <-> e'), so both e'=0 and e'=1 are rank-tied continuations from any
// node, and a real strategy has to answer whichever one the environment
// actually plays.
func TestExtractRespondsToEveryEnvironmentMove(t *testing.T) {
	vars, err := model.NewVarEnv([]string{"e"}, []string{"s"})
	require.NoError(t, err)
	spec := &model.Specification{
		Vars:     vars,
		EnvTrans: formula.True(),
		SysTrans: formula.Iff(formula.NextVar("s"), formula.NextVar("e")),
		SysGoals: []*formula.Node{formula.True()},
	}

	eng, result := compute(t, spec)
	require.True(t, result.Realizable)

	auto, err := extract.Extract(eng, result)
	require.NoError(t, err)
	require.NotEmpty(t, auto.Nodes)

	for _, n := range auto.Nodes {
		require.Len(t, n.Successors, 2,
			"a node with two admissible environment moves must have two edges")
		seenE := make(map[bool]bool)
		for _, succID := range n.Successors {
			seenE[auto.Nodes[succID].State.Test(0)] = true
		}
		require.Len(t, seenE, 2, "one edge must answer e'=0 and the other e'=1")
	}
}

func TestExtractFromUnrealizableResultIsEmpty(t *testing.T) {
	vars, err := model.NewVarEnv([]string{"a"}, []string{"x"})
	require.NoError(t, err)
	spec := &model.Specification{
		Vars:     vars,
		SysInit:  formula.True(),
		EnvTrans: formula.True(),
		SysTrans: formula.Iff(formula.NextVar("x"), formula.Var("a")),
		SysGoals: []*formula.Node{formula.Neg(formula.Var("x"))},
	}

	eng, result := compute(t, spec, fixpoint.Mode(fixpoint.OneSidedSysInit))
	require.False(t, result.Realizable)

	// Extracting from an unrealizable result is a caller error (gr1.Synthesize
	// checks Realizable first); W is empty so no seeds are found and the
	// resulting automaton is simply empty, not an error.
	auto, err := extract.Extract(eng, result)
	require.NoError(t, err)
	require.Empty(t, auto.Nodes)
}
