package encode_test

import (
	"testing"

	"github.com/GEO-IASS/gr1c/encode"
	"github.com/GEO-IASS/gr1c/formula"
	"github.com/GEO-IASS/gr1c/model"
	"github.com/stretchr/testify/require"
)

func newEncoder(t *testing.T) *encode.Encoder {
	t.Helper()
	vars, err := model.NewVarEnv([]string{"a"}, []string{"x", "y"})
	require.NoError(t, err)
	e, err := encode.New(vars)
	require.NoError(t, err)
	return e
}

func TestCompileIdempotent(t *testing.T) {
	e := newEncoder(t)
	tree := formula.And(formula.Var("a"), formula.Neg(formula.Var("x")))
	n1, err := e.Compile(tree)
	require.NoError(t, err)
	n2, err := e.Compile(tree)
	require.NoError(t, err)
	require.True(t, e.B.Equal(n1, n2))
}

func TestCompileUnknownVariable(t *testing.T) {
	e := newEncoder(t)
	_, err := e.Compile(formula.Var("ghost"))
	require.Error(t, err)
	var specErr *model.SpecificationError
	require.ErrorAs(t, err, &specErr)
}

func TestCompileBadConstant(t *testing.T) {
	e := newEncoder(t)
	_, err := e.Compile(formula.Const(7))
	require.Error(t, err)
}

func TestCompileAndMatchesApply(t *testing.T) {
	e := newEncoder(t)
	a, err := e.Compile(formula.Var("a"))
	require.NoError(t, err)
	x, err := e.Compile(formula.Var("x"))
	require.NoError(t, err)
	want := e.B.And(a, x)
	got, err := e.Compile(formula.And(formula.Var("a"), formula.Var("x")))
	require.NoError(t, err)
	require.True(t, e.B.Equal(want, got))
}

func TestPrimeUnprimeInvolution(t *testing.T) {
	e := newEncoder(t)
	n, err := e.Compile(formula.And(formula.Var("a"), formula.Neg(formula.Var("x"))))
	require.NoError(t, err)
	primed := e.Prime(n)
	require.False(t, e.B.Equal(n, primed))
	back := e.Unprime(primed)
	require.True(t, e.B.Equal(n, back))
}

func TestStateCubeRoundTrip(t *testing.T) {
	e := newEncoder(t)
	state := []bool{true, false, true} // a=1, x=0, y=1
	cube := e.StateCube(state, encode.Current)
	got, err := e.CubeToState(cube, encode.Current)
	require.NoError(t, err)
	require.Equal(t, state, got)
}

func TestExistSysDropsSystemVariables(t *testing.T) {
	e := newEncoder(t)
	next, err := e.Compile(formula.NextVar("x"))
	require.NoError(t, err)
	quantified := e.ExistSys(next)
	require.True(t, e.B.Equal(quantified, e.B.True()))
}
