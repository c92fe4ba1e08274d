package formula_test

import (
	"testing"

	"github.com/GEO-IASS/gr1c/formula"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	n := formula.And(formula.Var("x"), formula.Neg(formula.Var("y")))
	require.Equal(t, 4, formula.Size(n))
	require.Equal(t, 0, formula.Size(nil))
}

func TestTraverseOrder(t *testing.T) {
	n := formula.Or(formula.Var("a"), formula.Var("b"))
	var seen []formula.Kind
	formula.Traverse(n, func(x *formula.Node) { seen = append(seen, x.Kind) })
	require.Equal(t, []formula.Kind{formula.VAR, formula.OR, formula.VAR}, seen)
}

func TestMergeEmptyIsIdentity(t *testing.T) {
	and := formula.Merge(nil, formula.AND)
	require.Equal(t, formula.CONST, and.Kind)
	require.Equal(t, 1, and.Value)

	or := formula.Merge(nil, formula.OR)
	require.Equal(t, formula.CONST, or.Kind)
	require.Equal(t, 0, or.Value)
}

func TestMergeFoldsLeftToRight(t *testing.T) {
	parts := []*formula.Node{formula.Var("a"), formula.Var("b"), formula.Var("c")}
	tree := formula.Merge(parts, formula.AND)
	require.Equal(t, formula.AND, tree.Kind)
	require.Equal(t, formula.AND, tree.Left.Kind)
	require.Equal(t, "c", tree.Right.Name)
	require.Equal(t, "a", tree.Left.Left.Name)
	require.Equal(t, "b", tree.Left.Right.Name)
}

func TestBuilderPushOperator(t *testing.T) {
	var b formula.Builder
	b.PushTerminal(formula.Var("x"))
	b.PushTerminal(formula.Var("y"))
	b.PushOperator(formula.AND)
	b.PushOperator(formula.NEG)
	tree := b.Tree()
	require.Equal(t, formula.NEG, tree.Kind)
	require.Equal(t, formula.AND, tree.Left.Kind)
}

func TestListAppendRemove(t *testing.T) {
	var l formula.List
	l.AppendListItem(formula.Var("a"))
	l.AppendListItem(formula.Var("b"))
	l.RemoveListItem(0)
	items := l.Items()
	require.Len(t, items, 1)
	require.Equal(t, "b", items[0].Name)
}
