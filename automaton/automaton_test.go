package automaton_test

import (
	"strings"
	"testing"

	"github.com/GEO-IASS/gr1c/automaton"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

func bits(n uint, set ...uint) *bitset.BitSet {
	b := bitset.New(n)
	for _, i := range set {
		b.Set(i)
	}
	return b
}

func TestNewNodeAndFind(t *testing.T) {
	a := &automaton.Automaton{}

	id0 := a.NewNode(bits(2, 0), 0)
	require.Equal(t, 0, id0)

	_, ok := a.Find(bits(2, 0), 0)
	require.True(t, ok)

	// Same state, different mode: distinct node.
	id1 := a.NewNode(bits(2, 0), 1)
	require.NotEqual(t, id0, id1)

	_, ok = a.Find(bits(2, 1), 0)
	require.False(t, ok, "an unrelated state must not be found")
}

func TestFindOnEmptyAutomaton(t *testing.T) {
	a := &automaton.Automaton{}
	_, ok := a.Find(bits(1, 0), 0)
	require.False(t, ok)
}

func TestNewNodeClonesState(t *testing.T) {
	a := &automaton.Automaton{}
	state := bits(2, 0)
	id := a.NewNode(state, 0)

	state.Set(1)
	require.False(t, a.Nodes[id].State.Test(1),
		"NewNode must clone the state, not alias the caller's bitset")
}

func TestAddEdgeDeduplicates(t *testing.T) {
	a := &automaton.Automaton{}
	from := a.NewNode(bits(1, 0), 0)
	to := a.NewNode(bits(1), 0)

	a.AddEdge(from, to)
	a.AddEdge(from, to)

	require.Equal(t, []int{to}, a.Nodes[from].Successors)
}

func TestDumpTextFormat(t *testing.T) {
	a := &automaton.Automaton{}
	from := a.NewNode(bits(1, 0), 0)
	to := a.NewNode(bits(1), 1)
	a.Nodes[from].Rank = 2
	a.AddEdge(from, to)

	var buf strings.Builder
	require.NoError(t, a.DumpText(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "0 ")
	require.Contains(t, lines[0], "-> 1")
}

func TestDumpLabeledFormat(t *testing.T) {
	a := &automaton.Automaton{}
	id := a.NewNode(bits(2, 0), 0)

	var buf strings.Builder
	require.NoError(t, a.DumpLabeled(&buf, []string{"e"}, []string{"s"}))

	out := buf.String()
	require.Contains(t, out, "e:1")
	require.Contains(t, out, "s:0")
	require.Equal(t, id, 0)
}

func TestSortedIDs(t *testing.T) {
	a := &automaton.Automaton{}
	a.NewNode(bits(1, 0), 0)
	a.NewNode(bits(1), 0)
	a.NewNode(bits(1), 1)

	require.Equal(t, []int{0, 1, 2}, a.SortedIDs())
}
