package automaton

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Node is one vertex of the automaton: a state assignment over the m+n
// declared variables, the system-goal index currently being pursued, the
// rank it entered the winning set at, and its successors.
type Node struct {
	ID         int
	State      *bitset.BitSet
	Mode       int
	Rank       int
	Successors []int // ordered, duplicate-free node ids
}

// Automaton is a flat, caller-owned collection of Nodes. The zero value is
// ready to use.
type Automaton struct {
	Nodes []*Node
	index map[string]int // stateKey(state)+mode -> node id
}

func stateKey(state *bitset.BitSet, mode int) string {
	return fmt.Sprintf("%s|%d", state.DumpAsBits(), mode)
}

// NewNode creates a node for (state, mode) and returns its id. Callers
// should use Find first if they want at-most-one node per (state, mode);
// NewNode always allocates.
func (a *Automaton) NewNode(state *bitset.BitSet, mode int) int {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	id := len(a.Nodes)
	n := &Node{ID: id, State: state.Clone(), Mode: mode}
	a.Nodes = append(a.Nodes, n)
	a.index[stateKey(n.State, mode)] = id
	return id
}

// Find returns the id of the node for (state, mode), if one has already been
// created.
func (a *Automaton) Find(state *bitset.BitSet, mode int) (int, bool) {
	if a.index == nil {
		return 0, false
	}
	id, ok := a.index[stateKey(state, mode)]
	return id, ok
}

// AddEdge records an ordered edge from -> to, suppressing a duplicate if the
// edge already exists.
func (a *Automaton) AddEdge(from, to int) {
	n := a.Nodes[from]
	for _, s := range n.Successors {
		if s == to {
			return
		}
	}
	n.Successors = append(n.Successors, to)
}

// DumpText writes one line per node: "id state_bits mode rank -> succ_ids",
// matching the txt output format.
func (a *Automaton) DumpText(w io.Writer) error {
	for _, n := range a.Nodes {
		succ := make([]string, len(n.Successors))
		for i, s := range n.Successors {
			succ[i] = fmt.Sprintf("%d", s)
		}
		_, err := fmt.Fprintf(w, "%d %s %d %d -> %s\n",
			n.ID, n.State.DumpAsBits(), n.Mode, n.Rank, strings.Join(succ, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

// DumpLabeled writes one line per node with the state expanded as name:0/1
// pairs, environment variables first, matching the tulip output format.
func (a *Automaton) DumpLabeled(w io.Writer, evars, svars []string) error {
	names := append(append([]string(nil), evars...), svars...)
	for _, n := range a.Nodes {
		pairs := make([]string, len(names))
		for i, name := range names {
			bit := 0
			if n.State.Test(uint(i)) {
				bit = 1
			}
			pairs[i] = fmt.Sprintf("%s:%d", name, bit)
		}
		succ := make([]string, len(n.Successors))
		for i, s := range n.Successors {
			succ[i] = fmt.Sprintf("%d", s)
		}
		_, err := fmt.Fprintf(w, "%d %s %d %d -> %s\n",
			n.ID, strings.Join(pairs, " "), n.Mode, n.Rank, strings.Join(succ, ","))
		if err != nil {
			return err
		}
	}
	return nil
}

// SortedIDs returns every node id in ascending order, a convenience for
// deterministic iteration (map-free: Nodes is already a slice, but callers
// that built ids out of order can use this to normalize).
func (a *Automaton) SortedIDs() []int {
	ids := make([]int, len(a.Nodes))
	for i := range a.Nodes {
		ids[i] = i
	}
	sort.Ints(ids)
	return ids
}
