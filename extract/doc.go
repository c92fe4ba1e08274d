// Package extract walks a realizable fixpoint.Result's winning set to build
// an automaton.Automaton: a worklist algorithm seeds initial (state, goal
// index) pairs and, for every environment move, picks a system response
// that stays in the winning set and makes well-founded progress toward the
// current system goal.
package extract
