package extract

import (
	"github.com/GEO-IASS/gr1c/automaton"
	"github.com/GEO-IASS/gr1c/bdd"
	"github.com/GEO-IASS/gr1c/encode"
	"github.com/GEO-IASS/gr1c/fixpoint"
	"github.com/bits-and-blooms/bitset"
)

// workItem is a (state, goal-index) pair awaiting expansion, identified by
// its automaton node id once created.
type workItem struct {
	state []bool
	mode  int
	id    int
}

// Extract walks result's winning set to build the automaton, per §4.4. It
// requires result.Realizable; callers must check that first.
func Extract(eng *fixpoint.Engine, result *fixpoint.Result) (*automaton.Automaton, error) {
	enc := eng.Encoder()
	q := len(eng.SysGoals())
	m := enc.Vars.M()
	n := enc.Vars.N()
	total := m + n

	a := &automaton.Automaton{}
	var worklist []workItem

	seeds := seedStates(enc, eng.EnvInit(), eng.SysInit(), result.W, total)
	for _, s := range seeds {
		if _, ok := a.Find(toBitset(s), 0); ok {
			continue
		}
		id := a.NewNode(toBitset(s), 0)
		worklist = append(worklist, workItem{state: s, mode: 0, id: id})
	}

	for len(worklist) > 0 {
		item := worklist[0]
		worklist = worklist[1:]

		goalHolds := enc.InBDD(eng.SysGoals()[item.mode], item.state, encode.Current)
		nextMode := item.mode
		if goalHolds {
			nextMode = (item.mode + 1) % q
		}

		curRank, curOK := rankOf(enc, result.YRanks[item.mode], item.state)
		if curOK {
			a.Nodes[item.id].Rank = curRank
		}

		// A winning strategy must be a total Mealy machine: it has to respond
		// to every environment move the environment could actually make, not
		// just pick one overall best continuation. Rank/lex tie-break within
		// each environment move's own group of admissible system responses.
		// An empty group list means the environment itself has no legal move
		// here, a legitimate dead end.
		groups := successors(enc, eng, item.state, m, n)
		for _, group := range groups {
			var best []bool
			bestRank := -1
			haveBest := false
			for _, succ := range group {
				if !enc.InBDD(result.W, succ, encode.Current) {
					continue
				}
				r, ok := rankOf(enc, result.YRanks[nextMode], succ)
				if !ok {
					continue
				}
				if !goalHolds && r >= curRank {
					continue // must strictly decrease rank when the goal is not yet met
				}
				if !haveBest || r < bestRank || (r == bestRank && lexLess(succ, best)) {
					best = succ
					bestRank = r
					haveBest = true
				}
			}
			if !haveBest {
				return nil, &ExtractError{State: item.state, Mode: item.mode, Goal: item.mode}
			}

			succID, found := a.Find(toBitset(best), nextMode)
			if !found {
				succID = a.NewNode(toBitset(best), nextMode)
				worklist = append(worklist, workItem{state: best, mode: nextMode, id: succID})
			}
			a.AddEdge(item.id, succID)
		}
	}

	return a, nil
}

// seedStates enumerates every total assignment in envInit ∧ sysInit ∧ W,
// expanding don't-care positions into concrete states.
func seedStates(enc *encode.Encoder, envInit, sysInit, w bdd.Node, total int) [][]bool {
	all := enc.B.And(envInit, sysInit, w)
	var states [][]bool
	_ = enc.B.Allsat(all, func(prof []int) error {
		states = append(states, expandProfile(prof, total)...)
		return nil
	})
	return states
}

// expandProfile turns a single Allsat profile (possibly containing -1
// don't-care entries) into every concrete total state it represents.
func expandProfile(prof []int, total int) [][]bool {
	base := make([]bool, total)
	var free []int
	for i := 0; i < total; i++ {
		v := prof[2*i]
		if v == -1 {
			free = append(free, i)
		} else {
			base[i] = v == 1
		}
	}
	results := [][]bool{append([]bool(nil), base...)}
	for _, idx := range free {
		var next [][]bool
		for _, s := range results {
			off := append([]bool(nil), s...)
			off[idx] = false
			on := append([]bool(nil), s...)
			on[idx] = true
			next = append(next, off, on)
		}
		results = next
	}
	return results
}

// successors enumerates every (e', s') reachable from state in one step,
// grouped by the environment half e' of the move: one group per
// environment move allowed by env_trans, each holding every system move
// allowed by sys_trans in response to it. §4.4 step 4 requires a response
// to every admissible environment move, so the caller must pick one best
// successor per group rather than one best successor overall.
func successors(enc *encode.Encoder, eng *fixpoint.Engine, state []bool, m, n int) [][][]bool {
	var groups [][][]bool
	envIdx := enc.Vars.EnvIndices()
	sysIdx := enc.Vars.SysIndices()
	for envBits := 0; envBits < (1 << uint(m)); envBits++ {
		eNext := bitsToBools(envBits, m)
		cubeS := enc.StateCube(state, encode.Current)
		cubeE := enc.PartialCube(envIdx, eNext, encode.Next)
		envOK := !enc.B.Equal(enc.B.And(cubeS, cubeE, eng.EnvTrans()), enc.B.False())
		if !envOK {
			continue
		}
		var group [][]bool
		for sysBits := 0; sysBits < (1 << uint(n)); sysBits++ {
			sNext := bitsToBools(sysBits, n)
			cubeSN := enc.PartialCube(sysIdx, sNext, encode.Next)
			sysOK := !enc.B.Equal(enc.B.And(cubeS, cubeE, cubeSN, eng.SysTrans()), enc.B.False())
			if !sysOK {
				continue
			}
			group = append(group, concat(eNext, sNext))
		}
		groups = append(groups, group)
	}
	return groups
}

// rankOf returns the smallest index k such that state belongs to history[k],
// the rank the extractor uses to ensure well-founded progress.
func rankOf(enc *encode.Encoder, history []bdd.Node, state []bool) (int, bool) {
	for k, y := range history {
		if enc.InBDD(y, state, encode.Current) {
			return k, true
		}
	}
	return 0, false
}

func bitsToBools(bits, width int) []bool {
	res := make([]bool, width)
	for i := 0; i < width; i++ {
		res[i] = bits&(1<<uint(i)) != 0
	}
	return res
}

func concat(a, b []bool) []bool {
	res := make([]bool, 0, len(a)+len(b))
	res = append(res, a...)
	res = append(res, b...)
	return res
}

func lexLess(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return !a[i] // false(0) < true(1)
		}
	}
	return false
}

func toBitset(state []bool) *bitset.BitSet {
	bs := bitset.New(uint(len(state)))
	for i, v := range state {
		if v {
			bs.Set(uint(i))
		}
	}
	return bs
}
