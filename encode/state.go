package encode

import "github.com/GEO-IASS/gr1c/bdd"

// Side selects which half of the interleaved step-pair a state cube is built
// over.
type Side int

const (
	Current Side = iota
	Next
)

// StateCube converts a length m+n total assignment (state[i] true iff
// variable i holds) into the BDD cube asserting that assignment over the
// chosen side's variables. It is the dual of CubeToState.
func (e *Encoder) StateCube(state []bool, which Side) bdd.Node {
	total := e.Vars.Total()
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	return e.PartialCube(indices, state, which)
}

// PartialCube is StateCube restricted to the given subset of variable
// indices (e.g. Vars.EnvIndices()), used by the extractor to fix only the
// environment or only the system half of a step.
func (e *Encoder) PartialCube(indices []int, values []bool, which Side) bdd.Node {
	lits := make([]bdd.Node, len(indices))
	for k, i := range indices {
		idx := 2 * i
		if which == Next {
			idx++
		}
		if values[k] {
			lits[k] = e.B.Ithvar(idx)
		} else {
			lits[k] = e.B.NIthvar(idx)
		}
	}
	return e.B.And(lits...)
}

// InBDD reports whether the total assignment state (on the given side)
// satisfies n: a cheap point-membership query built by conjoining n with
// state's cube and checking the result is not false.
func (e *Encoder) InBDD(n bdd.Node, state []bool, which Side) bool {
	cube := e.StateCube(state, which)
	test := e.B.And(cube, n)
	return !e.B.Equal(test, e.B.False())
}

// CurrentVars returns the cube over every current-step variable (both
// environment and system), used to quantify away a fully fixed current
// state.
func (e *Encoder) CurrentVars() bdd.Node { return e.B.And(e.envCurrent, e.sysCurrent) }

// CubeToState recovers the total assignment encoded by a minterm cube
// produced by StateCube (or, equivalently, by Allsat on the matching side).
// It reports an error if n does not fully determine every variable on the
// chosen side, i.e. it is not a single minterm.
func (e *Encoder) CubeToState(n bdd.Node, which Side) ([]bool, error) {
	total := e.Vars.Total()
	state := make([]bool, total)
	assigned := make([]bool, total)
	var walkErr error
	count := 0
	err := e.B.Allsat(n, func(prof []int) error {
		count++
		for i := 0; i < total; i++ {
			idx := 2 * i
			if which == Next {
				idx++
			}
			v := prof[idx]
			if v == -1 {
				continue
			}
			state[i] = v == 1
			assigned[i] = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if count != 1 {
		walkErr = errNotASingleState
	} else {
		for _, ok := range assigned {
			if !ok {
				walkErr = errNotASingleState
				break
			}
		}
	}
	if walkErr != nil {
		return nil, walkErr
	}
	return state, nil
}
