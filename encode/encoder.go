package encode

import (
	"github.com/GEO-IASS/gr1c/bdd"
	"github.com/GEO-IASS/gr1c/formula"
	"github.com/GEO-IASS/gr1c/model"
)

// Encoder owns a BDD manager sized for vars and the prime/unprime renaming
// built from its interleaved layout: variable idx (0-based, environment
// before system) occupies BDD variables 2*idx (current) and 2*idx+1 (next).
type Encoder struct {
	B    *bdd.BDD
	Vars *model.VarEnv

	primeRep   bdd.Replacer
	unprimeRep bdd.Replacer

	envPrimed bdd.Node // cube over all primed environment variables
	sysPrimed bdd.Node // cube over all primed system variables

	envCurrent bdd.Node // cube over all current-step environment variables
	sysCurrent bdd.Node // cube over all current-step system variables
}

// New allocates a manager with 2*vars.Total() BDD variables and builds the
// priming and quantification cubes the rest of the engine needs. options are
// forwarded to bdd.New, following the AMBIENT STACK's functional-options
// convention.
func New(vars *model.VarEnv, options ...bdd.Option) (*Encoder, error) {
	total := vars.Total()
	b, err := bdd.New(2*total, options...)
	if err != nil {
		return nil, err
	}
	old := make([]int, 0, 2*total)
	new_ := make([]int, 0, 2*total)
	for i := 0; i < total; i++ {
		old = append(old, 2*i, 2*i+1)
		new_ = append(new_, 2*i+1, 2*i)
	}
	primeRep, err := b.NewReplacer(old, new_)
	if err != nil {
		return nil, err
	}
	unprimeRep, err := b.NewReplacer(new_, old)
	if err != nil {
		return nil, err
	}
	e := &Encoder{B: b, Vars: vars, primeRep: primeRep, unprimeRep: unprimeRep}
	e.envPrimed = e.cubeOf(vars.EnvIndices(), true)
	e.sysPrimed = e.cubeOf(vars.SysIndices(), true)
	e.envCurrent = e.cubeOf(vars.EnvIndices(), false)
	e.sysCurrent = e.cubeOf(vars.SysIndices(), false)
	return e, nil
}

func (e *Encoder) cubeOf(indices []int, primed bool) bdd.Node {
	bddvars := make([]int, len(indices))
	for k, idx := range indices {
		bddvars[k] = 2 * idx
		if primed {
			bddvars[k]++
		}
	}
	return e.B.Makeset(bddvars)
}

// Compile translates tree into a BDD, per §4.2's rules. An unknown variable
// name or an out-of-range constant is a *model.SpecificationError; nil is
// treated as the constant 1 (the empty-formula rewrite of §4.1).
func (e *Encoder) Compile(tree *formula.Node) (bdd.Node, error) {
	if tree == nil {
		return e.B.True(), nil
	}
	switch tree.Kind {
	case formula.CONST:
		if tree.Value != 0 && tree.Value != 1 {
			return nil, &model.SpecificationError{Reason: "constant must be 0 or 1"}
		}
		return e.B.From(tree.Value == 1), nil
	case formula.VAR:
		idx, ok := e.Vars.Index(tree.Name)
		if !ok {
			return nil, &model.SpecificationError{Name: tree.Name, Reason: "unknown variable"}
		}
		return e.B.Ithvar(2 * idx), nil
	case formula.NEXT_VAR:
		idx, ok := e.Vars.Index(tree.Name)
		if !ok {
			return nil, &model.SpecificationError{Name: tree.Name, Reason: "unknown variable"}
		}
		return e.B.Ithvar(2*idx + 1), nil
	case formula.NEG:
		l, err := e.Compile(tree.Left)
		if err != nil {
			return nil, err
		}
		return e.B.Not(l), nil
	case formula.AND, formula.OR, formula.IMPLIES, formula.IFF:
		l, err := e.Compile(tree.Left)
		if err != nil {
			return nil, err
		}
		r, err := e.Compile(tree.Right)
		if err != nil {
			return nil, err
		}
		switch tree.Kind {
		case formula.AND:
			return e.B.And(l, r), nil
		case formula.OR:
			return e.B.Or(l, r), nil
		case formula.IMPLIES:
			return e.B.Imp(l, r), nil
		default:
			return e.B.Equiv(l, r), nil
		}
	default:
		return nil, &model.SpecificationError{Reason: "unrecognized formula kind"}
	}
}

// Prime swaps every current-step variable 2k for its next-step partner
// 2k+1.
func (e *Encoder) Prime(n bdd.Node) bdd.Node { return e.B.Replace(n, e.primeRep) }

// Unprime is Prime's inverse: it swaps every 2k+1 back to 2k.
func (e *Encoder) Unprime(n bdd.Node) bdd.Node { return e.B.Replace(n, e.unprimeRep) }

// ExistEnv existentially quantifies n over every primed environment
// variable.
func (e *Encoder) ExistEnv(n bdd.Node) bdd.Node { return e.B.Exist(n, e.envPrimed) }

// ExistSys existentially quantifies n over every primed system variable.
func (e *Encoder) ExistSys(n bdd.Node) bdd.Node { return e.B.Exist(n, e.sysPrimed) }

// ForallEnv universally quantifies n over every primed environment
// variable.
func (e *Encoder) ForallEnv(n bdd.Node) bdd.Node { return e.B.Forall(n, e.envPrimed) }

// ExistSysCurrent existentially quantifies n over every current-step system
// variable, used when checking the ALL_ENV_EXISTS_SYS_INIT initial
// condition (§4.3), which ranges over current-step rather than primed
// variables.
func (e *Encoder) ExistSysCurrent(n bdd.Node) bdd.Node { return e.B.Exist(n, e.sysCurrent) }

// ForallEnvCurrent universally quantifies n over every current-step
// environment variable, the other half of the ALL_ENV_EXISTS_SYS_INIT check.
func (e *Encoder) ForallEnvCurrent(n bdd.Node) bdd.Node { return e.B.Forall(n, e.envCurrent) }
