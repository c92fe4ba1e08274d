package fixpoint

import (
	"errors"
	"log"

	"github.com/GEO-IASS/gr1c/bdd"
	"github.com/GEO-IASS/gr1c/encode"
	"github.com/GEO-IASS/gr1c/model"
)

// Engine holds the compiled BDDs of a Specification and drives the
// realizability computation described in §4.3.
type Engine struct {
	enc  *encode.Encoder
	spec *model.Specification
	config

	envInit  bdd.Node
	sysInit  bdd.Node
	envTrans bdd.Node
	sysTrans bdd.Node
	envGoals []bdd.Node // length max(1, p): a single "true" goal stands in for p=0
	sysGoals []bdd.Node // length q
}

// New compiles spec's formulas against enc and returns an Engine ready to
// Compute realizability. spec must already satisfy Specification.Validate;
// New re-surfaces any compile-time *model.SpecificationError unchanged.
func New(enc *encode.Encoder, spec *model.Specification, options ...Option) (*Engine, error) {
	if spec.Q() == 0 {
		return nil, &model.SpecificationError{Reason: "at least one system goal is required for synthesis"}
	}
	cfg := makeconfig()
	for _, f := range options {
		f(cfg)
	}
	e := &Engine{enc: enc, spec: spec, config: *cfg}

	var err error
	if e.envInit, err = enc.Compile(spec.EnvInit); err != nil {
		return nil, err
	}
	if e.sysInit, err = enc.Compile(spec.SysInit); err != nil {
		return nil, err
	}
	if e.envTrans, err = enc.Compile(spec.EnvTrans); err != nil {
		return nil, err
	}
	if e.sysTrans, err = enc.Compile(spec.SysTrans); err != nil {
		return nil, err
	}
	if len(spec.EnvGoals) == 0 {
		e.envGoals = []bdd.Node{enc.B.True()}
	} else {
		for _, g := range spec.EnvGoals {
			n, err := enc.Compile(g)
			if err != nil {
				return nil, err
			}
			e.envGoals = append(e.envGoals, n)
		}
	}
	for _, g := range spec.SysGoals {
		n, err := enc.Compile(g)
		if err != nil {
			return nil, err
		}
		e.sysGoals = append(e.sysGoals, n)
	}
	if enc.B.Errored() {
		return nil, &model.EngineError{Op: "compile", Err: errors.New(enc.B.Error())}
	}
	return e, nil
}

// cpreSys computes ∀e'. ( T_e(e,s,e') → ∃s'. ( T_s(e,s,e',s') ∧ X(e',s') ) ),
// the controllable-predecessor operator fixed by §4.3: the environment moves
// first, the system responds having observed that move.
func (e *Engine) cpreSys(x bdd.Node) bdd.Node {
	primedX := e.enc.Prime(x)
	sysCanReach := e.enc.ExistSys(e.enc.B.And(e.sysTrans, primedX))
	return e.enc.ForallEnv(e.enc.B.Imp(e.envTrans, sysCanReach))
}

// Result is the outcome of Compute: the winning set, the per-goal Z vector,
// and the rank tables the extractor needs to choose well-founded,
// progress-making moves.
type Result struct {
	Realizable bool
	W          bdd.Node     // winning set, ⋀_j Z_j
	Z          []bdd.Node   // Z[j], the final approximation for system goal j
	YRanks     [][]bdd.Node // YRanks[j][k]: the k'th iterate of the Y_j fixpoint
}

// Compute runs the nested fixpoint of §4.3 to completion and checks the
// configured initial condition. The only failures it can return are
// *model.EngineError (a BDD-library failure) wrapping the manager's error.
func (e *Engine) Compute() (*Result, error) {
	q := len(e.sysGoals)
	p := len(e.envGoals)
	b := e.enc.B

	z := make([]bdd.Node, q)
	for j := range z {
		z[j] = b.True()
	}

	var yRanks [][]bdd.Node
	outerIter := 0
	for {
		outerIter++
		newZ := make([]bdd.Node, q)
		newRanks := make([][]bdd.Node, q)
		for j := 0; j < q; j++ {
			y := b.False()
			var history []bdd.Node
			innerIter := 0
			for {
				history = append(history, y)
				innerIter++
				// start is the part of the Y_j equation that does not depend
				// on i: either the goal j is met this step and z cycles to
				// the next system goal, or the system is still working
				// towards it along a Y-ranked path.
				start := b.Or(b.And(e.sysGoals[j], e.cpreSys(z[(j+1)%q])), e.cpreSys(y))
				xs := make([]bdd.Node, p)
				for i := 0; i < p; i++ {
					// νX_i. start ∨ (¬J^e_i ∧ cpre_sys(X_i)): the system
					// also wins whenever it can stall forever without ever
					// letting the environment's own justice condition i
					// come true, since an environment that never meets its
					// assumption imposes no obligation on the system.
					x := b.True()
					for {
						next := b.Or(start, b.And(b.Not(e.envGoals[i]), e.cpreSys(x)))
						if b.Equal(next, x) {
							break
						}
						x = next
					}
					xs[i] = x
				}
				newY := b.And(xs...)
				if b.Equal(newY, y) {
					break
				}
				y = newY
			}
			if debugLog {
				log.Printf("fixpoint: goal %d inner fixpoint converged after %d iterations\n", j, innerIter)
			}
			newZ[j] = y
			newRanks[j] = history
		}
		if b.Errored() {
			return nil, &model.EngineError{Op: "fixpoint", Err: errors.New(b.Error())}
		}
		converged := true
		for j := range z {
			if !b.Equal(newZ[j], z[j]) {
				converged = false
				break
			}
		}
		z = newZ
		yRanks = newRanks
		if converged {
			break
		}
		if debugLog {
			log.Printf("fixpoint: outer fixpoint iteration %d\n", outerIter)
		}
	}

	w := b.And(z...)
	realizable, err := e.checkInit(w)
	if err != nil {
		return nil, err
	}
	return &Result{Realizable: realizable, W: w, Z: z, YRanks: yRanks}, nil
}

// Encoder returns the manager backing this Engine, used by package extract
// to walk the winning set after Compute.
func (e *Engine) Encoder() *encode.Encoder { return e.enc }

// EnvInit, SysInit, EnvTrans and SysTrans expose the compiled formulas the
// extractor needs to find initial and successor states.
func (e *Engine) EnvInit() bdd.Node  { return e.envInit }
func (e *Engine) SysInit() bdd.Node  { return e.sysInit }
func (e *Engine) EnvTrans() bdd.Node { return e.envTrans }
func (e *Engine) SysTrans() bdd.Node { return e.sysTrans }

// SysGoals returns the compiled system-goal BDDs, indexed like
// Specification.SysGoals.
func (e *Engine) SysGoals() []bdd.Node { return e.sysGoals }

func (e *Engine) checkInit(w bdd.Node) (bool, error) {
	b := e.enc.B
	switch e.mode {
	case OneSidedSysInit:
		sat := b.And(e.envInit, e.sysInit, w)
		if b.Errored() {
			return false, &model.EngineError{Op: "checkInit", Err: errors.New(b.Error())}
		}
		return !b.Equal(sat, b.False()), nil
	default: // AllEnvExistsSysInit
		exists := e.enc.ExistSysCurrent(b.And(e.sysInit, w))
		holds := e.enc.ForallEnvCurrent(b.Imp(e.envInit, exists))
		if b.Errored() {
			return false, &model.EngineError{Op: "checkInit", Err: errors.New(b.Error())}
		}
		return b.Equal(holds, b.True()), nil
	}
}
