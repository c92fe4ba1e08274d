package model

import "github.com/GEO-IASS/gr1c/formula"

// Specification is the tuple (EVars, SVars, env_init, sys_init, env_trans,
// sys_trans, env_goals, sys_goals) a front end hands the engine. Goal
// formulas must mention only current-step variables; env_trans and
// sys_trans may mention both current- and next-step variables.
//
// A nil formula field means "no constraint of that class declared"; callers
// do not need to pre-rewrite it to the constant 1, package encode compiles a
// nil formula to the constant 1 itself.
type Specification struct {
	Vars *VarEnv

	EnvInit  *formula.Node
	SysInit  *formula.Node
	EnvTrans *formula.Node
	SysTrans *formula.Node

	EnvGoals []*formula.Node // may be empty: treated as a single trivial goal
	SysGoals []*formula.Node // must be non-empty for meaningful synthesis
}

// P is the number of environment goals (0 is allowed).
func (s *Specification) P() int { return len(s.EnvGoals) }

// Q is the number of system goals.
func (s *Specification) Q() int { return len(s.SysGoals) }

// Validate checks the structural requirements §3 and §4.1 impose: every
// variable-kind leaf resolves against Vars, every CONST is 0 or 1, and every
// node has the arity its Kind requires.
func (s *Specification) Validate() error {
	if s.Vars == nil {
		return &SpecificationError{Reason: "specification has no declared variables"}
	}
	for _, tree := range []*formula.Node{s.EnvInit, s.SysInit, s.EnvTrans, s.SysTrans} {
		if err := s.validateTree(tree, false); err != nil {
			return err
		}
	}
	for _, g := range s.EnvGoals {
		if err := s.validateTree(g, true); err != nil {
			return err
		}
	}
	for _, g := range s.SysGoals {
		if err := s.validateTree(g, true); err != nil {
			return err
		}
	}
	return nil
}

// validateTree walks n, resolving every variable leaf against Vars and
// checking each node's arity. When currentOnly is set (goal formulas, per
// §3: "goals are formulas over current-step variables only") a NEXT_VAR leaf
// is rejected.
func (s *Specification) validateTree(n *formula.Node, currentOnly bool) error {
	if n == nil {
		return nil
	}
	var err error
	formula.Traverse(n, func(cur *formula.Node) {
		if err != nil {
			return
		}
		switch cur.Kind {
		case formula.NEXT_VAR:
			if currentOnly {
				err = &SpecificationError{Name: cur.Name, Reason: "goal formulas may only mention current-step variables"}
				return
			}
			if _, ok := s.Vars.Index(cur.Name); !ok {
				err = &SpecificationError{Name: cur.Name, Reason: "unknown variable"}
			}
		case formula.VAR:
			if _, ok := s.Vars.Index(cur.Name); !ok {
				err = &SpecificationError{Name: cur.Name, Reason: "unknown variable"}
			}
		case formula.CONST:
			if cur.Value != 0 && cur.Value != 1 {
				err = &SpecificationError{Reason: "constant must be 0 or 1"}
			}
		case formula.NEG:
			if cur.Left == nil {
				err = &SpecificationError{Reason: "NEG node missing operand"}
			}
		case formula.AND, formula.OR, formula.IMPLIES, formula.IFF:
			if cur.Left == nil || cur.Right == nil {
				err = &SpecificationError{Reason: cur.Kind.String() + " node missing an operand"}
			}
		}
	})
	return err
}
