// Package encode compiles formula.Node trees into bdd.Node values over the
// interleaved current/next-step variable ordering fixed by a model.VarEnv,
// and provides the quantification and priming primitives the fixpoint
// engine builds on: state_to_cube, prime/unprime, and existential/universal
// abstraction over the environment or system halves of the primed space.
package encode
