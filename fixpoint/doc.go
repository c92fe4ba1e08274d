// Package fixpoint implements the GR(1) realizability computation: the
// outer greatest fixpoint over the system-goal vector Z, a middle least
// fixpoint Y_j for each system goal j, and inside it one greatest fixpoint
// per environment goal, all built on the controllable-predecessor operator
// cpre_sys. It produces the winning set W
// together with the per-iteration rank tables the strategy extractor walks.
package fixpoint
