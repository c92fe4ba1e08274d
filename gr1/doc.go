// Package gr1 is the integration point an external front end calls: it
// wires the formula model, BDD encoder, fixpoint engine, strategy extractor
// and automaton representation together behind two operations, Realizable
// and Synthesize, matching the data flow Formula model -> BDD encoder ->
// Fixpoint engine -> (if realizable) Strategy extractor -> Automaton.
package gr1
