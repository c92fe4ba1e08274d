// Package formula models propositional formulas over current- and next-step
// boolean variables as a small binary tree, following the tagged-variant
// style used throughout this module (see package bdd for the companion
// convention on the BDD side). A formula.Node is built by a parser
// (out of scope here), walked by package encode, and is otherwise inert.
package formula
