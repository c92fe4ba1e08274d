// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (BDD), a data structure used to efficiently represent Boolean
functions over a fixed set of variables or, equivalently, sets of Boolean
vectors with a fixed size.

This package is the symbolic substrate used by the rest of this module to
encode and manipulate the state spaces of a GR(1) game: every current/next
pair of game variables is allocated two adjacent BDD levels, and the fixpoint
and strategy-extraction layers operate exclusively on the Node handles
returned from here.

Basics

Each BDD manager has a fixed number of variables, Varnum, declared when it is
initialized (using the method New) and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. A manager
supports the creation of multiple independent BDDs over the same set of
levels.

Most operations return a Node: a reference to a vertex in the shared BDD
together with its low (false) and high (true) branches. The constant
functions True and False are always present at levels Varnum (so that they
sort after every real variable) and are addressed internally by the reserved
node ids 1 and 0.

Automatic memory management

The manager is written in pure Go. It keeps an internal reference count on
every node and piggybacks on the Go runtime's garbage collector: whenever a
Node returned to the caller becomes unreachable, a finalizer decrements the
node's internal reference count, and the manager reclaims unreferenced nodes
the next time it needs room in the node table. Callers therefore do not call
an explicit "free" function; releasing a Node is done simply by letting its
last Go reference go out of scope. Long-lived engine code (the fixpoint and
extraction layers) that wants a deterministic release point can instead call
runtime.KeepAlive explicitly or simply stop referencing a Node.
*/
package bdd
