// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"log"
	"runtime"
)

// node is one vertex of the shared BDD. The two constants occupy slots 0
// (False) and 1 (True) and are never collected.
type node struct {
	level  int32 // order of the variable in the manager, or varnum for a constant
	low    int   // index of the false branch, or -1 if this slot is free
	high   int   // index of the true branch, or the next free slot if low == -1
	refcou int32 // number of live external (Go-reachable) references
}

// uniqueKey is the (level, low, high) triplet used to keep the "one node per
// distinct function" invariant of a reduced BDD.
type uniqueKey struct {
	level     int32
	low, high int
}

// gcstat accumulates bookkeeping about garbage collection, exposed by Stats.
type gcstat struct {
	collections int
	finalized   int
}

// BDD is a single BDD manager: a shared node table together with every Node
// ever produced from it. Two managers never share nodes; Node values from one
// must not be passed to another.
type BDD struct {
	nodes    []node
	unique   map[uniqueKey]int
	freepos  int
	freenum  int
	produced int
	varnum   int32
	varset   [][2]int // varset[i] == {positive literal, negative literal}
	refstack []int    // nodes under construction, protected from GC
	error    error
	configs
	gcstat
	opcache
}

// bddzero and bddone are the canonical constant node ids shared by every
// operation in this package.
const bddzero = 0
const bddone = 1

// New returns a fresh manager with varnum variables, numbered 0..varnum-1.
// Configuration options such as Nodesize or Cachesize can tune the initial
// table sizes; see the corresponding functions.
func New(varnum int, options ...Option) (*BDD, error) {
	if varnum < 1 {
		return nil, errBadVar
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	b := &BDD{}
	b.configs = *config
	b.varnum = int32(varnum)
	b.nodes = make([]node, config.nodesize)
	b.unique = make(map[uniqueKey]int, config.nodesize)
	b.opcache = newOpcache(config.cachesize)
	// constants: level == varnum so they always sort after every variable
	b.nodes[bddzero] = node{level: b.varnum, low: -1, high: -1, refcou: _MAXREFCOUNT}
	b.nodes[bddone] = node{level: b.varnum, low: -1, high: -1, refcou: _MAXREFCOUNT}
	for n := 2; n < len(b.nodes); n++ {
		b.nodes[n].low = -1
		b.nodes[n].high = n + 1
	}
	if len(b.nodes) > 2 {
		b.nodes[len(b.nodes)-1].high = 0
		b.freepos = 2
		b.freenum = len(b.nodes) - 2
	}
	b.refstack = make([]int, 0, 2*varnum+4)
	b.varset = make([][2]int, varnum)
	for i := 0; i < varnum; i++ {
		pos, err := b.makenode(int32(i), bddzero, bddone)
		if err != nil {
			return nil, err
		}
		b.pushref(pos)
		neg, err := b.makenode(int32(i), bddone, bddzero)
		if err != nil {
			return nil, err
		}
		b.popref(1)
		b.varset[i] = [2]int{pos, neg}
		b.nodes[pos].refcou = _MAXREFCOUNT
		b.nodes[neg].refcou = _MAXREFCOUNT
	}
	if _LOGLEVEL > 0 {
		log.Printf("bdd: new manager with %d variables\n", varnum)
	}
	return b, nil
}

// Varnum returns the number of declared variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// SetVarnum grows the number of variables to num. It never shrinks the
// manager: num must be at least Varnum().
func (b *BDD) SetVarnum(num int) error {
	if num < int(b.varnum) {
		b.seterror("cannot decrease varnum from %d to %d", b.varnum, num)
		return b.error
	}
	for i := int(b.varnum); i < num; i++ {
		pos, err := b.makenode(int32(i), bddzero, bddone)
		if err != nil {
			return err
		}
		b.pushref(pos)
		neg, err := b.makenode(int32(i), bddone, bddzero)
		if err != nil {
			return err
		}
		b.popref(1)
		b.varset = append(b.varset, [2]int{pos, neg})
		b.nodes[pos].refcou = _MAXREFCOUNT
		b.nodes[neg].refcou = _MAXREFCOUNT
		b.varnum++
		b.nodes[bddzero].level = b.varnum
		b.nodes[bddone].level = b.varnum
	}
	return nil
}

// Ithvar returns the i'th variable, in positive form.
func (b *BDD) Ithvar(i int) Node {
	if i < 0 || i >= int(b.varnum) {
		return b.seterror("variable index %d out of range [0,%d)", i, b.varnum)
	}
	return b.retnode(b.varset[i][0])
}

// NIthvar returns the negation of the i'th variable.
func (b *BDD) NIthvar(i int) Node {
	if i < 0 || i >= int(b.varnum) {
		return b.seterror("variable index %d out of range [0,%d)", i, b.varnum)
	}
	return b.retnode(b.varset[i][1])
}

// Low returns the false branch of n.
func (b *BDD) Low(n Node) Node {
	if n == nil {
		return nil
	}
	return b.retnode(b.nodes[*n].low)
}

// High returns the true branch of n.
func (b *BDD) High(n Node) Node {
	if n == nil {
		return nil
	}
	return b.retnode(b.nodes[*n].high)
}

// retnode wraps a raw node id into a Node, registering a finalizer that
// decrements the reference count once the Go value becomes unreachable.
func (b *BDD) retnode(id int) Node {
	if id < 0 || id >= len(b.nodes) {
		if _DEBUG {
			log.Panicf("bdd: retnode(%d) out of range", id)
		}
		return nil
	}
	x := id
	if b.nodes[id].refcou < _MAXREFCOUNT {
		b.nodes[id].refcou++
		runtime.SetFinalizer(&x, b.nodefinalizer)
	}
	return &x
}

func (b *BDD) nodefinalizer(x *int) {
	id := *x
	if b.nodes[id].refcou > 0 && b.nodes[id].refcou < _MAXREFCOUNT {
		b.nodes[id].refcou--
		b.gcstat.finalized++
	}
}

// makenode returns the (unique) node for (level, low, high), building a fresh
// one if none exists yet. The caller is responsible for protecting low and
// high from garbage collection (via pushref) for the duration of the call.
func (b *BDD) makenode(level int32, low, high int) (int, error) {
	if low == high {
		return low, nil
	}
	key := uniqueKey{level, low, high}
	if id, ok := b.unique[key]; ok {
		return id, nil
	}
	if b.freepos == 0 {
		b.gbc()
		if (b.freenum*100)/len(b.nodes) <= b.minfreenodes {
			if err := b.resize(); err != nil {
				return -1, err
			}
		}
		if b.freepos == 0 {
			return -1, errMemory
		}
	}
	id := b.freepos
	b.freepos = b.nodes[id].high
	b.freenum--
	b.nodes[id] = node{level: level, low: low, high: high}
	b.unique[key] = id
	b.produced++
	return id, nil
}

func (b *BDD) initref() {
	b.refstack = b.refstack[:0]
}

func (b *BDD) pushref(n int) int {
	b.refstack = append(b.refstack, n)
	return n
}

func (b *BDD) popref(count int) {
	b.refstack = b.refstack[:len(b.refstack)-count]
}
