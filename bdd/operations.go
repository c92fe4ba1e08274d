// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
)

// Node is a reference to a node in a manager. The two reserved values True
// and False are obtained through the manager's True/False methods, never
// through a zero Node.
type Node *int

// True returns the constant true.
func (b *BDD) True() Node { return b.retnode(bddone) }

// False returns the constant false.
func (b *BDD) False() Node { return b.retnode(bddzero) }

// From returns the constant corresponding to v.
func (b *BDD) From(v bool) Node {
	if v {
		return b.True()
	}
	return b.False()
}

// Equal reports whether low and high denote the same function. Because this
// package keeps a reduced, shared representation, equal functions always have
// equal node ids.
func (b *BDD) Equal(low, high Node) bool {
	if low == nil || high == nil {
		return low == high
	}
	return *low == *high
}

// Not returns the negation of n.
func (b *BDD) Not(n Node) Node {
	if n == nil {
		return nil
	}
	b.initref()
	id := b.pushref(*n)
	r := b.not(id)
	b.popref(1)
	return b.retnode(r)
}

func (b *BDD) not(n int) int {
	if n == bddzero {
		return bddone
	}
	if n == bddone {
		return bddzero
	}
	if id, ok := b.opcache.get(cacheKey{op: int(opnot), left: n}); ok {
		return id
	}
	nn := b.nodes[n]
	low := b.pushref(b.not(nn.low))
	high := b.pushref(b.not(nn.high))
	res, err := b.makenode(nn.level, low, high)
	b.popref(2)
	if err != nil {
		b.seterror("not: %s", err)
		return bddzero
	}
	b.opcache.put(cacheKey{op: int(opnot), left: n}, res)
	return res
}

// Apply computes the result of the binary operator op applied to left and
// right.
func (b *BDD) Apply(left, right Node, op Operator) Node {
	if left == nil || right == nil {
		return nil
	}
	b.initref()
	l, r := b.pushref(*left), b.pushref(*right)
	res := b.apply(l, r, op)
	b.popref(2)
	if b.error != nil {
		return nil
	}
	return b.retnode(res)
}

func (b *BDD) apply(left, right int, op Operator) int {
	if left < 2 && right < 2 {
		return opres[op][left][right]
	}
	key := cacheKey{op: int(op), left: left, right: right}
	if id, ok := b.opcache.get(key); ok {
		return id
	}
	ln, rn := b.nodes[left], b.nodes[right]
	var level int32
	var lowL, highL, lowR, highR int
	switch {
	case ln.level == rn.level:
		level, lowL, highL, lowR, highR = ln.level, ln.low, ln.high, rn.low, rn.high
	case ln.level < rn.level:
		level, lowL, highL, lowR, highR = ln.level, ln.low, ln.high, right, right
	default:
		level, lowL, highL, lowR, highR = rn.level, left, left, rn.low, rn.high
	}
	low := b.pushref(b.apply(lowL, lowR, op))
	high := b.pushref(b.apply(highL, highR, op))
	res, err := b.makenode(level, low, high)
	b.popref(2)
	if err != nil {
		b.seterror("apply(%s): %s", op, err)
		return bddzero
	}
	b.opcache.put(key, res)
	return res
}

// Ite computes (f & g) | (!f & h) in one pass.
func (b *BDD) Ite(f, g, h Node) Node {
	if f == nil || g == nil || h == nil {
		return nil
	}
	b.initref()
	ff, gg, hh := b.pushref(*f), b.pushref(*g), b.pushref(*h)
	res := b.ite(ff, gg, hh)
	b.popref(3)
	if b.error != nil {
		return nil
	}
	return b.retnode(res)
}

func (b *BDD) ite(f, g, h int) int {
	switch {
	case f == bddone:
		return g
	case f == bddzero:
		return h
	case g == h:
		return g
	case g == bddone && h == bddzero:
		return f
	}
	key := cacheKey{op: -1, left: f, right: g, aux: h}
	if id, ok := b.opcache.get(key); ok {
		return id
	}
	level := b.nodes[f].level
	if b.nodes[g].level < level && g >= 2 {
		level = b.nodes[g].level
	}
	if b.nodes[h].level < level && h >= 2 {
		level = b.nodes[h].level
	}
	restrict := func(n int) (int, int) {
		if n < 2 || b.nodes[n].level != level {
			return n, n
		}
		return b.nodes[n].low, b.nodes[n].high
	}
	fLow, fHigh := restrict(f)
	gLow, gHigh := restrict(g)
	hLow, hHigh := restrict(h)
	low := b.pushref(b.ite(fLow, gLow, hLow))
	high := b.pushref(b.ite(fHigh, gHigh, hHigh))
	res, err := b.makenode(level, low, high)
	b.popref(2)
	if err != nil {
		b.seterror("ite: %s", err)
		return bddzero
	}
	b.opcache.put(key, res)
	return res
}

// Makeset returns the cube (conjunction) of the variables in varset, in
// positive form. It is used to build quantification sets for Exist and
// Forall.
func (b *BDD) Makeset(varset []int) Node {
	b.initref()
	acc := bddone
	for _, v := range varset {
		if v < 0 || v >= int(b.varnum) {
			return b.seterror("variable index %d out of range", v)
		}
		lit := b.pushref(b.varset[v][0])
		acc = b.pushref(b.apply(acc, lit, OPand))
	}
	b.popref(2 * len(varset))
	return b.retnode(acc)
}

// Scanset returns the variables found by following the high branch of the
// cube n, the dual of Makeset.
func (b *BDD) Scanset(n Node) []int {
	if n == nil {
		return nil
	}
	var res []int
	cur := *n
	for cur > 1 {
		res = append(res, int(b.nodes[cur].level))
		cur = b.nodes[cur].high
	}
	return res
}

// Exist existentially quantifies n over the variables in varset (a cube built
// with Makeset).
func (b *BDD) Exist(n, varset Node) Node {
	if n == nil || varset == nil {
		return nil
	}
	b.initref()
	nn, vv := b.pushref(*n), b.pushref(*varset)
	res := b.quant(nn, vv, OPor)
	b.popref(2)
	if b.error != nil {
		return nil
	}
	return b.retnode(res)
}

// Forall universally quantifies n over the variables in varset. It is
// computed as !Exist(!n, varset), the De Morgan dual.
func (b *BDD) Forall(n, varset Node) Node {
	if n == nil || varset == nil {
		return nil
	}
	b.initref()
	nn, vv := b.pushref(*n), b.pushref(*varset)
	res := b.not(b.quant(b.not(nn), vv, OPor))
	b.popref(2)
	if b.error != nil {
		return nil
	}
	return b.retnode(res)
}

// quant abstracts n over the cube varset using conn (OPor for existential,
// since quantifying a variable out means taking low | high at its level).
func (b *BDD) quant(n, varset int, conn Operator) int {
	if varset == bddone {
		return n
	}
	if n < 2 {
		return n
	}
	key := cacheKey{op: 1000 + int(conn), left: n, right: varset}
	if id, ok := b.opcache.get(key); ok {
		return id
	}
	nn := b.nodes[n]
	// advance varset past any level that sorts before n's level: those
	// variables do not occur in n, quantifying them out is a no-op.
	v := varset
	for v > 1 && b.nodes[v].level < nn.level {
		v = b.nodes[v].high
	}
	if v <= 1 || b.nodes[v].level > nn.level {
		low := b.pushref(b.quant(nn.low, v, conn))
		high := b.pushref(b.quant(nn.high, v, conn))
		res, err := b.makenode(nn.level, low, high)
		b.popref(2)
		if err != nil {
			b.seterror("quant: %s", err)
			return bddzero
		}
		b.opcache.put(key, res)
		return res
	}
	low := b.pushref(b.quant(nn.low, b.nodes[v].high, conn))
	high := b.pushref(b.quant(nn.high, b.nodes[v].high, conn))
	res := b.pushref(b.apply(low, high, conn))
	b.popref(3)
	b.opcache.put(key, res)
	return res
}

// AppEx applies op to left and right, then existentially quantifies the
// result over varset. The unquantified intermediate BDD is built in full
// first and then passed to Exist.
func (b *BDD) AppEx(left, right Node, op Operator, varset Node) Node {
	mid := b.Apply(left, right, op)
	if mid == nil {
		return nil
	}
	return b.Exist(mid, varset)
}

// AppAll applies op to left and right, then universally quantifies the
// result over varset.
func (b *BDD) AppAll(left, right Node, op Operator, varset Node) Node {
	mid := b.Apply(left, right, op)
	if mid == nil {
		return nil
	}
	return b.Forall(mid, varset)
}

// And returns the conjunction of a (possibly empty) sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	switch len(n) {
	case 0:
		return b.True()
	case 1:
		return n[0]
	default:
		return b.Apply(n[0], b.And(n[1:]...), OPand)
	}
}

// Or returns the disjunction of a (possibly empty) sequence of nodes.
func (b *BDD) Or(n ...Node) Node {
	switch len(n) {
	case 0:
		return b.False()
	case 1:
		return n[0]
	default:
		return b.Apply(n[0], b.Or(n[1:]...), OPor)
	}
}

// Imp returns the implication n1 -> n2.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the bi-implication n1 <-> n2.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// AndExist returns Exist(varset, n1 & n2), the relational composition of n1
// and n2 with respect to varset.
func (b *BDD) AndExist(varset, n1, n2 Node) Node {
	return b.AppEx(n1, n2, OPand, varset)
}

// Satcount returns the number of satisfying assignments of n over the full
// set of declared variables, using arbitrary-precision arithmetic.
func (b *BDD) Satcount(n Node) *big.Int {
	if n == nil {
		return big.NewInt(0)
	}
	if *n == bddzero {
		return big.NewInt(0)
	}
	memo := make(map[int]*big.Int)
	count := b.satcount(*n, memo)
	// every level below the root is unconstrained, each doubling the total
	skip := b.levelOf(*n)
	return new(big.Int).Mul(count, new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(skip)), nil))
}

func (b *BDD) satcount(n int, memo map[int]*big.Int) *big.Int {
	if n == bddone {
		return big.NewInt(1)
	}
	if v, ok := memo[n]; ok {
		return v
	}
	nn := b.nodes[n]
	lowCount := b.skippedScale(nn.low, nn.level, memo)
	highCount := b.skippedScale(nn.high, nn.level, memo)
	res := new(big.Int).Add(lowCount, highCount)
	memo[n] = res
	return res
}

func (b *BDD) levelOf(n int) int32 {
	if n < 2 {
		return b.varnum
	}
	return b.nodes[n].level
}

// skippedScale accounts for the variables skipped between parent's level and
// child's level: each skipped level doubles the number of assignments.
func (b *BDD) skippedScale(child int, parentLevel int32, memo map[int]*big.Int) *big.Int {
	var base *big.Int
	if child == bddzero {
		return big.NewInt(0)
	}
	if child == bddone {
		base = big.NewInt(1)
	} else {
		base = b.satcount(child, memo)
	}
	skipped := b.levelOf(child) - parentLevel - 1
	if skipped <= 0 {
		return base
	}
	return new(big.Int).Mul(base, new(big.Int).Exp(big.NewInt(2), big.NewInt(int64(skipped)), nil))
}

// Allsat calls f once for every satisfying assignment of n, represented as a
// slice of length Varnum where entry i is 0, 1, or -1 (don't care). f may
// return an error to abort the iteration early.
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	if n == nil {
		return nil
	}
	prof := make([]int, b.varnum)
	for i := range prof {
		prof[i] = -1
	}
	return b.allsat(*n, prof, f)
}

func (b *BDD) allsat(n int, prof []int, f func([]int) error) error {
	if n == bddzero {
		return nil
	}
	if n == bddone {
		cp := make([]int, len(prof))
		copy(cp, prof)
		return f(cp)
	}
	nn := b.nodes[n]
	prof[nn.level] = 0
	if err := b.allsat(nn.low, prof, f); err != nil {
		return err
	}
	prof[nn.level] = 1
	if err := b.allsat(nn.high, prof, f); err != nil {
		return err
	}
	prof[nn.level] = -1
	return nil
}

// Allnodes calls f for every node reachable from the given roots (or from
// every active node in the manager if n is empty). f receives the node id,
// its level, and the ids of its low and high branches; the constants always
// have ids 0 and 1.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	if len(n) == 0 {
		for id := 2; id < len(b.nodes); id++ {
			if b.nodes[id].low == -1 {
				continue
			}
			if err := f(id, int(b.nodes[id].level), b.nodes[id].low, b.nodes[id].high); err != nil {
				return err
			}
		}
		return nil
	}
	seen := make(map[int]bool)
	var walk func(int) error
	walk = func(id int) error {
		if id < 2 || seen[id] {
			return nil
		}
		seen[id] = true
		nn := b.nodes[id]
		if err := walk(nn.low); err != nil {
			return err
		}
		if err := walk(nn.high); err != nil {
			return err
		}
		return f(id, int(nn.level), nn.low, nn.high)
	}
	for _, root := range n {
		if root == nil {
			continue
		}
		if err := walk(*root); err != nil {
			return err
		}
	}
	return nil
}
