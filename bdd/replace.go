// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

var replacerSeq = 2000 // disjoint from the op ids used as cacheKey.op

// Replacer renames variables inside a Node. It is built once with
// NewReplacer and applied to as many nodes as needed with BDD.Replace; the
// renaming is cached per Replacer.id.
type Replacer interface {
	image(level int32) (int32, bool)
	id() int
}

type replacer struct {
	rid    int
	images []int32
	last   int32
}

func (r *replacer) image(level int32) (int32, bool) {
	if level > r.last {
		return level, false
	}
	return r.images[level], true
}

func (r *replacer) id() int { return r.rid }

func (r *replacer) String() string {
	s := "replacer["
	first := true
	for k, v := range r.images {
		if int32(k) != v {
			if !first {
				s += ", "
			}
			first = false
			s += fmt.Sprintf("%d<-%d", v, k)
		}
	}
	return s + "]"
}

// NewReplacer builds a Replacer substituting oldvars[k] with newvars[k] for
// every k. The two slices must have the same length and contain no
// duplicates; every index must be in [0, Varnum).
func (b *BDD) NewReplacer(oldvars, newvars []int) (Replacer, error) {
	if len(oldvars) != len(newvars) {
		return nil, fmt.Errorf("bdd: mismatched replacer slice lengths")
	}
	r := &replacer{rid: replacerSeq}
	replacerSeq++
	varnum := int(b.varnum)
	r.images = make([]int32, varnum)
	for k := range r.images {
		r.images[k] = int32(k)
	}
	seen := make(map[int]bool)
	for k, old := range oldvars {
		if old < 0 || old >= varnum || newvars[k] < 0 || newvars[k] >= varnum {
			return nil, fmt.Errorf("bdd: replacer variable out of range")
		}
		if seen[old] {
			return nil, fmt.Errorf("bdd: duplicate variable %d in oldvars", old)
		}
		seen[old] = true
		r.images[old] = int32(newvars[k])
		if int32(old) > r.last {
			r.last = int32(old)
		}
	}
	return r, nil
}

// Replace computes n after substituting variables according to r.
func (b *BDD) Replace(n Node, r Replacer) Node {
	if n == nil {
		return nil
	}
	b.initref()
	nn := b.pushref(*n)
	res := b.replace(nn, r)
	b.popref(1)
	if b.error != nil {
		return nil
	}
	return b.retnode(res)
}

func (b *BDD) replace(n int, r Replacer) int {
	if n < 2 {
		return n
	}
	key := cacheKey{op: 3000 + r.id(), left: n}
	if id, ok := b.opcache.get(key); ok {
		return id
	}
	nn := b.nodes[n]
	low := b.pushref(b.replace(nn.low, r))
	high := b.pushref(b.replace(nn.high, r))
	level := nn.level
	if img, ok := r.image(level); ok {
		level = img
	}
	res := b.pushref(b.correctify(level, low, high))
	b.popref(3)
	b.opcache.put(key, res)
	return res
}

// correctify rebuilds a node at level with the given (already substituted)
// children. When a renaming maps two adjacent levels to each other's
// position -- exactly what priming/unpriming does -- a child can come back
// with a level lower than the level its parent is about to take. In that
// case the parent must be pushed below that child's variable instead of
// above it, recursing on the child's own branches; this mirrors the
// correctify step of a classic BDD variable-renaming pass and terminates
// because each recursive call descends strictly towards the leaves.
func (b *BDD) correctify(level int32, low, high int) int {
	lLevel, hLevel := b.levelOf(low), b.levelOf(high)
	if lLevel > level && hLevel > level {
		res, err := b.makenode(level, low, high)
		if err != nil {
			b.seterror("replace: %s", err)
			return bddzero
		}
		return res
	}
	if lLevel < level {
		ln := b.nodes[low]
		lo := b.pushref(b.correctify(level, ln.low, high))
		hi := b.pushref(b.correctify(level, ln.high, high))
		res, err := b.makenode(lLevel, lo, hi)
		b.popref(2)
		if err != nil {
			b.seterror("replace: %s", err)
			return bddzero
		}
		return res
	}
	hn := b.nodes[high]
	lo := b.pushref(b.correctify(level, low, hn.low))
	hi := b.pushref(b.correctify(level, low, hn.high))
	res, err := b.makenode(hLevel, lo, hi)
	b.popref(2)
	if err != nil {
		b.seterror("replace: %s", err)
		return bddzero
	}
	return res
}
