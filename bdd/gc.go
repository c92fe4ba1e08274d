// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"log"
	"math"
)

const marked int32 = 1 << 30

func (b *BDD) ismarked(n int) bool {
	return b.nodes[n].level&marked != 0
}

func (b *BDD) marknode(n int) {
	b.nodes[n].level |= marked
}

func (b *BDD) unmarknode(n int) {
	b.nodes[n].level &^= marked
}

// gbc reclaims every node that is neither a constant, a declared variable,
// nor reachable from a still-referenced external Node or from the refstack
// of values currently under construction.
func (b *BDD) gbc() {
	if _LOGLEVEL > 0 {
		log.Println("bdd: starting garbage collection")
	}
	b.gcstat.collections++
	b.opcache.clear()
	for _, r := range b.refstack {
		b.markrec(r)
	}
	for k := range b.nodes {
		if b.nodes[k].refcou > 0 {
			b.markrec(k)
		}
	}
	b.freepos = 0
	b.freenum = 0
	for n := len(b.nodes) - 1; n > 1; n-- {
		if b.ismarked(n) && b.nodes[n].low != -1 {
			b.unmarknode(n)
			continue
		}
		if b.nodes[n].low != -1 {
			delete(b.unique, uniqueKey{b.nodes[n].level, b.nodes[n].low, b.nodes[n].high})
		}
		b.nodes[n].low = -1
		b.nodes[n].high = b.freepos
		b.freepos = n
		b.freenum++
	}
	if _LOGLEVEL > 0 {
		log.Printf("bdd: gc done, %d free nodes\n", b.freenum)
	}
}

func (b *BDD) markrec(n int) {
	if n < 2 || b.ismarked(n) || b.nodes[n].low == -1 {
		return
	}
	b.marknode(n)
	b.markrec(b.nodes[n].low)
	b.markrec(b.nodes[n].high)
}

// resize doubles the node table, bounded by Maxnodeincrease and Maxnodesize.
func (b *BDD) resize() error {
	oldsize := len(b.nodes)
	if b.maxnodesize > 0 && oldsize >= b.maxnodesize {
		return errMemory
	}
	newsize := oldsize * 2
	if oldsize > math.MaxInt32>>1 {
		newsize = math.MaxInt32 - 1
	}
	if b.maxnodeincrease > 0 && newsize > oldsize+b.maxnodeincrease {
		newsize = oldsize + b.maxnodeincrease
	}
	if b.maxnodesize > 0 && newsize > b.maxnodesize {
		newsize = b.maxnodesize
	}
	if newsize <= oldsize {
		return errMemory
	}
	tmp := b.nodes
	b.nodes = make([]node, newsize)
	copy(b.nodes, tmp)
	for n := oldsize; n < newsize; n++ {
		b.nodes[n].low = -1
		b.nodes[n].high = n + 1
	}
	b.nodes[newsize-1].high = b.freepos
	b.freepos = oldsize
	b.freenum += newsize - oldsize
	if _LOGLEVEL > 0 {
		log.Printf("bdd: resized node table %d -> %d\n", oldsize, newsize)
	}
	return nil
}
