// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// opcache memoizes the result of Apply/Ite/Exist/AppEx/Replace calls keyed by
// operand and operator, so that a BDD with heavy internal sharing is only
// ever traversed once per (sub-function, operation) pair. The cache is
// cleared on every garbage collection since node ids can be reused afterwards.
type opcache struct {
	table map[cacheKey]int
	limit int
}

type cacheKey struct {
	op          int
	left, right int
	aux         int // replacer/quantification set id, when relevant
}

func newOpcache(size int) opcache {
	return opcache{table: make(map[cacheKey]int, size)}
}

func (c *opcache) get(k cacheKey) (int, bool) {
	v, ok := c.table[k]
	return v, ok
}

func (c *opcache) put(k cacheKey, v int) {
	c.table[k] = v
}

func (c *opcache) clear() {
	c.table = make(map[cacheKey]int, len(c.table))
}
