// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// Stats returns a human-readable summary of the manager's node table and
// garbage-collection history, used by verbose engine runs.
func (b *BDD) Stats() string {
	used := len(b.nodes) - b.freenum
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Used:       %d\n", used)
	res += fmt.Sprintf("Free:       %d\n", b.freenum)
	res += fmt.Sprintf("Produced:   %d\n", b.produced)
	res += fmt.Sprintf("GC runs:    %d\n", b.gcstat.collections)
	res += fmt.Sprintf("Finalized:  %d\n", b.gcstat.finalized)
	return res
}

// Reorder does not change the manager, whether or not Reorder(true) was
// passed to New: no sifting or other reordering is performed, and nothing is
// recorded. The variable order stays the declaration order.
func (b *BDD) Reorder() {
	if !b.configs.reorder {
		return
	}
}
