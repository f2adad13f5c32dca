/*
Package bst implements a persistent (immutable) in-memory binary search tree.

Every “modification” of a tree (insertion or deletion of a key) creates a new
incarnation of the tree, leaving the original unchanged. Only the nodes on the
path from the root down to the point of change are re-created, all other
subtrees are shared between the old and the new tree.

	t1 := bst.Empty[int, string]().Insert(20, "20").Insert(10, "10")
	t2 := t1.Remove(20)
	t1.Get(20)   // Just("20")
	t2.Get(20)   // Nothing

The tree is not self-balancing. Its shape is purely a function of insertion
history, i.e. inserting keys in sorted order will produce a degenerate tree.

Inserting a key which is already present is a no-op; the tree will keep the
value associated first. Removing a key which is not present returns the tree
unchanged.

As trees are never mutated, a tree value may be shared between goroutines
without further synchronization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bst

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.bst'.
func tracer() tracing.Trace {
	return tracing.Select("fp.bst")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("bst: "+msg, msgargs...)
		panic(msg)
	}
}
