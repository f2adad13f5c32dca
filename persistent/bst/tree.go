package bst

import (
	"cmp"

	"github.com/npillmayer/bstree/maybe"
)

// Tree is a persistent binary search tree, mapping keys of type K to values of type T.
//
// Trees are values and are never modified. Operations like Insert or Remove return a
// new tree. Use it like this:
//
//     tree := bst.Empty[int, string]()
//     tree = tree.Insert(42, "Galaxy")
//     value := tree.Get(42).WithDefault("")   // returns "Galaxy"
//
// The zero value of Tree is an empty tree without a key ordering. It may be queried,
// but inserting into it will panic. Use Empty or EmptyFunc to create trees.
type Tree[K, T any] struct {
	root  *node[K, T]    // nil for the empty tree
	order func(K, K) int // three-way comparison of keys
}

// Empty creates an empty tree for keys with a natural ordering.
func Empty[K cmp.Ordered, T any]() Tree[K, T] {
	return Tree[K, T]{order: cmp.Compare[K]}
}

// EmptyFunc creates an empty tree with keys ordered by a comparison function.
// order(a, b) has to return a negative number for a < b, a positive number for a > b
// and 0 for keys considered equal. It must implement a strict total order;
// the tree will not check this.
func EmptyFunc[K, T any](order func(K, K) int) Tree[K, T] {
	assertThat(order != nil, "key ordering must not be nil")
	return Tree[K, T]{order: order}
}

// Singleton creates a tree containing a single entry.
func Singleton[K cmp.Ordered, T any](key K, value T) Tree[K, T] {
	return Empty[K, T]().Insert(key, value)
}

// SingletonFunc creates a tree containing a single entry, with keys ordered by
// a comparison function (see EmptyFunc).
func SingletonFunc[K, T any](order func(K, K) int, key K, value T) Tree[K, T] {
	return EmptyFunc[K, T](order).Insert(key, value)
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true if tree does not contain any entry.
func (tree Tree[K, T]) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the key of the root node of the tree, if any.
// As the tree is unbalanced, the root key depends on the order of insertions and removals.
func (tree Tree[K, T]) Root() maybe.Maybe[K] {
	if tree.root == nil {
		return maybe.Nothing[K]()
	}
	return maybe.Just(tree.root.key)
}

// Insert returns a copy of a tree with a new key inserted, which is associated with `value`.
// If an entry for key is already present in tree, tree is returned unchanged, i.e. the
// value associated first will be retained.
func (tree Tree[K, T]) Insert(key K, value T) Tree[K, T] {
	assertThat(tree.order != nil, "cannot insert into tree without key ordering; use Empty or EmptyFunc")
	root := insert(tree.order, tree.root, key, value)
	if root == tree.root {
		return tree
	}
	return Tree[K, T]{root: root, order: tree.order}
}

// Get locates a key in a tree and returns the value associated with it, if present.
func (tree Tree[K, T]) Get(key K) maybe.Maybe[T] {
	if tree.root == nil {
		return maybe.Nothing[T]()
	}
	if n := lookup(tree.order, tree.root, key); n != nil {
		return maybe.Just(n.value)
	}
	return maybe.Nothing[T]()
}

// Remove returns a copy of a tree with key deleted, if present.
// If key is not found, tree is returned unchanged.
//
// A node with two children is replaced by its in-order successor, i.e. the entry
// with the smallest key of its right subtree.
func (tree Tree[K, T]) Remove(key K) Tree[K, T] {
	if tree.root == nil {
		return tree
	}
	root := remove(tree.order, tree.root, key)
	if root == tree.root {
		return tree
	}
	return Tree[K, T]{root: root, order: tree.order}
}

// FoldL folds the entries of a tree in ascending order of keys, i.e. from left to right.
// If tree is empty, initial is returned.
//
//     keys := bst.FoldL(tree, func(k int, v string, acc []int) []int {
//         return append(acc, k)
//     }, nil)
//
func FoldL[K, T, U any](tree Tree[K, T], f func(K, T, U) U, initial U) U {
	return foldl(tree.root, f, initial)
}

// FoldR folds the entries of a tree in descending order of keys, i.e. from right to left.
// If tree is empty, initial is returned.
func FoldR[K, T, U any](tree Tree[K, T], f func(K, T, U) U, initial U) U {
	return foldr(tree.root, f, initial)
}

// Map creates a new tree of the same shape and with the same keys as tree,
// with every value v at key k replaced by f(k, v).
// The new tree does not share any nodes with tree.
func Map[K, T, U any](tree Tree[K, T], f func(K, T) U) Tree[K, U] {
	return Tree[K, U]{root: mapNodes(tree.root, f), order: tree.order}
}
