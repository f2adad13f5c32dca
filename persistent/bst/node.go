package bst

import "fmt"

// node is a node of a binary search tree. Nodes are never altered after
// construction, which makes it safe to share them between trees.
//
// Every key in left is smaller than key, every key in right is greater.
// A nil subtree is an empty subtree.
type node[K, T any] struct {
	key   K
	value T
	left  *node[K, T]
	right *node[K, T]
}

func newNode[K, T any](key K, value T, left, right *node[K, T]) *node[K, T] {
	return &node[K, T]{key: key, value: value, left: left, right: right}
}

func (n *node[K, T]) String() string {
	if n == nil {
		return "⟨⟩"
	}
	return fmt.Sprintf("⟨%v⟩", n.key)
}

// leftmost returns the node with the minimum key of the subtree rooted at n.
func (n *node[K, T]) leftmost() *node[K, T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// withLeft returns a copy of n with a different left subtree. If left is
// identical to n.left, n is returned.
func (n *node[K, T]) withLeft(left *node[K, T]) *node[K, T] {
	if left == n.left {
		return n
	}
	return newNode(n.key, n.value, left, n.right)
}

// withRight is the mirror of withLeft.
func (n *node[K, T]) withRight(right *node[K, T]) *node[K, T] {
	if right == n.right {
		return n
	}
	return newNode(n.key, n.value, n.left, right)
}

// --- Recursive operations on subtrees ----------------------------------------

func insert[K, T any](order func(K, K) int, n *node[K, T], key K, value T) *node[K, T] {
	if n == nil {
		return newNode[K, T](key, value, nil, nil)
	}
	c := order(key, n.key)
	switch {
	case c < 0:
		return n.withLeft(insert(order, n.left, key, value))
	case c > 0:
		return n.withRight(insert(order, n.right, key, value))
	}
	tracer().Debugf("insert: key %v already present, ignoring", key)
	return n
}

func remove[K, T any](order func(K, K) int, n *node[K, T], key K) *node[K, T] {
	if n == nil {
		return nil
	}
	c := order(key, n.key)
	switch {
	case c < 0:
		return n.withLeft(remove(order, n.left, key))
	case c > 0:
		return n.withRight(remove(order, n.right, key))
	}
	switch { // n holds key
	case n.left != nil && n.right != nil:
		succ := n.right.leftmost()
		tracer().Debugf("remove: replacing %v by in-order successor %v", n, succ)
		return newNode(succ.key, succ.value, n.left, remove(order, n.right, succ.key))
	case n.left != nil:
		return n.left
	case n.right != nil:
		return n.right
	}
	return nil
}

func lookup[K, T any](order func(K, K) int, n *node[K, T], key K) *node[K, T] {
	for n != nil {
		c := order(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func foldl[K, T, U any](n *node[K, T], f func(K, T, U) U, acc U) U {
	if n == nil {
		return acc
	}
	acc = foldl(n.left, f, acc)
	acc = f(n.key, n.value, acc)
	return foldl(n.right, f, acc)
}

func foldr[K, T, U any](n *node[K, T], f func(K, T, U) U, acc U) U {
	if n == nil {
		return acc
	}
	acc = foldr(n.right, f, acc)
	acc = f(n.key, n.value, acc)
	return foldr(n.left, f, acc)
}

func mapNodes[K, T, U any](n *node[K, T], f func(K, T) U) *node[K, U] {
	if n == nil {
		return nil
	}
	left := mapNodes(n.left, f)
	value := f(n.key, n.value)
	right := mapNodes(n.right, f)
	return newNode(n.key, value, left, right)
}
