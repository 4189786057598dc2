package scanfilter

import "cmp"

// orderTree is a multiset of float64 values kept in an AVL tree. Equal
// values share one node with a multiplicity count, and every node records
// the number of values in its subtree, so insert, delete-by-value and
// select-by-rank are all O(log n).
//
// Values are ordered by cmp.Compare: NaN sorts before -Inf and equals other
// NaNs, which keeps the order total for sensor drop-outs. -0 and +0 compare
// equal and share one node, which keeps the sign of whichever arrived first,
// so a median of zero may come back with either sign.
type orderTree struct {
	root *orderNode
}

type orderNode struct {
	value  float64
	count  int // occurrences of value
	size   int // occurrences in this subtree
	height int
	left   *orderNode
	right  *orderNode
}

// Len returns the number of values held, counting duplicates.
func (t *orderTree) Len() int { return nodeSize(t.root) }

// Insert adds one occurrence of v.
func (t *orderTree) Insert(v float64) { t.root = insertNode(t.root, v) }

// Remove deletes one occurrence of v and reports whether it was present.
func (t *orderTree) Remove(v float64) bool {
	var ok bool
	t.root, ok = removeNode(t.root, v)
	return ok
}

// Select returns the value of 0-based rank k in ascending order.
// It panics if k is out of range.
func (t *orderTree) Select(k int) float64 {
	if k < 0 || k >= t.Len() {
		panic("scanfilter: order tree rank out of range")
	}
	n := t.root
	for {
		ls := nodeSize(n.left)
		switch {
		case k < ls:
			n = n.left
		case k < ls+n.count:
			return n.value
		default:
			k -= ls + n.count
			n = n.right
		}
	}
}

// Clear drops every value.
func (t *orderTree) Clear() { t.root = nil }

func nodeSize(n *orderNode) int {
	if n == nil {
		return 0
	}
	return n.size
}

func nodeHeight(n *orderNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *orderNode) refresh() {
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
	n.size = n.count + nodeSize(n.left) + nodeSize(n.right)
}

func rotateRight(n *orderNode) *orderNode {
	l := n.left
	n.left = l.right
	l.right = n
	n.refresh()
	l.refresh()
	return l
}

func rotateLeft(n *orderNode) *orderNode {
	r := n.right
	n.right = r.left
	r.left = n
	n.refresh()
	r.refresh()
	return r
}

// rebalance restores the AVL height invariant at n after one of its
// subtrees changed height by at most one.
func rebalance(n *orderNode) *orderNode {
	n.refresh()
	switch bf := nodeHeight(n.left) - nodeHeight(n.right); {
	case bf > 1:
		if nodeHeight(n.left.left) < nodeHeight(n.left.right) {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if nodeHeight(n.right.right) < nodeHeight(n.right.left) {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	}
	return n
}

func insertNode(n *orderNode, v float64) *orderNode {
	if n == nil {
		return &orderNode{value: v, count: 1, size: 1, height: 1}
	}
	switch c := cmp.Compare(v, n.value); {
	case c < 0:
		n.left = insertNode(n.left, v)
	case c > 0:
		n.right = insertNode(n.right, v)
	default:
		n.count++
	}
	return rebalance(n)
}

func removeNode(n *orderNode, v float64) (*orderNode, bool) {
	if n == nil {
		return nil, false
	}
	var ok bool
	switch c := cmp.Compare(v, n.value); {
	case c < 0:
		n.left, ok = removeNode(n.left, v)
	case c > 0:
		n.right, ok = removeNode(n.right, v)
	default:
		ok = true
		if n.count > 1 {
			n.count--
			break
		}
		if n.left == nil {
			return n.right, true
		}
		if n.right == nil {
			return n.left, true
		}
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		succ.right = removeMin(n.right)
		succ.left = n.left
		n = succ
	}
	if !ok {
		return n, false
	}
	return rebalance(n), true
}

// removeMin unlinks the leftmost node of the subtree rooted at n.
func removeMin(n *orderNode) *orderNode {
	if n.left == nil {
		return n.right
	}
	n.left = removeMin(n.left)
	return rebalance(n)
}
