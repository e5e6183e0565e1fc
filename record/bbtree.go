package record

import (
	"sort"

	"github.com/gogpu/replay"
)

// bbNode is a node of the bounding-box tree over command extents.
//
// A node's extents contain the extents of everything below it. The
// indices slice holds the commands whose extents exactly equal the node's
// extents; commands with smaller extents live in the subtrees.
type bbNode struct {
	extents replay.Rect
	indices []int
	left    *bbNode
	right   *bbNode
}

func newBBNode(extents replay.Rect, indices []int) *bbNode {
	return &bbNode{extents: extents, indices: indices}
}

// leftOrRight reports whether r is cheaper to add to the left subtree.
// The cost of a side is how much its extents would grow, measured in
// area; ties go left.
func (n *bbNode) leftOrRight(r replay.Rect) bool {
	var left, right int
	if n.left != nil {
		left = n.left.extents.Union(r).Area() - n.left.extents.Area()
	}
	if n.right != nil {
		right = n.right.extents.Union(r).Area() - n.right.extents.Area()
	}
	return left <= right
}

// add inserts commands whose extents all equal r.
func (n *bbNode) add(indices []int, r replay.Rect) {
	if !n.extents.Contains(r) {
		// Growing this node would orphan its own commands; push them
		// into a subtree first.
		if len(n.indices) > 0 {
			if n.leftOrRight(n.extents) {
				if n.left == nil {
					n.left = newBBNode(n.extents, n.indices)
				} else {
					n.left.add(n.indices, n.extents)
				}
			} else {
				if n.right == nil {
					n.right = newBBNode(n.extents, n.indices)
				} else {
					n.right.add(n.indices, n.extents)
				}
			}
			n.indices = nil
		}
		n.extents = n.extents.Union(r)
	}

	if r == n.extents {
		n.indices = append(n.indices, indices...)
		return
	}

	if n.leftOrRight(r) {
		if n.left == nil {
			n.left = newBBNode(r, indices)
		} else {
			n.left.add(indices, r)
		}
	} else {
		if n.right == nil {
			n.right = newBBNode(r, indices)
		} else {
			n.right.add(indices, r)
		}
	}
}

// collect appends the indices of every command whose node intersects r.
func (n *bbNode) collect(r replay.Rect, out []int) []int {
	out = append(out, n.indices...)
	if n.left != nil && n.left.extents.Intersects(r) {
		out = n.left.collect(r, out)
	}
	if n.right != nil && n.right.extents.Intersects(r) {
		out = n.right.collect(r, out)
	}
	return out
}

// buildBBTree builds the tree over the given commands. Commands are
// inserted in order of decreasing extents area so large commands end up
// near the root; ties break by log order, which makes rebuilding
// deterministic.
func buildBBTree(commands []Command) *bbNode {
	if len(commands) == 0 {
		return nil
	}

	order := make([]int, len(commands))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return commands[order[a]].header().Extents.Area() >
			commands[order[b]].header().Extents.Area()
	})

	root := newBBNode(commands[order[0]].header().Extents, []int{order[0]})
	for _, i := range order[1:] {
		root.add([]int{i}, commands[i].header().Extents)
	}
	return root
}

// query returns the indices of the commands whose extents may intersect
// r, in log order.
func (n *bbNode) query(r replay.Rect) []int {
	if n == nil || r.IsEmpty() {
		return nil
	}
	var out []int
	if n.extents.Intersects(r) {
		out = n.collect(r, out)
	}
	sort.Ints(out)
	return out
}
