package abstract

// Order selects a traversal sequence.
type Order uint8

const (
	// InOrder visits the left subtree, the node, then the right subtree.
	// On nodes with more than two slots it is defined as first child,
	// node, remaining children.
	InOrder Order = iota
	PreOrder
	PostOrder
	LevelOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case LevelOrder:
		return "level-order"
	default:
		return "unknown"
	}
}

// Visitor receives each node of a traversal; returning false stops the
// walk.
type Visitor func(Node) bool

// Walk traverses the tree rooted at n in the given order, calling visit for
// every node. The sequence is deterministic: binary children go left then
// right, char-map children in label order, everything else in stored order.
// Walk reports whether the traversal ran to completion.
func Walk(n Node, order Order, visit Visitor) bool {
	if order == LevelOrder {
		return walkLevel(n, visit)
	}
	return walkDepth(n, order, visit)
}

func walkDepth(n Node, order Order, visit Visitor) bool {
	if n == nil {
		return true
	}
	if order == PreOrder && !visit(n) {
		return false
	}
	num := n.NumChildren()
	for i := 0; i < num; i++ {
		if order == InOrder && i == 1 && !visit(n) {
			return false
		}
		if !walkDepth(n.Child(i), order, visit) {
			return false
		}
	}
	// In-order still owes the visit when there are fewer than two slots.
	if order == InOrder && num < 2 && !visit(n) {
		return false
	}
	if order == PostOrder && !visit(n) {
		return false
	}
	return true
}

func walkLevel(n Node, visit Visitor) bool {
	if n == nil {
		return true
	}
	queue := []Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !visit(cur) {
			return false
		}
		for i, num := 0, cur.NumChildren(); i < num; i++ {
			if c := cur.Child(i); c != nil {
				queue = append(queue, c)
			}
		}
	}
	return true
}

// HeightOf is the node-height of the tree rooted at n: 0 for an empty tree,
// 1 for a lone node.
func HeightOf(n Node) int {
	if n == nil {
		return 0
	}
	max := 0
	for i, num := 0, n.NumChildren(); i < num; i++ {
		if h := HeightOf(n.Child(i)); h > max {
			max = h
		}
	}
	return max + 1
}
