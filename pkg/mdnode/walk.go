package mdnode

// WalkFunc is the callback signature for Walk. Returning false stops the
// walk early without visiting further siblings or descendants.
type WalkFunc func(n Node) bool

// Walk performs a pre-order traversal starting at root, visiting root
// itself before its children. It stops as soon as fn returns false.
func Walk(root Node, fn WalkFunc) {
	walk(root, fn)
}

// walk visits n and its subtree in pre-order and reports whether the
// traversal should go on.
func walk(n Node, fn WalkFunc) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// FindAll returns every node in root's subtree (root included) for which
// predicate holds, in pre-order.
func FindAll(root Node, predicate func(Node) bool) []Node {
	var out []Node
	Walk(root, func(n Node) bool {
		if predicate(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// FindFirst returns the first node in pre-order for which predicate
// holds, and true; or the zero Node and false if none match.
func FindFirst(root Node, predicate func(Node) bool) (Node, bool) {
	var found Node
	ok := false
	Walk(root, func(n Node) bool {
		if predicate(n) {
			found = n
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// FindByKind returns every node of the given Kind in root's subtree.
func FindByKind(root Node, kind Kind) []Node {
	return FindAll(root, func(n Node) bool { return n.Kind == kind })
}
