package mdnode

// ReplaceFunc transforms a single child-or-end-marker position. child is
// nil exactly once per call to ReplaceIn: at index len(children), the
// synthetic end-of-list position that lets a caller append trailing nodes.
// ok reports whether f is defined at this position; when ok is false the
// position is "undefined" (handled per the filter flag by the caller).
type ReplaceFunc func(child *Node, index int) (repl []Node, ok bool)

// ReplaceIn maps each (child-or-none, index) pair to a replacement
// sequence via f, including one synthetic (nil, len(children)) call at the
// end so f can append trailing nodes. When filter is true, positions where
// f is undefined are dropped; otherwise the original child (if any) is
// preserved unchanged.
func (n Node) ReplaceIn(filter bool, f ReplaceFunc) Node {
	children := n.Children
	out := make([]Node, 0, len(children))

	for i := 0; i <= len(children); i++ {
		var childPtr *Node
		if i < len(children) {
			c := children[i]
			childPtr = &c
		}

		repl, ok := f(childPtr, i)
		switch {
		case ok:
			out = append(out, repl...)
		case !filter && childPtr != nil:
			out = append(out, *childPtr)
		}
	}

	return n.withChildren(out)
}

// MapFunc transforms one matching child into a replacement sequence.
type MapFunc func(child Node, index int) (repl []Node, ok bool)

// FlatMapOptions controls FlatMapFirstIn's fallback behavior when no child
// matches.
type FlatMapOptions struct {
	// IfNotFound is appended (or substituted, if Replace) when no child
	// matches f. A nil slice with Enabled left false means "do nothing".
	IfNotFound []Node
	// Replace, if true, replaces the entire child list with IfNotFound
	// instead of appending it.
	Replace bool
	// Enabled must be true for IfNotFound/Replace to take effect.
	Enabled bool
}

// FlatMapFirstIn finds the first child for which f is defined and splices
// its result in place. If nothing matches and opts is enabled, IfNotFound
// is appended (or substituted, if Replace) and matching is retried once
// against the new list — so f may also match the appended fallback.
func (n Node) FlatMapFirstIn(f MapFunc, opts FlatMapOptions) Node {
	children := n.Children

	if idx, repl, ok := findFirstMatch(children, f); ok {
		return n.withChildren(splice(children, idx, repl))
	}

	if !opts.Enabled {
		return n
	}

	var candidate []Node
	if opts.Replace {
		candidate = append([]Node{}, opts.IfNotFound...)
	} else {
		candidate = append(append([]Node{}, children...), opts.IfNotFound...)
	}

	if idx, repl, ok := findFirstMatch(candidate, f); ok {
		candidate = splice(candidate, idx, repl)
	}

	return n.withChildren(candidate)
}

// MapFunc1 transforms one matching child into a single replacement node.
type MapFunc1 func(child Node, index int) (repl Node, ok bool)

// MapFirstIn is a thin wrapper over FlatMapFirstIn for transforms that
// produce exactly one replacement node.
func (n Node) MapFirstIn(f MapFunc1, opts FlatMapOptions) Node {
	return n.FlatMapFirstIn(func(child Node, index int) ([]Node, bool) {
		repl, ok := f(child, index)
		if !ok {
			return nil, false
		}
		return []Node{repl}, true
	}, opts)
}

func findFirstMatch(children []Node, f MapFunc) (int, []Node, bool) {
	for i, c := range children {
		if repl, ok := f(c, i); ok {
			return i, repl, true
		}
	}
	return 0, nil, false
}

func splice(children []Node, idx int, repl []Node) []Node {
	out := make([]Node, 0, len(children)-1+len(repl))
	out = append(out, children[:idx]...)
	out = append(out, repl...)
	out = append(out, children[idx+1:]...)
	return out
}

// CollectFirstRecursive performs a pre-order depth-first search, testing
// the current node then its children, and returns the first value for
// which f is defined.
func CollectFirstRecursive[T any](n Node, f func(Node) (T, bool)) (T, bool) {
	if v, ok := f(n); ok {
		return v, true
	}
	for _, c := range n.Children {
		if v, ok := CollectFirstRecursive(c, f); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// ReplaceRecursively performs a top-down rewrite of n's subtree: for each
// child, if f matches it is substituted; otherwise the rewrite descends
// into that child's own children. Table rows are reached through their
// parent Table but, being leaves, are never descended into further — cells
// are strings, not Nodes.
func (n Node) ReplaceRecursively(f func(Node) (Node, bool)) Node {
	if !n.IsContainer() {
		return n
	}

	children := make([]Node, len(n.Children))
	for i, c := range n.Children {
		if repl, ok := f(c); ok {
			children[i] = repl
		} else {
			children[i] = c.ReplaceRecursively(f)
		}
	}

	return n.withChildren(children)
}

// Prepend adds a new Header child one level deeper than n (n may be a
// Header or the Document root, whose implicit level is 0). The new Header
// is placed after all non-Header children but before any existing Header
// children at its own level. If an identical Header (same level and
// title) already exists at that level, Prepend is a no-op.
func (n Node) Prepend(title string, inner ...Node) Node {
	if n.Kind != KindHeader && n.Kind != KindDocument {
		return n
	}

	level := n.Level + 1

	for _, c := range n.Children {
		if c.Kind == KindHeader && c.Level == level && c.Title == title {
			return n
		}
	}

	newHeader := NewHeader(level, title, inner...)

	insertAt := len(n.Children)
	for i, c := range n.Children {
		if c.Kind == KindHeader && c.Level == level {
			insertAt = i
			break
		}
	}

	children := make([]Node, 0, len(n.Children)+1)
	children = append(children, n.Children[:insertAt]...)
	children = append(children, newHeader)
	children = append(children, n.Children[insertAt:]...)

	return n.withChildren(children)
}
