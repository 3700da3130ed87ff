package mdparse

import "github.com/yaklabco/markdoc/pkg/mdnode"

// treeify runs pass 4 against a flat node sequence starting at idx, nesting
// Header nodes under whichever preceding Header has a strictly lesser
// level. It returns the Header built for (level, title) together with the
// index of the first node it didn't consume.
func treeify(flat []mdnode.Node, idx, level int, title string) (mdnode.Node, int) {
	var children []mdnode.Node

	for idx < len(flat) {
		n := flat[idx]

		if n.Kind == mdnode.KindHeader {
			if n.Level <= level {
				break
			}
			child, next := treeify(flat, idx+1, n.Level, n.Title)
			children = append(children, child)
			idx = next
			continue
		}

		children = append(children, n)
		idx++
	}

	return mdnode.NewHeader(level, title, children...), idx
}

// organize runs the organization pass against a Header (or the level-0
// synthetic root): within its children, non-Header/non-LinkRef nodes come
// first in original order, then the canonicalized LinkRefs, then Header
// children in original order, each organized recursively.
func organize(n mdnode.Node, sortRefs bool, canonicalize func([]mdnode.Node, bool) []mdnode.Node) mdnode.Node {
	var others, refs, headers []mdnode.Node

	for _, c := range n.Children {
		switch c.Kind {
		case mdnode.KindLinkRef:
			refs = append(refs, c)
		case mdnode.KindHeader:
			headers = append(headers, organize(c, sortRefs, canonicalize))
		default:
			others = append(others, c)
		}
	}

	refs = canonicalize(refs, sortRefs)

	children := make([]mdnode.Node, 0, len(others)+len(refs)+len(headers))
	children = append(children, others...)
	children = append(children, refs...)
	children = append(children, headers...)

	return n.WithChildren(children)
}
