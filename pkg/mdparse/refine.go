package mdparse

import (
	"github.com/yaklabco/markdoc/pkg/mdnode"
	"github.com/yaklabco/markdoc/pkg/mdtable"
)

// refineTables runs pass 3: every Paragraph is offered a chance to
// reinterpret itself as a Table. Nodes that don't parse as a table, and
// every non-Paragraph node, pass through unchanged.
func refineTables(flat []mdnode.Node) []mdnode.Node {
	out := make([]mdnode.Node, len(flat))
	for i, n := range flat {
		if n.Kind != mdnode.KindParagraph {
			out[i] = n
			continue
		}
		if table, ok := mdtable.Parse(n.Text); ok {
			out[i] = table
			continue
		}
		out[i] = n
	}
	return out
}
