package markdql

import (
	"strconv"
	"strings"

	"github.com/yaklabco/markdoc/pkg/mdnode"
)

// firstMatch runs step 1 of one step's evaluation: it narrows C to the
// first matching Header (or, in table mode, Table) reachable per the
// step's scoping rule, or leaves C untouched for an identity step.
func firstMatch(candidates []mdnode.Node, s step) []mdnode.Node {
	if s.Kind == tokenNone {
		return candidates
	}
	if len(candidates) != 1 || !candidates[0].IsContainer() {
		return nil
	}

	root := candidates[0]
	if s.Recursive {
		if s.TableMode {
			for _, c := range root.Children {
				if found, ok := mdnode.CollectFirstRecursive(c, func(n mdnode.Node) (mdnode.Node, bool) {
					if matchesStep(n, s) {
						return n, true
					}
					return mdnode.Node{}, false
				}); ok {
					return []mdnode.Node{found}
				}
			}
			return nil
		}

		found, scope, ok := recursiveFindWithScope(root.Children, s)
		if !ok {
			return nil
		}
		// A trailing index on a recursive Header match selects among the
		// siblings the match was found in, not among the match's own
		// children: "..B[-1]" with A holding B, C, C2 yields C2, the last
		// of A's children, not the last of B's (which has none).
		if s.HasIndex {
			return []mdnode.Node{mdnode.NewDocument(scope...)}
		}
		return []mdnode.Node{found}
	}

	for _, c := range root.Children {
		if matchesStep(c, s) {
			return []mdnode.Node{c}
		}
	}
	return nil
}

// recursiveFindWithScope performs the same pre-order depth-first search as
// CollectFirstRecursive, but also returns the sibling list the match was
// found in (its parent's children), so a trailing index can select among
// siblings instead of descending into the match itself.
func recursiveFindWithScope(siblings []mdnode.Node, s step) (mdnode.Node, []mdnode.Node, bool) {
	for _, c := range siblings {
		if matchesStep(c, s) {
			return c, siblings, true
		}
		if c.IsContainer() {
			if found, scope, ok := recursiveFindWithScope(c.Children, s); ok {
				return found, scope, true
			}
		}
	}
	return mdnode.Node{}, nil, false
}

func matchesStep(n mdnode.Node, s step) bool {
	if s.TableMode {
		if n.Kind != mdnode.KindTable {
			return false
		}
		return tokenMatches(tableTitle(n), s)
	}
	if n.Kind != mdnode.KindHeader {
		return false
	}
	return tokenMatches(n.Title, s)
}

// tableTitle treats a Table's identifying name as its header row's first
// cell — the same role a Header's Title plays for section lookup.
func tableTitle(n mdnode.Node) string {
	if n.RowSize() == 0 {
		return ""
	}
	return n.Cell(0, 0)
}

func tokenMatches(value string, s step) bool {
	switch s.Kind {
	case tokenBareword, tokenQuoted:
		return value == s.Literal
	case tokenRegex:
		return s.Pattern != nil && s.Pattern.MatchString(value)
	default:
		return true
	}
}

// applyIndex runs step 2: it broadcasts the step's index over every
// element of M independently, since M can hold more than one element when
// a preceding step expanded via "*".
func applyIndex(matched []mdnode.Node, s step) []mdnode.Node {
	if !s.HasIndex {
		return matched
	}

	var out []mdnode.Node
	for _, m := range matched {
		out = append(out, indexOne(m, s.Index)...)
	}
	return out
}

func indexOne(n mdnode.Node, idx string) []mdnode.Node {
	if n.Kind == mdnode.KindTable {
		if col, row, ok := splitCellIndex(idx); ok {
			if v := n.CellByName(col, row); v != "" || cellExists(n, col, row) {
				return []mdnode.Node{mdnode.NewParagraph(v)}
			}
			return nil
		}
	}

	if n.Kind == mdnode.KindTableRow {
		if idx == "*" {
			out := make([]mdnode.Node, len(n.Cells))
			for i, c := range n.Cells {
				out[i] = mdnode.NewParagraph(c)
			}
			return out
		}
		if i, ok := parseIndexInt(idx); ok {
			ri := resolveBroadcastIndex(i, len(n.Cells))
			if ri < 0 {
				return nil
			}
			return []mdnode.Node{mdnode.NewParagraph(n.Cells[ri])}
		}
		return nil
	}

	if !n.IsContainer() {
		return nil
	}
	if idx == "*" {
		return append([]mdnode.Node{}, n.Children...)
	}
	if i, ok := parseIndexInt(idx); ok {
		ri := resolveBroadcastIndex(i, len(n.Children))
		if ri < 0 {
			return nil
		}
		return []mdnode.Node{n.Children[ri]}
	}
	return nil
}

// splitCellIndex recognizes the "col,row" index form. A bare integer or
// "*" is never mistaken for it since column names never look like those.
func splitCellIndex(idx string) (col, row string, ok bool) {
	i := strings.IndexByte(idx, ',')
	if i < 0 {
		return "", "", false
	}
	return idx[:i], idx[i+1:], true
}

func cellExists(n mdnode.Node, col, row string) bool {
	return n.ColIndexOf(col) >= 0 && n.RowIndexOf(row) >= 0
}

func parseIndexInt(idx string) (int, bool) {
	i, err := strconv.Atoi(idx)
	if err != nil {
		return 0, false
	}
	return i, true
}

func resolveBroadcastIndex(i, size int) int {
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return -1
	}
	return i
}
