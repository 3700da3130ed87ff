// Package linkref parses and canonicalizes `[ref]: url "title"` reference
// definition lines.
package linkref

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yaklabco/markdoc/pkg/mdnode"
)

var lineGrammar = regexp.MustCompile(`^\[([^\]]+)\]:\s*([^"\s][^"]*?)?\s*(?:"((?:[^"\\]|\\.)*)")?\s*$`)

// Parse interprets a single line as a LinkRef definition. It returns the
// parsed Node and true on success, or an empty Node and false if the line
// does not match the grammar.
func Parse(line string) (mdnode.Node, bool) {
	m := lineGrammar.FindStringSubmatch(line)
	if m == nil {
		return mdnode.Node{}, false
	}

	ref := m[1]
	url := strings.TrimRight(strings.TrimSpace(m[2]), " \t")
	title := unescapeTitle(m[3])

	return mdnode.NewLinkRef(ref, url, title), true
}

func unescapeTitle(raw string) string {
	if raw == "" {
		return ""
	}
	return mdnode.UnescapeLinkTitle(raw)
}

// Canonicalize applies the sortLinkRefs policy to a flat sequence of
// LinkRef nodes: when sort is true, entries are deduplicated by Ref (last
// occurrence wins) and sorted lexicographically by Ref; when false, the
// original order and duplicates are preserved verbatim.
func Canonicalize(refs []mdnode.Node, sortRefs bool) []mdnode.Node {
	if !sortRefs {
		return refs
	}

	byRef := make(map[string]mdnode.Node, len(refs))
	order := make([]string, 0, len(refs))
	for _, r := range refs {
		if _, seen := byRef[r.Ref]; !seen {
			order = append(order, r.Ref)
		}
		byRef[r.Ref] = r
	}

	sort.Strings(order)

	out := make([]mdnode.Node, 0, len(order))
	for _, ref := range order {
		out = append(out, byRef[ref])
	}
	return out
}
