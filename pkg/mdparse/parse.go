// Package mdparse turns raw Markdown text into an mdnode.Node tree. The
// pipeline is four narrow passes — structural segmentation, header
// extraction, table refinement, treeification — followed by an
// organization pass that fixes child ordering within every Header.
package mdparse

import (
	"github.com/yaklabco/markdoc/pkg/linkref"
	"github.com/yaklabco/markdoc/pkg/mdnode"
)

// Options configures a single Parse call.
type Options struct {
	// SortLinkRefs, when true, deduplicates LinkRefs by label (last
	// occurrence wins) and sorts them lexicographically within each
	// Header. When false, LinkRefs keep their original order and
	// duplicates are preserved.
	SortLinkRefs bool
}

// DefaultOptions returns the Options a caller should start from absent
// any explicit override: link references are canonicalized by default.
func DefaultOptions() Options {
	return Options{SortLinkRefs: true}
}

// Parse converts raw Markdown text into a Document tree.
func Parse(input string, opts Options) mdnode.Node {
	flat := segment(input)

	expanded := make([]mdnode.Node, 0, len(flat))
	for _, n := range flat {
		if n.Kind == mdnode.KindParagraph {
			expanded = append(expanded, extractHeaders(n.Text)...)
			continue
		}
		expanded = append(expanded, n)
	}

	refined := refineTables(expanded)

	root, _ := treeify(refined, 0, 0, "")
	root = organize(root, opts.SortLinkRefs, linkref.Canonicalize)

	return mdnode.NewDocument(root.Children...)
}
