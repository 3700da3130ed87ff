// Package markdql implements the MarkdQL path query language: a small
// stepwise walk over an mdnode.Node tree, expressed as dot/pipe-separated
// header and table lookups with trailing bracket indices.
package markdql

import "github.com/yaklabco/markdoc/pkg/mdnode"

// Query evaluates expr against root and returns the resulting candidate
// set. It never returns an error except UnrecognizedQueryError (the
// remainder didn't match the step grammar) or InvalidRegexError (a
// /regex/ token failed to compile) — every other pathological case
// (out-of-range indices, empty matches) yields an empty slice.
func Query(expr string, root mdnode.Node) ([]mdnode.Node, error) {
	candidates := []mdnode.Node{root}
	remaining := expr

	for {
		if len(candidates) == 0 || remaining == "" || remaining == "." {
			return candidates, nil
		}

		s, ok := parseStep(remaining)
		if !ok {
			return nil, UnrecognizedQueryError{Query: expr}
		}
		if s.Kind == tokenRegex && s.RegexErr != nil {
			return nil, InvalidRegexError{Pattern: s.Literal, Err: s.RegexErr}
		}

		candidates = applyIndex(firstMatch(candidates, s), s)
		remaining = s.Remainder
	}
}
