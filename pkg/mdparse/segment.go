package mdparse

import (
	"regexp"
	"strings"

	"github.com/yaklabco/markdoc/pkg/linkref"
	"github.com/yaklabco/markdoc/pkg/mdnode"
)

// Go's regexp package (RE2) has no lookahead, so the structural segmenter
// can't be written as the single alternation a backtracking engine would
// use. Instead each construct is recognized by testing an anchored pattern
// against the unconsumed suffix of the input, and a paragraph run is ended
// by scanning forward for the first position where one of those patterns
// would fire.
var (
	commentAt = regexp.MustCompile(`\A<!--[\s\S]*?-->`)
	fenceAt   = regexp.MustCompile("\\A```([^`\\n]*)\\n([\\s\\S]*?)\\n```[ \\t]*(?:\\n|\\z)")
	refLineAt = regexp.MustCompile(`\A\[[^\]]+\]:[^\n]*(?:\n|\z)`)
)

// segment runs pass 1: it turns raw input into a flat stream of tentative
// Comment, Code, LinkRef, and Paragraph nodes.
func segment(input string) []mdnode.Node {
	var out []mdnode.Node
	pos := 0

	for pos < len(input) {
		if m := commentAt.FindStringIndex(input[pos:]); m != nil {
			body := input[pos+4 : pos+m[1]-3]
			out = append(out, mdnode.NewComment(body))
			pos += m[1]
			continue
		}

		if atLineStart(input, pos) {
			if m := fenceAt.FindStringSubmatchIndex(input[pos:]); m != nil {
				lang := input[pos+m[2] : pos+m[3]]
				body := input[pos+m[4] : pos+m[5]]
				out = append(out, mdnode.NewCode(strings.TrimSpace(lang), body+"\n"))
				pos += m[1]
				continue
			}

			if m := refLineAt.FindStringIndex(input[pos:]); m != nil {
				line := strings.TrimRight(input[pos:pos+m[1]], "\n")
				pos += m[1]
				if ref, ok := linkref.Parse(line); ok {
					out = append(out, ref)
				}
				continue
			}
		}

		end := nextBreak(input, pos)
		text := strings.TrimSpace(input[pos:end])
		if text != "" {
			out = append(out, mdnode.NewParagraph(text))
		}
		pos = end
		pos = skipBlankLine(input, pos)
	}

	return out
}

// nextBreak scans forward from pos (a paragraph run's start) for the
// earliest position at or after pos+1 where a comment, a start-of-line
// fence, a start-of-line link-ref line, or a blank line begins. It never
// returns pos itself, so a one-character paragraph always makes progress.
func nextBreak(input string, pos int) int {
	for i := pos + 1; i < len(input); i++ {
		if commentAt.MatchString(input[i:]) {
			return i
		}
		if atLineStart(input, i) {
			if fenceAt.MatchString(input[i:]) || refLineAt.MatchString(input[i:]) || isBlankLineAt(input, i) {
				return i
			}
		}
	}
	return len(input)
}

func atLineStart(input string, pos int) bool {
	return pos == 0 || input[pos-1] == '\n'
}

func isBlankLineAt(input string, pos int) bool {
	if pos >= len(input) {
		return true
	}
	i := pos
	for i < len(input) && (input[i] == ' ' || input[i] == '\t') {
		i++
	}
	return i >= len(input) || input[i] == '\n'
}

// skipBlankLine consumes a single blank line (if one starts at pos) so the
// next paragraph run doesn't re-trigger on it.
func skipBlankLine(input string, pos int) int {
	if pos >= len(input) {
		return pos
	}
	i := pos
	for i < len(input) && (input[i] == ' ' || input[i] == '\t') {
		i++
	}
	if i < len(input) && input[i] == '\n' {
		return i + 1
	}
	return pos
}
