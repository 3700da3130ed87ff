package markdql

import (
	"regexp"
	"strings"
)

// tokenKind classifies what a step's token segment looked like.
type tokenKind int

const (
	tokenNone tokenKind = iota
	tokenBareword
	tokenQuoted
	tokenRegex
)

// step is one parsed `sep (token index? | index)` unit, plus whatever of
// the query string is left after it.
type step struct {
	Recursive bool
	TableMode bool

	Kind       tokenKind
	Literal    string         // unescaped value, for bareword/quoted
	Pattern    *regexp.Regexp // compiled value, for regex
	RegexErr   error          // set instead of Pattern when compilation fails

	HasIndex bool
	Index    string // raw, unescaped index content

	Remainder string
}

var (
	sepRe      = regexp.MustCompile(`^(\.\.|\.)?(\|)?`)
	quotedRe   = regexp.MustCompile(`^"((?:[^"\\]|\\.)*)"`)
	regexRe    = regexp.MustCompile(`^/((?:[^/\\]|\\.)*)/`)
	barewordRe = regexp.MustCompile(`^([^"/\[. |][^.|\[]*)`)
	indexRe    = regexp.MustCompile(`^\[([^\]]*)\]`)
)

// parseStep reads one step from the head of q. ok is false when q doesn't
// match the step grammar at all — the caller reports this as an
// UnrecognizedQueryError.
func parseStep(q string) (step, bool) {
	var s step

	m := sepRe.FindStringSubmatch(q)
	s.Recursive = m[1] == ".."
	s.TableMode = m[2] == "|"
	rest := q[len(m[0]):]

	switch {
	case strings.HasPrefix(rest, `"`):
		tm := quotedRe.FindStringSubmatch(rest)
		if tm == nil {
			return step{}, false
		}
		s.Kind = tokenQuoted
		s.Literal = unescapeDots(tm[1])
		rest = rest[len(tm[0]):]
	case strings.HasPrefix(rest, "/"):
		tm := regexRe.FindStringSubmatch(rest)
		if tm == nil {
			return step{}, false
		}
		pattern := unescapeDots(tm[1])
		s.Kind = tokenRegex
		s.Literal = pattern
		rest = rest[len(tm[0]):]
		if re, err := regexp.Compile(pattern); err != nil {
			s.RegexErr = err
		} else {
			s.Pattern = re
		}
	case strings.HasPrefix(rest, "["):
		// No token, index only.
	default:
		if tm := barewordRe.FindStringSubmatch(rest); tm != nil && tm[1] != "" {
			s.Kind = tokenBareword
			s.Literal = tm[1]
			rest = rest[len(tm[0]):]
		}
	}

	if im := indexRe.FindStringSubmatch(rest); im != nil {
		s.HasIndex = true
		content := im[1]
		if len(content) >= 2 && strings.HasPrefix(content, `"`) && strings.HasSuffix(content, `"`) {
			content = unescapeDots(content[1 : len(content)-1])
		}
		s.Index = content
		rest = rest[len(im[0]):]
	}

	if s.Kind == tokenNone && !s.HasIndex {
		// Every step other than the terminal bare "." carries a token, an
		// index, or both; the caller never calls parseStep on "." or "".
		return step{}, false
	}

	s.Remainder = rest
	return s, true
}

// unescapeDots applies the grammar's universal `\.` -> `.` unescape rule to
// quoted and regex token bodies.
func unescapeDots(raw string) string {
	return strings.ReplaceAll(raw, `\.`, `.`)
}
