package mdparse

import (
	"regexp"
	"strings"

	"github.com/yaklabco/markdoc/pkg/mdnode"
)

var (
	setextEquals = regexp.MustCompile(`^=+[ \t]*$`)
	setextDashes = regexp.MustCompile(`^-+[ \t]*$`)
	atxHeading   = regexp.MustCompile(`^(#{1,9})[ \t]+(.+?)[ \t]*$`)
)

// extractHeaders runs pass 2 against one Paragraph's text: it splits the
// text at setext and atx header boundaries and returns the flat
// [Paragraph?, Header, Paragraph?, Header, ...] sequence that replaces the
// original node in the stream.
func extractHeaders(text string) []mdnode.Node {
	lines := strings.Split(text, "\n")
	var out []mdnode.Node

	flush := func(seg []string) {
		joined := strings.TrimSpace(strings.Join(seg, "\n"))
		if joined != "" {
			out = append(out, mdnode.NewParagraph(joined))
		}
	}

	segStart := 0
	i := 0
	for i < len(lines) {
		title := strings.TrimSpace(lines[i])

		if title != "" && i+1 < len(lines) && setextEquals.MatchString(lines[i+1]) {
			flush(lines[segStart:i])
			out = append(out, mdnode.NewHeader(1, title))
			i += 2
			segStart = i
			continue
		}

		if title != "" && i+1 < len(lines) && setextDashes.MatchString(lines[i+1]) {
			flush(lines[segStart:i])
			out = append(out, mdnode.NewHeader(2, title))
			i += 2
			segStart = i
			continue
		}

		if m := atxHeading.FindStringSubmatch(lines[i]); m != nil {
			flush(lines[segStart:i])
			out = append(out, mdnode.NewHeader(len(m[1]), m[2]))
			i++
			segStart = i
			continue
		}

		i++
	}
	flush(lines[segStart:])

	return out
}
