package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/markdoc/pkg/mdnode"
)

const previewMaxLen = 72

// FormatMatch formats a single query match for terminal output:
// index, kind, and a short preview of its content.
func (s *Styles) FormatMatch(index int, n mdnode.Node) string {
	return fmt.Sprintf("%s %s %s\n",
		s.Index.Render(fmt.Sprintf("[%d]", index)),
		s.Kind.Render(kindLabel(n.Kind)),
		s.Preview.Render(preview(n)),
	)
}

// FormatMatches formats a full candidate set, one line per match, or a
// dimmed "no matches" line when the set is empty.
func (s *Styles) FormatMatches(matches []mdnode.Node) string {
	if len(matches) == 0 {
		return s.Dim.Render("no matches") + "\n"
	}

	var b strings.Builder
	for i, n := range matches {
		b.WriteString(s.FormatMatch(i, n))
	}
	return b.String()
}

func kindLabel(k mdnode.Kind) string {
	switch k {
	case mdnode.KindDocument:
		return "Document"
	case mdnode.KindHeader:
		return "Header"
	case mdnode.KindParagraph:
		return "Paragraph"
	case mdnode.KindComment:
		return "Comment"
	case mdnode.KindCode:
		return "Code"
	case mdnode.KindLinkRef:
		return "LinkRef"
	case mdnode.KindTable:
		return "Table"
	case mdnode.KindTableRow:
		return "TableRow"
	default:
		return "Unknown"
	}
}

func preview(n mdnode.Node) string {
	var text string
	switch n.Kind {
	case mdnode.KindHeader:
		text = n.Title
	case mdnode.KindParagraph, mdnode.KindComment:
		text = n.Text
	case mdnode.KindCode:
		text = n.Language
	case mdnode.KindLinkRef:
		text = n.Ref + " -> " + n.URL
	case mdnode.KindTable:
		text = fmt.Sprintf("%d cols x %d rows", n.ColSize(), n.RowSize())
	case mdnode.KindTableRow:
		text = strings.Join(n.Cells, " | ")
	case mdnode.KindDocument:
		text = fmt.Sprintf("%d children", len(n.Children))
	}

	text = strings.ReplaceAll(text, "\n", " ")
	if len(text) > previewMaxLen {
		text = text[:previewMaxLen-1] + "…"
	}
	return text
}
