// Package mdnode defines the Markdown node tree: the tagged variants that
// make up a parsed document, their containment rules, and the write-back
// serialization contract. Nodes are value types — every mutation returns a
// new Node with updated children; nothing here holds shared mutable state.
package mdnode

import "github.com/yaklabco/markdoc/pkg/langdetect"

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind classifies which Markdown construct a Node represents.
type Kind uint8

const (
	// KindDocument is the invisible top-level container. Every parsed tree
	// has one as its root, however many top-level headers the text has.
	KindDocument Kind = iota

	// KindHeader is a section with a level in [0,9] and a title. Level 0 is
	// reserved for the synthetic root produced during treeification.
	KindHeader

	// KindParagraph is a trimmed text blob.
	KindParagraph

	// KindComment is a raw HTML-style comment body.
	KindComment

	// KindCode is a fenced code block.
	KindCode

	// KindLinkRef is a `[ref]: url "title"` reference definition.
	KindLinkRef

	// KindTable is a column-aligned grid of TableRow children.
	KindTable

	// KindTableRow is an ordered sequence of cell strings. TableRows are
	// leaves: their cells are strings, not Nodes.
	KindTableRow
)

// Align is a table column's alignment.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Node is a tagged variant for every Markdown construct this library
// understands. Only the fields relevant to Kind are meaningful; the rest
// are zero. This mirrors a sum type: callers switch on Kind and read the
// fields documented for that Kind.
type Node struct {
	Kind Kind

	// Children holds the ordered child sequence for Document, Header, and
	// Table (whose children are TableRow nodes). Nil/empty for leaves.
	Children []Node

	// Level is the Header level, 0-9. Meaningful only for KindHeader.
	Level int

	// Title is the Header title. Meaningful only for KindHeader.
	Title string

	// Text holds the Paragraph body (KindParagraph) or the raw comment
	// body without delimiters (KindComment).
	Text string

	// Language is the Code fence's info string. Meaningful only for KindCode.
	Language string

	// Body is the Code block content, always ending in a single "\n".
	// Meaningful only for KindCode.
	Body string

	// Ref is the LinkRef label. Meaningful only for KindLinkRef.
	Ref string

	// URL is the LinkRef destination, or "" if absent.
	// Meaningful only for KindLinkRef.
	URL string

	// LinkTitle is the LinkRef title, or "" if absent.
	// Meaningful only for KindLinkRef.
	LinkTitle string

	// Aligns holds one alignment per column. Meaningful only for KindTable;
	// len(Aligns) is the table's column count.
	Aligns []Align

	// Cells holds the ordered cell strings of a table row.
	// Meaningful only for KindTableRow.
	Cells []string
}

// IsContainer reports whether n can hold children: Document, Header, Table.
func (n Node) IsContainer() bool {
	switch n.Kind {
	case KindDocument, KindHeader, KindTable:
		return true
	default:
		return false
	}
}

// withChildren returns a copy of n with Children replaced.
func (n Node) withChildren(children []Node) Node {
	n.Children = children
	return n
}

// WithChildren returns a copy of n with Children replaced. Exported for
// callers (such as the document parser's organization pass) that build a
// Container's children independently of the container operations in
// container.go.
func (n Node) WithChildren(children []Node) Node {
	return n.withChildren(children)
}

// NewDocument creates an (invisible) Document container.
func NewDocument(children ...Node) Node {
	return Node{Kind: KindDocument, Children: append([]Node{}, children...)}
}

// NewHeader creates a Header at the given level with the given children.
func NewHeader(level int, title string, children ...Node) Node {
	return Node{Kind: KindHeader, Level: level, Title: title, Children: append([]Node{}, children...)}
}

// NewParagraph creates a Paragraph from already-trimmed text.
func NewParagraph(text string) Node {
	return Node{Kind: KindParagraph, Text: text}
}

// NewComment creates a Comment from a raw body (without <!-- / -->).
func NewComment(body string) Node {
	return Node{Kind: KindComment, Text: body}
}

// NewCode creates a Code block. body should end with a single "\n".
func NewCode(language, body string) Node {
	return Node{Kind: KindCode, Language: language, Body: body}
}

// WithDetectedLanguage returns a copy of n with Language backfilled via
// langdetect.Suggest when n is a Code fence with no language tag. Nodes
// that are not Code, or that already carry a language, are returned
// unchanged.
func (n Node) WithDetectedLanguage() Node {
	if n.Kind != KindCode || n.Language != "" {
		return n
	}
	n.Language = langdetect.Suggest([]byte(n.Body))
	return n
}

// NewLinkRef creates a LinkRef definition.
func NewLinkRef(ref, url, title string) Node {
	return Node{Kind: KindLinkRef, Ref: ref, URL: url, LinkTitle: title}
}

// NewTable creates a Table with the given column alignments and rows.
func NewTable(aligns []Align, rows ...Node) Node {
	return Node{Kind: KindTable, Aligns: append([]Align{}, aligns...), Children: append([]Node{}, rows...)}
}

// NewTableRow creates a TableRow from cell strings.
func NewTableRow(cells ...string) Node {
	return Node{Kind: KindTableRow, Cells: append([]string{}, cells...)}
}
