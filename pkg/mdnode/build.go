package mdnode

import (
	"strings"

	"github.com/yaklabco/markdoc/pkg/config"
)

const setextRuleWidth = 78

// CodeProcessor post-processes a Code node's body at serialization time
// (for example, JSON pretty-printing). Implementations must never panic on
// malformed input — on failure they should return body unchanged.
type CodeProcessor interface {
	Process(language, body string) string
}

// noopProcessor leaves Code bodies untouched. It is the default used when
// no processor is supplied, matching the "no codec provided" contract.
type noopProcessor struct{}

func (noopProcessor) Process(_, body string) string { return body }

type buildOptions struct {
	cfg       *config.FormatCfg
	processor CodeProcessor
}

// BuildOption configures a Build call.
type BuildOption func(*buildOptions)

// WithFormatCfg overrides the process-wide FormatCfg default for this call.
func WithFormatCfg(cfg *config.FormatCfg) BuildOption {
	return func(o *buildOptions) { o.cfg = cfg }
}

// WithCodeProcessor supplies the JSON codec capability described in the
// code-block post-processing contract. Without one, Code bodies are
// emitted unchanged.
func WithCodeProcessor(p CodeProcessor) BuildOption {
	return func(o *buildOptions) { o.processor = p }
}

// Build serializes n to Markdown text per the write-back contract: headers
// render as setext (levels 1-2) or atx (levels >= 3), tables are padded to
// column width, and code blocks are optionally post-processed through the
// injected CodeProcessor.
func Build(n Node, opts ...BuildOption) string {
	def := config.Default()
	o := buildOptions{cfg: &def, processor: noopProcessor{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfg == nil {
		def := config.Default()
		o.cfg = &def
	}

	var b strings.Builder
	buildInto(&b, n, &o)
	return b.String()
}

func buildInto(b *strings.Builder, n Node, o *buildOptions) {
	switch n.Kind {
	case KindDocument:
		buildChildren(b, n.Children, false, o)
	case KindHeader:
		emittedTitle := writeHeaderTitle(b, n, o)
		buildChildren(b, n.Children, emittedTitle, o)
	case KindParagraph:
		b.WriteString(strings.TrimSpace(n.Text))
		b.WriteByte('\n')
	case KindComment:
		b.WriteString("<!--")
		b.WriteString(n.Text)
		b.WriteString("-->\n")
	case KindCode:
		writeCode(b, n, o)
	case KindLinkRef:
		writeLinkRef(b, n)
	case KindTable:
		b.WriteString(n.formatTable())
	case KindTableRow:
		// Rows are only ever rendered through their owning Table.
	}
}

// buildChildren writes children separated by the default blank-line rule,
// suppressed between consecutive LinkRefs. hasPrev seeds whether something
// (e.g. a Header's own title line) was already written before this list,
// so the first child still gets a separating blank line in that case.
func buildChildren(b *strings.Builder, children []Node, hasPrev bool, o *buildOptions) {
	prevKind := KindDocument // arbitrary non-LinkRef sentinel
	for _, c := range children {
		if hasPrev && !(c.Kind == KindLinkRef && prevKind == KindLinkRef) {
			b.WriteByte('\n')
		}
		buildInto(b, c, o)
		hasPrev = true
		prevKind = c.Kind
	}
}

// writeHeaderTitle writes a Header's title line (if any) and reports
// whether one was written.
func writeHeaderTitle(b *strings.Builder, n Node, o *buildOptions) bool {
	if n.Level <= 0 {
		return false
	}

	atx := n.Level >= 3
	if o.cfg != nil && o.cfg.HeadingStyle == config.HeadingStyleATX {
		atx = true
	}

	if atx {
		b.WriteString(strings.Repeat("#", n.Level))
		b.WriteByte(' ')
		b.WriteString(n.Title)
		b.WriteByte('\n')
		return true
	}

	b.WriteString(n.Title)
	b.WriteByte('\n')
	rule := "="
	if n.Level == 2 {
		rule = "-"
	}
	b.WriteString(strings.Repeat(rule, setextRuleWidth))
	b.WriteByte('\n')
	return true
}

func writeCode(b *strings.Builder, n Node, o *buildOptions) {
	body := n.Body
	if o.processor != nil {
		body = o.processor.Process(n.Language, body)
	}

	b.WriteString("```")
	b.WriteString(n.Language)
	b.WriteByte('\n')
	b.WriteString(body)
	b.WriteString("```\n")
}

func writeLinkRef(b *strings.Builder, n Node) {
	b.WriteByte('[')
	b.WriteString(n.Ref)
	b.WriteString("]:")
	if n.URL != "" {
		b.WriteByte(' ')
		b.WriteString(n.URL)
	}
	if n.LinkTitle != "" {
		b.WriteString(` "`)
		b.WriteString(EscapeLinkTitle(n.LinkTitle))
		b.WriteString(`"`)
	}
	b.WriteByte('\n')
}

// EscapeLinkTitle escapes a LinkRef title for serialization: backslash
// first, then double quote.
func EscapeLinkTitle(title string) string {
	title = strings.ReplaceAll(title, `\`, `\\`)
	title = strings.ReplaceAll(title, `"`, `\"`)
	return title
}

// UnescapeLinkTitle reverses EscapeLinkTitle.
func UnescapeLinkTitle(title string) string {
	var b strings.Builder
	for i := 0; i < len(title); i++ {
		if title[i] == '\\' && i+1 < len(title) {
			i++
			b.WriteByte(title[i])
			continue
		}
		b.WriteByte(title[i])
	}
	return b.String()
}
