// Package mdtable parses a paragraph's raw text as a pipe-delimited table,
// producing an mdnode.Table value. Cell access, update, and serialization
// are methods on mdnode.Node itself — this package is concerned only with
// recognizing table-hood in free text.
package mdtable

import (
	"regexp"
	"strings"

	"github.com/yaklabco/markdoc/pkg/mdnode"
)

var alignRowCell = regexp.MustCompile(`^\s*(:-+:|---+|:--+|-+-:|-+:)\s*$`)

// Parse attempts to interpret text as a table. It returns the parsed
// Table and true on success, or an empty Node and false when text does
// not refine to a table (too few lines, or the second line is not a
// valid alignment row).
func Parse(text string) (mdnode.Node, bool) {
	rawLines := strings.Split(text, "\n")
	lines := make([][]string, 0, len(rawLines))
	for _, l := range rawLines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, splitCells(l))
	}

	if len(lines) < 2 {
		return mdnode.Node{}, false
	}

	if len(lines[1]) > 0 && lines[1][0] == "" {
		for i, cells := range lines {
			if len(cells) > 0 && cells[0] == "" {
				lines[i] = cells[1:]
			}
		}
	}

	aligns := make([]mdnode.Align, 0, len(lines[1]))
	for _, cell := range lines[1] {
		align, ok := classifyAlign(cell)
		if !ok {
			return mdnode.Node{}, false
		}
		aligns = append(aligns, align)
	}
	if len(aligns) < len(lines[1]) {
		return mdnode.Node{}, false
	}

	rows := make([]mdnode.Node, 0, len(lines)-1)
	rows = append(rows, trimmedRow(lines[0]))
	for _, cells := range lines[2:] {
		rows = append(rows, trimmedRow(cells))
	}

	return mdnode.NewTable(aligns, rows...), true
}

func trimmedRow(cells []string) mdnode.Node {
	trimmed := make([]string, len(cells))
	for i, c := range cells {
		trimmed[i] = strings.TrimSpace(c)
	}
	return mdnode.NewTableRow(trimmed...)
}

func classifyAlign(cell string) (mdnode.Align, bool) {
	if !alignRowCell.MatchString(cell) {
		return 0, false
	}
	trimmed := strings.TrimSpace(cell)
	leftColon := strings.HasPrefix(trimmed, ":")
	rightColon := strings.HasSuffix(trimmed, ":")
	switch {
	case leftColon && rightColon:
		return mdnode.AlignCenter, true
	case rightColon:
		return mdnode.AlignRight, true
	default:
		return mdnode.AlignLeft, true
	}
}

// splitCells tokenizes a line into raw cells by splitting on "|" that is
// not preceded by "\". Only a trailing all-whitespace cell is dropped;
// empty cells elsewhere (including a leading one) are preserved.
func splitCells(line string) []string {
	var cells []string
	var cur strings.Builder
	escaped := false

	for _, r := range line {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\':
			cur.WriteRune(r)
			escaped = true
		case r == '|':
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	cells = append(cells, cur.String())

	if n := len(cells); n > 0 && strings.TrimSpace(cells[n-1]) == "" {
		cells = cells[:n-1]
	}

	return cells
}
