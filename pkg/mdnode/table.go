package mdnode

import "strings"

// ColSize returns the table's column count (len(Aligns)). Meaningful only
// for KindTable.
func (n Node) ColSize() int {
	return len(n.Aligns)
}

// RowSize returns the table's row count, header row included.
func (n Node) RowSize() int {
	return len(n.Children)
}

// Row returns the row at index i. Negative or out-of-range indices (per
// the usual negative-indexing rule, -1 is the last row) yield an empty
// TableRow rather than an error.
func (n Node) Row(i int) Node {
	rows := n.Children
	idx := resolveIndex(i, len(rows))
	if idx < 0 {
		return NewTableRow()
	}
	return rows[idx]
}

// RowByName returns the first row whose head cell (cells[0]) equals name,
// searching the header row and all data rows. Not-found yields an empty
// TableRow.
func (n Node) RowByName(name string) Node {
	for _, r := range n.Children {
		if len(r.Cells) > 0 && r.Cells[0] == name {
			return r
		}
	}
	return NewTableRow()
}

// ColIndexOf returns the column index whose header-row cell equals name,
// or -1 if none does.
func (n Node) ColIndexOf(name string) int {
	if len(n.Children) == 0 {
		return -1
	}
	header := n.Children[0]
	for i, c := range header.Cells {
		if c == name {
			return i
		}
	}
	return -1
}

// RowIndexOf returns the index of the first row whose head cell equals
// name, or -1 if none does.
func (n Node) RowIndexOf(name string) int {
	for i, r := range n.Children {
		if len(r.Cells) > 0 && r.Cells[0] == name {
			return i
		}
	}
	return -1
}

// Cell returns the cell at (col, row) by integer index. Any out-of-range
// position yields "" — there is no distinction between an empty cell and
// a missing one.
func (n Node) Cell(col, row int) string {
	r := n.Row(row)
	idx := resolveIndex(col, len(r.Cells))
	if idx < 0 {
		return ""
	}
	return r.Cells[idx]
}

// CellByRowName is Cell addressed by column index and row head-cell name.
func (n Node) CellByRowName(col int, rowName string) string {
	return n.Cell(col, n.RowIndexOf(rowName))
}

// CellByName is Cell addressed by column header name and row head-cell
// name. Lookup is column-first: colName resolves against the header row.
func (n Node) CellByName(colName, rowName string) string {
	col := n.ColIndexOf(colName)
	if col < 0 {
		return ""
	}
	return n.CellByRowName(col, rowName)
}

// resolveIndex applies the negative-indexing rule (-1 is the last
// element) and reports -1 if the resolved position is out of range.
func resolveIndex(i, size int) int {
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return -1
	}
	return i
}

// Updated returns a new Table with the cell at (col, row) set to value.
// Row 0 is the header row: aligns is padded with LEFT to at least col+1.
// The target row is padded with empty cells to col+1, value assigned,
// then trailing empty cells trimmed. Rows are inserted (blank) if row is
// past the current row count.
func (n Node) Updated(col, row int, value string) Node {
	aligns := append([]Align{}, n.Aligns...)
	if row == 0 {
		for len(aligns) <= col {
			aligns = append(aligns, AlignLeft)
		}
	}

	rows := append([]Node{}, n.Children...)
	for len(rows) <= row {
		rows = append(rows, NewTableRow())
	}

	target := rows[row]
	cells := append([]string{}, target.Cells...)
	for len(cells) <= col {
		cells = append(cells, "")
	}
	cells[col] = value

	for len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	rows[row] = NewTableRow(cells...)

	out := n
	out.Aligns = aligns
	out = out.withChildren(rows)
	return out
}

// UpdatedByName is Updated addressed by column header name and row
// head-cell name, inserting a new header cell (and thus a new column)
// when colName does not already exist, and a new row when rowName does
// not exist.
func (n Node) UpdatedByName(colName, rowName, value string) Node {
	col := n.ColIndexOf(colName)
	if col < 0 {
		header := n.Row(0)
		col = len(header.Cells)
		n = n.Updated(col, 0, colName)
	}

	row := n.RowIndexOf(rowName)
	if row < 0 {
		row = n.RowSize()
		n = n.Updated(0, row, rowName)
	}

	return n.Updated(col, row, value)
}

func colWidth(rows []Node, col int) int {
	width := 1
	for _, r := range rows {
		if col < len(r.Cells) && len(r.Cells[col]) > width {
			width = len(r.Cells[col])
		}
	}
	return width
}

// formatTable renders a Table per the write-back contract: column widths
// padded per alignment, a dash-and-colon separator row after the header,
// and ragged overflow cells appended unpadded past the aligned grid.
func (n Node) formatTable() string {
	colSize := len(n.Aligns)
	widths := make([]int, colSize)
	for c := 0; c < colSize; c++ {
		widths[c] = colWidth(n.Children, c)
	}

	var b strings.Builder
	for i, row := range n.Children {
		writeTableRow(&b, row.Cells, n.Aligns, widths)
		b.WriteByte('\n')
		if i == 0 {
			writeAlignRow(&b, n.Aligns, widths)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func writeTableRow(b *strings.Builder, cells []string, aligns []Align, widths []int) {
	b.WriteByte('|')
	for c := 0; c < len(widths); c++ {
		cell := ""
		if c < len(cells) {
			cell = cells[c]
		}
		b.WriteByte(' ')
		b.WriteString(padCell(cell, widths[c], alignOf(aligns, c)))
		b.WriteString(" |")
	}
	for c := len(widths); c < len(cells); c++ {
		b.WriteString(" ")
		b.WriteString(cells[c])
		b.WriteString(" |")
	}
}

func alignOf(aligns []Align, col int) Align {
	if col < len(aligns) {
		return aligns[col]
	}
	return AlignLeft
}

func padCell(cell string, width int, align Align) string {
	pad := width - len(cell)
	if pad <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + cell
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", right)
	default:
		return cell + strings.Repeat(" ", pad)
	}
}

// writeAlignRow writes the separator row: a run of width+2 dashes per
// column, with ":" markers substituted at the edges per alignment. Unlike
// data rows, no extra padding space is added — the run already accounts
// for the space a data cell gets on each side.
func writeAlignRow(b *strings.Builder, aligns []Align, widths []int) {
	b.WriteByte('|')
	for c, width := range widths {
		b.WriteString(alignMarker(alignOf(aligns, c), width))
		b.WriteByte('|')
	}
}

func alignMarker(align Align, width int) string {
	switch align {
	case AlignCenter:
		return ":" + strings.Repeat("-", width) + ":"
	case AlignRight:
		return strings.Repeat("-", width+1) + ":"
	default:
		return strings.Repeat("-", width+2)
	}
}
