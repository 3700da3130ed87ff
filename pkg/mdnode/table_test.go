package mdnode

import (
	"strings"
	"testing"
)

func sampleTable() Node {
	return NewTable(
		[]Align{AlignLeft, AlignRight},
		NewTableRow("Name", "Count"),
		NewTableRow("apples", "3"),
		NewTableRow("bananas", "12"),
	)
}

func TestTableSizesAndCellAccess(t *testing.T) {
	table := sampleTable()

	if table.ColSize() != 2 {
		t.Fatalf("ColSize() = %d, want 2", table.ColSize())
	}
	if table.RowSize() != 3 {
		t.Fatalf("RowSize() = %d, want 3", table.RowSize())
	}
	if got := table.Cell(0, 1); got != "apples" {
		t.Fatalf("Cell(0,1) = %q, want %q", got, "apples")
	}
	if got := table.Cell(-1, -1); got != "12" {
		t.Fatalf("Cell(-1,-1) = %q, want %q", got, "12")
	}
	if got := table.Cell(5, 0); got != "" {
		t.Fatalf("Cell(5,0) = %q, want empty", got)
	}
}

func TestTableLookupByName(t *testing.T) {
	table := sampleTable()

	if got := table.CellByName("Count", "bananas"); got != "12" {
		t.Fatalf("CellByName = %q, want %q", got, "12")
	}
	if got := table.CellByName("Missing", "bananas"); got != "" {
		t.Fatalf("CellByName(missing col) = %q, want empty", got)
	}
	if got := table.ColIndexOf("Count"); got != 1 {
		t.Fatalf("ColIndexOf(Count) = %d, want 1", got)
	}
	if got := table.RowIndexOf("apples"); got != 1 {
		t.Fatalf("RowIndexOf(apples) = %d, want 1", got)
	}
}

func TestTableUpdatedExistingCell(t *testing.T) {
	table := sampleTable()
	out := table.Updated(1, 1, "30")

	if got := out.Cell(1, 1); got != "30" {
		t.Fatalf("Cell(1,1) after Updated = %q, want %q", got, "30")
	}
	if got := table.Cell(1, 1); got != "3" {
		t.Fatalf("original table mutated: Cell(1,1) = %q", got)
	}
}

func TestTableUpdatedByNameInsertsColumnAndRow(t *testing.T) {
	table := sampleTable()
	out := table.UpdatedByName("Price", "cherries", "7")

	if out.ColIndexOf("Price") < 0 {
		t.Fatal("expected Price column to be inserted")
	}
	if out.RowIndexOf("cherries") < 0 {
		t.Fatal("expected cherries row to be inserted")
	}
	if got := out.CellByName("Price", "cherries"); got != "7" {
		t.Fatalf("CellByName(Price, cherries) = %q, want %q", got, "7")
	}
}

func TestFormatTableAlignment(t *testing.T) {
	table := sampleTable()
	out := table.formatTable()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header + separator + 2 rows), got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[1], "-:") {
		t.Fatalf("expected right-align marker in separator row, got %q", lines[1])
	}
}

func TestFormatTableExactBytes(t *testing.T) {
	table := sampleTable()
	got := table.formatTable()

	want := "| Name    | Count |\n" +
		"|---------|------:|\n" +
		"| apples  |     3 |\n" +
		"| bananas |    12 |\n"

	if got != want {
		t.Fatalf("formatTable() =\n%q\nwant\n%q", got, want)
	}
}
