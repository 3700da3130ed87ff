package mdnode

import "testing"

func buildWalkFixture() Node {
	return NewDocument(
		NewHeader(1, "A",
			NewParagraph("a1"),
			NewHeader(2, "B", NewParagraph("b1")),
		),
		NewHeader(1, "C", NewParagraph("c1")),
	)
}

func TestWalkVisitsPreOrder(t *testing.T) {
	root := buildWalkFixture()

	var kinds []Kind
	Walk(root, func(n Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})

	want := []Kind{
		KindDocument, KindHeader, KindParagraph, KindHeader, KindParagraph,
		KindHeader, KindParagraph,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestWalkStopsEarly(t *testing.T) {
	root := buildWalkFixture()

	count := 0
	Walk(root, func(n Node) bool {
		count++
		return n.Kind != KindParagraph
	})

	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestFindAllByPredicate(t *testing.T) {
	root := buildWalkFixture()

	paragraphs := FindAll(root, func(n Node) bool { return n.Kind == KindParagraph })
	if len(paragraphs) != 3 {
		t.Fatalf("found %d paragraphs, want 3", len(paragraphs))
	}
}

func TestFindFirstReturnsFalseWhenAbsent(t *testing.T) {
	root := buildWalkFixture()

	_, ok := FindFirst(root, func(n Node) bool { return n.Kind == KindTable })
	if ok {
		t.Fatal("expected ok = false for absent kind")
	}
}

func TestFindByKind(t *testing.T) {
	root := buildWalkFixture()

	headers := FindByKind(root, KindHeader)
	if len(headers) != 3 {
		t.Fatalf("found %d headers, want 3", len(headers))
	}
	if headers[0].Title != "A" || headers[1].Title != "B" || headers[2].Title != "C" {
		t.Fatalf("unexpected header order: %+v", headers)
	}
}
