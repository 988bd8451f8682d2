package path

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPushPop(t *testing.T) {
	p := NewAbsolute(Container("example", "a"))
	p = p.Push(Leaf("example", "b"))
	if len(p.Segments) != 2 {
		t.Fatalf("Push: got %d segments, want 2", len(p.Segments))
	}
	p = p.Pop()
	if len(p.Segments) != 1 {
		t.Fatalf("Pop: got %d segments, want 1", len(p.Segments))
	}
	// Popping an empty path is a no-op (§4.8 root idempotence).
	empty := NewAbsolute()
	if got := empty.Pop(); !got.Equal(empty) {
		t.Errorf("Pop on empty path mutated: %+v", got)
	}
}

func TestPushAll(t *testing.T) {
	base := NewAbsolute(Container("example", "a"))
	got := base.PushAll([]Segment{Leaf("example", "b"), Leaf("example", "c")})
	want := NewAbsolute(Container("example", "a"), Leaf("example", "b"), Leaf("example", "c"))
	if !got.Equal(want) {
		t.Errorf("PushAll = %+v, want %+v", got, want)
	}
}

func TestSchemaPath(t *testing.T) {
	data := NewAbsolute(
		ListElement("example", "list", KeyInstance{{Name: "number", Value: LeafValue{Kind: LVInt32, Int: 1}}}),
		LeafListElement("example", "leaflist", LeafValue{Kind: LVString, Str: "abc"}),
	)
	got := data.SchemaPath()
	if !got.IsSchemaPath() {
		t.Fatalf("SchemaPath result is not itself a schema path: %+v", got)
	}
	want := NewAbsolute(List("example", "list"), LeafList("example", "leaflist"))
	if !got.Equal(want) {
		t.Errorf("SchemaPath = %+v, want %+v", got, want)
	}
}

func TestEqualDistinguishesKeyValues(t *testing.T) {
	a := NewAbsolute(ListElement("m", "l", KeyInstance{{Name: "k", Value: LeafValue{Kind: LVInt32, Int: 1}}}))
	b := NewAbsolute(ListElement("m", "l", KeyInstance{{Name: "k", Value: LeafValue{Kind: LVInt32, Int: 2}}}))
	if a.Equal(b) {
		t.Errorf("paths with different key values compared equal")
	}
	if diff := cmp.Diff(a, a); diff != "" {
		t.Errorf("identical path not equal to itself: %s", diff)
	}
}
