package static

import (
	"context"
	"testing"

	"github.com/danos/ncli/pkg/path"
)

func TestListInstancesReturnsRegisteredSet(t *testing.T) {
	f := New()
	p := path.NewAbsolute(path.List("example", "twoKeyList"))
	want := []path.KeyInstance{
		{{Name: "name", Value: path.LeafValue{Kind: path.LVString, Str: "Petr"}}},
		{{Name: "name", Value: path.LeafValue{Kind: path.LVString, Str: "Honza"}}},
	}
	f.Set(p, want)

	got, err := f.ListInstances(context.Background(), p)
	if err != nil {
		t.Fatalf("ListInstances: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("ListInstances = %+v, want %+v", got, want)
	}
}

func TestListInstancesUnknownListIsEmpty(t *testing.T) {
	f := New()
	got, err := f.ListInstances(context.Background(), path.NewAbsolute(path.List("example", "nope")))
	if err != nil {
		t.Fatalf("ListInstances: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ListInstances(unregistered) = %+v, want empty", got)
	}
}
