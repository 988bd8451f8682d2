package complete

import (
	"testing"

	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema/static"
)

func newCtx() *parsectx.Context {
	s := static.New("example")
	return parsectx.New(s, nil, path.NewAbsolute())
}

func runWith(anchor int, entries []parsectx.Entry) Runner {
	return func(ctx *parsectx.Context, line string) bool {
		ctx.PublishSuggestions(anchor, entries)
		return true
	}
}

func TestRunAppendsSuffixForAddAlwaysSurvivor(t *testing.T) {
	ctx := newCtx()
	entries := []parsectx.Entry{
		{Value: "foo", Suffix: "/", WhenToAdd: parsectx.AddAlways},
		{Value: "bar", Suffix: "/", WhenToAdd: parsectx.AddAlways},
	}
	res := Run(ctx, "fo", runWith(0, entries))
	if len(res.Entries) != 1 || res.Entries[0].Value != "foo" {
		t.Fatalf("Entries = %+v, want just foo", res.Entries)
	}
	if res.Append != "/" {
		t.Errorf("Append = %q, want \"/\"", res.Append)
	}
	if res.ContextLength != 2 {
		t.Errorf("ContextLength = %d, want 2", res.ContextLength)
	}
}

// §9 Open Question 1 decision: an AddIfFullMatch candidate only gets its
// suffix appended when the typed prefix is an exact match, not merely the
// unique survivor.
func TestRunAddIfFullMatchRequiresExactMatch(t *testing.T) {
	ctx := newCtx()
	entries := []parsectx.Entry{{Value: "list", Suffix: "[", WhenToAdd: parsectx.AddIfFullMatch}}

	partial := Run(ctx, "li", runWith(0, entries))
	if len(partial.Entries) != 1 || partial.Append != "" {
		t.Errorf("partial prefix: Append = %q, want empty (not yet a full match)", partial.Append)
	}

	ctx = newCtx()
	full := Run(ctx, "list", runWith(0, entries))
	if full.Append != "[" {
		t.Errorf("full match: Append = %q, want \"[\"", full.Append)
	}
}

func TestRunNoAppendWhenMultipleSurvivors(t *testing.T) {
	ctx := newCtx()
	entries := []parsectx.Entry{
		{Value: "list", Suffix: "[", WhenToAdd: parsectx.AddAlways},
		{Value: "listTwo", Suffix: "[", WhenToAdd: parsectx.AddAlways},
	}
	res := Run(ctx, "list", runWith(0, entries))
	if len(res.Entries) != 2 {
		t.Fatalf("Entries = %+v, want 2 survivors", res.Entries)
	}
	if res.Append != "" {
		t.Errorf("Append = %q, want empty with more than one survivor", res.Append)
	}
}

func TestRunNaturalSortOrdering(t *testing.T) {
	ctx := newCtx()
	entries := []parsectx.Entry{
		{Value: "leaf10", WhenToAdd: parsectx.AddAlways},
		{Value: "leaf2", WhenToAdd: parsectx.AddAlways},
		{Value: "leaf1", WhenToAdd: parsectx.AddAlways},
	}
	res := Run(ctx, "leaf", runWith(0, entries))
	var got []string
	for _, e := range res.Entries {
		got = append(got, e.Value)
	}
	want := []string{"leaf1", "leaf2", "leaf10"}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestRunDedup(t *testing.T) {
	ctx := newCtx()
	entries := []parsectx.Entry{
		{Value: "foo", Suffix: " ", WhenToAdd: parsectx.AddAlways},
		{Value: "foo", Suffix: " ", WhenToAdd: parsectx.AddAlways},
	}
	res := Run(ctx, "", runWith(0, entries))
	if len(res.Entries) != 1 {
		t.Errorf("Entries = %+v, want a single deduplicated foo", res.Entries)
	}
}

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"leaf1", "leaf2", true},
		{"leaf2", "leaf10", true},
		{"leaf10", "leaf2", false},
		{"abc", "abd", true},
	}
	for _, c := range cases {
		if got := NaturalLess(c.a, c.b); got != c.want {
			t.Errorf("NaturalLess(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
