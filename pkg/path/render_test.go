package path

import "testing"

func TestRenderLeafValueQuoting(t *testing.T) {
	cases := []struct {
		name string
		v    LeafValue
		want string
	}{
		{"plain string", LeafValue{Kind: LVString, Str: "abc"}, "'abc'"},
		{"string with single quote uses double quotes", LeafValue{Kind: LVString, Str: "it's"}, `"it's"`},
		{"bool true unquoted", LeafValue{Kind: LVBool, Bool: true}, "true"},
		{"int unquoted", LeafValue{Kind: LVInt32, Int: -5}, "-5"},
		{"enum unquoted", LeafValue{Kind: LVEnum, Enum: "up"}, "up"},
		{"identityref unquoted", LeafValue{Kind: LVIdentityRef, Identity: NodeID{Prefix: "example", Local: "foo"}}, "example:foo"},
		{"empty renders empty string", LeafValue{Kind: LVEmpty}, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := RenderLeafValue(c.v); got != c.want {
				t.Errorf("RenderLeafValue(%+v) = %q, want %q", c.v, got, c.want)
			}
		})
	}
}

func TestRenderDecimal64(t *testing.T) {
	cases := []struct {
		d    Decimal64
		want string
	}{
		{Decimal64{Mantissa: 1234, FractionDigits: 2}, "12.34"},
		{Decimal64{Mantissa: -5, FractionDigits: 2}, "-0.05"},
		{Decimal64{Mantissa: 100, FractionDigits: 0}, "100"},
	}
	for _, c := range cases {
		got := RenderLeafValue(LeafValue{Kind: LVDecimal64, Decimal: c.d})
		if got != c.want {
			t.Errorf("renderDecimal64(%+v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestRenderPrefixPolicy(t *testing.T) {
	p := NewAbsolute(Container("example", "a"), Leaf("example", "b"), Leaf("other", "c"))

	whenNeeded := Render(p, PrefixWhenNeeded, "example")
	if want := "/a/b/other:c"; whenNeeded != want {
		t.Errorf("PrefixWhenNeeded = %q, want %q", whenNeeded, want)
	}

	always := Render(p, PrefixAlways, "example")
	if want := "/example:a/example:b/other:c"; always != want {
		t.Errorf("PrefixAlways = %q, want %q", always, want)
	}
}

func TestRenderListElementKeys(t *testing.T) {
	p := NewAbsolute(ListElement("example", "list", KeyInstance{
		{Name: "number", Value: LeafValue{Kind: LVInt32, Int: 1}},
	}))
	got := Render(p, PrefixWhenNeeded, "example")
	if want := "/list[number=1]"; got != want {
		t.Errorf("Render(list element) = %q, want %q", got, want)
	}
}

func TestRenderLeafListElement(t *testing.T) {
	p := NewAbsolute(LeafListElement("example", "leaflist", LeafValue{Kind: LVString, Str: "abc"}))
	got := Render(p, PrefixWhenNeeded, "example")
	if want := "/leaflist[.='abc']"; got != want {
		t.Errorf("Render(leaf-list element) = %q, want %q", got, want)
	}
}
