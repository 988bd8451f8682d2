package leafvalue

import (
	"testing"

	"github.com/danos/ncli/pkg/lex"
	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema/static"
)

func newCtx() *parsectx.Context {
	s := static.New("example")
	return parsectx.New(s, nil, path.NewAbsolute())
}

func TestParseIntBoundaries(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
		want  int64
	}{
		{"int8 max", "127", true, 127},
		{"int8 min", "-128", true, -128},
		{"int8 one over max", "128", false, 0},
		{"int8 one under min", "-129", false, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctx := newCtx()
			sc := lex.New(c.input)
			v, ok := Parse(ctx, sc, path.LeafType{Kind: path.LTInt8})
			if ok != c.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", c.input, ok, c.ok)
			}
			if ok && v.Int != c.want {
				t.Errorf("Parse(%q) = %d, want %d", c.input, v.Int, c.want)
			}
			if !ok && ctx.Error() == nil {
				t.Errorf("Parse(%q) failed but recorded no ErrorRecord", c.input)
			}
		})
	}
}

func TestParseUintRejectsNegative(t *testing.T) {
	ctx := newCtx()
	sc := lex.New("-1")
	if _, ok := Parse(ctx, sc, path.LeafType{Kind: path.LTUint8}); ok {
		t.Errorf("Parse(-1) against uint8 unexpectedly succeeded")
	}
}

func TestParseDecimal64(t *testing.T) {
	cases := []struct {
		input    string
		fracDig  int
		ok       bool
		mantissa int64
	}{
		{"12.34", 2, true, 1234},
		{"-0.05", 2, true, -5},
		{"100", 0, true, 100},
		// three fractional digits supplied against a 2-digit type: overflow.
		{"1.234", 2, false, 0},
	}
	for _, c := range cases {
		ctx := newCtx()
		sc := lex.New(c.input)
		v, ok := Parse(ctx, sc, path.LeafType{Kind: path.LTDecimal64, FractionDigits: c.fracDig})
		if ok != c.ok {
			t.Fatalf("Parse(%q) ok = %v, want %v", c.input, ok, c.ok)
		}
		if ok && v.Decimal.Mantissa != c.mantissa {
			t.Errorf("Parse(%q) mantissa = %d, want %d", c.input, v.Decimal.Mantissa, c.mantissa)
		}
	}
}

func TestParseBool(t *testing.T) {
	ctx := newCtx()
	v, ok := Parse(ctx, lex.New("true"), path.LeafType{Kind: path.LTBool})
	if !ok || !v.Bool {
		t.Errorf("Parse(true) = %+v, %v", v, ok)
	}
	ctx = newCtx()
	if _, ok := Parse(ctx, lex.New("maybe"), path.LeafType{Kind: path.LTBool}); ok {
		t.Errorf("Parse(maybe) against bool unexpectedly succeeded")
	}
}

func TestParseString(t *testing.T) {
	ctx := newCtx()
	v, ok := Parse(ctx, lex.New("'hello world'"), path.LeafType{Kind: path.LTString})
	if !ok || v.Str != "hello world" {
		t.Errorf("Parse('hello world') = %+v, %v", v, ok)
	}
}

func TestParseBinaryPadding(t *testing.T) {
	cases := []struct {
		input     string
		ok        bool
		wantAtEnd bool // the >2-pad case parses a valid 2-pad prefix, leaving a trailing '=' unconsumed
	}{
		{"YWJj", true, true},    // "abc", no padding needed
		{"YWI=", true, true},    // one pad char
		{"YQ==", true, true},    // two pad chars
		{"YQ===", true, false},  // only the first two '=' are consumed as padding
		{"not base64!", false, false},
	}
	for _, c := range cases {
		ctx := newCtx()
		sc := lex.New(c.input)
		_, ok := Parse(ctx, sc, path.LeafType{Kind: path.LTBinary})
		if ok != c.ok {
			t.Errorf("Parse(%q) against binary ok = %v, want %v", c.input, ok, c.ok)
			continue
		}
		if ok && sc.AtEnd() != c.wantAtEnd {
			t.Errorf("Parse(%q) AtEnd = %v, want %v", c.input, sc.AtEnd(), c.wantAtEnd)
		}
	}
}

func TestParseEnum(t *testing.T) {
	lt := path.LeafType{Kind: path.LTEnum, EnumValues: []string{"up", "down"}}
	ctx := newCtx()
	v, ok := Parse(ctx, lex.New("up"), lt)
	if !ok || v.Enum != "up" {
		t.Errorf("Parse(up) = %+v, %v", v, ok)
	}
	ctx = newCtx()
	if _, ok := Parse(ctx, lex.New("sideways"), lt); ok {
		t.Errorf("Parse(sideways) against enum unexpectedly succeeded")
	}
}

func TestParseBitsRejectsDuplicatesAndUnknown(t *testing.T) {
	lt := path.LeafType{Kind: path.LTBits, BitNames: []string{"a", "b", "c"}}
	ctx := newCtx()
	v, ok := Parse(ctx, lex.New("a c"), lt)
	if !ok {
		t.Fatalf("Parse('a c') against bits failed unexpectedly")
	}
	if got := v.BitNames; len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("Parse('a c') = %v, want [a c]", got)
	}

	ctx = newCtx()
	if _, ok := Parse(ctx, lex.New("a a"), lt); ok {
		t.Errorf("Parse('a a') with duplicate bit unexpectedly succeeded")
	}

	ctx = newCtx()
	if _, ok := Parse(ctx, lex.New("z"), lt); ok {
		t.Errorf("Parse('z') with unknown bit unexpectedly succeeded")
	}
}

func TestParseIdentityRef(t *testing.T) {
	s := static.New("example")
	s.IdentityDefs = []static.Identity{
		{ID: path.NodeID{Prefix: "example", Local: "ipv4"}, Base: path.NodeID{Prefix: "example", Local: "address-family"}},
		{ID: path.NodeID{Prefix: "example", Local: "ipv6"}, Base: path.NodeID{Prefix: "example", Local: "address-family"}},
	}
	ctx := parsectx.New(s, nil, path.NewAbsolute())
	lt := path.LeafType{Kind: path.LTIdentityRef, Base: path.NodeID{Prefix: "example", Local: "address-family"}}

	v, ok := Parse(ctx, lex.New("ipv4"), lt)
	if !ok || v.Identity.Local != "ipv4" {
		t.Errorf("Parse(ipv4) = %+v, %v", v, ok)
	}

	ctx = parsectx.New(s, nil, path.NewAbsolute())
	if _, ok := Parse(ctx, lex.New("not-derived"), lt); ok {
		t.Errorf("Parse(not-derived) against identityref unexpectedly succeeded")
	}
}

func TestParseUnionFirstMatchWins(t *testing.T) {
	lt := path.LeafType{Kind: path.LTUnion, Members: []path.LeafType{
		{Kind: path.LTInt32},
		{Kind: path.LTString},
	}}
	ctx := newCtx()
	v, ok := Parse(ctx, lex.New("42"), lt)
	if !ok || v.Kind != path.LVInt32 || v.Int != 42 {
		t.Errorf("Parse(42) against union = %+v, %v", v, ok)
	}

	ctx = newCtx()
	v, ok = Parse(ctx, lex.New("'hello'"), lt)
	if !ok || v.Kind != path.LVString || v.Str != "hello" {
		t.Errorf("Parse('hello') against union = %+v, %v", v, ok)
	}
}
