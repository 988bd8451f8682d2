// Package leafvalue implements the type-directed leaf-value parser of
// §4.4: integers, decimal64, bool, string, binary, empty, enum,
// identity-ref, bits, leaf-ref, and union, each dispatched from the
// resolved leaf type at the parser context's current leaf location.
package leafvalue

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/danos/ncli/pkg/lex"
	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
)

// Parse dispatches on t.Kind and attempts to consume a value for it from
// sc, publishing completion suggestions before the attempt exactly as
// §4.5 step 3 requires for path segments. On failure it calls
// ctx.Fail with a "leaf-type-mismatch: Expected <type>" message (or
// "identity-not-derived: ..." for an identity-ref naming an identity
// outside the base) and returns false; callers must not also call
// ctx.Fail for the same token.
func Parse(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	switch t.Kind {
	case path.LTInt8:
		return parseInt(ctx, sc, t, -128, 127)
	case path.LTInt16:
		return parseInt(ctx, sc, t, -32768, 32767)
	case path.LTInt32:
		return parseInt(ctx, sc, t, -2147483648, 2147483647)
	case path.LTInt64:
		return parseInt(ctx, sc, t, -9223372036854775808, 9223372036854775807)
	case path.LTUint8:
		return parseUint(ctx, sc, t, 255)
	case path.LTUint16:
		return parseUint(ctx, sc, t, 65535)
	case path.LTUint32:
		return parseUint(ctx, sc, t, 4294967295)
	case path.LTUint64:
		return parseUint(ctx, sc, t, ^uint64(0))
	case path.LTDecimal64:
		return parseDecimal64(ctx, sc, t)
	case path.LTBool:
		return parseBool(ctx, sc, t)
	case path.LTString:
		return parseString(ctx, sc, t)
	case path.LTBinary:
		return parseBinary(ctx, sc, t)
	case path.LTEmpty:
		return path.LeafValue{Kind: path.LVEmpty}, true
	case path.LTEnum:
		return parseEnum(ctx, sc, t)
	case path.LTIdentityRef:
		return parseIdentityRef(ctx, sc, t)
	case path.LTBits:
		return parseBits(ctx, sc, t)
	case path.LTLeafRef:
		if t.Resolved != nil {
			return Parse(ctx, sc, *t.Resolved)
		}
		return fail(ctx, sc, t)
	case path.LTUnion:
		return parseUnion(ctx, sc, t)
	default:
		return fail(ctx, sc, t)
	}
}

func fail(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	msg := fmt.Sprintf("leaf-type-mismatch: Expected %s", t.Describe())
	switch t.Kind {
	case path.LTEnum:
		msg += fmt.Sprintf(" (%s)", strings.Join(t.EnumValues, ", "))
	case path.LTBits:
		msg += fmt.Sprintf(" (%s)", strings.Join(t.BitNames, ", "))
	case path.LTIdentityRef:
		ids, _ := ctx.Schema.Identities(ctx.CurrentPath, true)
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = id.String()
		}
		msg += fmt.Sprintf(" (%s)", strings.Join(names, ", "))
	}
	ctx.Fail(sc.Pos(), msg)
	return path.LeafValue{}, false
}

func parseInt(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType, lo, hi int64) (path.LeafValue, bool) {
	start := sc.Pos()
	tok := scanNumberToken(sc)
	if tok == "" {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil || n < lo || n > hi {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	return path.LeafValue{Kind: kindForInt(t.Kind), Int: n}, true
}

func parseUint(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType, hi uint64) (path.LeafValue, bool) {
	start := sc.Pos()
	tok := scanNumberToken(sc)
	if tok == "" || strings.HasPrefix(tok, "-") {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil || n > hi {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	return path.LeafValue{Kind: kindForUint(t.Kind), Uint: n}, true
}

func kindForInt(t path.LeafTypeKind) path.LeafValueKind {
	switch t {
	case path.LTInt8:
		return path.LVInt8
	case path.LTInt16:
		return path.LVInt16
	case path.LTInt32:
		return path.LVInt32
	default:
		return path.LVInt64
	}
}

func kindForUint(t path.LeafTypeKind) path.LeafValueKind {
	switch t {
	case path.LTUint8:
		return path.LVUint8
	case path.LTUint16:
		return path.LVUint16
	case path.LTUint32:
		return path.LVUint32
	default:
		return path.LVUint64
	}
}

// scanNumberToken consumes an optional leading '-' followed by digits,
// the maximal run of such characters, without validating range yet.
func scanNumberToken(sc *lex.Scanner) string {
	start := sc.Pos()
	if sc.Peek() == '-' {
		sc.Advance()
	}
	digits := 0
	for sc.Peek() >= '0' && sc.Peek() <= '9' {
		sc.Advance()
		digits++
	}
	if digits == 0 {
		sc.SetPos(start)
		return ""
	}
	return sc.TokenSince(start)
}

func parseDecimal64(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	start := sc.Pos()
	neg := false
	if sc.Peek() == '-' {
		neg = true
		sc.Advance()
	}
	intDigits := 0
	for sc.Peek() >= '0' && sc.Peek() <= '9' {
		sc.Advance()
		intDigits++
	}
	fracDigits := 0
	if sc.Peek() == '.' {
		sc.Advance()
		for sc.Peek() >= '0' && sc.Peek() <= '9' {
			sc.Advance()
			fracDigits++
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	if fracDigits > t.FractionDigits {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	tok := sc.TokenSince(start)
	digitsOnly := strings.Replace(strings.TrimPrefix(tok, "-"), ".", "", 1)
	for len(digitsOnly) < 1 {
		digitsOnly = "0" + digitsOnly
	}
	mant, err := strconv.ParseInt(digitsOnly, 10, 64)
	if err != nil {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	// Scale mantissa up to the type's fraction-digits.
	for i := fracDigits; i < t.FractionDigits; i++ {
		mant *= 10
	}
	if neg {
		mant = -mant
	}
	return path.LeafValue{Kind: path.LVDecimal64, Decimal: path.Decimal64{Mantissa: mant, FractionDigits: t.FractionDigits}}, true
}

func parseBool(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	start := sc.Pos()
	if sc.Literal("true") {
		return path.LeafValue{Kind: path.LVBool, Bool: true}, true
	}
	if sc.Literal("false") {
		return path.LeafValue{Kind: path.LVBool, Bool: false}, true
	}
	sc.SetPos(start)
	return fail(ctx, sc, t)
}

func parseString(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	s, ok := sc.QuotedString()
	if !ok {
		return fail(ctx, sc, t)
	}
	return path.LeafValue{Kind: path.LVString, Str: s}, true
}

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func parseBinary(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	start := sc.Pos()
	for strings.ContainsRune(base64Alphabet, sc.Peek()) {
		sc.Advance()
	}
	pad := 0
	for sc.Peek() == '=' && pad < 2 {
		sc.Advance()
		pad++
	}
	tok := sc.TokenSince(start)
	if tok == "" || !validBase64(tok) {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	return path.LeafValue{Kind: path.LVBinary, Str: tok}, true
}

func validBase64(tok string) bool {
	body := strings.TrimRight(tok, "=")
	pad := len(tok) - len(body)
	if pad > 2 {
		return false
	}
	if len(tok)%4 != 0 {
		return false
	}
	for _, r := range body {
		if !strings.ContainsRune(base64Alphabet, r) {
			return false
		}
	}
	return true
}

// enumEntries builds the §4.7 completion entries that the enum,
// identity-ref and bits parsers publish before each attempt, per §4.4: "Completion: emit the
// whole allowed set at entry point; filter by prefix."
func enumEntries(values []string) []parsectx.Entry {
	out := make([]parsectx.Entry, len(values))
	for i, v := range values {
		out[i] = parsectx.Entry{Value: v, WhenToAdd: parsectx.AddIfFullMatch}
	}
	return out
}

func parseEnum(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	anchor := sc.Pos()
	ctx.PublishSuggestions(anchor, enumEntries(t.EnumValues))
	start := sc.Pos()
	ident, ok := sc.Identifier()
	if !ok {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	for _, v := range t.EnumValues {
		if v == ident {
			return path.LeafValue{Kind: path.LVEnum, Enum: ident}, true
		}
	}
	sc.SetPos(start)
	return fail(ctx, sc, t)
}

func parseIdentityRef(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	ids, _ := ctx.Schema.Identities(ctx.CurrentPath, true)
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	sort.Strings(names)
	anchor := sc.Pos()
	ctx.PublishSuggestions(anchor, enumEntries(names))

	start := sc.Pos()
	prefix, hasPrefix := sc.ModulePrefix()
	ident, ok := sc.Identifier()
	if !ok {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	// Omitted prefix resolves against the path's top-level module,
	// per the Open Question decision recorded in DESIGN.md: the module
	// of the first segment of ctx.CurrentPath, or the schema's top
	// module when that segment carries none.
	mod := prefix
	if !hasPrefix {
		mod = ctx.Schema.TopModule()
		if len(ctx.CurrentPath.Segments) > 0 && ctx.CurrentPath.Segments[0].Module != "" {
			mod = ctx.CurrentPath.Segments[0].Module
		}
	}
	candidate := path.NodeID{Prefix: mod, Local: ident}
	if !ctx.Schema.IsIdentityDerived(t.Base, candidate) && candidate != t.Base {
		sc.SetPos(start)
		ctx.Fail(sc.Pos(), fmt.Sprintf("identity-not-derived: %s (%s)", candidate, strings.Join(names, ", ")))
		return path.LeafValue{}, false
	}
	return path.LeafValue{Kind: path.LVIdentityRef, Identity: candidate}, true
}

func parseBits(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	anchor := sc.Pos()
	ctx.PublishSuggestions(anchor, enumEntries(t.BitNames))

	start := sc.Pos()
	var names []string
	seen := map[string]bool{}
	for {
		sc.SkipSpace()
		save := sc.Pos()
		ident, ok := sc.Identifier()
		if !ok {
			sc.SetPos(save)
			break
		}
		if !containsString(t.BitNames, ident) || seen[ident] {
			sc.SetPos(start)
			return fail(ctx, sc, t)
		}
		seen[ident] = true
		names = append(names, ident)
	}
	if len(names) == 0 {
		sc.SetPos(start)
		return fail(ctx, sc, t)
	}
	return path.LeafValue{Kind: path.LVBits, BitNames: names}, true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func parseUnion(ctx *parsectx.Context, sc *lex.Scanner, t path.LeafType) (path.LeafValue, bool) {
	start := sc.Pos()
	var allSuggestions []parsectx.Entry
	for _, member := range t.Members {
		sc.SetPos(start)
		savedHandled := ctx.ErrorHandled()
		v, ok := Parse(ctx, sc, member)
		allSuggestions = append(allSuggestions, ctx.Suggestions()...)
		if ok && sc.AtEnd() {
			return v, true
		}
		if ok {
			// Parsed a member type but didn't consume the whole
			// remaining token (§4.4: "accept the first that parses the
			// entire remaining token") — treat as a non-match and try
			// the next member.
			sc.SetPos(start)
		}
		// A member's failed attempt must not leave the error latched
		// for the next member to trip over.
		if !savedHandled {
			ctx.Unfail()
		}
	}
	ctx.PublishSuggestions(start, allSuggestions)
	sc.SetPos(start)
	return fail(ctx, sc, t)
}
