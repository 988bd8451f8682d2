package path

import (
	"fmt"
	"strconv"
	"strings"
)

// PrefixPolicy governs how module prefixes are emitted when rendering a
// path to its canonical textual form (§4.5, §6 "prefixes" setting).
type PrefixPolicy int

const (
	PrefixWhenNeeded PrefixPolicy = iota
	PrefixAlways
)

// Render produces the canonical textual form of p. topModule is the
// module whose prefix may be elided under PrefixWhenNeeded; current
// tracks the module in effect as segments are walked (crossing into a
// different module always re-emits a prefix, §6).
func Render(p Path, policy PrefixPolicy, topModule string) string {
	var b strings.Builder
	if p.Scope == Absolute {
		b.WriteByte('/')
	}
	current := topModule
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte('/')
		}
		renderSegment(&b, s, policy, topModule, &current)
	}
	if p.TrailingSlash && len(p.Segments) > 0 {
		b.WriteByte('/')
	}
	return b.String()
}

func renderSegment(b *strings.Builder, s Segment, policy PrefixPolicy, topModule string, current *string) {
	if s.Kind == SegUp {
		b.WriteString("..")
		return
	}

	mod := s.Module
	needsPrefix := policy == PrefixAlways || (mod != "" && mod != *current) || (*current == "" && mod != "")
	if mod == "" {
		mod = *current
	}
	if needsPrefix && mod != "" {
		b.WriteString(mod)
		b.WriteByte(':')
	}
	b.WriteString(s.Name)
	*current = mod

	switch s.Kind {
	case SegListElement:
		for _, kv := range s.Keys {
			b.WriteByte('[')
			b.WriteString(kv.Name)
			b.WriteByte('=')
			b.WriteString(RenderLeafValue(kv.Value))
			b.WriteByte(']')
		}
	case SegLeafListElement:
		b.WriteString("[.=")
		b.WriteString(RenderLeafValue(s.Value))
		b.WriteByte(']')
	}
}

// RenderLeafValue renders one leaf value using the quoting rule of §6:
// string-like kinds are quoted (single quotes, or double quotes if the
// value itself contains a single quote); numeric/boolean/enum/
// identity-ref values are left bare.
func RenderLeafValue(v LeafValue) string {
	switch v.Kind {
	case LVString, LVBinary, LVInstanceIdentifier:
		return quote(v.Str)
	case LVBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case LVInt8, LVInt16, LVInt32, LVInt64:
		return strconv.FormatInt(v.Int, 10)
	case LVUint8, LVUint16, LVUint32, LVUint64:
		return strconv.FormatUint(v.Uint, 10)
	case LVDecimal64:
		return renderDecimal64(v.Decimal)
	case LVEnum:
		return v.Enum
	case LVIdentityRef:
		return v.Identity.String()
	case LVBits:
		return strings.Join(v.BitNames, " ")
	case LVEmpty:
		return ""
	case LVSpecial:
		return fmt.Sprintf("(%s)", v.SpecialOf)
	default:
		return ""
	}
}

func quote(s string) string {
	if strings.ContainsRune(s, '\'') {
		return `"` + s + `"`
	}
	return "'" + s + "'"
}

func renderDecimal64(d Decimal64) string {
	neg := d.Mantissa < 0
	mant := d.Mantissa
	if neg {
		mant = -mant
	}
	s := strconv.FormatInt(mant, 10)
	if d.FractionDigits == 0 {
		if neg {
			return "-" + s
		}
		return s
	}
	for len(s) <= d.FractionDigits {
		s = "0" + s
	}
	intPart := s[:len(s)-d.FractionDigits]
	fracPart := s[len(s)-d.FractionDigits:]
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
