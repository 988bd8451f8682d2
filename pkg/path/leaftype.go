package path

// LeafTypeKind tags the variants of LeafType.
type LeafTypeKind int

const (
	LTString LeafTypeKind = iota
	LTDecimal64
	LTBool
	LTInt8
	LTInt16
	LTInt32
	LTInt64
	LTUint8
	LTUint16
	LTUint32
	LTUint64
	LTBinary
	LTEmpty
	LTEnum
	LTBits
	LTIdentityRef
	LTLeafRef
	LTUnion
	LTInstanceIdentifier
)

// LeafType is a tagged sum over the typed leaf data kinds of §3. Only the
// fields relevant to Kind are populated; this mirrors the C++ original's
// leaf_data_type.hpp variant, expressed as a Go struct instead of
// std::variant since Go has no closed sum type.
type LeafType struct {
	Kind LeafTypeKind

	// LTDecimal64
	FractionDigits int

	// LTEnum
	EnumValues []string

	// LTBits
	BitNames []string

	// LTIdentityRef: the base identity; Facade.Identities enumerates the
	// derived set at completion/validation time, so only the base is
	// carried here.
	Base NodeID

	// LTLeafRef
	TargetXPath string
	Resolved    *LeafType

	// LTUnion, in declaration order (first-match-wins parsing, §4.4)
	Members []LeafType
}

// Terminal follows a LeafRef chain to its non-leafref target, per the
// invariant in §3 that a leaf-ref chain always terminates. Detecting a
// cycle is the schema facade's job (§9 Design Notes); if Resolved is nil
// for a leaf-ref this returns the leaf-ref itself unchanged.
func (t LeafType) Terminal() LeafType {
	cur := t
	seen := 0
	for cur.Kind == LTLeafRef && cur.Resolved != nil {
		cur = *cur.Resolved
		seen++
		if seen > 64 {
			// Defensive bound; a real cycle is a schema-facade error,
			// not something this layer should loop on forever.
			break
		}
	}
	return cur
}

// Describe renders a short human description of the type, used in
// leaf-type-mismatch messages (§4.4, "Expected <type description>").
func (t LeafType) Describe() string {
	switch t.Kind {
	case LTString:
		return "string"
	case LTDecimal64:
		return "decimal64"
	case LTBool:
		return "bool"
	case LTInt8:
		return "int8"
	case LTInt16:
		return "int16"
	case LTInt32:
		return "int32"
	case LTInt64:
		return "int64"
	case LTUint8:
		return "uint8"
	case LTUint16:
		return "uint16"
	case LTUint32:
		return "uint32"
	case LTUint64:
		return "uint64"
	case LTBinary:
		return "binary"
	case LTEmpty:
		return "empty"
	case LTEnum:
		return "enum"
	case LTBits:
		return "bits"
	case LTIdentityRef:
		return "identityref"
	case LTLeafRef:
		return "leafref"
	case LTUnion:
		return "union"
	case LTInstanceIdentifier:
		return "instance-identifier"
	default:
		return "unknown"
	}
}

// LeafValueKind mirrors LeafTypeKind, plus Special for structural echo.
type LeafValueKind int

const (
	LVString LeafValueKind = iota
	LVDecimal64
	LVBool
	LVInt8
	LVInt16
	LVInt32
	LVInt64
	LVUint8
	LVUint16
	LVUint32
	LVUint64
	LVBinary
	LVEmpty
	LVEnum
	LVBits
	LVIdentityRef
	LVInstanceIdentifier
	LVSpecial
)

// Decimal64 holds a fixed-point value as an integer mantissa scaled by
// 10^-FractionDigits, avoiding float rounding during parse/render.
type Decimal64 struct {
	Mantissa       int64
	FractionDigits int
}

// LeafValue is a tagged sum parallel to LeafType.
type LeafValue struct {
	Kind LeafValueKind

	Str        string // LVString, LVBinary (base64 text), LVSpecial description
	Bool       bool
	Int        int64  // signed integer kinds
	Uint       uint64 // unsigned integer kinds
	Decimal    Decimal64
	Enum       string
	BitNames   []string // LVBits, order as supplied
	Identity   NodeID   // LVIdentityRef
	SpecialOf  SchemaKind
}

func (v LeafValue) Equal(o LeafValue) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case LVString, LVBinary:
		return v.Str == o.Str
	case LVBool:
		return v.Bool == o.Bool
	case LVInt8, LVInt16, LVInt32, LVInt64:
		return v.Int == o.Int
	case LVUint8, LVUint16, LVUint32, LVUint64:
		return v.Uint == o.Uint
	case LVDecimal64:
		return v.Decimal == o.Decimal
	case LVEnum:
		return v.Enum == o.Enum
	case LVBits:
		if len(v.BitNames) != len(o.BitNames) {
			return false
		}
		for i := range v.BitNames {
			if v.BitNames[i] != o.BitNames[i] {
				return false
			}
		}
		return true
	case LVIdentityRef:
		return v.Identity == o.Identity
	case LVEmpty:
		return true
	case LVInstanceIdentifier:
		return v.Str == o.Str
	case LVSpecial:
		return v.SpecialOf == o.SpecialOf
	default:
		return false
	}
}
