package path

import "sort"

// SegmentKind tags the variants of Segment (§3).
type SegmentKind int

const (
	SegUp SegmentKind = iota
	SegContainer
	SegLeaf
	SegList
	SegListElement
	SegLeafList
	SegLeafListElement
	SegRPC
	SegAction
)

// KeyValue is one entry of an ordered KeyInstance.
type KeyValue struct {
	Name  string
	Value LeafValue
}

// KeyInstance is an ordered mapping from key name to leaf value. Its key
// set must equal the schema's declared key set for the list it indexes,
// with no duplicates — enforced by pkg/pathparser, not here.
type KeyInstance []KeyValue

func (k KeyInstance) Get(name string) (LeafValue, bool) {
	for _, kv := range k {
		if kv.Name == name {
			return kv.Value, true
		}
	}
	return LeafValue{}, false
}

// Names returns the key names in the order they were supplied.
func (k KeyInstance) Names() []string {
	names := make([]string, len(k))
	for i, kv := range k {
		names[i] = kv.Name
	}
	return names
}

// HasDuplicates reports whether any key name repeats.
func (k KeyInstance) HasDuplicates() bool {
	seen := make(map[string]bool, len(k))
	for _, kv := range k {
		if seen[kv.Name] {
			return true
		}
		seen[kv.Name] = true
	}
	return false
}

// EqualKeySet reports whether k's key names are exactly declared, in any
// order — used to validate list_key_missing / list_key_unknown (§4.5).
func (k KeyInstance) EqualKeySet(declared []string) bool {
	if len(k) != len(declared) {
		return false
	}
	want := append([]string(nil), declared...)
	got := k.Names()
	sort.Strings(want)
	sort.Strings(got)
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}

// MissingKeys returns the declared keys not present in k, in declared
// order, for the "Not enough keys" error message (§4.5).
func (k KeyInstance) MissingKeys(declared []string) []string {
	var missing []string
	for _, d := range declared {
		if _, ok := k.Get(d); !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// Segment is a tagged sum over one step of a Path.
type Segment struct {
	Kind SegmentKind

	Module string // explicit module prefix, "" if omitted
	Name   string // schema-node local name; unused for SegUp

	Keys  KeyInstance // SegListElement
	Value LeafValue   // SegLeafListElement
}

func Parent() Segment                       { return Segment{Kind: SegUp} }
func Container(module, name string) Segment { return Segment{Kind: SegContainer, Module: module, Name: name} }
func Leaf(module, name string) Segment      { return Segment{Kind: SegLeaf, Module: module, Name: name} }
func List(module, name string) Segment      { return Segment{Kind: SegList, Module: module, Name: name} }
func LeafList(module, name string) Segment  { return Segment{Kind: SegLeafList, Module: module, Name: name} }
func RPC(module, name string) Segment       { return Segment{Kind: SegRPC, Module: module, Name: name} }
func Action(module, name string) Segment    { return Segment{Kind: SegAction, Module: module, Name: name} }

func ListElement(module, name string, keys KeyInstance) Segment {
	return Segment{Kind: SegListElement, Module: module, Name: name, Keys: keys}
}

func LeafListElement(module, name string, value LeafValue) Segment {
	return Segment{Kind: SegLeafListElement, Module: module, Name: name, Value: value}
}

// SchemaSegment erases any key values from a data segment, turning
// SegListElement back into SegList and SegLeafListElement back into
// SegLeafList (the schema-path projection of §3).
func (s Segment) SchemaSegment() Segment {
	switch s.Kind {
	case SegListElement:
		return Segment{Kind: SegList, Module: s.Module, Name: s.Name}
	case SegLeafListElement:
		return Segment{Kind: SegLeafList, Module: s.Module, Name: s.Name}
	default:
		return s
	}
}

// SchemaKind reports the SchemaKind this segment denotes at the schema
// level (so a SegListElement and a SegList both report KindList).
func (s Segment) SchemaKind() SchemaKind {
	switch s.Kind {
	case SegContainer:
		return KindContainer
	case SegLeaf:
		return KindLeaf
	case SegList, SegListElement:
		return KindList
	case SegLeafList, SegLeafListElement:
		return KindLeafList
	case SegRPC:
		return KindRPC
	case SegAction:
		return KindAction
	default:
		return KindContainer
	}
}
