package path

// Scope distinguishes a path rooted at the schema/data tree root from one
// relative to the current cursor position.
type Scope int

const (
	Relative Scope = iota
	Absolute
)

// Path is the core path representation of §3: an ordered sequence of
// segments under a scope, with an optional trailing-slash flag recording
// whether the textual form ended in "/" (meaningful only for the ls/get
// path variants that allow it, §4.5).
type Path struct {
	Scope         Scope
	Segments      []Segment
	TrailingSlash bool
}

func NewAbsolute(segs ...Segment) Path {
	return Path{Scope: Absolute, Segments: segs}
}

func NewRelative(segs ...Segment) Path {
	return Path{Scope: Relative, Segments: segs}
}

// IsSchemaPath reports whether every segment is key-less, i.e. the path
// could be a schema path (no SegListElement/SegLeafListElement).
func (p Path) IsSchemaPath() bool {
	for _, s := range p.Segments {
		if s.Kind == SegListElement || s.Kind == SegLeafListElement {
			return false
		}
	}
	return true
}

// SchemaPath erases key values from every segment (§3: "a schema path is
// always obtainable from a data path by erasing key values").
func (p Path) SchemaPath() Path {
	out := Path{Scope: p.Scope, TrailingSlash: p.TrailingSlash}
	out.Segments = make([]Segment, len(p.Segments))
	for i, s := range p.Segments {
		out.Segments[i] = s.SchemaSegment()
	}
	return out
}

// Push appends a segment, returning a new Path (paths are treated as
// immutable values once produced; parsectx.Context.CurrentPath is the
// mutable accumulator during a parse).
func (p Path) Push(s Segment) Path {
	out := Path{Scope: p.Scope, TrailingSlash: p.TrailingSlash}
	out.Segments = append(append([]Segment(nil), p.Segments...), s)
	return out
}

// PushAll appends each of segs in order, returning a new Path.
func (p Path) PushAll(segs []Segment) Path {
	out := p
	for _, s := range segs {
		out = out.Push(s)
	}
	return out
}

// Pop removes the last segment; popping an empty path is a no-op, which
// gives cd's ".." handling and the navigator's root behaviour (§4.8)
// their idempotence for free.
func (p Path) Pop() Path {
	if len(p.Segments) == 0 {
		return p
	}
	out := Path{Scope: p.Scope, TrailingSlash: p.TrailingSlash}
	out.Segments = append([]Segment(nil), p.Segments[:len(p.Segments)-1]...)
	return out
}

func (p Path) Last() (Segment, bool) {
	if len(p.Segments) == 0 {
		return Segment{}, false
	}
	return p.Segments[len(p.Segments)-1], true
}

func (p Path) Empty() bool { return len(p.Segments) == 0 }

// Equal compares two paths structurally (used by round-trip tests with
// go-cmp normally, but kept here for cheap equality checks in hot paths
// like the navigator).
func (p Path) Equal(o Path) bool {
	if p.Scope != o.Scope || len(p.Segments) != len(o.Segments) {
		return false
	}
	for i := range p.Segments {
		if !segmentsEqual(p.Segments[i], o.Segments[i]) {
			return false
		}
	}
	return true
}

func segmentsEqual(a, b Segment) bool {
	if a.Kind != b.Kind || a.Module != b.Module || a.Name != b.Name {
		return false
	}
	switch a.Kind {
	case SegListElement:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		for i := range a.Keys {
			if a.Keys[i].Name != b.Keys[i].Name || !a.Keys[i].Value.Equal(b.Keys[i].Value) {
				return false
			}
		}
		return true
	case SegLeafListElement:
		return a.Value.Equal(b.Value)
	default:
		return true
	}
}
