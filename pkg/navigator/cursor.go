// Package navigator implements the navigation cursor of §4.8: the single
// absolute data path the parser is seeded from, mutated only by a
// successfully-applied `cd` AST — never by the parser itself (§3, §5).
// Grounded on the teacher's VYATTA_EDIT_LEVEL-backed cursor in
// cmd/cfgcli/runfns.go (the `up`/`top`/`edit` commands push/pop a working
// path string), generalized here to the typed path.Path cursor.
package navigator

import (
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema"
)

// Cursor holds the current absolute data path, empty at the root.
type Cursor struct {
	current path.Path
}

func New() *Cursor {
	return &Cursor{current: path.Path{Scope: path.Absolute}}
}

// Current returns the cursor's path.
func (c *Cursor) Current() path.Path { return c.current }

// Apply incorporates a successfully parsed `cd` path into the cursor
// (§4.8): absolute paths replace it outright; relative paths are walked
// segment by segment, with ".." popping (a no-op at the root) and every
// other segment pushed.
func (c *Cursor) Apply(cd path.Path) {
	if cd.Scope == path.Absolute {
		c.current = path.Path{Scope: path.Absolute, Segments: append([]path.Segment(nil), cd.Segments...)}
		return
	}
	for _, seg := range cd.Segments {
		if seg.Kind == path.SegUp {
			c.current = c.current.Pop()
			continue
		}
		c.current = c.current.Push(seg)
	}
}

// Prompt renders the cursor in its canonical textual form followed by
// "> ", the way the teacher renders VYATTA_EDIT_LEVEL into the bash
// prompt.
func Prompt(c *Cursor, policy path.PrefixPolicy, topModule string) string {
	return path.Render(c.current, policy, topModule) + "> "
}

// AvailableNodes returns the schema children of cursor ⊕ rel, delegating
// to the schema facade (§4.8). A nil rel means "at the cursor itself".
func AvailableNodes(c *Cursor, s schema.Facade, rel *path.Path) ([]schema.ChildInfo, error) {
	at := c.current.SchemaPath()
	if rel != nil {
		at = at.PushAll(rel.Segments)
	}
	return s.Children(at, false)
}
