// Package parsectx implements the mutable parser context threaded
// explicitly through every grammar rule (§3, §9 Design Notes: "the
// context must be an explicit argument ... never a thread-local"). One
// Context is created per parse and owned exclusively by that parse; nothing
// here is safe to share across concurrent parses.
package parsectx

import (
	"github.com/danos/ncli/pkg/dataquery"
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema"
)

// ErrorRecord is the single error produced by a failed parse (§4.9): a
// caret-with-message record, never more than one per parse.
type ErrorRecord struct {
	Message string
	Offset  int
}

// listScaffold holds the in-progress state for a list-key suffix
// ("[key=value][key2=value2]") while it's being parsed, cleared once the
// suffix is complete or abandoned.
type listScaffold struct {
	active   bool
	listPath path.Path // schema path to the list, keys not yet attached
	keys     path.KeyInstance
}

// Context is the per-parse mutable state of §3's "Parser context".
type Context struct {
	Schema    schema.Facade
	DataQuery dataquery.Facade

	// CurrentPath is the path being built up by the parse in progress,
	// initialized to the navigation cursor at parse start and never
	// written back to it — only a successful `cd` AST, once accepted by
	// the caller/executor, may update the real cursor (§3, §5).
	CurrentPath path.Path

	// CurrentModule resolves an omitted prefix on a bare identifier
	// (§3); set to the schema's TopModule at parse start and updated
	// whenever a path segment carries an explicit module prefix.
	CurrentModule string

	list listScaffold

	// leafLocation is the schema path of the leaf currently being
	// parsed (a list key, or the final writable-leaf of a `set`), so
	// pkg/leafvalue knows which type to dispatch on.
	leafLocation path.Path
	haveLeaf     bool

	suggestions []Entry
	anchor      int // rune offset into the input where suggestions were published

	err     *ErrorRecord
	handled bool

	completing bool

	// committed marks that an expectation point (§4.9) has been passed;
	// failures past this point are errors, not backtracks.
	committed bool

	// writableOps mirrors the §6 `writable-ops` setting: whether
	// operational-state leaves may satisfy a writable-leaf tail
	// requirement, not just configuration leaves. Seeded once from
	// internal/config.Config at parse start; never flipped mid-parse.
	writableOps bool
}

// New creates a context scoped to a single parse, seeded with the
// navigation cursor as the starting path.
func New(s schema.Facade, dq dataquery.Facade, cursor path.Path) *Context {
	return &Context{
		Schema:        s,
		DataQuery:     dq,
		CurrentPath:   cursor,
		CurrentModule: s.TopModule(),
	}
}

// Completing reports whether the parse is running purely to collect
// completions (§4.7 step 1); grammar rules consult this to decide whether
// to keep exploring a dead-end alternative purely to publish suggestions.
func (c *Context) Completing() bool { return c.completing }

// SetCompleting flips completing mode; used once by the completion
// engine (pkg/complete) before running the grammar.
func (c *Context) SetCompleting(v bool) { c.completing = v }

// PushWorkingPath appends seg to CurrentPath (§4.5 step 8).
func (c *Context) PushWorkingPath(seg path.Segment) {
	c.CurrentPath = c.CurrentPath.Push(seg)
}

// PopWorkingPath removes the last segment of CurrentPath, or no-ops at
// the root (§4.5 step 7 / §4.8).
func (c *Context) PopWorkingPath() {
	c.CurrentPath = c.CurrentPath.Pop()
}

// BeginList starts the scaffold for a list-key suffix.
func (c *Context) BeginList(listPath path.Path) {
	c.list = listScaffold{active: true, listPath: listPath}
}

// ListActive reports whether a list-key suffix is currently being parsed.
func (c *Context) ListActive() bool { return c.list.active }

// ListPath returns the schema path of the list currently being keyed.
func (c *Context) ListPath() path.Path { return c.list.listPath }

// AddListKey records one parsed key=value pair into the in-progress
// scaffold.
func (c *Context) AddListKey(name string, v path.LeafValue) {
	c.list.keys = append(c.list.keys, path.KeyValue{Name: name, Value: v})
}

// ListKeysSoFar returns the keys accumulated so far in the in-progress
// list-key suffix.
func (c *Context) ListKeysSoFar() path.KeyInstance { return c.list.keys }

// EndList clears the scaffold, returning the accumulated keys.
func (c *Context) EndList() path.KeyInstance {
	keys := c.list.keys
	c.list = listScaffold{}
	return keys
}

// SetLeafLocation records the schema path whose leaf type governs the
// next leaf-value parse (a list key or a writable leaf).
func (c *Context) SetLeafLocation(p path.Path) {
	c.leafLocation = p
	c.haveLeaf = true
}

func (c *Context) LeafLocation() (path.Path, bool) { return c.leafLocation, c.haveLeaf }

// PublishSuggestions installs a fresh suggestion set with its anchor
// (§4.7 step 3 / §4.5 step 3). Per §5's ordering rule, this must be
// called before the corresponding match attempt.
func (c *Context) PublishSuggestions(anchor int, entries []Entry) {
	c.suggestions = entries
	c.anchor = anchor
}

// Suggestions and Anchor return the most recently published suggestion
// set — i.e. the one recorded at the point of deepest progress, since
// later publications always overwrite earlier ones as the parse advances.
func (c *Context) Suggestions() []Entry { return c.suggestions }
func (c *Context) Anchor() int          { return c.anchor }

// Fail records the first error on the failure path; subsequent calls
// decline once handled is set, so only one handler's message survives
// (§4.9, §7 propagation policy).
func (c *Context) Fail(offset int, message string) {
	if c.handled {
		return
	}
	c.err = &ErrorRecord{Message: message, Offset: offset}
	c.handled = true
}

// Unfail clears the recorded error and the handled flag, whether or not
// an expectation point was committed, so a backtracking construct (union
// member attempts, command-grammar alternatives) can retry a sibling
// alternative cleanly. It must only be used internally by such
// constructs, never by top-level callers; Commit/Committed state is
// tracked separately and is left as it is.
func (c *Context) Unfail() {
	c.err = nil
	c.handled = false
}

// Error returns the recorded error, or nil if none is recorded.
func (c *Context) Error() *ErrorRecord { return c.err }

// ErrorHandled reports whether a handler has already attached a message.
func (c *Context) ErrorHandled() bool { return c.handled }

// Commit marks an expectation point passed (§4.9): turns subsequent
// failures in this alternative into hard errors rather than backtracks.
func (c *Context) Commit() { c.committed = true }

// Committed reports whether an expectation point has been passed in the
// current alternative. Rules that start a fresh alternative (e.g. a
// top-level `|` choice in the command grammar) should save and restore
// this around the attempt so a failed alternative doesn't poison its
// sibling (§5: "an alternative that fails does not poison the anchor of
// the surrounding alternative" — the same holds for committed-state).
func (c *Context) Committed() bool { return c.committed }

// SaveCommitted/RestoreCommitted bracket one alternative's attempt.
func (c *Context) SaveCommitted() bool     { return c.committed }
func (c *Context) RestoreCommitted(v bool) { c.committed = v }

// SetWritableOps seeds the §6 `writable-ops` setting for this parse,
// called once by the caller that built Context from internal/config.Config.
func (c *Context) SetWritableOps(v bool) { c.writableOps = v }

// WritableOps reports whether operational-state leaves may satisfy a
// writable-leaf tail requirement in this parse.
func (c *Context) WritableOps() bool { return c.writableOps }
