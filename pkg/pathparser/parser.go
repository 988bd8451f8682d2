package pathparser

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/danos/ncli/pkg/lex"
	"github.com/danos/ncli/pkg/leafvalue"
	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/schema"
)

// Parse runs the stepwise descent of §4.5 and returns the parsed path.
// ctx.CurrentPath is both the starting point (the navigation cursor, for
// a relative path) and the accumulator mutated segment by segment (§4.5
// step 8); on return it holds the fully walked path regardless of
// success, since a failed parse still wants its partial progress for
// completion purposes.
func Parse(ctx *parsectx.Context, sc *lex.Scanner, opts Options) (path.Path, bool) {
	scope := path.Relative
	if sc.Peek() == '/' {
		sc.Advance()
		scope = path.Absolute
	}
	if scope == path.Absolute {
		ctx.CurrentPath = path.Path{Scope: path.Absolute}
	}

	first := true
	var walked []path.Segment
	for {
		sc.SkipSpace()
		if sc.AtEnd() {
			break
		}
		savedCommitted := ctx.SaveCommitted()
		seg, segKind, matched := parseSegment(ctx, sc, opts, first)
		if !matched {
			ctx.RestoreCommitted(savedCommitted)
			break
		}
		first = false
		walked = append(walked, seg)
		if seg.Kind != path.SegUp {
			// parseSegment has already popped the working path for "..".
			ctx.PushWorkingPath(seg)
		}
		_ = segKind
		if sc.Peek() != '/' {
			break
		}
		sc.Advance()
		if sc.AtEnd() {
			ctx.CurrentPath.TrailingSlash = true
			break
		}
	}

	result := ctx.CurrentPath
	result.Scope = scope
	if scope == path.Relative {
		// Relative results are reported as just the newly walked
		// segments, not prefixed with the cursor that seeded the walk.
		result.Segments = walked
	}

	if len(result.Segments) == 0 {
		ctx.Fail(sc.Pos(), "unknown-node: empty path")
		return result, false
	}

	if opts.Tail != TailAny {
		last := result.Segments[len(result.Segments)-1]
		if n := len(ctx.CurrentPath.Segments); n > 0 {
			last = ctx.CurrentPath.Segments[n-1]
		}
		schemaPath := ctx.CurrentPath.SchemaPath()
		k, err := ctx.Schema.Kind(schemaPath)
		if err != nil {
			ctx.Fail(sc.Pos(), err.Error())
			return result, false
		}
		if !kindSatisfiesTail(k, last.Kind, opts.Tail) {
			ctx.Fail(sc.Pos(), fmt.Sprintf("wrong-node-kind: expected %s", describeTail(opts.Tail)))
			return result, false
		}
		if opts.Tail == TailWritableLeaf && !ctx.WritableOps() {
			isConfig, err := ctx.Schema.IsConfig(schemaPath)
			if err != nil {
				ctx.Fail(sc.Pos(), err.Error())
				return result, false
			}
			if !isConfig {
				ctx.Fail(sc.Pos(), "wrong-node-kind: operational-state leaf is read-only (writable-ops is off)")
				return result, false
			}
		}
	}

	// A path argument ends at end of input or at the whitespace before the
	// command's next argument (the `set` value, the `move` destination);
	// Dispatch rejects whatever is left after the command's last argument.
	if !sc.AtEnd() {
		save := sc.Pos()
		spaced := sc.SkipSpace()
		sc.SetPos(save)
		if !spaced {
			ctx.Fail(sc.Pos(), "too-many-arguments")
			return result, false
		}
	}

	return result, true
}

// buildCandidates computes the completion-entry set for the children of
// the schema node at ctx.CurrentPath (§4.5 step 1-2).
func buildCandidates(ctx *parsectx.Context, opts Options) ([]schema.ChildInfo, []parsectx.Entry) {
	children, err := ctx.Schema.Children(ctx.CurrentPath.SchemaPath(), false)
	if err != nil {
		return nil, []parsectx.Entry{{Value: "..", WhenToAdd: parsectx.AddAlways}}
	}

	entries := make([]parsectx.Entry, 0, len(children)+1)
	filtered := make([]schema.ChildInfo, 0, len(children))
	for _, c := range children {
		switch c.Kind {
		case path.KindRPC, path.KindAction:
			if !opts.AllowRPCActions {
				continue
			}
		}
		filtered = append(filtered, c)

		value := c.Name
		if c.Module != "" && c.Module != ctx.CurrentModule {
			value = c.Module + ":" + c.Name
		}

		switch c.Kind {
		case path.KindContainer, path.KindPresenceContainer:
			entries = append(entries, parsectx.Entry{Value: value, Suffix: "/", WhenToAdd: parsectx.AddAlways})
		case path.KindLeaf:
			entries = append(entries, parsectx.Entry{Value: value, Suffix: " ", WhenToAdd: parsectx.AddAlways})
		case path.KindList:
			if opts.Kind == KindSchema {
				entries = append(entries, parsectx.Entry{Value: value, WhenToAdd: parsectx.AddAlways})
			} else {
				entries = append(entries, parsectx.Entry{Value: value, Suffix: "[", WhenToAdd: parsectx.AddIfFullMatch})
			}
		case path.KindLeafList:
			entries = append(entries, parsectx.Entry{Value: value, Suffix: "[", WhenToAdd: parsectx.AddIfFullMatch})
		case path.KindRPC, path.KindAction:
			entries = append(entries, parsctxEntryPlain(value))
		}
	}
	entries = append(entries, parsectx.Entry{Value: "..", WhenToAdd: parsectx.AddAlways})
	sort.Slice(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })
	return filtered, entries
}

func parsctxEntryPlain(value string) parsectx.Entry {
	return parsectx.Entry{Value: value, Suffix: " ", WhenToAdd: parsectx.AddAlways}
}

// parseSegment handles one step of the descent: publishing candidates,
// matching ".." or a named child, and for list/leaf-list children,
// delegating to the key-suffix grammars.
func parseSegment(ctx *parsectx.Context, sc *lex.Scanner, opts Options, first bool) (path.Segment, path.SchemaKind, bool) {
	anchor := sc.Pos()
	candidates, entries := buildCandidates(ctx, opts)
	ctx.PublishSuggestions(anchor, entries)

	start := sc.Pos()
	if sc.Literal("..") {
		ctx.PopWorkingPath()
		return path.Segment{Kind: path.SegUp}, path.KindContainer, true
	}

	prefix, hasPrefix := sc.ModulePrefix()
	name, ok := sc.Identifier()
	if !ok {
		sc.SetPos(start)
		if ctx.Committed() {
			ctx.Fail(sc.Pos(), "unknown-node")
		}
		return path.Segment{}, 0, false
	}

	var match *schema.ChildInfo
	for i := range candidates {
		c := &candidates[i]
		if c.Name != name {
			continue
		}
		mod := c.Module
		if hasPrefix {
			if prefix != mod {
				continue
			}
		}
		match = c
		break
	}
	if match == nil {
		sc.SetPos(start)
		if ctx.Committed() || first {
			ctx.Fail(sc.Pos(), fmt.Sprintf("unknown-node: %s", name))
		}
		return path.Segment{}, 0, false
	}
	ctx.Commit()
	if hasPrefix {
		ctx.CurrentModule = prefix
	}
	mod := ""
	if match.Module != ctx.Schema.TopModule() || hasPrefix {
		mod = match.Module
	}

	switch match.Kind {
	case path.KindContainer:
		return path.Container(mod, name), match.Kind, true
	case path.KindPresenceContainer:
		return path.Container(mod, name), match.Kind, true
	case path.KindLeaf:
		return path.Leaf(mod, name), match.Kind, true
	case path.KindRPC:
		return path.RPC(mod, name), match.Kind, true
	case path.KindAction:
		return path.Action(mod, name), match.Kind, true
	case path.KindList:
		if opts.Kind == KindSchema {
			return path.List(mod, name), match.Kind, true
		}
		return parseListElement(ctx, sc, mod, name, match, opts)
	case path.KindLeafList:
		if opts.Kind == KindSchema {
			return path.LeafList(mod, name), match.Kind, true
		}
		return parseLeafListElement(ctx, sc, mod, name)
	default:
		return path.Segment{}, 0, false
	}
}

// parseListElement parses the "[key=value][key2=value2]..." suffix of
// §4.5 steps 5, validating the declared key set and publishing
// completion entries for missing keys / key values.
func parseListElement(ctx *parsectx.Context, sc *lex.Scanner, mod, name string, match *schema.ChildInfo, opts Options) (path.Segment, path.SchemaKind, bool) {
	listSchemaPath := ctx.CurrentPath.SchemaPath().Push(path.List(mod, name))

	if sc.Peek() != '[' {
		if opts.Kind == KindDataBareListTail {
			return path.List(mod, name), path.KindList, true
		}
		ctx.Fail(sc.Pos(), fmt.Sprintf("list-key-missing: Not enough keys for %s. Missing: %s",
			name, strings.Join(match.ListKeys, ", ")))
		return path.Segment{}, 0, false
	}

	ctx.BeginList(listSchemaPath)
	for sc.Peek() == '[' {
		sc.Advance()
		anchor := sc.Pos()
		var missing []string
		for _, k := range match.ListKeys {
			if _, ok := ctx.ListKeysSoFar().Get(k); !ok {
				missing = append(missing, k)
			}
		}
		entries := make([]parsectx.Entry, 0, len(missing))
		for _, k := range missing {
			entries = append(entries, parsectx.Entry{Value: k, Suffix: "=", WhenToAdd: parsectx.AddAlways})
		}
		ctx.PublishSuggestions(anchor, entries)

		keyName, ok := sc.Identifier()
		if !ok {
			ctx.EndList()
			ctx.Fail(sc.Pos(), "list-key-unknown: expected a key name")
			return path.Segment{}, 0, false
		}
		if !ctx.Schema.IsListKey(listSchemaPath, keyName) {
			ctx.EndList()
			ctx.Fail(sc.Pos(), fmt.Sprintf("list-key-unknown: %s", keyName))
			return path.Segment{}, 0, false
		}
		if _, dup := ctx.ListKeysSoFar().Get(keyName); dup {
			ctx.EndList()
			ctx.Fail(sc.Pos(), fmt.Sprintf("list-key-duplicate: %s", keyName))
			return path.Segment{}, 0, false
		}
		if sc.Peek() != '=' {
			ctx.EndList()
			ctx.Fail(sc.Pos(), "list-key-missing: expected '='")
			return path.Segment{}, 0, false
		}
		sc.Advance()
		ctx.Commit()

		keyPath := listSchemaPath.Push(path.Leaf("", keyName))
		keyType, err := ctx.Schema.LeafType(keyPath)
		if err != nil {
			ctx.EndList()
			ctx.Fail(sc.Pos(), err.Error())
			return path.Segment{}, 0, false
		}
		ctx.SetLeafLocation(keyPath)
		publishListKeyValueSuggestions(ctx, sc, listSchemaPath, keyName)
		v, ok := leafvalue.Parse(ctx, sc, keyType)
		if !ok {
			ctx.EndList()
			return path.Segment{}, 0, false
		}
		ctx.AddListKey(keyName, v)

		if sc.Peek() != ']' {
			ctx.EndList()
			ctx.Fail(sc.Pos(), "list-key-missing: expected ']'")
			return path.Segment{}, 0, false
		}
		sc.Advance()
	}

	keys := ctx.EndList()
	if !keys.EqualKeySet(match.ListKeys) {
		if keys.HasDuplicates() {
			ctx.Fail(sc.Pos(), "list-key-duplicate")
		} else {
			missing := keys.MissingKeys(match.ListKeys)
			ctx.Fail(sc.Pos(), fmt.Sprintf("list-key-missing: Not enough keys for %s. Missing: %s",
				name, strings.Join(missing, ", ")))
		}
		return path.Segment{}, 0, false
	}

	return path.ListElement(mod, name, keys), path.KindList, true
}

// publishListKeyValueSuggestions enumerates the existing instances of the
// list at listPath through ctx.DataQuery, filters them down to the ones
// consistent with the keys already supplied (§4.5 step 5: "when inside a
// value, enumerate values from the data-query facade filtered by keys
// already supplied"), and publishes the distinct values of keyName among
// the survivors as completion entries. A nil DataQuery or a query error
// leaves whatever leafvalue.Parse itself publishes for the type untouched.
func publishListKeyValueSuggestions(ctx *parsectx.Context, sc *lex.Scanner, listPath path.Path, keyName string) {
	if ctx.DataQuery == nil {
		return
	}
	instances, err := ctx.DataQuery.ListInstances(context.Background(), listPath)
	if err != nil || len(instances) == 0 {
		return
	}
	soFar := ctx.ListKeysSoFar()
	seen := map[string]bool{}
	var values []string
	for _, inst := range instances {
		if !instanceMatchesSoFar(inst, soFar) {
			continue
		}
		v, ok := inst.Get(keyName)
		if !ok {
			continue
		}
		text := path.RenderLeafValue(v)
		if seen[text] {
			continue
		}
		seen[text] = true
		values = append(values, text)
	}
	if len(values) == 0 {
		return
	}
	sort.Strings(values)
	entries := make([]parsectx.Entry, len(values))
	for i, v := range values {
		entries[i] = parsectx.Entry{Value: v, WhenToAdd: parsectx.AddIfFullMatch}
	}
	ctx.PublishSuggestions(sc.Pos(), entries)
}

// instanceMatchesSoFar reports whether inst agrees with every key already
// supplied in soFar (missing keys in inst are not a mismatch — the
// data-query facade is free to return partial key sets).
func instanceMatchesSoFar(inst, soFar path.KeyInstance) bool {
	for _, kv := range soFar {
		iv, ok := inst.Get(kv.Name)
		if !ok || !iv.Equal(kv.Value) {
			return false
		}
	}
	return true
}

// parseLeafListElement parses "[.=value]" (§4.5 step 6), also accepting
// the short form "[value]" without the ".=" selector.
func parseLeafListElement(ctx *parsectx.Context, sc *lex.Scanner, mod, name string) (path.Segment, path.SchemaKind, bool) {
	if sc.Peek() != '[' {
		ctx.Fail(sc.Pos(), fmt.Sprintf("list-key-missing: expected [.=value] for %s", name))
		return path.Segment{}, 0, false
	}
	sc.Advance()
	if sc.Literal(".") {
		if sc.Peek() != '=' {
			ctx.Fail(sc.Pos(), "list-key-missing: expected '='")
			return path.Segment{}, 0, false
		}
		sc.Advance()
	}
	ctx.Commit()

	llPath := ctx.CurrentPath.SchemaPath().Push(path.LeafList(mod, name))
	itemType, err := ctx.Schema.LeafType(llPath)
	if err != nil {
		ctx.Fail(sc.Pos(), err.Error())
		return path.Segment{}, 0, false
	}
	ctx.SetLeafLocation(llPath)
	v, ok := leafvalue.Parse(ctx, sc, itemType)
	if !ok {
		return path.Segment{}, 0, false
	}
	if sc.Peek() != ']' {
		ctx.Fail(sc.Pos(), "list-key-missing: expected ']'")
		return path.Segment{}, 0, false
	}
	sc.Advance()
	return path.LeafListElement(mod, name, v), path.KindLeafList, true
}
