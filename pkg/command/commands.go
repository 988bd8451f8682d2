package command

import (
	"fmt"

	"github.com/danos/ncli/pkg/lex"
	"github.com/danos/ncli/pkg/leafvalue"
	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
	"github.com/danos/ncli/pkg/pathparser"
)

func parseDatastore(ctx *parsectx.Context, sc *lex.Scanner) (path.Datastore, bool) {
	names := []string{"running", "startup", "operational"}
	anchor := sc.Pos()
	entries := make([]parsectx.Entry, len(names))
	for i, n := range names {
		entries[i] = parsectx.Entry{Value: n, Suffix: " ", WhenToAdd: parsectx.AddAlways}
	}
	ctx.PublishSuggestions(anchor, entries)

	start := sc.Pos()
	ident, ok := sc.Identifier()
	if !ok {
		ctx.Fail(sc.Pos(), "invalid-command: expected a datastore target")
		return 0, false
	}
	switch ident {
	case "running":
		return path.DSRunning, true
	case "startup":
		return path.DSStartup, true
	case "operational":
		return path.DSOperational, true
	default:
		sc.SetPos(start)
		ctx.Fail(sc.Pos(), fmt.Sprintf("invalid-command: unknown datastore %q", ident))
		return 0, false
	}
}

func parseLs(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	cmd := &path.LsCmd{}
	for {
		sc.SkipSpace()
		save := sc.Pos()
		if sc.Literal("--recursive") {
			cmd.Options.Recursive = true
			continue
		}
		sc.SetPos(save)
		break
	}
	sc.SkipSpace()
	if sc.AtEnd() {
		return cmd, true
	}
	p, ok := pathparser.Parse(ctx, sc, pathparser.Options{Kind: pathparser.KindDataBareListTail})
	if !ok {
		return nil, false
	}
	cmd.Path = &p
	return cmd, true
}

func parseCd(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	p, ok := pathparser.Parse(ctx, sc, pathparser.DataPathOptions(pathparser.TailContainerOrListElement))
	if !ok {
		return nil, false
	}
	return &path.CdCmd{Path: p}, true
}

func parseGet(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	cmd := &path.GetCmd{}
	sc.SkipSpace()
	if sc.Literal("--datastore") {
		sc.SkipSpace()
		ds, ok := parseDatastore(ctx, sc)
		if !ok {
			return nil, false
		}
		cmd.Datastore = &ds
		sc.SkipSpace()
	}
	if sc.AtEnd() {
		return cmd, true
	}
	p, ok := pathparser.Parse(ctx, sc, pathparser.Options{Kind: pathparser.KindDataBareListTail})
	if !ok {
		return nil, false
	}
	cmd.Path = &p
	return cmd, true
}

func parseSet(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	p, ok := pathparser.Parse(ctx, sc, pathparser.DataPathOptions(pathparser.TailWritableLeaf))
	if !ok {
		return nil, false
	}
	sc.SkipSpace()
	ctx.SetLeafLocation(p.SchemaPath())
	t, err := ctx.Schema.LeafType(p.SchemaPath())
	if err != nil {
		ctx.Fail(sc.Pos(), err.Error())
		return nil, false
	}
	v, ok := leafvalue.Parse(ctx, sc, t)
	if !ok {
		return nil, false
	}
	return &path.SetCmd{Path: p, Value: v}, true
}

func parseCreate(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	p, ok := pathparser.Parse(ctx, sc, pathparser.DataPathOptions(pathparser.TailPresenceListOrLeafListElement))
	if !ok {
		return nil, false
	}
	return &path.CreateCmd{Path: p}, true
}

func parseDelete(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	p, ok := pathparser.Parse(ctx, sc, pathparser.DataPathOptions(pathparser.TailAny))
	if !ok {
		return nil, false
	}
	last, _ := p.Last()
	k, err := ctx.Schema.Kind(p.SchemaPath())
	if err != nil {
		ctx.Fail(sc.Pos(), err.Error())
		return nil, false
	}
	ok2 := (k == path.KindPresenceContainer) ||
		(k == path.KindList && last.Kind == path.SegListElement) ||
		(k == path.KindLeafList && last.Kind == path.SegLeafListElement) ||
		(k == path.KindLeaf)
	if !ok2 {
		ctx.Fail(sc.Pos(), "wrong-node-kind: delete requires a presence container, list element, leaf-list element, or leaf")
		return nil, false
	}
	if k == path.KindLeaf && !ctx.WritableOps() {
		isConfig, err := ctx.Schema.IsConfig(p.SchemaPath())
		if err != nil {
			ctx.Fail(sc.Pos(), err.Error())
			return nil, false
		}
		if !isConfig {
			ctx.Fail(sc.Pos(), "wrong-node-kind: operational-state leaf is read-only (writable-ops is off)")
			return nil, false
		}
	}
	return &path.DeleteCmd{Path: p}, true
}

func parseMove(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	argStart := sc.Pos()
	savedPath := ctx.CurrentPath
	savedCommitted := ctx.SaveCommitted()

	p, ok := pathparser.Parse(ctx, sc, pathparser.DataPathOptions(pathparser.TailListInstance))
	if !ok {
		sc.SetPos(argStart)
		ctx.CurrentPath = savedPath
		ctx.RestoreCommitted(savedCommitted)
		ctx.Unfail()
		p, ok = pathparser.Parse(ctx, sc, pathparser.DataPathOptions(pathparser.TailLeafListElement))
		if !ok {
			return nil, false
		}
	}
	sc.SkipSpace()

	names := []string{"begin", "end", "before", "after"}
	anchor := sc.Pos()
	entries := make([]parsectx.Entry, len(names))
	for i, n := range names {
		entries[i] = parsectx.Entry{Value: n, Suffix: " ", WhenToAdd: parsectx.AddAlways}
	}
	ctx.PublishSuggestions(anchor, entries)

	start := sc.Pos()
	kw, ok := sc.Identifier()
	if !ok {
		ctx.Fail(sc.Pos(), "invalid-command: expected begin|end|before|after")
		return nil, false
	}

	dest := path.MoveDestination{}
	switch kw {
	case "begin":
		dest.Kind = path.MoveBegin
	case "end":
		dest.Kind = path.MoveEnd
	case "before", "after":
		if kw == "before" {
			dest.Kind = path.MoveBefore
		} else {
			dest.Kind = path.MoveAfter
		}
		sc.SkipSpace()
		last, _ := p.Last()
		var t path.LeafType
		var err error
		if last.Kind == path.SegLeafListElement {
			t, err = ctx.Schema.LeafType(p.SchemaPath())
		} else {
			keyNames, kerr := ctx.Schema.ListKeys(p.SchemaPath())
			if kerr != nil || len(keyNames) == 0 {
				ctx.Fail(sc.Pos(), "list-key-missing: list has no declared keys")
				return nil, false
			}
			t, err = ctx.Schema.LeafType(p.SchemaPath().Push(path.Leaf("", keyNames[0])))
		}
		if err != nil {
			ctx.Fail(sc.Pos(), err.Error())
			return nil, false
		}
		v, ok := leafvalue.Parse(ctx, sc, t)
		if !ok {
			return nil, false
		}
		dest.Key = &v
	default:
		sc.SetPos(start)
		ctx.Fail(sc.Pos(), fmt.Sprintf("invalid-command: unknown move destination %q", kw))
		return nil, false
	}

	return &path.MoveCmd{Source: p, Destination: dest}, true
}

func parseCopy(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	src, ok := parseDatastore(ctx, sc)
	if !ok {
		return nil, false
	}
	sc.SkipSpace()
	dst, ok := parseDatastore(ctx, sc)
	if !ok {
		return nil, false
	}
	if src == dst {
		ctx.Fail(sc.Pos(), fmt.Sprintf("copy-same-datastore: %s", src))
		return nil, false
	}
	return &path.CopyCmd{Source: src, Destination: dst}, true
}

func parseDescribe(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	p, ok := pathparser.Parse(ctx, sc, pathparser.Options{Kind: pathparser.KindDataBareListTail})
	if !ok {
		return nil, false
	}
	return &path.DescribeCmd{Path: p}, true
}

func parsePrepare(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	p, ok := pathparser.Parse(ctx, sc, pathparser.Options{
		Kind: pathparser.KindData, Tail: pathparser.TailRPCOrAction,
		AllowRPCActions: true, AllowInput: true,
	})
	if !ok {
		return nil, false
	}
	return &path.PrepareCmd{Path: p}, true
}

func parseExec(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	sc.SkipSpace()
	if sc.AtEnd() {
		return &path.ExecCmd{}, true
	}
	p, ok := pathparser.Parse(ctx, sc, pathparser.Options{
		Kind: pathparser.KindData, Tail: pathparser.TailRPCOrAction,
		AllowRPCActions: true, AllowInput: false,
	})
	if !ok {
		return nil, false
	}
	return &path.ExecCmd{Path: &p}, true
}

func parseDump(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	anchor := sc.Pos()
	ctx.PublishSuggestions(anchor, []parsectx.Entry{
		{Value: "xml", WhenToAdd: parsectx.AddAlways},
		{Value: "json", WhenToAdd: parsectx.AddAlways},
	})
	start := sc.Pos()
	ident, ok := sc.Identifier()
	if !ok {
		ctx.Fail(sc.Pos(), "invalid-command: expected xml or json")
		return nil, false
	}
	switch ident {
	case "xml":
		return &path.DumpCmd{Format: path.DumpXML}, true
	case "json":
		return &path.DumpCmd{Format: path.DumpJSON}, true
	default:
		sc.SetPos(start)
		ctx.Fail(sc.Pos(), fmt.Sprintf("invalid-command: unknown dump format %q", ident))
		return nil, false
	}
}

func parseSwitch(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	ds, ok := parseDatastore(ctx, sc)
	if !ok {
		return nil, false
	}
	return &path.SwitchCmd{Datastore: ds}, true
}

func parseHelp(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
	sc.SkipSpace()
	anchor := sc.Pos()
	entries := make([]parsectx.Entry, 0, len(Table))
	for _, s := range Table {
		entries = append(entries, parsectx.Entry{Value: s.Keyword, WhenToAdd: parsectx.AddAlways})
	}
	ctx.PublishSuggestions(anchor, entries)

	if sc.AtEnd() {
		return &path.HelpCmd{}, true
	}
	ident, ok := sc.Identifier()
	if !ok || lookup(ident) == nil {
		ctx.Fail(sc.Pos(), fmt.Sprintf("invalid-command: unknown command %q", ident))
		return nil, false
	}
	return &path.HelpCmd{Command: ident}, true
}
