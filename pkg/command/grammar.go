// Package command implements the top-level command grammar of §4.6: a
// table-driven dispatcher over per-command argument grammars, grounded
// directly on the teacher's cmd/cfgcli/commands.go Command{Name, Help,
// CompFn, RunFn, ValidFn} registry — generalized here to produce a typed
// path.Command AST instead of dispatching an RPC call. Per Design Notes
// §9, this table is the only place a new command touches the grammar.
package command

import (
	"fmt"

	"github.com/danos/ncli/pkg/lex"
	"github.com/danos/ncli/pkg/parsectx"
	"github.com/danos/ncli/pkg/path"
)

// Spec is one row of the command table.
type Spec struct {
	Keyword string
	Help    string
	Parse   func(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool)
}

// Table lists every command, in the order `help` (with no argument)
// should enumerate them. It is filled in by init because parseHelp itself
// reads Table.
var Table []Spec

func init() {
	Table = []Spec{
	{Keyword: "ls", Help: "List schema or data tree children", Parse: parseLs},
	{Keyword: "cd", Help: "Change the current path", Parse: parseCd},
	{Keyword: "get", Help: "Read data from a datastore", Parse: parseGet},
	{Keyword: "set", Help: "Set a leaf's value", Parse: parseSet},
	{Keyword: "create", Help: "Create a presence container, list element, or leaf-list element", Parse: parseCreate},
	{Keyword: "delete", Help: "Delete a node", Parse: parseDelete},
	{Keyword: "move", Help: "Reorder a list element or leaf-list element", Parse: parseMove},
	{Keyword: "copy", Help: "Copy one datastore's contents into another", Parse: parseCopy},
	{Keyword: "commit", Help: "Commit pending changes", Parse: parseNoArgs(func() path.Command { return &path.CommitCmd{} })},
	{Keyword: "discard", Help: "Discard pending changes", Parse: parseNoArgs(func() path.Command { return &path.DiscardCmd{} })},
	{Keyword: "describe", Help: "Describe a schema or data node", Parse: parseDescribe},
	{Keyword: "prepare", Help: "Prepare an RPC or action for execution", Parse: parsePrepare},
	{Keyword: "exec", Help: "Execute an RPC or action", Parse: parseExec},
	{Keyword: "cancel", Help: "Cancel the prepared RPC or action", Parse: parseNoArgs(func() path.Command { return &path.CancelCmd{} })},
	{Keyword: "dump", Help: "Dump the current subtree as xml or json", Parse: parseDump},
	{Keyword: "switch", Help: "Switch the active datastore target", Parse: parseSwitch},
	{Keyword: "help", Help: "Show help for a command", Parse: parseHelp},
	{Keyword: "quit", Help: "Quit", Parse: parseNoArgs(func() path.Command { return &path.QuitCmd{} })},
	}
}

func lookup(keyword string) *Spec {
	for i := range Table {
		if Table[i].Keyword == keyword {
			return &Table[i]
		}
	}
	return nil
}

// Dispatch runs the top-level rule of §4.6: optional leading whitespace,
// a command keyword, per-command arguments, optional trailing
// whitespace, end-of-input.
func Dispatch(ctx *parsectx.Context, line string) (path.Command, bool) {
	sc := lex.New(line)
	sc.SkipSpace()

	anchor := sc.Pos()
	entries := make([]parsectx.Entry, 0, len(Table))
	for _, s := range Table {
		entries = append(entries, parsectx.Entry{Value: s.Keyword, Suffix: " ", WhenToAdd: parsectx.AddAlways})
	}
	ctx.PublishSuggestions(anchor, entries)

	start := sc.Pos()
	keyword, ok := sc.Identifier()
	if !ok {
		ctx.Fail(sc.Pos(), "invalid-command: expected a command keyword")
		return nil, false
	}
	spec := lookup(keyword)
	if spec == nil {
		sc.SetPos(start)
		ctx.Fail(sc.Pos(), fmt.Sprintf("invalid-command: %s", keyword))
		return nil, false
	}

	// Passing the keyword is the expectation point of §4.6/§4.9: from
	// here on, a failure is an error, not a silent fall-back to
	// command-level completions (the "cd ex" tie-break).
	ctx.Commit()
	sc.SkipSpace()

	cmd, ok := spec.Parse(ctx, sc)
	if !ok {
		return nil, false
	}

	sc.SkipSpace()
	if !sc.AtEnd() {
		ctx.Fail(sc.Pos(), "too-many-arguments")
		return nil, false
	}
	return cmd, true
}

func parseNoArgs(make func() path.Command) func(*parsectx.Context, *lex.Scanner) (path.Command, bool) {
	return func(ctx *parsectx.Context, sc *lex.Scanner) (path.Command, bool) {
		return make(), true
	}
}
