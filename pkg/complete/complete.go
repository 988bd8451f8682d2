// Package complete implements the completion engine of §4.7: run the
// grammar in completing mode, take the suggestion set and anchor at the
// point of deepest progress, filter by the text already typed since the
// anchor, and append a candidate's suffix when it is the unique survivor.
package complete

import (
	"sort"
	"unicode/utf8"

	"github.com/derekparker/trie"

	"github.com/danos/ncli/pkg/parsectx"
)

// Result is the outcome of one completion request.
type Result struct {
	// Entries is the filtered, deduplicated, deterministically sorted
	// suggestion set.
	Entries []parsectx.Entry
	// ContextLength is input_end - anchor (§4.7 step 5): how many
	// trailing runes of the input the caller should consider replaced by
	// a chosen entry's value.
	ContextLength int
	// Append, when non-empty, is the text the caller should insert after
	// the unique surviving entry's value (§4.7 step 6).
	Append string
}

// Runner is satisfied by anything that runs one grammar attempt in
// completing mode and reports success/failure, which this package
// deliberately ignores per §4.7 step 2.
type Runner func(ctx *parsectx.Context, line string) (ok bool)

// Run executes run against line in completing mode and computes the
// completion Result from whatever suggestion set ended up published at
// the point of deepest progress.
func Run(ctx *parsectx.Context, line string, run Runner) Result {
	ctx.SetCompleting(true)
	run(ctx, line) // success/failure ignored, per §4.7 step 2

	anchor := ctx.Anchor()
	if anchor < 0 {
		anchor = 0
	}
	runes := []rune(line)
	if anchor > len(runes) {
		anchor = len(runes)
	}
	prefix := string(runes[anchor:])

	filtered := filterByPrefix(ctx.Suggestions(), prefix)
	filtered = dedup(filtered)
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Value != filtered[j].Value {
			return NaturalLess(filtered[i].Value, filtered[j].Value)
		}
		if filtered[i].Suffix != filtered[j].Suffix {
			return filtered[i].Suffix < filtered[j].Suffix
		}
		return filtered[i].WhenToAdd < filtered[j].WhenToAdd
	})

	res := Result{
		Entries:       filtered,
		ContextLength: utf8.RuneCountInString(prefix),
	}

	if len(filtered) == 1 {
		e := filtered[0]
		fullMatch := e.Value == prefix
		if e.WhenToAdd == parsectx.AddAlways || (e.Suffix != "" && fullMatch) {
			res.Append = e.Suffix
		}
	}
	return res
}

// filterByPrefix keeps only entries whose Value starts with prefix,
// using a trie for the prefix search (§4.7 step 4) the way a real
// completion engine would, rather than a linear strings.HasPrefix scan
// over every candidate.
func filterByPrefix(entries []parsectx.Entry, prefix string) []parsectx.Entry {
	if len(entries) == 0 {
		return nil
	}
	t := trie.New()
	byValue := make(map[string][]parsectx.Entry, len(entries))
	for _, e := range entries {
		if _, ok := byValue[e.Value]; !ok {
			t.Add(e.Value, nil)
		}
		byValue[e.Value] = append(byValue[e.Value], e)
	}
	matches := t.PrefixSearch(prefix)
	out := make([]parsectx.Entry, 0, len(matches))
	for _, m := range matches {
		out = append(out, byValue[m]...)
	}
	return out
}

func dedup(entries []parsectx.Entry) []parsectx.Entry {
	seen := make(map[parsectx.Entry]bool, len(entries))
	out := make([]parsectx.Entry, 0, len(entries))
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
