// Package lex implements the lexical primitives of §4.3: identifiers,
// module-qualified names, whitespace, and quoted strings, over a
// rune-offset scanner. Grounded on the teacher's hand-rolled,
// offset-tracked scanning in its xpath tokenizer rather than on a
// declarative regexp-per-token combinator, because the error model
// (§4.9) and the completion engine (§4.7) both need exact rune offsets a
// generic tokenizer would have to be taught to expose.
package lex

import "strings"

// Scanner walks a string by rune position, the way the teacher's xpath
// lexer walks a []rune buffer. Position is always a rune index, matching
// the offsets used throughout §4.5/§4.7/§4.9.
type Scanner struct {
	runes []rune
	pos   int
}

func New(input string) *Scanner {
	return &Scanner{runes: []rune(input)}
}

func (s *Scanner) Pos() int      { return s.pos }
func (s *Scanner) SetPos(p int)  { s.pos = p }
func (s *Scanner) Len() int      { return len(s.runes) }
func (s *Scanner) AtEnd() bool   { return s.pos >= len(s.runes) }
func (s *Scanner) Remaining() string {
	return string(s.runes[s.pos:])
}

// Peek returns the rune at the current position without consuming it, or
// 0 at end of input.
func (s *Scanner) Peek() rune {
	if s.AtEnd() {
		return 0
	}
	return s.runes[s.pos]
}

func (s *Scanner) Advance() rune {
	r := s.Peek()
	if r != 0 {
		s.pos++
	}
	return r
}

// SkipSpace consumes a space-separator run (§4.3: one or more whitespace
// runs) and reports whether any whitespace was consumed.
func (s *Scanner) SkipSpace() bool {
	start := s.pos
	for !s.AtEnd() && isSpace(s.runes[s.pos]) {
		s.pos++
	}
	return s.pos > start
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9') || r == '-' || r == '.'
}

// Identifier consumes a leading identifier if present, returning it and
// true; otherwise leaves the position unchanged and returns false.
func (s *Scanner) Identifier() (string, bool) {
	if s.AtEnd() || !isIdentStart(s.runes[s.pos]) {
		return "", false
	}
	start := s.pos
	s.pos++
	for !s.AtEnd() && isIdentCont(s.runes[s.pos]) {
		s.pos++
	}
	return string(s.runes[start:s.pos]), true
}

// ModulePrefix consumes "identifier:" with no whitespace around the
// colon and a non-whitespace character required after it (§4.3), without
// consuming the following name — callers call Identifier next. On
// failure the scanner position is restored.
func (s *Scanner) ModulePrefix() (string, bool) {
	start := s.pos
	ident, ok := s.Identifier()
	if !ok {
		return "", false
	}
	if s.AtEnd() || s.runes[s.pos] != ':' {
		s.pos = start
		return "", false
	}
	if s.pos+1 >= len(s.runes) || isSpace(s.runes[s.pos+1]) {
		s.pos = start
		return "", false
	}
	s.pos++ // consume ':'
	return ident, true
}

// QuotedString consumes a balanced single- or double-quoted string,
// allowing any character except the matching quote, with no escapes
// inside (§4.3). Returns the unquoted content.
func (s *Scanner) QuotedString() (string, bool) {
	if s.AtEnd() {
		return "", false
	}
	quote := s.runes[s.pos]
	if quote != '\'' && quote != '"' {
		return "", false
	}
	start := s.pos
	i := s.pos + 1
	for i < len(s.runes) && s.runes[i] != quote {
		i++
	}
	if i >= len(s.runes) {
		return "", false // unterminated
	}
	content := string(s.runes[s.pos+1 : i])
	s.pos = i + 1
	_ = start
	return content, true
}

// TokenSince returns the substring consumed between start and the
// current position, for callers that scanned a token character-by-
// character and now want the text they matched.
func (s *Scanner) TokenSince(start int) string {
	if start < 0 || start > s.pos || s.pos > len(s.runes) {
		return ""
	}
	return string(s.runes[start:s.pos])
}

// Literal consumes an exact, case-sensitive literal token if the
// remaining input starts with it; used for keywords and punctuation.
func (s *Scanner) Literal(lit string) bool {
	if strings.HasPrefix(string(s.runes[s.pos:]), lit) {
		s.pos += len([]rune(lit))
		return true
	}
	return false
}

// PrefixOfRemaining reports whether candidate could still be completed
// by the remaining input, i.e. the whole remaining input is a prefix of
// candidate (a remaining input longer than candidate never is) (used by longest-prefix matching, §4.5 step
// 4, and by completion filtering, §4.7 step 4).
func PrefixOfRemaining(remaining, candidate string) bool {
	if len(remaining) > len(candidate) {
		return false
	}
	return strings.HasPrefix(candidate, remaining)
}
