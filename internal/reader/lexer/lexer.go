// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for flatlisp source.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Every delimiter rune is a token by itself. Any other run of runes is a
// single token. Tokens that are exactly a space, newline or tab are dropped.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/flatlisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/flatlisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	state action   // Current action.

	start  loc.T // Location of the current token's first rune.
	source loc.T // Location of the current rune.

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.New(label),
	}

	l.start = l.source
	l.state = startToken

	return l
}

// Tokenize scans all of src and returns its tokens in source order.
func Tokenize(label, src string) []*token.T {
	l := New(label)

	l.Scan(src)

	var ts []*token.T
	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

// IsDelimiter returns true if r always forms a token by itself.
func IsDelimiter(r rune) bool {
	switch r {
	case '{', '}', '[', ']', '(', ')', ' ', '\n', '"', '\'', '@', '~', '`':
		return true
	}

	return false
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
//
// The end of the available text ends the current token so a buffer
// that will be followed by another should end with a delimiter.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		l.gather()

		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	l.source = l.source.Advance(r)
	l.index += w
}

func (l *T) emit(c token.Class) {
	if s := l.Text(); !ignored(s) {
		l.tokens = append(l.tokens, token.New(c, s, l.start))
	}

	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.index -= l.first
	l.first = 0
	l.queue = nil

	if l.state == nil {
		l.state = startToken
	}
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.source
}

// T states.

func scanText(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.emit(token.Text)
			return nil
		case IsDelimiter(r):
			l.emit(token.Text)
			return startToken
		}

		l.accept(r, w)
	}
}

func startToken(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case IsDelimiter(r):
		l.accept(r, w)
		l.emit(token.Delimiter)

		return startToken
	}

	return scanText
}

// Helper functions (well, function).

func ignored(s string) bool {
	return s == " " || s == "\n" || s == "\t"
}
