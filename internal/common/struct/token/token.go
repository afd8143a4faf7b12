// Released under an MIT license. See LICENSE.

// Package token is shared by the flatlisp lexer and reader.
package token

import (
	"strconv"

	"github.com/michaelmacinnis/flatlisp/internal/common/struct/loc"
)

// Class is a token's type.
type Class int

// Token classes.
const (
	Text Class = iota
	Delimiter
)

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Text:
		return "Text"
	case Delimiter:
		return "Delimiter"
	}

	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// Is returns true if the token t's value is any of the strings in vs.
func (t *token) Is(vs ...string) bool {
	if t == nil {
		return false
	}

	for _, v := range vs {
		if t.value == v {
			return true
		}
	}

	return false
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// Source returns the source location for this token.
func (t *token) Source() loc.T {
	return t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}

// Values returns the string value of each token in ts.
func Values(ts []*T) []string {
	vs := make([]string, len(ts))
	for i, t := range ts {
		vs[i] = t.value
	}

	return vs
}
