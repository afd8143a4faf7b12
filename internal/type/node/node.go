// Released under an MIT license. See LICENSE.

// Package node provides flatlisp's container type.
package node

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/flatlisp/internal/type/atom"
)

// ErrUnsupportedDelimiter is returned for a container opened by an unknown delimiter.
var ErrUnsupportedDelimiter = errors.New("unsupported delimiter")

// Kind is a container's type.
type Kind string

// Container kinds.
const (
	Exec   Kind = "exec"
	Vector Kind = "vector"
	Map    Kind = "map"
	String Kind = "string"
	List   Kind = "list"
)

// KindOf maps an opening delimiter to the kind of container it opens.
func KindOf(delimiter string) (Kind, error) {
	switch delimiter {
	case "(":
		return Exec, nil
	case "[":
		return Vector, nil
	case "{":
		return Map, nil
	case `"`:
		return String, nil
	case "'":
		return List, nil
	}

	return "", ErrUnsupportedDelimiter
}

// T (node) is a container of atoms in source order.
type T struct {
	kind     Kind
	children []atom.T
}

type node = T

// New creates an empty node of kind k.
func New(k Kind) *T {
	return &T{kind: k}
}

// Append adds the atom a as the node's last child.
func (n *node) Append(a atom.T) {
	n.children = append(n.children, a)
}

// Children returns the node's children. The caller must not modify them.
func (n *node) Children() []atom.T {
	return n.children
}

// Kind returns the node's kind.
func (n *node) Kind() Kind {
	return n.kind
}

// References returns the ids of the node's reference children, in order.
func (n *node) References() []int {
	var ids []int

	for _, c := range n.children {
		if c.Is(atom.Reference) {
			ids = append(ids, c.Reference())
		}
	}

	return ids
}

// String returns the text rendering of the node n.
func (n *node) String() string {
	var b strings.Builder

	b.WriteString("(")
	b.WriteString(string(n.kind))
	b.WriteString(" ")

	for i, c := range n.children {
		if i > 0 {
			b.WriteString(" ")
		}

		b.WriteString(c.String())
	}

	b.WriteString(")")

	return b.String()
}
