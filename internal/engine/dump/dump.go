// Released under an MIT license. See LICENSE.

// Package dump writes tokens and arenas as YAML for debugging.
package dump

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/michaelmacinnis/flatlisp/internal/common/struct/token"
	"github.com/michaelmacinnis/flatlisp/internal/type/arena"
	"github.com/michaelmacinnis/flatlisp/internal/type/node"
)

// Token is the YAML form of a token.
type Token struct {
	Value  string `yaml:"value"`
	Class  string `yaml:"class"`
	Source string `yaml:"source"`
}

// Node is the YAML form of an arena entry.
type Node struct {
	ID       int      `yaml:"id"`
	Kind     string   `yaml:"kind"`
	Children []string `yaml:"children,flow"`
}

// Document is everything a dump contains.
type Document struct {
	Tokens []Token `yaml:"tokens,omitempty"`
	Arena  []Node  `yaml:"arena"`
}

// New collects tokens and the entries of a into a Document.
func New(tokens []*token.T, a *arena.T) *Document {
	d := &Document{Arena: []Node{}}

	for _, t := range tokens {
		d.Tokens = append(d.Tokens, Token{
			Value:  t.Value(),
			Class:  t.Class().String(),
			Source: t.Source().String(),
		})
	}

	a.Each(func(id int, n *node.T) {
		cs := make([]string, 0, len(n.Children()))
		for _, c := range n.Children() {
			cs = append(cs, c.Literal())
		}

		d.Arena = append(d.Arena, Node{ID: id, Kind: string(n.Kind()), Children: cs})
	})

	return d
}

// Write encodes the document d to w.
func (d *Document) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return err
	}

	return enc.Close()
}
