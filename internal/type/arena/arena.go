// Released under an MIT license. See LICENSE.

// Package arena provides the id-indexed store of completed containers.
//
// Ids are dense and start at 0. They are assigned in the order containers
// open, so a parent's id is always smaller than the ids of everything
// nested inside it and the store can hold no cycles.
package arena

import (
	"github.com/michaelmacinnis/flatlisp/internal/type/node"
)

// T (arena) maps node ids to completed nodes. It is read-only.
type T struct {
	nodes []*node.T
}

type arena = T

// Get returns the node with the given id, if there is one.
func (a *arena) Get(id int) (*node.T, bool) {
	if a == nil || id < 0 || id >= len(a.nodes) || a.nodes[id] == nil {
		return nil, false
	}

	return a.nodes[id], true
}

// Len returns the number of ids assigned while building the arena a.
func (a *arena) Len() int {
	if a == nil {
		return 0
	}

	return len(a.nodes)
}

// Each calls f for every node in id order.
func (a *arena) Each(f func(id int, n *node.T)) {
	if a == nil {
		return
	}

	for id, n := range a.nodes {
		if n != nil {
			f(id, n)
		}
	}
}

// Builder reserves ids and collects committed nodes.
type Builder struct {
	committed int
	nodes     []*node.T
}

// Reserve returns the next unused id.
func (b *Builder) Reserve() int {
	b.nodes = append(b.nodes, nil)

	return len(b.nodes) - 1
}

// Next returns the id the next call to Reserve will return.
func (b *Builder) Next() int {
	return len(b.nodes)
}

// Commit stores the completed node n under the reserved id.
func (b *Builder) Commit(id int, n *node.T) {
	if b.nodes[id] == nil {
		b.committed++
	}

	b.nodes[id] = n
}

// Complete returns true if every reserved id has been committed.
func (b *Builder) Complete() bool {
	return b.committed == len(b.nodes)
}

// Arena returns the built arena. The builder must not be used afterwards.
func (b *Builder) Arena() *T {
	a := &T{nodes: b.nodes}

	b.nodes = nil
	b.committed = 0

	return a
}
