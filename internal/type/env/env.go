// Released under an MIT license. See LICENSE.

// Package env provides flatlisp's environment type.
//
// An environment maps atoms to atoms. Keys match by kind and value, so
// the symbol "a" and the string "a" are different keys. Evaluation threads
// a single environment through every step; nothing binds names yet.
package env

import (
	"github.com/michaelmacinnis/flatlisp/internal/type/atom"
)

type binding struct {
	key   atom.T
	value atom.T
}

// T (env) maps atom keys to atom values.
type T struct {
	buckets map[uint64][]binding
	size    int
}

type env = T

// New creates a new, empty env.
func New() *T {
	return &T{buckets: map[uint64][]binding{}}
}

// Delete frees the key k from any association in the env e.
func (e *env) Delete(k atom.T) bool {
	h := k.Hash()
	b := e.buckets[h]

	for i := range b {
		if b[i].key.Equal(k) {
			b = append(b[:i], b[i+1:]...)
			if len(b) == 0 {
				delete(e.buckets, h)
			} else {
				e.buckets[h] = b
			}

			e.size--

			return true
		}
	}

	return false
}

// Get retrieves the value associated with the key k in the env e.
func (e *env) Get(k atom.T) (atom.T, bool) {
	if e == nil {
		return atom.T{}, false
	}

	for _, b := range e.buckets[k.Hash()] {
		if b.key.Equal(k) {
			return b.value, true
		}
	}

	return atom.T{}, false
}

// Len returns the number of keys in the env e.
func (e *env) Len() int {
	if e == nil {
		return 0
	}

	return e.size
}

// Set associates the key k with the value v in the env e.
func (e *env) Set(k, v atom.T) {
	h := k.Hash()
	b := e.buckets[h]

	for i := range b {
		if b[i].key.Equal(k) {
			b[i].value = v
			return
		}
	}

	e.buckets[h] = append(b, binding{key: k, value: v})
	e.size++
}
