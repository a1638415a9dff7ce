package chunk

import (
	"iter"

	"github.com/npillmayer/chunk/maybe"
)

// All returns an iterator over the elements of c, in order. Elements are produced
// while walking c; if the consumer stops early, the rest of c is not walked, and no
// further transform functions are called.
//
//     for x := range c.All() {
//         …
//     }
//
// Please note that the elements of a transformed chunk's base are collected before the
// first element of the transform is produced, as the transform is defined over the
// complete base.
func (c Chunk[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		newWalker(yield).walk(c.node)
	}
}

// Each calls f for every element of c, in order, until f returns false.
// It returns false if the walk has been stopped by f.
func (c Chunk[A]) Each(f func(A) bool) bool {
	return newWalker(f).walk(c.node)
}

// First returns the first element of c, if any, walking c only as far as necessary.
func (c Chunk[A]) First() maybe.Maybe[A] {
	first := maybe.Nothing[A]()
	c.Each(func(a A) bool {
		first = maybe.Just(a)
		return false
	})
	return first
}
