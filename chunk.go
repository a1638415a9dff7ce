package chunk

import (
	"iter"

	"github.com/npillmayer/chunk/fp"
)

/*
Remarks:
--------

- A chunk is a value type holding a pointer to an immutable node. The nil node is the
  empty chunk, thus the zero value Chunk[A]{} is ready to use.

- Nodes are never modified after construction. Every operation creates at most one new
  node, which references its operands.

- The set of node kinds is closed. The only place dispatching on all of them for
  element production is the walker (walk.go).

*/

// Kind tells which construction step produced a chunk.
type Kind uint8

// Kinds of chunk nodes.
const (
	Empty        Kind = iota // zero-length chunk
	Appended                 // chunk extended by a single element
	Concatenated             // concatenation of two non-empty chunks
	Transformed              // deferred flat-map over a chunk
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Appended:
		return "append"
	case Concatenated:
		return "concat"
	case Transformed:
		return "transform"
	}
	return "<unknown kind>"
}

// Chunk is an immutable persistent sequence of elements of type A.
// An empty instance is usable as an empty chunk, i.e. this is legal:
//
//     c := chunk.Chunk[int]{}.Append(1)
//
// Chunks should be passed by value. Copying a chunk is O(1) and shares all of its
// structure.
type Chunk[A any] struct {
	node *cnode[A]
}

// cnode is a node of the tree a chunk is made of.
//
//   Appended:     value + left (the chunk extended)
//   Concatenated: left + right
//   Transformed:  left (the base chunk) + fn
type cnode[A any] struct {
	kind  Kind
	value A
	left  *cnode[A]
	right *cnode[A]
	fn    *flattener[A]
}

// flattener is the shared cell holding a deferred flat-map function. All copies of a
// transformed chunk refer to the same cell; its identity is what structural equality
// compares.
type flattener[A any] struct {
	f func(A) Chunk[A]
}

// New creates an empty chunk. It is equivalent to Chunk[A]{}.
func New[A any]() Chunk[A] {
	return Chunk[A]{}
}

// Of creates a chunk holding a single element.
func Of[A any](a A) Chunk[A] {
	return Chunk[A]{}.Append(a)
}

// From creates a chunk from a list of elements, appending them one by one.
// The resulting chunk materializes to a sequence equal to items.
//
// This operation is O(n).
func From[A any](items ...A) Chunk[A] {
	var c Chunk[A]
	for _, item := range items {
		c = c.Append(item)
	}
	return c
}

// FromSeq creates a chunk by appending all the elements produced by seq, in order.
//
// This operation is O(n).
func FromSeq[A any](seq iter.Seq[A]) Chunk[A] {
	var c Chunk[A]
	for item := range seq {
		c = c.Append(item)
	}
	return c
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true if c is the empty chunk. It does not traverse c.
//
// Please note that a transformed chunk is never considered empty, even if its
// transform function maps every element to an empty chunk, as the function is not
// called before materialization.
func (c Chunk[A]) IsEmpty() bool {
	return c.node == nil
}

// Kind returns the kind of construction step which produced c.
func (c Chunk[A]) Kind() Kind {
	if c.node == nil {
		return Empty
	}
	return c.node.kind
}

// Append returns a new chunk with a at the logical end of c.
//
// This operation is O(1); it always allocates a single node.
func (c Chunk[A]) Append(a A) Chunk[A] {
	return Chunk[A]{node: &cnode[A]{kind: Appended, value: a, left: c.node}}
}

// Prepend returns a new chunk with a at the logical front of c.
//
// This operation is O(1).
func (c Chunk[A]) Prepend(a A) Chunk[A] {
	return Of(a).Concat(c)
}

// Concat returns a chunk holding the elements of c, followed by the elements of other.
// If either one of the chunks is empty, the other one is returned unchanged.
//
// This operation is O(1).
func (c Chunk[A]) Concat(other Chunk[A]) Chunk[A] {
	if c.IsEmpty() {
		tracer().Debugf("concat: receiver is empty, returning other chunk")
		return other
	}
	if other.IsEmpty() {
		tracer().Debugf("concat: other chunk is empty, returning receiver")
		return c
	}
	return Chunk[A]{node: &cnode[A]{kind: Concatenated, left: c.node, right: other.node}}
}

// Transform returns a chunk which will hold f(x) for every element x of c.
// f is not called before the returned chunk is materialized, and it will be called
// for every materialization again.
//
// Transform is a special case of TransformFlatten, where every element is replaced
// by exactly one element.
//
// This operation is O(1).
func (c Chunk[A]) Transform(f func(A) A) Chunk[A] {
	return c.TransformFlatten(fp.Compose(f, Of[A]))
}

// TransformFlatten returns a chunk which will hold the concatenation of the chunks
// f(x), for every element x of c, in order.
// f is not called before the returned chunk is materialized, and it will be called
// for every materialization again. Copies of the returned chunk share f; if they
// are materialized concurrently, f will be called concurrently.
//
// This operation is O(1).
func (c Chunk[A]) TransformFlatten(f func(A) Chunk[A]) Chunk[A] {
	assertThat(f != nil, "transform function may not be nil")
	return Chunk[A]{node: &cnode[A]{kind: Transformed, left: c.node, fn: &flattener[A]{f: f}}}
}

// --- Matching --------------------------------------------------------------

// Matcher decomposes a chunk into the operands of the construction step which
// produced it. Exactly one of its methods returns the matcher itself, all the others
// return nil. Use it like this:
//
//     var x int
//     var rest chunk.Chunk[int]
//     switch m := c.Match(); m {
//     case m.Empty():
//         …
//     case m.Append(&x, &rest):
//         …
//     }
//
// Pointer arguments are set only by the matching method.
type Matcher[A any] interface {
	Empty() Matcher[A]
	Append(value *A, rest *Chunk[A]) Matcher[A]
	Concat(left, right *Chunk[A]) Matcher[A]
	TransformFlatten(base *Chunk[A], f *func(A) Chunk[A]) Matcher[A]
}

type matcher[A any] struct {
	node *cnode[A]
}

// Match returns a matcher for c.
func (c Chunk[A]) Match() Matcher[A] {
	return matcher[A]{node: c.node}
}

func (m matcher[A]) Empty() Matcher[A] {
	if m.node == nil {
		return m
	}
	return nil
}

func (m matcher[A]) Append(value *A, rest *Chunk[A]) Matcher[A] {
	if m.node == nil || m.node.kind != Appended {
		return nil
	}
	if value != nil {
		*value = m.node.value
	}
	if rest != nil {
		*rest = Chunk[A]{node: m.node.left}
	}
	return m
}

func (m matcher[A]) Concat(left, right *Chunk[A]) Matcher[A] {
	if m.node == nil || m.node.kind != Concatenated {
		return nil
	}
	if left != nil {
		*left = Chunk[A]{node: m.node.left}
	}
	if right != nil {
		*right = Chunk[A]{node: m.node.right}
	}
	return m
}

func (m matcher[A]) TransformFlatten(base *Chunk[A], f *func(A) Chunk[A]) Matcher[A] {
	if m.node == nil || m.node.kind != Transformed {
		return nil
	}
	if base != nil {
		*base = Chunk[A]{node: m.node.left}
	}
	if f != nil {
		*f = m.node.fn.f
	}
	return m
}
