package chunk

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/xiaq/persistent/hash"
)

// Equal reports whether x and y are structurally equal.
//
// Structural equality compares the trees of x and y, not their materialized sequences:
// two chunks are equal if and only if they are built from the same construction steps,
// with equal elements, in the same order. Transformed chunks are equal only if they
// share the same transform function, i.e. if both stem from the same call to
// Transform or TransformFlatten. Consequently,
//
//     chunk.From(1).Concat(chunk.From(2))
//
// is not equal to chunk.From(1, 2), though both materialize to [1 2]. Clients
// interested in sequence equality should compare the materialized slices.
//
// This operation is O(n) in the number of nodes; sub-trees shared by x and y are not
// walked.
func Equal[A comparable](x, y Chunk[A]) bool {
	return EqualFunc(x, y, func(a, b A) bool {
		return a == b
	})
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[A any](x, y Chunk[A], eq func(A, A) bool) bool {
	type pair struct{ x, y *cnode[A] }
	stack := []pair{{x.node, y.node}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.x == p.y { // shared sub-tree, or both empty
			continue
		}
		if p.x == nil || p.y == nil || p.x.kind != p.y.kind {
			return false
		}
		switch p.x.kind {
		case Appended:
			if !eq(p.x.value, p.y.value) {
				return false
			}
			stack = append(stack, pair{p.x.left, p.y.left})
		case Concatenated:
			stack = append(stack, pair{p.x.right, p.y.right}, pair{p.x.left, p.y.left})
		case Transformed:
			if p.x.fn != p.y.fn {
				return false
			}
			stack = append(stack, pair{p.x.left, p.y.left})
		default:
			assertThat(false, "illegal node kind %s in chunk tree", p.x.kind)
		}
	}
	return true
}

// Hash computes a hash value for the tree of c, using h to hash elements.
// Hash is compatible with structural equality: if Equal(x, y), then
// Hash(x, h) == Hash(y, h). Transform functions are hashed by identity.
//
// This operation is O(n) in the number of nodes.
func Hash[A any](c Chunk[A], h func(A) uint32) uint32 {
	acc := hash.DJBInit
	stack := []*cnode[A]{c.node}
	for len(stack) > 0 { // pre-order; every kind has a fixed arity, thus the shape is encoded unambiguously
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node == nil {
			acc = hash.DJBCombine(acc, uint32(Empty))
			continue
		}
		acc = hash.DJBCombine(acc, uint32(node.kind))
		switch node.kind {
		case Appended:
			acc = hash.DJBCombine(acc, h(node.value))
			stack = append(stack, node.left)
		case Concatenated:
			stack = append(stack, node.right, node.left)
		case Transformed:
			acc = hash.DJBCombine(acc, hash.Pointer(unsafe.Pointer(node.fn)))
			stack = append(stack, node.left)
		default:
			assertThat(false, "illegal node kind %s in chunk tree", node.kind)
		}
	}
	return acc
}

// String renders the shape of c, without materializing it. Transform functions are
// not called. Appends are shown as a single list of elements as long as they extend
// each other, i.e.
//
//     chunk.From(1, 2).Concat(chunk.From(3)).String()
//
// renders as
//
//     (concat [1 2] [3])
//
func (c Chunk[A]) String() string {
	if c.node == nil {
		return "[]"
	}
	// A stack of nodes and literal strings; a nil node with a non-empty literal
	// is a literal.
	type token struct {
		node *cnode[A]
		lit  string
	}
	var b strings.Builder
	stack := []token{{node: c.node}}
	for len(stack) > 0 {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tok.node == nil {
			b.WriteString(tok.lit)
			continue
		}
		switch tok.node.kind {
		case Appended:
			// collect the run of appends, latest first
			var run []A
			node := tok.node
			for ; node != nil && node.kind == Appended; node = node.left {
				run = append(run, node.value)
			}
			if node != nil {
				stack = append(stack, token{lit: ")"})
				stack = append(stack, token{lit: " " + appendRun(run) + "]"})
				stack = append(stack, token{node: node})
				stack = append(stack, token{lit: "(append "})
			} else {
				b.WriteString(appendRun(run) + "]")
			}
		case Concatenated:
			stack = append(stack, token{lit: ")"}, token{node: tok.node.right},
				token{lit: " "}, token{node: tok.node.left})
			b.WriteString("(concat ")
		case Transformed:
			stack = append(stack, token{lit: ")"})
			if tok.node.left == nil {
				stack = append(stack, token{lit: "[]"})
			} else {
				stack = append(stack, token{node: tok.node.left})
			}
			fmt.Fprintf(&b, "(transform@%p ", tok.node.fn)
		default:
			assertThat(false, "illegal node kind %s in chunk tree", tok.node.kind)
		}
	}
	return b.String()
}

// appendRun renders a run of appended values (latest first) as an opening bracket and
// the values in logical order. The caller closes the bracket.
func appendRun[A any](run []A) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := len(run) - 1; i >= 0; i-- {
		if i < len(run)-1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", run[i])
	}
	return b.String()
}
