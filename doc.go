/*
Package chunk implements an immutable persistent sequence with constant-time append,
concatenation and deferred transformation.

A Chunk does not hold its elements in a flat array. Instead it records how the sequence
has been built: every call to Append, Concat, Transform or TransformFlatten creates a
single new node which references its operands, without copying them. Producing the
concrete, ordered sequence is deferred until a client calls Materialize (or one of its
relatives), which walks the tree of nodes exactly once, in O(n).

	c1 := chunk.New[int]().Append(1).Append(2)
	c2 := chunk.From(3, 4)
	all := c1.Concat(c2) // O(1)
	doubled := all.Transform(func(n int) int {
	    return n * 2 // not called before materialization
	})
	fmt.Println(doubled.Materialize()) // [2 4 6 8]

This makes chunks a good fit for accumulating output incrementally and for combining
sub-results of independent computations, where copying on every append would be too
expensive and where many versions of a growing sequence have to coexist.

Structural sharing

Chunks are persistent: an operation never modifies its receiver, it returns a new
incarnation which shares all of the receiver's nodes. Chunks are therefore inherently
concurrency-safe; any number of goroutines may materialize the same chunk at the same
time. Transform functions stored in a chunk may be called concurrently in this case.

Laziness

Transform and TransformFlatten store the function, not its result. Functions are
called during materialization only, and they are called again for every
materialization; there is no cached flattened form. Deeply nested flat-map
transforms may cost considerably more than the number of appends suggests; clients
needing predictable costs should materialize between transform stages.

Equality

Equal, EqualFunc and Hash operate on the shape of the tree, not on the materialized
sequence: chunks are equal if and only if they have been built by the same sequence of
construction steps. Two chunks with different shapes may well materialize to the same
sequence and nevertheless compare unequal. This is intended, as comparing materialized
sequences would require calling transform functions.

Deep trees

All walks over a chunk tree use an explicit work stack. A chunk built by a million
consecutive appends is a chain of a million nodes; it may be materialized, compared or
dropped without risk of exhausting the goroutine stack.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chunk

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.chunk'.
func tracer() tracing.Trace {
	return tracing.Select("fp.chunk")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("chunk: "+msg, msgargs...)
		panic(msg)
	}
}
