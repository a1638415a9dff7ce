package chunk

// props holds the settings of a materialization.
type props struct {
	capacity int // initial capacity of the resulting slice
}

// Option is a type to help configuring materialization.
type Option func(props) props

// Capacity is an option to pre-allocate the slice returned by Materialize. It is a hint
// only; clients knowing the approximate number of elements in a chunk may avoid
// re-allocations of the result. Negative values are ignored.
//
// Use it like this:
//
//     s := c.Materialize(chunk.Capacity(1024))
//
func Capacity(n int) Option {
	return func(p props) props {
		if n > 0 {
			p.capacity = n
		}
		return p
	}
}

// Materialize returns the elements of c, in order, as a newly allocated slice.
// Deferred transforms are executed during materialization. Materializing the empty
// chunk returns an empty, non-nil slice.
//
// This operation is O(n), with n being the number of elements after expansion of all
// transforms. Nothing is cached in c: materializing c again will repeat the walk,
// including calls to transform functions.
func (c Chunk[A]) Materialize(opts ...Option) []A {
	var p props
	for _, option := range opts {
		p = option(p)
	}
	return c.AppendTo(make([]A, 0, p.capacity))
}

// Slice is a shortcut for Materialize without options.
func (c Chunk[A]) Slice() []A {
	return c.Materialize()
}

// AppendTo appends the elements of c, in order, to buf and returns the extended buffer.
// buf may be nil. As with the built-in append, the result may share memory with buf.
//
// This operation is O(n), see Materialize.
func (c Chunk[A]) AppendTo(buf []A) []A {
	start := len(buf)
	w := newWalker(func(a A) bool {
		buf = append(buf, a)
		return true
	})
	w.walk(c.node)
	tracer().Debugf("materialized %s chunk into %d elements", c.Kind(), len(buf)-start)
	return buf
}
