package chunk

/*
Walking a chunk tree
--------------------

Elements of a chunk are produced by a walker, which processes a stack of work items
instead of recursing into sub-nodes. The depth of a chunk tree is unbounded (n appends
create a chain of n nodes), and so is the nesting of transforms; the walker's stack lives
on the heap and grows with the tree, while the goroutine stack does not.

Work items are:

   visit(node)        produce all elements of node
   emit(run)          produce the values of a run of append nodes, in logical order
   expand(fn)         the base of a transform has been collected; start applying fn
   apply(fn, xs, i)   apply fn to xs[i] and produce the resulting chunk, then continue with i+1

Elements are produced into a sink. For a transform, the elements of its base have to be
collected first: visiting a transform node opens a new collection buffer, which is the
target of all emits until the matching expand item closes it again. Only if no
collection buffer is open, elements are handed to the client's yield function.

A transform function is called right before the chunk it returns is walked, i.e.
f(x[i+1]) is not called before all elements of f(x[i]) have been produced.
*/

type opcode uint8

const (
	opVisit opcode = iota
	opEmit
	opExpand
	opApply
)

type workItem[A any] struct {
	op    opcode
	node  *cnode[A]
	run   []*cnode[A] // append nodes, latest first
	fn    *flattener[A]
	elems []A
	next  int
}

type walker[A any] struct {
	stack   []workItem[A]
	buffers [][]A        // collection buffers for the bases of pending transforms
	yield   func(A) bool // client sink for produced elements
	stopped bool         // client asked to stop
}

func newWalker[A any](yield func(A) bool) *walker[A] {
	return &walker[A]{yield: yield}
}

func (w *walker[A]) push(item workItem[A]) {
	w.stack = append(w.stack, item)
}

func (w *walker[A]) pop() workItem[A] {
	item := w.stack[len(w.stack)-1]
	w.stack[len(w.stack)-1] = workItem[A]{} // do not retain nodes and elements
	w.stack = w.stack[:len(w.stack)-1]
	return item
}

// emit produces a single element, either into the innermost open collection buffer
// or to the client.
func (w *walker[A]) emit(a A) {
	if l := len(w.buffers); l > 0 {
		w.buffers[l-1] = append(w.buffers[l-1], a)
		return
	}
	if !w.yield(a) {
		w.stopped = true
	}
}

// walk produces all elements of the tree starting at root, in order, unless the
// client stops the walk early. It returns false if the walk has been stopped.
func (w *walker[A]) walk(root *cnode[A]) bool {
	if root == nil {
		return true
	}
	w.push(workItem[A]{op: opVisit, node: root})
	for len(w.stack) > 0 && !w.stopped {
		item := w.pop()
		switch item.op {
		case opVisit:
			w.visit(item.node)
		case opEmit:
			for i := len(item.run) - 1; i >= 0 && !w.stopped; i-- {
				w.emit(item.run[i].value)
			}
		case opExpand:
			l := len(w.buffers)
			assertThat(l > 0, "no collection buffer open for expansion of transform")
			elems := w.buffers[l-1]
			w.buffers[l-1] = nil
			w.buffers = w.buffers[:l-1]
			if len(elems) > 0 {
				w.push(workItem[A]{op: opApply, fn: item.fn, elems: elems})
			}
		case opApply:
			x := item.elems[item.next]
			if item.next+1 < len(item.elems) {
				w.push(workItem[A]{op: opApply, fn: item.fn, elems: item.elems, next: item.next + 1})
			}
			if c := item.fn.f(x); c.node != nil {
				w.push(workItem[A]{op: opVisit, node: c.node})
			}
		default:
			assertThat(false, "illegal work item with op-code %d", item.op)
		}
	}
	return !w.stopped
}

// visit schedules the work for a single node. Items are pushed in reverse order of
// their execution.
func (w *walker[A]) visit(node *cnode[A]) {
	switch node.kind {
	case Appended:
		// The latest append is the outermost node, but its value comes last: the rest
		// of the chunk has to be produced first. We collect the whole run of appends
		// to avoid a work item per element.
		var run []*cnode[A]
		for ; node != nil && node.kind == Appended; node = node.left {
			run = append(run, node)
		}
		w.push(workItem[A]{op: opEmit, run: run})
		if node != nil {
			w.push(workItem[A]{op: opVisit, node: node})
		}
	case Concatenated:
		w.push(workItem[A]{op: opVisit, node: node.right})
		w.push(workItem[A]{op: opVisit, node: node.left})
	case Transformed:
		if node.left == nil {
			return
		}
		w.push(workItem[A]{op: opExpand, fn: node.fn})
		w.push(workItem[A]{op: opVisit, node: node.left})
		w.buffers = append(w.buffers, nil)
	default:
		assertThat(false, "illegal node kind %s in chunk tree", node.kind)
	}
}
