/*
Package chunkdbg implements helpers to debug the shape of a chunk tree.

Chunks record the construction steps which produced them. When chunks do not
materialize to what a client expects, it often helps to look at the tree:

	fmt.Println(chunkdbg.Print(c))

prints something like

	concat
	├── append [1 2]
	└── transform
	    └── append [3 4]

Transform functions are never called by this package.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chunkdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/chunk"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'fp.chunk'.
func tracer() tracing.Trace {
	return tracing.Select("fp.chunk")
}

// Print returns a tree-like rendering of the shape of c.
func Print[A any](c chunk.Chunk[A]) string {
	return Shape(c).String()
}

// Fprint writes a tree-like rendering of the shape of c to w.
func Fprint[A any](w io.Writer, c chunk.Chunk[A]) error {
	_, err := io.WriteString(w, Print(c))
	return err
}

// Shape builds a treeprint tree for c. Clients may embed it into trees of their own.
//
// Runs of appends are collapsed into a single tree node. Trees are built with an
// explicit work list, thus deep chunks will result in large, but not in stack-hungry,
// renderings.
func Shape[A any](c chunk.Chunk[A]) tp.Tree {
	printer := tp.New()
	type job struct {
		branch tp.Tree
		c      chunk.Chunk[A]
	}
	jobs := []job{{printer, c}}
	var n int
	for len(jobs) > 0 {
		j := jobs[len(jobs)-1]
		jobs = jobs[:len(jobs)-1]
		n++
		var left, right chunk.Chunk[A]
		switch m := j.c.Match(); m {
		case m.Empty():
			j.branch.AddNode("∅")
		case m.Concat(&left, &right):
			b := j.branch.AddBranch("concat")
			jobs = append(jobs, job{b, right}, job{b, left})
		case m.TransformFlatten(&left, nil):
			b := j.branch.AddBranch("transform")
			jobs = append(jobs, job{b, left})
		default:
			run, rest := appendRun(j.c)
			if rest.IsEmpty() {
				j.branch.AddNode("append " + run)
				break
			}
			b := j.branch.AddBranch("append " + run)
			jobs = append(jobs, job{b, rest})
		}
	}
	tracer().Debugf("chunkdbg: rendered %d tree nodes", n)
	return printer
}

// appendRun collects consecutive appends, starting at c, and renders their values in
// logical order. It returns the rendering together with the chunk the run extends.
func appendRun[A any](c chunk.Chunk[A]) (string, chunk.Chunk[A]) {
	var run []A
	var x A
	for {
		var rest chunk.Chunk[A]
		m := c.Match()
		if m.Append(&x, &rest) == nil {
			break
		}
		run = append(run, x)
		c = rest
	}
	var b strings.Builder
	b.WriteByte('[')
	for i := len(run) - 1; i >= 0; i-- {
		if i < len(run)-1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", run[i])
	}
	b.WriteByte(']')
	return b.String(), c
}
