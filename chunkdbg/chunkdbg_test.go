package chunkdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/chunk"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.chunk")
	defer teardown()
	//
	s := Print(chunk.New[int]())
	t.Logf("\n%s", s)
	assert.Contains(t, s, "∅")
}

func TestPrintShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.chunk")
	defer teardown()
	//
	calls := 0
	tf := chunk.From(3, 4).Transform(func(x int) int {
		calls++
		return x
	})
	c := chunk.From(1, 2).Concat(tf).Append(5)
	s := Print(c)
	t.Logf("\n%s", s)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "append [5]")
	assert.Contains(t, lines[2], "concat")
	assert.Contains(t, lines[3], "append [1 2]")
	assert.Contains(t, lines[4], "transform")
	assert.Contains(t, lines[5], "append [3 4]")
	assert.Less(t, strings.Index(lines[3], "append"), strings.Index(lines[5], "append"),
		"expected base of transform to be nested deeper than concat operands")
	assert.Equal(t, 0, calls, "expected printing not to call transforms")
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	c := chunk.From("a").Concat(chunk.From("b"))
	require.NoError(t, Fprint(&buf, c))
	assert.Equal(t, Print(c), buf.String())
}

func TestShapeOfLongChain(t *testing.T) {
	var c chunk.Chunk[int]
	for i := 0; i < 100_000; i++ {
		c = c.Append(i)
	}
	tree := Shape(c.Concat(chunk.Of(-1)))
	s := tree.String()
	if n := strings.Count(s, "\n"); n > 5 {
		t.Errorf("expected a run of appends to be collapsed, have %d lines", n)
	}
}
