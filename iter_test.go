package chunk

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestIterAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.chunk")
	defer teardown()
	//
	c := From(1, 2).Concat(From(3)).Transform(func(x int) int { return x * x })
	var squares []int
	for x := range c.All() {
		squares = append(squares, x)
	}
	assert.Equal(t, []int{1, 4, 9}, squares)
	for range New[int]().All() {
		t.Error("expected empty chunk to yield nothing")
	}
}

func TestIterStopsEarly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.chunk")
	defer teardown()
	//
	calls := 0
	c := From(1, 2, 3, 4, 5).TransformFlatten(func(x int) Chunk[int] {
		calls++
		return From(x, x)
	})
	var seen []int
	for x := range c.All() {
		seen = append(seen, x)
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 1, 2}, seen)
	if calls != 2 {
		t.Errorf("expected transform to be called twice before stop, called %d times", calls)
	}
}

func TestIterEach(t *testing.T) {
	var sum int
	complete := From(1, 2, 3).Each(func(x int) bool {
		sum += x
		return true
	})
	assert.True(t, complete)
	assert.Equal(t, 6, sum)
	sum = 0
	complete = From(1, 2, 3).Each(func(x int) bool {
		sum += x
		return x < 2
	})
	assert.False(t, complete)
	assert.Equal(t, 3, sum)
	assert.True(t, New[int]().Each(func(int) bool { return false }))
}

func TestIterFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.chunk")
	defer teardown()
	//
	calls := 0
	c := From(7, 8, 9).Transform(func(x int) int {
		calls++
		return x + 1
	})
	assert.Equal(t, 8, c.First().WithDefault(-1))
	assert.Equal(t, 1, calls, "expected First to call the transform once only")
	assert.True(t, New[int]().First().IsNothing())
	empties := From(1, 2).TransformFlatten(func(int) Chunk[int] { return New[int]() })
	assert.True(t, empties.First().IsNothing())
	//
	var head []string
	switch m := Of([]string{"a"}).First().Match(); m {
	case m.Just(&head):
	case m.Nothing():
		t.Error("expected First of [[a]] to be Just([a])")
	}
	assert.Equal(t, []string{"a"}, head)
}
