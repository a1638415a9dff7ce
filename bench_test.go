package chunk

import (
	"iter"
	"slices"
	"strconv"
	"testing"
)

const benchN = 10000

func BenchmarkAppend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var c Chunk[string]
		for j := 0; j < benchN; j++ {
			c = c.Append(strconv.Itoa(j))
		}
	}
}

func BenchmarkSliceAppend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var s []string
		for j := 0; j < benchN; j++ {
			s = append(s, strconv.Itoa(j))
		}
	}
}

func BenchmarkPrepend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var c Chunk[string]
		for j := 0; j < benchN; j++ {
			c = c.Prepend(strconv.Itoa(j))
		}
	}
}

func BenchmarkSlicePrepend(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var s []string
		for j := 0; j < benchN; j++ {
			s = slices.Insert(s, 0, strconv.Itoa(j))
		}
	}
}

func BenchmarkConcat(b *testing.B) {
	c1 := FromSeq(stringSeq(0, benchN/2))
	c2 := FromSeq(stringSeq(benchN/2, benchN))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c1.Concat(c2)
	}
}

func BenchmarkSliceConcat(b *testing.B) {
	s1 := slices.Collect(stringSeq(0, benchN/2))
	s2 := slices.Collect(stringSeq(benchN/2, benchN))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := slices.Clone(s1)
		_ = append(r, s2...)
	}
}

func BenchmarkFromSeq(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = FromSeq(intSeq(benchN))
	}
}

func BenchmarkMaterialize(b *testing.B) {
	c := FromSeq(intSeq(benchN / 2)).Concat(FromSeq(intSeq(benchN / 2)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Materialize(Capacity(benchN))
	}
}

func BenchmarkMaterializeTransform(b *testing.B) {
	c := FromSeq(intSeq(benchN)).Transform(func(x int) int { return x * 2 })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Materialize(Capacity(benchN))
	}
}

func stringSeq(from, to int) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := from; i < to; i++ {
			if !yield(strconv.Itoa(i)) {
				return
			}
		}
	}
}

func intSeq(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
