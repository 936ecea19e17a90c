package sequence

import (
	"strconv"
	"testing"

	"github.com/vnykmshr/seqflow/internal/testutil"
)

func TestMap(t *testing.T) {
	doubled := FromSlice([]int{1, 2, 3}).Map(func(v int) int { return v * 2 })
	testutil.AssertSliceEqual(t, doubled.ToSlice(), []int{2, 4, 6})
}

func TestMapCrossType(t *testing.T) {
	labels := Map(FromSlice([]int{1, 2}), strconv.Itoa)
	testutil.AssertSliceEqual(t, labels.ToSlice(), []string{"1", "2"})
}

func TestMapIsLazy(t *testing.T) {
	calls := 0
	s := FromSlice([]int{1, 2, 3}).Map(func(v int) int {
		calls++
		return v
	})

	testutil.AssertEqual(t, calls, 0)
	s.Take(2).ToSlice()
	testutil.AssertEqual(t, calls, 2)
}

func TestFilter(t *testing.T) {
	evens := FromSlice([]int{1, 2, 3, 4, 5}).Filter(func(v int) bool { return v%2 == 0 })
	testutil.AssertSliceEqual(t, evens.ToSlice(), []int{2, 4})
}

func TestFlatMap(t *testing.T) {
	s := FlatMap(FromSlice([]int{1, 2, 3}), func(v int) *Sequence[int] {
		return Repeat(v, v)
	})
	testutil.AssertSliceEqual(t, s.ToSlice(), []int{1, 2, 2, 3, 3, 3})
}

func TestTake(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})

	testutil.AssertSliceEqual(t, s.Take(3).ToSlice(), []int{1, 2, 3})
	testutil.AssertSliceEqual(t, s.Take(0).ToSlice(), nil)
	testutil.AssertSliceEqual(t, s.Take(10).ToSlice(), []int{1, 2, 3, 4, 5})

	testutil.AssertPanicsBadArgument(t, func() {
		s.Take(-1)
	})
}

func TestTakePullsNoExtra(t *testing.T) {
	src, pulls := countingSource([]int{1, 2, 3, 4, 5})
	Take(src, 2).ToSlice()
	testutil.AssertEqual(t, *pulls, 2)
}

func TestTakeWhile(t *testing.T) {
	s := FromSlice([]int{1, 2, 9, 3}).TakeWhile(func(v int) bool { return v < 5 })
	testutil.AssertSliceEqual(t, s.ToSlice(), []int{1, 2})
}

func TestSkip(t *testing.T) {
	s := FromSlice([]int{1, 2, 3, 4, 5})

	testutil.AssertSliceEqual(t, s.Skip(2).ToSlice(), []int{3, 4, 5})
	testutil.AssertSliceEqual(t, s.Skip(0).ToSlice(), []int{1, 2, 3, 4, 5})
	testutil.AssertSliceEqual(t, s.Skip(10).ToSlice(), nil)
}

func TestSkipWhile(t *testing.T) {
	s := FromSlice([]int{1, 2, 9, 3}).SkipWhile(func(v int) bool { return v < 5 })
	testutil.AssertSliceEqual(t, s.ToSlice(), []int{9, 3})
}

func TestConcat(t *testing.T) {
	s := Concat(FromSlice([]int{1, 2}), Empty[int](), FromSlice([]int{3}))
	testutil.AssertSliceEqual(t, s.ToSlice(), []int{1, 2, 3})

	testutil.AssertSliceEqual(t, Concat[int]().ToSlice(), nil)
}

func TestConcatMethodPrependsReceiver(t *testing.T) {
	s := FromSlice([]int{1}).Concat(FromSlice([]int{2, 3}))
	testutil.AssertSliceEqual(t, s.ToSlice(), []int{1, 2, 3})
}

func TestReverse(t *testing.T) {
	testutil.AssertSliceEqual(t, FromSlice([]int{1, 2, 3}).Reverse().ToSlice(), []int{3, 2, 1})
	testutil.AssertSliceEqual(t, Empty[int]().Reverse().ToSlice(), nil)
}

func TestDistinct(t *testing.T) {
	s := Distinct(FromSlice([]int{1, 2, 1, 3, 2, 1}))
	testutil.AssertSliceEqual(t, s.ToSlice(), []int{1, 2, 3})
}

func TestChunk(t *testing.T) {
	got := Chunk(FromSlice([]int{1, 2, 3, 4, 5}), 2).ToSlice()

	testutil.AssertEqual(t, len(got), 3)
	testutil.AssertSliceEqual(t, got[0], []int{1, 2})
	testutil.AssertSliceEqual(t, got[1], []int{3, 4})
	testutil.AssertSliceEqual(t, got[2], []int{5})

	testutil.AssertPanicsBadArgument(t, func() {
		Chunk(FromSlice([]int{1}), 0)
	})
}

func TestPeek(t *testing.T) {
	var seen []int
	s := FromSlice([]int{1, 2, 3}).Peek(func(v int) { seen = append(seen, v) })

	testutil.AssertSliceEqual(t, s.ToSlice(), []int{1, 2, 3})
	testutil.AssertSliceEqual(t, seen, []int{1, 2, 3})
}

func TestEnumerate(t *testing.T) {
	got := Enumerate(FromSlice([]string{"a", "b"})).ToSlice()
	testutil.AssertSliceEqual(t, got, []Pair[int, string]{
		{0, "a"},
		{1, "b"},
	})
}

func TestOperatorsOnInfiniteSequence(t *testing.T) {
	n := 0
	naturals := Generate(func() (int, bool) {
		n++
		return n, true
	})

	got := naturals.
		Filter(func(v int) bool { return v%2 == 0 }).
		Map(func(v int) int { return v * v }).
		Take(3).
		ToSlice()

	testutil.AssertSliceEqual(t, got, []int{4, 16, 36})
}

func TestOperatorValidation(t *testing.T) {
	testutil.AssertPanicsBadArgument(t, func() {
		Map[int, int](nil, func(v int) int { return v })
	})
	testutil.AssertPanicsBadArgument(t, func() {
		Filter(FromSlice([]int{1}), nil)
	})
	testutil.AssertPanicsBadArgument(t, func() {
		Concat(FromSlice([]int{1}), nil)
	})
}
