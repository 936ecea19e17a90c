package sequence

import (
	"testing"

	"github.com/vnykmshr/seqflow/internal/testutil"
)

func TestCompose(t *testing.T) {
	evens := func(s *Sequence[int]) *Sequence[int] {
		return s.Filter(func(v int) bool { return v%2 == 0 })
	}
	doubled := func(s *Sequence[int]) *Sequence[int] {
		return s.Map(func(v int) int { return v * 2 })
	}

	got := FromSlice([]int{1, 2, 3, 4}).Compose(evens, doubled)
	testutil.AssertSliceEqual(t, got.ToSlice(), []int{4, 8})
}

func TestComposeOrderMatters(t *testing.T) {
	addOne := func(s *Sequence[int]) *Sequence[int] {
		return s.Map(func(v int) int { return v + 1 })
	}
	double := func(s *Sequence[int]) *Sequence[int] {
		return s.Map(func(v int) int { return v * 2 })
	}

	testutil.AssertSliceEqual(t, Compose(FromSlice([]int{1}), addOne, double).ToSlice(), []int{4})
	testutil.AssertSliceEqual(t, Compose(FromSlice([]int{1}), double, addOne).ToSlice(), []int{3})
}

func TestComposeNoComposers(t *testing.T) {
	s := FromSlice([]int{1, 2})
	testutil.AssertEqual(t, s.Compose(), s)
}

func TestComposeIsLazy(t *testing.T) {
	src, pulls := countingSource([]int{1, 2, 3})

	composed := Compose(src, func(s *Sequence[int]) *Sequence[int] {
		return s.Map(func(v int) int { return v * 10 })
	})
	testutil.AssertEqual(t, *pulls, 0)
	testutil.AssertSliceEqual(t, composed.ToSlice(), []int{10, 20, 30})
}

func TestComposeNilComposer(t *testing.T) {
	testutil.AssertPanicsBadArgument(t, func() {
		Compose(FromSlice([]int{1}), nil)
	})
}

func TestComposeNilResult(t *testing.T) {
	testutil.AssertPanicsTypeMismatch(t, func() {
		Compose(FromSlice([]int{1}), func(*Sequence[int]) *Sequence[int] {
			return nil
		})
	})
}
