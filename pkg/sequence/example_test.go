package sequence_test

import (
	"fmt"

	"github.com/vnykmshr/seqflow/pkg/sequence"
)

func Example() {
	squares := sequence.Range(1, 100, 1).
		Filter(func(v int) bool { return v%2 == 0 }).
		Map(func(v int) int { return v * v }).
		Take(4)

	fmt.Println(squares.ToSlice())
	// Output: [4 16 36 100]
}

func ExampleCache() {
	reads := 0
	lines := sequence.Generate(func() (string, bool) {
		if reads >= 3 {
			return "", false
		}
		reads++
		return fmt.Sprintf("line-%d", reads), true
	})

	cached := sequence.Cache(lines)
	fmt.Println(cached.ToSlice())
	fmt.Println(cached.ToSlice())
	fmt.Println("reads:", reads)
	// Output:
	// [line-1 line-2 line-3]
	// [line-1 line-2 line-3]
	// reads: 3
}

func ExamplePartition() {
	evens, odds := sequence.Partition(
		sequence.FromSlice([]int{1, 2, 3, 4, 5, 6}),
		func(v int) bool { return v%2 == 0 },
	)

	fmt.Println("evens:", evens.ToSlice())
	fmt.Println("odds: ", odds.ToSlice())
	// Output:
	// evens: [2 4 6]
	// odds:  [1 3 5]
}

func ExampleSplit() {
	head, tail := sequence.Split(sequence.FromSlice([]string{"a", "b", "c", "d"}), 2)

	fmt.Println(tail.ToSlice())
	fmt.Println(head.ToSlice())
	// Output:
	// [c d]
	// [a b]
}

func ExampleZipWith() {
	prices := sequence.FromSlice([]float64{9.99, 4.50, 12.00})
	counts := sequence.FromSlice([]float64{2, 3, 1})

	totals := sequence.ZipWith(
		[]*sequence.Sequence[float64]{prices, counts},
		func(step []float64) float64 { return step[0] * step[1] },
	)

	fmt.Println(totals.ToSlice())
	// Output: [19.98 13.5 12]
}

func ExampleScan() {
	deposits := sequence.FromSlice([]int{100, 50, 25})
	balance := sequence.Scan(deposits, 0, func(acc, v int) int { return acc + v })

	fmt.Println(balance.ToSlice())
	// Output: [100 150 175]
}

func ExampleCompose() {
	positives := func(s *sequence.Sequence[int]) *sequence.Sequence[int] {
		return s.Filter(func(v int) bool { return v > 0 })
	}
	capped := func(s *sequence.Sequence[int]) *sequence.Sequence[int] {
		return s.Take(2)
	}

	got := sequence.FromSlice([]int{-1, 3, -2, 7, 9}).Compose(positives, capped)
	fmt.Println(got.ToSlice())
	// Output: [3 7]
}
