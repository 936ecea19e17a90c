package sequence

import (
	"time"

	"github.com/robfig/cron/v3"

	sferrors "github.com/vnykmshr/seqflow/pkg/common/errors"
)

// FromSchedule creates an infinite multi-pass Sequence of the successive
// activation times of a cron expression, strictly after from. The sequence
// only computes times; it sets no timers and starts no goroutines, so it
// composes with the usual operators:
//
//	times, err := sequence.FromSchedule("0 9 * * MON", time.Now())
//	next3 := times.Take(3).ToSlice()
//
// The expression uses the standard five-field cron syntax, with the
// descriptors @daily, @hourly and friends accepted as well.
func FromSchedule(expr string, from time.Time) (*Sequence[time.Time], error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, sferrors.NewBadArgument("fromSchedule", "expr", expr, err.Error()).
			WithHint("use standard five-field cron syntax, e.g. \"*/5 * * * *\"")
	}

	return derive(false, func(yield func(time.Time) bool) {
		t := from
		for {
			t = sched.Next(t)
			if t.IsZero() {
				return
			}
			if !yield(t) {
				return
			}
		}
	}), nil
}
