// Package filters builds query filters from user-supplied bounds.
package filters

import (
	"iter"
	"time"

	"github.com/jonathanmnovak/neo-capstone/model"
	"github.com/jonathanmnovak/neo-capstone/store"
)

// Op is a comparison operator.
type Op int

const (
	OpEqual Op = iota
	OpAtLeast
	OpAtMost
)

func (op Op) String() string {
	switch op {
	case OpEqual:
		return "=="
	case OpAtLeast:
		return ">="
	case OpAtMost:
		return "<="
	default:
		return "?"
	}
}

func compare[T float64 | int64](op Op, a, b T) bool {
	switch op {
	case OpEqual:
		return a == b
	case OpAtLeast:
		return a >= b
	case OpAtMost:
		return a <= b
	default:
		return false
	}
}

// AttributeFilter compares one attribute of an approach against a fixed
// value. The attribute getter reports false when the approach has no value
// for it, in which case the filter does not match.
type AttributeFilter[T float64 | int64] struct {
	Name  string
	Op    Op
	Value T
	get   func(*model.CloseApproach) (T, bool)
}

// Match implements store.Filter.
func (f AttributeFilter[T]) Match(approach *model.CloseApproach) bool {
	v, ok := f.get(approach)
	if !ok {
		return false
	}
	return compare(f.Op, v, f.Value)
}

// Options holds the optional bounds of a query. Nil fields are ignored.
type Options struct {
	Date      *time.Time
	StartDate *time.Time
	EndDate   *time.Time

	DistanceMin *float64
	DistanceMax *float64
	VelocityMin *float64
	VelocityMax *float64
	DiameterMin *float64
	DiameterMax *float64

	Hazardous *bool
}

// Create returns one filter per bound set in opts.
func Create(opts Options) []store.Filter {
	var out []store.Filter

	addDate := func(name string, op Op, t *time.Time) {
		if t != nil {
			out = append(out, AttributeFilter[int64]{Name: name, Op: op, Value: dayNumber(*t), get: approachDay})
		}
	}
	addDate("date", OpEqual, opts.Date)
	addDate("start_date", OpAtLeast, opts.StartDate)
	addDate("end_date", OpAtMost, opts.EndDate)

	addFloat := func(name string, op Op, v *float64, get func(*model.CloseApproach) (float64, bool)) {
		if v != nil {
			out = append(out, AttributeFilter[float64]{Name: name, Op: op, Value: *v, get: get})
		}
	}
	addFloat("distance_min", OpAtLeast, opts.DistanceMin, distance)
	addFloat("distance_max", OpAtMost, opts.DistanceMax, distance)
	addFloat("velocity_min", OpAtLeast, opts.VelocityMin, velocity)
	addFloat("velocity_max", OpAtMost, opts.VelocityMax, velocity)
	addFloat("diameter_min", OpAtLeast, opts.DiameterMin, diameter)
	addFloat("diameter_max", OpAtMost, opts.DiameterMax, diameter)

	if opts.Hazardous != nil {
		var want int64
		if *opts.Hazardous {
			want = 1
		}
		out = append(out, AttributeFilter[int64]{Name: "hazardous", Op: OpEqual, Value: want, get: hazardous})
	}
	return out
}

// dayNumber counts whole UTC days since the Unix epoch, so calendar dates
// compare as integers.
func dayNumber(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func approachDay(a *model.CloseApproach) (int64, bool) {
	return dayNumber(a.Time), true
}

func distance(a *model.CloseApproach) (float64, bool) {
	return a.Distance, true
}

func velocity(a *model.CloseApproach) (float64, bool) {
	return a.Velocity, true
}

func diameter(a *model.CloseApproach) (float64, bool) {
	if a.NEO() == nil {
		return 0, false
	}
	return a.NEO().Diameter.Km()
}

func hazardous(a *model.CloseApproach) (int64, bool) {
	if a.NEO() == nil {
		return 0, false
	}
	if a.NEO().Hazardous {
		return 1, true
	}
	return 0, true
}

// Limit yields at most n items of seq. n <= 0 yields everything.
func Limit[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}
