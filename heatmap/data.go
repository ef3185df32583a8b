package heatmap

import (
	"iter"
	"slices"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/jonathanmnovak/neo-capstone/model"
)

// MaxYears is the longest span drawn in one heatmap.
const MaxYears = 10

const secondsPerDay = 24 * 60 * 60

var (
	// ErrInvalidRange is returned when the end of the range precedes its start.
	ErrInvalidRange = errors.New("end date is before start date")
	// ErrRangeTooLong is returned when both bounds are given and span more than MaxYears.
	ErrRangeTooLong = errors.Newf("date range exceeds %d years", MaxYears)
)

// Data holds the date and count for each day.
type Data struct {
	Date  time.Time
	Count int
}

// Options configures rendering parameters.
type Options struct {
	CellSize    int       // size of each day cell (px)
	CellPadding int       // padding between cells (px)
	Colors      []string  // array of N CSS colors for levels 0..N-1
	FontSize    int       // font size for month labels (px)
	FontFamily  string    // font family for labels
	Title       string    // title text, omitted when empty
	From        time.Time // first day drawn; zero means the first data day
	To          time.Time // last day drawn; zero means the last data day
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() *Options {
	return &Options{
		CellSize:    12,
		CellPadding: 2,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Colors:      []string{"#f0f0f0", "#c6e48b", "#7bc96f", "#239a3b", "#196127", "#0d4429"},
	}
}

// CountByDay counts approaches per UTC calendar day. The result is sorted
// by date and only contains days with at least one approach.
func CountByDay(approaches iter.Seq[*model.CloseApproach]) []Data {
	counts := make(map[time.Time]int)
	for a := range approaches {
		counts[truncateDay(a.Time)]++
	}

	data := make([]Data, 0, len(counts))
	for day, count := range counts {
		data = append(data, Data{Date: day, Count: count})
	}
	slices.SortFunc(data, func(a, b Data) int { return a.Date.Compare(b.Date) })
	return data
}

// Range returns the first and last day to draw. A bound left zero in the
// options falls back to the data, or to the other bound when there is no
// data. Zero days mean there is nothing to draw.
//
// A range derived from the data is clamped to MaxYears, keeping the latest
// days when From is unset and the earliest days otherwise.
func (o *Options) Range(data []Data) (from, to time.Time, err error) {
	from, to = o.From, o.To
	if len(data) > 0 {
		if from.IsZero() {
			from = data[0].Date
		}
		if to.IsZero() {
			to = data[len(data)-1].Date
		}
	}
	if from.IsZero() {
		from = to
	}
	if to.IsZero() {
		to = from
	}
	if from.IsZero() {
		return time.Time{}, time.Time{}, nil
	}

	from, to = truncateDay(from), truncateDay(to)
	if to.Before(from) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}

	earliest := to.AddDate(-MaxYears, 0, 0)
	if !from.Before(earliest) {
		return from, to, nil
	}
	switch {
	case !o.From.IsZero() && !o.To.IsZero():
		return time.Time{}, time.Time{}, errors.Wrapf(ErrRangeTooLong, "%s..%s",
			from.Format(time.DateOnly), to.Format(time.DateOnly))
	case o.From.IsZero():
		return earliest, to, nil
	default:
		return from, from.AddDate(MaxYears, 0, 0), nil
	}
}

// daysBetween counts calendar days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Unix()/secondsPerDay - a.Unix()/secondsPerDay)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
