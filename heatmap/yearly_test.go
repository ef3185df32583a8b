package heatmap

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/jonathanmnovak/neo-capstone/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateYearlyHeatmapSVG_NoFutureDates(t *testing.T) {
	// 2025-01-15は水曜日で、その週の土曜日は2025-01-18
	// Toを超えた日付（2025-01-16, 01-17, 01-18）が含まれないことを確認
	data := []Data{
		{Date: date(2025, 1, 5), Count: 1},
		{Date: date(2025, 1, 10), Count: 2},
		{Date: date(2025, 1, 15), Count: 3},
	}

	opts := DefaultOptions()
	opts.From = date(2025, 1, 1)
	opts.To = date(2025, 1, 15)

	svg := GenerateYearlyHeatmapSVG(data, opts)

	if !strings.Contains(svg, "<svg") {
		t.Error("Expected SVG to be generated")
	}
	if !strings.Contains(svg, `data-date="2025-01-15"`) {
		t.Error("Expected endDate (2025-01-15) to be included")
	}
	for _, d := range []string{"2025-01-16", "2025-01-17", "2025-01-18"} {
		if strings.Contains(svg, `data-date="`+d+`"`) {
			t.Errorf("Future date %s should not be included", d)
		}
	}
	// 2024-12-29から2024-12-31は開始日より前
	if strings.Contains(svg, `data-date="2024-12-31"`) {
		t.Error("Date before From should not be included")
	}
}

func TestGenerateYearlyHeatmapSVG_EmptyDaysAreDrawn(t *testing.T) {
	data := []Data{
		{Date: date(2025, 1, 1), Count: 1},
		{Date: date(2025, 1, 5), Count: 2},
	}

	svg := GenerateYearlyHeatmapSVG(data, nil)

	if got := strings.Count(svg, "<rect"); got != 5 {
		t.Errorf("Expected 5 cells, got %d", got)
	}
	if !strings.Contains(svg, `data-date="2025-01-03" data-count="0"`) {
		t.Error("Expected a zero cell for 2025-01-03")
	}
	if strings.Contains(svg, `data-date="2025-01-06"`) {
		t.Error("Future date 2025-01-06 should not be included")
	}
}

func TestGenerateYearlyHeatmapSVG_Empty(t *testing.T) {
	// データも期間もない場合はセルのない空のSVGを返す
	svg := GenerateYearlyHeatmapSVG(nil, nil)
	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Errorf("Expected an empty SVG document, got %q", svg)
	}
	if strings.Contains(svg, "<rect") {
		t.Errorf("Expected no cells, got %q", svg)
	}

	opts := DefaultOptions()
	opts.From = date(2025, 3, 1)
	opts.To = date(2025, 3, 2)
	svg = GenerateYearlyHeatmapSVG(nil, opts)
	if got := strings.Count(svg, "<rect"); got != 2 {
		t.Errorf("Expected 2 cells for an explicit range, got %d", got)
	}
}

func TestGenerateYearlyHeatmapSVG_ReversedRange(t *testing.T) {
	opts := DefaultOptions()
	opts.From = date(2025, 3, 2)
	opts.To = date(2025, 3, 1)

	svg := GenerateYearlyHeatmapSVG([]Data{{Date: date(2025, 3, 1), Count: 1}}, opts)

	if !strings.HasSuffix(svg, "</svg>") || strings.Contains(svg, "<rect") {
		t.Errorf("Expected an empty SVG document, got %q", svg)
	}
}

func TestGenerateYearlyHeatmapSVG_LongDataSpanKeepsLatestDays(t *testing.T) {
	// 300年以上にわたるデータでも最後の日が描画され、描画は直近MaxYears年に収まる
	data := []Data{
		{Date: date(1900, 1, 1), Count: 1},
		{Date: date(2200, 12, 31), Count: 2},
	}

	svg := GenerateYearlyHeatmapSVG(data, nil)

	if !strings.Contains(svg, `data-date="2200-12-31" data-count="2"`) {
		t.Error("Expected the last day (2200-12-31) to be included")
	}
	if !strings.Contains(svg, `data-date="2190-12-31"`) {
		t.Error("Expected the first day of the window (2190-12-31) to be included")
	}
	if strings.Contains(svg, `data-date="2190-12-30"`) || strings.Contains(svg, `data-date="1900-01-01"`) {
		t.Error("Days before the window should not be included")
	}
	if got := strings.Count(svg, "<rect"); got != 3653 {
		t.Errorf("Expected 3653 cells, got %d", got)
	}
}

func TestOptionsRange(t *testing.T) {
	data := []Data{
		{Date: date(1900, 1, 1), Count: 1},
		{Date: date(2200, 12, 31), Count: 1},
	}

	tests := []struct {
		description string
		from, to    time.Time
		data        []Data
		wantFrom    time.Time
		wantTo      time.Time
		wantErr     error
	}{
		{
			description: "Nothing to draw",
		},
		{
			description: "Single bound without data",
			from:        date(2025, 3, 1),
			wantFrom:    date(2025, 3, 1),
			wantTo:      date(2025, 3, 1),
		},
		{
			description: "Explicit range up to the limit",
			from:        date(2015, 1, 1),
			to:          date(2025, 1, 1),
			wantFrom:    date(2015, 1, 1),
			wantTo:      date(2025, 1, 1),
		},
		{
			description: "Explicit range over the limit",
			from:        date(1, 1, 2),
			to:          date(9999, 12, 31),
			wantErr:     ErrRangeTooLong,
		},
		{
			description: "Reversed range",
			from:        date(2025, 3, 2),
			to:          date(2025, 3, 1),
			wantErr:     ErrInvalidRange,
		},
		{
			description: "Data range keeps the latest days",
			data:        data,
			wantFrom:    date(2190, 12, 31),
			wantTo:      date(2200, 12, 31),
		},
		{
			description: "Start bound keeps the earliest days",
			from:        date(1900, 1, 1),
			data:        data,
			wantFrom:    date(1900, 1, 1),
			wantTo:      date(1910, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			opts := DefaultOptions()
			opts.From, opts.To = tt.from, tt.to

			from, to, err := opts.Range(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected error %v, got %v", tt.wantErr, err)
			}
			if !from.Equal(tt.wantFrom) || !to.Equal(tt.wantTo) {
				t.Errorf("Expected %v..%v, got %v..%v", tt.wantFrom, tt.wantTo, from, to)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	// Durationの上限(約292年)を超える期間でも正しく数える
	if got := daysBetween(date(1900, 1, 1), date(2200, 12, 31)); got != 109937 {
		t.Errorf("Expected 109937 days, got %d", got)
	}
	if got := daysBetween(date(1969, 12, 31), date(1970, 1, 1)); got != 1 {
		t.Errorf("Expected 1 day across the epoch, got %d", got)
	}
}

func TestGenerateYearlyHeatmapSVG_TitleIsEscaped(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "Approaches <2025> & more"

	svg := GenerateYearlyHeatmapSVG([]Data{{Date: date(2025, 1, 1), Count: 1}}, opts)

	if !strings.Contains(svg, "Approaches &lt;2025&gt; &amp; more") {
		t.Errorf("Expected escaped title in %s", svg)
	}
}

func TestColorLevel(t *testing.T) {
	tests := []struct {
		description string
		count       int
		supCount    int
		expected    int
	}{
		{description: "Zero", count: 0, supCount: 5, expected: 0},
		{description: "Minimum positive", count: 1, supCount: 5, expected: 1},
		{description: "Maximum", count: 4, supCount: 5, expected: 4},
		{description: "Scaled", count: 50, supCount: 101, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := colorLevel(tt.count, tt.supCount, 6); got != tt.expected {
				t.Errorf("Expected level %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestCountByDay(t *testing.T) {
	var approaches []*model.CloseApproach
	for _, when := range []string{"2020-01-02 23:59", "2020-01-01 00:00", "2020-01-02 00:01", "2020-01-01 12:00", "2020-01-01 13:00"} {
		a, err := model.NewCloseApproach("433", when, 0.1, 1.0)
		if err != nil {
			t.Fatalf("Failed to create approach: %v", err)
		}
		approaches = append(approaches, a)
	}

	got := CountByDay(slices.Values(approaches))
	expected := []Data{
		{Date: date(2020, 1, 1), Count: 3},
		{Date: date(2020, 1, 2), Count: 2},
	}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d days, got %d", len(expected), len(got))
	}
	for i := range expected {
		if !got[i].Date.Equal(expected[i].Date) || got[i].Count != expected[i].Count {
			t.Errorf("Day %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}
