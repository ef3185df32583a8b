// Generates a GitHub-like yearly heatmap of close approaches per day as an SVG string.
package heatmap

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// GenerateYearlyHeatmapSVG returns an SVG string representing the yearly heatmap.
// data should be sorted in ascending order by date.
// Every day in the range chosen by Options.Range gets a cell; days without data use level 0.
// When there is nothing to draw the result is an empty SVG document.
func GenerateYearlyHeatmapSVG(data []Data, opts *Options) string {
	// default options
	if opts == nil {
		opts = DefaultOptions()
	}

	startDate, endDate, err := opts.Range(data)
	if err != nil || startDate.IsZero() {
		return emptySVG(opts)
	}

	// map date string to count
	countMap := make(map[string]int, len(data))
	for _, d := range data {
		key := d.Date.UTC().Format(time.DateOnly)
		countMap[key] += d.Count
	}

	// align first column to Sunday
	firstSunday := startDate.AddDate(0, 0, -int(startDate.Weekday()))

	// calculate required number of weeks
	weeks := daysBetween(firstSunday, endDate)/7 + 1

	// compute dimensions
	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8 // title text + padding
	}
	width := weeks*(opts.CellSize+opts.CellPadding) + opts.CellPadding
	height := 7*(opts.CellSize+opts.CellPadding) + opts.CellPadding + opts.FontSize + 4 + titleHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, html.EscapeString(opts.Title)))
	}

	// month labels
	lastMonth := time.Month(0)
	monthLabelY := opts.FontSize + titleHeight
	for w := range weeks {
		x := opts.CellPadding + w*(opts.CellSize+opts.CellPadding)
		current := firstSunday.AddDate(0, 0, w*7)
		if current.Day() <= 7 && current.Month() != lastMonth {
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
				x, monthLabelY, current.Month().String()[:3]))
			lastMonth = current.Month()
		}
	}

	// find the maximum count for auto-scaling
	supCount := 5
	for _, count := range countMap {
		if count+1 > supCount {
			supCount = count + 1
		}
	}

	levels := len(opts.Colors)
	for w := range weeks {
		for i := range 7 {
			current := firstSunday.AddDate(0, 0, w*7+i)
			if current.Before(startDate) || current.After(endDate) {
				continue
			}
			key := current.Format(time.DateOnly)
			count := countMap[key]
			level := colorLevel(count, supCount, levels)

			x := opts.CellPadding + w*(opts.CellSize+opts.CellPadding)
			y := opts.CellPadding + opts.FontSize + 4 + titleHeight + i*(opts.CellSize+opts.CellPadding)

			// 各セルに矩形と、その中にtitle要素（ツールチップ）を追加
			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, y, opts.CellSize, opts.CellSize, opts.Colors[level], key, count))
			sb.WriteString(fmt.Sprintf(`    <title>%s: %d</title>`+"\n", current.Format("Jan 2, 2006"), count))
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// emptySVG returns a valid SVG document without cells.
func emptySVG(opts *Options) string {
	width := 2 * opts.CellPadding
	height := 2*opts.CellPadding + opts.FontSize
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg"></svg>`, width, height)
}

// colorLevel maps a count onto 0..levels-1. Zero always uses level 0; positive
// counts spread over 1..levels-1.
func colorLevel(count, supCount, levels int) int {
	if count == 0 || levels < 2 {
		return 0
	}
	level := (count-1)*(levels-2)/(supCount-1) + 1
	if level >= levels {
		level = levels - 1
	}
	return level
}
