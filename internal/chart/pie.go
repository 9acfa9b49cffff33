// Package chart рисует круговую диаграмму ячейки окна аналитики в PNG
package chart

import (
	"fmt"
	"io"

	"github.com/alligatorO15/expense-analytics/internal/models"
	"github.com/alligatorO15/expense-analytics/internal/report"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const defaultSize = 512

// палитра ролей цвета категорий
var palette = map[string]string{
	"orange": "FF9500",
	"red":    "FF3B30",
	"yellow": "FFCC00",
	"green":  "34C759",
	"mint":   "00C7BE",
	"teal":   "30B0C7",
	"cyan":   "32ADE6",
	"blue":   "007AFF",
	"indigo": "5856D6",
	"purple": "AF52DE",
	"pink":   "FF2D55",
	"brown":  "A2845E",
	"gray":   "8E8E93",
}

type Options struct {
	Width  int
	Height int
	// Labels подписывать сегменты именами категорий
	Labels bool
}

// ColorHex цвет роли, для неизвестной роли - серый
func ColorHex(role string) string {
	if hex, ok := palette[role]; ok {
		return hex
	}
	return palette[report.PlaceholderColorRole]
}

// Values сегменты отчета в виде значений диаграммы. Пустой отчет - один серый сегмент
func Values(r models.PeriodCategoryReport, labels bool) []gochart.Value {
	segments := report.Segments(r)
	values := make([]gochart.Value, 0, len(segments))

	for i, segment := range segments {
		percent, _ := segment.Percent.Float64()
		if percent <= 0 {
			continue
		}
		value := gochart.Value{
			Value: percent,
			Style: gochart.Style{
				FillColor:   drawing.ColorFromHex(ColorHex(segment.ColorRole)),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		}
		if labels && !r.IsEmpty() {
			value.Label = r.Summaries[i].Category.Name
		}
		values = append(values, value)
	}
	return values
}

// RenderPie пишет PNG диаграммы отчета в w
func RenderPie(w io.Writer, r models.PeriodCategoryReport, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = defaultSize
	}
	if opts.Height <= 0 {
		opts.Height = defaultSize
	}

	pie := gochart.PieChart{
		Width:  opts.Width,
		Height: opts.Height,
		Values: Values(r, opts.Labels),
	}

	if err := pie.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}
