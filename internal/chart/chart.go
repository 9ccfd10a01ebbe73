// Package chart renders the dashboard charts as PNG images.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/amanjot-a/fintrack/internal/report"
)

// ErrNoData indicates there was nothing to draw.
var ErrNoData = errors.New("no data to chart")

// SpendingPie renders the category breakdown as a donut chart.
func SpendingPie(breakdown []report.CategorySlice) ([]byte, error) {
	if len(breakdown) == 0 {
		return nil, ErrNoData
	}

	values := make([]chart.Value, 0, len(breakdown))
	for _, slice := range breakdown {
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s ($%.2f)", slice.Name, slice.Value),
			Value: slice.Value,
			Style: chart.Style{
				FillColor: colorFromHex(slice.Color),
			},
		})
	}

	donut := chart.DonutChart{
		Width:  600,
		Height: 600,
		Values: values,
		Background: chart.Style{
			FillColor: chart.ColorWhite,
		},
	}

	var buf bytes.Buffer
	if err := donut.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render spending chart: %w", err)
	}
	return buf.Bytes(), nil
}

// BalanceTrend renders the cumulative daily balance as an area chart.
func BalanceTrend(series []report.DailyBalance) ([]byte, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	xValues := make([]time.Time, 0, len(series)+1)
	yValues := make([]float64, 0, len(series)+1)
	for _, point := range series {
		day, err := time.Parse("2006-01-02", point.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid series date %q: %w", point.Date, err)
		}
		xValues = append(xValues, day)
		yValues = append(yValues, point.Balance)
	}

	// A line needs two points; extend a single-day series by one day.
	if len(xValues) == 1 {
		xValues = append(xValues, xValues[0].AddDate(0, 0, 1))
		yValues = append(yValues, yValues[0])
	}

	// The renderer rejects a zero-delta axis range, which a flat balance
	// (every bucketed day at the same value) would produce.
	minY, maxY := yValues[0], yValues[0]
	for _, y := range yValues {
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	var yRange chart.Range
	if minY == maxY {
		yRange = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	trendColor := colorFromHex("#6366f1")

	graph := chart.Chart{
		Width:  1200,
		Height: 600,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01/02"),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		YAxis: chart.YAxis{
			Range: yRange,
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0f", f)
				}
				return ""
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Balance",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: trendColor,
					StrokeWidth: 3,
					FillColor:   trendColor.WithAlpha(40),
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render balance chart: %w", err)
	}
	return buf.Bytes(), nil
}

func colorFromHex(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
