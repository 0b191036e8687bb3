package util

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"hours-server/hours"
)

// ErrNotRecurring is returned when charting a spec with no weekly shape.
var ErrNotRecurring = errors.New("spec does not recur weekly")

var chartWeekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// WeekHours returns the open hours of each weekday, Monday first.
func WeekHours(spec hours.Spec) ([7]float64, error) {
	var out [7]float64
	switch s := spec.(type) {
	case *hours.DailySpec:
		h := float64(s.Day().Seconds()) / 3600
		for i := range out {
			out[i] = h
		}
	case *hours.WeekdailySpec:
		h := float64(s.Day().Seconds()) / 3600
		for i := range out {
			out[i] = h
		}
	case *hours.WeeklySpec:
		week := s.Week()
		for i, wd := range chartWeekdays {
			if d, ok := week.Day(wd); ok {
				out[i] = float64(d.Seconds()) / 3600
			}
		}
	default:
		return out, fmt.Errorf("%w: %s", ErrNotRecurring, spec)
	}
	return out, nil
}

// RenderWeekChart writes an HTML bar chart of open hours per weekday.
func RenderWeekChart(spec hours.Spec, title string, w io.Writer) error {
	perDay, err := WeekHours(spec)
	if err != nil {
		return err
	}

	labels := make([]string, len(chartWeekdays))
	data := make([]opts.BarData, len(chartWeekdays))
	for i, wd := range chartWeekdays {
		labels[i] = wd.String()[:3]
		data[i] = opts.BarData{Value: perDay[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: spec.String(),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "hours", Max: 24}),
	)
	bar.SetXAxis(labels).
		AddSeries("Open", data,
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(true),
			}),
		)

	if err := bar.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
