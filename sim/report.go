package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var csvHeader = []string{
	"frame", "t",
	"target_x", "target_y",
	"camera_x", "camera_y",
	"look_at_x", "look_at_y",
	"phase",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// WriteCSV writes one row per sample with a header row.
func WriteCSV(w io.Writer, trace *Trace) error {
	if trace == nil {
		return fmt.Errorf("sim: nil trace")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range trace.Samples {
		row := []string{
			strconv.Itoa(s.Frame),
			formatFloat(s.T),
			formatFloat(s.Target.X), formatFloat(s.Target.Y),
			formatFloat(s.Camera.X), formatFloat(s.Camera.Y),
			formatFloat(s.LookAt.X), formatFloat(s.LookAt.Y),
			s.Phase.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteChart renders an HTML page with the x and y components over time and
// the top-down paths of target and camera.
func WriteChart(w io.Writer, trace *Trace) error {
	if trace == nil {
		return fmt.Errorf("sim: nil trace")
	}

	subtitle := fmt.Sprintf("dead_zone=(%.0f, %.0f) ahead=(%.2f, %.2f) lerp=%.3f dt=%.4f",
		trace.Params.DeadZone.X, trace.Params.DeadZone.Y,
		trace.Params.AheadFactor.X, trace.Params.AheadFactor.Y,
		trace.Params.Lerp, trace.DT)

	page := components.NewPage()
	page.PageTitle = "cameraman: " + trace.Script
	page.AddCharts(
		axisChart(trace, "X over time", subtitle, func(s Sample) [3]float64 { return [3]float64{s.Target.X, s.Camera.X, s.LookAt.X} }),
		axisChart(trace, "Y over time", subtitle, func(s Sample) [3]float64 { return [3]float64{s.Target.Y, s.Camera.Y, s.LookAt.Y} }),
		pathChart(trace, subtitle),
	)
	return page.Render(w)
}

func axisChart(trace *Trace, title, subtitle string, pick func(Sample) [3]float64) *charts.Line {
	x := make([]string, 0, len(trace.Samples))
	series := [3][]opts.LineData{}
	for _, s := range trace.Samples {
		x = append(x, formatFloat(s.T))
		v := pick(s)
		for i := range series {
			series[i] = append(series[i], opts.LineData{Value: v[i]})
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "1200px", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t (s)", NameLocation: "middle", NameGap: 25}),
	)
	line.SetXAxis(x).
		AddSeries("target", series[0]).
		AddSeries("camera", series[1]).
		AddSeries("look_at", series[2])
	return line
}

func pathChart(trace *Trace, subtitle string) *charts.Scatter {
	target := make([]opts.ScatterData, 0, len(trace.Samples))
	camera := make([]opts.ScatterData, 0, len(trace.Samples))
	for _, s := range trace.Samples {
		target = append(target, opts.ScatterData{Value: []interface{}{s.Target.X, s.Target.Y}})
		camera = append(camera, opts.ScatterData{Value: []interface{}{s.Camera.X, s.Camera.Y}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Path", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("target", target, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	scatter.AddSeries("camera", camera, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 3}))
	return scatter
}
