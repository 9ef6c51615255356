package report

import (
	"fmt"
	"math"
	"os"

	"github.com/banshee-data/virial.report/internal/cluster"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// ExportHTMLReport renders a self-contained chart page for the run: a
// redshift histogram and a sky-position scatter coloured by peculiar
// velocity.
func ExportHTMLReport(path string, res *cluster.Result) error {
	page := components.NewPage()
	page.PageTitle = "Cluster Analysis"
	page.AddCharts(
		redshiftHistogramChart(res),
		skyScatterChart(res),
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create HTML report: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render HTML report: %w", err)
	}
	return nil
}

func redshiftHistogramChart(res *cluster.Result) *charts.Bar {
	labels, counts := binValues(memberColumn(res, func(m cluster.Member) float64 { return m.SpecZ }), histogramBins)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Member Redshift Distribution",
			Subtitle: fmt.Sprintf("systemic z=%.4f dispersion=%.0f km/s", res.Summary.SystemicZ, res.Summary.DispersionKms),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "z"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)

	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(labels).AddSeries("members", data)
	return bar
}

func skyScatterChart(res *cluster.Result) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(res.Members))
	maxAbsV := 0.0
	for _, m := range res.Members {
		if math.Abs(m.PeculiarKms) > maxAbsV {
			maxAbsV = math.Abs(m.PeculiarKms)
		}
		data = append(data, opts.ScatterData{Value: []interface{}{m.RA, m.Dec, m.PeculiarKms}})
	}
	if maxAbsV == 0 {
		maxAbsV = 1
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Sky Positions",
			Subtitle: fmt.Sprintf("%d members, coloured by peculiar velocity", len(res.Members)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "RA (deg)", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Dec (deg)", Scale: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        float32(-maxAbsV),
			Max:        float32(maxAbsV),
			Dimension:  "2",
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#74add1", "#ffffbf", "#f46d43", "#a50026"}},
		}),
	)

	scatter.AddSeries("members", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	return scatter
}

func memberColumn(res *cluster.Result, f func(cluster.Member) float64) []float64 {
	out := make([]float64, len(res.Members))
	for i, m := range res.Members {
		out[i] = f(m)
	}
	return out
}

// binValues buckets values into n equal-width bins and returns the bin
// labels (lower edges) alongside the counts.
func binValues(values []float64, n int) ([]string, []int) {
	if len(values) == 0 || n <= 0 {
		return nil, nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	width := (hi - lo) / float64(n)
	if width == 0 {
		return []string{fmt.Sprintf("%.4g", lo)}, []int{len(values)}
	}

	counts := make([]int, n)
	for _, v := range values {
		i := int((v - lo) / width)
		if i >= n {
			i = n - 1
		}
		counts[i]++
	}

	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.4g", lo+float64(i)*width)
	}
	return labels, counts
}
