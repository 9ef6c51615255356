package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/virial.report/internal/cluster"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const histogramBins = 20

// GeneratePlots writes PNG plots of the member distributions into
// outputDir: redshift and peculiar-velocity histograms plus a boxplot of
// projected separations. Returns the number of files written.
func GeneratePlots(outputDir string, members []cluster.Member) (int, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, fmt.Errorf("create plot dir: %w", err)
	}

	redshifts := make(plotter.Values, len(members))
	peculiar := make(plotter.Values, len(members))
	separations := make(plotter.Values, len(members))
	for i, m := range members {
		redshifts[i] = m.SpecZ
		peculiar[i] = m.PeculiarKms
		separations[i] = m.ProjSep
	}

	count := 0
	histograms := []struct {
		file   string
		title  string
		xlabel string
		values plotter.Values
	}{
		{"redshift_hist.png", "Member Redshift Distribution", "Redshift z", redshifts},
		{"velocity_hist.png", "Peculiar Velocity Distribution", "Velocity (km/s)", peculiar},
	}
	for _, h := range histograms {
		if err := saveHistogram(filepath.Join(outputDir, h.file), h.title, h.xlabel, h.values); err != nil {
			return count, err
		}
		count++
	}

	if err := saveBoxPlot(filepath.Join(outputDir, "separation_box.png"), separations); err != nil {
		return count, err
	}
	count++

	return count, nil
}

func saveHistogram(path, title, xlabel string, values plotter.Values) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(values, histogramBins)
	if err != nil {
		return fmt.Errorf("histogram %s: %w", title, err)
	}
	p.Add(h)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save histogram: %w", err)
	}
	return nil
}

func saveBoxPlot(path string, values plotter.Values) error {
	p := plot.New()
	p.Title.Text = "Projected Separation"
	p.Y.Label.Text = "Separation (arcmin)"
	p.NominalX("members")

	b, err := plotter.NewBoxPlot(vg.Points(60), 0, values)
	if err != nil {
		return fmt.Errorf("boxplot: %w", err)
	}
	p.Add(b)

	if err := p.Save(4*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save boxplot: %w", err)
	}
	return nil
}
