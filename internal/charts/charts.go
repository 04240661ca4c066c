package charts

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"claimlens/internal/dataset"
)

// ErrNoData is returned when a chart is requested over zero usable values.
var ErrNoData = errors.New("no data to chart")

// Count is one categorical value with its occurrence count.
type Count struct {
	Label string
	N     int
}

// ValueCounts tallies the non-empty cells of a column, ordered by
// descending count with ties broken by first appearance. Empty markers
// are excluded, matching how the charts treat unclassified rows.
func ValueCounts(values []dataset.Value) []Count {
	index := make(map[string]int)
	var counts []Count
	for _, v := range values {
		if v.IsEmpty() {
			continue
		}
		label := v.Text()
		if i, ok := index[label]; ok {
			counts[i].N++
			continue
		}
		index[label] = len(counts)
		counts = append(counts, Count{Label: label, N: 1})
	}
	// stable selection sort keeps first-appearance order among ties
	for i := 0; i < len(counts); i++ {
		best := i
		for j := i + 1; j < len(counts); j++ {
			if counts[j].N > counts[best].N {
				best = j
			}
		}
		if best != i {
			picked := counts[best]
			copy(counts[i+1:best+1], counts[i:best])
			counts[i] = picked
		}
	}
	return counts
}

// SaveBar renders a vertical bar chart of the counts to a PNG file.
func SaveBar(counts []Count, title, yLabel, path string) error {
	if len(counts) == 0 {
		return fmt.Errorf("bar chart %s: %w", path, ErrNoData)
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Y.Label.Text = yLabel

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.N)
		labels[i] = c.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = -0.785
	p.X.Tick.Label.XAlign = -0.5
	p.X.Tick.Label.YAlign = -0.5

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save bar chart: %w", err)
	}
	logSaved(path)
	return nil
}

// SavePie renders a pie chart of the counts to a PNG file. Slice labels
// carry the share of the total, mirroring the percentage annotations of
// the original reports.
func SavePie(counts []Count, title, path string) error {
	if len(counts) == 0 {
		return fmt.Errorf("pie chart %s: %w", path, ErrNoData)
	}

	total := 0
	for _, c := range counts {
		total += c.N
	}
	values := make([]chart.Value, len(counts))
	for i, c := range counts {
		values[i] = chart.Value{
			Value: float64(c.N),
			Label: fmt.Sprintf("%s (%.1f%%)", c.Label, 100*float64(c.N)/float64(total)),
		}
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  800,
		Height: 800,
		Values: values,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := pie.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("failed to render pie chart: %w", err)
	}
	logSaved(path)
	return nil
}

// SaveHistogram renders a histogram of the values with a Gaussian kernel
// density overlay scaled to the count axis.
func SaveHistogram(values []float64, bins int, title, xLabel, path string) error {
	if len(values) == 0 {
		return fmt.Errorf("histogram %s: %w", path, ErrNoData)
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Count"

	hist, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("failed to build histogram: %w", err)
	}
	p.Add(hist)

	if line := densityLine(values, bins); line != nil {
		p.Add(line)
	}

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save histogram: %w", err)
	}
	logSaved(path)
	return nil
}

// densityLine builds the smoothed density overlay: a Gaussian KDE with
// Silverman's bandwidth, rescaled from density to expected bin counts so
// it sits on the histogram's axis. Returns nil when the sample is too
// small or degenerate for a bandwidth.
func densityLine(values []float64, bins int) *plotter.Line {
	n := len(values)
	if n < 2 {
		return nil
	}
	sigma := stat.StdDev(values, nil)
	if sigma == 0 {
		return nil
	}
	bandwidth := 1.06 * sigma * math.Pow(float64(n), -0.2)

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return nil
	}
	binWidth := (max - min) / float64(bins)

	const samples = 200
	pts := make(plotter.XYs, samples)
	step := (max - min) / float64(samples-1)
	for i := 0; i < samples; i++ {
		x := min + float64(i)*step
		density := 0.0
		for _, v := range values {
			density += distuv.Normal{Mu: v, Sigma: bandwidth}.Prob(x)
		}
		density /= float64(n)
		pts[i].X = x
		pts[i].Y = density * float64(n) * binWidth
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil
	}
	line.Width = vg.Points(2)
	return line
}

func logSaved(path string) {
	slog.Info("Saved visualization", slog.String("path", path))
}
