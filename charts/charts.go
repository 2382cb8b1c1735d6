// Package charts renders the dashboard figures as PNG images.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"press-monitor/analytics"
	"press-monitor/models"
)

var ErrUnknownChart = errors.New("unknown chart")

const (
	labelLimit = 40
	tickFormat = "02 Jan"
)

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

type renderFunc func(analytics.Result) (*plot.Plot, error)

var renderers = map[string]renderFunc{
	"top-releases": topReleasesPlot,
	"impact":       impactPlot,
	"timeline":     timelinePlot,
	"media":        mediaPlot,
	"speakers":     speakersPlot,
}

// Names lists the charts Render knows, sorted.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render draws the named chart of a pipeline result as PNG into w.
func Render(w io.Writer, name string, result analytics.Result) error {
	build, ok := renderers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}

	p, err := build(result)
	if err != nil {
		return fmt.Errorf("chart %s: %w", name, err)
	}

	writer, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("chart %s: %w", name, err)
	}
	_, err = writer.WriteTo(w)
	return err
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

func shorten(label string) string {
	runes := []rune(label)
	if len(runes) <= labelLimit {
		return label
	}
	return string(runes[:labelLimit-3]) + "..."
}

func unix(d models.DailyCount) float64 {
	return float64(d.Date.Unix())
}

// horizontalBars draws counts top to bottom in the given order.
func horizontalBars(p *plot.Plot, counts []models.NamedCount) error {
	if len(counts) == 0 {
		return nil
	}

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, count := range counts {
		// Nominal Y axes grow upwards, so the busiest entry goes last.
		at := len(counts) - 1 - i
		values[at] = float64(count.Count)
		labels[at] = shorten(count.Name)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return err
	}
	bars.Horizontal = true
	bars.Color = barColor
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.NominalY(labels...)
	p.Y.Tick.Label.XAlign = draw.XRight
	return nil
}

func topReleasesPlot(result analytics.Result) (*plot.Plot, error) {
	p := newPlot("Top 10 Siaran Pers berdasarkan Jumlah Pemberitaan", "Jumlah Artikel", "")

	top := analytics.TopReleases(result.Aggregation.PerRelease, analytics.TopReleaseChartSize)
	counts := make([]models.NamedCount, 0, len(top))
	for _, row := range top {
		counts = append(counts, models.NamedCount{Name: row.ReleaseTitle, Count: row.MatchedCoverageCount})
	}
	return p, horizontalBars(p, counts)
}

func mediaPlot(result analytics.Result) (*plot.Plot, error) {
	p := newPlot("Top 10 Media berdasarkan Volume Pemberitaan", "Jumlah Artikel", "")
	return p, horizontalBars(p, result.TopMedia)
}

func impactPlot(result analytics.Result) (*plot.Plot, error) {
	p := newPlot("Dampak Siaran Pers dan Waktu", "Tanggal Siaran Pers", "Jumlah Pemberitaan")
	p.X.Tick.Marker = plot.TimeTicks{Format: tickFormat}

	points := plotter.XYs{}
	for _, row := range result.Aggregation.PerRelease {
		if row.ReleaseDate == nil {
			continue
		}
		points = append(points, plotter.XY{X: float64(row.ReleaseDate.Unix()), Y: float64(row.MatchedCoverageCount)})
	}
	if len(points) == 0 {
		return p, nil
	}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = barColor
	scatter.GlyphStyle.Radius = vg.Points(4)
	p.Add(scatter)
	return p, nil
}

func timelinePlot(result analytics.Result) (*plot.Plot, error) {
	p := newPlot("Timeline Pemberitaan", "Tanggal", "Jumlah Artikel")
	p.X.Tick.Marker = plot.TimeTicks{Format: tickFormat}

	if len(result.Timeline) == 0 {
		return p, nil
	}
	points := make(plotter.XYs, len(result.Timeline))
	for i, day := range result.Timeline {
		points[i] = plotter.XY{X: unix(day), Y: float64(day.Count)}
	}

	line, marks, err := plotter.NewLinePoints(points)
	if err != nil {
		return nil, err
	}
	line.Color = barColor
	line.Width = vg.Points(2)
	marks.Color = barColor
	p.Add(line, marks)
	return p, nil
}

func speakersPlot(result analytics.Result) (*plot.Plot, error) {
	p := newPlot("Tren Mingguan Top Narasumber", "Minggu (Mulai)", "Frekuensi")
	p.X.Tick.Marker = plot.TimeTicks{Format: tickFormat}
	p.Legend.Top = true

	series := analytics.TopSpeakerSeries(result.WeeklySpeakers, result.SpeakerTotals, analytics.TopSpeakerLimit)
	bySpeaker := make(map[string]plotter.XYs)
	for _, bucket := range series {
		bySpeaker[bucket.Speaker] = append(bySpeaker[bucket.Speaker], plotter.XY{
			X: float64(bucket.WeekStart.Unix()),
			Y: float64(bucket.Count),
		})
	}

	for i, total := range result.SpeakerTotals {
		if i >= analytics.TopSpeakerLimit {
			break
		}
		points, ok := bySpeaker[total.Name]
		if !ok {
			continue
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		p.Add(line)
		p.Legend.Add(shorten(total.Name), line)
	}
	return p, nil
}
